package config

import (
	"fmt"
	"path/filepath"
	"regexp"
)

// DumpMedia holds the resolved media source settings.
type DumpMedia struct {
	// Root is the mount point of the SD card as given by the user.
	Root string
	// ContentDir is the media directory relative to Root.
	ContentDir string
	// Pattern matches media filenames; group 1 is the file number.
	Pattern *regexp.Regexp
}

// ContentPath returns Root joined with ContentDir.
func (m DumpMedia) ContentPath() string {
	return filepath.Join(m.Root, filepath.FromSlash(m.ContentDir))
}

// IsDefaultRoot reports whether the root was left at its default.
func (m DumpMedia) IsDefaultRoot() bool {
	return m.Root == DefaultRoot
}

// DumpOutput holds output directory settings.
type DumpOutput struct {
	Dir    string
	Mkdir  bool
	DryRun bool
}

// DumpGrouping holds grouping settings.
type DumpGrouping struct {
	Auto bool
}

// DumpWorkers holds transfer pool settings.
type DumpWorkers struct {
	Jobs int
}

// DumpLog holds logger settings.
type DumpLog struct {
	Verbose bool
	File    string
}

// DumpUI holds prompt settings.
type DumpUI struct {
	Plain bool
}

// DumpConfig is the validated runtime configuration assembled from
// [StructuredConfig].
type DumpConfig struct {
	Media    DumpMedia
	Output   DumpOutput
	Grouping DumpGrouping
	Workers  DumpWorkers
	Log      DumpLog
	UI       DumpUI
}

// GetDumpConfig builds and validates the runtime config from command-line
// arguments (without the program name) and the process environment.
//
// Sources are merged so that earlier ones win for non-zero fields: flags,
// environment, JSON file (path taken from flags or environment), defaults.
func GetDumpConfig(args []string) (*DumpConfig, error) {
	return getDumpConfig(newConfigBuilder(), args)
}

func getDumpConfig(b *configBuilder, args []string) (*DumpConfig, error) {
	cfg, err := b.
		withFlags(args).
		withEnv().
		withJSON().
		withDefaults().
		build()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return newDumpConfig(cfg)
}

func newDumpConfig(cfg *StructuredConfig) (*DumpConfig, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	pattern, err := compilePattern(cfg.Media.Pattern)
	if err != nil {
		return nil, err
	}

	return &DumpConfig{
		Media: DumpMedia{
			Root:       cfg.Media.Root,
			ContentDir: cfg.Media.ContentDir,
			Pattern:    pattern,
		},
		Output: DumpOutput{
			Dir:    cfg.Output.Dir,
			Mkdir:  cfg.Output.Mkdir,
			DryRun: cfg.Output.DryRun,
		},
		Grouping: DumpGrouping{Auto: cfg.Grouping.Auto},
		Workers:  DumpWorkers{Jobs: cfg.Workers.Jobs},
		Log: DumpLog{
			Verbose: cfg.Log.Verbose,
			File:    cfg.Log.File,
		},
		UI: DumpUI{Plain: cfg.UI.Plain},
	}, nil
}
