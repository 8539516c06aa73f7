package config

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/pflag"
)

// AppName is the program name shown in usage and version output.
const AppName = "dumpman"

type flagValues struct {
	root       string
	out        string
	contentDir string
	pattern    string
	configPath string
	logFile    string
	jobs       int
	auto       bool
	mkdir      bool
	dryRun     bool
	verbose    bool
	plain      bool
	help       bool
	version    bool
}

func newFlagSet(v *flagValues) *pflag.FlagSet {
	fs := pflag.NewFlagSet(AppName, pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.SortFlags = false

	fs.StringVarP(&v.root, "root", "r", DefaultRoot, "The root directory of the SD card")
	fs.StringVarP(&v.out, "out", "o", "", "The output directory to store the generated groups (required)")
	fs.BoolVarP(&v.auto, "auto", "a", false, "Enable autogrouping")
	fs.BoolVarP(&v.mkdir, "mkdir", "m", false, "Create the output directory if it does not exist")
	fs.BoolVarP(&v.dryRun, "dry-run", "n", false, "Print the plan without copying anything")
	fs.IntVarP(&v.jobs, "jobs", "j", DefaultJobs, "Parallel file transfers per group")
	fs.StringVar(&v.contentDir, "content-dir", DefaultContentDir, "Media directory relative to the root")
	fs.StringVar(&v.pattern, "pattern", DefaultPattern, "Media filename pattern; the first group is the file number")
	fs.BoolVar(&v.plain, "plain", false, "Use line prompts instead of the terminal UI")
	fs.StringVarP(&v.configPath, "config", "c", "", "JSON config file path")
	fs.StringVar(&v.logFile, "log-file", "", "Also write JSON logs to this file")
	fs.BoolVarP(&v.verbose, "verbose", "v", false, "Verbose output")
	fs.BoolVarP(&v.help, "help", "h", false, "Print help")
	fs.BoolVarP(&v.version, "version", "V", false, "Print version")

	return fs
}

// ParseFlags parses command-line arguments (without the program name).
//
// Only flags explicitly present in args are copied into the returned config,
// so unset flags never shadow environment or JSON values.
//
// Help and version requests take precedence over every other flag, including
// invalid ones: [ErrHelpRequested] or [ErrVersionRequested] is returned.
// Parse failures are wrapped with [ErrUsage].
func ParseFlags(args []string) (*StructuredConfig, error) {
	cfg, _, err := parseFlags(args)
	return cfg, err
}

// flagOverrides writes the explicitly given flags onto a config.
type flagOverrides func(cfg *StructuredConfig)

// parseFlags is [ParseFlags] that also returns the given flags as overrides.
// They are applied again after merging, so a flag set to its zero value,
// such as --mkdir=false, still beats the environment and the JSON file.
func parseFlags(args []string) (*StructuredConfig, flagOverrides, error) {
	if err := infoRequest(args); err != nil {
		return nil, nil, err
	}

	var v flagValues
	fs := newFlagSet(&v)
	if err := fs.Parse(args); err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrUsage, err)
	}

	if v.help {
		return nil, nil, ErrHelpRequested
	}
	if v.version {
		return nil, nil, ErrVersionRequested
	}

	if rest := fs.Args(); len(rest) > 0 {
		return nil, nil, fmt.Errorf("%w: unexpected argument %q", ErrUsage, rest[0])
	}

	var changed []flagOverrides
	set := func(name string, apply flagOverrides) {
		if fs.Changed(name) {
			changed = append(changed, apply)
		}
	}

	set("root", func(cfg *StructuredConfig) { cfg.Media.Root = v.root })
	set("content-dir", func(cfg *StructuredConfig) { cfg.Media.ContentDir = v.contentDir })
	set("pattern", func(cfg *StructuredConfig) { cfg.Media.Pattern = v.pattern })
	set("out", func(cfg *StructuredConfig) { cfg.Output.Dir = v.out })
	set("mkdir", func(cfg *StructuredConfig) { cfg.Output.Mkdir = v.mkdir })
	set("dry-run", func(cfg *StructuredConfig) { cfg.Output.DryRun = v.dryRun })
	set("auto", func(cfg *StructuredConfig) { cfg.Grouping.Auto = v.auto })
	set("jobs", func(cfg *StructuredConfig) { cfg.Workers.Jobs = v.jobs })
	set("verbose", func(cfg *StructuredConfig) { cfg.Log.Verbose = v.verbose })
	set("log-file", func(cfg *StructuredConfig) { cfg.Log.File = v.logFile })
	set("plain", func(cfg *StructuredConfig) { cfg.UI.Plain = v.plain })
	set("config", func(cfg *StructuredConfig) { cfg.JSONFilePath = v.configPath })

	overrides := func(cfg *StructuredConfig) {
		for _, apply := range changed {
			apply(cfg)
		}
	}

	cfg := &StructuredConfig{}
	overrides(cfg)

	return cfg, overrides, nil
}

// Usage renders the help banner.
func Usage() string {
	var v flagValues
	fs := newFlagSet(&v)

	var b strings.Builder
	b.WriteString("Groups camera dump files into output directories.\n\n")
	b.WriteString("Usage: ")
	b.WriteString(AppName)
	b.WriteString(" [OPTIONS] --out <OUT>\n\n")
	b.WriteString("Options:\n")
	b.WriteString(fs.FlagUsages())
	b.WriteString("\nEvery option can also be set with a DUMPMAN_* environment variable\n")
	b.WriteString("(e.g. DUMPMAN_OUT_DIR stands in for --out) or in the --config file.\n")
	b.WriteString("Flags given on the command line always win, including --mkdir=false.\n")
	return b.String()
}

// infoRequest scans raw arguments for help and version flags so that they
// win regardless of what else was passed. Scanning stops at "--".
func infoRequest(args []string) error {
	version := false
	for _, arg := range args {
		switch {
		case arg == "--":
			return versionOrNil(version)
		case arg == "--help":
			return ErrHelpRequested
		case arg == "--version":
			version = true
		case strings.HasPrefix(arg, "--"):
			continue
		case strings.HasPrefix(arg, "-") && len(arg) > 1:
			help, ver := scanShorthands(arg[1:])
			if help {
				return ErrHelpRequested
			}
			version = version || ver
		}
	}
	return versionOrNil(version)
}

// scanShorthands inspects a group of short flags such as "amV". Letters after
// a flag that takes a value belong to that value and are not inspected.
func scanShorthands(group string) (help, version bool) {
	for _, c := range group {
		switch c {
		case 'h':
			return true, version
		case 'V':
			version = true
		case 'o', 'r', 'c', 'j':
			return false, version
		}
	}
	return false, version
}

func versionOrNil(version bool) error {
	if version {
		return ErrVersionRequested
	}
	return nil
}
