// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// Default values applied after flags, environment and JSON file.
const (
	DefaultRoot       = "."
	DefaultContentDir = "DCIM/100CANON"
	DefaultPattern    = `^(?:MVI|IMG)_(\d{4})\.(?i:MOV|MP4|JPG|JPEG|CR2|CR3)$`
	DefaultJobs       = 4

	// MaxJobs caps the number of parallel file transfers.
	MaxJobs = 64

	envPrefix = "DUMPMAN_"
)

// StructuredConfig is the top-level configuration container for dumpman.
// It is populated by merging command-line flags, environment variables, an
// optional JSON file and built-in defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//     Every variable is additionally prefixed with DUMPMAN_.
//   - env:       direct environment variable name for scalar fields.
//   - json:      key in the JSON configuration file.
type StructuredConfig struct {
	// Media describes where camera files are read from.
	Media Media `envPrefix:"MEDIA_" json:"media"`

	// Output describes where groups are written to.
	Output Output `envPrefix:"OUT_" json:"output"`

	// Grouping selects interactive or automatic grouping.
	Grouping Grouping `envPrefix:"GROUP_" json:"grouping"`

	// Workers holds file transfer concurrency settings.
	Workers Workers `envPrefix:"WORKERS_" json:"workers"`

	// Log holds logging settings.
	Log Log `envPrefix:"LOG_" json:"log"`

	// UI holds prompt front end settings.
	UI UI `envPrefix:"UI_" json:"ui"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via DUMPMAN_CONFIG or the -c / --config flag.
	JSONFilePath string `env:"CONFIG" json:"-"`
}

// Media holds the location and naming of the camera dump.
type Media struct {
	// Root is the mount point of the SD card.
	// Env: DUMPMAN_MEDIA_ROOT
	Root string `env:"ROOT" json:"root"`

	// ContentDir is the media directory relative to Root.
	// Env: DUMPMAN_MEDIA_CONTENT_DIR
	ContentDir string `env:"CONTENT_DIR" json:"content_dir"`

	// Pattern is the filename regexp; its first capture group is the
	// camera file number.
	// Env: DUMPMAN_MEDIA_PATTERN
	Pattern string `env:"PATTERN" json:"pattern"`
}

// Output holds settings for the output directory.
type Output struct {
	// Dir is the directory that receives the generated groups.
	// Env: DUMPMAN_OUT_DIR
	Dir string `env:"DIR" json:"dir"`

	// Mkdir creates Dir when it does not exist.
	// Env: DUMPMAN_OUT_MKDIR
	Mkdir bool `env:"MKDIR" json:"mkdir"`

	// DryRun prints the plan without touching the output.
	// Env: DUMPMAN_OUT_DRY_RUN
	DryRun bool `env:"DRY_RUN" json:"dry_run"`
}

// Grouping selects how groups are produced.
type Grouping struct {
	// Auto enables autogrouping by capture day.
	// Env: DUMPMAN_GROUP_AUTO
	Auto bool `env:"AUTO" json:"auto"`
}

// Workers holds configuration for the transfer worker pool.
type Workers struct {
	// Jobs is the number of parallel transfers per group.
	// Env: DUMPMAN_WORKERS_JOBS
	Jobs int `env:"JOBS" json:"jobs"`
}

// Log holds logger settings.
type Log struct {
	// Verbose enables debug output.
	// Env: DUMPMAN_LOG_VERBOSE
	Verbose bool `env:"VERBOSE" json:"verbose"`

	// File is an optional path receiving JSON log lines.
	// Env: DUMPMAN_LOG_FILE
	File string `env:"FILE" json:"file"`
}

// UI holds prompt settings.
type UI struct {
	// Plain forces line-based prompts even on a terminal.
	// Env: DUMPMAN_UI_PLAIN
	Plain bool `env:"PLAIN" json:"plain"`
}

// Defaults returns the configuration used for fields no other source sets.
func Defaults() *StructuredConfig {
	return &StructuredConfig{
		Media: Media{
			Root:       DefaultRoot,
			ContentDir: DefaultContentDir,
			Pattern:    DefaultPattern,
		},
		Workers: Workers{Jobs: DefaultJobs},
	}
}
