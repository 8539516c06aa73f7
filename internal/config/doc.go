// Package config provides configuration loading, merging, and validation
// facilities for dumpman.
//
// Configuration is assembled from multiple sources in the following priority
// order (earlier sources win for non-zero fields):
//  1. Command-line flags
//  2. Environment variables (DUMPMAN_ prefix)
//  3. JSON config file
//  4. Built-in defaults
//
// The main entry point is [GetDumpConfig], which returns the validated
// runtime view used by the application.
package config
