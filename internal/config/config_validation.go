// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"regexp"
)

// validate checks that the merged [StructuredConfig] can be turned into a
// runtime [DumpConfig]. All failures are usage errors.
func (cfg *StructuredConfig) validate() error {
	if cfg.Output.Dir == "" {
		return fmt.Errorf("%w: %w", ErrUsage, ErrMissingOutput)
	}

	if cfg.Workers.Jobs < 1 || cfg.Workers.Jobs > MaxJobs {
		return fmt.Errorf("%w: %w: jobs must be between 1 and %d, got %d",
			ErrUsage, ErrInvalidWorkerConfigs, MaxJobs, cfg.Workers.Jobs)
	}

	return nil
}

func compilePattern(expr string) (*regexp.Regexp, error) {
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("%w: %w: %w", ErrUsage, ErrInvalidPattern, err)
	}

	if re.NumSubexp() < 1 {
		return nil, fmt.Errorf("%w: %w: %q has no capture group for the file number",
			ErrUsage, ErrInvalidPattern, expr)
	}

	return re, nil
}
