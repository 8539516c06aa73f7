// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"github.com/MKhiriev/dumpman/internal/config"
	"github.com/MKhiriev/dumpman/internal/logger"
)

// Storages groups the filesystem storages into a single value that can be
// passed to the service layer.
type Storages struct {
	// Media reads the camera content directory.
	Media MediaStorage
	// Groups writes group directories below the output directory.
	Groups GroupStorage
}

// NewStorages builds the storages for the configured root and output
// directories. No filesystem access happens until a method is called.
func NewStorages(cfg *config.DumpConfig, log *logger.Logger) *Storages {
	log.Debug().
		Str("content", cfg.Media.ContentPath()).
		Str("out", cfg.Output.Dir).
		Msg("creating storages")

	return &Storages{
		Media:  NewMediaStorage(cfg.Media.ContentPath(), log),
		Groups: NewGroupStorage(cfg.Output.Dir, log),
	}
}
