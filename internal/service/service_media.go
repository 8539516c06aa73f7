package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"regexp"
	"slices"
	"strconv"

	"github.com/MKhiriev/dumpman/internal/config"
	"github.com/MKhiriev/dumpman/internal/logger"
	"github.com/MKhiriev/dumpman/internal/store"
	"github.com/MKhiriev/dumpman/models"
)

type mediaService struct {
	storage store.MediaStorage

	root        string
	contentPath string
	defaultRoot bool
	pattern     *regexp.Regexp

	logger *logger.Logger
}

func NewMediaService(storage store.MediaStorage, cfg config.DumpMedia, logger *logger.Logger) MediaService {
	return &mediaService{
		storage:     storage,
		root:        cfg.Root,
		contentPath: cfg.ContentPath(),
		defaultRoot: cfg.IsDefaultRoot(),
		pattern:     cfg.Pattern,
		logger:      logger,
	}
}

func (s *mediaService) Load(ctx context.Context) ([]models.Media, error) {
	log := logger.FromContextOr(ctx, s.logger)

	log.Debug().Str("content", s.contentPath).Msg("checking root directory")
	if err := s.storage.Check(ctx); err != nil {
		if errors.Is(err, store.ErrContentNotFound) {
			if s.defaultRoot {
				log.Error().Msg("The current directory is not a valid SD mount point.")
				log.Error().Msg("Change directories or use the `-r` option to set the mount point root.")
			}
			return nil, &InvalidRootError{Root: s.root, ContentPath: s.contentPath}
		}
		return nil, fmt.Errorf("check content directory: %w", err)
	}
	log.Debug().Msg("root is valid")

	entries, err := s.storage.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list content directory: %w", err)
	}

	media := make([]models.Media, 0, len(entries))
	for _, entry := range entries {
		id, ok := s.parseID(log, entry.Name)
		if !ok {
			continue
		}

		createdAt, err := s.storage.CaptureTime(ctx, entry)
		if err != nil {
			return nil, fmt.Errorf("capture time of %s: %w", entry.Name, err)
		}

		media = append(media, models.Media{
			ID:        id,
			Filename:  entry.Name,
			Size:      entry.Size,
			CreatedAt: createdAt,
		})
	}

	if len(media) == 0 {
		return nil, ErrNoMedia
	}

	slices.SortFunc(media, func(a, b models.Media) int {
		switch {
		case a.Less(b):
			return -1
		case b.Less(a):
			return 1
		}
		return 0
	})

	log.Debug().
		Int("count", len(media)).
		Uint32("first", media[0].ID).
		Uint32("last", media[len(media)-1].ID).
		Msg("parsed media files")

	return media, nil
}

// parseID extracts the file number from name using the first capture group
// of the pattern.
func (s *mediaService) parseID(log *logger.Logger, name string) (uint32, bool) {
	match := s.pattern.FindStringSubmatch(name)
	if match == nil || len(match) < 2 {
		return 0, false
	}

	id, err := strconv.ParseUint(match[1], 10, 32)
	if err != nil {
		log.Debug().Err(err).Str("file", name).Msg("skipping file with unparsable number")
		return 0, false
	}
	// ranges are half-open, so the largest id could never be selected
	if id == math.MaxUint32 {
		log.Warn().Str("file", name).Msgf("skipping file: number %d is out of range", id)
		return 0, false
	}

	return uint32(id), true
}
