package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rwcarlsen/goexif/exif"

	"github.com/MKhiriev/dumpman/internal/logger"
	"github.com/MKhiriev/dumpman/models"
)

// exifExts lists extensions whose capture time is read from EXIF
// DateTimeOriginal. Everything else falls back to the modification time.
var exifExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".cr2":  true,
	".tif":  true,
	".tiff": true,
}

type mediaStorage struct {
	contentPath string
	logger      *logger.Logger
}

// NewMediaStorage constructs a [MediaStorage] reading from contentPath.
func NewMediaStorage(contentPath string, log *logger.Logger) MediaStorage {
	return &mediaStorage{
		contentPath: contentPath,
		logger:      log,
	}
}

func (s *mediaStorage) Check(ctx context.Context) error {
	if s.contentPath == "" {
		return ErrContentNotFound
	}

	info, err := os.Stat(s.contentPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return ErrContentNotFound
		}
		return fmt.Errorf("stat content directory: %w", err)
	}
	if !info.IsDir() {
		return ErrContentNotFound
	}

	return nil
}

func (s *mediaStorage) List(ctx context.Context) ([]models.FileEntry, error) {
	dirEntries, err := os.ReadDir(s.contentPath)
	if err != nil {
		return nil, fmt.Errorf("read content directory: %w", err)
	}

	entries := make([]models.FileEntry, 0, len(dirEntries))
	for _, e := range dirEntries {
		if err = ctx.Err(); err != nil {
			return nil, err
		}
		if !e.Type().IsRegular() {
			continue
		}

		info, err := e.Info()
		if err != nil {
			// removed between ReadDir and Info
			s.logger.Warn().Err(err).Str("file", e.Name()).Msg("skipping unreadable entry")
			continue
		}

		entries = append(entries, models.FileEntry{
			Name:    e.Name(),
			Size:    info.Size(),
			ModTime: info.ModTime(),
		})
	}

	return entries, nil
}

func (s *mediaStorage) CaptureTime(ctx context.Context, entry models.FileEntry) (time.Time, error) {
	if err := ctx.Err(); err != nil {
		return time.Time{}, err
	}
	if !exifExts[strings.ToLower(filepath.Ext(entry.Name))] {
		return entry.ModTime, nil
	}

	t, err := readExifTime(s.Path(entry.Name))
	if err != nil {
		s.logger.Debug().Err(err).Str("file", entry.Name).Msg("no exif capture time, using modification time")
		return entry.ModTime, nil
	}

	return t, nil
}

func (s *mediaStorage) Path(name string) string {
	return filepath.Join(s.contentPath, name)
}

func readExifTime(path string) (time.Time, error) {
	f, err := os.Open(path)
	if err != nil {
		return time.Time{}, err
	}
	defer f.Close()

	x, err := exif.Decode(f)
	if err != nil {
		return time.Time{}, err
	}

	return x.DateTime()
}
