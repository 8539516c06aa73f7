package store

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/dumpman/internal/logger"
)

// ignoredOutputEntries are tolerated in an otherwise empty output directory.
var ignoredOutputEntries = []string{".ds_store"}

type groupStorage struct {
	outPath string
	logger  *logger.Logger
}

// NewGroupStorage constructs a [GroupStorage] writing below outPath.
func NewGroupStorage(outPath string, log *logger.Logger) GroupStorage {
	return &groupStorage{
		outPath: outPath,
		logger:  log,
	}
}

func (s *groupStorage) Check(ctx context.Context) error {
	info, err := os.Stat(s.outPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return ErrOutputNotFound
		}
		return fmt.Errorf("stat output directory: %w", err)
	}
	if !info.IsDir() {
		return ErrOutputNotDir
	}

	entries, err := os.ReadDir(s.outPath)
	if err != nil {
		return fmt.Errorf("read output directory: %w", err)
	}

	for _, e := range entries {
		if isIgnoredOutputEntry(e.Name()) {
			continue
		}
		return ErrOutputNotEmpty
	}

	return nil
}

func (s *groupStorage) Create(ctx context.Context) error {
	if err := os.MkdirAll(s.outPath, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	s.logger.Info().Str("out", s.outPath).Msg("created output directory")
	return nil
}

func (s *groupStorage) CreateGroup(ctx context.Context, group string) error {
	err := os.Mkdir(s.groupPath(group), 0o755)
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			return fmt.Errorf("%w: %s", ErrGroupExists, group)
		}
		return fmt.Errorf("create group %s: %w", group, err)
	}
	return nil
}

func (s *groupStorage) Copy(ctx context.Context, src, group string) (int64, error) {
	return copyFile(ctx, src, filepath.Join(s.groupPath(group), filepath.Base(src)))
}

// Move renames src into the group. When rename fails (typically across
// devices) the file is copied and the source removed afterwards.
func (s *groupStorage) Move(ctx context.Context, src, group string) (int64, error) {
	dst := filepath.Join(s.groupPath(group), filepath.Base(src))

	srcInfo, err := os.Stat(src)
	if err != nil {
		return 0, fmt.Errorf("stat source: %w", err)
	}
	if _, err = os.Lstat(dst); err == nil {
		return 0, fmt.Errorf("%w: %s", ErrFileExists, dst)
	}

	if err = os.Rename(src, dst); err == nil {
		return srcInfo.Size(), nil
	}
	s.logger.Debug().Err(err).Str("src", src).Msg("rename failed, falling back to copy")

	n, err := copyFile(ctx, src, dst)
	if err != nil {
		return 0, err
	}
	if err = os.Remove(src); err != nil {
		return n, fmt.Errorf("remove moved source: %w", err)
	}

	return n, nil
}

func (s *groupStorage) groupPath(group string) string {
	return filepath.Join(s.outPath, group)
}

// copyFile copies src to a new file dst, preserving the modification time.
// A partially written dst is removed on failure.
func copyFile(ctx context.Context, src, dst string) (n int64, err error) {
	in, err := os.Open(src)
	if err != nil {
		return 0, fmt.Errorf("open source: %w", err)
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return 0, fmt.Errorf("stat source: %w", err)
	}

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			return 0, fmt.Errorf("%w: %s", ErrFileExists, dst)
		}
		return 0, fmt.Errorf("create target: %w", err)
	}
	defer func() {
		if err != nil {
			out.Close()
			os.Remove(dst)
		}
	}()

	n, err = io.Copy(out, &ctxReader{ctx: ctx, r: in})
	if err != nil {
		return n, fmt.Errorf("copy %s: %w", filepath.Base(src), err)
	}
	if n != info.Size() {
		err = fmt.Errorf("%w: %s (%d of %d bytes)", ErrShortCopy, filepath.Base(src), n, info.Size())
		return n, err
	}
	if err = out.Sync(); err != nil {
		return n, fmt.Errorf("sync target: %w", err)
	}
	if err = out.Close(); err != nil {
		return n, fmt.Errorf("close target: %w", err)
	}

	if chErr := os.Chtimes(dst, info.ModTime(), info.ModTime()); chErr != nil {
		return n, fmt.Errorf("preserve modification time: %w", chErr)
	}

	return n, nil
}

// ctxReader stops a copy once its context is cancelled.
type ctxReader struct {
	ctx context.Context
	r   io.Reader
}

func (c *ctxReader) Read(p []byte) (int, error) {
	if err := c.ctx.Err(); err != nil {
		return 0, err
	}
	return c.r.Read(p)
}

func isIgnoredOutputEntry(name string) bool {
	lower := strings.ToLower(name)
	for _, ignored := range ignoredOutputEntries {
		if lower == ignored {
			return true
		}
	}
	return false
}
