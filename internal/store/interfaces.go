package store

import (
	"context"
	"time"

	"github.com/MKhiriev/dumpman/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// MediaStorage is read access to the camera content directory.
type MediaStorage interface {
	// Check verifies that the content directory exists.
	Check(ctx context.Context) error
	// List returns the regular files directly inside the content directory.
	List(ctx context.Context) ([]models.FileEntry, error)
	// CaptureTime returns the best known capture time of a listed file.
	CaptureTime(ctx context.Context, entry models.FileEntry) (time.Time, error)
	// Path returns the absolute location of a file in the content directory.
	Path(name string) string
}

// GroupStorage is write access to the output directory.
type GroupStorage interface {
	// Check verifies that the output directory exists and is empty.
	Check(ctx context.Context) error
	// Create creates the output directory including parents.
	Create(ctx context.Context) error
	// CreateGroup creates a new group directory. It fails if it exists.
	CreateGroup(ctx context.Context, group string) error
	// Copy copies src into group and returns the number of bytes written.
	Copy(ctx context.Context, src, group string) (int64, error)
	// Move moves src into group and returns the size of the moved file.
	Move(ctx context.Context, src, group string) (int64, error)
}
