package service

import (
	"context"

	"github.com/MKhiriev/dumpman/models"
)

// MediaService reads the camera dump.
type MediaService interface {
	// Load returns the media of the content directory sorted by file number.
	Load(ctx context.Context) ([]models.Media, error)
}

// PlanService turns user input into validated group plans.
type PlanService interface {
	// Collect asks the user for map operations, either per range or per
	// capture day when autogrouping is enabled.
	Collect(ctx context.Context, media []models.Media) ([]models.MapOp, error)
	// GroupByDay buckets media by the calendar day they were captured on.
	GroupByDay(media []models.Media) []models.DayBucket
	// Plan validates ops and resolves the media each op selects.
	Plan(ctx context.Context, ops []models.MapOp, media []models.Media) ([]models.GroupPlan, error)
}

// ExecuteService writes group plans to the output directory.
type ExecuteService interface {
	// PrepareOutput checks the output directory and creates it when allowed.
	PrepareOutput(ctx context.Context) error
	// Execute creates the groups and transfers their media.
	Execute(ctx context.Context, plans []models.GroupPlan) (models.Report, error)
}
