package service

import (
	"context"

	"github.com/MKhiriev/dumpman/models"
)

//go:generate mockgen -source=prompter.go -destination=../mock/prompter_mock.go -package=mock

// Prompter asks the user for grouping decisions. It is implemented by the
// terminal UI and by the plain line prompter.
type Prompter interface {
	// PromptOps collects map operations until the user enters an empty
	// group name.
	PromptOps(ctx context.Context, summary models.DumpSummary) ([]models.MapOp, error)
	// PromptDays asks for a group name (and op type when more than one is
	// available) for each day. The result is aligned with days.
	PromptDays(ctx context.Context, days []models.DayBucket, types []models.MapOpType) ([]models.DayChoice, error)
}
