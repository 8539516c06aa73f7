package service

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/MKhiriev/dumpman/internal/logger"
	"github.com/MKhiriev/dumpman/internal/validators"
	"github.com/MKhiriev/dumpman/models"
)

type planService struct {
	prompter  Prompter
	validator validators.Validator

	auto     bool
	location *time.Location

	logger *logger.Logger
}

// NewPlanService creates a PlanService. Capture days are computed in loc;
// a nil loc means [time.Local].
func NewPlanService(prompter Prompter, auto bool, loc *time.Location, logger *logger.Logger) PlanService {
	if loc == nil {
		loc = time.Local
	}

	return &planService{
		prompter:  prompter,
		validator: validators.NewMapOpValidator(),
		auto:      auto,
		location:  loc,
		logger:    logger,
	}
}

func (s *planService) Collect(ctx context.Context, media []models.Media) ([]models.MapOp, error) {
	if !s.auto {
		ops, err := s.prompter.PromptOps(ctx, models.Summarize(media))
		if err != nil {
			return nil, fmt.Errorf("prompt map operations: %w", err)
		}
		return ops, nil
	}

	days := s.GroupByDay(media)
	logger.FromContextOr(ctx, s.logger).Debug().Int("days", len(days)).Msg("grouped media by capture day")

	choices, err := s.prompter.PromptDays(ctx, days, models.MapOpTypes)
	if err != nil {
		return nil, fmt.Errorf("prompt day names: %w", err)
	}
	if len(choices) != len(days) {
		return nil, fmt.Errorf("%w: %d days, %d answers", ErrPromptMismatch, len(days), len(choices))
	}

	ops := make([]models.MapOp, len(days))
	for i, day := range days {
		opType := choices[i].Type
		if opType == "" {
			opType = models.OpCopy
		}
		ops[i] = models.MapOp{
			Type:  opType,
			Name:  day.GroupName(strings.TrimSpace(choices[i].Name)),
			Start: day.Start,
			End:   day.End,
		}
	}

	return ops, nil
}

func (s *planService) GroupByDay(media []models.Media) []models.DayBucket {
	byDay := make(map[time.Time]*models.DayBucket)

	for _, m := range media {
		t := m.CreatedAt.In(s.location)
		date := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, s.location)

		bucket, ok := byDay[date]
		if !ok {
			byDay[date] = &models.DayBucket{
				Date:  date,
				Start: m.ID,
				End:   m.ID + 1,
				Count: 1,
			}
			continue
		}

		bucket.Count++
		if m.ID < bucket.Start {
			bucket.Start = m.ID
		}
		if m.ID >= bucket.End {
			bucket.End = m.ID + 1
		}
	}

	days := make([]models.DayBucket, 0, len(byDay))
	for _, bucket := range byDay {
		days = append(days, *bucket)
	}
	slices.SortFunc(days, func(a, b models.DayBucket) int {
		return a.Date.Compare(b.Date)
	})

	return days
}

func (s *planService) Plan(ctx context.Context, ops []models.MapOp, media []models.Media) ([]models.GroupPlan, error) {
	log := logger.FromContextOr(ctx, s.logger)

	log.Debug().Int("ops", len(ops)).Msg("validating map ops")
	if err := s.validator.Validate(ctx, ops); err != nil {
		return nil, err
	}

	plans := make([]models.GroupPlan, 0, len(ops))
	for _, op := range ops {
		plan := models.GroupPlan{Op: op}
		for _, m := range media {
			if op.Contains(m.ID) {
				plan.Media = append(plan.Media, m)
			}
		}

		if len(plan.Media) == 0 {
			log.Warn().Str("group", op.Name).Msgf("range %d..%d selects no media", op.Start, op.End)
		}
		plans = append(plans, plan)
	}

	return plans, nil
}
