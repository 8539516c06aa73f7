package service

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/MKhiriev/dumpman/internal/config"
	"github.com/MKhiriev/dumpman/internal/logger"
	"github.com/MKhiriev/dumpman/internal/store"
	"github.com/MKhiriev/dumpman/internal/workers"
	"github.com/MKhiriev/dumpman/models"
)

type executeService struct {
	media  store.MediaStorage
	groups store.GroupStorage

	out    string
	mkdir  bool
	dryRun bool
	jobs   int

	logger *logger.Logger
}

func NewExecuteService(storages *store.Storages, output config.DumpOutput, jobs int, logger *logger.Logger) ExecuteService {
	return &executeService{
		media:  storages.Media,
		groups: storages.Groups,
		out:    output.Dir,
		mkdir:  output.Mkdir,
		dryRun: output.DryRun,
		jobs:   jobs,
		logger: logger,
	}
}

func (s *executeService) PrepareOutput(ctx context.Context) error {
	log := logger.FromContextOr(ctx, s.logger)

	log.Debug().Str("out", s.out).Msg("checking output directory")

	err := s.groups.Check(ctx)
	switch {
	case err == nil:
		log.Debug().Msg("output is valid")
		return nil
	case errors.Is(err, store.ErrOutputNotFound) && s.mkdir:
		if s.dryRun {
			log.Info().Str("out", s.out).Msg("[DRY RUN] would create output directory")
			return nil
		}
		return s.groups.Create(ctx)
	default:
		return err
	}
}

func (s *executeService) Execute(ctx context.Context, plans []models.GroupPlan) (models.Report, error) {
	report := models.Report{DryRun: s.dryRun}

	for _, plan := range plans {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		log := logger.FromContextOr(ctx, s.logger).With().
			Str("group", plan.Op.Name).
			Str("op", string(plan.Op.Type)).
			Logger()

		if s.dryRun {
			report.Groups++
			report.Files += len(plan.Media)
			report.Bytes += plan.Bytes()
			continue
		}

		if err := s.groups.CreateGroup(ctx, plan.Op.Name); err != nil {
			return report, err
		}
		report.Groups++

		n, bytes, err := s.transfer(ctx, plan)
		report.Files += n
		report.Bytes += bytes
		if err != nil {
			return report, fmt.Errorf("group %s: %w", plan.Op.Name, err)
		}

		log.Info().Int("files", n).Int64("bytes", bytes).Msg("group done")
	}

	return report, nil
}

// transfer copies or moves the media of one group on the worker pool. It
// returns the number of files and bytes that were transferred.
func (s *executeService) transfer(ctx context.Context, plan models.GroupPlan) (int, int64, error) {
	var (
		files atomic.Int64
		bytes atomic.Int64
	)

	transferFn := s.groups.Copy
	if plan.Op.Type == models.OpMove {
		transferFn = s.groups.Move
	}

	pool := workers.New(s.jobs)
	for _, m := range plan.Media {
		src := s.media.Path(m.Filename)
		pool.Add(workers.WorkerFunc(func(ctx context.Context) error {
			n, err := transferFn(ctx, src, plan.Op.Name)
			if err != nil {
				return err
			}
			files.Add(1)
			bytes.Add(n)
			logger.FromContextOr(ctx, s.logger).Debug().Str("file", m.Filename).Str("group", plan.Op.Name).Msg("transferred")
			return nil
		}))
	}

	err := pool.Run(ctx)
	return int(files.Load()), bytes.Load(), err
}
