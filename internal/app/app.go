package app

import (
	"context"
	"fmt"
	"io"

	"github.com/dustin/go-humanize"

	"github.com/MKhiriev/dumpman/internal/config"
	"github.com/MKhiriev/dumpman/internal/logger"
	"github.com/MKhiriev/dumpman/internal/service"
	"github.com/MKhiriev/dumpman/internal/utils"
	"github.com/MKhiriev/dumpman/models"
)

type App struct {
	services *service.Services
	output   config.DumpOutput
	out      io.Writer
	logger   *logger.Logger
}

// NewApp creates the application. User-facing lines are written to out.
func NewApp(services *service.Services, output config.DumpOutput, out io.Writer, logger *logger.Logger) *App {
	return &App{
		services: services,
		output:   output,
		out:      out,
		logger:   logger,
	}
}

// Run loads the media before touching the output, so that a card without
// media never leaves a freshly created output directory behind.
func (a *App) Run(ctx context.Context) error {
	log := logger.FromContextOr(ctx, a.logger)
	if runID, ok := utils.GetRunIDFromContext(ctx); ok {
		log.Debug().Str("id", runID).Str("out", a.output.Dir).Bool("dry_run", a.output.DryRun).Msg("run started")
	}

	media, err := a.services.MediaService.Load(ctx)
	if err != nil {
		return err
	}

	if err = a.services.ExecuteService.PrepareOutput(ctx); err != nil {
		return err
	}

	summary := models.Summarize(media)
	fmt.Fprintf(a.out, MsgSummary, summary.Count, summary.Range())
	fmt.Fprintf(a.out, MsgAvailableOps, models.JoinOpTypes(summary.OpTypes))

	ops, err := a.services.PlanService.Collect(ctx, media)
	if err != nil {
		return err
	}

	plans, err := a.services.PlanService.Plan(ctx, ops, media)
	if err != nil {
		return err
	}

	if a.output.DryRun {
		for _, p := range plans {
			fmt.Fprintf(a.out, MsgPlanLine, p.Op.Name, p.Op.Start, p.Op.End, len(p.Media))
		}
	} else {
		fmt.Fprint(a.out, MsgProcessing)
	}

	report, err := a.services.ExecuteService.Execute(ctx, plans)
	if err != nil {
		return err
	}

	log.Info().
		Int("groups", report.Groups).
		Int("files", report.Files).
		Int64("bytes", report.Bytes).
		Bool("dry_run", report.DryRun).
		Msg("dump finished")

	if report.DryRun {
		fmt.Fprintf(a.out, MsgDryRunSummary, report.Groups, report.Files, humanize.IBytes(uint64(report.Bytes)), a.output.Dir)
		return nil
	}

	fmt.Fprintf(a.out, MsgDone, a.output.Dir)
	return nil
}
