package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/dumpman/internal/app"
	"github.com/MKhiriev/dumpman/internal/config"
	"github.com/MKhiriev/dumpman/internal/logger"
	"github.com/MKhiriev/dumpman/internal/service"
	"github.com/MKhiriev/dumpman/internal/store"
	"github.com/MKhiriev/dumpman/internal/tui"
	"github.com/MKhiriev/dumpman/internal/utils"
	"github.com/MKhiriev/dumpman/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdin, stdout, stderr *os.File) int {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	cfg, err := config.GetDumpConfig(args)
	switch {
	case errors.Is(err, config.ErrHelpRequested):
		fmt.Fprint(stdout, config.Usage())
		return exitOK
	case errors.Is(err, config.ErrVersionRequested):
		fmt.Fprintln(stdout, buildInfo.Banner(config.AppName))
		return exitOK
	case errors.Is(err, config.ErrUsage):
		fmt.Fprintf(stderr, "error: %s\n\n%s", config.UsageMessage(err), config.Usage())
		return exitUsage
	case err != nil:
		fmt.Fprintf(stderr, "error: %s\n", err)
		return exitFailure
	}

	opts := logger.Options{
		Role:    config.AppName,
		Verbose: cfg.Log.Verbose,
		Console: stderr,
		NoColor: !app.IsTerminal(stderr),
	}
	if cfg.Log.File != "" {
		logFile, err := logger.OpenLogFile(cfg.Log.File)
		if err != nil {
			fmt.Fprintf(stderr, "error: %s\n", err)
			return exitFailure
		}
		defer logFile.Close()
		opts.File = logFile
	}

	runID := utils.NewRunIDGenerator().Generate()
	log := logger.NewCLILogger(opts).WithRunID(runID)
	ctx = log.WithContext(utils.WithRunID(ctx, runID))

	log.Debug().
		Str("version", buildInfo.BuildVersion()).
		Str("commit", buildInfo.BuildCommit()).
		Str("date", buildInfo.BuildDate()).
		Msg("starting")

	prompter := app.NewPrompter(cfg.UI.Plain, stdin, stdout, buildInfo, log)
	services := service.NewServices(store.NewStorages(cfg, log), prompter, cfg, log)

	if err = app.NewApp(services, cfg.Output, stdout, log).Run(ctx); err != nil {
		return fail(ctx, err)
	}

	return exitOK
}

func fail(ctx context.Context, err error) int {
	log := logger.FromContext(ctx)

	switch {
	case errors.Is(err, tui.ErrUserQuit), errors.Is(err, context.Canceled):
		log.Warn().Msg("aborted, nothing more will be written")
	case errors.Is(err, io.ErrUnexpectedEOF):
		log.Error().Msg("input ended before the group was complete")
	default:
		log.Error().Msg(err.Error())
	}
	return exitFailure
}
