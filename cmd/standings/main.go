package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/maxviazov/tournament-standings/internal/config"
	"github.com/maxviazov/tournament-standings/internal/input"
	"github.com/maxviazov/tournament-standings/internal/logger"
	"github.com/maxviazov/tournament-standings/internal/model"
	"github.com/maxviazov/tournament-standings/internal/service"
	"github.com/maxviazov/tournament-standings/pkg/response"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout)
	stop()
	os.Exit(code)
}

// run computes statistics for every tournament document named in args and writes them to stdout:
// one object for a single document, an array otherwise. Failures write an error envelope instead.
func run(ctx context.Context, args []string, stdout io.Writer) int {
	fs := flag.NewFlagSet("standings", flag.ContinueOnError)
	configPath := fs.String("config", "", "path to config.yaml (optional, APP_* env vars override)")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "usage: standings [-config path] [tournament.json ...]\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return response.ExitInvalid
	}

	// Load application config
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Printf("❌ Config loading failed: %v", err)
		return response.ExitInternal
	}

	// Initialize logger
	appLogger, err := logger.New(&cfg.Logger)
	if err != nil {
		log.Printf("❌ Logger initialization failed: %v", err)
		return response.ExitInternal
	}

	paths := fs.Args()
	if len(paths) == 0 {
		paths = []string{input.Stdin}
	}

	tournaments := make([]*model.Tournament, 0, len(paths))
	for _, p := range paths {
		t, err := input.ReadFile(p)
		if err != nil {
			appLogger.Error().Err(err).Str("path", p).Msg("failed to read tournament")
			return response.WriteError(stdout, err)
		}
		tournaments = append(tournaments, t)
	}

	svc := service.NewStatisticsService(service.Options{
		SkipUnplayed: cfg.Stats.SkipUnplayed,
		Workers:      cfg.Stats.Workers,
	}, appLogger)

	results, err := svc.ComputeBatch(ctx, tournaments)
	if err != nil {
		ev := appLogger.Error().Err(err)
		if errors.Is(err, service.ErrInvalidInput) {
			ev = ev.Interface("field_errors", service.FieldErrors(err))
		}
		ev.Msg("statistics computation failed")
		return response.WriteError(stdout, err)
	}

	var out any = results
	if len(results) == 1 {
		out = results[0]
	}
	if err := response.WriteData(stdout, out); err != nil {
		appLogger.Error().Err(err).Msg("failed to write statistics")
		return response.ExitInternal
	}
	appLogger.Debug().Int("tournaments", len(results)).Msg("✅ Statistics written")
	return response.ExitOK
}
