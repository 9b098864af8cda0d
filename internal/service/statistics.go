package service

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/maxviazov/tournament-standings/internal/model"
	"github.com/maxviazov/tournament-standings/internal/stats"
)

const defaultWorkers = 4

// Options selects engine behavior for every call made through the service.
type Options struct {
	// SkipUnplayed drops matches without any recorded score instead of counting them as 0-0.
	SkipUnplayed bool
	// Workers bounds concurrent computations in ComputeBatch.
	Workers int
}

type statisticsService struct {
	opts     Options
	validate *validator.Validate
	log      zerolog.Logger
}

func NewStatisticsService(opts Options, logger zerolog.Logger) StatisticsService {
	if opts.Workers <= 0 {
		opts.Workers = defaultWorkers
	}
	l := logger.With().Str("module", "service").Str("component", "statistics").Logger()
	return &statisticsService{opts: opts, validate: newValidator(), log: l}
}

func (s *statisticsService) ComputeStatistics(ctx context.Context, t *model.Tournament) (model.Statistics, error) {
	if err := ctx.Err(); err != nil {
		return model.Statistics{}, err
	}
	if t == nil {
		s.log.Debug().Msg("no tournament given, returning empty statistics")
		return stats.Compute(nil), nil
	}

	if err := validateTournament(s.validate, t); err != nil {
		s.log.Debug().Interface("field_errors", FieldErrors(err)).Msg("tournament validation failed")
		return model.Statistics{}, err
	}

	start := time.Now()
	out := stats.Compute(t, s.engineOptions()...)
	s.log.Debug().
		Int("matches", len(t.Matches)).
		Int("players", len(out.Standings)).
		Bool("skip_unplayed", s.opts.SkipUnplayed).
		Dur("took", time.Since(start)).
		Msg("statistics computed")
	return out, nil
}

func (s *statisticsService) ComputeBatch(ctx context.Context, ts []*model.Tournament) ([]model.Statistics, error) {
	out := make([]model.Statistics, len(ts))
	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(s.opts.Workers)
	for i, t := range ts {
		i, t := i, t
		g.Go(func() error {
			res, err := s.ComputeStatistics(gCtx, t)
			if err != nil {
				s.log.Error().Err(err).Int("index", i).Msg("compute statistics failed")
				return err
			}
			out[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *statisticsService) engineOptions() []stats.Option {
	if s.opts.SkipUnplayed {
		return []stats.Option{stats.SkipUnplayed()}
	}
	return nil
}
