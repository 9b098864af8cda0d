package service_test

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maxviazov/tournament-standings/internal/model"
	"github.com/maxviazov/tournament-standings/internal/service"
)

func score(v int) *int { return &v }

func newSvc(opts service.Options) service.StatisticsService {
	return service.NewStatisticsService(opts, zerolog.New(io.Discard))
}

func TestStatisticsService_ComputeStatistics_Validation(t *testing.T) {
	svc := newSvc(service.Options{})

	cases := []struct {
		name    string
		in      *model.Tournament
		wantErr bool
		field   string
	}{
		{"same players", &model.Tournament{Matches: []model.Match{{Player1ID: 3, Player2ID: 3}}}, true, "matches[0].player2Id"},
		{"negative score", &model.Tournament{Matches: []model.Match{{Player1ID: 1, Player2ID: 2, Score1: score(-1)}}}, true, "matches[0].score1"},
		{"negative round", &model.Tournament{Matches: []model.Match{{Player1ID: 1, Player2ID: 2, Round: -2}}}, true, "matches[0].round"},
		{"bad type", &model.Tournament{Type: "SWISS"}, true, "tournamentType"},
		{"second match", &model.Tournament{Matches: []model.Match{
			{Player1ID: 1, Player2ID: 2},
			{Player1ID: 1, Player2ID: 2, Score2: score(-4)},
		}}, true, "matches[1].score2"},
		{"ok group", &model.Tournament{Type: model.TournamentGroup, Matches: []model.Match{{Player1ID: 1, Player2ID: 2, Score1: score(1), Score2: score(0)}}}, false, ""},
		{"ok untyped", &model.Tournament{}, false, ""},
		{"nil", nil, false, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.ComputeStatistics(context.Background(), tc.in)
			if !tc.wantErr {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, service.ErrInvalidInput)
			found := false
			for _, fe := range service.FieldErrors(err) {
				if fe.Field == tc.field {
					found = true
					break
				}
			}
			assert.True(t, found, "missing field error %s in %v", tc.field, service.FieldErrors(err))
		})
	}
}

func TestStatisticsService_ComputeStatistics_NilTournament(t *testing.T) {
	got, err := newSvc(service.Options{}).ComputeStatistics(context.Background(), nil)
	require.NoError(t, err)
	assert.Nil(t, got.TopScorerID)
	assert.NotNil(t, got.Standings)
	assert.Empty(t, got.Standings)
}

func TestStatisticsService_SkipUnplayed(t *testing.T) {
	tour := &model.Tournament{Matches: []model.Match{
		{Player1ID: 1, Player2ID: 2},
		{Player1ID: 3, Player2ID: 4, Score1: score(2), Score2: score(1)},
	}}

	loose, err := newSvc(service.Options{}).ComputeStatistics(context.Background(), tour)
	require.NoError(t, err)
	assert.Len(t, loose.Standings, 4)

	strict, err := newSvc(service.Options{SkipUnplayed: true}).ComputeStatistics(context.Background(), tour)
	require.NoError(t, err)
	assert.Len(t, strict.Standings, 2)
	assert.Equal(t, 3, strict.Standings[0].PlayerID)
}

func TestStatisticsService_ComputeStatistics_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := newSvc(service.Options{}).ComputeStatistics(ctx, &model.Tournament{})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestStatisticsService_ComputeBatch_KeepsOrder(t *testing.T) {
	svc := newSvc(service.Options{Workers: 2})
	var batch []*model.Tournament
	for i := 1; i <= 10; i++ {
		batch = append(batch, &model.Tournament{Matches: []model.Match{
			{Player1ID: i, Player2ID: 100 + i, Score1: score(i), Score2: score(0)},
		}})
	}
	batch = append(batch, nil)

	got, err := svc.ComputeBatch(context.Background(), batch)
	require.NoError(t, err)
	require.Len(t, got, len(batch))
	for i := 0; i < 10; i++ {
		require.NotNil(t, got[i].TopScorerID)
		assert.Equal(t, i+1, *got[i].TopScorerID)
		assert.Equal(t, i+1, got[i].TopScorerGoals)
	}
	assert.Empty(t, got[10].Standings)
}

func TestStatisticsService_ComputeBatch_InvalidFails(t *testing.T) {
	svc := newSvc(service.Options{})
	batch := []*model.Tournament{
		{Matches: []model.Match{{Player1ID: 1, Player2ID: 2}}},
		{Matches: []model.Match{{Player1ID: 4, Player2ID: 4}}},
	}
	got, err := svc.ComputeBatch(context.Background(), batch)
	assert.Nil(t, got)
	assert.True(t, errors.Is(err, service.ErrInvalidInput))
}

func TestFieldErrors(t *testing.T) {
	assert.Nil(t, service.FieldErrors(nil))
	assert.Nil(t, service.FieldErrors(errors.New("boom")))
	assert.Nil(t, service.NewInvalidInputError(nil))

	err := service.NewInvalidInputError([]service.FieldError{{Field: "round", Message: "must be >= 0"}})
	assert.Equal(t, "invalid input", err.Error())
	assert.Len(t, service.FieldErrors(err), 1)
}
