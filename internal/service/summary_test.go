package service_test

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hooplytics/playtype-stats-service/internal/model"
	"github.com/hooplytics/playtype-stats-service/internal/repository"
	"github.com/hooplytics/playtype-stats-service/internal/service"
)

type fakePlayerRepo struct {
	players map[int64]model.Player
}

func (f *fakePlayerRepo) InsertIgnore(context.Context, model.Player) error { return nil }

func (f *fakePlayerRepo) GetByPlayerID(_ context.Context, playerID int64) (model.Player, error) {
	p, ok := f.players[playerID]
	if !ok {
		return model.Player{}, repository.ErrNotFound
	}
	return p, nil
}

func (f *fakePlayerRepo) List(context.Context) ([]model.Player, error) { return nil, nil }

var _ repository.PlayerRepository = (*fakePlayerRepo)(nil)

// fakeEventRepo keys events by action type. Entries under unrecognized
// action types are reachable only if the aggregator asks for them, which it
// must not.
type fakeEventRepo struct {
	shots     map[string][]model.Shot
	passes    map[string][]model.Pass
	turnovers map[string][]model.Turnover
	err       error
}

func (f *fakeEventRepo) InsertShot(context.Context, model.Shot) error         { return nil }
func (f *fakeEventRepo) InsertPass(context.Context, model.Pass) error         { return nil }
func (f *fakeEventRepo) InsertTurnover(context.Context, model.Turnover) error { return nil }

func (f *fakeEventRepo) ListShotsByAction(_ context.Context, playerID int64, actionType string) ([]model.Shot, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []model.Shot
	for _, s := range f.shots[actionType] {
		if s.PlayerID == playerID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeEventRepo) ListPassesByAction(_ context.Context, playerID int64, actionType string) ([]model.Pass, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []model.Pass
	for _, p := range f.passes[actionType] {
		if p.PlayerID == playerID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeEventRepo) ListTurnoversByAction(_ context.Context, playerID int64, actionType string) ([]model.Turnover, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []model.Turnover
	for _, t := range f.turnovers[actionType] {
		if t.PlayerID == playerID {
			out = append(out, t)
		}
	}
	return out, nil
}

var _ repository.EventRepository = (*fakeEventRepo)(nil)

func newSummaryService(players *fakePlayerRepo, events *fakeEventRepo) service.SummaryService {
	return service.NewSummaryService(players, events, zerolog.New(io.Discard))
}

func TestSummaryService_UnknownPlayerIsNotFound(t *testing.T) {
	svc := newSummaryService(
		&fakePlayerRepo{players: map[int64]model.Player{}},
		&fakeEventRepo{},
	)
	_, err := svc.GetPlayerSummary(context.Background(), 42)
	require.ErrorIs(t, err, repository.ErrNotFound)
}

func TestSummaryService_MixedActivityBreakdown(t *testing.T) {
	players := &fakePlayerRepo{players: map[int64]model.Player{
		1: {PlayerID: 1, FirstName: "Jane", LastName: "Doe", FullName: "Jane Doe"},
	}}
	events := &fakeEventRepo{
		shots: map[string][]model.Shot{
			model.ActionPickAndRoll: {{PlayerID: 1, ActionType: model.ActionPickAndRoll, LocX: 10, LocY: 5, Points: 2}},
		},
		passes: map[string][]model.Pass{
			model.ActionIsolation: {{PlayerID: 1, ActionType: model.ActionIsolation, IsCompleted: true}},
		},
	}

	got, err := newSummaryService(players, events).GetPlayerSummary(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, "Jane Doe", got.Name)
	assert.Equal(t, int64(1), got.PlayerID)
	assert.Equal(t, 1, got.TotalShotAttempts)
	assert.Equal(t, 2, got.TotalPoints)
	assert.Equal(t, 1, got.TotalPasses)
	assert.Equal(t, 1, got.PickAndRollCount)
	assert.Equal(t, 1, got.IsolationCount)
	assert.Equal(t, 0, got.PostUpCount)
	assert.Equal(t, 0, got.OffBallScreenCount)

	require.Len(t, got.PickAndRoll.Shots, 1)
	assert.Equal(t, [2]float64{10, 5}, got.PickAndRoll.Shots[0].Loc)
	require.Len(t, got.Isolation.Passes, 1)
	assert.True(t, got.Isolation.Passes[0].IsCompleted)
}

func TestSummaryService_PassingTurnoverCountedOnceAsPass(t *testing.T) {
	players := &fakePlayerRepo{players: map[int64]model.Player{
		1: {PlayerID: 1, FullName: "Jane Doe"},
	}}
	events := &fakeEventRepo{
		passes: map[string][]model.Pass{
			model.ActionPickAndRoll: {
				{PlayerID: 1, ActionType: model.ActionPickAndRoll, IsCompleted: false, IsTurnover: true},
			},
		},
	}

	got, err := newSummaryService(players, events).GetPlayerSummary(context.Background(), 1)
	require.NoError(t, err)

	// A pass-borne turnover is a pass and a passing turnover; it never
	// bleeds into totalTurnovers, which counts the turnover table alone.
	assert.Equal(t, 1, got.TotalPasses)
	assert.Equal(t, 1, got.TotalPassingTurnovers)
	assert.Equal(t, 0, got.TotalTurnovers)
	// And the action count picks it up exactly once, as a pass.
	assert.Equal(t, 1, got.PickAndRollCount)
}

func TestSummaryService_TotalsAreSumOfCategories(t *testing.T) {
	players := &fakePlayerRepo{players: map[int64]model.Player{
		1: {PlayerID: 1, FullName: "Sam Roe"},
	}}
	events := &fakeEventRepo{
		shots: map[string][]model.Shot{
			model.ActionPickAndRoll:   {{PlayerID: 1, Points: 3}, {PlayerID: 1, Points: 0}},
			model.ActionIsolation:     {{PlayerID: 1, Points: 2}},
			model.ActionPostUp:        {{PlayerID: 1, Points: 2}, {PlayerID: 1, Points: 2}},
			model.ActionOffBallScreen: {{PlayerID: 1, Points: 3}},
		},
		passes: map[string][]model.Pass{
			model.ActionPickAndRoll: {{PlayerID: 1, IsPotentialAssist: true}},
			model.ActionPostUp:      {{PlayerID: 1}, {PlayerID: 1, IsTurnover: true}},
		},
		turnovers: map[string][]model.Turnover{
			model.ActionIsolation: {{PlayerID: 1}},
		},
	}

	got, err := newSummaryService(players, events).GetPlayerSummary(context.Background(), 1)
	require.NoError(t, err)

	byAction := []model.ActionBreakdown{got.PickAndRoll, got.Isolation, got.PostUp, got.OffBallScreen}
	var sumShots, sumPoints, sumPasses, sumAssists, sumTurnovers, sumPassingTOs int
	for _, b := range byAction {
		sumShots += b.TotalShotAttempts
		sumPoints += b.TotalPoints
		sumPasses += b.TotalPasses
		sumAssists += b.TotalPotentialAssists
		sumTurnovers += b.TotalTurnovers
		sumPassingTOs += b.TotalPassingTurnovers
	}

	assert.Equal(t, sumShots, got.TotalShotAttempts)
	assert.Equal(t, sumPoints, got.TotalPoints)
	assert.Equal(t, sumPasses, got.TotalPasses)
	assert.Equal(t, sumAssists, got.TotalPotentialAssists)
	assert.Equal(t, sumTurnovers, got.TotalTurnovers)
	assert.Equal(t, sumPassingTOs, got.TotalPassingTurnovers)

	assert.Equal(t, 10, got.TotalPoints)
	assert.Equal(t, 6, got.TotalShotAttempts)
	assert.Equal(t, 3, got.PickAndRollCount)
	assert.Equal(t, 2, got.IsolationCount)
	assert.Equal(t, 4, got.PostUpCount)
	assert.Equal(t, 1, got.OffBallScreenCount)

	// Each category's points equal the sum of that category's shot points.
	assert.Equal(t, 3, got.PickAndRoll.TotalPoints)
	assert.Equal(t, 2, got.Isolation.TotalPoints)
	assert.Equal(t, 4, got.PostUp.TotalPoints)
	assert.Equal(t, 3, got.OffBallScreen.TotalPoints)
}

func TestSummaryService_UnrecognizedActionTypesExcluded(t *testing.T) {
	players := &fakePlayerRepo{players: map[int64]model.Player{
		1: {PlayerID: 1, FullName: "Sam Roe"},
	}}
	events := &fakeEventRepo{
		shots: map[string][]model.Shot{
			"dribbleHandoff":        {{PlayerID: 1, Points: 2}},
			model.ActionPickAndRoll: {{PlayerID: 1, Points: 3}},
		},
		turnovers: map[string][]model.Turnover{
			"transition": {{PlayerID: 1}},
		},
	}

	got, err := newSummaryService(players, events).GetPlayerSummary(context.Background(), 1)
	require.NoError(t, err)

	// Only the recognized pickAndRoll shot shows up anywhere.
	assert.Equal(t, 1, got.TotalShotAttempts)
	assert.Equal(t, 3, got.TotalPoints)
	assert.Equal(t, 0, got.TotalTurnovers)
	assert.Equal(t, 1, got.PickAndRollCount)
	assert.Equal(t, 0, got.IsolationCount+got.PostUpCount+got.OffBallScreenCount)
}

func TestSummaryService_NoEventsYieldsZeroSummary(t *testing.T) {
	players := &fakePlayerRepo{players: map[int64]model.Player{
		5: {PlayerID: 5, FullName: "Idle Player"},
	}}

	got, err := newSummaryService(players, &fakeEventRepo{}).GetPlayerSummary(context.Background(), 5)
	require.NoError(t, err)

	assert.Equal(t, 0, got.TotalShotAttempts)
	assert.Equal(t, 0, got.TotalPoints)
	assert.Equal(t, 0, got.TotalPasses)
	// Empty lists stay non-nil so they serialize as [] rather than null.
	assert.NotNil(t, got.PickAndRoll.Shots)
	assert.NotNil(t, got.OffBallScreen.Turnovers)
	assert.Empty(t, got.PickAndRoll.Shots)
}

func TestSummaryService_StorageFailurePropagates(t *testing.T) {
	players := &fakePlayerRepo{players: map[int64]model.Player{
		1: {PlayerID: 1, FullName: "Jane Doe"},
	}}
	boom := errors.New("connection reset")

	_, err := newSummaryService(players, &fakeEventRepo{err: boom}).GetPlayerSummary(context.Background(), 1)
	require.ErrorIs(t, err, boom)
}
