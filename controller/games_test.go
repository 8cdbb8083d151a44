package controller

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/D-vidDo/league_manager/db/mockdb"
	"github.com/D-vidDo/league_manager/model"
	"github.com/itbasis/go-clock"
	"github.com/stretchr/testify/mock"
)

func TestAggregateGame(t *testing.T) {
	tests := map[string]struct {
		sets     []model.Set
		expected *model.GameResult
		wantErr  error
	}{
		"win by points": {
			sets: []model.Set{
				{SetNo: 1, PointsFor: 3, PointsAgainst: 1},
				{SetNo: 2, PointsFor: 2, PointsAgainst: 3},
			},
			expected: &model.GameResult{PointsFor: 5, PointsAgainst: 4, Result: model.ResultWin},
		},
		"tie": {
			sets: []model.Set{
				{SetNo: 1, PointsFor: 2, PointsAgainst: 2},
			},
			expected: &model.GameResult{PointsFor: 2, PointsAgainst: 2, Result: model.ResultTie},
		},
		"loss": {
			sets: []model.Set{
				{SetNo: 1, PointsFor: 18, PointsAgainst: 25},
				{SetNo: 2, PointsFor: 25, PointsAgainst: 23},
				{SetNo: 3, PointsFor: 11, PointsAgainst: 15},
			},
			expected: &model.GameResult{PointsFor: 54, PointsAgainst: 63, Result: model.ResultLoss},
		},
		"empty input": {
			sets:     nil,
			expected: &model.GameResult{Result: model.ResultTie},
		},
		"duplicate set number": {
			sets: []model.Set{
				{SetNo: 1, PointsFor: 25, PointsAgainst: 20},
				{SetNo: 1, PointsFor: 25, PointsAgainst: 22},
			},
			wantErr: ErrMalformedInput,
		},
		"negative score": {
			sets: []model.Set{
				{SetNo: 1, PointsFor: -3, PointsAgainst: 1},
			},
			wantErr: ErrMalformedInput,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			result, err := AggregateGame(tc.sets)
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("expected error %v, got: %v", tc.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("expected err to be nil, but was: %v", err)
			}
			if !reflect.DeepEqual(tc.expected, result) {
				t.Errorf("result was not as expected - actual: %+v", result)
			}
		})
	}
}

func TestAggregateGame_orderIndependent(t *testing.T) {
	sets := []model.Set{
		{SetNo: 1, PointsFor: 25, PointsAgainst: 20},
		{SetNo: 2, PointsFor: 19, PointsAgainst: 25},
		{SetNo: 3, PointsFor: 15, PointsAgainst: 12},
	}
	reversed := []model.Set{sets[2], sets[0], sets[1]}

	a, err := AggregateGame(sets)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := AggregateGame(reversed)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !reflect.DeepEqual(a, b) {
		t.Errorf("aggregate changed with input order: %+v vs %+v", a, b)
	}
}

func TestAggregateGame_idempotent(t *testing.T) {
	sets := []model.Set{
		{SetNo: 1, PointsFor: 25, PointsAgainst: 23},
		{SetNo: 2, PointsFor: 22, PointsAgainst: 25},
	}

	first, err := AggregateGame(sets)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := AggregateGame(sets)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated aggregation differed: %+v vs %+v", first, second)
	}
}

func TestCountSetWins(t *testing.T) {
	tests := map[string]struct {
		sets     []model.Set
		expected model.Result
	}{
		"two sets to one": {
			sets: []model.Set{
				{SetNo: 1, PointsFor: 25, PointsAgainst: 20},
				{SetNo: 2, PointsFor: 19, PointsAgainst: 25},
				{SetNo: 3, PointsFor: 15, PointsAgainst: 12},
			},
			expected: model.ResultWin,
		},
		"swept": {
			sets: []model.Set{
				{SetNo: 1, PointsFor: 20, PointsAgainst: 25},
				{SetNo: 2, PointsFor: 23, PointsAgainst: 25},
			},
			expected: model.ResultLoss,
		},
		"split with a tied set": {
			sets: []model.Set{
				{SetNo: 1, PointsFor: 25, PointsAgainst: 18},
				{SetNo: 2, PointsFor: 24, PointsAgainst: 24},
				{SetNo: 3, PointsFor: 21, PointsAgainst: 25},
			},
			expected: model.ResultTie,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			if got := CountSetWins(tc.sets); got != tc.expected {
				t.Errorf("expected %s, got %s", tc.expected, got)
			}
		})
	}
}

// A game can be a match-level win while losing on sets, which is why the two
// aggregation conventions must stay separate.
func TestAggregationConventionsDiverge(t *testing.T) {
	sets := []model.Set{
		{SetNo: 1, PointsFor: 25, PointsAgainst: 5},
		{SetNo: 2, PointsFor: 20, PointsAgainst: 25},
		{SetNo: 3, PointsFor: 21, PointsAgainst: 25},
	}

	agg, err := AggregateGame(sets)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if agg.Result != model.ResultWin {
		t.Errorf("match-level result should be W, got %s", agg.Result)
	}
	if got := CountSetWins(sets); got != model.ResultLoss {
		t.Errorf("set-count result should be L, got %s", got)
	}
}

func TestSortSets(t *testing.T) {
	sets := []model.Set{
		{ID: "c", SetNo: 0, PointsFor: 1, PointsAgainst: 1},
		{ID: "b", SetNo: 3},
		{ID: "a", SetNo: 1},
		{ID: "d", SetNo: 0, PointsFor: 2, PointsAgainst: 2},
	}

	sorted := SortSets(sets)

	expected := []string{"a", "b", "c", "d"}
	for i, id := range expected {
		if sorted[i].ID != id {
			t.Fatalf("position %d: expected set %s, got %s", i, id, sorted[i].ID)
		}
	}

	// Input order preserved
	if sets[0].ID != "c" {
		t.Error("SortSets mutated its input")
	}
}

func TestAddGame(t *testing.T) {
	ctx := context.Background()

	mockDB := &mockdb.DB{}
	mockDB.On("GetTeam", ctx, "t1").Return(&model.Team{ID: "t1", Name: "Block Party"}, nil)
	mockDB.On("AddGame", ctx, mock.MatchedBy(func(g *model.Game) bool {
		return g.TeamID == "t1" && len(g.Sets) == 0
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*model.Game).ID = "g1"
	}).Return(nil)

	ctrl := &controller{clock: clock.NewMock(), db: mockDB}

	g := &model.Game{TeamID: "t1", Opponent: "Dig Dynasty"}
	if err := ctrl.AddGame(ctx, g); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if g.ID != "g1" {
		t.Errorf("game id not assigned: %q", g.ID)
	}

	mockDB.AssertExpectations(t)
	mockDB.AssertNotCalled(t, "InsertSets", mock.Anything, mock.Anything, mock.Anything)
}

// Sets embedded in a new game must reach the same crediting pipeline as sets
// recorded afterwards: player stats first, then the team totals refresh.
func TestAddGame_embeddedSetsAreCredited(t *testing.T) {
	ctx := context.Background()
	sets := []model.Set{
		{SetNo: 1, PointsFor: 25, PointsAgainst: 20},
		{SetNo: 2, PointsFor: 23, PointsAgainst: 25},
	}

	mockDB := &mockdb.DB{}
	mockDB.On("GetTeam", ctx, "t1").Return(&model.Team{ID: "t1", Name: "Block Party"}, nil)
	mockDB.On("AddGame", ctx, mock.MatchedBy(func(g *model.Game) bool {
		return g.TeamID == "t1" && len(g.Sets) == 0
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*model.Game).ID = "g1"
	}).Return(nil)
	mockDB.On("GetGame", ctx, "g1").Return(&model.Game{ID: "g1", TeamID: "t1"}, nil)
	mockDB.On("GetPlayersByTeam", ctx, "t1").Return([]model.Player{
		{ID: "p1", Name: "Sam"},
		{ID: "p2", Name: "Alex"},
	}, nil)
	mockDB.On("InsertSets", ctx, "g1", sets).Return(nil)
	mockDB.On("AddPlayerStats", ctx, "p1", 3, 2).Return(nil)
	mockDB.On("AddPlayerStats", ctx, "p2", 3, 2).Return(nil)
	mockDB.On("ListGamesByTeam", ctx, "t1").Return([]model.Game{
		{ID: "g1", TeamID: "t1", Sets: sets},
	}, nil)
	mockDB.On("UpdateTeamTotals", ctx, "t1", 1, 0, 48, 45).Return(nil)

	ctrl := &controller{clock: clock.NewMock(), db: mockDB}

	g := &model.Game{TeamID: "t1", Opponent: "Dig Dynasty", Sets: sets}
	if err := ctrl.AddGame(ctx, g); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	mockDB.AssertExpectations(t)
}

func TestAddGame_missingTeam(t *testing.T) {
	ctrl := &controller{clock: clock.NewMock(), db: &mockdb.DB{}}

	err := ctrl.AddGame(context.Background(), &model.Game{Opponent: "Dig Dynasty"})
	if !errors.Is(err, ErrMalformedInput) {
		t.Fatalf("expected ErrMalformedInput, got: %v", err)
	}
}

func TestRecordSets(t *testing.T) {
	ctx := context.Background()
	game := &model.Game{ID: "g1", TeamID: "t1", Opponent: "Net Gains"}
	sets := []model.Set{
		{SetNo: 1, PointsFor: 25, PointsAgainst: 20},
		{SetNo: 2, PointsFor: 23, PointsAgainst: 25},
	}

	mockDB := &mockdb.DB{}
	mockDB.On("GetGame", ctx, "g1").Return(game, nil)
	mockDB.On("InsertSets", ctx, "g1", sets).Return(nil)
	// +3 over two counted sets for both listed players
	mockDB.On("AddPlayerStats", ctx, "p1", 3, 2).Return(nil)
	mockDB.On("AddPlayerStats", ctx, "p2", 3, 2).Return(nil)
	mockDB.On("ListGamesByTeam", ctx, "t1").Return([]model.Game{
		{ID: "g1", TeamID: "t1", Sets: sets},
	}, nil)
	mockDB.On("UpdateTeamTotals", ctx, "t1", 1, 0, 48, 45).Return(nil)

	ctrl := &controller{clock: clock.NewMock(), db: mockDB}

	if err := ctrl.RecordSets(ctx, "g1", []string{"p1", "p2"}, sets); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	mockDB.AssertExpectations(t)
}

func TestRecordSets_duplicateWithStored(t *testing.T) {
	ctx := context.Background()
	game := &model.Game{
		ID:     "g1",
		TeamID: "t1",
		Sets:   []model.Set{{ID: "s1", SetNo: 1, PointsFor: 25, PointsAgainst: 20}},
	}

	mockDB := &mockdb.DB{}
	mockDB.On("GetGame", ctx, "g1").Return(game, nil)

	ctrl := &controller{clock: clock.NewMock(), db: mockDB}

	err := ctrl.RecordSets(ctx, "g1", []string{"p1"}, []model.Set{
		{SetNo: 1, PointsFor: 20, PointsAgainst: 25},
	})
	if !errors.Is(err, ErrMalformedInput) {
		t.Fatalf("expected ErrMalformedInput, got: %v", err)
	}

	mockDB.AssertNotCalled(t, "InsertSets", mock.Anything, mock.Anything, mock.Anything)
}

func TestRecordSets_partialFailure(t *testing.T) {
	ctx := context.Background()
	game := &model.Game{ID: "g1", TeamID: "t1"}
	sets := []model.Set{{SetNo: 1, PointsFor: 25, PointsAgainst: 20}}
	boom := errors.New("connection reset")

	mockDB := &mockdb.DB{}
	mockDB.On("GetGame", ctx, "g1").Return(game, nil)
	mockDB.On("InsertSets", ctx, "g1", sets).Return(nil)
	mockDB.On("AddPlayerStats", ctx, "p1", 5, 1).Return(nil)
	mockDB.On("AddPlayerStats", ctx, "p2", 5, 1).Return(boom)

	ctrl := &controller{clock: clock.NewMock(), db: mockDB}

	err := ctrl.RecordSets(ctx, "g1", []string{"p1", "p2"}, sets)
	var pf *PartialFailureError
	if !errors.As(err, &pf) {
		t.Fatalf("expected a PartialFailureError, got: %v", err)
	}
	if pf.Failed != "update stats for player p2" {
		t.Errorf("unexpected failed step: %s", pf.Failed)
	}
	expectedCompleted := []string{"insert sets", "update stats for player p1"}
	if !reflect.DeepEqual(pf.Completed, expectedCompleted) {
		t.Errorf("unexpected completed steps: %v", pf.Completed)
	}
	if !errors.Is(err, boom) {
		t.Error("underlying cause not wrapped")
	}

	mockDB.AssertNotCalled(t, "UpdateTeamTotals",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestRecordSets_defaultsToRoster(t *testing.T) {
	ctx := context.Background()
	game := &model.Game{ID: "g1", TeamID: "t1"}
	sets := []model.Set{{SetNo: 1, PointsFor: 25, PointsAgainst: 21}}

	mockDB := &mockdb.DB{}
	mockDB.On("GetGame", ctx, "g1").Return(game, nil)
	mockDB.On("GetPlayersByTeam", ctx, "t1").Return([]model.Player{
		{ID: "p1", Name: "Sam"},
		{ID: "p2", Name: "Alex"},
	}, nil)
	mockDB.On("InsertSets", ctx, "g1", sets).Return(nil)
	mockDB.On("AddPlayerStats", ctx, "p1", 4, 1).Return(nil)
	mockDB.On("AddPlayerStats", ctx, "p2", 4, 1).Return(nil)
	mockDB.On("ListGamesByTeam", ctx, "t1").Return([]model.Game{
		{ID: "g1", TeamID: "t1", Sets: sets},
	}, nil)
	mockDB.On("UpdateTeamTotals", ctx, "t1", 1, 0, 25, 21).Return(nil)

	ctrl := &controller{clock: clock.NewMock(), db: mockDB}

	if err := ctrl.RecordSets(ctx, "g1", nil, sets); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	mockDB.AssertExpectations(t)
}
