package controller

import (
	"context"
	"errors"
	"testing"

	"github.com/D-vidDo/league_manager/db"
	"github.com/D-vidDo/league_manager/db/mockdb"
	"github.com/D-vidDo/league_manager/model"
	"github.com/itbasis/go-clock"
	"github.com/stretchr/testify/mock"
)

func TestMovePlayer(t *testing.T) {
	ctx := context.Background()

	mockDB := &mockdb.DB{}
	mockDB.On("GetPlayer", ctx, "p1").Return(&model.Player{ID: "p1", Name: "Sam", TeamID: "t1"}, nil)
	mockDB.On("GetTeam", ctx, "t1").Return(&model.Team{ID: "t1", Name: "Block Party", PlayerIDs: []string{"p1"}}, nil)
	mockDB.On("GetTeam", ctx, "t2").Return(&model.Team{ID: "t2", Name: "Net Gains"}, nil)
	mockDB.On("UpdatePlayerTeam", ctx, "p1", "t2").Return(nil)
	mockDB.On("RemovePlayerFromRoster", ctx, "t1", "p1").Return(nil)
	mockDB.On("AddPlayerToRoster", ctx, "t2", "p1").Return(nil)

	ctrl := &controller{clock: clock.NewMock(), db: mockDB}

	if err := ctrl.MovePlayer(ctx, "p1", "t1", "t2"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	mockDB.AssertExpectations(t)
}

func TestMovePlayer_toFreeAgency(t *testing.T) {
	ctx := context.Background()

	mockDB := &mockdb.DB{}
	mockDB.On("GetPlayer", ctx, "p1").Return(&model.Player{ID: "p1", Name: "Sam", TeamID: "t1"}, nil)
	mockDB.On("GetTeam", ctx, "t1").Return(&model.Team{ID: "t1", PlayerIDs: []string{"p1"}}, nil)
	mockDB.On("UpdatePlayerTeam", ctx, "p1", "").Return(nil)
	mockDB.On("RemovePlayerFromRoster", ctx, "t1", "p1").Return(nil)

	ctrl := &controller{clock: clock.NewMock(), db: mockDB}

	if err := ctrl.MovePlayer(ctx, "p1", "t1", ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	mockDB.AssertNotCalled(t, "AddPlayerToRoster", mock.Anything, mock.Anything, mock.Anything)
}

func TestMovePlayer_signFreeAgent(t *testing.T) {
	ctx := context.Background()

	mockDB := &mockdb.DB{}
	mockDB.On("GetPlayer", ctx, "p1").Return(&model.Player{ID: "p1", Name: "Sam"}, nil)
	mockDB.On("GetTeam", ctx, "t2").Return(&model.Team{ID: "t2"}, nil)
	mockDB.On("UpdatePlayerTeam", ctx, "p1", "t2").Return(nil)
	mockDB.On("AddPlayerToRoster", ctx, "t2", "p1").Return(nil)

	ctrl := &controller{clock: clock.NewMock(), db: mockDB}

	if err := ctrl.MovePlayer(ctx, "p1", "", "t2"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	mockDB.AssertNotCalled(t, "RemovePlayerFromRoster", mock.Anything, mock.Anything, mock.Anything)
}

func TestMovePlayer_playerNotFound(t *testing.T) {
	ctx := context.Background()

	mockDB := &mockdb.DB{}
	mockDB.On("GetPlayer", ctx, "nope").Return(nil, db.ErrPlayerNotFound)

	ctrl := &controller{clock: clock.NewMock(), db: mockDB}

	err := ctrl.MovePlayer(ctx, "nope", "t1", "t2")
	if !errors.Is(err, db.ErrPlayerNotFound) {
		t.Fatalf("expected ErrPlayerNotFound, got: %v", err)
	}

	mockDB.AssertNotCalled(t, "UpdatePlayerTeam", mock.Anything, mock.Anything, mock.Anything)
}

func TestMovePlayer_wrongSourceTeam(t *testing.T) {
	ctx := context.Background()

	mockDB := &mockdb.DB{}
	mockDB.On("GetPlayer", ctx, "p1").Return(&model.Player{ID: "p1", Name: "Sam", TeamID: "t9"}, nil)
	mockDB.On("GetTeam", ctx, "t1").Return(&model.Team{ID: "t1"}, nil)
	mockDB.On("GetTeam", ctx, "t2").Return(&model.Team{ID: "t2"}, nil)

	ctrl := &controller{clock: clock.NewMock(), db: mockDB}

	err := ctrl.MovePlayer(ctx, "p1", "t1", "t2")
	if !errors.Is(err, ErrInvariantViolation) {
		t.Fatalf("expected ErrInvariantViolation, got: %v", err)
	}

	// Rejected moves must not write anything.
	mockDB.AssertNotCalled(t, "UpdatePlayerTeam", mock.Anything, mock.Anything, mock.Anything)
	mockDB.AssertNotCalled(t, "RemovePlayerFromRoster", mock.Anything, mock.Anything, mock.Anything)
	mockDB.AssertNotCalled(t, "AddPlayerToRoster", mock.Anything, mock.Anything, mock.Anything)
}

func TestMovePlayer_partialFailure(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("connection reset")

	mockDB := &mockdb.DB{}
	mockDB.On("GetPlayer", ctx, "p1").Return(&model.Player{ID: "p1", Name: "Sam", TeamID: "t1"}, nil)
	mockDB.On("GetTeam", ctx, "t1").Return(&model.Team{ID: "t1", PlayerIDs: []string{"p1"}}, nil)
	mockDB.On("GetTeam", ctx, "t2").Return(&model.Team{ID: "t2"}, nil)
	mockDB.On("UpdatePlayerTeam", ctx, "p1", "t2").Return(nil)
	mockDB.On("RemovePlayerFromRoster", ctx, "t1", "p1").Return(boom)

	ctrl := &controller{clock: clock.NewMock(), db: mockDB}

	err := ctrl.MovePlayer(ctx, "p1", "t1", "t2")
	var pf *PartialFailureError
	if !errors.As(err, &pf) {
		t.Fatalf("expected a PartialFailureError, got: %v", err)
	}
	if pf.Failed != "remove from source roster" {
		t.Errorf("unexpected failed step: %s", pf.Failed)
	}
	if len(pf.Completed) != 1 || pf.Completed[0] != "update player team" {
		t.Errorf("unexpected completed steps: %v", pf.Completed)
	}

	// No automatic rollback and no further steps.
	mockDB.AssertNotCalled(t, "AddPlayerToRoster", mock.Anything, mock.Anything, mock.Anything)
}
