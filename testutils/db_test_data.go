package testutils

import (
	"context"
	"log"
	"time"

	"github.com/D-vidDo/league_manager/containers"
	"github.com/D-vidDo/league_manager/db"
	"github.com/D-vidDo/league_manager/model"
	"github.com/itbasis/go-clock"
)

var (
	TeamBlockParty = &model.Team{
		ID:      "team-block-party",
		Name:    "Block Party",
		Captain: "Sam Fletcher",
		Color:   "#1f77b4",
	}
	TeamNetGains = &model.Team{
		ID:      "team-net-gains",
		Name:    "Net Gains",
		Captain: "Priya Nair",
		Color:   "#d62728",
	}

	SamFletcher = &model.Player{
		ID:              "player-sam",
		Name:            "Sam Fletcher",
		PrimaryPosition: model.POS_SETTER,
		TeamID:          TeamBlockParty.ID,
		IsCaptain:       true,
		ShowStats:       true,
	}
	PriyaNair = &model.Player{
		ID:              "player-priya",
		Name:            "Priya Nair",
		PrimaryPosition: model.POS_OUTSIDE,
		TeamID:          TeamNetGains.ID,
		IsCaptain:       true,
		ShowStats:       true,
	}
	AlexRivera = &model.Player{
		ID:                "player-alex",
		Name:              "Alex Rivera",
		PrimaryPosition:   model.POS_MIDDLE,
		SecondaryPosition: model.POS_OPPOSITE,
		TeamID:            TeamBlockParty.ID,
		ShowStats:         true,
	}
	// JordanOkafor is a free agent.
	JordanOkafor = &model.Player{
		ID:              "player-jordan",
		Name:            "Jordan Okafor",
		PrimaryPosition: model.POS_LIBERO,
		ShowStats:       true,
	}
)

type TestDB struct {
	container *containers.DBContainer
	DB        db.DB
	Clock     clock.Clock
}

func NewTestDB() *TestDB {
	container := containers.NewDBContainer()
	clock := clock.New()

	db, err := db.New(context.Background(), container.ConnectionString(), clock)
	if err != nil {
		log.Fatalf("error connecting to db in test container: %v", err)
	}

	if err := InsertTestData(db); err != nil {
		log.Fatalf("error populating db in test container: %v", err)
	}

	return &TestDB{
		container: container,
		DB:        db,
		Clock:     clock,
	}
}

func (db *TestDB) Shutdown() {
	db.container.Shutdown()
}

func InsertTestData(d db.DB) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	teams := []*model.Team{TeamBlockParty, TeamNetGains}
	for _, t := range teams {
		if err := d.SaveTeam(ctx, t); err != nil {
			return err
		}
	}

	players := []*model.Player{SamFletcher, PriyaNair, AlexRivera, JordanOkafor}
	for _, p := range players {
		if err := d.SavePlayer(ctx, p); err != nil {
			return err
		}
		if p.TeamID != "" {
			if err := d.AddPlayerToRoster(ctx, p.TeamID, p.ID); err != nil {
				return err
			}
		}
	}

	return nil
}
