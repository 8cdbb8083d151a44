package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/D-vidDo/league_manager/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

// tradeEntryRecord is the wire shape of one traded player inside the
// players_traded jsonb column.
type tradeEntryRecord struct {
	PlayerID   string `json:"player_id"`
	PlayerName string `json:"player_name"`
	FromTeam   string `json:"from_team"`
	ToTeam     string `json:"to_team"`
}

func (db *postgresDB) ListTrades(ctx context.Context) ([]model.Trade, error) {
	// Trade ids are time-prefixed, so the id ordering breaks ties between
	// trades recorded on the same date.
	const query = `SELECT id, trade_date, description, players_traded
					FROM trades ORDER BY trade_date DESC, id DESC`

	rows, err := db.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error listing trades: %w", err)
	}

	results := make([]model.Trade, 0, 16)
	for rows.Next() {
		var t model.Trade
		var date pgtype.Date
		var entries []tradeEntryRecord
		if err := rows.Scan(&t.ID, &date, &t.Description, &entries); err != nil {
			return nil, fmt.Errorf("error scanning trade: %w", err)
		}
		t.Date = date.Time
		t.Players = make([]model.TradeEntry, 0, len(entries))
		for _, e := range entries {
			t.Players = append(t.Players, model.TradeEntry{
				PlayerID:   e.PlayerID,
				PlayerName: e.PlayerName,
				FromTeam:   e.FromTeam,
				ToTeam:     e.ToTeam,
			})
		}
		results = append(results, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error with rows: %w", err)
	}

	return results, nil
}

func (db *postgresDB) InsertTrade(ctx context.Context, t *model.Trade) error {
	if t == nil {
		return errors.New("InsertTrade - trade is nil")
	}

	const query = `INSERT INTO trades (id, trade_date, description, players_traded)
					VALUES (@id, @date, @description, @players)`

	entries := make([]tradeEntryRecord, 0, len(t.Players))
	for _, e := range t.Players {
		entries = append(entries, tradeEntryRecord{
			PlayerID:   e.PlayerID,
			PlayerName: e.PlayerName,
			FromTeam:   e.FromTeam,
			ToTeam:     e.ToTeam,
		})
	}

	args := pgx.NamedArgs{
		"id": t.ID,
		"date": pgtype.Date{
			Time:  t.Date,
			Valid: !t.Date.IsZero(),
		},
		"description": t.Description,
		"players":     entries,
	}
	if _, err := db.pool.Exec(ctx, query, args); err != nil {
		return fmt.Errorf("error inserting trade %s: %w", t.ID, err)
	}
	return nil
}
