package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/D-vidDo/league_manager/model"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const playerColumns = `id, name, primary_position, secondary_position, team_id,
						plus_minus, games_played, stats, is_captain, show_stats,
						created, updated`

func (db *postgresDB) GetPlayer(ctx context.Context, id string) (*model.Player, error) {
	const query = `SELECT ` + playerColumns + ` FROM players WHERE id=@id`

	row := db.pool.QueryRow(ctx, query, pgx.NamedArgs{"id": id})
	p, err := scanPlayer(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrPlayerNotFound
		}
		return nil, fmt.Errorf("error scanning player %s: %w", id, err)
	}
	return p, nil
}

func (db *postgresDB) ListPlayers(ctx context.Context) ([]model.Player, error) {
	const query = `SELECT ` + playerColumns + ` FROM players ORDER BY name`
	return db.queryPlayers(ctx, query, nil)
}

func (db *postgresDB) GetPlayersByTeam(ctx context.Context, teamID string) ([]model.Player, error) {
	const query = `SELECT ` + playerColumns + ` FROM players WHERE team_id=@teamID ORDER BY name`
	return db.queryPlayers(ctx, query, pgx.NamedArgs{"teamID": teamID})
}

func (db *postgresDB) GetFreeAgents(ctx context.Context) ([]model.Player, error) {
	const query = `SELECT ` + playerColumns + ` FROM players WHERE team_id IS NULL ORDER BY name`
	return db.queryPlayers(ctx, query, nil)
}

func (db *postgresDB) SavePlayer(ctx context.Context, p *model.Player) error {
	if p == nil {
		return errors.New("SavePlayer - player is nil")
	}
	if p.ID == "" {
		p.ID = uuid.NewString()
	}

	const query = `INSERT INTO players (id, name, primary_position, secondary_position,
						team_id, plus_minus, games_played, stats, is_captain, show_stats, updated)
					VALUES (@id, @name, @primaryPosition, @secondaryPosition,
						@teamID, @plusMinus, @gamesPlayed, @stats, @isCaptain, @showStats, @updated)
					ON CONFLICT (id) DO UPDATE
					SET name=@name, primary_position=@primaryPosition,
						secondary_position=@secondaryPosition, stats=@stats,
						is_captain=@isCaptain, show_stats=@showStats, updated=@updated`

	args := pgx.NamedArgs{
		"id":              p.ID,
		"name":            p.Name,
		"primaryPosition": string(p.PrimaryPosition),
		"secondaryPosition": sql.NullString{
			String: string(p.SecondaryPosition),
			Valid:  p.SecondaryPosition != "" && p.SecondaryPosition != model.POS_UNKNOWN,
		},
		"teamID": sql.NullString{
			String: p.TeamID,
			Valid:  p.TeamID != "",
		},
		"plusMinus":   p.PlusMinus,
		"gamesPlayed": p.GamesPlayed,
		"stats":       p.Stats,
		"isCaptain":   p.IsCaptain,
		"showStats":   p.ShowStats,
		"updated": pgtype.Timestamptz{
			Time:             db.clock.Now().UTC(),
			InfinityModifier: pgtype.Finite,
			Valid:            true,
		},
	}
	if _, err := db.pool.Exec(ctx, query, args); err != nil {
		return fmt.Errorf("error saving player (%s): %w", p.Name, err)
	}
	return nil
}

func (db *postgresDB) DeletePlayer(ctx context.Context, id string) error {
	const query = `DELETE FROM players WHERE id=@id`

	tag, err := db.pool.Exec(ctx, query, pgx.NamedArgs{"id": id})
	if err != nil {
		return fmt.Errorf("error deleting player %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrPlayerNotFound
	}
	return nil
}

func (db *postgresDB) UpdatePlayerTeam(ctx context.Context, playerID, teamID string) error {
	const query = `UPDATE players SET team_id=@teamID, updated=@updated WHERE id=@playerID`

	args := pgx.NamedArgs{
		"playerID": playerID,
		"teamID": sql.NullString{
			String: teamID,
			Valid:  teamID != "",
		},
		"updated": pgtype.Timestamptz{
			Time:             db.clock.Now().UTC(),
			InfinityModifier: pgtype.Finite,
			Valid:            true,
		},
	}
	tag, err := db.pool.Exec(ctx, query, args)
	if err != nil {
		return fmt.Errorf("error updating team for player %s: %w", playerID, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrPlayerNotFound
	}
	return nil
}

func (db *postgresDB) AddPlayerStats(ctx context.Context, playerID string, plusMinusDelta, gamesDelta int) error {
	const query = `UPDATE players
					SET plus_minus = plus_minus + @plusMinusDelta,
						games_played = games_played + @gamesDelta,
						updated=@updated
					WHERE id=@playerID`

	args := pgx.NamedArgs{
		"playerID":       playerID,
		"plusMinusDelta": plusMinusDelta,
		"gamesDelta":     gamesDelta,
		"updated": pgtype.Timestamptz{
			Time:             db.clock.Now().UTC(),
			InfinityModifier: pgtype.Finite,
			Valid:            true,
		},
	}
	tag, err := db.pool.Exec(ctx, query, args)
	if err != nil {
		return fmt.Errorf("error updating stats for player %s: %w", playerID, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrPlayerNotFound
	}
	return nil
}

func (db *postgresDB) queryPlayers(ctx context.Context, query string, args pgx.NamedArgs) ([]model.Player, error) {
	var rows pgx.Rows
	var err error
	if args == nil {
		rows, err = db.pool.Query(ctx, query)
	} else {
		rows, err = db.pool.Query(ctx, query, args)
	}
	if err != nil {
		return nil, fmt.Errorf("error running player query: %w", err)
	}

	results := make([]model.Player, 0, 16)
	for rows.Next() {
		p, err := scanPlayer(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error with rows: %w", err)
	}

	return results, nil
}

func scanPlayer(row pgx.Row) (*model.Player, error) {
	var result model.Player
	var primaryPos string
	var secondaryPos, teamID sql.NullString
	var created, updated pgtype.Timestamptz
	err := row.Scan(
		&result.ID,
		&result.Name,
		&primaryPos,
		&secondaryPos,
		&teamID,
		&result.PlusMinus,
		&result.GamesPlayed,
		&result.Stats,
		&result.IsCaptain,
		&result.ShowStats,
		&created,
		&updated)

	if err != nil {
		return nil, err
	}

	result.PrimaryPosition = model.Position(primaryPos)
	result.SecondaryPosition = model.POS_UNKNOWN
	if secondaryPos.Valid {
		result.SecondaryPosition = model.Position(secondaryPos.String)
	}
	result.TeamID = valueOrEmpty(teamID)
	result.Created = created.Time
	result.Updated = updated.Time
	if result.Stats == nil {
		result.Stats = map[string]int{}
	}

	return &result, nil
}

func valueOrEmpty(v sql.NullString) string {
	if v.Valid {
		return v.String
	}
	return ""
}
