package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/D-vidDo/league_manager/model"
	"github.com/google/uuid"
	"github.com/itbasis/go-clock"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrPlayerNotFound error = errors.New("player not found")
	ErrTeamNotFound   error = errors.New("team not found")
	ErrGameNotFound   error = errors.New("game not found")
)

func New(ctx context.Context, connString string, clock clock.Clock) (DB, error) {
	pool, err := pgxpool.New(ctx, connString)
	if err != nil {
		return nil, err
	}

	// Test the connection
	if err := pool.Ping(ctx); err != nil {
		return nil, err
	}

	return &postgresDB{pool: pool, clock: clock}, nil
}

type postgresDB struct {
	pool  *pgxpool.Pool
	clock clock.Clock
}

func (db *postgresDB) GetTeam(ctx context.Context, id string) (*model.Team, error) {
	const query = `SELECT id, name, captain, color, wins, losses,
						points_for, points_against, player_ids
					FROM teams WHERE id=@id`

	row := db.pool.QueryRow(ctx, query, pgx.NamedArgs{"id": id})
	t, err := scanTeam(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrTeamNotFound
		}
		return nil, fmt.Errorf("error scanning team %s: %w", id, err)
	}
	return t, nil
}

func (db *postgresDB) ListTeams(ctx context.Context) ([]model.Team, error) {
	const query = `SELECT id, name, captain, color, wins, losses,
						points_for, points_against, player_ids
					FROM teams ORDER BY name`

	rows, err := db.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error listing teams: %w", err)
	}

	results := make([]model.Team, 0, 8)
	for rows.Next() {
		t, err := scanTeam(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error with rows: %w", err)
	}

	return results, nil
}

func (db *postgresDB) SaveTeam(ctx context.Context, t *model.Team) error {
	if t == nil {
		return errors.New("SaveTeam - team is nil")
	}
	if t.ID == "" {
		t.ID = uuid.NewString()
	}

	const query = `INSERT INTO teams (id, name, captain, color, wins, losses,
						points_for, points_against, player_ids)
					VALUES (@id, @name, @captain, @color, @wins, @losses,
						@pointsFor, @pointsAgainst, @playerIDs)
					ON CONFLICT (id) DO UPDATE
					SET name=@name, captain=@captain, color=@color`

	args := pgx.NamedArgs{
		"id":            t.ID,
		"name":          t.Name,
		"captain":       t.Captain,
		"color":         t.Color,
		"wins":          t.Wins,
		"losses":        t.Losses,
		"pointsFor":     t.PointsFor,
		"pointsAgainst": t.PointsAgainst,
		"playerIDs":     t.PlayerIDs,
	}
	if _, err := db.pool.Exec(ctx, query, args); err != nil {
		return fmt.Errorf("error saving team (%s): %w", t.Name, err)
	}
	return nil
}

func (db *postgresDB) DeleteTeam(ctx context.Context, id string) error {
	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("error starting transaction to delete team %s: %w", id, err)
	}
	defer tx.Rollback(ctx)

	args := pgx.NamedArgs{"id": id}

	// Players keep their rows; only the team reference is cleared. The team's
	// games and their sets go with the team.
	const releasePlayers = `UPDATE players SET team_id=NULL WHERE team_id=@id`
	if _, err := tx.Exec(ctx, releasePlayers, args); err != nil {
		return fmt.Errorf("error releasing players for team %s: %w", id, err)
	}

	const deleteSets = `DELETE FROM sets WHERE game_id IN (SELECT id FROM games WHERE team_id=@id)`
	if _, err := tx.Exec(ctx, deleteSets, args); err != nil {
		return fmt.Errorf("error deleting sets for team %s: %w", id, err)
	}

	const deleteGames = `DELETE FROM games WHERE team_id=@id`
	if _, err := tx.Exec(ctx, deleteGames, args); err != nil {
		return fmt.Errorf("error deleting games for team %s: %w", id, err)
	}

	const deleteTeam = `DELETE FROM teams WHERE id=@id`
	tag, err := tx.Exec(ctx, deleteTeam, args)
	if err != nil {
		return fmt.Errorf("error deleting team %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrTeamNotFound
	}

	return tx.Commit(ctx)
}

func (db *postgresDB) AddPlayerToRoster(ctx context.Context, teamID, playerID string) error {
	// The WHERE clause makes the append conditional so that a player who is
	// already on the roster is not added twice.
	const query = `UPDATE teams
					SET player_ids = array_append(player_ids, @playerID)
					WHERE id=@teamID AND NOT (@playerID = ANY(player_ids))`

	args := pgx.NamedArgs{
		"teamID":   teamID,
		"playerID": playerID,
	}
	if _, err := db.pool.Exec(ctx, query, args); err != nil {
		return fmt.Errorf("error adding player %s to roster %s: %w", playerID, teamID, err)
	}
	return nil
}

func (db *postgresDB) RemovePlayerFromRoster(ctx context.Context, teamID, playerID string) error {
	const query = `UPDATE teams
					SET player_ids = array_remove(player_ids, @playerID)
					WHERE id=@teamID`

	args := pgx.NamedArgs{
		"teamID":   teamID,
		"playerID": playerID,
	}
	if _, err := db.pool.Exec(ctx, query, args); err != nil {
		return fmt.Errorf("error removing player %s from roster %s: %w", playerID, teamID, err)
	}
	return nil
}

func (db *postgresDB) UpdateTeamTotals(ctx context.Context, teamID string, wins, losses, pointsFor, pointsAgainst int) error {
	const query = `UPDATE teams
					SET wins=@wins, losses=@losses,
						points_for=@pointsFor, points_against=@pointsAgainst
					WHERE id=@teamID`

	args := pgx.NamedArgs{
		"teamID":        teamID,
		"wins":          wins,
		"losses":        losses,
		"pointsFor":     pointsFor,
		"pointsAgainst": pointsAgainst,
	}
	tag, err := db.pool.Exec(ctx, query, args)
	if err != nil {
		return fmt.Errorf("error updating totals for team %s: %w", teamID, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrTeamNotFound
	}
	return nil
}

func scanTeam(row pgx.Row) (*model.Team, error) {
	var result model.Team
	err := row.Scan(
		&result.ID,
		&result.Name,
		&result.Captain,
		&result.Color,
		&result.Wins,
		&result.Losses,
		&result.PointsFor,
		&result.PointsAgainst,
		&result.PlayerIDs)
	if err != nil {
		return nil, err
	}
	if result.PlayerIDs == nil {
		result.PlayerIDs = []string{}
	}
	return &result, nil
}
