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

func (db *postgresDB) GetGame(ctx context.Context, id string) (*model.Game, error) {
	const query = `SELECT id, team_id, game_date, game_time, opponent
					FROM games WHERE id=@id`

	row := db.pool.QueryRow(ctx, query, pgx.NamedArgs{"id": id})
	g, err := scanGame(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrGameNotFound
		}
		return nil, fmt.Errorf("error scanning game %s: %w", id, err)
	}

	sets, err := db.getSetsByGame(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error looking up sets for game %s: %w", id, err)
	}
	g.Sets = sets

	return g, nil
}

func (db *postgresDB) ListGamesByTeam(ctx context.Context, teamID string) ([]model.Game, error) {
	const query = `SELECT id, team_id, game_date, game_time, opponent
					FROM games WHERE team_id=@teamID ORDER BY game_date, game_time`

	rows, err := db.pool.Query(ctx, query, pgx.NamedArgs{"teamID": teamID})
	if err != nil {
		return nil, fmt.Errorf("error listing games for team %s: %w", teamID, err)
	}

	results := make([]model.Game, 0, 16)
	for rows.Next() {
		g, err := scanGame(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, *g)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error with rows: %w", err)
	}

	for i := range results {
		sets, err := db.getSetsByGame(ctx, results[i].ID)
		if err != nil {
			return nil, fmt.Errorf("error looking up sets for game %s: %w", results[i].ID, err)
		}
		results[i].Sets = sets
	}

	return results, nil
}

func (db *postgresDB) AddGame(ctx context.Context, g *model.Game) error {
	if g == nil {
		return errors.New("AddGame - game is nil")
	}
	if g.ID == "" {
		g.ID = uuid.NewString()
	}

	const query = `INSERT INTO games (id, team_id, game_date, game_time, opponent)
					VALUES (@id, @teamID, @date, @time, @opponent)`

	args := pgx.NamedArgs{
		"id":     g.ID,
		"teamID": g.TeamID,
		"date": pgtype.Date{
			Time:  g.Date,
			Valid: !g.Date.IsZero(),
		},
		"time":     g.Time,
		"opponent": g.Opponent,
	}
	if _, err := db.pool.Exec(ctx, query, args); err != nil {
		return fmt.Errorf("error inserting game for team %s: %w", g.TeamID, err)
	}

	if len(g.Sets) > 0 {
		if err := db.InsertSets(ctx, g.ID, g.Sets); err != nil {
			return err
		}
	}
	return nil
}

func (db *postgresDB) DeleteGame(ctx context.Context, id string) error {
	const deleteSets = `DELETE FROM sets WHERE game_id=@id`
	const deleteGame = `DELETE FROM games WHERE id=@id`

	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	args := pgx.NamedArgs{"id": id}
	if _, err := tx.Exec(ctx, deleteSets, args); err != nil {
		return fmt.Errorf("error deleting sets for game %s: %w", id, err)
	}
	tag, err := tx.Exec(ctx, deleteGame, args)
	if err != nil {
		return fmt.Errorf("error deleting game %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrGameNotFound
	}

	return tx.Commit(ctx)
}

func (db *postgresDB) InsertSets(ctx context.Context, gameID string, sets []model.Set) error {
	const query = `INSERT INTO sets (id, game_id, set_no, points_for, points_against, vod_link)
					VALUES (@id, @gameID, @setNo, @pointsFor, @pointsAgainst, @vodLink)`

	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	for i := range sets {
		if sets[i].ID == "" {
			sets[i].ID = uuid.NewString()
		}
		sets[i].GameID = gameID

		args := pgx.NamedArgs{
			"id":            sets[i].ID,
			"gameID":        gameID,
			"setNo":         sets[i].SetNo,
			"pointsFor":     sets[i].PointsFor,
			"pointsAgainst": sets[i].PointsAgainst,
			"vodLink": sql.NullString{
				String: sets[i].VODLink,
				Valid:  sets[i].VODLink != "",
			},
		}
		if _, err := tx.Exec(ctx, query, args); err != nil {
			return fmt.Errorf("error inserting set %d for game %s: %w", sets[i].SetNo, gameID, err)
		}
	}

	return tx.Commit(ctx)
}

func (db *postgresDB) getSetsByGame(ctx context.Context, gameID string) ([]model.Set, error) {
	// Sets with no recorded number sort after numbered ones.
	const query = `SELECT id, game_id, set_no, points_for, points_against, vod_link
					FROM sets WHERE game_id=@gameID
					ORDER BY CASE WHEN set_no > 0 THEN set_no ELSE 2147483647 END, id`

	rows, err := db.pool.Query(ctx, query, pgx.NamedArgs{"gameID": gameID})
	if err != nil {
		return nil, fmt.Errorf("error querying sets: %w", err)
	}

	results := make([]model.Set, 0, 5)
	for rows.Next() {
		var s model.Set
		var vodLink sql.NullString
		err := rows.Scan(&s.ID, &s.GameID, &s.SetNo, &s.PointsFor, &s.PointsAgainst, &vodLink)
		if err != nil {
			return nil, fmt.Errorf("error scanning set: %w", err)
		}
		s.VODLink = valueOrEmpty(vodLink)
		results = append(results, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error with rows: %w", err)
	}

	return results, nil
}

func scanGame(row pgx.Row) (*model.Game, error) {
	var result model.Game
	var date pgtype.Date
	var gameTime sql.NullString
	err := row.Scan(
		&result.ID,
		&result.TeamID,
		&date,
		&gameTime,
		&result.Opponent)
	if err != nil {
		return nil, err
	}

	result.Date = date.Time
	result.Time = valueOrEmpty(gameTime)

	return &result, nil
}
