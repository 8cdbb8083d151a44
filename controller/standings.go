package controller

import (
	"context"
	"fmt"
	"slices"

	"github.com/D-vidDo/league_manager/model"
)

// Rank orders standings most-favorable first: game wins (by set-win-count),
// then point differential, then points for, all descending. The sort is
// stable, so fully tied teams keep their input order. The derived record is
// used for every key; the persisted wins column may be stale and never
// participates.
func Rank(standings []model.Standing) []model.Standing {
	ranked := slices.Clone(standings)
	slices.SortStableFunc(ranked, func(a, b model.Standing) int {
		if d := b.Record.GameWins - a.Record.GameWins; d != 0 {
			return d
		}
		if d := b.Record.PointDiff() - a.Record.PointDiff(); d != 0 {
			return d
		}
		return b.Record.PointsFor - a.Record.PointsFor
	})
	for i := range ranked {
		ranked[i].Rank = i + 1
	}
	return ranked
}

func (c *controller) GetStandings(ctx context.Context) ([]model.Standing, error) {
	teams, err := c.db.ListTeams(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing teams: %w", err)
	}

	standings := make([]model.Standing, 0, len(teams))
	for _, t := range teams {
		games, err := c.db.ListGamesByTeam(ctx, t.ID)
		if err != nil {
			return nil, fmt.Errorf("error listing games for team %s: %w", t.ID, err)
		}
		standings = append(standings, model.Standing{
			Team:   t,
			Record: *deriveTeamRecord(t.ID, games),
		})
	}

	return Rank(standings), nil
}
