package controller

import (
	"context"
	"fmt"
	"slices"

	"github.com/D-vidDo/league_manager/model"
)

// AggregateGame folds an ordered list of sets into one match-level result:
// points are summed across all sets and the result is the three-way
// comparison of the sums. This is distinct from CountSetWins, which decides
// the game by sets won; both conventions are used by different views.
// The function is pure and validates its input before anything else.
func AggregateGame(sets []model.Set) (*model.GameResult, error) {
	if err := validateSets(sets); err != nil {
		return nil, err
	}

	result := &model.GameResult{}
	for _, s := range sets {
		result.PointsFor += s.PointsFor
		result.PointsAgainst += s.PointsAgainst
	}
	result.Result = model.CompareScore(result.PointsFor, result.PointsAgainst)
	return result, nil
}

// CountSetWins decides a game by tallying individual set results: more sets
// won than lost is a win. This is the convention the standings use.
func CountSetWins(sets []model.Set) model.Result {
	var won, lost int
	for _, s := range sets {
		switch s.Result() {
		case model.ResultWin:
			won++
		case model.ResultLoss:
			lost++
		}
	}
	return model.CompareScore(won, lost)
}

// SortSets returns the sets ordered by set number ascending. Sets without a
// recorded number sort after numbered ones, preserving their input order.
func SortSets(sets []model.Set) []model.Set {
	sorted := slices.Clone(sets)
	slices.SortStableFunc(sorted, func(a, b model.Set) int {
		return setSortKey(a) - setSortKey(b)
	})
	return sorted
}

func setSortKey(s model.Set) int {
	if s.SetNo <= 0 {
		return int(^uint(0) >> 1) // missing numbers last
	}
	return s.SetNo
}

func validateSets(sets []model.Set) error {
	seen := make(map[int]bool, len(sets))
	for _, s := range sets {
		if s.PointsFor < 0 || s.PointsAgainst < 0 {
			return fmt.Errorf("%w: set %d has a negative score", ErrMalformedInput, s.SetNo)
		}
		if s.SetNo > 0 {
			if seen[s.SetNo] {
				return fmt.Errorf("%w: duplicate set number %d", ErrMalformedInput, s.SetNo)
			}
			seen[s.SetNo] = true
		}
	}
	return nil
}

// RecordSets stores a batch of scored sets for a game and credits the stats
// they imply. All validation happens before the first store call. The store
// has no multi-record transactions, so the writes happen in a fixed order:
// insert sets, then each player's cumulative stats, then the team totals. A
// failure partway is surfaced as a PartialFailureError; applied steps stay
// applied.
func (c *controller) RecordSets(ctx context.Context, gameID string, playerIDs []string, sets []model.Set) error {
	if len(sets) == 0 {
		return fmt.Errorf("%w: no sets to record", ErrMalformedInput)
	}
	if err := validateSets(sets); err != nil {
		return err
	}

	g, err := c.db.GetGame(ctx, gameID)
	if err != nil {
		return fmt.Errorf("error looking up game %s: %w", gameID, err)
	}

	// New sets must not collide with set numbers already stored.
	for _, existing := range g.Sets {
		for _, s := range sets {
			if s.SetNo > 0 && s.SetNo == existing.SetNo {
				return fmt.Errorf("%w: set number %d already recorded for game %s",
					ErrMalformedInput, s.SetNo, gameID)
			}
		}
	}

	// Default to crediting the owning team's whole current roster.
	if len(playerIDs) == 0 {
		roster, err := c.db.GetPlayersByTeam(ctx, g.TeamID)
		if err != nil {
			return fmt.Errorf("error looking up roster for team %s: %w", g.TeamID, err)
		}
		for _, p := range roster {
			playerIDs = append(playerIDs, p.ID)
		}
	}

	plusMinusDelta := 0
	for _, s := range sets {
		plusMinusDelta += s.PointsFor - s.PointsAgainst
	}
	gamesDelta := len(sets)

	completed := make([]string, 0, len(playerIDs)+2)

	if err := c.db.InsertSets(ctx, gameID, sets); err != nil {
		return &PartialFailureError{
			Op:        "recordSets",
			Completed: completed,
			Failed:    "insert sets",
			Err:       err,
		}
	}
	completed = append(completed, "insert sets")

	for _, id := range playerIDs {
		if err := c.db.AddPlayerStats(ctx, id, plusMinusDelta, gamesDelta); err != nil {
			return &PartialFailureError{
				Op:        "recordSets",
				Completed: completed,
				Failed:    fmt.Sprintf("update stats for player %s", id),
				Err:       err,
			}
		}
		completed = append(completed, fmt.Sprintf("update stats for player %s", id))
	}

	if _, err := c.RecalculateTeamTotals(ctx, g.TeamID); err != nil {
		return &PartialFailureError{
			Op:        "recordSets",
			Completed: completed,
			Failed:    "update team totals",
			Err:       err,
		}
	}

	return nil
}

// AddGame stores a new game. Sets embedded in the game do not get inserted
// directly; they are handed to RecordSets so the per-player crediting and the
// team totals refresh happen exactly as they would for sets recorded later.
func (c *controller) AddGame(ctx context.Context, g *model.Game) error {
	if g.TeamID == "" {
		return fmt.Errorf("%w: game needs an owning team", ErrMalformedInput)
	}
	if err := validateSets(g.Sets); err != nil {
		return err
	}
	if _, err := c.db.GetTeam(ctx, g.TeamID); err != nil {
		return fmt.Errorf("error looking up team %s: %w", g.TeamID, err)
	}

	stored := *g
	stored.Sets = nil
	if err := c.db.AddGame(ctx, &stored); err != nil {
		return err
	}
	g.ID = stored.ID

	if len(g.Sets) > 0 {
		return c.RecordSets(ctx, g.ID, nil, g.Sets)
	}
	return nil
}

// RecalculateTeamTotals recomputes everything derived from the team's stored
// sets as a pure fold and writes the match-level totals back to the team row.
// The persisted columns are display denormalizations; nothing ranks on them.
func (c *controller) RecalculateTeamTotals(ctx context.Context, teamID string) (*model.TeamRecord, error) {
	games, err := c.db.ListGamesByTeam(ctx, teamID)
	if err != nil {
		return nil, fmt.Errorf("error listing games for team %s: %w", teamID, err)
	}

	record := deriveTeamRecord(teamID, games)
	wins, losses := matchTotals(games)

	if err := c.db.UpdateTeamTotals(ctx, teamID, wins, losses, record.PointsFor, record.PointsAgainst); err != nil {
		return nil, fmt.Errorf("error persisting totals for team %s: %w", teamID, err)
	}

	return record, nil
}

// deriveTeamRecord folds a team's games into the set-win-count record used by
// the standings. Games with no recorded sets have not been played and are
// skipped.
func deriveTeamRecord(teamID string, games []model.Game) *model.TeamRecord {
	record := &model.TeamRecord{TeamID: teamID}
	for _, g := range games {
		if len(g.Sets) == 0 {
			continue
		}
		switch CountSetWins(g.Sets) {
		case model.ResultWin:
			record.GameWins++
		case model.ResultLoss:
			record.GameLosses++
		case model.ResultTie:
			record.GameTies++
		}
		for _, s := range g.Sets {
			record.PointsFor += s.PointsFor
			record.PointsAgainst += s.PointsAgainst
		}
	}
	return record
}

// matchTotals counts game wins and losses by the match-level convention,
// summing points across each game's sets. Ties count for neither column.
func matchTotals(games []model.Game) (wins, losses int) {
	for _, g := range games {
		if len(g.Sets) == 0 {
			continue
		}
		var pf, pa int
		for _, s := range g.Sets {
			pf += s.PointsFor
			pa += s.PointsAgainst
		}
		switch model.CompareScore(pf, pa) {
		case model.ResultWin:
			wins++
		case model.ResultLoss:
			losses++
		}
	}
	return wins, losses
}
