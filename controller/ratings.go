package controller

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/D-vidDo/league_manager/model"
)

// DefaultRatingPrior is the number of phantom league-average games blended
// into every player's weighted plus-minus. It is a league-wide policy
// constant per season, not tunable per player.
const DefaultRatingPrior = 5

// WeightedAverage is a shrinkage estimate of a player's plus-minus per game:
// prior phantom games at the league average are mixed in, pulling small
// samples toward the league mean. As games played grows the value approaches
// the player's raw per-game average.
func WeightedAverage(p *model.Player, leagueAvgPerGame float64, prior int) float64 {
	if p.GamesPlayed == 0 {
		// The formula reduces to prior*avg/prior; return the average
		// directly so a brand new player sits exactly at the league mean.
		return leagueAvgPerGame
	}
	return (float64(p.PlusMinus) + float64(prior)*leagueAvgPerGame) /
		float64(p.GamesPlayed+prior)
}

// LeagueAveragePerGame is the league-wide plus-minus per game: total
// plus-minus over total games played, across players with at least one game.
// An empty league averages to 0.
func LeagueAveragePerGame(players []model.Player) float64 {
	var totalPlusMinus, totalGames int
	for _, p := range players {
		if p.GamesPlayed > 0 {
			totalPlusMinus += p.PlusMinus
			totalGames += p.GamesPlayed
		}
	}
	if totalGames == 0 {
		return 0
	}
	return float64(totalPlusMinus) / float64(totalGames)
}

// GetTopPerformers lists players with public stats and at least minGames
// played, ordered by weighted average descending. All three plus-minus
// metrics ride along since different views display different ones.
func (c *controller) GetTopPerformers(ctx context.Context, minGames, limit int) ([]model.PlayerRating, error) {
	players, err := c.db.ListPlayers(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing players: %w", err)
	}

	leagueAvg := LeagueAveragePerGame(players)

	ratings := make([]model.PlayerRating, 0, len(players))
	for _, p := range players {
		if !p.ShowStats || p.GamesPlayed < minGames {
			continue
		}
		ratings = append(ratings, model.PlayerRating{
			Player:    p,
			PlusMinus: p.PlusMinus,
			PerGame:   p.PerGameAverage(),
			Weighted:  WeightedAverage(&p, leagueAvg, DefaultRatingPrior),
		})
	}

	slices.SortStableFunc(ratings, func(a, b model.PlayerRating) int {
		if a.Weighted != b.Weighted {
			if a.Weighted > b.Weighted {
				return -1
			}
			return 1
		}
		return strings.Compare(a.Player.Name, b.Player.Name)
	})

	if limit > 0 && len(ratings) > limit {
		ratings = ratings[:limit]
	}
	return ratings, nil
}
