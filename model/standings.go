package model

// TeamRecord is a team's derived record, recomputed from its games' sets on
// every read. GameWins/GameLosses/GameTies count whole games decided by sets
// won, which is what the standings comparator uses. PointsFor/PointsAgainst
// are the raw point sums across all sets.
type TeamRecord struct {
	TeamID        string `json:"team_id"`
	GameWins      int    `json:"game_wins"`
	GameLosses    int    `json:"game_losses"`
	GameTies      int    `json:"game_ties"`
	PointsFor     int    `json:"points_for"`
	PointsAgainst int    `json:"points_against"`
}

func (r *TeamRecord) PointDiff() int {
	return r.PointsFor - r.PointsAgainst
}

// Standing pairs a team with its derived record for ranking and display.
type Standing struct {
	Team   Team       `json:"team"`
	Record TeamRecord `json:"record"`
	Rank   int        `json:"rank"`
}

// GameResult is the aggregate of one game's sets: the match-level score and
// the three-way result from summing points across sets.
type GameResult struct {
	PointsFor     int    `json:"points_for"`
	PointsAgainst int    `json:"points_against"`
	Result        Result `json:"result"`
}

// PlayerRating carries the three plus-minus metrics for one player. Different
// views use different ones, so all three are exposed side by side.
type PlayerRating struct {
	Player    Player  `json:"player"`
	PlusMinus int     `json:"plus_minus"`
	PerGame   float64 `json:"per_game"`
	Weighted  float64 `json:"weighted"`
}
