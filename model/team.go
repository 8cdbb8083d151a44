package model

type Team struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Captain string `json:"captain,omitempty"`
	Color   string `json:"color,omitempty"`
	// Wins/Losses and the points totals are persisted for display but are
	// derived from recorded sets. They are refreshed by the controller's
	// recalculation fold, never trusted for ranking.
	Wins          int      `json:"wins"`
	Losses        int      `json:"losses"`
	PointsFor     int      `json:"points_for"`
	PointsAgainst int      `json:"points_against"`
	PlayerIDs     []string `json:"player_ids,omitempty"`
}

func (t *Team) HasPlayer(playerID string) bool {
	for _, id := range t.PlayerIDs {
		if id == playerID {
			return true
		}
	}
	return false
}

func (t *Team) PointDiff() int {
	return t.PointsFor - t.PointsAgainst
}

// WinRatio is for display only. A team with no games has a ratio of 0.
func (t *Team) WinRatio() float64 {
	games := t.Wins + t.Losses
	if games == 0 {
		return 0
	}
	return float64(t.Wins) / float64(games)
}
