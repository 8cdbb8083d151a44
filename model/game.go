package model

import (
	"time"
)

type Result string

const (
	ResultWin  Result = "W"
	ResultLoss Result = "L"
	ResultTie  Result = "T"
)

// CompareScore is the single three-way comparison used for both per-set
// results and aggregated match results.
func CompareScore(pointsFor, pointsAgainst int) Result {
	switch {
	case pointsFor > pointsAgainst:
		return ResultWin
	case pointsFor < pointsAgainst:
		return ResultLoss
	default:
		return ResultTie
	}
}

type Game struct {
	ID       string    `json:"id"`
	TeamID   string    `json:"team_id"`
	Date     time.Time `json:"date"`
	Time     string    `json:"time,omitempty"`
	Opponent string    `json:"opponent"`
	Sets     []Set     `json:"sets,omitempty"`
}

// Set is one scored segment of a game. SetNo orders sets within a game and
// may be sparse; 0 means the number was never entered.
type Set struct {
	ID            string `json:"id,omitempty"`
	GameID        string `json:"game_id,omitempty"`
	SetNo         int    `json:"set_no"`
	PointsFor     int    `json:"points_for"`
	PointsAgainst int    `json:"points_against"`
	VODLink       string `json:"vod_link,omitempty"`
}

func (s *Set) Result() Result {
	return CompareScore(s.PointsFor, s.PointsAgainst)
}

func (g *Game) FormattedDate() string {
	if g.Date.IsZero() {
		return "TBD"
	}
	return g.Date.Format(time.DateOnly)
}
