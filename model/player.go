package model

import (
	"time"
)

// MinSkillRating and MaxSkillRating bound the named skill ratings that can be
// recorded for a player. The set of rating names is open-ended and treated as
// opaque; which skills a league tracks is configuration, not structure.
const (
	MinSkillRating = 1
	MaxSkillRating = 5
)

type Player struct {
	ID                string   `json:"id"`
	Name              string   `json:"name"`
	PrimaryPosition   Position `json:"primary_position"`
	SecondaryPosition Position `json:"secondary_position,omitempty"`
	// TeamID is empty for free agents. When set it must agree with the
	// owning team's roster list.
	TeamID      string         `json:"team_id,omitempty"`
	PlusMinus   int            `json:"plus_minus"`
	GamesPlayed int            `json:"games_played"`
	Stats       map[string]int `json:"stats,omitempty"`
	IsCaptain   bool           `json:"is_captain"`
	ShowStats   bool           `json:"show_stats"`
	Created     time.Time      `json:"created"`
	Updated     time.Time      `json:"updated"`
}

func (p *Player) IsFreeAgent() bool {
	return p.TeamID == ""
}

// PerGameAverage is the naive plus-minus per game. It is 0, not NaN, for a
// player who has not played yet. Views that want the shrinkage estimator use
// WeightedAverage in the controller package instead.
func (p *Player) PerGameAverage() float64 {
	if p.GamesPlayed == 0 {
		return 0
	}
	return float64(p.PlusMinus) / float64(p.GamesPlayed)
}

func (p *Player) ValidStats() bool {
	for _, v := range p.Stats {
		if v < MinSkillRating || v > MaxSkillRating {
			return false
		}
	}
	return true
}

func (p *Player) FormattedCreatedTime() string {
	if p.Created.IsZero() {
		return "unknown"
	}
	return p.Created.Format(time.DateTime)
}

func (p *Player) FormattedUpdatedTime() string {
	if p.Updated.IsZero() {
		return "unknown"
	}
	return p.Updated.Format(time.DateTime)
}
