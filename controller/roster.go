package controller

import (
	"context"
	"fmt"
	"log"

	"github.com/D-vidDo/league_manager/model"
)

// MovePlayer removes the player from fromTeamID's roster, adds them to
// toTeamID's roster, and points the player's team reference at toTeamID.
// Empty ids mean free agency on that side. The store has no multi-record
// transactions, so the three writes happen in a fixed order: the player's
// team reference first, then the roster lists. A failure partway is surfaced
// as a PartialFailureError naming the failed step.
func (c *controller) MovePlayer(ctx context.Context, playerID, fromTeamID, toTeamID string) error {
	p, err := c.db.GetPlayer(ctx, playerID)
	if err != nil {
		return fmt.Errorf("error looking up player %s: %w", playerID, err)
	}

	if fromTeamID != "" {
		if _, err := c.db.GetTeam(ctx, fromTeamID); err != nil {
			return fmt.Errorf("error looking up source team %s: %w", fromTeamID, err)
		}
	}
	var toTeam *model.Team
	if toTeamID != "" {
		toTeam, err = c.db.GetTeam(ctx, toTeamID)
		if err != nil {
			return fmt.Errorf("error looking up destination team %s: %w", toTeamID, err)
		}
	}

	// The move must describe the player's actual current team or applying it
	// would strand the player's id on a roster their team reference no
	// longer points at.
	if p.TeamID != fromTeamID {
		log.Printf("rejecting move for player %s: currently on %q, move claims %q",
			playerID, p.TeamID, fromTeamID)
		return fmt.Errorf("%w: player %s is not on team %q", ErrInvariantViolation, playerID, fromTeamID)
	}
	if toTeam != nil && toTeam.HasPlayer(playerID) && p.TeamID != toTeamID {
		log.Printf("rejecting move for player %s: already on destination roster %s", playerID, toTeamID)
		return fmt.Errorf("%w: player %s already on roster of team %s", ErrInvariantViolation, playerID, toTeamID)
	}

	completed := make([]string, 0, 3)

	if err := c.db.UpdatePlayerTeam(ctx, playerID, toTeamID); err != nil {
		return &PartialFailureError{
			Op:        "movePlayer",
			Completed: completed,
			Failed:    "update player team",
			Err:       err,
		}
	}
	completed = append(completed, "update player team")

	if fromTeamID != "" {
		if err := c.db.RemovePlayerFromRoster(ctx, fromTeamID, playerID); err != nil {
			return &PartialFailureError{
				Op:        "movePlayer",
				Completed: completed,
				Failed:    "remove from source roster",
				Err:       err,
			}
		}
		completed = append(completed, "remove from source roster")
	}

	if toTeamID != "" {
		if err := c.db.AddPlayerToRoster(ctx, toTeamID, playerID); err != nil {
			return &PartialFailureError{
				Op:        "movePlayer",
				Completed: completed,
				Failed:    "add to destination roster",
				Err:       err,
			}
		}
	}

	return nil
}
