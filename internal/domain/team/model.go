package team

import (
	"fmt"
	"time"
)

// Team is a fantasy roster inside exactly one SWC league.
type Team struct {
	ID              int32
	LeagueID        int32
	Name            string
	LastChangedDate time.Time
	PlayerIDs       []int32
}

func (t Team) Validate() error {
	if t.ID <= 0 {
		return fmt.Errorf("team id must be greater than zero")
	}
	if t.LeagueID <= 0 {
		return fmt.Errorf("team league id must be greater than zero")
	}
	if t.Name == "" {
		return fmt.Errorf("team name is required")
	}

	return nil
}
