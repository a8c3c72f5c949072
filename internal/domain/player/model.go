package player

import (
	"fmt"
	"time"
)

// Position represents the roster slot categories used by SWC leagues.
type Position string

const (
	PositionQuarterback  Position = "QB"
	PositionRunningBack  Position = "RB"
	PositionWideReceiver Position = "WR"
	PositionTightEnd     Position = "TE"
	PositionKicker       Position = "K"
	PositionDefense      Position = "DEF"
)

var AllPositions = map[Position]struct{}{
	PositionQuarterback:  {},
	PositionRunningBack:  {},
	PositionWideReceiver: {},
	PositionTightEnd:     {},
	PositionKicker:       {},
	PositionDefense:      {},
}

// Player is an NFL athlete served by the SWC data API.
type Player struct {
	ID              int32
	FirstName       string
	LastName        string
	Position        Position
	LastChangedDate time.Time
}

func (p Player) Validate() error {
	if p.ID <= 0 {
		return fmt.Errorf("player id must be greater than zero")
	}
	if p.LastName == "" {
		return fmt.Errorf("player last name is required")
	}
	if _, ok := AllPositions[p.Position]; !ok {
		return fmt.Errorf("invalid player position: %s", p.Position)
	}
	if p.LastChangedDate.IsZero() {
		return fmt.Errorf("player last changed date is required")
	}

	return nil
}
