package performance

import (
	"fmt"
	"time"

	"github.com/sportsworldcentral/swc-api/internal/domain/scoring"
)

// Performance is a single player's stat line for one NFL week.
type Performance struct {
	ID              int32
	PlayerID        int32
	WeekNumber      int
	StatLine        scoring.StatLine
	LastChangedDate time.Time
}

func (p Performance) Validate() error {
	if p.ID <= 0 {
		return fmt.Errorf("performance id must be greater than zero")
	}
	if p.PlayerID <= 0 {
		return fmt.Errorf("performance player id must be greater than zero")
	}
	if p.WeekNumber < 1 || p.WeekNumber > 18 {
		return fmt.Errorf("performance week number %d is outside the NFL season", p.WeekNumber)
	}

	return nil
}
