package league

import (
	"fmt"
	"time"

	"github.com/sportsworldcentral/swc-api/internal/domain/scoring"
)

// League is a fantasy football league hosted on SWC.
type League struct {
	ID              int32
	Name            string
	ScoringType     scoring.Type
	LastChangedDate time.Time
}

func (l League) Validate() error {
	if l.ID <= 0 {
		return fmt.Errorf("league id must be greater than zero")
	}
	if l.Name == "" {
		return fmt.Errorf("league name is required")
	}
	if !l.ScoringType.Valid() {
		return fmt.Errorf("invalid league scoring type: %s", l.ScoringType)
	}

	return nil
}
