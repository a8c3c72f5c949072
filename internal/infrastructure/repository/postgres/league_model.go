package postgres

import (
	"time"

	"github.com/sportsworldcentral/swc-api/internal/domain/league"
	"github.com/sportsworldcentral/swc-api/internal/domain/scoring"
)

type leagueTableModel struct {
	LeagueID        int32     `db:"league_id"`
	LeagueName      string    `db:"league_name"`
	ScoringType     string    `db:"scoring_type"`
	LastChangedDate time.Time `db:"last_changed_date"`
}

func (m leagueTableModel) toDomain() league.League {
	return league.League{
		ID:              m.LeagueID,
		Name:            m.LeagueName,
		ScoringType:     scoring.Type(m.ScoringType),
		LastChangedDate: m.LastChangedDate,
	}
}
