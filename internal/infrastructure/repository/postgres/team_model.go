package postgres

import (
	"time"

	"github.com/sportsworldcentral/swc-api/internal/domain/team"
)

type teamTableModel struct {
	TeamID          int32     `db:"team_id"`
	TeamName        string    `db:"team_name"`
	LeagueID        int32     `db:"league_id"`
	LastChangedDate time.Time `db:"last_changed_date"`
}

type teamPlayerTableModel struct {
	TeamID   int32 `db:"team_id"`
	PlayerID int32 `db:"player_id"`
}

func (m teamTableModel) toDomain() team.Team {
	return team.Team{
		ID:              m.TeamID,
		LeagueID:        m.LeagueID,
		Name:            m.TeamName,
		LastChangedDate: m.LastChangedDate,
	}
}
