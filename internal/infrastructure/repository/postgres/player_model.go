package postgres

import (
	"time"

	"github.com/sportsworldcentral/swc-api/internal/domain/player"
)

type playerTableModel struct {
	PlayerID        int32     `db:"player_id"`
	FirstName       string    `db:"first_name"`
	LastName        string    `db:"last_name"`
	Position        string    `db:"position"`
	LastChangedDate time.Time `db:"last_changed_date"`
}

func (m playerTableModel) toDomain() player.Player {
	return player.Player{
		ID:              m.PlayerID,
		FirstName:       m.FirstName,
		LastName:        m.LastName,
		Position:        player.Position(m.Position),
		LastChangedDate: m.LastChangedDate,
	}
}
