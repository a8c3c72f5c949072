package postgres

import (
	"time"

	"github.com/sportsworldcentral/swc-api/internal/domain/performance"
	"github.com/sportsworldcentral/swc-api/internal/domain/scoring"
)

type performanceTableModel struct {
	PerformanceID       int32     `db:"performance_id"`
	PlayerID            int32     `db:"player_id"`
	WeekNumber          int       `db:"week_number"`
	PassingYards        int       `db:"passing_yards"`
	PassingTouchdowns   int       `db:"passing_touchdowns"`
	Interceptions       int       `db:"interceptions"`
	RushingYards        int       `db:"rushing_yards"`
	RushingTouchdowns   int       `db:"rushing_touchdowns"`
	Receptions          int       `db:"receptions"`
	ReceivingYards      int       `db:"receiving_yards"`
	ReceivingTouchdowns int       `db:"receiving_touchdowns"`
	FumblesLost         int       `db:"fumbles_lost"`
	TwoPointConversions int       `db:"two_point_conversions"`
	LastChangedDate     time.Time `db:"last_changed_date"`
}

func (m performanceTableModel) toDomain() performance.Performance {
	return performance.Performance{
		ID:         m.PerformanceID,
		PlayerID:   m.PlayerID,
		WeekNumber: m.WeekNumber,
		StatLine: scoring.StatLine{
			PassingYards:        m.PassingYards,
			PassingTouchdowns:   m.PassingTouchdowns,
			Interceptions:       m.Interceptions,
			RushingYards:        m.RushingYards,
			RushingTouchdowns:   m.RushingTouchdowns,
			Receptions:          m.Receptions,
			ReceivingYards:      m.ReceivingYards,
			ReceivingTouchdowns: m.ReceivingTouchdowns,
			FumblesLost:         m.FumblesLost,
			TwoPointConversions: m.TwoPointConversions,
		},
		LastChangedDate: m.LastChangedDate,
	}
}
