package memory

import (
	"time"

	"github.com/sportsworldcentral/swc-api/internal/domain/league"
	"github.com/sportsworldcentral/swc-api/internal/domain/performance"
	"github.com/sportsworldcentral/swc-api/internal/domain/player"
	"github.com/sportsworldcentral/swc-api/internal/domain/scoring"
	"github.com/sportsworldcentral/swc-api/internal/domain/team"
)

const (
	LeagueIDPigskinProdigal int32 = 5001
	LeagueIDGridironGurus   int32 = 5002
)

var seedDate = time.Date(2025, 9, 10, 0, 0, 0, 0, time.UTC)

func SeedLeagues() []league.League {
	return []league.League{
		{
			ID:              LeagueIDPigskinProdigal,
			Name:            "Pigskin Prodigal Fantasy League",
			ScoringType:     scoring.TypePPR,
			LastChangedDate: seedDate,
		},
		{
			ID:              LeagueIDGridironGurus,
			Name:            "Gridiron Gurus Keeper League",
			ScoringType:     scoring.TypeHalfPPR,
			LastChangedDate: seedDate,
		},
	}
}

func SeedTeams() []team.Team {
	return []team.Team{
		{ID: 8001, LeagueID: LeagueIDPigskinProdigal, Name: "Hoboken Hurlers", LastChangedDate: seedDate, PlayerIDs: []int32{1001, 1003, 1005}},
		{ID: 8002, LeagueID: LeagueIDPigskinProdigal, Name: "Peoria Punishers", LastChangedDate: seedDate, PlayerIDs: []int32{1002, 1004, 1006}},
		{ID: 8003, LeagueID: LeagueIDGridironGurus, Name: "Decatur Dynamos", LastChangedDate: seedDate, PlayerIDs: []int32{1001, 1002, 1007}},
		{ID: 8004, LeagueID: LeagueIDGridironGurus, Name: "Tulsa Titans", LastChangedDate: seedDate, PlayerIDs: []int32{1003, 1006, 1008}},
	}
}

func SeedPlayers() []player.Player {
	return []player.Player{
		{ID: 1001, FirstName: "Bryce", LastName: "Yearwood", Position: player.PositionQuarterback, LastChangedDate: seedDate},
		{ID: 1002, FirstName: "Marcus", LastName: "Ostrowski", Position: player.PositionQuarterback, LastChangedDate: seedDate},
		{ID: 1003, FirstName: "Deshawn", LastName: "Coleman", Position: player.PositionRunningBack, LastChangedDate: seedDate},
		{ID: 1004, FirstName: "Tevin", LastName: "Abernathy", Position: player.PositionRunningBack, LastChangedDate: seedDate.Add(48 * time.Hour)},
		{ID: 1005, FirstName: "Cooper", LastName: "Lindqvist", Position: player.PositionWideReceiver, LastChangedDate: seedDate},
		{ID: 1006, FirstName: "Amari", LastName: "Fontenot", Position: player.PositionWideReceiver, LastChangedDate: seedDate.Add(48 * time.Hour)},
		{ID: 1007, FirstName: "Gavin", LastName: "Whitford", Position: player.PositionTightEnd, LastChangedDate: seedDate},
		{ID: 1008, FirstName: "Silas", LastName: "Okafor", Position: player.PositionKicker, LastChangedDate: seedDate},
	}
}

func SeedPerformances() []performance.Performance {
	return []performance.Performance{
		{
			ID: 9001, PlayerID: 1001, WeekNumber: 1,
			StatLine: scoring.StatLine{
				PassingYards:      275,
				PassingTouchdowns: 2,
				Interceptions:     1,
				RushingYards:      30,
			},
			LastChangedDate: seedDate,
		},
		{
			ID: 9002, PlayerID: 1001, WeekNumber: 2,
			StatLine: scoring.StatLine{
				PassingYards:        310,
				PassingTouchdowns:   3,
				TwoPointConversions: 1,
			},
			LastChangedDate: seedDate.Add(7 * 24 * time.Hour),
		},
		{
			ID: 9003, PlayerID: 1003, WeekNumber: 1,
			StatLine: scoring.StatLine{
				RushingYards:      112,
				RushingTouchdowns: 1,
				Receptions:        4,
				ReceivingYards:    28,
			},
			LastChangedDate: seedDate,
		},
		{
			ID: 9004, PlayerID: 1005, WeekNumber: 1,
			StatLine: scoring.StatLine{
				Receptions:          8,
				ReceivingYards:      104,
				ReceivingTouchdowns: 1,
				FumblesLost:         1,
			},
			LastChangedDate: seedDate,
		},
		{
			ID: 9005, PlayerID: 1006, WeekNumber: 2,
			StatLine: scoring.StatLine{
				Receptions:     5,
				ReceivingYards: 67,
			},
			LastChangedDate: seedDate.Add(7 * 24 * time.Hour),
		},
	}
}
