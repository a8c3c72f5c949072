package httpapi

import (
	"time"

	"github.com/sportsworldcentral/swc-api/internal/domain/player"
	"github.com/sportsworldcentral/swc-api/internal/domain/team"
	"github.com/sportsworldcentral/swc-api/internal/usecase"
)

const dateLayout = "2006-01-02"

type playerDTO struct {
	PlayerID        int32  `json:"player_id"`
	FirstName       string `json:"first_name"`
	LastName        string `json:"last_name"`
	Position        string `json:"position"`
	LastChangedDate string `json:"last_changed_date"`
}

type performanceDTO struct {
	PerformanceID       int32   `json:"performance_id"`
	PlayerID            int32   `json:"player_id"`
	WeekNumber          int     `json:"week_number"`
	FantasyPoints       float64 `json:"fantasy_points"`
	PassingYards        int     `json:"passing_yards"`
	PassingTouchdowns   int     `json:"passing_touchdowns"`
	Interceptions       int     `json:"interceptions"`
	RushingYards        int     `json:"rushing_yards"`
	RushingTouchdowns   int     `json:"rushing_touchdowns"`
	Receptions          int     `json:"receptions"`
	ReceivingYards      int     `json:"receiving_yards"`
	ReceivingTouchdowns int     `json:"receiving_touchdowns"`
	FumblesLost         int     `json:"fumbles_lost"`
	TwoPointConversions int     `json:"two_point_conversions"`
	LastChangedDate     string  `json:"last_changed_date"`
}

type teamDTO struct {
	TeamID          int32       `json:"team_id"`
	TeamName        string      `json:"team_name"`
	LeagueID        int32       `json:"league_id"`
	LastChangedDate string      `json:"last_changed_date"`
	Players         []playerDTO `json:"players"`
}

type leagueTeamDTO struct {
	TeamID          int32  `json:"team_id"`
	TeamName        string `json:"team_name"`
	LastChangedDate string `json:"last_changed_date"`
}

type leagueDTO struct {
	LeagueID        int32           `json:"league_id"`
	LeagueName      string          `json:"league_name"`
	ScoringType     string          `json:"scoring_type"`
	LastChangedDate string          `json:"last_changed_date"`
	Teams           []leagueTeamDTO `json:"teams"`
}

func formatAPIDate(t time.Time) string {
	return t.UTC().Format(dateLayout)
}

func toPlayerDTO(p player.Player) playerDTO {
	return playerDTO{
		PlayerID:        p.ID,
		FirstName:       p.FirstName,
		LastName:        p.LastName,
		Position:        string(p.Position),
		LastChangedDate: formatAPIDate(p.LastChangedDate),
	}
}

func toPlayerDTOs(players []player.Player) []playerDTO {
	out := make([]playerDTO, 0, len(players))
	for _, p := range players {
		out = append(out, toPlayerDTO(p))
	}
	return out
}

func toPerformanceDTO(s usecase.ScoredPerformance) performanceDTO {
	p := s.Performance
	return performanceDTO{
		PerformanceID:       p.ID,
		PlayerID:            p.PlayerID,
		WeekNumber:          p.WeekNumber,
		FantasyPoints:       s.FantasyPoints,
		PassingYards:        p.StatLine.PassingYards,
		PassingTouchdowns:   p.StatLine.PassingTouchdowns,
		Interceptions:       p.StatLine.Interceptions,
		RushingYards:        p.StatLine.RushingYards,
		RushingTouchdowns:   p.StatLine.RushingTouchdowns,
		Receptions:          p.StatLine.Receptions,
		ReceivingYards:      p.StatLine.ReceivingYards,
		ReceivingTouchdowns: p.StatLine.ReceivingTouchdowns,
		FumblesLost:         p.StatLine.FumblesLost,
		TwoPointConversions: p.StatLine.TwoPointConversions,
		LastChangedDate:     formatAPIDate(p.LastChangedDate),
	}
}

func toPerformanceDTOs(scored []usecase.ScoredPerformance) []performanceDTO {
	out := make([]performanceDTO, 0, len(scored))
	for _, s := range scored {
		out = append(out, toPerformanceDTO(s))
	}
	return out
}

func toTeamDTO(tr usecase.TeamWithRoster) teamDTO {
	return teamDTO{
		TeamID:          tr.Team.ID,
		TeamName:        tr.Team.Name,
		LeagueID:        tr.Team.LeagueID,
		LastChangedDate: formatAPIDate(tr.Team.LastChangedDate),
		Players:         toPlayerDTOs(tr.Players),
	}
}

func toTeamDTOs(teams []usecase.TeamWithRoster) []teamDTO {
	out := make([]teamDTO, 0, len(teams))
	for _, tr := range teams {
		out = append(out, toTeamDTO(tr))
	}
	return out
}

func toLeagueTeamDTOs(teams []team.Team) []leagueTeamDTO {
	out := make([]leagueTeamDTO, 0, len(teams))
	for _, t := range teams {
		out = append(out, leagueTeamDTO{
			TeamID:          t.ID,
			TeamName:        t.Name,
			LastChangedDate: formatAPIDate(t.LastChangedDate),
		})
	}
	return out
}

func toLeagueDTO(lw usecase.LeagueWithTeams) leagueDTO {
	return leagueDTO{
		LeagueID:        lw.League.ID,
		LeagueName:      lw.League.Name,
		ScoringType:     string(lw.League.ScoringType),
		LastChangedDate: formatAPIDate(lw.League.LastChangedDate),
		Teams:           toLeagueTeamDTOs(lw.Teams),
	}
}

func toLeagueDTOs(leagues []usecase.LeagueWithTeams) []leagueDTO {
	out := make([]leagueDTO, 0, len(leagues))
	for _, lw := range leagues {
		out = append(out, toLeagueDTO(lw))
	}
	return out
}
