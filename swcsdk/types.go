package swcsdk

// Wire types mirror the API's JSON payloads.

type Player struct {
	PlayerID        int32  `json:"player_id"`
	FirstName       string `json:"first_name"`
	LastName        string `json:"last_name"`
	Position        string `json:"position"`
	LastChangedDate string `json:"last_changed_date"`
}

type ScoredPerformance struct {
	PerformanceID       int32   `json:"performance_id"`
	PlayerID            int32   `json:"player_id"`
	WeekNumber          int     `json:"week_number"`
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
	FantasyPoints       float64 `json:"fantasy_points"`
	LastChangedDate     string  `json:"last_changed_date"`
}

type Team struct {
	TeamID          int32    `json:"team_id"`
	TeamName        string   `json:"team_name"`
	LeagueID        int32    `json:"league_id"`
	LastChangedDate string   `json:"last_changed_date"`
	Players         []Player `json:"players"`
}

type LeagueTeam struct {
	TeamID          int32  `json:"team_id"`
	TeamName        string `json:"team_name"`
	LastChangedDate string `json:"last_changed_date"`
}

type League struct {
	LeagueID        int32        `json:"league_id"`
	LeagueName      string       `json:"league_name"`
	ScoringType     string       `json:"scoring_type"`
	LastChangedDate string       `json:"last_changed_date"`
	Teams           []LeagueTeam `json:"teams"`
}

type Counts struct {
	LeagueCount int64 `json:"league_count"`
	TeamCount   int64 `json:"team_count"`
	PlayerCount int64 `json:"player_count"`
}

// ListOptions are the shared pagination and freshness filters. The zero
// value asks for the server defaults (skip 0, limit 100).
type ListOptions struct {
	Skip                   int
	Limit                  int
	MinimumLastChangedDate string
}

type PlayerListOptions struct {
	ListOptions
	FirstName string
	LastName  string
}

type PerformanceListOptions struct {
	ListOptions
	ScoringType string
}

type LeagueListOptions struct {
	ListOptions
	LeagueName string
}

type TeamListOptions struct {
	ListOptions
	TeamName string
}
