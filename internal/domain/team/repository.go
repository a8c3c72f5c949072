package team

import (
	"context"
	"time"
)

// Filter narrows team list reads. Zero values mean "no constraint".
type Filter struct {
	Name               string
	MinimumLastChanged time.Time
	Skip               int
	Limit              int
}

// Repository describes team persistence needs from use cases.
type Repository interface {
	List(ctx context.Context, filter Filter) ([]Team, error)
	ListByLeague(ctx context.Context, leagueID int32) ([]Team, error)
	GetByID(ctx context.Context, teamID int32) (Team, bool, error)
	Count(ctx context.Context) (int, error)
}
