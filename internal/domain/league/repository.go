package league

import (
	"context"
	"time"
)

// Filter narrows league list reads. Zero values mean "no constraint".
type Filter struct {
	Name               string
	MinimumLastChanged time.Time
	Skip               int
	Limit              int
}

// Repository describes league persistence needs from use cases.
type Repository interface {
	List(ctx context.Context, filter Filter) ([]League, error)
	GetByID(ctx context.Context, leagueID int32) (League, bool, error)
	Count(ctx context.Context) (int, error)
}
