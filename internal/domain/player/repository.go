package player

import (
	"context"
	"time"
)

// Filter narrows player list reads. Zero values mean "no constraint".
type Filter struct {
	FirstName          string
	LastName           string
	MinimumLastChanged time.Time
	Skip               int
	Limit              int
}

// Repository describes player persistence needs from use cases.
type Repository interface {
	List(ctx context.Context, filter Filter) ([]Player, error)
	GetByID(ctx context.Context, playerID int32) (Player, bool, error)
	Count(ctx context.Context) (int, error)
}
