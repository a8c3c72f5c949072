package performance

import (
	"context"
	"time"
)

// Filter narrows performance list reads. Zero values mean "no constraint".
type Filter struct {
	MinimumLastChanged time.Time
	Skip               int
	Limit              int
}

// Repository describes performance persistence needs from use cases.
type Repository interface {
	List(ctx context.Context, filter Filter) ([]Performance, error)
	ListByPlayer(ctx context.Context, playerID int32) ([]Performance, error)
}
