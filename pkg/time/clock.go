package time

import (
	"context"
	"time"
)

const nowContextKey contextKey = iota

type (
	// Clock reads the wall clock, honoring a moment pinned to the context.
	// Session hydration and the access guard take time through it so expiry
	// boundaries are testable to the second.
	Clock interface {
		Now(context.Context) time.Time
	}

	AdjustableClock interface {
		Clock
		Set(context.Context, time.Time) context.Context
	}

	clockImpl  struct{}
	contextKey int
)

func NewAdjustableClock() AdjustableClock {
	return clockImpl{}
}

func (c clockImpl) Now(ctx context.Context) time.Time {
	if t, ok := ctx.Value(nowContextKey).(time.Time); ok {
		return t
	}

	return time.Now()
}

func (c clockImpl) Set(ctx context.Context, t time.Time) context.Context {
	return context.WithValue(ctx, nowContextKey, t)
}
