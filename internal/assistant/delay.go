package assistant

import (
	"context"
	"math/rand/v2"
	"time"
)

// Delay runs fn once after d unless ctx is done first. The returned stop
// function cancels a pending call and reports whether it did so.
func Delay(ctx context.Context, d time.Duration, fn func()) (stop func() bool) {
	if ctx.Err() != nil {
		return func() bool { return false }
	}
	ready := make(chan struct{})
	var unregister func() bool
	timer := time.AfterFunc(d, func() {
		<-ready
		unregister()
		if ctx.Err() == nil {
			fn()
		}
	})
	unregister = context.AfterFunc(ctx, func() { timer.Stop() })
	close(ready)
	return func() bool {
		unregister()
		return timer.Stop()
	}
}

// Jitter returns base plus a random duration in [0, spread]
func Jitter(base, spread time.Duration, rng *rand.Rand) time.Duration {
	if spread <= 0 || rng == nil {
		return base
	}
	return base + time.Duration(rng.Int64N(int64(spread)+1))
}
