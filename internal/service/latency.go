package service

import (
	"context"
	"errors"
	"math/rand"
	"time"
)

// ErrServiceUnavailable is returned by a mock backend call that was chosen to fail.
var ErrServiceUnavailable = errors.New("service temporarily unavailable")

// Latency stands in for the round trip of a remote backend: a fixed delay
// followed by an optional random failure.
type Latency struct {
	Delay       time.Duration
	FailureRate float64 // 0..1
}

// Wait blocks for the configured delay or until ctx ends.
func (l Latency) Wait(ctx context.Context) error {
	if l.Delay > 0 {
		timer := time.NewTimer(l.Delay)
		defer timer.Stop()

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
		}
	} else if err := ctx.Err(); err != nil {
		return err
	}

	if l.FailureRate > 0 && rand.Float64() < l.FailureRate {
		return ErrServiceUnavailable
	}
	return nil
}
