// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package httputil provides HTTP helpers shared across stages.
package httputil

import (
	"context"
	"time"
)

// Throttle paces outgoing requests with a fixed pause before each one.
// It is not adaptive: the pause is the same regardless of server responses.
type Throttle struct {
	delay time.Duration
}

// NewThrottle returns a Throttle that waits delay before every request.
// A zero or negative delay disables waiting.
func NewThrottle(delay time.Duration) *Throttle {
	return &Throttle{delay: delay}
}

// Delay returns the configured pause.
func (t *Throttle) Delay() time.Duration {
	return t.delay
}

// Wait blocks for the configured delay. If the context is cancelled during
// the wait it returns ctx.Err().
func (t *Throttle) Wait(ctx context.Context) error {
	if t.delay <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(t.delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
