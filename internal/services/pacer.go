package services

import (
	"context"
	"time"

	"golang.org/x/time/rate"
)

// Pacer spaces out consecutive AI calls. The pipeline calls Wait between
// leads, never before the first or after the last.
type Pacer interface {
	Wait(ctx context.Context) error
}

type fixedDelayPacer struct {
	delay time.Duration
}

// NewFixedDelayPacer pauses for a fixed duration on every Wait. This is the
// default pacing strategy.
func NewFixedDelayPacer(delay time.Duration) Pacer {
	return &fixedDelayPacer{delay: delay}
}

// Wait implements Pacer.
func (p *fixedDelayPacer) Wait(ctx context.Context) error {
	if p.delay <= 0 {
		return nil
	}

	timer := time.NewTimer(p.delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

type limiterPacer struct {
	limiter *rate.Limiter
}

// NewLimiterPacer is a token-bucket alternative to the fixed delay: it
// allows a burst through immediately and then enforces the interval.
func NewLimiterPacer(interval time.Duration, burst int) Pacer {
	return &limiterPacer{limiter: rate.NewLimiter(rate.Every(interval), burst)}
}

// Wait implements Pacer.
func (p *limiterPacer) Wait(ctx context.Context) error {
	return p.limiter.Wait(ctx)
}
