package roids

import (
	"context"
	"errors"
	"time"
)

// ErrFrameLimit is returned by a LimitPacer once its frames are used up.
var ErrFrameLimit = errors.New("frame limit reached")

// TickerPacer waits for a wall-clock ticker, one tick per frame.
type TickerPacer struct {
	ticker *time.Ticker
}

// NewTickerPacer creates a pacer running at fps frames per second.
func NewTickerPacer(fps int) *TickerPacer {
	if fps <= 0 {
		fps = 60
	}
	return &TickerPacer{ticker: time.NewTicker(time.Second / time.Duration(fps))}
}

// WaitForFrame blocks until the next tick or until ctx is done.
func (p *TickerPacer) WaitForFrame(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-p.ticker.C:
		return nil
	}
}

// Stop releases the ticker.
func (p *TickerPacer) Stop() {
	p.ticker.Stop()
}

// Unpaced never waits. Used for headless runs.
type Unpaced struct{}

// WaitForFrame only reports cancellation.
func (Unpaced) WaitForFrame(ctx context.Context) error {
	return ctx.Err()
}

// LimitPacer stops a run after a fixed number of frames.
type LimitPacer struct {
	Pacer     FramePacer
	Remaining int
}

// WaitForFrame waits on the wrapped pacer, failing with ErrFrameLimit when
// Remaining reaches zero.
func (p *LimitPacer) WaitForFrame(ctx context.Context) error {
	p.Remaining--
	if p.Remaining <= 0 {
		return ErrFrameLimit
	}
	return p.Pacer.WaitForFrame(ctx)
}
