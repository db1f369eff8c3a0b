package picker

import (
	"context"
	"time"

	"github.com/schollz/progressbar/v3"
)

// wait blocks for d or until ctx is done
func (o *Operations) wait(ctx context.Context, d time.Duration) error {
	if o.countdown && d >= time.Second {
		return o.countdownWait(ctx, d)
	}
	return sleep(ctx, d)
}

// countdownWait ticks a progress bar once per second
func (o *Operations) countdownWait(ctx context.Context, d time.Duration) error {
	ticks := int(d / time.Second)

	bar := progressbar.NewOptions(ticks,
		progressbar.OptionSetWriter(o.out),
		progressbar.OptionSetDescription("Next magazine"),
		progressbar.OptionShowCount(),
		progressbar.OptionSetPredictTime(false),
		progressbar.OptionClearOnFinish(),
	)

	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for range ticks {
		select {
		case <-ctx.Done():
			_ = bar.Exit()
			return ctx.Err()
		case <-ticker.C:
			_ = bar.Add(1)
		}
	}
	_ = bar.Finish()

	return sleep(ctx, d%time.Second)
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
