package auth

import (
	"context"
	"time"

	"github.com/schollz/progressbar/v3"
)

// cooldownTickInterval is the progress bar update interval during the resend cooldown.
const cooldownTickInterval = time.Second

// waitForResendCooldown blocks for the configured cooldown before an SMS code
// resend, rendering a countdown so the wait is visible. It returns early with
// the context error when ctx is canceled.
func waitForResendCooldown(ctx context.Context, cooldown time.Duration) error {
	if cooldown <= 0 {
		return nil
	}

	ticks := int(cooldown / cooldownTickInterval)
	if ticks < 1 {
		ticks = 1
	}

	bar := progressbar.NewOptions(ticks,
		progressbar.OptionSetDescription("Waiting before resending the SMS code"),
		progressbar.OptionSetPredictTime(false),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)

	ticker := time.NewTicker(cooldownTickInterval)
	defer ticker.Stop()

	deadline := time.Now().Add(cooldown)

	for time.Now().Before(deadline) {
		select {
		case <-ctx.Done():
			_ = bar.Clear()

			return ctx.Err()
		case <-ticker.C:
			_ = bar.Add(1)
		}
	}

	_ = bar.Finish()

	return nil
}
