// Package timer implements the blocking session countdown.
package timer

import (
	"context"
	"fmt"
	"io"
	"time"
)

// Countdown blocks for d, rewriting a MM:SS line on out once per second.
// Cancelling ctx unwinds cleanly: the countdown returns ctx.Err() without
// touching any persisted state (the timer never writes state itself).
func Countdown(ctx context.Context, d time.Duration, out io.Writer) error {
	remaining := int(d.Seconds())

	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for remaining > 0 {
		mins, secs := remaining/60, remaining%60
		fmt.Fprintf(out, "\rTime left: %02d:%02d", mins, secs)

		select {
		case <-ctx.Done():
			fmt.Fprintln(out)
			return ctx.Err()
		case <-ticker.C:
			remaining--
		}
	}

	fmt.Fprintln(out)
	return nil
}
