package timer

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"
)

func TestCountdownCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	start := time.Now()
	err := Countdown(ctx, 10*time.Minute, &out)

	if !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
	if elapsed := time.Since(start); elapsed > 2*time.Second {
		t.Errorf("cancelled countdown took %v", elapsed)
	}
	if !strings.Contains(out.String(), "Time left: 10:00") {
		t.Errorf("output = %q, want initial countdown line", out.String())
	}
}

func TestCountdownZeroDuration(t *testing.T) {
	var out bytes.Buffer
	if err := Countdown(context.Background(), 0, &out); err != nil {
		t.Errorf("err = %v, want nil", err)
	}
}

func TestCountdownCompletes(t *testing.T) {
	var out bytes.Buffer
	if err := Countdown(context.Background(), 1*time.Second, &out); err != nil {
		t.Errorf("err = %v, want nil", err)
	}
	if !strings.Contains(out.String(), "Time left: 00:01") {
		t.Errorf("output = %q, want 00:01 tick", out.String())
	}
}
