// Package notify sends best-effort desktop notifications. Platforms
// without a supported notifier get a no-op implementation, so callers
// never branch on capability.
package notify

import (
	"context"
	"os/exec"
	"time"
)

// Notifier delivers a desktop notification. Implementations are
// fire-and-forget: failures are swallowed.
type Notifier interface {
	Notify(title, message string)
}

// New probes the PATH for a supported notification command and returns
// a Notifier backed by it, or a no-op when none is available.
func New() Notifier {
	candidates := []struct {
		bin  string
		args func(title, message string) []string
	}{
		{"notify-send", func(t, m string) []string { return []string{t, m} }},
		{"osascript", func(t, m string) []string {
			return []string{"-e", `display notification "` + m + `" with title "` + t + `"`}
		}},
		{"terminal-notifier", func(t, m string) []string {
			return []string{"-title", t, "-message", m}
		}},
	}

	for _, c := range candidates {
		if _, err := exec.LookPath(c.bin); err == nil {
			return commandNotifier{bin: c.bin, args: c.args}
		}
	}
	return noopNotifier{}
}

type commandNotifier struct {
	bin  string
	args func(title, message string) []string
}

func (n commandNotifier) Notify(title, message string) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_ = exec.CommandContext(ctx, n.bin, n.args(title, message)...).Run()
}

type noopNotifier struct{}

func (noopNotifier) Notify(title, message string) {}
