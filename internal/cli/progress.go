package cli

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
	"sync"

	"github.com/glorpus-work/binfetch/pkg/logger"
)

// logReporter renders progress to the log at coarse steps so a terminal run
// shows movement without flooding the output.
type logReporter struct {
	mu       sync.Mutex
	lastStep map[string]int
}

func newLogReporter() *logReporter {
	return &logReporter{lastStep: map[string]int{}}
}

// ShowProgress logs the fraction as a percentage, at most once per 10% step
// per title.
func (r *logReporter) ShowProgress(title, message string, fraction float64) {
	percent := int(fraction * 100)
	step := percent / 10

	r.mu.Lock()
	last, seen := r.lastStep[title]
	if seen && step <= last {
		r.mu.Unlock()
		return
	}
	r.lastStep[title] = step
	r.mu.Unlock()

	logger.Info(fmt.Sprintf("%s: %d%%", title, percent), logger.Fields{
		"category": "progress",
		"detail":   message,
	})
}

// ClearProgress resets the step tracking for the next operation.
func (r *logReporter) ClearProgress() {
	r.mu.Lock()
	r.lastStep = map[string]int{}
	r.mu.Unlock()
}

// commandRefresher runs a configured shell command after extraction, standing
// in for the host application's asset re-scan.
type commandRefresher struct {
	command string
}

func newRefresher(command string) *commandRefresher {
	return &commandRefresher{command: command}
}

// RefreshAssets executes the refresh command, if one is configured.
func (c *commandRefresher) RefreshAssets(ctx context.Context) error {
	parts := strings.Fields(c.command)
	if len(parts) == 0 {
		logger.Debug("no refresh command configured", logger.Fields{"category": "cli"})
		return nil
	}
	cmd := exec.CommandContext(ctx, parts[0], parts[1:]...)
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("refresh command %q failed: %s: %w", c.command, strings.TrimSpace(string(out)), err)
	}
	return nil
}
