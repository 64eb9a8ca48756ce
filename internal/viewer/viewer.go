// Package viewer hands generated figures to the platform image viewer.
package viewer

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"go.uber.org/zap"
)

// DefaultTimeout bounds how long a viewer command may run.
const DefaultTimeout = 10 * time.Second

// Opener displays a file.
type Opener interface {
	Open(ctx context.Context, path string) error
}

// Nop is an Opener that does nothing.
type Nop struct{}

// Open implements Opener.
func (Nop) Open(context.Context, string) error { return nil }

// Exec opens files by running an external command with the file path
// appended as the last argument.
type Exec struct {
	command []string
	timeout time.Duration
	logger  *zap.Logger
}

// NewExec creates an Exec viewer. An empty command selects the platform
// default (xdg-open, open, or cmd /c start). A non-positive timeout
// selects DefaultTimeout.
func NewExec(command string, timeout time.Duration) *Exec {
	args := strings.Fields(command)
	if len(args) == 0 {
		args = DefaultCommand(runtime.GOOS)
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Exec{
		command: args,
		timeout: timeout,
		logger:  zap.NewNop(),
	}
}

// SetLogger sets the logger for command output.
func (e *Exec) SetLogger(l *zap.Logger) {
	e.logger = l
}

// Command returns the command and leading arguments used to open files.
func (e *Exec) Command() []string {
	return append([]string(nil), e.command...)
}

// DefaultCommand returns the viewer command for the given GOOS.
func DefaultCommand(goos string) []string {
	switch goos {
	case "windows":
		return []string{"cmd", "/c", "start", ""}
	case "darwin":
		return []string{"open"}
	default:
		return []string{"xdg-open"}
	}
}

// Open runs the viewer command on path and waits for it to exit.
func (e *Exec) Open(ctx context.Context, path string) error {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}
	if _, err := os.Stat(absPath); err != nil {
		return fmt.Errorf("figure not found: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	args := append(e.command[1:len(e.command):len(e.command)], absPath)
	cmd := exec.CommandContext(ctx, e.command[0], args...)
	cmd.WaitDelay = time.Second

	output, err := cmd.CombinedOutput()
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return fmt.Errorf("viewer %s timed out after %v", e.command[0], e.timeout)
	}
	if err != nil {
		return fmt.Errorf("run viewer %s: %w", e.command[0], err)
	}

	if len(output) > 0 {
		e.logger.Debug("viewer output",
			zap.String("command", e.command[0]),
			zap.ByteString("output", output))
	}
	return nil
}
