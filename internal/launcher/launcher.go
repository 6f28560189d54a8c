// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package launcher

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/DEVHELP24/pip-universal-wrapper/internal/color"
	"github.com/DEVHELP24/pip-universal-wrapper/internal/ctxlog"
	"github.com/DEVHELP24/pip-universal-wrapper/internal/invocation"
	"github.com/DEVHELP24/pip-universal-wrapper/internal/resolver"
	"github.com/DEVHELP24/pip-universal-wrapper/internal/signalbroker"
)

// Result describes a child that exited successfully.
type Result struct {
	Program  string
	Path     string
	ExitCode int
	Duration time.Duration
}

// Launcher runs programs found by its resolver.
type Launcher struct {
	resolver resolver.Resolver
	stdin    io.Reader
	stdout   io.Writer
	stderr   io.Writer
	progress io.Writer
	sigCh    chan os.Signal // Signals to relay, allows mocking in test.
}

// Option configures a Launcher.
type Option func(l *Launcher)

// WithStdio sets the child's standard streams. The defaults are the parent's.
func WithStdio(stdin io.Reader, stdout, stderr io.Writer) Option {
	return func(l *Launcher) {
		l.stdin = stdin
		l.stdout = stdout
		l.stderr = stderr
	}
}

// WithProgressWriter sets where progress lines are written. The default is stdout.
func WithProgressWriter(w io.Writer) Option {
	return func(l *Launcher) {
		l.progress = w
	}
}

// WithSignalChannel relays signals read from ch instead of subscribing to the OS.
func WithSignalChannel(ch chan os.Signal) Option {
	return func(l *Launcher) {
		l.sigCh = ch
	}
}

// New creates a Launcher using r.
func New(r resolver.Resolver, opts ...Option) *Launcher {
	l := &Launcher{
		resolver: r,
		stdin:    os.Stdin,
		stdout:   os.Stdout,
		stderr:   os.Stderr,
		progress: os.Stdout,
	}

	for _, opt := range opts {
		opt(l)
	}

	return l
}

// Run resolves req.Program and runs it with req.Args, blocking until it exits.
//
// Resolution errors are returned as produced by the resolver. A child exiting
// non-zero yields a *ChildFailedError alongside a non-nil Result; any other
// failure is joined with ErrUnexpected.
func (l *Launcher) Run(ctx context.Context, req *invocation.Request) (*Result, error) {
	logger := ctxlog.Logger(ctx).With("program", req.Program)
	platform := l.resolver.Platform()

	path, err := l.resolver.Resolve(ctx, req.Program)
	if err != nil {
		logger.Debug("resolution failed", "error", err)
		return nil, err
	}

	logger = logger.With("path", path)
	logger.Debug("command info", "args", req.Args)

	l.printf(color.FgCyan, "Executing pip-installed program on %s: %s", platform, req.Program)

	cmd := exec.Command(explicitPath(path), req.Args...) //nolint:gosec
	cmd.Stdin = l.stdin
	cmd.Stdout = l.stdout
	cmd.Stderr = l.stderr

	sigCh := l.sigCh
	if sigCh == nil {
		sigCh = signalbroker.New(ctx)
		defer signalbroker.Stop(ctx, sigCh)
	}

	startTime := time.Now()

	if err := cmd.Start(); err != nil {
		logger.Debug("start failed", "error", err)
		return nil, errors.Join(ErrUnexpected, ErrStartProcess, err)
	}

	logger.Debug("process started", "pid", cmd.Process.Pid)

	stopRelay := relaySignals(ctx, cmd.Process, sigCh)
	waitErr := cmd.Wait()
	stopRelay()

	res := &Result{
		Program:  req.Program,
		Path:     path,
		ExitCode: cmd.ProcessState.ExitCode(),
		Duration: time.Since(startTime),
	}

	logger.Debug("process finished", "exitCode", res.ExitCode, "duration", res.Duration.String())

	if waitErr != nil {
		var exitErr *exec.ExitError
		if errors.As(waitErr, &exitErr) {
			return res, &ChildFailedError{
				Program:  req.Program,
				Path:     path,
				ExitCode: exitErr.ExitCode(),
				Err:      exitErr,
			}
		}

		return res, errors.Join(ErrUnexpected, waitErr)
	}

	l.printf(color.FgGreen, "Program '%s' executed successfully on %s.", req.Program, platform)

	return res, nil
}

func (l *Launcher) printf(c color.Code, format string, args ...any) {
	fmt.Fprintln(l.progress, color.Colorize(fmt.Sprintf(format, args...), c)) //nolint:errcheck
}

// explicitPath keeps exec.Command from searching PATH again for a resolved
// path that has no directory component.
func explicitPath(path string) string {
	if filepath.IsAbs(path) || strings.ContainsRune(path, filepath.Separator) || strings.ContainsRune(path, '/') {
		return path
	}

	return "." + string(filepath.Separator) + path
}
