// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package launcher

import (
	"context"
	"errors"
	"os"

	"github.com/DEVHELP24/pip-universal-wrapper/internal/ctxlog"
	"github.com/DEVHELP24/pip-universal-wrapper/internal/signalbroker"
)

// relaySignals forwards signals from sigCh to ps until the returned function is
// called. Signals the terminal delivers to the whole process group already
// reached ps and are only absorbed. Any other signal is forwarded once; a repeat
// kills ps. The returned function blocks until the relay goroutine has exited.
func relaySignals(ctx context.Context, ps *os.Process, sigCh <-chan os.Signal) func() {
	done := make(chan struct{})
	exited := make(chan struct{})

	go func() {
		defer close(exited)

		logger := ctxlog.Logger(ctx).With("pid", ps.Pid)
		seen := make(map[os.Signal]struct{})

		for {
			select {
			case <-done:
				return

			case s, ok := <-sigCh:
				if !ok {
					return
				}

				if signalbroker.DeliveredToGroup(s) {
					logger.Debug("signal delivered to process group, not relaying", "signal", s.String())

					continue
				}

				if _, dup := seen[s]; dup {
					logger.Info("received duplicate signal, killing process", "signal", s.String())
					killPs(ctx, ps)

					continue
				}

				seen[s] = struct{}{}

				logger.Info("relaying signal", "signal", s.String())

				if err := ps.Signal(s); err != nil && !errors.Is(err, os.ErrProcessDone) {
					logger.Warn("failed to relay signal", "signal", s.String(), "error", err)
				}
			}
		}
	}()

	return func() {
		close(done)
		<-exited
	}
}

func killPs(ctx context.Context, ps *os.Process) {
	if err := ps.Kill(); err != nil {
		if errors.Is(err, os.ErrProcessDone) {
			ctxlog.Debug(ctx, "process already done", "pid", ps.Pid)
			return
		}

		ctxlog.Error(ctx, "process kill error", "pid", ps.Pid, "error", err)

		return
	}

	ctxlog.Info(ctx, "process killed", "pid", ps.Pid)
}
