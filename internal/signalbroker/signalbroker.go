// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package signalbroker subscribes to the OS signals that would otherwise
// terminate the wrapper while a child runs. By default these are os.Interrupt,
// SIGINT, SIGTERM and SIGQUIT.
//
// Keyboard signals such as Ctrl-C are sent by the terminal to the whole
// foreground process group, so a child sharing the terminal already receives
// them. DeliveredToGroup reports those signals so callers do not send them twice.
package signalbroker

import (
	"context"
	"os"
	"os/signal"
	"slices"
	"syscall"

	"github.com/DEVHELP24/pip-universal-wrapper/internal/ctxlog"
)

var termSignals = []os.Signal{
	syscall.SIGINT,
	syscall.SIGTERM,
	syscall.SIGQUIT,
	os.Interrupt,
}

var groupSignals = []os.Signal{
	syscall.SIGINT,
	syscall.SIGQUIT,
	os.Interrupt,
}

// DeliveredToGroup reports whether s is normally delivered by the terminal to
// every process in the foreground group.
func DeliveredToGroup(s os.Signal) bool {
	return slices.Contains(groupSignals, s)
}

// New returns a channel receiving sigs, or the terminating signals if none are given.
// Call Stop when the channel is no longer read.
func New(ctx context.Context, sigs ...os.Signal) chan os.Signal {
	ch := make(chan os.Signal, 1)

	if len(sigs) == 0 {
		sigs = termSignals
	}

	ctxlog.Debug(ctx, "signalbroker", "detail", "subscribing to signals", "signals", sigs)
	signal.Notify(ch, sigs...)

	return ch
}

// Stop unsubscribes ch. The channel is left open.
func Stop(ctx context.Context, ch chan os.Signal) {
	ctxlog.Debug(ctx, "signalbroker", "detail", "unsubscribing from signals")
	signal.Stop(ch)
}
