// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package main is the entry point for the pipwrap command-line application.
package main

import (
	"context"
	"fmt"
	"os"
	"runtime"

	pipwrap "github.com/DEVHELP24/pip-universal-wrapper"
	"github.com/DEVHELP24/pip-universal-wrapper/internal/app"
	"github.com/DEVHELP24/pip-universal-wrapper/internal/ctxlog"
	"github.com/DEVHELP24/pip-universal-wrapper/internal/runtimecheck"
)

func main() {
	if err := runtimecheck.Check(runtime.Version(), runtimecheck.MinimumVersion); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s requires Go runtime %s or newer (running %s).\n",
			app.ToolName, runtimecheck.MinimumVersion, runtime.Version())
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	ctx = ctxlog.New(ctx, ctxlog.DefaultLogger)

	ctxlog.Debug(ctx, "starting", "version", pipwrap.Version, "commit", pipwrap.Commit, "goos", runtime.GOOS)

	code := app.Execute(ctx, app.NewRootCmd(runtime.GOOS), os.Args)

	cancel()
	os.Exit(code)
}
