// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package app wires the command line to the launcher and maps errors to
// messages and exit codes.
package app

import (
	"context"
	"errors"
	"fmt"
	"os"

	pipwrap "github.com/DEVHELP24/pip-universal-wrapper"
	"github.com/DEVHELP24/pip-universal-wrapper/internal/ctxlog"
	"github.com/DEVHELP24/pip-universal-wrapper/internal/invocation"
	"github.com/DEVHELP24/pip-universal-wrapper/internal/launcher"
	"github.com/DEVHELP24/pip-universal-wrapper/internal/resolver"
	"github.com/urfave/cli/v3"
)

// ToolName is the name used in usage and help text.
const ToolName = "pipwrap"

// NewRootCmd returns the root command. goos selects the resolver, normally
// runtime.GOOS; opts are passed to the launcher after the defaults.
//
// Flag parsing is disabled so that everything after the program name reaches
// the child verbatim.
func NewRootCmd(goos string, opts ...launcher.Option) *cli.Command {
	return &cli.Command{
		Name:      ToolName,
		Usage:     "run a pip-installed program",
		UsageText: ToolName + " --exec <program> [args...]",
		Description: `pipwrap finds a program installed by pip and runs it with the given arguments.
On Windows the program is looked up on PATH. Elsewhere only ~/.local/bin is
searched, or /usr/local/bin when ~/.local/bin does not exist.`,
		Version:         fmt.Sprintf("%s (commit: %s)", pipwrap.Version, pipwrap.Commit),
		Writer:          os.Stdout,
		ErrWriter:       os.Stderr,
		HideHelp:        true,
		HideVersion:     true,
		SkipFlagParsing: true,
		// Errors are reported by Execute.
		ExitErrHandler: func(context.Context, *cli.Command, error) {},
		Copyright:      "Copyright (c) matt-FFFFFF 2025. All rights reserved.",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return actionFunc(ctx, cmd, goos, opts)
		},
	}
}

func actionFunc(ctx context.Context, cmd *cli.Command, goos string, opts []launcher.Option) error {
	logger := ctxlog.Logger(ctx).With("command", cmd.Name)

	req, err := invocation.Parse(cmd.Args().Slice())
	if errors.Is(err, invocation.ErrHelpRequested) {
		fmt.Fprint(cmd.Writer, invocation.HelpText(ToolName)) //nolint:errcheck
		return nil
	}

	if err != nil {
		return err
	}

	r := resolver.New(goos)
	logger.Debug("resolver selected", "goos", goos, "platform", r.Platform(), "location", r.Location())

	l := launcher.New(r, append([]launcher.Option{launcher.WithProgressWriter(cmd.Writer)}, opts...)...)

	res, err := l.Run(ctx, req)
	if res != nil {
		logger.Debug("run finished", "exitCode", res.ExitCode, "duration", res.Duration.String())
	}

	return err
}

// Execute runs cmd with args (including the executable name), reports any
// error on cmd.ErrWriter and returns the process exit code.
func Execute(ctx context.Context, cmd *cli.Command, args []string) int {
	err := cmd.Run(ctx, args)
	Report(cmd, err)

	return ExitCode(err)
}
