// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package app

import (
	"errors"
	"fmt"
	"strings"

	"github.com/DEVHELP24/pip-universal-wrapper/internal/color"
	"github.com/DEVHELP24/pip-universal-wrapper/internal/invocation"
	"github.com/DEVHELP24/pip-universal-wrapper/internal/launcher"
	"github.com/DEVHELP24/pip-universal-wrapper/internal/resolver"
	"github.com/urfave/cli/v3"
)

const exitFailure = 1

// ExitCode maps the result of a run to the process exit status: 0 on success,
// the child's own status when it failed with one, 1 otherwise.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}

	var cf *launcher.ChildFailedError
	if errors.As(err, &cf) && cf.ExitCode > 0 {
		return cf.ExitCode
	}

	return exitFailure
}

// Report writes the user-facing message for err. Errors go to cmd.ErrWriter,
// help text to cmd.Writer. A nil err writes nothing.
func Report(cmd *cli.Command, err error) {
	if err == nil {
		return
	}

	var msg string

	showHelp := false

	switch {
	case errors.Is(err, invocation.ErrMissingExec):
		msg = "Error: Missing '--exec' argument or program name."
		showHelp = true
	case errors.Is(err, invocation.ErrMissingProgram):
		msg = "Error: No program specified after '--exec'."
		showHelp = true
	case errors.Is(err, launcher.ErrUnexpected), errors.Is(err, resolver.ErrLookup):
		msg = "Unexpected error: " + describe(err)
	case errors.Is(err, resolver.ErrNotFound), errors.Is(err, launcher.ErrChildFailed):
		msg = "Error: " + err.Error()
	default:
		msg = "Unexpected error: " + describe(err)
	}

	fmt.Fprintln(cmd.ErrWriter, color.Colorize(msg, color.FgRed)) //nolint:errcheck

	if showHelp {
		fmt.Fprint(cmd.Writer, invocation.HelpText(ToolName)) //nolint:errcheck
	}
}

// describe flattens err into one line, leaving out the classification sentinels.
func describe(err error) string {
	var parts []string

	var walk func(error)
	walk = func(e error) {
		if j, ok := e.(interface{ Unwrap() []error }); ok {
			for _, inner := range j.Unwrap() {
				walk(inner)
			}

			return
		}

		if e == launcher.ErrUnexpected || e == resolver.ErrLookup {
			return
		}

		parts = append(parts, e.Error())
	}
	walk(err)

	if len(parts) == 0 {
		return err.Error()
	}

	return strings.Join(parts, ": ")
}
