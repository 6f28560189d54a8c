// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package invocation turns the raw command line into a Request.
package invocation

import (
	"errors"
	"slices"
)

const (
	// ExecFlag introduces the program to run.
	ExecFlag = "--exec"
)

var (
	// ErrParse is matched by every error returned from Parse.
	ErrParse = errors.New("invalid arguments")
	// ErrMissingExec is returned when the command line does not start with --exec.
	ErrMissingExec = errors.Join(ErrParse, errors.New("missing '--exec' argument or program name"))
	// ErrMissingProgram is returned when --exec is not followed by a program name.
	ErrMissingProgram = errors.Join(ErrParse, errors.New("no program specified after '--exec'"))
	// ErrHelpRequested is returned for -h and --help. It is not a parse failure.
	ErrHelpRequested = errors.New("help requested")
)

// Request is the program to run and the arguments to hand it.
type Request struct {
	Program string
	Args    []string
}

// Parse builds a Request from the arguments following the executable name.
// Everything after the program name is passed through untouched, flags included.
func Parse(rawArgs []string) (*Request, error) {
	if len(rawArgs) == 0 {
		return nil, ErrMissingExec
	}

	switch rawArgs[0] {
	case "-h", "--help":
		return nil, ErrHelpRequested
	case ExecFlag:
	default:
		return nil, ErrMissingExec
	}

	if len(rawArgs) < 2 || rawArgs[1] == "" {
		return nil, ErrMissingProgram
	}

	return &Request{
		Program: rawArgs[1],
		Args:    slices.Clone(rawArgs[2:]),
	}, nil
}
