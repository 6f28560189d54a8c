// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package launcher

import (
	"errors"
	"fmt"
)

var (
	// ErrChildFailed is matched by ChildFailedError.
	ErrChildFailed = errors.New("child process failed")
	// ErrUnexpected wraps failures other than a missing program or a failing child.
	ErrUnexpected = errors.New("unexpected error")
	// ErrStartProcess is returned alongside ErrUnexpected when the child could not be started.
	ErrStartProcess = errors.New("could not start process")
)

// ChildFailedError reports a child that ran and exited unsuccessfully.
// ExitCode is -1 when the child was terminated by a signal.
type ChildFailedError struct {
	Program  string
	Path     string
	ExitCode int
	Err      error
}

func (e *ChildFailedError) Error() string {
	return fmt.Sprintf("Program '%s' failed with error: %s", e.Program, e.Detail())
}

// Detail describes how the child exited.
func (e *ChildFailedError) Detail() string {
	if e.ExitCode < 0 {
		return fmt.Sprintf("command '%s' was terminated (%v).", e.Path, e.Err)
	}

	return fmt.Sprintf("command '%s' returned non-zero exit status %d.", e.Path, e.ExitCode)
}

// Is makes errors.Is(err, ErrChildFailed) succeed.
func (e *ChildFailedError) Is(target error) bool {
	return target == ErrChildFailed
}

func (e *ChildFailedError) Unwrap() error {
	return e.Err
}
