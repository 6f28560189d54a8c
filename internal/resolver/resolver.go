// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package resolver finds the executable for a program name.
//
// Two variants exist and one is chosen per process by New:
//
//   - PathResolver searches every PATH directory using PATHEXT suffixes. It is used on Windows.
//   - PipBinResolver searches a single pip binary directory. It is used everywhere else.
//
// The POSIX variant intentionally never falls back to PATH: it consults
// ~/.local/bin when that directory exists and /usr/local/bin otherwise.
package resolver

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/afero"
)

const goOSWindows = "windows"

var (
	// ErrNotFound is matched by NotFoundError.
	ErrNotFound = errors.New("program not found")
	// ErrLookup is returned when candidates could not be inspected and none matched.
	ErrLookup = errors.New("failed to inspect candidate executables")
)

// FsFactory returns the filesystem used for lookups.
var FsFactory = func() afero.Fs {
	return afero.NewOsFs()
}

// HomeDir returns the current user's home directory.
var HomeDir = homedir.Dir

// Resolver maps a program name to an executable path.
type Resolver interface {
	// Resolve returns the path of the executable for name.
	Resolve(ctx context.Context, name string) (string, error)
	// Platform is the label used in progress messages, e.g. "Windows".
	Platform() string
	// Location describes where Resolve searches, e.g. "PATH".
	Location() string
}

// NotFoundError reports a program absent from the searched location.
type NotFoundError struct {
	Program  string
	Location string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("Program '%s' not found in %s.", e.Program, e.Location)
}

// Is makes errors.Is(err, ErrNotFound) succeed.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// New returns the resolver for goos, normally runtime.GOOS.
func New(goos string) Resolver {
	if goos == goOSWindows {
		return &PathResolver{}
	}

	return &PipBinResolver{platform: PlatformLabel(goos)}
}

// PlatformLabel returns a human readable name for goos.
func PlatformLabel(goos string) string {
	switch goos {
	case goOSWindows:
		return "Windows"
	case "linux", "android":
		return "Linux"
	case "darwin", "ios":
		return "macOS"
	case "":
		return "unknown"
	}

	return strings.ToUpper(goos[:1]) + goos[1:]
}

func hasSeparator(name string, seps string) bool {
	return strings.ContainsAny(name, seps)
}

// statFile returns the file info for path, treating a missing file as (nil, nil).
func statFile(fs afero.Fs, path string) (os.FileInfo, error) {
	info, err := fs.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}

		return nil, err
	}

	return info, nil
}
