// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package resolver

import (
	"context"
	"errors"
	"path/filepath"

	"github.com/DEVHELP24/pip-universal-wrapper/internal/ctxlog"
)

const (
	// UserBinDir is the user-level pip script directory, relative to the home directory.
	UserBinDir = ".local/bin"
	// SystemBinDir is used when the user-level directory does not exist.
	SystemBinDir = "/usr/local/bin"

	execBits = 0o111
)

var _ Resolver = (*PipBinResolver)(nil)

// PipBinResolver searches exactly one pip binary directory, see BinDir.
type PipBinResolver struct {
	platform string
}

// Platform implements Resolver.
func (r *PipBinResolver) Platform() string {
	if r.platform == "" {
		return PlatformLabel("linux")
	}

	return r.platform
}

// Location implements Resolver.
func (r *PipBinResolver) Location() string { return "pip-installed locations" }

// BinDir returns the directory Resolve searches: the user-level directory
// under the home directory if it exists, SystemBinDir otherwise.
func (r *PipBinResolver) BinDir(ctx context.Context) string {
	logger := ctxlog.Logger(ctx).With("resolver", "pipbin")

	home, err := HomeDir()
	if err != nil {
		logger.Debug("cannot determine home directory, using system directory", "error", err)
		return SystemBinDir
	}

	userDir := filepath.Join(home, UserBinDir)
	if _, err := FsFactory().Stat(userDir); err != nil {
		logger.Debug("user directory not usable, using system directory", "dir", userDir, "error", err)
		return SystemBinDir
	}

	return userDir
}

// Resolve implements Resolver.
func (r *PipBinResolver) Resolve(ctx context.Context, name string) (string, error) {
	logger := ctxlog.Logger(ctx).With("resolver", "pipbin", "program", name)
	notFound := &NotFoundError{Program: name, Location: r.Location()}

	if name == "" {
		return "", notFound
	}

	candidate := name
	if !hasSeparator(name, "/") {
		candidate = filepath.Join(r.BinDir(ctx), name)
	}

	logger.Debug("checking candidate", "path", candidate)

	info, err := statFile(FsFactory(), candidate)
	if err != nil {
		return "", errors.Join(ErrLookup, err)
	}

	if info == nil || info.IsDir() || info.Mode().Perm()&execBits == 0 {
		return "", notFound
	}

	logger.Debug("resolved", "path", candidate)

	return candidate, nil
}
