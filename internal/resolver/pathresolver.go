// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package resolver

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/DEVHELP24/pip-universal-wrapper/internal/ctxlog"
	"github.com/hashicorp/go-multierror"
)

const (
	pathEnv        = "PATH"
	pathExtEnv     = "PATHEXT"
	defaultPathExt = ".COM;.EXE;.BAT;.CMD"
	windowsSeps    = `\/:`
)

var _ Resolver = (*PathResolver)(nil)

// PathResolver searches the directories of PATH, trying each PATHEXT suffix.
type PathResolver struct{}

// Platform implements Resolver.
func (r *PathResolver) Platform() string { return "Windows" }

// Location implements Resolver.
func (r *PathResolver) Location() string { return "PATH" }

// Resolve implements Resolver.
func (r *PathResolver) Resolve(ctx context.Context, name string) (string, error) {
	logger := ctxlog.Logger(ctx).With("resolver", "path", "program", name)
	notFound := &NotFoundError{Program: name, Location: r.Location()}

	if name == "" {
		return "", notFound
	}

	fs := FsFactory()
	exts := pathExts(os.Getenv(pathExtEnv))

	direct := hasSeparator(name, windowsSeps)

	dirs := filepath.SplitList(os.Getenv(pathEnv))
	if direct {
		dirs = []string{""}
	}

	var errs *multierror.Error

	for _, dir := range dirs {
		if dir == "" && !direct {
			continue
		}

		for _, candidate := range candidates(joinCandidate(dir, name), exts) {
			logger.Debug("checking candidate", "path", candidate)

			info, err := statFile(fs, candidate)
			if err != nil {
				errs = multierror.Append(errs, err)
				continue
			}

			if info == nil || info.IsDir() {
				continue
			}

			logger.Debug("resolved", "path", candidate)

			return candidate, nil
		}
	}

	if errs != nil {
		errs.ErrorFormat = joinLookupErrors
	}

	if err := errs.ErrorOrNil(); err != nil {
		return "", errors.Join(ErrLookup, err)
	}

	return "", notFound
}

func joinLookupErrors(es []error) string {
	msgs := make([]string, len(es))
	for i, e := range es {
		msgs[i] = e.Error()
	}

	return strings.Join(msgs, "; ")
}

// joinCandidate joins dir and name. An empty dir keeps name as given.
func joinCandidate(dir, name string) string {
	if dir == "" {
		return name
	}

	return filepath.Join(dir, name)
}

// candidates lists the file names to try for base. A base that already ends in
// a known extension is tried as-is first.
func candidates(base string, exts []string) []string {
	out := make([]string, 0, len(exts)+1)

	ext := strings.ToLower(filepath.Ext(base))
	for _, e := range exts {
		if ext != "" && ext == e {
			out = append(out, base)
			break
		}
	}

	for _, e := range exts {
		out = append(out, base+e)
	}

	return out
}

// pathExts parses a PATHEXT value into lower-case extensions with a leading dot.
func pathExts(v string) []string {
	if strings.TrimSpace(v) == "" {
		v = defaultPathExt
	}

	var exts []string

	for _, e := range strings.Split(v, ";") {
		e = strings.ToLower(strings.TrimSpace(e))
		if e == "" {
			continue
		}

		if !strings.HasPrefix(e, ".") {
			e = "." + e
		}

		exts = append(exts, e)
	}

	return exts
}
