// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package runtimecheck verifies the Go runtime the binary was built with.
package runtimecheck

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hashicorp/go-version"
)

// MinimumVersion is the oldest supported Go runtime. It tracks the go directive
// in go.mod, so it only rejects binaries produced outside the module's own build.
const MinimumVersion = "1.24"

const develPrefix = "devel"

// ErrUnsupportedRuntime is returned when the runtime is older than required or unparseable.
var ErrUnsupportedRuntime = errors.New("unsupported runtime version")

// Check reports whether runtimeVersion, in the format of runtime.Version(),
// satisfies minimum. Development toolchains always pass.
func Check(runtimeVersion, minimum string) error {
	if strings.HasPrefix(runtimeVersion, develPrefix) {
		return nil
	}

	c, err := version.NewConstraint(">= " + minimum)
	if err != nil {
		return fmt.Errorf("invalid minimum version %q: %w", minimum, err)
	}

	// Experiment builds append " X:<experiments>".
	release, _, _ := strings.Cut(runtimeVersion, " ")

	v, err := version.NewVersion(strings.TrimPrefix(release, "go"))
	if err != nil {
		return errors.Join(ErrUnsupportedRuntime, err)
	}

	// Release candidates of the minimum release are accepted.
	if !c.Check(v.Core()) {
		return fmt.Errorf("%w: %s is older than %s", ErrUnsupportedRuntime, runtimeVersion, minimum)
	}

	return nil
}
