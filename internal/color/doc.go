// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package color wraps strings in ANSI escape codes for the progress and error
// lines printed by the launcher.
//
// Color output follows the NO_COLOR and FORCE_COLOR conventions. When neither is
// set, color is enabled only if stdout is a terminal, as reported by
// golang.org/x/term.
package color
