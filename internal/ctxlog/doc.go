// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package ctxlog carries a *slog.Logger in a context.Context.
//
// The default logger writes human-readable lines to stderr using PrettyHandler.
// Its level is read once from the PIPWRAP_LOG_LEVEL environment variable
// ("DEBUG", "INFO", "WARN" or "ERROR") and defaults to WARN, so a normal run
// prints nothing beyond the launcher's own progress lines.
package ctxlog
