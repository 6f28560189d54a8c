// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package ctxlog

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAndLogger(t *testing.T) {
	custom := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))

	tests := []struct {
		name string
		ctx  func() context.Context
		want *slog.Logger
	}{
		{
			name: "custom logger is returned",
			ctx:  func() context.Context { return New(context.Background(), custom) },
			want: custom,
		},
		{
			name: "nil logger falls back to default",
			ctx:  func() context.Context { return New(context.Background(), nil) },
			want: DefaultLogger,
		},
		{
			name: "empty context falls back to default",
			ctx:  context.Background,
			want: DefaultLogger,
		},
		{
			name: "wrong value type falls back to default",
			ctx: func() context.Context {
				return context.WithValue(context.Background(), loggerKey{}, "not a logger")
			},
			want: DefaultLogger,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Same(t, tc.want, Logger(tc.ctx()))
		})
	}
}

func TestLoggingFunctions(t *testing.T) {
	var buf bytes.Buffer

	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	ctx := New(context.Background(), logger)

	tests := []struct {
		name  string
		fn    func(context.Context, string, ...any)
		level string
	}{
		{name: "debug", fn: Debug, level: "DEBUG"},
		{name: "info", fn: Info, level: "INFO"},
		{name: "warn", fn: Warn, level: "WARN"},
		{name: "error", fn: Error, level: "ERROR"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			buf.Reset()
			tc.fn(ctx, "resolving program", "program", "black")

			out := buf.String()
			assert.Contains(t, out, "level="+tc.level)
			assert.Contains(t, out, "resolving program")
			assert.Contains(t, out, "program=black")
		})
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{in: "DEBUG", want: slog.LevelDebug},
		{in: "debug", want: slog.LevelDebug},
		{in: "INFO", want: slog.LevelInfo},
		{in: "WARN", want: slog.LevelWarn},
		{in: " ERROR ", want: slog.LevelError},
		{in: "", want: slog.LevelWarn},
		{in: "verbose", want: slog.LevelWarn},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			assert.Equal(t, tc.want, parseLevel(tc.in))
		})
	}
}

func TestLogLevelFromEnv(t *testing.T) {
	t.Setenv(LogLevelEnvVar, "INFO")
	assert.Equal(t, slog.LevelInfo, logLevelFromEnv())

	t.Setenv(LogLevelEnvVar, "")
	assert.Equal(t, slog.LevelWarn, logLevelFromEnv())
}

func TestDefaultLoggersFollowLevelVar(t *testing.T) {
	require.NotNil(t, DefaultLogger)
	require.NotNil(t, JSONLogger)

	orig := LevelVar.Level()
	defer LevelVar.Set(orig)

	LevelVar.Set(slog.LevelError)
	assert.False(t, DefaultLogger.Enabled(context.Background(), slog.LevelInfo))
	assert.False(t, JSONLogger.Enabled(context.Background(), slog.LevelInfo))

	LevelVar.Set(slog.LevelDebug)
	assert.True(t, DefaultLogger.Enabled(context.Background(), slog.LevelInfo))
	assert.True(t, JSONLogger.Enabled(context.Background(), slog.LevelDebug))
}
