// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package color

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsColorEnabled(t *testing.T) {
	t.Setenv(NoColor, "1")
	assert.False(t, isColorEnabled(), "NO_COLOR should disable color")

	t.Setenv(ForceColor, "1")
	assert.False(t, isColorEnabled(), "NO_COLOR should win over FORCE_COLOR")

	t.Setenv(NoColor, "")
	assert.True(t, isColorEnabled(), "FORCE_COLOR should enable color")
}

func TestColorize(t *testing.T) {
	tests := []struct {
		name    string
		enabled bool
		in      string
		codes   []Code
		want    string
	}{
		{
			name:    "disabled returns input",
			enabled: false,
			in:      "hello",
			codes:   []Code{FgRed},
			want:    "hello",
		},
		{
			name:    "single code",
			enabled: true,
			in:      "hello",
			codes:   []Code{FgGreen},
			want:    "\033[32mhello\033[0m",
		},
		{
			name:    "multiple codes",
			enabled: true,
			in:      "hello",
			codes:   []Code{Bold, FgHiRed},
			want:    "\033[1;91mhello\033[0m",
		},
		{
			name:    "no codes returns input",
			enabled: true,
			in:      "hello",
			want:    "hello",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			prev := SetEnabled(tc.enabled)
			defer SetEnabled(prev)

			assert.Equal(t, tc.want, Colorize(tc.in, tc.codes...))
			assert.Equal(t, tc.enabled, Enabled())
		})
	}
}

func TestWrapIgnoresSwitch(t *testing.T) {
	prev := SetEnabled(false)
	defer SetEnabled(prev)

	assert.Equal(t, "\033[33mwarn\033[0m", Wrap("warn", FgYellow))
	assert.Equal(t, "warn", Colorize("warn", FgYellow))
}
