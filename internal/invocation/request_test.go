// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package invocation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    *Request
		wantErr error
	}{
		{
			name:    "no arguments",
			args:    nil,
			wantErr: ErrMissingExec,
		},
		{
			name:    "first argument is not --exec",
			args:    []string{"black", "--check"},
			wantErr: ErrMissingExec,
		},
		{
			name:    "--exec given later is not accepted",
			args:    []string{"-v", "--exec", "black"},
			wantErr: ErrMissingExec,
		},
		{
			name:    "--exec is the last argument",
			args:    []string{"--exec"},
			wantErr: ErrMissingProgram,
		},
		{
			name:    "--exec followed by an empty name",
			args:    []string{"--exec", ""},
			wantErr: ErrMissingProgram,
		},
		{
			name:    "long help",
			args:    []string{"--help"},
			wantErr: ErrHelpRequested,
		},
		{
			name:    "short help",
			args:    []string{"-h", "--exec", "black"},
			wantErr: ErrHelpRequested,
		},
		{
			name: "program without arguments",
			args: []string{"--exec", "true"},
			want: &Request{Program: "true", Args: []string{}},
		},
		{
			name: "arguments are forwarded in order, flags included",
			args: []string{"--exec", "black", "--check", "src", "--exec", "--help", ""},
			want: &Request{Program: "black", Args: []string{"--check", "src", "--exec", "--help", ""}},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Parse(tc.args)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				assert.Nil(t, got)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParse_ErrorsMatchErrParse(t *testing.T) {
	for _, args := range [][]string{nil, {"--exec"}, {"run"}} {
		_, err := Parse(args)
		assert.ErrorIs(t, err, ErrParse)
	}

	_, err := Parse([]string{"--help"})
	assert.NotErrorIs(t, err, ErrParse, "help is not a parse failure")
}

func TestParse_DoesNotAliasInput(t *testing.T) {
	raw := []string{"--exec", "black", "a", "b"}

	req, err := Parse(raw)
	require.NoError(t, err)

	raw[2] = "changed"
	assert.Equal(t, []string{"a", "b"}, req.Args)
}

func TestHelpText(t *testing.T) {
	help := HelpText("pipwrap")
	assert.Contains(t, help, "Usage: pipwrap --exec <program> [additional arguments...]")
	assert.Contains(t, help, "pipwrap --exec <program>  # Executes a pip-installed program")
}
