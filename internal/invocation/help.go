// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package invocation

import "fmt"

const helpTemplate = `
Usage: %[1]s --exec <program> [additional arguments...]

Arguments:
  --exec             Executes the specified pip-installed program with the following arguments.
  additional args    Any additional arguments to pass to the program.

Examples:
  %[1]s --exec <program>  # Executes a pip-installed program
`

// HelpText returns the usage text for the tool named toolName.
func HelpText(toolName string) string {
	return fmt.Sprintf(helpTemplate, toolName)
}
