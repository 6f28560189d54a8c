// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package launcher resolves a program with a resolver.Resolver and runs it as
// a child process.
//
// The child inherits the standard streams and runs to completion; there is no
// timeout. Keyboard interrupts already reach the child through the terminal and
// are not sent again. Other terminating signals are relayed, and a second one of
// the same type kills it.
package launcher
