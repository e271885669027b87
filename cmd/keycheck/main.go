//go:build !cover

// Package main is the entrypoint for keycheck.
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import (
	"os"
)

func main() {
	// Non-zero verification results exit inside Run via cli.Exit; anything
	// returned here is a usage error.
	if err := newApp(os.Stdout, os.Stderr).Run(os.Args); err != nil {
		os.Exit(1)
	}
}
