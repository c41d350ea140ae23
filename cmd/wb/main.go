// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package main

import (
	"os"

	"writingbuddy/cmd/cli"
	"writingbuddy/cmd/tui"
)

func main() {
	// No arguments starts a writing session; anything else goes to the
	// CLI.
	if len(os.Args) <= 1 {
		tui.RunTUI()
	} else {
		cli.RunCLI()
	}
}
