// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package cli

import (
	"fmt"
	"time"

	"writingbuddy/internal/config"
	"writingbuddy/internal/journal"

	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show totals for the journal directory",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _, err := config.Load(configFlag)
		if err != nil {
			return err
		}
		dir, err := config.ResolvePath(cfg.JournalDir)
		if err != nil {
			return err
		}
		if dir == "" {
			dir = "."
		}

		s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
		s.Suffix = " Scanning journal..."
		s.Color("cyan")
		s.Start()
		stats, err := journal.Scan(dir)
		s.Stop()
		if err != nil {
			return err
		}

		statusColor.Print("Journal: ")
		identifierColor.Println(dir)
		fmt.Printf("Files:   %d\n", stats.Files)
		fmt.Printf("Entries: %d\n", stats.Entries)
		fmt.Printf("Words:   %d\n", stats.Words)
		if stats.NewestFile != "" {
			statusColor.Print("Latest:  ")
			fmt.Printf("%s (%s)\n", stats.NewestFile, stats.Newest.Format("2006-01-02 15:04"))
		}
		return nil
	},
}
