// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package cli

import (
	"os"

	"writingbuddy/cmd/tui"
	"writingbuddy/internal/config"
	"writingbuddy/internal/logger"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	statusColor     = color.New(color.FgCyan)
	errorColor      = color.New(color.FgRed)
	successColor    = color.New(color.FgGreen)
	identifierColor = color.New(color.FgBlue)
)

var configFlag string

var rootCmd = &cobra.Command{
	Use:   "wb",
	Short: "Distraction-free writing sessions in the terminal",
	Long: `writingbuddy opens a distraction-free writing screen with optional
word and time goals, appends what you wrote to a markdown journal, and
can punish hesitation by wiping the buffer when you stop typing.

Configuration is read from --config, ./writingbuddy.yaml, or
<user-config-dir>/writingbuddy/config.yaml, in that order. Flags
override the config file for a single session.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		// This command runs the TUI; keep log lines off stderr.
		logger.InitLogger(true)

		cfg, source, err := config.Load(configFlag)
		if err != nil {
			return err
		}
		if source != "" {
			logger.Info("loaded config", "path", source)
		}
		applyFlags(cmd, &cfg)
		return tui.Run(cfg)
	},
}

// RunCLI executes the root command. Called when the binary is started
// with arguments.
func RunCLI() {
	logger.InitLogger(false)
	if err := rootCmd.Execute(); err != nil {
		errorColor.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "path to the config file")

	f := rootCmd.Flags()
	f.Int("word-goal", 0, "minimum words before a strict session may end")
	f.Duration("time-goal", 0, "minimum writing time before a strict session may end")
	f.Duration("keystroke-timeout", 0, "wipe the buffer when no key is pressed for this long (0 disables)")
	f.Bool("strict", true, "gate leaving the session on the configured goals")
	f.Bool("no-backspace", false, "make backspace a no-op while writing")
	f.String("title-pattern", "", "strftime pattern the entry title is prefilled with")
	f.String("file-pattern", "", "strftime pattern for the journal filename")
	f.String("journal-dir", "", "directory journal files are written to")

	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(statsCmd)
}

// applyFlags overrides config values with flags explicitly set on the
// command line. Unset flags leave the config untouched.
func applyFlags(cmd *cobra.Command, cfg *config.Config) {
	f := cmd.Flags()
	if f.Changed("word-goal") {
		cfg.WordGoal, _ = f.GetInt("word-goal")
	}
	if f.Changed("time-goal") {
		v, _ := f.GetDuration("time-goal")
		cfg.TimeGoal = config.Duration(v)
	}
	if f.Changed("keystroke-timeout") {
		v, _ := f.GetDuration("keystroke-timeout")
		cfg.KeystrokeTimeout = config.Duration(v)
	}
	if f.Changed("strict") {
		cfg.Strict, _ = f.GetBool("strict")
	}
	if f.Changed("no-backspace") {
		v, _ := f.GetBool("no-backspace")
		cfg.Backspace = !v
	}
	if f.Changed("title-pattern") {
		cfg.TitlePattern, _ = f.GetString("title-pattern")
	}
	if f.Changed("file-pattern") {
		cfg.FilePattern, _ = f.GetString("file-pattern")
	}
	if f.Changed("journal-dir") {
		cfg.JournalDir, _ = f.GetString("journal-dir")
	}
}
