// Command fingerspell converts Sinhala text and numbers into
// fingerspelling sign sequences and clip playlists.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/pathu11/testing-app-nmt/config"
)

var (
	cfgPath string
	verbose bool

	cfg    config.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "fingerspell",
	Short: "Sinhala fingerspelling converter",
	Long: `fingerspell converts Sinhala words and numbers into ordered
fingerspelling sign sequences, and resolves each sign to the video clip
that performs it.

Segmentation follows priority-ordered grapheme rules (ligatures before
hal forms before inherent vowels); numbers decompose hierarchically over
the sparse sign mapping (1234 → 1000 200 30 4).`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		if cfg, err = config.Load(cfgPath); err != nil {
			return err
		}

		zcfg := zap.NewProductionConfig()
		if verbose {
			zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		} else if lvl, perr := zapcore.ParseLevel(cfg.LogLevel); perr == nil {
			zcfg.Level = zap.NewAtomicLevelAt(lvl)
		}
		if logger, err = zcfg.Build(); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func main() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "fingerspell.yaml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	rootCmd.AddCommand(wordCmd, numberCmd, playlistCmd, validateCmd, statsCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
