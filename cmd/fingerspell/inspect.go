package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pathu11/testing-app-nmt/catalog"
	"github.com/pathu11/testing-app-nmt/inventory"
	"github.com/pathu11/testing-app-nmt/numeral"
)

// validateCmd checks that every mapped sign has a clip on disk.
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check that every mapped sign has a clip file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := catalog.Load(cfg.MapperCSV, cfg.ClipsDir,
			catalog.WithClipNaming(cfg.ClipPrefix, cfg.ClipExt))
		if err != nil {
			return err
		}

		rep := cat.Validate()
		fmt.Printf("clips: %d/%d found\n", rep.Found, rep.Total)
		for _, sign := range rep.Missing {
			fmt.Printf("missing: %s\n", sign)
		}
		if !rep.Valid() {
			return fmt.Errorf("%d clip(s) missing", len(rep.Missing))
		}
		return nil
	},
}

// statsCmd summarizes the inventory, catalog and number coverage.
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show inventory, catalog and number-mapping statistics",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		inv := inventory.New()
		fmt.Printf("allowed signs: %d\n", inv.Size())
		fmt.Printf("vowel modifiers: %d\n", inv.VowelModifierCount())

		cat, err := catalog.Load(cfg.MapperCSV, cfg.ClipsDir,
			catalog.WithClipNaming(cfg.ClipPrefix, cfg.ClipExt))
		if err != nil {
			return err
		}
		fmt.Printf("mapped clips: %d\n", cat.Size())

		mapping, err := numeral.LoadMapping(cfg.MapperCSV)
		if err != nil {
			return err
		}
		numbers := mapping.Numbers()
		fmt.Printf("mapped numbers: %d\n", len(numbers))
		if len(numbers) > 0 {
			fmt.Printf("number range: %d-%d\n", numbers[0], numbers[len(numbers)-1])
		}
		return nil
	},
}
