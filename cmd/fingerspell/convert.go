package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pathu11/testing-app-nmt/catalog"
	"github.com/pathu11/testing-app-nmt/numeral"
	"github.com/pathu11/testing-app-nmt/playlist"
	"github.com/pathu11/testing-app-nmt/segment"
)

var asJSON bool

func init() {
	for _, cmd := range []*cobra.Command{wordCmd, numberCmd, playlistCmd} {
		cmd.Flags().BoolVar(&asJSON, "json", false, "emit JSON")
	}
}

// wordCmd segments words without touching the catalog.
var wordCmd = &cobra.Command{
	Use:   "word [words...]",
	Short: "Segment Sinhala words into sign sequences",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		seg := segment.New()
		results := make(map[string][]string, len(args))
		for _, word := range args {
			signs, err := seg.Segment(word)
			if err != nil {
				return err
			}
			results[word] = signs
			if !asJSON {
				fmt.Println(strings.Join(signs, " "))
			}
		}
		if asJSON {
			return emitJSON(results)
		}
		return nil
	},
}

// numberCmd decomposes numbers over the mapper's numeric entries.
var numberCmd = &cobra.Command{
	Use:   "number [numbers...]",
	Short: "Decompose numbers into sign sequences",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		mapping, err := numeral.LoadMapping(cfg.MapperCSV)
		if err != nil {
			return err
		}
		dec := numeral.New(mapping)

		results := make(map[string][]string, len(args))
		for _, input := range args {
			signs := dec.DecomposeString(input)
			results[input] = signs
			if !asJSON {
				fmt.Println(strings.Join(signs, " "))
			}
		}
		if asJSON {
			return emitJSON(results)
		}
		return nil
	},
}

// playlistCmd builds full clip playlists for words or numbers.
var playlistCmd = &cobra.Command{
	Use:   "playlist [inputs...]",
	Short: "Build clip playlists for words or numbers",
	Long: `Builds one playlist per input: the sign sequence plus the clip file
resolved for each sign. Inputs made of digits decompose as numbers;
everything else segments as a Sinhala word.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := newBuilder()
		if err != nil {
			return err
		}

		out := make([]*playlist.Playlist, 0, len(args))
		for _, input := range args {
			var pl *playlist.Playlist
			if isNumeric(input) {
				pl = b.Number(input)
			} else {
				if pl, err = b.Word(input); err != nil {
					return err
				}
			}
			out = append(out, pl)
			if !asJSON {
				fmt.Printf("%s: %s (%d/%d clips)\n",
					input, strings.Join(pl.Signs, " "), pl.Found, len(pl.Clips))
			}
		}
		if asJSON {
			return emitJSON(out)
		}
		return nil
	},
}

func newBuilder() (*playlist.Builder, error) {
	cat, err := catalog.Load(cfg.MapperCSV, cfg.ClipsDir,
		catalog.WithClipNaming(cfg.ClipPrefix, cfg.ClipExt),
		catalog.WithBaseURL(cfg.BaseURL),
		catalog.WithLogger(logger))
	if err != nil {
		return nil, err
	}
	mapping, err := numeral.LoadMapping(cfg.MapperCSV)
	if err != nil {
		return nil, err
	}
	return playlist.NewBuilder(cat, mapping, playlist.WithLogger(logger)), nil
}

func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

func emitJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}
