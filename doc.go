// Package fingerspell converts Sinhala text and numerals into ordered
// sequences of fingerspelling sign identifiers, each backed by a short
// video clip.
//
// 🚀 What is fingerspell?
//
//	A deterministic, rule-priority-ordered text-processing library that
//	brings together:
//		• Sign inventory: the fixed set of legal signs + vowel-modifier table
//		• Grapheme segmentation: Sinhala words → sign sequences
//		• Numeral decomposition: integers → sign sequences via place values
//		• Clip catalog: sign → video-clip resolution from a mapper CSV
//		• Playlists: full word/number → ordered clip references
//
// ✨ Why choose fingerspell?
//
//   - Deterministic – identical input always yields the identical sequence
//   - Typed failures – unhandled characters and inventory violations are
//     explicit error values, never panics
//   - Load-then-freeze – every table is built once and read-only after,
//     so any number of conversions may run concurrently
//
// Everything is organized under small, focused packages:
//
//	inventory/ — Allowed Sign Set, vowel-modifier map, input cleaning
//	segment/   — priority-ordered grapheme segmentation of Sinhala words
//	numeral/   — hierarchical place-value decomposition of integers
//	catalog/   — sign → clip resolution, validation, live reload
//	playlist/  — orchestration: text or number in, clip playlist out
//	config/    — YAML + environment runtime configuration
//	cmd/       — the fingerspell CLI
//
// Quick example:
//
//	seg := segment.New()
//	signs, err := seg.Segment("අම්මා")
//	// signs = ["අ", "ම්", "ම්", "ආ"]
//
// See each package's doc.go for algorithm details and guarantees.
package fingerspell
