// Package inventory defines the fixed Sinhala fingerspelling sign
// inventory: the Allowed Sign Set, the vowel-modifier → independent-vowel
// table, the consonant codepoint range, and the input-cleaning rules
// shared by the segmentation and playlist layers.
//
// The inventory is a load-then-freeze structure: construct it once with
// New and treat it as read-only afterwards. All methods are safe for
// concurrent use on a frozen inventory.
//
// Cleaning strips the characters that carry no manual sign — ZERO WIDTH
// SPACE (U+200B), the BOM / zero-width no-break space (U+FEFF) and plain
// spaces — while preserving the ZERO WIDTH JOINER (U+200D), which is
// semantically significant in ligature sequences. Input is also NFC
// normalized so decomposed vowel-sign sequences (e.g. U+0DD9 U+0DCA)
// arrive as the single codepoints the modifier table is keyed on.
package inventory
