// Package segment maps a Sinhala word onto its ordered fingerspelling
// sign sequence using priority-ordered pattern matching.
//
// 🚀 How segmentation works
//
//	The cleaned input is scanned left to right in a single pass. At each
//	cursor position the rules below are tried in strict priority order;
//	the first match commits, emits its signs, and advances the cursor by
//	the number of characters it consumed:
//
//	 1. Ya-ligature: consonant ් ZWJ ය (+ optional vowel modifier)
//	 2. Ra-ligature: consonant ් ZWJ ර (+ optional vowel modifier)
//	 3. Consonant + vowel modifier
//	 4. Consonant + hal mark (+ optional vowel modifier)
//	 5. Consonant + consonant → hal form + inherent vowel, consuming only
//	    the first consonant (the second is re-scanned as its own match)
//	 6. Stray hal mark / ZWJ → silently dropped
//	 7. Lone vowel modifier, lone consonant, or any character that is
//	    itself a member of the Allowed Sign Set
//
//	Priority ordering resolves overlapping shapes: a consonant followed
//	by ් ZWJ ය must read as the ligature sign, never as a plain hal form
//	followed by a separately spelled ය.
//
// Errors:
//   - ErrUnhandledChar — no rule matched; the typed *UnhandledCharError
//     names the offending character and the source word.
//   - ErrInvalidSign — a constructed sign is outside the Allowed Sign
//     Set; the typed *InvalidSignError names the sign and the word.
//
// Both are fatal for the word: no partial sequence is returned.
//
// ⚙️ Usage:
//
//	import "github.com/pathu11/testing-app-nmt/segment"
//
//	seg := segment.New()
//	signs, err := seg.Segment("කාර්")
//	if err != nil {
//	  // errors.Is(err, segment.ErrUnhandledChar) / segment.ErrInvalidSign
//	}
//
// Segment is a pure function of its input: identical words always yield
// identical sequences, and a frozen Segmenter is safe for concurrent use.
package segment
