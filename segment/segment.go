package segment

import (
	"github.com/pathu11/testing-app-nmt/inventory"
)

// Segmenter converts Sinhala words into fingerspelling sign sequences.
// Construct with New; a Segmenter is immutable and safe for concurrent use.
type Segmenter struct {
	inv   *inventory.Inventory
	rules []matcher
}

// Option customizes a Segmenter.
type Option func(*Segmenter)

// WithInventory substitutes a custom sign inventory for the default one.
func WithInventory(inv *inventory.Inventory) Option {
	return func(s *Segmenter) { s.inv = inv }
}

// New returns a Segmenter over the default inventory, applying any Options.
func New(opts ...Option) *Segmenter {
	s := &Segmenter{inv: inventory.New()}
	for _, opt := range opts {
		opt(s)
	}
	s.rules = []matcher{
		s.matchYaLigature,
		s.matchRaLigature,
		s.matchConsonantVowel,
		s.matchConsonantHal,
		s.matchConsonantCluster,
		s.matchStrayMark,
		s.matchIndividual,
	}
	return s
}

// Segment converts word into its ordered sign sequence.
//
// The input is cleaned first (see inventory.Clean); an input that cleans
// to the empty string yields an empty, non-nil sequence. On failure the
// error is either *UnhandledCharError or *InvalidSignError and no partial
// sequence is returned.
func (s *Segmenter) Segment(word string) ([]string, error) {
	runes := []rune(inventory.Clean(word))
	out := make([]string, 0, 2*len(runes))

	for i := 0; i < len(runes); {
		signs, consumed := s.match(runes, i)
		if consumed == 0 {
			return nil, &UnhandledCharError{Char: runes[i], Word: word}
		}
		for _, sign := range signs {
			if !s.inv.Allowed(sign) {
				return nil, &InvalidSignError{Sign: sign, Word: word}
			}
			out = append(out, sign)
		}
		i += consumed
	}
	return out, nil
}

// match tries the pattern rules in strict priority order at position i and
// returns the emitted signs plus the number of characters consumed.
// consumed == 0 means no rule matched.
func (s *Segmenter) match(runes []rune, i int) (signs []string, consumed int) {
	for _, rule := range s.rules {
		if signs, consumed, ok := rule(runes, i); ok {
			return signs, consumed
		}
	}
	return nil, 0
}

// matcher is one pattern rule: it inspects runes at cursor i and either
// declines (ok=false) or commits to a window of consumed characters.
type matcher func(runes []rune, i int) (signs []string, consumed int, ok bool)

// matchYaLigature handles consonant ් ZWJ ය (+ optional vowel modifier).
func (s *Segmenter) matchYaLigature(runes []rune, i int) ([]string, int, bool) {
	return s.matchLigature(runes, i, inventory.YaBase, inventory.YaLigature)
}

// matchRaLigature handles consonant ් ZWJ ර (+ optional vowel modifier).
func (s *Segmenter) matchRaLigature(runes []rune, i int) ([]string, int, bool) {
	return s.matchLigature(runes, i, inventory.RaBase, inventory.RaLigature)
}

// matchLigature recognizes the shared consonant ් ZWJ <base> shape. The
// ligature reading wins over the plain hal-mark reading because it is
// tried first: the cluster is one indivisible manual sign, not two
// independently spelled ones.
func (s *Segmenter) matchLigature(runes []rune, i int, base rune, ligature string) ([]string, int, bool) {
	if i+3 >= len(runes) ||
		!inventory.IsConsonant(runes[i]) ||
		runes[i+1] != inventory.HalMark ||
		runes[i+2] != inventory.ZWJ ||
		runes[i+3] != base {
		return nil, 0, false
	}

	signs := []string{inventory.HalForm(runes[i]), ligature}
	consumed := 4
	if i+4 < len(runes) {
		if vowel, ok := s.inv.Vowel(runes[i+4]); ok {
			signs = append(signs, vowel)
			consumed = 5
		}
	}
	return signs, consumed, true
}

// matchConsonantVowel handles a consonant directly carrying a vowel
// modifier: hal form + the modifier's independent vowel.
func (s *Segmenter) matchConsonantVowel(runes []rune, i int) ([]string, int, bool) {
	if !inventory.IsConsonant(runes[i]) || i+1 >= len(runes) {
		return nil, 0, false
	}
	vowel, ok := s.inv.Vowel(runes[i+1])
	if !ok {
		return nil, 0, false
	}
	return []string{inventory.HalForm(runes[i]), vowel}, 2, true
}

// matchConsonantHal handles a consonant with a standalone virama,
// optionally trailed by a vowel modifier.
func (s *Segmenter) matchConsonantHal(runes []rune, i int) ([]string, int, bool) {
	if !inventory.IsConsonant(runes[i]) || i+1 >= len(runes) || runes[i+1] != inventory.HalMark {
		return nil, 0, false
	}

	signs := []string{inventory.HalForm(runes[i])}
	consumed := 2
	if i+2 < len(runes) {
		if vowel, ok := s.inv.Vowel(runes[i+2]); ok {
			signs = append(signs, vowel)
			consumed = 3
		}
	}
	return signs, consumed, true
}

// matchConsonantCluster handles two adjacent consonants: the first gets
// its hal form plus the inherent vowel, but only one character is
// consumed — the lookahead consonant is re-scanned as the start of its
// own match, so each consonant independently defaults to the inherent
// vowel unless overridden by its own modifier.
func (s *Segmenter) matchConsonantCluster(runes []rune, i int) ([]string, int, bool) {
	if !inventory.IsConsonant(runes[i]) || i+1 >= len(runes) || !inventory.IsConsonant(runes[i+1]) {
		return nil, 0, false
	}
	return []string{inventory.HalForm(runes[i]), inventory.InherentVowel}, 1, true
}

// matchStrayMark silently drops a hal mark or ZWJ left over after the
// pattern rules have consumed the meaningful occurrences.
func (s *Segmenter) matchStrayMark(runes []rune, i int) ([]string, int, bool) {
	if runes[i] != inventory.HalMark && runes[i] != inventory.ZWJ {
		return nil, 0, false
	}
	return nil, 1, true
}

// matchIndividual is the final fallback: a lone vowel modifier spells its
// independent vowel, a lone consonant spells its hal form plus the
// inherent vowel, and any character that is itself a legal sign
// (independent vowel, anusvara, ...) is emitted as-is. Characters outside
// the Allowed Sign Set decline, which surfaces as an UnhandledCharError.
func (s *Segmenter) matchIndividual(runes []rune, i int) ([]string, int, bool) {
	r := runes[i]

	if vowel, ok := s.inv.Vowel(r); ok {
		return []string{vowel}, 1, true
	}
	if inventory.IsConsonant(r) {
		return []string{inventory.HalForm(r), inventory.InherentVowel}, 1, true
	}
	if s.inv.Allowed(string(r)) {
		return []string{string(r)}, 1, true
	}
	return nil, 0, false
}
