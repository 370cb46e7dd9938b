package inventory

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Special codepoints of the Sinhala script used by the segmentation rules.
const (
	// HalMark is the Sinhala virama (U+0DCA); a consonant followed by it is
	// the consonant's hal form, i.e. the consonant without its inherent vowel.
	HalMark rune = '්'

	// ZWJ is the ZERO WIDTH JOINER (U+200D). Inside a
	// consonant+HalMark+ZWJ+semivowel sequence it signals a ligature reading
	// and must never be stripped during cleaning.
	ZWJ rune = '\u200d'

	// YaBase and RaBase are the semivowel letters that close the two
	// ligature patterns.
	YaBase rune = 'ය'
	RaBase rune = 'ර'

	// consonantLo..consonantHi is the contiguous codepoint interval treated
	// as a base consonant letter (ක U+0D9A through ෆ U+0DC6).
	consonantLo rune = 'ක'
	consonantHi rune = 'ෆ'
)

// Signs for the two consonant-cluster ligatures and the default vowel.
const (
	// YaLigature (yansaya) is the combined sign for a cluster ending in ය.
	YaLigature = "්" + "\u200d" + "ය"

	// RaLigature (rakaransaya) is the combined sign for a cluster ending in ර.
	RaLigature = "්" + "\u200d" + "ර"

	// InherentVowel is the default vowel implicitly carried by a bare
	// consonant letter.
	InherentVowel = "අ"
)

// Inventory is the immutable sign inventory: the Allowed Sign Set plus the
// vowel-modifier table. Construct with New; do not mutate after that.
type Inventory struct {
	allowed  map[string]struct{}
	vowelMap map[rune]string
}

// allowedSigns enumerates every legal fingerspelling sign: the independent
// vowels, the consonant hal forms, the ligature signs, the anusvara and the
// gayanukitta. Digits are implicitly legal for numerals and are not listed.
var allowedSigns = []string{
	// independent vowels
	"අ", "ආ", "ඇ", "ඈ", "ඉ", "ඊ", "උ", "ඌ", "එ", "ඒ", "ඔ", "ඕ",
	"ඓ", "ඖ", "ඍ",

	// consonant hal forms
	"ක්", "ග්", "ජ්", "ට්", "ද්", "ණ්", "ත්", "න්", "බ්", "ය්", "ල්",
	"ඩ්", "ප්", "ම්", "ර්", "ව්", "ස්", "හ්", "ළ්",
	"ඛ්", "ධ්", "ච්", "භ්", "ථ්", "ෆ්", "ශ්", "ෂ්", "ඤ්", "ඡ්",

	// prenasalized and aspirated hal forms
	"ඟ්", "ඳ්", "ඬ්", "ඹ්", "ඝ්", "ඪ්", "ඨ්", "ඵ්",

	// marks and ligatures
	"ං", YaLigature, RaLigature,
	"ෟ",
}

// vowelModifiers maps each combining vowel-modifier codepoint to the
// independent vowel it spells.
var vowelModifiers = map[rune]string{
	'ා': "ආ",
	'ැ': "ඇ",
	'ෑ': "ඈ",
	'ි': "ඉ",
	'ී': "ඊ",
	'ු': "උ",
	'ූ': "ඌ",
	'ෙ': "එ",
	'ේ': "ඒ",
	'ෛ': "ඓ",
	'ො': "ඔ",
	'ෝ': "ඕ",
	'ෞ': "ඖ",
}

// New builds the default frozen inventory.
func New() *Inventory {
	inv := &Inventory{
		allowed:  make(map[string]struct{}, len(allowedSigns)),
		vowelMap: make(map[rune]string, len(vowelModifiers)),
	}
	for _, s := range allowedSigns {
		inv.allowed[s] = struct{}{}
	}
	for mod, vowel := range vowelModifiers {
		inv.vowelMap[mod] = vowel
	}
	return inv
}

// Allowed reports whether sign belongs to the Allowed Sign Set.
func (inv *Inventory) Allowed(sign string) bool {
	_, ok := inv.allowed[sign]
	return ok
}

// Vowel returns the independent-vowel sign spelled by the combining
// modifier r, and whether r is a vowel modifier at all.
func (inv *Inventory) Vowel(r rune) (string, bool) {
	v, ok := inv.vowelMap[r]
	return v, ok
}

// IsVowelModifier reports whether r is a combining vowel modifier.
func (inv *Inventory) IsVowelModifier(r rune) bool {
	_, ok := inv.vowelMap[r]
	return ok
}

// IsConsonant reports whether r falls inside the consonant codepoint range.
func IsConsonant(r rune) bool {
	return r >= consonantLo && r <= consonantHi
}

// HalForm returns the hal form of consonant c (the consonant letter
// followed by the hal mark).
func HalForm(c rune) string {
	return string([]rune{c, HalMark})
}

// Size returns the number of signs in the Allowed Sign Set.
func (inv *Inventory) Size() int {
	return len(inv.allowed)
}

// VowelModifierCount returns the number of vowel-modifier mappings.
func (inv *Inventory) VowelModifierCount() int {
	return len(inv.vowelMap)
}

// cleanReplacer drops the zero-width space, the BOM and plain spaces.
var cleanReplacer = strings.NewReplacer("\u200b", "", "\ufeff", "", " ", "")

// Clean prepares raw input for segmentation: it strips U+200B, U+FEFF and
// plain spaces (never the ZWJ) and NFC-normalizes the remainder.
func Clean(text string) string {
	return norm.NFC.String(cleanReplacer.Replace(text))
}
