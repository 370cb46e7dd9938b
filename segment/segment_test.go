package segment_test

import (
	"errors"
	"testing"

	"github.com/pathu11/testing-app-nmt/inventory"
	"github.com/pathu11/testing-app-nmt/segment"
	"github.com/stretchr/testify/assert"
)

// ligature input shapes, spelled out codepoint by codepoint:
// consonant + hal mark (U+0DCA) + ZWJ (U+200D) + semivowel.
const (
	kaYansaya      = "ක\u0dca\u200dය"
	kaYansayaLong  = "ක\u0dca\u200dයා"
	paRakaransaya  = "ප\u0dca\u200dර"
	kaRakaransayaI = "ක\u0dca\u200dරි"
)

// TestSegment_Empty verifies empty and noise-only input yields an empty,
// non-nil sequence.
func TestSegment_Empty(t *testing.T) {
	seg := segment.New()

	signs, err := seg.Segment("")
	assert.NoError(t, err)
	assert.NotNil(t, signs)
	assert.Empty(t, signs)

	signs, err = seg.Segment(" \u200b\ufeff")
	assert.NoError(t, err, "input that cleans to empty must not error")
	assert.Empty(t, signs)
}

// TestSegment_YaLigaturePrecedence: consonant ් ZWJ ය must read as the
// ligature sign, never as a hal form followed by a separately spelled ය.
func TestSegment_YaLigaturePrecedence(t *testing.T) {
	seg := segment.New()

	signs, err := seg.Segment(kaYansaya)
	assert.NoError(t, err)
	assert.Equal(t, []string{"ක්", inventory.YaLigature}, signs)
}

// TestSegment_YaLigatureWithVowel consumes the trailing vowel modifier too.
func TestSegment_YaLigatureWithVowel(t *testing.T) {
	seg := segment.New()

	signs, err := seg.Segment(kaYansayaLong)
	assert.NoError(t, err)
	assert.Equal(t, []string{"ක්", inventory.YaLigature, "ආ"}, signs)
}

// TestSegment_RaLigature covers the rakaransaya shape with and without a
// trailing vowel modifier.
func TestSegment_RaLigature(t *testing.T) {
	seg := segment.New()

	signs, err := seg.Segment(paRakaransaya)
	assert.NoError(t, err)
	assert.Equal(t, []string{"ප්", inventory.RaLigature}, signs)

	signs, err = seg.Segment(kaRakaransayaI)
	assert.NoError(t, err)
	assert.Equal(t, []string{"ක්", inventory.RaLigature, "ඉ"}, signs)
}

// TestSegment_ConsonantVowel: a consonant carrying a vowel modifier emits
// its hal form plus the independent vowel.
func TestSegment_ConsonantVowel(t *testing.T) {
	seg := segment.New()

	signs, err := seg.Segment("කා")
	assert.NoError(t, err)
	assert.Equal(t, []string{"ක්", "ආ"}, signs)
}

// TestSegment_ConsonantHal: a word-final hal form stands alone.
func TestSegment_ConsonantHal(t *testing.T) {
	seg := segment.New()

	signs, err := seg.Segment("ක්")
	assert.NoError(t, err)
	assert.Equal(t, []string{"ක්"}, signs)
}

// TestSegment_HalThenVowelModifier: a vowel modifier trailing a standalone
// hal mark still spells its independent vowel.
func TestSegment_HalThenVowelModifier(t *testing.T) {
	seg := segment.New()

	signs, err := seg.Segment("ක්ි")
	assert.NoError(t, err)
	assert.Equal(t, []string{"ක්", "ඉ"}, signs)
}

// TestSegment_ConsonantCluster: two adjacent consonants each independently
// default to the inherent vowel.
func TestSegment_ConsonantCluster(t *testing.T) {
	seg := segment.New()

	signs, err := seg.Segment("කම")
	assert.NoError(t, err)
	assert.Equal(t, []string{"ක්", "අ", "ම්", "අ"}, signs)
}

// TestSegment_IndependentCharacters: independent vowels and the anusvara
// are emitted as-is, a lone vowel modifier spells its vowel.
func TestSegment_IndependentCharacters(t *testing.T) {
	seg := segment.New()

	signs, err := seg.Segment("අං")
	assert.NoError(t, err)
	assert.Equal(t, []string{"අ", "ං"}, signs)

	signs, err = seg.Segment("ා")
	assert.NoError(t, err)
	assert.Equal(t, []string{"ආ"}, signs)
}

// TestSegment_Words covers complete words end to end.
func TestSegment_Words(t *testing.T) {
	seg := segment.New()

	tests := []struct {
		word string
		want []string
	}{
		{"අම්මා", []string{"අ", "ම්", "ම්", "ආ"}},
		{"සුනිල්", []string{"ස්", "උ", "න්", "ඉ", "ල්"}},
		{"කමල", []string{"ක්", "අ", "ම්", "අ", "ල්", "අ"}},
		{"යන්ත්\u200dරය", []string{"ය්", "අ", "න්", "ත්", inventory.RaLigature, "ය්", "අ"}},
	}
	for _, tc := range tests {
		signs, err := seg.Segment(tc.word)
		assert.NoError(t, err, "word %q", tc.word)
		assert.Equal(t, tc.want, signs, "word %q", tc.word)
	}
}

// TestSegment_UnhandledCharacter: a character no rule matches is a fatal,
// typed failure naming the character and the word.
func TestSegment_UnhandledCharacter(t *testing.T) {
	seg := segment.New()

	_, err := seg.Segment("කx")
	assert.ErrorIs(t, err, segment.ErrUnhandledChar)

	var uerr *segment.UnhandledCharError
	assert.True(t, errors.As(err, &uerr))
	assert.Equal(t, 'x', uerr.Char)
	assert.Equal(t, "කx", uerr.Word)
}

// TestSegment_InvalidSign: a consonant inside the scan range whose hal
// form has no manual sign trips inventory validation.
func TestSegment_InvalidSign(t *testing.T) {
	seg := segment.New()

	_, err := seg.Segment("ඥ")
	assert.ErrorIs(t, err, segment.ErrInvalidSign)

	var serr *segment.InvalidSignError
	assert.True(t, errors.As(err, &serr))
	assert.Equal(t, "ඥ්", serr.Sign)
}

// TestSegment_NoPartialResult: a failure mid-scan returns nil, not the
// signs accumulated before the offending character.
func TestSegment_NoPartialResult(t *testing.T) {
	seg := segment.New()

	signs, err := seg.Segment("කමx")
	assert.Error(t, err)
	assert.Nil(t, signs)
}

// TestSegment_ClosureProperty: every sign emitted for well-formed input is
// a member of the Allowed Sign Set.
func TestSegment_ClosureProperty(t *testing.T) {
	seg := segment.New()
	inv := inventory.New()

	words := []string{"අම්මා", "කමල", "ගම්පහ", "මාතර", "සුනිල්", kaYansayaLong, paRakaransaya}
	for _, word := range words {
		signs, err := seg.Segment(word)
		assert.NoError(t, err, "word %q", word)
		assert.NotEmpty(t, signs, "word %q", word)
		for _, sign := range signs {
			assert.True(t, inv.Allowed(sign), "sign %q from word %q must be in the inventory", sign, word)
		}
	}
}

// TestSegment_Pure: identical input always yields the identical sequence,
// independent of call order.
func TestSegment_Pure(t *testing.T) {
	seg := segment.New()

	first, err := seg.Segment("අම්මා")
	assert.NoError(t, err)
	_, _ = seg.Segment("කමල")
	second, err := seg.Segment("අම්මා")
	assert.NoError(t, err)
	assert.Equal(t, first, second)
}

// TestSegment_DecomposedInput: NFC normalization lets decomposed vowel
// signs match the modifier table.
func TestSegment_DecomposedInput(t *testing.T) {
	seg := segment.New()

	// ක + U+0DD9 + U+0DCF composes to ක + U+0DDC (ො).
	signs, err := seg.Segment("කො")
	assert.NoError(t, err)
	assert.Equal(t, []string{"ක්", "ඔ"}, signs)
}
