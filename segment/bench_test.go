package segment_test

import (
	"testing"

	"github.com/pathu11/testing-app-nmt/segment"
)

// BenchmarkSegment measures single-pass segmentation of a typical word.
func BenchmarkSegment(b *testing.B) {
	seg := segment.New()
	word := "අනුරාධපුරය"

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := seg.Segment(word); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkSegment_Ligatures measures the deepest-lookahead path.
func BenchmarkSegment_Ligatures(b *testing.B) {
	seg := segment.New()
	word := kaYansayaLong + paRakaransaya + kaRakaransayaI

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := seg.Segment(word); err != nil {
			b.Fatal(err)
		}
	}
}
