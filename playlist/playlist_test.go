package playlist_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pathu11/testing-app-nmt/catalog"
	"github.com/pathu11/testing-app-nmt/numeral"
	"github.com/pathu11/testing-app-nmt/playlist"
	"github.com/pathu11/testing-app-nmt/segment"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newBuilder wires a Builder over a temp mapper covering the signs used
// in these tests.
func newBuilder(t *testing.T) *playlist.Builder {
	t.Helper()
	dir := t.TempDir()
	mapper := filepath.Join(dir, "mapper.csv")
	rows := "v001,අ\nv002,ම්\nv003,ආ\nv010,1000\nv020,200\nv030,30\nv004,4\n"
	require.NoError(t, os.WriteFile(mapper, []byte(rows), 0o644))

	cat, err := catalog.Load(mapper, filepath.Join(dir, "clips"), catalog.WithBaseURL("/videos/"))
	require.NoError(t, err)

	mapping, err := numeral.LoadMapping(mapper)
	require.NoError(t, err)

	return playlist.NewBuilder(cat, mapping)
}

// TestBuilder_Word converts a word end to end, preserving playback order.
func TestBuilder_Word(t *testing.T) {
	b := newBuilder(t)

	pl, err := b.Word("අම්මා")
	require.NoError(t, err)

	assert.NotEmpty(t, pl.ID)
	assert.Equal(t, playlist.KindWord, pl.Kind)
	assert.Equal(t, []string{"අ", "ම්", "ම්", "ආ"}, pl.Signs)
	require.Len(t, pl.Clips, 4)
	assert.Equal(t, 4, pl.Found)
	assert.Zero(t, pl.Missing)
	assert.Equal(t, "/videos/compressed_v002.mp4", pl.Clips[1].URL)
	assert.Equal(t, pl.Clips[1].Clip, pl.Clips[2].Clip, "duplicate signs keep duplicate clips")
}

// TestBuilder_WordError propagates the typed segmentation failure with no
// partial playlist.
func TestBuilder_WordError(t *testing.T) {
	b := newBuilder(t)

	pl, err := b.Word("කx")
	assert.Nil(t, pl)
	assert.ErrorIs(t, err, segment.ErrUnhandledChar)
}

// TestBuilder_Number decomposes and resolves numeric input, counting the
// signs without a mapped clip as missing rather than failing.
func TestBuilder_Number(t *testing.T) {
	b := newBuilder(t)

	pl := b.Number("1234")
	assert.Equal(t, playlist.KindNumber, pl.Kind)
	assert.Equal(t, []string{"1000", "200", "30", "4"}, pl.Signs)
	assert.Equal(t, 4, pl.Found)

	pl = b.Number("77")
	assert.Equal(t, []string{"7", "7"}, pl.Signs, "unmapped number degrades to digits")
	assert.Equal(t, 2, pl.Missing, "digit signs without clips are reported missing")
}

// TestBuilder_Words keeps per-word outcomes independent.
func TestBuilder_Words(t *testing.T) {
	b := newBuilder(t)

	results := b.Words([]string{"අම්මා", "කx"})
	require.Len(t, results, 2)
	assert.NotNil(t, results[0].Playlist)
	assert.Empty(t, results[0].Err)
	assert.Nil(t, results[1].Playlist)
	assert.NotEmpty(t, results[1].Err)
}

// TestBuilder_UniqueIDs: every playlist gets its own identifier.
func TestBuilder_UniqueIDs(t *testing.T) {
	b := newBuilder(t)

	first := b.Number("4")
	second := b.Number("4")
	assert.NotEqual(t, first.ID, second.ID)
}
