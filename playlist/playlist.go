package playlist

import (
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/pathu11/testing-app-nmt/catalog"
	"github.com/pathu11/testing-app-nmt/numeral"
	"github.com/pathu11/testing-app-nmt/segment"
)

// Kind distinguishes what a playlist was built from.
type Kind string

const (
	KindWord   Kind = "word"
	KindNumber Kind = "number"
)

// Playlist is an ordered, playable conversion result.
type Playlist struct {
	ID      string               `json:"id"`
	Kind    Kind                 `json:"kind"`
	Input   string               `json:"input"`
	Signs   []string             `json:"signs"`
	Clips   []catalog.Resolution `json:"clips"`
	Found   int                  `json:"found"`
	Missing int                  `json:"missing"`
}

// Result pairs one input of a batch with its playlist or failure.
type Result struct {
	Input    string    `json:"input"`
	Playlist *Playlist `json:"playlist,omitempty"`
	Err      string    `json:"error,omitempty"`
}

// Builder builds playlists. Construct with NewBuilder; safe for
// concurrent use.
type Builder struct {
	seg *segment.Segmenter
	dec *numeral.Decomposer
	cat *catalog.Catalog
	log *zap.Logger
}

// BuilderOption customizes a Builder.
type BuilderOption func(*Builder)

// WithSegmenter substitutes a custom segmenter.
func WithSegmenter(seg *segment.Segmenter) BuilderOption {
	return func(b *Builder) { b.seg = seg }
}

// WithLogger attaches a logger. Defaults to nop.
func WithLogger(log *zap.Logger) BuilderOption {
	return func(b *Builder) { b.log = log }
}

// NewBuilder wires the conversion pipeline over cat and the numeral
// mapping m.
func NewBuilder(cat *catalog.Catalog, m numeral.Mapping, opts ...BuilderOption) *Builder {
	b := &Builder{
		seg: segment.New(),
		dec: numeral.New(m),
		cat: cat,
		log: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Word converts a Sinhala word into a playlist. Segmentation failures are
// word-level and fatal: no partial playlist is returned.
func (b *Builder) Word(word string) (*Playlist, error) {
	signs, err := b.seg.Segment(word)
	if err != nil {
		b.log.Warn("segmentation failed", zap.String("word", word), zap.Error(err))
		return nil, err
	}
	return b.assemble(KindWord, word, signs), nil
}

// Number converts numeric input into a playlist. Decomposition never
// fails; absent clips are reported in the playlist itself.
func (b *Builder) Number(input string) *Playlist {
	signs := b.dec.DecomposeString(input)
	return b.assemble(KindNumber, input, signs)
}

// Words converts a batch, keeping per-word outcomes independent.
func (b *Builder) Words(words []string) []Result {
	out := make([]Result, 0, len(words))
	for _, word := range words {
		pl, err := b.Word(word)
		if err != nil {
			out = append(out, Result{Input: word, Err: err.Error()})
			continue
		}
		out = append(out, Result{Input: word, Playlist: pl})
	}
	return out
}

func (b *Builder) assemble(kind Kind, input string, signs []string) *Playlist {
	clips := b.cat.Resolve(signs)
	pl := &Playlist{
		ID:    uuid.NewString(),
		Kind:  kind,
		Input: input,
		Signs: signs,
		Clips: clips,
	}
	for _, c := range clips {
		if c.Found {
			pl.Found++
		} else {
			pl.Missing++
		}
	}
	b.log.Debug("playlist assembled",
		zap.String("id", pl.ID),
		zap.String("kind", string(kind)),
		zap.Int("signs", len(signs)),
		zap.Int("missing", pl.Missing))
	return pl
}
