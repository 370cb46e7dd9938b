package catalog

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"sort"

	"go.uber.org/zap"
)

// ErrOpenMapper is returned when the mapper CSV cannot be read.
var ErrOpenMapper = errors.New("catalog: cannot open mapper file")

// Resolution is the outcome of looking up one sign: the clip that
// performs it, or Found=false when no playable clip exists. Missing clips
// are reported here, downstream of the conversion algorithms, which never
// fail on them.
type Resolution struct {
	Sign  string `json:"sign"`
	Clip  string `json:"clip,omitempty"`
	Path  string `json:"path,omitempty"`
	URL   string `json:"url,omitempty"`
	Found bool   `json:"found"`
}

// Report summarizes a Validate pass over the catalog.
type Report struct {
	Total   int      `json:"total"`
	Found   int      `json:"found"`
	Missing []string `json:"missing,omitempty"`
}

// Valid reports whether every mapped clip exists on disk.
func (r Report) Valid() bool { return len(r.Missing) == 0 }

// Catalog maps signs to clip files. Construct with Load; immutable after.
type Catalog struct {
	clipsDir   string
	clipPrefix string
	clipExt    string
	baseURL    string
	signToClip map[string]string
	clipToSign map[string]string
	log        *zap.Logger
}

// Option customizes catalog loading.
type Option func(*Catalog)

// WithClipNaming overrides the derived clip filename shape
// (<prefix><media id><ext>).
func WithClipNaming(prefix, ext string) Option {
	return func(c *Catalog) {
		c.clipPrefix = prefix
		c.clipExt = ext
	}
}

// WithBaseURL sets the URL prefix used by Resolve for web players.
func WithBaseURL(base string) Option {
	return func(c *Catalog) { c.baseURL = base }
}

// WithLogger attaches a logger for unresolved-sign warnings. Defaults to
// a nop logger.
func WithLogger(log *zap.Logger) Option {
	return func(c *Catalog) { c.log = log }
}

// Load builds a Catalog from the mapper CSV at mapperPath, resolving clip
// files relative to clipsDir.
func Load(mapperPath, clipsDir string, opts ...Option) (*Catalog, error) {
	f, err := os.Open(mapperPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOpenMapper, err)
	}
	defer f.Close()
	return Read(f, clipsDir, opts...)
}

// Read builds a Catalog from mapper rows in r. Rows with fewer than two
// columns are skipped.
func Read(r io.Reader, clipsDir string, opts ...Option) (*Catalog, error) {
	c := &Catalog{
		clipsDir:   clipsDir,
		clipPrefix: "compressed_",
		clipExt:    ".mp4",
		signToClip: make(map[string]string),
		clipToSign: make(map[string]string),
		log:        zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}

	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("catalog: reading mapper csv: %w", err)
		}
		if len(record) < 2 {
			continue
		}
		clip := c.clipPrefix + record[0] + c.clipExt
		sign := record[1]
		c.signToClip[sign] = clip
		c.clipToSign[clip] = sign
	}
	return c, nil
}

// ClipForSign returns the clip filename mapped to sign.
func (c *Catalog) ClipForSign(sign string) (string, bool) {
	clip, ok := c.signToClip[sign]
	return clip, ok
}

// SignForClip returns the sign performed by clip.
func (c *Catalog) SignForClip(clip string) (string, bool) {
	sign, ok := c.clipToSign[clip]
	return sign, ok
}

// Resolve looks up every sign in order, preserving duplicates and
// playback order. Unresolved signs are logged and returned with
// Found=false rather than dropped, so callers can report them.
func (c *Catalog) Resolve(signs []string) []Resolution {
	out := make([]Resolution, 0, len(signs))
	for _, sign := range signs {
		clip, ok := c.signToClip[sign]
		if !ok {
			c.log.Warn("no clip mapped for sign", zap.String("sign", sign))
			out = append(out, Resolution{Sign: sign})
			continue
		}
		res := Resolution{
			Sign:  sign,
			Clip:  clip,
			Path:  filepath.Join(c.clipsDir, clip),
			Found: true,
		}
		if c.baseURL != "" {
			res.URL = c.baseURL + path.Base(clip)
		}
		out = append(out, res)
	}
	return out
}

// Signs returns every mapped sign in sorted order.
func (c *Catalog) Signs() []string {
	out := make([]string, 0, len(c.signToClip))
	for sign := range c.signToClip {
		out = append(out, sign)
	}
	sort.Strings(out)
	return out
}

// Size returns the number of sign→clip mappings.
func (c *Catalog) Size() int { return len(c.signToClip) }

// Validate checks that every mapped clip file exists under the clips
// directory and reports the signs whose clips are missing.
func (c *Catalog) Validate() Report {
	rep := Report{Total: len(c.signToClip)}
	for sign, clip := range c.signToClip {
		if _, err := os.Stat(filepath.Join(c.clipsDir, clip)); err != nil {
			rep.Missing = append(rep.Missing, sign)
			continue
		}
		rep.Found++
	}
	sort.Strings(rep.Missing)
	return rep
}
