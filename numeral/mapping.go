package numeral

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
)

// ErrOpenMapping is returned when the mapper CSV cannot be read.
var ErrOpenMapping = errors.New("numeral: cannot open number mapping")

// Mapping is the sparse number → media-id table driving decomposition.
// Keys are the numbers that have a dedicated sign clip.
type Mapping map[int]string

// LoadMapping reads the two-column mapper CSV (media id, value) at path,
// keeping only rows whose value field is purely numeric. Rows with the
// wrong column count or a non-numeric value are skipped, not fatal.
func LoadMapping(path string) (Mapping, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOpenMapping, err)
	}
	defer f.Close()
	return ReadMapping(f)
}

// ReadMapping parses mapper rows from r. See LoadMapping for row rules.
func ReadMapping(r io.Reader) (Mapping, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	m := make(Mapping)
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("numeral: reading mapper csv: %w", err)
		}
		if len(record) < 2 {
			continue
		}
		n, err := strconv.Atoi(record[1])
		if err != nil || n < 0 {
			// letter rows and malformed values belong to the sign catalog,
			// not the number mapping
			continue
		}
		m[n] = record[0]
	}
	return m, nil
}

// Numbers returns the mapped numbers in ascending order.
func (m Mapping) Numbers() []int {
	out := make([]int, 0, len(m))
	for n := range m {
		out = append(out, n)
	}
	sort.Ints(out)
	return out
}

// MediaID returns the media id mapped to n, if any.
func (m Mapping) MediaID(n int) (string, bool) {
	id, ok := m[n]
	return id, ok
}
