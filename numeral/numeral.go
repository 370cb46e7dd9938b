package numeral

import (
	"strconv"
	"strings"
)

// bands are the magnitude units processed in descending order; the final
// remainder below 10 is handled by the units fallback.
var bands = []int{100000, 10000, 1000, 100, 10}

// Decomposer converts integers into sign sequences over a frozen Mapping.
// Construct with New; safe for concurrent use.
type Decomposer struct {
	mapping Mapping
}

// New returns a Decomposer over m. A nil mapping is treated as empty,
// which degrades every number to per-digit spelling.
func New(m Mapping) *Decomposer {
	if m == nil {
		m = Mapping{}
	}
	return &Decomposer{mapping: m}
}

// Decompose converts n into its ordered sign sequence. It never fails for
// non-negative input and always returns at least one sign; numbers with no
// usable mapping degrade to their decimal digit characters. Digit signs
// are implicitly legal and are not validated against the sign inventory.
func (d *Decomposer) Decompose(n int) []string {
	if n < 0 {
		return digitSigns(strconv.Itoa(-n))
	}

	components := d.components(n)
	signs := make([]string, 0, len(components))
	for _, c := range components {
		if _, ok := d.mapping[c]; ok {
			signs = append(signs, strconv.Itoa(c))
		} else {
			signs = append(signs, digitSigns(strconv.Itoa(c))...)
		}
	}
	return signs
}

// DecomposeString converts decimal string input like Decompose does for
// its integer value. Input that is not a well-formed decimal number
// degrades to the digit characters it contains.
func (d *Decomposer) DecomposeString(input string) []string {
	s := strings.TrimSpace(input)
	if n, err := strconv.Atoi(s); err == nil && n >= 0 {
		return d.Decompose(n)
	}
	return digitSigns(s)
}

// components breaks n into the mapped values that cover it, largest
// magnitude first. A direct mapping entry short-circuits decomposition.
func (d *Decomposer) components(n int) []int {
	if _, ok := d.mapping[n]; ok {
		return []int{n}
	}

	var components []int
	rem := n
	for _, unit := range bands {
		if rem < unit {
			continue
		}
		// exact band value first: 3421 tries 3000 before falling back
		band := rem / unit * unit
		if _, ok := d.mapping[band]; ok {
			components = append(components, band)
			rem -= band
			continue
		}
		// unit repetition: 3000 with only a 1000 entry emits 1000 thrice
		if _, ok := d.mapping[unit]; ok {
			count := rem / unit
			for i := 0; i < count; i++ {
				components = append(components, unit)
			}
			rem -= count * unit
		}
	}

	if rem > 0 {
		if _, ok := d.mapping[rem]; ok {
			components = append(components, rem)
		} else {
			for _, c := range strconv.Itoa(rem) {
				components = append(components, int(c-'0'))
			}
		}
	}

	if len(components) == 0 {
		return []int{n}
	}
	return components
}

// digitSigns spells s out as its individual digit characters, dropping
// anything that is not a decimal digit.
func digitSigns(s string) []string {
	out := make([]string, 0, len(s))
	for _, c := range s {
		if c >= '0' && c <= '9' {
			out = append(out, string(c))
		}
	}
	return out
}
