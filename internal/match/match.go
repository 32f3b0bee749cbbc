// Package match normalizes recognized text against a known item dictionary
package match

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/agnivade/levenshtein"
)

// A fuzzy winner must beat the runner-up by this much similarity, otherwise
// the reading is ambiguous and rejected.
const ambiguityMargin = 0.05

var (
	quantityRe = regexp.MustCompile(`^(\d+)\s*[xX]\s+`)
	ownedRe    = regexp.MustCompile(`(\d+)\s*(?i:owned)`)
	noiseRe    = regexp.MustCompile(`[^a-zA-Z0-9& ]+`)
	spaceRe    = regexp.MustCompile(`\s+`)
)

// Match is a recognized reading resolved to a canonical item name.
type Match struct {
	Name       string
	Quantity   int
	Similarity float64
}

// Dictionary resolves noisy readings to canonical names. Exact folded
// matches win outright; otherwise the closest name by Levenshtein
// similarity is chosen, subject to the threshold and ambiguity margin.
type Dictionary struct {
	names     []string
	exact     map[string]string
	threshold float64
}

// NewDictionary builds a dictionary over canonical names. threshold is the
// minimum similarity in [0,1] for a fuzzy match to count.
func NewDictionary(names []string, threshold float64) *Dictionary {
	exact := make(map[string]string, len(names))
	for _, n := range names {
		exact[fold(n)] = n
	}
	return &Dictionary{names: names, exact: exact, threshold: threshold}
}

// Len reports the number of known names.
func (d *Dictionary) Len() int { return len(d.names) }

// Resolve maps a raw OCR reading to a canonical name. The second return is
// false when the reading matched nothing confidently. Resolving a canonical
// name always returns that same name.
func (d *Dictionary) Resolve(raw string) (Match, bool) {
	qty, rest := peelQuantity(raw)
	cleaned := clean(rest)
	if cleaned == "" {
		return Match{}, false
	}

	folded := fold(cleaned)
	if canonical, ok := d.exact[folded]; ok {
		return Match{Name: canonical, Quantity: qty, Similarity: 1}, true
	}

	var (
		best, second float64
		bestName     string
	)
	for _, name := range d.names {
		sim := similarity(folded, fold(name))
		switch {
		case sim > best:
			second = best
			best = sim
			bestName = name
		case sim > second:
			second = sim
		}
	}
	if best < d.threshold {
		return Match{}, false
	}
	if best-second < ambiguityMargin {
		return Match{}, false
	}
	return Match{Name: bestName, Quantity: qty, Similarity: best}, true
}

// ParseOwned extracts an inventory count from readings like "12 OWNED".
func ParseOwned(raw string) (int, bool) {
	m := ownedRe.FindStringSubmatch(raw)
	if m == nil {
		return 0, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return n, true
}

// peelQuantity strips a leading "2 X " style prefix, defaulting to 1.
func peelQuantity(raw string) (int, string) {
	m := quantityRe.FindStringSubmatch(raw)
	if m == nil {
		return 1, raw
	}
	n, err := strconv.Atoi(m[1])
	if err != nil || n < 1 {
		return 1, raw
	}
	return n, raw[len(m[0]):]
}

// clean drops OCR punctuation noise and collapses whitespace.
func clean(s string) string {
	s = noiseRe.ReplaceAllString(s, " ")
	s = spaceRe.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

func fold(s string) string { return strings.ToLower(s) }

func similarity(a, b string) float64 {
	longest := max(len(a), len(b))
	if longest == 0 {
		return 0
	}
	dist := levenshtein.ComputeDistance(a, b)
	return 1 - float64(dist)/float64(longest)
}
