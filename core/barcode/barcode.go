// core/barcode/barcode.go
package barcode

import (
	"errors"
	"fmt"
	"strings"
)

// Alphabet lists the bases a barcode may contain.
const Alphabet = "ACGT"

// ErrEmpty is returned by Parse for blank input.
var ErrEmpty = errors.New("empty barcode")

// Barcode is an uppercase, non-empty sequence over A, C, G, T.
// Values are produced by Parse or the normalizer; a conversion from an
// arbitrary string bypasses validation and should not be used.
type Barcode string

func (b Barcode) String() string { return string(b) }

// Len returns the number of bases.
func (b Barcode) Len() int { return len(b) }

// InvalidSequenceWarning describes a line rejected because it holds a
// character outside the alphabet. It is collected by the normalizer and
// returned as an error by Parse.
type InvalidSequenceWarning struct {
	Line int    // 1-based line (or record) number; 0 when unknown
	Raw  string // original text, untrimmed
	Pos  int    // 1-based position of the first bad character in the trimmed text
	Base rune   // the offending character after case-folding
}

func (w *InvalidSequenceWarning) Error() string {
	if w.Line > 0 {
		return fmt.Sprintf("line %d: invalid base %q at %d in %q; allowed: A C G T", w.Line, w.Base, w.Pos, w.Raw)
	}
	return fmt.Sprintf("invalid base %q at %d in %q; allowed: A C G T", w.Base, w.Pos, w.Raw)
}

// Parse trims and uppercases raw and checks every character.
func Parse(raw string) (Barcode, error) {
	s := strings.ToUpper(strings.TrimSpace(raw))
	if s == "" {
		return "", ErrEmpty
	}
	pos := 0
	for _, r := range s {
		pos++
		if !isBase(r) {
			return "", &InvalidSequenceWarning{Raw: raw, Pos: pos, Base: r}
		}
	}
	return Barcode(s), nil
}

func isBase(r rune) bool {
	switch r {
	case 'A', 'C', 'G', 'T':
		return true
	}
	return false
}
