package barcode

import "sort"

// Set is an ordered collection of unique barcodes. Order is the order of
// first occurrence in the input. The zero value is an empty set.
type Set struct {
	codes []Barcode
	index map[Barcode]int
}

func newSet(capacity int) Set {
	return Set{
		codes: make([]Barcode, 0, capacity),
		index: make(map[Barcode]int, capacity),
	}
}

// add appends b unless already present; it reports whether b was new.
func (s *Set) add(b Barcode) bool {
	if _, dup := s.index[b]; dup {
		return false
	}
	s.index[b] = len(s.codes)
	s.codes = append(s.codes, b)
	return true
}

func (s Set) Len() int    { return len(s.codes) }
func (s Set) Empty() bool { return len(s.codes) == 0 }

// At returns the i-th barcode. It panics if i is out of range.
func (s Set) At(i int) Barcode { return s.codes[i] }

// Barcodes returns a copy of the members in set order.
func (s Set) Barcodes() []Barcode {
	return append([]Barcode(nil), s.codes...)
}

// Strings returns the members as plain strings in set order.
func (s Set) Strings() []string {
	out := make([]string, len(s.codes))
	for i, b := range s.codes {
		out[i] = string(b)
	}
	return out
}

// Lengths returns the distinct barcode lengths, ascending.
func (s Set) Lengths() []int {
	seen := make(map[int]struct{})
	for _, b := range s.codes {
		seen[len(b)] = struct{}{}
	}
	out := make([]int, 0, len(seen))
	for l := range seen {
		out = append(out, l)
	}
	sort.Ints(out)
	return out
}

// ByLength groups member indices by barcode length. Each index list is
// ascending, so walking a bucket preserves set order.
func (s Set) ByLength() map[int][]int {
	out := make(map[int][]int)
	for i, b := range s.codes {
		out[len(b)] = append(out[len(b)], i)
	}
	return out
}
