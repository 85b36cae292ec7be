package clash

import "barclash-core/barcode"

// Hamming returns the number of positions at which a and b differ.
// ok is false when the lengths differ; no distance is defined then.
func Hamming(a, b barcode.Barcode) (d int, ok bool) {
	if len(a) != len(b) {
		return 0, false
	}
	for i := 0; i < len(a); i++ {
		if a[i] != b[i] {
			d++
		}
	}
	return d, true
}

// withinDistance counts differences between equal-length a and b and gives
// up once the count exceeds limit.
func withinDistance(a, b barcode.Barcode, limit int) (int, bool) {
	d := 0
	for i := 0; i < len(a); i++ {
		if a[i] != b[i] {
			d++
			if d > limit {
				return d, false
			}
		}
	}
	return d, true
}
