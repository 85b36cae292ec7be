package barcode

import (
	"errors"
	"reflect"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		raw  string
		want Barcode
		err  bool
	}{
		{"ACGT", "ACGT", false},
		{"  acgt\t", "ACGT", false},
		{"AcGtN", "", true},
		{"AC GT", "", true},
		{"", "", true},
	}
	for _, tc := range tests {
		got, err := Parse(tc.raw)
		if (err != nil) != tc.err || got != tc.want {
			t.Errorf("Parse(%q) = %q, %v; want %q, err=%v", tc.raw, got, err, tc.want, tc.err)
		}
	}

	if _, err := Parse("   "); !errors.Is(err, ErrEmpty) {
		t.Fatalf("blank: want ErrEmpty, got %v", err)
	}
	_, err := Parse("acxt")
	var w *InvalidSequenceWarning
	if !errors.As(err, &w) || w.Pos != 3 || w.Base != 'X' || w.Raw != "acxt" {
		t.Fatalf("want warning at 3 for X, got %#v", err)
	}
}

func TestNormalize_DuplicatesCollapsed(t *testing.T) {
	set, sum := Normalize([]string{"ACGT", "acgt", "TTTT"})
	if got := set.Strings(); !reflect.DeepEqual(got, []string{"ACGT", "TTTT"}) {
		t.Fatalf("set = %v", got)
	}
	if sum.Valid != 3 || sum.Duplicate != 1 || sum.Invalid != 0 {
		t.Fatalf("summary = %+v", sum)
	}
	if set.Len() != sum.Valid-sum.Duplicate {
		t.Fatalf("len %d != valid-duplicate %d", set.Len(), sum.Valid-sum.Duplicate)
	}
}

func TestNormalize_InvalidRecordedWithLineNumber(t *testing.T) {
	set, sum := Normalize([]string{"ACGT", "", "ACXT", "  "})
	if got := set.Strings(); !reflect.DeepEqual(got, []string{"ACGT"}) {
		t.Fatalf("set = %v", got)
	}
	if sum.Invalid != 1 || sum.Blank != 2 || sum.Valid != 1 {
		t.Fatalf("summary = %+v", sum)
	}
	if len(sum.Warnings) != 1 {
		t.Fatalf("warnings = %+v", sum.Warnings)
	}
	w := sum.Warnings[0]
	if w.Line != 3 || w.Raw != "ACXT" || w.Base != 'X' || w.Pos != 3 {
		t.Fatalf("warning = %+v", w)
	}
	if sum.Lines() != 4 {
		t.Fatalf("Lines() = %d, want 4", sum.Lines())
	}
}

func TestNormalize_KeepsFirstOccurrenceOrder(t *testing.T) {
	set, _ := Normalize([]string{"TTTT", "aaaa", "tttt", "CCCC", "AAAA"})
	want := []string{"TTTT", "AAAA", "CCCC"}
	if got := set.Strings(); !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v want %v", got, want)
	}
}

func TestNormalize_MixedLengthsRetained(t *testing.T) {
	set, _ := Normalize([]string{"ACGTAC", "ACG", "ACGTACGT"})
	if set.Len() != 3 {
		t.Fatalf("len = %d", set.Len())
	}
	if got := set.Lengths(); !reflect.DeepEqual(got, []int{3, 6, 8}) {
		t.Fatalf("lengths = %v", got)
	}
	buckets := set.ByLength()
	if !reflect.DeepEqual(buckets[6], []int{0}) || !reflect.DeepEqual(buckets[3], []int{1}) {
		t.Fatalf("buckets = %v", buckets)
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	first, _ := Normalize([]string{" acgt", "GGCC", "acgt", "bad!", "", "TTAA"})
	second, sum := Normalize(first.Strings())
	if !reflect.DeepEqual(first.Strings(), second.Strings()) {
		t.Fatalf("not idempotent: %v vs %v", first.Strings(), second.Strings())
	}
	if sum.Invalid != 0 || sum.Duplicate != 0 || sum.Blank != 0 {
		t.Fatalf("second pass changed something: %+v", sum)
	}
}

func TestNormalize_AllBlankOrInvalid(t *testing.T) {
	set, sum := Normalize([]string{"", "NNNN", "  ", "12"})
	if !set.Empty() {
		t.Fatalf("expected empty set, got %v", set.Strings())
	}
	if sum.Invalid != 2 || sum.Blank != 2 {
		t.Fatalf("summary = %+v", sum)
	}
}

func TestSetAccessorsCopy(t *testing.T) {
	set, _ := Normalize([]string{"AAAA", "CCCC"})
	bs := set.Barcodes()
	bs[0] = "GGGG"
	if set.At(0) != "AAAA" {
		t.Fatalf("Barcodes() leaked internal storage")
	}
	var zero Set
	if !zero.Empty() || zero.Len() != 0 {
		t.Fatalf("zero Set should be empty")
	}
}

func TestSplitLines(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"", nil},
		{"A\nC\n", []string{"A", "C"}},
		{"A\r\nC", []string{"A", "C"}},
		{"A\rC\r", []string{"A", "C"}},
		{"A\n\nC", []string{"A", "", "C"}},
	}
	for _, tc := range tests {
		if got := SplitLines(tc.in); !reflect.DeepEqual(got, tc.want) {
			t.Errorf("SplitLines(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
