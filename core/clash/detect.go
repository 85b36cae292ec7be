// Package clash finds pairs of barcodes whose Hamming distance is at or
// below a threshold, within one set or between two sets.
//
// Only equal-length pairs are ever scored. Barcodes are bucketed by length
// before the pairwise scan; buckets hold ascending set indices, so records
// come out ordered by (first index, second index) exactly as an all-pairs
// scan would produce them.
package clash

import (
	"context"

	"barclash-core/barcode"
)

// Record is one clashing pair. IndexA/IndexB are positions in the source sets.
type Record struct {
	A        barcode.Barcode
	B        barcode.Barcode
	Distance int
	SourceA  string
	SourceB  string
	IndexA   int
	IndexB   int
}

// Stats summarizes one scan.
type Stats struct {
	Compared int // equal-length pairs scored
	Skipped  int // unequal-length pairs excluded
	Clashes  int
}

// InputStats describes one input set in a Result.
type InputStats struct {
	Label     string
	Unique    int
	Valid     int
	Invalid   int
	Duplicate int
	Blank     int
	Lines     int
	Lengths   []int // distinct barcode lengths, ascending
	Warnings  []barcode.InvalidSequenceWarning
}

// Result is the outcome of one detection run. It is built once and should be
// treated as read-only by callers.
type Result struct {
	Mode      Mode
	Threshold int
	Inputs    []InputStats
	Compared  int
	Skipped   int
	Records   []Record
}

// HasClashes reports whether any record was produced.
func (r Result) HasClashes() bool { return len(r.Records) > 0 }

// Detect runs DetectContext with a background context.
func Detect(p Params, first Input, second *Input) (Result, error) {
	return DetectContext(context.Background(), p, first, second)
}

// DetectContext compares the inputs according to p and collects every clash.
// Cancellation is checked between outer-loop iterations.
func DetectContext(ctx context.Context, p Params, first Input, second *Input) (Result, error) {
	records := make([]Record, 0)
	st, err := ForEach(ctx, p, first, second, func(r Record) error {
		records = append(records, r)
		return nil
	})
	if err != nil {
		return Result{}, err
	}

	res := Result{
		Mode:      p.Mode,
		Threshold: p.Threshold,
		Inputs:    []InputStats{inputStats(first, DefaultLabel1)},
		Compared:  st.Compared,
		Skipped:   st.Skipped,
		Records:   records,
	}
	if second != nil {
		res.Inputs = append(res.Inputs, inputStats(*second, DefaultLabel2))
	}
	return res, nil
}

// ForEach streams clashes to visit in deterministic order. A non-nil error
// from visit stops the scan and is returned unchanged.
func ForEach(ctx context.Context, p Params, first Input, second *Input, visit func(Record) error) (Stats, error) {
	if err := ValidateParams(p, second); err != nil {
		return Stats{}, err
	}
	l1 := labelOr(first.Label, DefaultLabel1)
	if first.Set.Empty() {
		return Stats{}, &EmptyInputError{Label: l1}
	}
	if p.Mode == ModeSingle {
		return scanSingle(ctx, p.Threshold, l1, first.Set, visit)
	}
	l2 := labelOr(second.Label, DefaultLabel2)
	if second.Set.Empty() {
		return Stats{}, &EmptyInputError{Label: l2}
	}
	return scanCross(ctx, p.Threshold, l1, first.Set, l2, second.Set, visit)
}

func scanSingle(ctx context.Context, t int, label string, set barcode.Set, visit func(Record) error) (Stats, error) {
	var st Stats
	n := set.Len()
	buckets := set.ByLength()
	cursor := make(map[int]int, len(buckets))

	for i := 0; i < n; i++ {
		if err := ctx.Err(); err != nil {
			return st, err
		}
		a := set.At(i)
		bucket := buckets[len(a)]
		k := cursor[len(a)]
		cursor[len(a)] = k + 1
		rest := bucket[k+1:]
		st.Compared += len(rest)
		st.Skipped += n - i - 1 - len(rest)

		for _, j := range rest {
			b := set.At(j)
			d, ok := withinDistance(a, b, t)
			if !ok {
				continue
			}
			st.Clashes++
			if err := visit(Record{A: a, B: b, Distance: d, SourceA: label, SourceB: label, IndexA: i, IndexB: j}); err != nil {
				return st, err
			}
		}
	}
	return st, nil
}

func scanCross(ctx context.Context, t int, l1 string, s1 barcode.Set, l2 string, s2 barcode.Set, visit func(Record) error) (Stats, error) {
	var st Stats
	n2 := s2.Len()
	buckets := s2.ByLength()

	for i := 0; i < s1.Len(); i++ {
		if err := ctx.Err(); err != nil {
			return st, err
		}
		a := s1.At(i)
		cands := buckets[len(a)]
		st.Compared += len(cands)
		st.Skipped += n2 - len(cands)

		for _, j := range cands {
			b := s2.At(j)
			d, ok := withinDistance(a, b, t)
			if !ok {
				continue
			}
			st.Clashes++
			if err := visit(Record{A: a, B: b, Distance: d, SourceA: l1, SourceB: l2, IndexA: i, IndexB: j}); err != nil {
				return st, err
			}
		}
	}
	return st, nil
}

func inputStats(in Input, def string) InputStats {
	return InputStats{
		Label:     labelOr(in.Label, def),
		Unique:    in.Set.Len(),
		Valid:     in.Summary.Valid,
		Invalid:   in.Summary.Invalid,
		Duplicate: in.Summary.Duplicate,
		Blank:     in.Summary.Blank,
		Lines:     in.Summary.Lines(),
		Lengths:   in.Set.Lengths(),
		Warnings:  append([]barcode.InvalidSequenceWarning(nil), in.Summary.Warnings...),
	}
}
