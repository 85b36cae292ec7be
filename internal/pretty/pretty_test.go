package pretty

import (
	"testing"

	"barclash-core/clash"
)

func TestMatchLine(t *testing.T) {
	cases := []struct{ a, b, want string }{
		{"ACGT", "ACGT", "||||"},
		{"ACGT", "ACGA", "|||x"},
		{"ACGT", "TGCA", "xxxx"},
		{"ACG", "ACGT", "|||x"},
	}
	for _, c := range cases {
		if got := MatchLine(c.a, c.b, DefaultOptions); got != c.want {
			t.Errorf("MatchLine(%s,%s)=%q want %q", c.a, c.b, got, c.want)
		}
	}
}

func TestRenderRecord(t *testing.T) {
	r := clash.Record{A: "AAAA", B: "AAAT", Distance: 1, SourceA: "i7", SourceB: "i5", IndexA: 0, IndexB: 3}
	want := "# AAAA  i7 #0\n# |||x  distance 1\n# AAAT  i5 #3\n"
	if got := RenderRecord(r); got != want {
		t.Fatalf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestRenderRecordWith_CustomGlyphs(t *testing.T) {
	r := clash.Record{A: "AC", B: "AG", Distance: 1, SourceA: "s", SourceB: "s", IndexA: 0, IndexB: 1}
	got := RenderRecordWith(r, Options{ExactGlyph: ".", MismatchGlyph: "^", Prefix: "> "})
	want := "> AC  s #0\n> .^  distance 1\n> AG  s #1\n"
	if got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}
