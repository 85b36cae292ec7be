package pretty

import "testing"

func TestDefaultOptions_Stable(t *testing.T) {
	d := DefaultOptions
	if d.ExactGlyph == "" || d.MismatchGlyph == "" {
		t.Fatalf("glyphs must be non-empty")
	}
	if d.ExactGlyph != "|" || d.MismatchGlyph != "x" || d.Prefix != "# " {
		t.Fatalf("DefaultOptions visual defaults changed")
	}
}
