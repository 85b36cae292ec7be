package appshell

import (
	"context"
	"io"
	"testing"
)

func TestRun0_PassesArgsAndCode(t *testing.T) {
	var got []string
	code := run0(func(ctx context.Context, argv []string, _, _ io.Writer) int {
		got = argv
		if ctx.Err() != nil {
			t.Fatalf("context cancelled before run")
		}
		return 7
	}, []string{"a.txt", "-t", "0"}, io.Discard, io.Discard)
	if code != 7 || len(got) != 3 || got[0] != "a.txt" {
		t.Fatalf("code=%d argv=%v", code, got)
	}
}
