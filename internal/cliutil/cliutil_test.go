package cliutil

import (
	"flag"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestSplitFlagsAndPositionals(t *testing.T) {
	fs := flag.NewFlagSet("x", flag.ContinueOnError)
	fs.Bool("quiet", false, "")
	fs.Int("t", 1, "")
	fs.String("name1", "", "")

	flagArgs, posArgs := SplitFlagsAndPositionals(fs, []string{
		"i7.txt", "-t", "0", "--quiet", "--name1=i7", "-", "--", "-odd-name.txt",
	})
	if want := []string{"-t", "0", "--quiet", "--name1=i7"}; !reflect.DeepEqual(flagArgs, want) {
		t.Fatalf("flags = %v, want %v", flagArgs, want)
	}
	if want := []string{"i7.txt", "-", "-odd-name.txt"}; !reflect.DeepEqual(posArgs, want) {
		t.Fatalf("positionals = %v, want %v", posArgs, want)
	}
}

func TestExpandPositionals(t *testing.T) {
	dir := t.TempDir()
	for _, n := range []string{"plate1.txt", "plate2.txt", "notes.md"} {
		if err := os.WriteFile(filepath.Join(dir, n), []byte("ACGT\n"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	got, err := ExpandPositionals([]string{filepath.Join(dir, "plate*.txt"), "-", "s3://bucket/i5*.txt"})
	if err != nil || len(got) != 4 {
		t.Fatalf("expand: err=%v got=%v", err, got)
	}
	if got[2] != "-" || got[3] != "s3://bucket/i5*.txt" {
		t.Fatalf("stdin/remote should pass through: %v", got)
	}
	if _, err := ExpandPositionals([]string{filepath.Join(dir, "*.csv")}); err == nil {
		t.Fatalf("expected error for a glob with no match")
	}
}
