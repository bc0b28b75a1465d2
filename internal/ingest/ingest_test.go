package ingest

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLoadStdin(t *testing.T) {
	in := strings.NewReader("apple\r\nbanana\n\ncherry")
	got, err := Load(context.Background(), Options{Source: SourceStdin, Stdin: in})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if diff := cmp.Diff([]string{"apple", "banana", "", "cherry"}, got); diff != "" {
		t.Fatalf("lines (-want +got):\n%s", diff)
	}
}

func TestLoadFile(t *testing.T) {
	p := filepath.Join(t.TempDir(), "list.txt")
	if err := os.WriteFile(p, []byte("one\ntwo\nthree\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	got, err := Load(context.Background(), Options{Source: SourceFile, Path: p})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if diff := cmp.Diff([]string{"one", "two", "three"}, got); diff != "" {
		t.Fatalf("lines (-want +got):\n%s", diff)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(context.Background(), Options{Source: SourceFile, Path: filepath.Join(t.TempDir(), "nope")})
	if err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestLoadNoSource(t *testing.T) {
	_, err := Load(context.Background(), Options{})
	if !errors.Is(err, ErrNoInput) {
		t.Fatalf("expected ErrNoInput, got %v", err)
	}
}

func TestLoadLineTooLong(t *testing.T) {
	in := strings.NewReader(strings.Repeat("x", 100) + "\n")
	if _, err := Load(context.Background(), Options{Source: SourceStdin, Stdin: in, ScanBufSize: 16}); err == nil {
		t.Fatalf("expected scanner error for oversized line")
	}
}

func TestAlignColumns(t *testing.T) {
	in := []string{"a\tfirst\tx", "long-name\t2\ty", "no tabs here"}
	want := []string{
		"a          first  x",
		"long-name  2      y",
		"no tabs here",
	}
	if diff := cmp.Diff(want, AlignColumns(in, 2)); diff != "" {
		t.Fatalf("aligned (-want +got):\n%s", diff)
	}
}
