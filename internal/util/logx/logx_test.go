package logx

import (
	"bytes"
	"strings"
	"testing"
)

func reset() {
	mu.Lock()
	buf = buf[:0]
	mu.Unlock()
}

func lines() []string {
	d := Dump()
	if d == "" {
		return nil
	}
	return strings.Split(d, "\n")
}

func TestLevelFiltering(t *testing.T) {
	reset()
	SetLevel(Warn)
	defer SetLevel(Info)
	Infof("hidden %d", 1)
	Warnf("shown %d", 2)
	got := lines()
	if len(got) != 1 {
		t.Fatalf("expected 1 line, got %d: %v", len(got), got)
	}
	if !strings.Contains(got[0], "WARN") || !strings.Contains(got[0], "shown 2") {
		t.Fatalf("unexpected line: %q", got[0])
	}
	if Enabled(Info) || !Enabled(Error) {
		t.Fatalf("Enabled disagrees with level %s", Warn)
	}
}

func TestRingDropsOldest(t *testing.T) {
	reset()
	for i := 0; i < maxLines+10; i++ {
		Errorf("line %d", i)
	}
	got := lines()
	if len(got) != maxLines {
		t.Fatalf("expected %d lines, got %d", maxLines, len(got))
	}
	if !strings.HasSuffix(got[0], "line 10") {
		t.Fatalf("oldest kept line: %q", got[0])
	}
}

func TestSetOutputMirrors(t *testing.T) {
	reset()
	var b bytes.Buffer
	SetOutput(&b)
	defer SetOutput(nil)
	Errorf("boom")
	if !strings.Contains(b.String(), "ERROR boom") {
		t.Fatalf("sink got %q", b.String())
	}
}

func TestParseLevel(t *testing.T) {
	if l, ok := ParseLevel(" Warning "); !ok || l != Warn {
		t.Fatalf("got %v %v", l, ok)
	}
	if _, ok := ParseLevel("loud"); ok {
		t.Fatalf("unknown level accepted")
	}
}
