package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"linepick/internal/util/logx"
)

func TestReportAddsSessionLogAtDebug(t *testing.T) {
	logx.SetLevel(logx.Debug)
	defer logx.SetLevel(logx.Info)
	logx.Debugf("picker: render failed mid-frame")

	var b bytes.Buffer
	report(&b, errors.New("render frame: tty gone"))
	out := b.String()
	if !strings.HasPrefix(out, "linepick: render frame: tty gone\n") {
		t.Fatalf("error line: %q", out)
	}
	if !strings.Contains(out, "picker: render failed mid-frame") {
		t.Fatalf("session log missing: %q", out)
	}
}

func TestReportQuietAtInfo(t *testing.T) {
	logx.SetLevel(logx.Info)
	var b bytes.Buffer
	report(&b, errors.New("boom"))
	if b.String() != "linepick: boom\n" {
		t.Fatalf("report: %q", b.String())
	}
}
