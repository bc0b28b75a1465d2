package main

import (
	"bytes"
	"errors"
	"testing"

	"linepick/internal/picker"
)

type fakeConsole struct {
	in      *bytes.Reader
	out     bytes.Buffer
	werr    error
	panicOn bool
	closes  int
}

func (f *fakeConsole) Read(p []byte) (int, error) { return f.in.Read(p) }

func (f *fakeConsole) Write(p []byte) (int, error) {
	if f.werr != nil {
		return 0, f.werr
	}
	return f.out.Write(p)
}

func (f *fakeConsole) Size() (int, int, error) {
	if f.panicOn {
		panic("size exploded")
	}
	return 40, 10, nil
}

func (f *fakeConsole) Close() error {
	f.closes++
	return nil
}

func stubConsole(t *testing.T, fc *fakeConsole) {
	t.Helper()
	prev := openConsole
	openConsole = func(string) (terminal, error) { return fc, nil }
	t.Cleanup(func() { openConsole = prev })
}

func TestSessionRestoresOnCancel(t *testing.T) {
	fc := &fakeConsole{in: bytes.NewReader([]byte("ap\x03"))}
	stubConsole(t, fc)
	res, err := runSession("tty", []string{"apple"}, picker.Options{})
	if err != nil || res.Confirmed {
		t.Fatalf("res=%+v err=%v", res, err)
	}
	if fc.closes != 1 {
		t.Fatalf("close calls: %d", fc.closes)
	}
}

func TestSessionRestoresOnConfirm(t *testing.T) {
	fc := &fakeConsole{in: bytes.NewReader([]byte("\r"))}
	stubConsole(t, fc)
	res, err := runSession("tty", []string{"apple"}, picker.Options{})
	if err != nil || res.Line != "apple" {
		t.Fatalf("res=%+v err=%v", res, err)
	}
	if fc.closes != 1 {
		t.Fatalf("close calls: %d", fc.closes)
	}
}

func TestSessionRestoresOnRenderError(t *testing.T) {
	fc := &fakeConsole{in: bytes.NewReader(nil), werr: errors.New("tty gone")}
	stubConsole(t, fc)
	if _, err := runSession("tty", []string{"apple"}, picker.Options{}); err == nil {
		t.Fatalf("expected render error")
	}
	if fc.closes != 1 {
		t.Fatalf("close calls: %d", fc.closes)
	}
}

func TestSessionRestoresOnPanic(t *testing.T) {
	fc := &fakeConsole{in: bytes.NewReader(nil), panicOn: true}
	stubConsole(t, fc)
	func() {
		defer func() {
			if recover() == nil {
				t.Fatalf("expected panic to propagate")
			}
		}()
		runSession("tty", []string{"apple"}, picker.Options{})
	}()
	if fc.closes != 1 {
		t.Fatalf("close calls: %d", fc.closes)
	}
}

func TestSessionOpenFailure(t *testing.T) {
	prev := openConsole
	openConsole = func(string) (terminal, error) { return nil, errors.New("no tty") }
	t.Cleanup(func() { openConsole = prev })
	res, err := runSession("tty", []string{"apple"}, picker.Options{})
	if err == nil || res.Index != -1 {
		t.Fatalf("res=%+v err=%v", res, err)
	}
}
