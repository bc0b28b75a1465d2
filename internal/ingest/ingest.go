package ingest

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/nxadm/tail"

	"linepick/internal/util/logx"
)

type SourceKind string

const (
	SourceStdin SourceKind = "stdin"
	SourceFile  SourceKind = "file"
)

// ErrNoInput is returned when there is nothing to read lines from.
var ErrNoInput = errors.New("no input: pipe lines on stdin or pass a file")

type Options struct {
	Source      SourceKind
	Path        string
	Stdin       io.Reader // defaults to os.Stdin
	ScanBufSize int       // per-line max (bytes)
}

type Line struct {
	Text string
}

const defaultScanBuf = 1024 * 1024

// Read streams lines from the configured source. Both channels are closed
// once the source is exhausted; at most one error is delivered.
func Read(ctx context.Context, opt Options) (<-chan Line, <-chan error) {
	out := make(chan Line, 1024)
	errs := make(chan error, 1)

	go func() {
		defer close(out)
		defer close(errs)

		switch opt.Source {
		case SourceStdin:
			r := opt.Stdin
			if r == nil {
				r = os.Stdin
			}
			readFromReader(ctx, r, "stdin", opt.ScanBufSize, out, errs)
		case SourceFile:
			readFromFile(ctx, opt.Path, out, errs)
		default:
			errs <- ErrNoInput
		}
	}()

	return out, errs
}

// Load drains Read into a slice. The result is the immutable line list
// handed to the picker.
func Load(ctx context.Context, opt Options) ([]string, error) {
	lines, errs := Read(ctx, opt)
	var out []string
	for l := range lines {
		out = append(out, l.Text)
	}
	if err := <-errs; err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	logx.Infof("ingest: loaded %d lines from %s", len(out), describe(opt))
	return out, nil
}

func describe(opt Options) string {
	if opt.Source == SourceFile {
		return opt.Path
	}
	return string(opt.Source)
}

func readFromReader(ctx context.Context, r io.Reader, src string, maxBuf int, out chan<- Line, errs chan<- error) {
	if maxBuf <= 0 {
		maxBuf = defaultScanBuf
	}
	scanner := bufio.NewScanner(r)
	buf := make([]byte, 0, min(1024*64, maxBuf))
	scanner.Buffer(buf, maxBuf)
	for scanner.Scan() {
		select {
		case <-ctx.Done():
			return
		case out <- Line{Text: trimCR(scanner.Text())}:
		}
	}
	if err := scanner.Err(); err != nil {
		errs <- fmt.Errorf("read %s: %w", src, err)
	}
}

func readFromFile(ctx context.Context, path string, out chan<- Line, errs chan<- error) {
	t, err := tail.TailFile(path, tail.Config{
		Follow:    false,
		MustExist: true,
		Logger:    tail.DiscardingLogger,
		Poll:      true,
	})
	if err != nil {
		errs <- fmt.Errorf("open %s: %w", path, err)
		return
	}
	defer t.Cleanup()
	for {
		select {
		case <-ctx.Done():
			t.Stop()
			return
		case l, ok := <-t.Lines:
			if !ok {
				if err := t.Wait(); err != nil {
					errs <- fmt.Errorf("read %s: %w", path, err)
				}
				return
			}
			if l.Err != nil {
				errs <- fmt.Errorf("read %s: %w", path, l.Err)
				t.Stop()
				return
			}
			select {
			case <-ctx.Done():
				t.Stop()
				return
			case out <- Line{Text: trimCR(l.Text)}:
			}
		}
	}
}

func trimCR(s string) string { return strings.TrimSuffix(s, "\r") }
