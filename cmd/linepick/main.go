package main

import (
	"fmt"
	"io"
	"os"

	"linepick/internal/util/logx"
)

func main() {
	logClose := logx.SetLevelFromEnv()
	err := newRootCmd(os.Stdin, os.Stdout).Execute()
	logClose.Close()
	if err != nil {
		report(os.Stderr, err)
		os.Exit(1)
	}
}

// report prints err once the terminal is back. At debug level the
// buffered session log follows, unless it already went to stderr.
func report(w io.Writer, err error) {
	fmt.Fprintln(w, "linepick:", err)
	if logx.Enabled(logx.Debug) && !logx.OnStderr() {
		if d := logx.Dump(); d != "" {
			fmt.Fprintln(w, "--- session log ---")
			fmt.Fprintln(w, d)
		}
	}
}
