package execute

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"al.essio.dev/pkg/shellescape"

	"linepick/internal/util"
	"linepick/internal/util/logx"
)

// Placeholder is replaced by the chosen line in a command template.
const Placeholder = "{}"

// posixShell runs every expanded template; lines are quoted for it.
const posixShell = "/bin/sh"

var ErrEmptyTemplate = errors.New("empty command template")

// Command launches a shell command built from a template for each
// chosen line.
type Command struct {
	template string
	shell    string
	start    func(*exec.Cmd) error
}

func New(template string) (*Command, error) {
	if strings.TrimSpace(template) == "" {
		return nil, ErrEmptyTemplate
	}
	return &Command{template: template, shell: posixShell, start: startDetached}, nil
}

// Expand substitutes the shell-quoted line for every placeholder. A
// template without a placeholder gets the line appended as a final
// argument.
func (c *Command) Expand(line string) string {
	q := shellescape.Quote(line)
	if !strings.Contains(c.template, Placeholder) {
		return c.template + " " + q
	}
	return strings.ReplaceAll(c.template, Placeholder, q)
}

// Execute starts the expanded command in the background and returns
// without waiting for it.
func (c *Command) Execute(line string) error {
	cmdline := c.Expand(line)
	cmd := exec.Command(c.shell, "-c", cmdline)
	if err := c.start(cmd); err != nil {
		return fmt.Errorf("execute %q: %w", util.Redact(cmdline), err)
	}
	logx.Infof("execute: started pid %d: %s", cmd.Process.Pid, util.Redact(cmdline))
	go func() {
		err := cmd.Wait()
		logx.Debugf("execute: pid %d exited: %v", cmd.Process.Pid, err)
	}()
	return nil
}

func startDetached(cmd *exec.Cmd) error {
	devnull, err := os.OpenFile(os.DevNull, os.O_RDWR, 0)
	if err != nil {
		return err
	}
	defer devnull.Close()
	cmd.Stdin, cmd.Stdout, cmd.Stderr = devnull, devnull, devnull
	detach(cmd)
	return cmd.Start()
}
