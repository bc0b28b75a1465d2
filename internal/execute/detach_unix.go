//go:build !windows

package execute

import (
	"os/exec"
	"syscall"
)

// detach puts the child in its own process group so terminal signals
// aimed at the picker do not reach it.
func detach(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
}
