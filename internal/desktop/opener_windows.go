//go:build windows

package desktop

import (
	"os/exec"
	"syscall"
)

func browserCommand(url string) *exec.Cmd {
	cmd := exec.Command("cmd", "/c", "start", url)
	cmd.SysProcAttr = &syscall.SysProcAttr{HideWindow: true}
	return cmd
}
