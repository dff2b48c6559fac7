package desktop

import (
	"fmt"
	"log"
	"os/exec"
)

// URLOpener opens a URL in the user's default external application.
type URLOpener interface {
	OpenURL(url string) error
}

// ExecOpener spawns the platform's URL handler and does not wait for it.
type ExecOpener struct {
	command func(url string) *exec.Cmd
	start   func(cmd *exec.Cmd) error
}

// NewExecOpener 使用当前平台的浏览器命令
func NewExecOpener() *ExecOpener {
	return &ExecOpener{
		command: browserCommand,
		start:   startDetached,
	}
}

// OpenURL issues one spawn request per call. Only the spawn itself can fail;
// the child process is never observed.
func (o *ExecOpener) OpenURL(url string) error {
	cmd := o.command(url)
	if err := o.start(cmd); err != nil {
		return fmt.Errorf("spawn %s: %w", cmd.Path, err)
	}
	log.Printf("[Opener] Requested %s via %s", url, cmd.Path)
	return nil
}

func startDetached(cmd *exec.Cmd) error {
	if err := cmd.Start(); err != nil {
		return err
	}
	// reap
	go func() {
		_ = cmd.Wait()
	}()
	return nil
}
