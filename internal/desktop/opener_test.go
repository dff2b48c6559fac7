package desktop

import (
	"errors"
	"os/exec"
	"testing"
)

func TestExecOpener_SingleSpawn(t *testing.T) {
	var started []*exec.Cmd
	o := &ExecOpener{
		command: browserCommand,
		start: func(cmd *exec.Cmd) error {
			started = append(started, cmd)
			return nil
		},
	}

	if err := o.OpenURL("http://localhost:3000"); err != nil {
		t.Fatalf("OpenURL() error = %v", err)
	}
	if len(started) != 1 {
		t.Fatalf("spawned %d processes, want 1", len(started))
	}
	args := started[0].Args
	if args[len(args)-1] != "http://localhost:3000" {
		t.Errorf("spawn args %v do not end with the web app url", args)
	}
}

func TestExecOpener_SpawnError(t *testing.T) {
	var calls int
	o := &ExecOpener{
		command: browserCommand,
		start: func(cmd *exec.Cmd) error {
			calls++
			return errBoom
		},
	}

	err := o.OpenURL("http://localhost:3000")
	if !errors.Is(err, errBoom) {
		t.Errorf("OpenURL() error = %v, want errBoom", err)
	}
	if calls != 1 {
		t.Errorf("spawn attempted %d times, want 1", calls)
	}
}

func TestStartDetached_MissingBinary(t *testing.T) {
	cmd := exec.Command("pomodoro-widget-no-such-binary", "http://localhost:3000")
	if err := startDetached(cmd); err == nil {
		t.Error("startDetached() succeeded for a missing binary")
	}
}
