package desktop

import (
	"context"
	"testing"
)

func TestWailsHost_Window(t *testing.T) {
	tests := []struct {
		name   string
		setup  func(h *WailsHost)
		lookup string
		want   bool
	}{
		{
			name:   "before attach",
			setup:  func(h *WailsHost) {},
			lookup: MainWindowName,
			want:   false,
		},
		{
			name:   "attached",
			setup:  func(h *WailsHost) { h.Attach(context.Background()) },
			lookup: MainWindowName,
			want:   true,
		},
		{
			name:   "other name",
			setup:  func(h *WailsHost) { h.Attach(context.Background()) },
			lookup: "settings",
			want:   false,
		},
		{
			name: "after detach",
			setup: func(h *WailsHost) {
				h.Attach(context.Background())
				h.Detach()
			},
			lookup: MainWindowName,
			want:   false,
		},
		{
			name: "closing",
			setup: func(h *WailsHost) {
				h.Attach(context.Background())
				h.markClosing()
			},
			lookup: MainWindowName,
			want:   false,
		},
		{
			name: "attach resets closing",
			setup: func(h *WailsHost) {
				h.Attach(context.Background())
				h.markClosing()
				h.Attach(context.Background())
			},
			lookup: MainWindowName,
			want:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewWailsHost(MainWindowName)
			tt.setup(h)

			w, ok := h.Window(tt.lookup)
			if ok != tt.want {
				t.Fatalf("Window(%q) ok = %v, want %v", tt.lookup, ok, tt.want)
			}
			if ok && w.Name() != MainWindowName {
				t.Errorf("Name() = %q, want %q", w.Name(), MainWindowName)
			}
		})
	}
}

func TestNewWailsHost_DefaultName(t *testing.T) {
	h := NewWailsHost("")
	h.Attach(context.Background())
	if _, ok := h.Window(MainWindowName); !ok {
		t.Errorf("empty name did not default to %q", MainWindowName)
	}
}

func TestWailsHost_CommandsAfterClose(t *testing.T) {
	h := NewWailsHost(MainWindowName)
	h.Attach(context.Background())
	opener := &fakeOpener{}
	shell, backend := newTestShell(t, h, opener)
	if err := shell.Setup(); err != nil {
		t.Fatalf("Setup() error = %v", err)
	}
	shell.tray.Start()

	h.markClosing()

	// Window is absent: commands fail as values and the click does nothing.
	for _, name := range []string{CommandCloseWindow, CommandMinimizeWindow} {
		if res := shell.Invoke(name); res.OK || res.Error != ErrWindowNotFound.Error() {
			t.Errorf("Invoke(%s) = %+v, want window not found", name, res)
		}
	}
	backend.onClick()
}
