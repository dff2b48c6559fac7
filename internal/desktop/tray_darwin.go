//go:build darwin

package desktop

import "log"

// NewSystemTray on darwin returns a manager whose backend only logs: wails
// owns the AppKit main thread there.
func NewSystemTray(tooltip string, icon []byte, labels Labels) *TrayManager {
	return newTrayManager(noopBackend{}, tooltip, icon, labels)
}

type noopBackend struct{}

func (noopBackend) Run(onReady, onExit func()) {
	log.Println("[Tray] System tray is not available on darwin")
}

func (noopBackend) SetIcon(icon []byte)                    {}
func (noopBackend) SetTooltip(tooltip string)              {}
func (noopBackend) SetOnClick(fn func())                   {}
func (noopBackend) AddItem(item MenuItem, onSelect func()) {}
func (noopBackend) Quit()                                  {}
