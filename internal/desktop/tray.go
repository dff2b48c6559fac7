package desktop

import (
	"fmt"
	"log"
	"sync"
)

// 托盘菜单项 ID
const (
	MenuOpen      = "open"
	MenuSeparator = "separator"
	MenuQuit      = "quit"
)

// Labels 托盘菜单显示文本
type Labels struct {
	Open      string
	Separator string
	Quit      string
}

// MenuItem is one tray menu entry. Entries never change after the tray is built.
type MenuItem struct {
	ID      string
	Label   string
	Enabled bool
}

// NewMenu builds the fixed three-entry menu: open, a disabled separator, quit.
func NewMenu(labels Labels) []MenuItem {
	return []MenuItem{
		{ID: MenuOpen, Label: labels.Open, Enabled: true},
		{ID: MenuSeparator, Label: labels.Separator, Enabled: false},
		{ID: MenuQuit, Label: labels.Quit, Enabled: true},
	}
}

// trayBackend is the native tray implementation.
type trayBackend interface {
	Run(onReady, onExit func())
	SetIcon(icon []byte)
	SetTooltip(tooltip string)
	SetOnClick(fn func())
	AddItem(item MenuItem, onSelect func())
	Quit()
}

// TrayManager 管理系统托盘
type TrayManager struct {
	backend trayBackend
	tooltip string
	icon    []byte
	menu    []MenuItem

	mu       sync.RWMutex
	onClick  func()
	handlers map[string]func()
	built    bool
}

func newTrayManager(backend trayBackend, tooltip string, icon []byte, labels Labels) *TrayManager {
	return &TrayManager{
		backend:  backend,
		tooltip:  tooltip,
		icon:     icon,
		menu:     NewMenu(labels),
		handlers: make(map[string]func()),
	}
}

// Build validates the tray resources and installs the primary-click handler.
// It must succeed before Start.
func (t *TrayManager) Build(onClick func()) error {
	if len(t.icon) == 0 {
		return ErrEmptyIcon
	}
	if err := checkIcon(t.icon); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidIcon, err)
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.onClick = onClick
	t.built = true
	return nil
}

// Menu 返回菜单项副本
func (t *TrayManager) Menu() []MenuItem {
	items := make([]MenuItem, len(t.menu))
	copy(items, t.menu)
	return items
}

// OnSelect registers the action for a menu entry. Entries without a handler
// do nothing when selected.
func (t *TrayManager) OnSelect(id string, fn func()) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.handlers[id] = fn
}

// Start 启动托盘，阻塞直到托盘退出
func (t *TrayManager) Start() {
	t.mu.RLock()
	built := t.built
	t.mu.RUnlock()
	if !built {
		log.Println("[Tray] Start called before Build, ignoring")
		return
	}
	t.backend.Run(t.onReady, t.onExit)
}

// Stop 退出托盘
func (t *TrayManager) Stop() {
	t.backend.Quit()
}

// onReady 托盘就绪回调
func (t *TrayManager) onReady() {
	log.Println("[Tray] Initializing system tray...")

	t.backend.SetIcon(t.icon)
	t.backend.SetTooltip(t.tooltip)
	t.backend.SetOnClick(t.click)

	for _, item := range t.menu {
		id := item.ID
		t.backend.AddItem(item, func() { t.selected(id) })
	}
}

// onExit 托盘退出回调
func (t *TrayManager) onExit() {
	log.Println("[Tray] System tray exited")
}

// click 左键单击托盘图标
func (t *TrayManager) click() {
	t.mu.RLock()
	fn := t.onClick
	t.mu.RUnlock()
	if fn != nil {
		fn()
	}
}

func (t *TrayManager) selected(id string) {
	t.mu.RLock()
	fn := t.handlers[id]
	t.mu.RUnlock()
	if fn == nil {
		log.Printf("[Tray] Menu item %q selected, no handler", id)
		return
	}
	log.Printf("[Tray] Menu item %q selected", id)
	fn()
}
