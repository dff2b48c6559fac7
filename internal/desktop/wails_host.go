package desktop

import (
	"context"
	"log"
	"sync"

	"github.com/wailsapp/wails/v2/pkg/runtime"
)

// WailsHost adapts the wails v2 runtime to WindowHost. Wails runs exactly one
// window per process, registered under the configured name.
type WailsHost struct {
	name string

	mu      sync.RWMutex
	ctx     context.Context
	closing bool
}

// NewWailsHost 创建窗口宿主，name 为主窗口名称
func NewWailsHost(name string) *WailsHost {
	if name == "" {
		name = MainWindowName
	}
	return &WailsHost{name: name}
}

// Attach 在 OnStartup 中调用，保存 wails 运行时上下文
func (h *WailsHost) Attach(ctx context.Context) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.ctx = ctx
	h.closing = false
}

// Detach 在 OnShutdown 中调用
func (h *WailsHost) Detach() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.ctx = nil
}

// Window returns the window registered under name. The window is absent before
// Attach, after Detach and once a close has been requested.
func (h *WailsHost) Window(name string) (Window, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if h.ctx == nil || h.closing || name != h.name {
		return nil, false
	}
	return &wailsWindow{host: h, ctx: h.ctx}, true
}

// Closing reports whether the window is on its way out.
func (h *WailsHost) Closing() bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.closing
}

func (h *WailsHost) markClosing() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.closing = true
}

type wailsWindow struct {
	host *WailsHost
	ctx  context.Context
}

func (w *wailsWindow) Name() string { return w.host.name }

func (w *wailsWindow) Show() error {
	runtime.WindowShow(w.ctx)
	return nil
}

// Focus 取消最小化并把窗口提到前台
func (w *wailsWindow) Focus() error {
	runtime.WindowUnminimise(w.ctx)
	runtime.WindowShow(w.ctx)
	return nil
}

// Close 关闭唯一的窗口即退出应用
func (w *wailsWindow) Close() error {
	log.Printf("[Window] Closing window %q", w.host.name)
	w.host.markClosing()
	runtime.Quit(w.ctx)
	return nil
}

func (w *wailsWindow) Minimise() error {
	runtime.WindowMinimise(w.ctx)
	return nil
}
