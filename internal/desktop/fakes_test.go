package desktop

import (
	"errors"
	"sync"

	"github.com/awsl-project/pomodoro-widget/internal/config"
)

var testTooltip = config.Default().Tooltip

func testLabels() Labels {
	l := config.Default().Labels
	return Labels{Open: l.Open, Separator: l.Separator, Quit: l.Quit}
}

type fakeWindow struct {
	name string

	mu          sync.Mutex
	visible     bool
	focused     bool
	minimised   bool
	closed      bool
	closeErr    error
	minimiseErr error
}

func (w *fakeWindow) Name() string { return w.name }

func (w *fakeWindow) Show() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.visible = true
	return nil
}

func (w *fakeWindow) Focus() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.focused = true
	w.minimised = false
	return nil
}

func (w *fakeWindow) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closeErr != nil {
		return w.closeErr
	}
	w.closed = true
	w.visible = false
	return nil
}

func (w *fakeWindow) Minimise() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.minimiseErr != nil {
		return w.minimiseErr
	}
	w.minimised = true
	return nil
}

// fakeHost drops a window from the registry once it is closed.
type fakeHost struct {
	windows map[string]*fakeWindow
}

func newFakeHost(names ...string) *fakeHost {
	h := &fakeHost{windows: make(map[string]*fakeWindow)}
	for _, n := range names {
		h.windows[n] = &fakeWindow{name: n}
	}
	return h
}

func (h *fakeHost) Window(name string) (Window, bool) {
	w, ok := h.windows[name]
	if !ok || w.closed {
		return nil, false
	}
	return w, true
}

type fakeOpener struct {
	mu   sync.Mutex
	urls []string
	err  error
}

func (o *fakeOpener) OpenURL(url string) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.urls = append(o.urls, url)
	return o.err
}

type fakeBackend struct {
	icon    []byte
	tooltip string
	onClick func()
	items   []MenuItem
	selects map[string]func()
	ran     bool
	quitted bool
}

func (b *fakeBackend) Run(onReady, onExit func()) {
	b.ran = true
	onReady()
}

func (b *fakeBackend) SetIcon(icon []byte)       { b.icon = icon }
func (b *fakeBackend) SetTooltip(tooltip string) { b.tooltip = tooltip }
func (b *fakeBackend) SetOnClick(fn func())      { b.onClick = fn }

func (b *fakeBackend) AddItem(item MenuItem, onSelect func()) {
	if b.selects == nil {
		b.selects = make(map[string]func())
	}
	b.items = append(b.items, item)
	b.selects[item.ID] = onSelect
}

func (b *fakeBackend) Quit() { b.quitted = true }

var errBoom = errors.New("boom")
