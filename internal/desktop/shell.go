package desktop

import (
	"errors"
	"fmt"
	"log"
)

// 网页内容可调用的命令
const (
	CommandCloseWindow    = "close_window"
	CommandMinimizeWindow = "minimize_window"
	CommandOpenWebApp     = "open_web_app"
)

// DefaultWebAppURL 番茄钟 Web 应用地址
const DefaultWebAppURL = "http://localhost:3000"

var (
	ErrWindowNotFound = errors.New("window not found")
	ErrUnknownCommand = errors.New("unknown command")
	ErrEmptyIcon      = errors.New("tray icon is empty")
	ErrInvalidIcon    = errors.New("tray icon cannot be decoded")
)

// CommandResult is the outcome of one command invocation.
type CommandResult struct {
	Command string `json:"command"`
	OK      bool   `json:"ok"`
	Error   string `json:"error,omitempty"`
}

// ShellOptions 配置
type ShellOptions struct {
	WindowName string
	WebAppURL  string
}

// Shell owns the main window lookup, the tray and the command table. All
// handlers capture the Shell; there is no package-level GUI state.
type Shell struct {
	host       WindowHost
	opener     URLOpener
	tray       *TrayManager
	windowName string
	webAppURL  string
	commands   map[string]func() error
}

// NewShell 创建桌面外壳控制器
func NewShell(host WindowHost, opener URLOpener, tray *TrayManager, opts ShellOptions) *Shell {
	if opts.WindowName == "" {
		opts.WindowName = MainWindowName
	}
	if opts.WebAppURL == "" {
		opts.WebAppURL = DefaultWebAppURL
	}
	return &Shell{
		host:       host,
		opener:     opener,
		tray:       tray,
		windowName: opts.WindowName,
		webAppURL:  opts.WebAppURL,
	}
}

// Setup runs once at startup. Any error here is fatal to the caller: the main
// window is declared statically and is never created on demand.
func (s *Shell) Setup() error {
	if _, ok := s.host.Window(s.windowName); !ok {
		return fmt.Errorf("%w: %q", ErrWindowNotFound, s.windowName)
	}

	if err := s.tray.Build(s.ShowMainWindow); err != nil {
		return fmt.Errorf("build tray: %w", err)
	}

	s.commands = map[string]func() error{
		CommandCloseWindow:    s.closeWindow,
		CommandMinimizeWindow: s.minimizeWindow,
		CommandOpenWebApp:     s.openWebApp,
	}

	log.Printf("[Shell] Ready: window %q, web app %s", s.windowName, s.webAppURL)
	return nil
}

// Invoke runs a command by name and reports its outcome. Failures are logged
// and returned, never raised.
func (s *Shell) Invoke(name string) CommandResult {
	fn, ok := s.commands[name]
	if !ok {
		log.Printf("[Shell] Unknown command %q", name)
		return CommandResult{Command: name, Error: ErrUnknownCommand.Error()}
	}
	if err := fn(); err != nil {
		log.Printf("[Shell] Command %s failed: %v", name, err)
		return CommandResult{Command: name, Error: err.Error()}
	}
	return CommandResult{Command: name, OK: true}
}

// ShowMainWindow 托盘左键单击：显示并聚焦主窗口，窗口不存在时什么也不做
func (s *Shell) ShowMainWindow() {
	w, ok := s.host.Window(s.windowName)
	if !ok {
		return
	}
	if err := w.Show(); err != nil {
		log.Printf("[Shell] Show window: %v", err)
	}
	if err := w.Focus(); err != nil {
		log.Printf("[Shell] Focus window: %v", err)
	}
}

func (s *Shell) closeWindow() error {
	w, ok := s.host.Window(s.windowName)
	if !ok {
		return ErrWindowNotFound
	}
	return w.Close()
}

func (s *Shell) minimizeWindow() error {
	w, ok := s.host.Window(s.windowName)
	if !ok {
		return ErrWindowNotFound
	}
	return w.Minimise()
}

func (s *Shell) openWebApp() error {
	return s.opener.OpenURL(s.webAppURL)
}
