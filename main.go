package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	goruntime "runtime"
	"time"

	"github.com/awsl-project/pomodoro-widget/internal/config"
	"github.com/awsl-project/pomodoro-widget/internal/desktop"
	"github.com/awsl-project/pomodoro-widget/internal/version"
	"github.com/wailsapp/wails/v2"
	"github.com/wailsapp/wails/v2/pkg/menu"
	"github.com/wailsapp/wails/v2/pkg/menu/keys"
	"github.com/wailsapp/wails/v2/pkg/options"
	"github.com/wailsapp/wails/v2/pkg/options/assetserver"
	"github.com/wailsapp/wails/v2/pkg/options/windows"
)

func main() {
	// Parse flags
	webAppURL := flag.String("url", "", "Pomodoro web app address (default: http://localhost:3000)")
	dataDir := flag.String("data", "", "Directory holding widget.json (default: ~/.config/pomodoro-widget)")
	showVersion := flag.Bool("version", false, "Show version information and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println(version.Full())
		os.Exit(0)
	}

	cfg, err := config.Resolve(config.Overrides{DataDir: *dataDir, WebAppURL: *webAppURL}, os.Getenv)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	policy, err := desktop.ParseErrorPolicy(cfg.ErrorPolicy)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	proxy, err := desktop.NewWebAppProxy(cfg.WebAppURL)
	if err != nil {
		log.Fatalf("Failed to create web app proxy: %v", err)
	}

	host := desktop.NewWailsHost(cfg.WindowName)
	tray := desktop.NewSystemTray(cfg.Tooltip, desktop.TrayIcon(), desktop.Labels{
		Open:      cfg.Labels.Open,
		Separator: cfg.Labels.Separator,
		Quit:      cfg.Labels.Quit,
	})
	shell := desktop.NewShell(host, desktop.NewExecOpener(), tray, desktop.ShellOptions{
		WindowName: cfg.WindowName,
		WebAppURL:  cfg.WebAppURL,
	})

	log.Printf("Starting %s %s, web app %s", version.Name, version.Info(), cfg.WebAppURL)

	// Create application menu (only for macOS, where the tray is unavailable)
	var appMenu *menu.Menu
	if goruntime.GOOS == "darwin" {
		appMenu = menu.NewMenu()

		// App menu carries Quit (Cmd+Q)
		appMenu.Append(menu.AppMenu())

		windowMenu := appMenu.AddSubmenu("Window")
		windowMenu.AddText(cfg.Labels.Open, keys.CmdOrCtrl("o"), func(_ *menu.CallbackData) {
			shell.ShowMainWindow()
		})
		windowMenu.AddText("Minimize", keys.CmdOrCtrl("m"), func(_ *menu.CallbackData) {
			shell.Invoke(desktop.CommandMinimizeWindow)
		})

		// Edit Menu (for copy/paste support)
		appMenu.Append(menu.EditMenu())
	}

	err = wails.Run(&options.App{
		Title:         cfg.Title,
		Width:         cfg.Width,
		Height:        cfg.Height,
		DisableResize: true,
		Frameless:     cfg.Frameless,
		AlwaysOnTop:   cfg.AlwaysOnTop,
		AssetServer: &assetserver.Options{
			Handler: proxy,
		},
		BackgroundColour: &options.RGBA{R: 255, G: 255, B: 255, A: 0},
		OnStartup: func(ctx context.Context) {
			host.Attach(ctx)
			if err := shell.Setup(); err != nil {
				log.Fatalf("Failed to set up desktop shell: %v", err)
			}
			// systray.Run 阻塞，放到 goroutine 中
			go tray.Start()
			go logWebAppStatus(ctx, cfg.WebAppURL)
		},
		OnBeforeClose: host.BeforeClose,
		OnShutdown: func(ctx context.Context) {
			tray.Stop()
			host.Detach()
		},
		Bind: []interface{}{
			desktop.NewBridge(shell, policy),
		},
		Menu: appMenu,
		Windows: &windows.Options{
			WebviewIsTransparent: true,
			WindowIsTranslucent:  false,
			DisableWindowIcon:    false,
		},
	})

	if err != nil {
		log.Fatal("Error:", err)
	}
}

func logWebAppStatus(ctx context.Context, target string) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	status := desktop.CheckWebApp(ctx, nil, target)
	if status.Ready {
		log.Printf("[WebApp] %s is reachable (HTTP %d)", target, status.StatusCode)
		return
	}
	log.Printf("[WebApp] Warning: %s is not reachable: %s", target, status.Error)
}
