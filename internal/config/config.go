package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"

	"github.com/bytedance/sonic"
)

const (
	// FileName is the optional settings file inside the data directory.
	FileName = "widget.json"

	// EnvWebAppURL overrides the web app address.
	EnvWebAppURL = "POMODORO_WIDGET_URL"
	// EnvDataDir overrides the data directory.
	EnvDataDir = "POMODORO_WIDGET_DATA_DIR"
)

// Labels holds the tray menu text.
type Labels struct {
	Open      string `json:"open"`
	Separator string `json:"separator"`
	Quit      string `json:"quit"`
}

// Config is the resolved widget configuration.
type Config struct {
	WebAppURL   string `json:"webAppUrl"`
	WindowName  string `json:"windowName"`
	Title       string `json:"title"`
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	AlwaysOnTop bool   `json:"alwaysOnTop"`
	Frameless   bool   `json:"frameless"`
	Tooltip     string `json:"tooltip"`
	Labels      Labels `json:"labels"`
	ErrorPolicy string `json:"errorPolicy"`

	// DataDir is where the settings file was looked up. Not read from the file.
	DataDir string `json:"-"`
}

// Overrides carries command line values. Empty fields are ignored.
type Overrides struct {
	DataDir   string
	WebAppURL string
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		WebAppURL:   "http://localhost:3000",
		WindowName:  "main",
		Title:       "番茄钟 Widget",
		Width:       360,
		Height:      220,
		AlwaysOnTop: true,
		Frameless:   true,
		Tooltip:     "番茄钟 Widget",
		Labels: Labels{
			Open:      "打开番茄钟",
			Separator: "-",
			Quit:      "退出",
		},
		ErrorPolicy: "discard",
	}
}

// DefaultDataDir returns ~/.config/pomodoro-widget
func DefaultDataDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if home dir is unavailable
		return "."
	}
	return filepath.Join(homeDir, ".config", "pomodoro-widget")
}

// Resolve builds the configuration. Precedence: flag > env > widget.json > defaults.
func Resolve(o Overrides, getenv func(string) string) (Config, error) {
	cfg := Default()

	switch {
	case o.DataDir != "":
		cfg.DataDir = o.DataDir
	case getenv(EnvDataDir) != "":
		cfg.DataDir = getenv(EnvDataDir)
	default:
		cfg.DataDir = DefaultDataDir()
	}

	if err := LoadFile(filepath.Join(cfg.DataDir, FileName), &cfg); err != nil {
		return Config{}, err
	}

	if v := getenv(EnvWebAppURL); v != "" {
		cfg.WebAppURL = v
	}
	if o.WebAppURL != "" {
		cfg.WebAppURL = o.WebAppURL
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadFile decodes path over cfg. Fields absent from the file keep their
// current values. A missing file is not an error.
func LoadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	dataDir := cfg.DataDir
	if err := sonic.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	cfg.DataDir = dataDir
	return nil
}

// Validate checks the values the shell cannot start without.
func (c Config) Validate() error {
	u, err := url.Parse(c.WebAppURL)
	if err != nil {
		return fmt.Errorf("invalid web app url: %w", err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("web app url %q must be an absolute http(s) url", c.WebAppURL)
	}
	if c.WindowName == "" {
		return errors.New("window name must not be empty")
	}
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("invalid window size %dx%d", c.Width, c.Height)
	}
	return nil
}
