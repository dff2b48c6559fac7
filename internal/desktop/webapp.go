package desktop

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"net/http/httputil"
	"net/url"
	"time"
)

// NewWebAppProxy serves the web app through the wails asset server so the
// hosted pages share the origin that carries the wails bindings.
func NewWebAppProxy(target string) (http.Handler, error) {
	u, err := parseWebAppURL(target)
	if err != nil {
		return nil, err
	}
	return &httputil.ReverseProxy{
		Rewrite: func(r *httputil.ProxyRequest) {
			r.SetURL(u)
			r.SetXForwarded()
		},
		ErrorHandler: func(w http.ResponseWriter, r *http.Request, err error) {
			log.Printf("[WebApp] Proxy %s %s: %v", r.Method, r.URL.Path, err)
			http.Error(w, "番茄钟 Web 应用不可用", http.StatusBadGateway)
		},
	}, nil
}

// WebAppStatus Web 应用可达性
type WebAppStatus struct {
	URL        string `json:"url"`
	Ready      bool   `json:"ready"`
	StatusCode int    `json:"statusCode,omitempty"`
	Error      string `json:"error,omitempty"`
}

// CheckWebApp 探测 Web 应用是否可达，任何 HTTP 响应（包括 4xx）都视为在线
func CheckWebApp(ctx context.Context, client *http.Client, target string) WebAppStatus {
	status := WebAppStatus{URL: target}
	if client == nil {
		client = &http.Client{Timeout: 3 * time.Second}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		status.Error = err.Error()
		return status
	}
	resp, err := client.Do(req)
	if err != nil {
		status.Error = err.Error()
		return status
	}
	defer resp.Body.Close()

	status.StatusCode = resp.StatusCode
	status.Ready = resp.StatusCode < http.StatusInternalServerError
	if !status.Ready {
		status.Error = resp.Status
	}
	return status
}

func parseWebAppURL(target string) (*url.URL, error) {
	u, err := url.Parse(target)
	if err != nil {
		return nil, fmt.Errorf("parse web app url: %w", err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("web app url %q must be an absolute http(s) url", target)
	}
	return u, nil
}
