//go:build windows

package desktop

import (
	"context"
	"log"

	"github.com/wailsapp/wails/v2/pkg/runtime"
)

// BeforeClose Windows: 原生关闭按钮隐藏到托盘，close_window 命令才真正退出
func (h *WailsHost) BeforeClose(ctx context.Context) bool {
	if h.Closing() {
		log.Println("[Window] Close requested by command - exiting")
		return false
	}
	log.Println("[Window] Window close requested - hiding to tray")
	runtime.WindowHide(ctx)
	return true
}
