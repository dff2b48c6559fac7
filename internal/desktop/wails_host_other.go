//go:build !windows

package desktop

import (
	"context"
	"log"
)

// BeforeClose 非 Windows: 允许正常退出
func (h *WailsHost) BeforeClose(ctx context.Context) bool {
	log.Println("[Window] Window close requested")
	h.markClosing()
	return false
}
