//go:build windows

package desktop

import (
	"bytes"
	_ "embed"
	"errors"
)

// Windows 托盘需要 ICO
//
//go:embed icon.ico
var iconData []byte

var icoHeader = []byte{0x00, 0x00, 0x01, 0x00}

// TrayIcon 返回编译时嵌入的托盘图标
func TrayIcon() []byte {
	return iconData
}

func checkIcon(icon []byte) error {
	if len(icon) < 6 || !bytes.HasPrefix(icon, icoHeader) {
		return errors.New("not an ICO image")
	}
	return nil
}
