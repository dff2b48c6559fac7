//go:build !windows

package desktop

import (
	"bytes"
	_ "embed"
	"image"
	_ "image/png"
)

// The unix tray converts the icon to a pixmap with image.Decode, which only
// knows PNG there.
//
//go:embed icon.png
var iconData []byte

// TrayIcon 返回编译时嵌入的托盘图标
func TrayIcon() []byte {
	return iconData
}

func checkIcon(icon []byte) error {
	_, _, err := image.DecodeConfig(bytes.NewReader(icon))
	return err
}
