//go:build !darwin

package desktop

import (
	"github.com/energye/systray"
)

// NewSystemTray 创建基于系统托盘的管理器
func NewSystemTray(tooltip string, icon []byte, labels Labels) *TrayManager {
	return newTrayManager(systrayBackend{}, tooltip, icon, labels)
}

type systrayBackend struct{}

func (systrayBackend) Run(onReady, onExit func()) {
	systray.Run(onReady, onExit)
}

func (systrayBackend) SetIcon(icon []byte) {
	systray.SetIcon(icon)
}

func (systrayBackend) SetTooltip(tooltip string) {
	systray.SetTooltip(tooltip)
}

// SetOnClick 左键触发 fn，右键弹出菜单
func (systrayBackend) SetOnClick(fn func()) {
	systray.SetOnClick(func(menu systray.IMenu) {
		fn()
	})
	systray.SetOnRClick(func(menu systray.IMenu) {
		menu.ShowMenu()
	})
}

func (systrayBackend) AddItem(item MenuItem, onSelect func()) {
	mi := systray.AddMenuItem(item.Label, item.Label)
	if !item.Enabled {
		mi.Disable()
	}
	mi.Click(onSelect)
}

func (systrayBackend) Quit() {
	systray.Quit()
}
