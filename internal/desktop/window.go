package desktop

// MainWindowName 应用配置中声明的主窗口名称
const MainWindowName = "main"

// Window 宿主运行时中的一个原生窗口
type Window interface {
	Name() string
	Show() error
	Focus() error
	Close() error
	Minimise() error
}

// WindowHost 宿主运行时的窗口注册表。
// Shell 只查询和修改窗口，从不创建或销毁窗口。
type WindowHost interface {
	Window(name string) (Window, bool)
}
