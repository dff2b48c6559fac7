package desktop

import "fmt"

// ErrorPolicy decides what the web content learns about command outcomes.
type ErrorPolicy string

const (
	// PolicyDiscard 命令结果不返回给网页
	PolicyDiscard ErrorPolicy = "discard"
	// PolicyReport Invoke 把 CommandResult 返回给网页
	PolicyReport ErrorPolicy = "report"
)

// ParseErrorPolicy 解析配置中的策略，空值为 PolicyDiscard
func ParseErrorPolicy(s string) (ErrorPolicy, error) {
	switch ErrorPolicy(s) {
	case "", PolicyDiscard:
		return PolicyDiscard, nil
	case PolicyReport:
		return PolicyReport, nil
	}
	return "", fmt.Errorf("unknown error policy %q", s)
}

// Bridge is bound into the webview. Only its methods are callable from the
// hosted content.
type Bridge struct {
	shell  *Shell
	policy ErrorPolicy
}

// NewBridge 创建绑定到 webview 的命令桥
func NewBridge(shell *Shell, policy ErrorPolicy) *Bridge {
	return &Bridge{shell: shell, policy: policy}
}

// CloseWindow 关闭主窗口
func (b *Bridge) CloseWindow() {
	b.shell.Invoke(CommandCloseWindow)
}

// MinimizeWindow 最小化主窗口
func (b *Bridge) MinimizeWindow() {
	b.shell.Invoke(CommandMinimizeWindow)
}

// OpenWebApp 在默认浏览器中打开 Web 应用
func (b *Bridge) OpenWebApp() {
	b.shell.Invoke(CommandOpenWebApp)
}

// Invoke runs a command by its wire name. Under PolicyDiscard the result is
// nil regardless of outcome.
func (b *Bridge) Invoke(name string) *CommandResult {
	res := b.shell.Invoke(name)
	if b.policy != PolicyReport {
		return nil
	}
	return &res
}
