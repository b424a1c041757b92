// Package messages 定义发给编辑器 actor 的命令和回复。
//
// 消息只携带基础类型，宿主（命令行、HTTP 等）不需要依赖领域包。
package messages

// EditorMessage 是所有编辑命令的公共接口，按设定路由到对应的 EditorActor。
type EditorMessage interface {
	Setting() string
	TraceID() string
}

type EditorBase struct {
	SettingName string
	Trace       string
}

func (b EditorBase) Setting() string {
	return b.SettingName
}

func (b EditorBase) TraceID() string {
	return b.Trace
}

// Reply 是写命令的统一回复。OK 为 false 时 Code/Message 描述错误，Biz 区分业务拒绝和技术故障。
type Reply struct {
	OK      bool
	ID      int
	Count   int
	Code    string
	Reason  string
	Message string
	Data    map[string]any
	Biz     bool
}

type Side uint8

const (
	SideTop Side = iota
	SideLeft
	SideBottom
	SideRight
)
