package errx

// 通用系统类错误码。各领域的业务错误码在自己的包里定义。
const (
	// CodeInternal 兜底的内部错误。
	CodeInternal Code = "INTERNAL_ERROR"
	// CodeUnavailable 依赖不可用（数据库、存储、actor 已停止等）。
	CodeUnavailable Code = "SERVICE_UNAVAILABLE"
	// CodeTimeout 请求或依赖调用超时。
	CodeTimeout Code = "TIMEOUT"
	// CodeInvalidArgument 调用方传入的参数不合法。
	CodeInvalidArgument Code = "INVALID_ARGUMENT"
)

var (
	ErrInternal        = NewSys(CodeInternal, "内部错误")
	ErrUnavailable     = NewSys(CodeUnavailable, "服务不可用")
	ErrTimeout         = NewSys(CodeTimeout, "请求超时")
	ErrInvalidArgument = NewBiz(CodeInvalidArgument, "参数不合法")
)
