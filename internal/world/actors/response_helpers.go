package actors

import (
	"errors"

	"RpgTools/internal/shared/actor/messages"
	"RpgTools/modules/kit/errx"
)

var (
	errNilRequest = errx.ErrInvalidArgument.WithData("request", "nil")
	errNoHandler  = errx.NewSys(errx.CodeInternal, "消息没有对应的处理函数")
	errNoSetting  = errx.ErrInvalidArgument.WithData("field", "setting")
	errNotOnline  = errx.ErrUnavailable.WithData("state", "not_online")
)

func okReply(id int) *messages.Reply {
	return &messages.Reply{OK: true, ID: id}
}

func countReply(count int) *messages.Reply {
	return &messages.Reply{OK: true, Count: count}
}

// failReply 把错误转换为回复。非 errx 错误统一当作内部错误，不外泄细节。
func failReply(err error) *messages.Reply {
	var e *errx.Error
	if !errors.As(err, &e) {
		return &messages.Reply{
			Code:    string(errx.CodeInternal),
			Message: errx.ErrInternal.Msg(),
		}
	}
	return &messages.Reply{
		Code:    e.CodeText(),
		Reason:  e.Reason(),
		Message: e.Msg(),
		Data:    e.Data(),
		Biz:     e.IsBiz(),
	}
}
