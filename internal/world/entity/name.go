package entity

import (
	"strings"

	"RpgTools/modules/kit/errx"

	"golang.org/x/text/unicode/norm"
)

// ErrInvalidName 表示名字去掉首尾空白后为空。
var ErrInvalidName = errx.NewBiz("WORLD_INVALID_NAME", "名字不能为空")

// Name 是实体名字：去首尾空白、NFC 规范化、非空。
type Name struct {
	value string
}

// NewName 校验并规范化名字。
func NewName(raw string) (Name, error) {
	v := norm.NFC.String(strings.TrimSpace(raw))
	if v == "" {
		return Name{}, ErrInvalidName.WithData("raw", raw)
	}
	return Name{value: v}, nil
}

// MustName 用于测试和内置默认值，raw 非法时 panic。
func MustName(raw string) Name {
	n, err := NewName(raw)
	if err != nil {
		panic(err)
	}
	return n
}

func (n Name) String() string {
	return n.value
}

// Named 是可改名的实体。
type Named interface {
	Name() Name
	SetName(name Name)
}
