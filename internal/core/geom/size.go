// Package geom 提供网格使用的尺寸、方向等值类型。
package geom

import "fmt"

// MaxLen 是单个网格允许的最多格子数，两组边数组的长度也因此不会溢出。
const MaxLen = 1 << 24

// Size 是矩形网格的宽高，两维都至少为 1。
type Size struct {
	width  int
	height int
}

// NewSize 创建尺寸，小于 1 的维度归一为 1。
func NewSize(width, height int) Size {
	return Size{width: max(width, 1), height: max(height, 1)}
}

// Square 创建边长为 side 的正方形尺寸。
func Square(side int) Size {
	return NewSize(side, side)
}

func (s Size) Width() int {
	return max(s.width, 1)
}

func (s Size) Height() int {
	return max(s.height, 1)
}

// Len 返回格子总数。尺寸超过 MaxLen 时结果没有意义，先用 IsBounded 检查。
func (s Size) Len() int {
	return s.Width() * s.Height()
}

// IsBounded 判断 Width*Height 不超过 MaxLen，用除法比较避免乘法溢出。
func (s Size) IsBounded() bool {
	return s.Width() <= MaxLen/s.Height()
}

// IsInside 判断坐标 (x, y) 是否落在网格内。
func (s Size) IsInside(x, y int) bool {
	return x >= 0 && y >= 0 && x < s.Width() && y < s.Height()
}

// IsIndexInside 判断行优先下标是否有效。
func (s Size) IsIndexInside(index int) bool {
	return index >= 0 && index < s.Len()
}

// ToX 返回下标所在列，不检查越界。
func (s Size) ToX(index int) int {
	return index % s.Width()
}

// ToY 返回下标所在行，不检查越界。
func (s Size) ToY(index int) int {
	return index / s.Width()
}

// ToIndex 返回 (x, y) 的行优先下标，越界时 ok 为 false。
func (s Size) ToIndex(x, y int) (int, bool) {
	if !s.IsInside(x, y) {
		return 0, false
	}
	return s.ToIndexRisky(x, y), true
}

// ToIndexRisky 直接计算下标，调用方保证坐标在界内。
func (s Size) ToIndexRisky(x, y int) int {
	return y*s.Width() + x
}

func (s Size) String() string {
	return fmt.Sprintf("%dx%d", s.Width(), s.Height())
}
