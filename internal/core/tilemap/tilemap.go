// Package tilemap 提供行优先存储的二维格子网格，以及带格边的变体。
package tilemap

import (
	"RpgTools/internal/core/geom"
	"RpgTools/modules/kit/errx"
)

// ErrShapeMismatch 表示传入的格子数量与尺寸不符。
var ErrShapeMismatch = errx.NewBiz("CORE_SHAPE_MISMATCH", "格子数量与尺寸不一致")

// TileMap 是 w*h 个格子的稠密网格，下标 i 对应 (i%w, i/w)。
type TileMap[T any] struct {
	size  geom.Size
	tiles []T
}

// New 用给定格子的副本创建网格，len(tiles) 必须等于 size.Len()。
// 调用方之后修改 tiles 不会影响网格。
func New[T any](size geom.Size, tiles []T) (TileMap[T], error) {
	if !size.IsBounded() {
		return TileMap[T]{}, ErrShapeMismatch.
			WithData("kind", "tiles").
			WithData("size", size.String()).
			WithData("max", geom.MaxLen)
	}
	if len(tiles) != size.Len() {
		return TileMap[T]{}, ErrShapeMismatch.
			WithData("kind", "tiles").
			WithData("size", size.String()).
			WithData("expected", size.Len()).
			WithData("actual", len(tiles))
	}
	return TileMap[T]{size: size, tiles: append([]T(nil), tiles...)}, nil
}

// Simple 创建所有格子都是 value 的网格。
func Simple[T any](size geom.Size, value T) TileMap[T] {
	return TileMap[T]{size: size, tiles: filled(size.Len(), value)}
}

func (m *TileMap[T]) Size() geom.Size {
	return m.size
}

// Tiles 返回底层格子切片，按行优先排列。
func (m *TileMap[T]) Tiles() []T {
	return m.tiles
}

func (m *TileMap[T]) GetTile(index int) (T, bool) {
	if !m.size.IsIndexInside(index) || index >= len(m.tiles) {
		var zero T
		return zero, false
	}
	return m.tiles[index], true
}

// GetTileMut 返回格子的指针，在下一次 Resize 之前有效。
func (m *TileMap[T]) GetTileMut(index int) (*T, bool) {
	if !m.size.IsIndexInside(index) || index >= len(m.tiles) {
		return nil, false
	}
	return &m.tiles[index], true
}

func (m *TileMap[T]) ToIndex(x, y int) (int, bool) {
	return m.size.ToIndex(x, y)
}

func (m *TileMap[T]) ToX(index int) int {
	return m.size.ToX(index)
}

func (m *TileMap[T]) ToY(index int) int {
	return m.size.ToY(index)
}

// Resize 改变尺寸，左上角重叠区域的格子保持在原坐标，新增格子为 fill。
func (m *TileMap[T]) Resize(size geom.Size, fill T) {
	m.tiles = resizeSlice(m.tiles, m.size, size, fill)
	m.size = size
}

// resizeSlice 把按 from 排列的数据搬到按 to 排列的新切片里，重叠坐标保值。
func resizeSlice[T any](data []T, from, to geom.Size, fill T) []T {
	out := make([]T, 0, to.Len())
	for y := 0; y < to.Height(); y++ {
		for x := 0; x < to.Width(); x++ {
			if x < from.Width() && y < from.Height() {
				if i := from.ToIndexRisky(x, y); i < len(data) {
					out = append(out, data[i])
					continue
				}
			}
			out = append(out, fill)
		}
	}
	return out
}

func filled[T any](n int, value T) []T {
	out := make([]T, n)
	for i := range out {
		out[i] = value
	}
	return out
}

// Clone 返回不与原网格共享底层数组的副本。
func (m *TileMap[T]) Clone() TileMap[T] {
	out := make([]T, len(m.tiles))
	copy(out, m.tiles)
	return TileMap[T]{size: m.size, tiles: out}
}
