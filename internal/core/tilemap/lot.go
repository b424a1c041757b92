package tilemap

import (
	"RpgTools/internal/core/geom"
)

// Lot 是以 Tile 为左上角、大小为 Size 的矩形地块，使用时才校验是否在网格内。
type Lot struct {
	Tile int
	Size geom.Size
}

// NewLot 创建地块。
func NewLot(tile int, size geom.Size) Lot {
	return Lot{Tile: tile, Size: size}
}

// IsInside 判断地块是否完全落在 mapSize 的网格内。
// 用剩余宽高做比较，地块尺寸再大也不会溢出。
func (l Lot) IsInside(mapSize geom.Size) bool {
	if !mapSize.IsIndexInside(l.Tile) {
		return false
	}
	x, y := mapSize.ToX(l.Tile), mapSize.ToY(l.Tile)
	return l.Size.Width() <= mapSize.Width()-x && l.Size.Height() <= mapSize.Height()-y
}

// Indices 按行优先返回地块覆盖的格子下标；地块有任何部分越界时返回 false。
func (l Lot) Indices(mapSize geom.Size) ([]int, bool) {
	if !l.IsInside(mapSize) {
		return nil, false
	}
	x0, y0 := mapSize.ToX(l.Tile), mapSize.ToY(l.Tile)
	out := make([]int, 0, l.Size.Len())
	for y := y0; y < y0+l.Size.Height(); y++ {
		for x := x0; x < x0+l.Size.Width(); x++ {
			out = append(out, mapSize.ToIndexRisky(x, y))
		}
	}
	return out, true
}

// Reanchor 把地块左上角换算到新宽度的网格里，坐标不变。
func (l Lot) Reanchor(from, to geom.Size) (Lot, bool) {
	idx, ok := to.ToIndex(from.ToX(l.Tile), from.ToY(l.Tile))
	if !ok {
		return l, false
	}
	return Lot{Tile: idx, Size: l.Size}, true
}
