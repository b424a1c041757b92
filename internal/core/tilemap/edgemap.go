package tilemap

import (
	"RpgTools/internal/core/geom"
)

// EdgeMap 在 TileMap 之外存储格子之间的边，相邻两格共用同一条边。
//
// 水平边（上、下）按 w x (h+1) 排列，垂直边（左、右）按 (w+1) x h 排列。
// 格子 i 的上边是 horizontal[i]，下边是 horizontal[i+w]，
// 左边是 vertical[i+y]，右边是 vertical[i+y+1]，其中 y 是格子所在行。
type EdgeMap[T any, E any] struct {
	TileMap[T]
	horizontal []E
	vertical   []E
}

// BorderMap 与 EdgeMap 是同一种结构，只是把边称作边界。
type BorderMap[T any, B any] = EdgeMap[T, B]

// HorizontalEdgesSize 返回水平边数组的排列尺寸。
func HorizontalEdgesSize(size geom.Size) geom.Size {
	return geom.NewSize(size.Width(), size.Height()+1)
}

// VerticalEdgesSize 返回垂直边数组的排列尺寸。
func VerticalEdgesSize(size geom.Size) geom.Size {
	return geom.NewSize(size.Width()+1, size.Height())
}

// NewEdgeMap 校验三个数组的长度后用它们的副本组装网格。
func NewEdgeMap[T any, E any](size geom.Size, tiles []T, horizontal, vertical []E) (EdgeMap[T, E], error) {
	tm, err := New(size, tiles)
	if err != nil {
		return EdgeMap[T, E]{}, err
	}
	if want := HorizontalEdgesSize(size).Len(); len(horizontal) != want {
		return EdgeMap[T, E]{}, ErrShapeMismatch.
			WithData("kind", "horizontal_edges").
			WithData("expected", want).
			WithData("actual", len(horizontal))
	}
	if want := VerticalEdgesSize(size).Len(); len(vertical) != want {
		return EdgeMap[T, E]{}, ErrShapeMismatch.
			WithData("kind", "vertical_edges").
			WithData("expected", want).
			WithData("actual", len(vertical))
	}
	return EdgeMap[T, E]{
		TileMap:    tm,
		horizontal: append([]E(nil), horizontal...),
		vertical:   append([]E(nil), vertical...),
	}, nil
}

// SimpleEdgeMap 创建格子和边都取统一初始值的网格。
func SimpleEdgeMap[T any, E any](size geom.Size, tile T, edge E) EdgeMap[T, E] {
	return EdgeMap[T, E]{
		TileMap:    Simple(size, tile),
		horizontal: filled(HorizontalEdgesSize(size).Len(), edge),
		vertical:   filled(VerticalEdgesSize(size).Len(), edge),
	}
}

// HorizontalEdges 返回底层水平边切片。
func (m *EdgeMap[T, E]) HorizontalEdges() []E {
	return m.horizontal
}

// VerticalEdges 返回底层垂直边切片。
func (m *EdgeMap[T, E]) VerticalEdges() []E {
	return m.vertical
}

// GetEdge 返回格子 tileIndex 在 side 方向的边，格子越界时 ok 为 false。
func (m *EdgeMap[T, E]) GetEdge(tileIndex int, side geom.Side) (E, bool) {
	p := m.edgeSlot(tileIndex, side)
	if p == nil {
		var zero E
		return zero, false
	}
	return *p, true
}

// GetEdgeMut 返回边的指针，在下一次 Resize 之前有效。
func (m *EdgeMap[T, E]) GetEdgeMut(tileIndex int, side geom.Side) (*E, bool) {
	p := m.edgeSlot(tileIndex, side)
	return p, p != nil
}

func (m *EdgeMap[T, E]) edgeSlot(tileIndex int, side geom.Side) *E {
	if !m.size.IsIndexInside(tileIndex) {
		return nil
	}
	edges := m.vertical
	if side.IsHorizontal() {
		edges = m.horizontal
	}
	var index int
	switch side {
	case geom.Top:
		index = tileIndex
	case geom.Bottom:
		index = BelowTile(tileIndex, m.size)
	case geom.Left:
		index = LeftOfTile(tileIndex, m.size)
	case geom.Right:
		index = RightOfTile(tileIndex, m.size)
	default:
		return nil
	}
	if index < 0 || index >= len(edges) {
		return nil
	}
	return &edges[index]
}

// Resize 分别按各自的排列尺寸调整格子和两组边，重叠坐标保值。
func (m *EdgeMap[T, E]) Resize(size geom.Size, tileFill T, edgeFill E) {
	old := m.size
	m.horizontal = resizeSlice(m.horizontal, HorizontalEdgesSize(old), HorizontalEdgesSize(size), edgeFill)
	m.vertical = resizeSlice(m.vertical, VerticalEdgesSize(old), VerticalEdgesSize(size), edgeFill)
	m.TileMap.Resize(size, tileFill)
}

// BelowTile 返回格子下边在水平边数组里的下标。
func BelowTile(tileIndex int, size geom.Size) int {
	return tileIndex + size.Width()
}

// LeftOfTile 返回格子左边在垂直边数组里的下标。
func LeftOfTile(tileIndex int, size geom.Size) int {
	return tileIndex + size.ToY(tileIndex)
}

// RightOfTile 返回格子右边在垂直边数组里的下标。
func RightOfTile(tileIndex int, size geom.Size) int {
	return LeftOfTile(tileIndex, size) + 1
}

// Clone 返回三组数组都独立的副本。
func (m *EdgeMap[T, E]) Clone() EdgeMap[T, E] {
	h := make([]E, len(m.horizontal))
	copy(h, m.horizontal)
	v := make([]E, len(m.vertical))
	copy(v, m.vertical)
	return EdgeMap[T, E]{TileMap: m.TileMap.Clone(), horizontal: h, vertical: v}
}
