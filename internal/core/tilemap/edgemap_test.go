package tilemap

import (
	"errors"
	"testing"

	"RpgTools/internal/core/geom"
)

func TestEdgeMap_边数组长度(t *testing.T) {
	m := SimpleEdgeMap(geom.NewSize(4, 3), 0, "")
	if len(m.HorizontalEdges()) != 4*4 {
		t.Fatalf("期望水平边 16 条, got=%d", len(m.HorizontalEdges()))
	}
	if len(m.VerticalEdges()) != 5*3 {
		t.Fatalf("期望垂直边 15 条, got=%d", len(m.VerticalEdges()))
	}
}

func TestNewEdgeMap_校验三组长度(t *testing.T) {
	size := geom.NewSize(2, 2)
	tiles := make([]int, 4)
	if _, err := NewEdgeMap(size, tiles, make([]int, 6), make([]int, 6)); err != nil {
		t.Fatalf("期望长度正确时成功, err=%v", err)
	}
	if _, err := NewEdgeMap(size, tiles, make([]int, 5), make([]int, 6)); !errors.Is(err, ErrShapeMismatch) {
		t.Fatalf("期望水平边长度不符报错, got=%v", err)
	}
	if _, err := NewEdgeMap(size, tiles, make([]int, 6), make([]int, 4)); !errors.Is(err, ErrShapeMismatch) {
		t.Fatalf("期望垂直边长度不符报错, got=%v", err)
	}
	if _, err := NewEdgeMap(size, make([]int, 3), make([]int, 6), make([]int, 6)); !errors.Is(err, ErrShapeMismatch) {
		t.Fatalf("期望格子长度不符报错, got=%v", err)
	}
}

func TestNewEdgeMap_复制传入的边(t *testing.T) {
	h, v := make([]int, 2), make([]int, 2)
	m, err := NewEdgeMap(geom.NewSize(1, 1), []int{0}, h, v)
	if err != nil {
		t.Fatalf("期望创建成功, err=%v", err)
	}
	h[0], v[1] = 7, 8
	if e, _ := m.GetEdge(0, geom.Top); e != 0 {
		t.Fatalf("期望水平边不受调用方切片修改影响, got=%d", e)
	}
	if e, _ := m.GetEdge(0, geom.Right); e != 0 {
		t.Fatalf("期望垂直边不受调用方切片修改影响, got=%d", e)
	}
}

func TestEdgeMap_相邻格共享边(t *testing.T) {
	m := SimpleEdgeMap(geom.NewSize(3, 3), 0, 0)
	// 给每条边写入唯一值，再按边比较
	for i := range m.HorizontalEdges() {
		m.HorizontalEdges()[i] = 100 + i
	}
	for i := range m.VerticalEdges() {
		m.VerticalEdges()[i] = 200 + i
	}
	pairs := []struct {
		a     int
		aSide geom.Side
		b     int
		bSide geom.Side
	}{
		{4, geom.Top, 1, geom.Bottom},
		{4, geom.Left, 3, geom.Right},
		{4, geom.Bottom, 7, geom.Top},
		{4, geom.Right, 5, geom.Left},
	}
	for _, p := range pairs {
		ea, okA := m.GetEdge(p.a, p.aSide)
		eb, okB := m.GetEdge(p.b, p.bSide)
		if !okA || !okB || ea != eb {
			t.Fatalf("期望 (%d,%s) 与 (%d,%s) 是同一条边, got=%d %d", p.a, p.aSide, p.b, p.bSide, ea, eb)
		}
	}
	if _, ok := m.GetEdge(9, geom.Top); ok {
		t.Fatalf("期望格子越界时取不到边")
	}
}

func TestEdgeMap_下标公式(t *testing.T) {
	size := geom.NewSize(3, 3)
	m := SimpleEdgeMap(size, 0, 0)
	for i := range m.HorizontalEdges() {
		m.HorizontalEdges()[i] = i
	}
	for i := range m.VerticalEdges() {
		m.VerticalEdges()[i] = i
	}
	// 格子 5 位于 (2,1)
	cases := []struct {
		side geom.Side
		want int
	}{
		{geom.Top, 5},
		{geom.Bottom, 8},
		{geom.Left, 6},
		{geom.Right, 7},
	}
	for _, c := range cases {
		if got, _ := m.GetEdge(5, c.side); got != c.want {
			t.Fatalf("期望格子 5 的 %s 边下标 %d, got=%d", c.side, c.want, got)
		}
	}
}

func TestEdgeMap_GetEdgeMut写入对邻格可见(t *testing.T) {
	m := SimpleEdgeMap(geom.NewSize(2, 2), 0, "")
	p, ok := m.GetEdgeMut(0, geom.Right)
	if !ok {
		t.Fatalf("期望取到边")
	}
	*p = "wall"
	if e, _ := m.GetEdge(1, geom.Left); e != "wall" {
		t.Fatalf("期望右邻格的左边可见写入, got=%q", e)
	}
}

func TestEdgeMap_Resize_各数组独立保值(t *testing.T) {
	m := SimpleEdgeMap(geom.NewSize(2, 2), 0, 0)
	top, _ := m.GetEdgeMut(0, geom.Top)
	*top = 1
	bottom, _ := m.GetEdgeMut(3, geom.Bottom)
	*bottom = 2
	right, _ := m.GetEdgeMut(1, geom.Right)
	*right = 3
	tile, _ := m.GetTileMut(3)
	*tile = 4

	m.Resize(geom.NewSize(3, 3), -1, -1)

	if len(m.HorizontalEdges()) != 12 || len(m.VerticalEdges()) != 12 || len(m.Tiles()) != 9 {
		t.Fatalf("期望按新尺寸重排三组数组")
	}
	if e, _ := m.GetEdge(0, geom.Top); e != 1 {
		t.Fatalf("期望 (0,0) 上边保值, got=%d", e)
	}
	// 原 (1,1) 的下边是水平边 (1,2)，新网格里是格子 (1,2) 的上边
	idx, _ := m.ToIndex(1, 2)
	if e, _ := m.GetEdge(idx, geom.Top); e != 2 {
		t.Fatalf("期望原下边保留在相同坐标, got=%d", e)
	}
	// 原 (1,0) 右边是垂直边 (2,0)，新网格里是格子 (2,0) 的左边
	if e, _ := m.GetEdge(2, geom.Left); e != 3 {
		t.Fatalf("期望原右边保留在相同坐标, got=%d", e)
	}
	idx, _ = m.ToIndex(1, 1)
	if v, _ := m.GetTile(idx); v != 4 {
		t.Fatalf("期望 (1,1) 格子保值, got=%d", v)
	}
	if e, _ := m.GetEdge(8, geom.Right); e != -1 {
		t.Fatalf("期望新增边为默认值, got=%d", e)
	}
}

func TestBorderMap_是EdgeMap别名(t *testing.T) {
	var b BorderMap[int, bool] = SimpleEdgeMap(geom.Square(1), 0, true)
	if v, ok := b.GetEdge(0, geom.Left); !ok || !v {
		t.Fatalf("期望 BorderMap 与 EdgeMap 行为一致")
	}
}

func TestEdgeMap_Clone_互不影响(t *testing.T) {
	m := SimpleEdgeMap(geom.NewSize(2, 1), 1, 1)
	c := m.Clone()
	p, _ := m.GetEdgeMut(0, geom.Top)
	*p = 5
	q, _ := m.GetTileMut(0)
	*q = 5
	if e, _ := c.GetEdge(0, geom.Top); e != 1 {
		t.Fatalf("期望副本的边不受影响, got=%d", e)
	}
	if v, _ := c.GetTile(0); v != 1 {
		t.Fatalf("期望副本的格子不受影响, got=%d", v)
	}
}
