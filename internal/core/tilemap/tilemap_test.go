package tilemap

import (
	"errors"
	"math"
	"testing"

	"RpgTools/internal/core/geom"
)

func TestNew_长度不符返回错误(t *testing.T) {
	if _, err := New(geom.NewSize(2, 2), []int{1, 2, 3}); !errors.Is(err, ErrShapeMismatch) {
		t.Fatalf("期望 ErrShapeMismatch, got=%v", err)
	}
	m, err := New(geom.NewSize(2, 2), []int{1, 2, 3, 4})
	if err != nil {
		t.Fatalf("期望创建成功, err=%v", err)
	}
	if v, ok := m.GetTile(3); !ok || v != 4 {
		t.Fatalf("期望 tile[3]=4, got=%d ok=%v", v, ok)
	}
}

func TestNew_复制传入的格子(t *testing.T) {
	tiles := []int{1, 2, 3, 4}
	m, err := New(geom.NewSize(2, 2), tiles)
	if err != nil {
		t.Fatalf("期望创建成功, err=%v", err)
	}
	tiles[0] = 9
	if v, _ := m.GetTile(0); v != 1 {
		t.Fatalf("期望网格不受调用方切片修改影响, got=%d", v)
	}
}

func TestNew_尺寸超过上限(t *testing.T) {
	if _, err := New(geom.NewSize(math.MaxInt, 2), []int{1, 2}); !errors.Is(err, ErrShapeMismatch) {
		t.Fatalf("期望超大尺寸返回 ErrShapeMismatch, got=%v", err)
	}
}

func TestTileMap_GetTile越界(t *testing.T) {
	m := Simple(geom.NewSize(2, 3), 7)
	if len(m.Tiles()) != 6 {
		t.Fatalf("期望 6 个格子, got=%d", len(m.Tiles()))
	}
	if _, ok := m.GetTile(6); ok {
		t.Fatalf("期望 index==len 越界")
	}
	if _, ok := m.GetTileMut(-1); ok {
		t.Fatalf("期望负下标越界")
	}
	p, _ := m.GetTileMut(5)
	*p = 9
	if v, _ := m.GetTile(5); v != 9 {
		t.Fatalf("期望原地修改生效, got=%d", v)
	}
}

func TestTileMap_下标换算(t *testing.T) {
	m := Simple(geom.NewSize(3, 2), 0)
	for i := range m.Tiles() {
		got, ok := m.ToIndex(m.ToX(i), m.ToY(i))
		if !ok || got != i {
			t.Fatalf("期望下标 %d 往返一致, got=%d", i, got)
		}
	}
	if _, ok := m.ToIndex(3, 0); ok {
		t.Fatalf("期望 x=3 越界")
	}
}

func TestTileMap_Resize_保留重叠区域(t *testing.T) {
	// 0 1 2
	// 3 4 5
	m, _ := New(geom.NewSize(3, 2), []int{0, 1, 2, 3, 4, 5})

	m.Resize(geom.NewSize(2, 3), -1)
	want := []int{0, 1, 3, 4, -1, -1}
	assertInts(t, m.Tiles(), want)

	m.Resize(geom.NewSize(4, 1), -2)
	assertInts(t, m.Tiles(), []int{0, 1, -2, -2})
	if m.Size() != geom.NewSize(4, 1) {
		t.Fatalf("期望尺寸 4x1, got=%s", m.Size())
	}
}

func TestTileMap_Resize_同尺寸不变(t *testing.T) {
	m, _ := New(geom.NewSize(2, 2), []int{1, 2, 3, 4})
	m.Resize(geom.NewSize(2, 2), 0)
	assertInts(t, m.Tiles(), []int{1, 2, 3, 4})
}

func assertInts(t *testing.T, got, want []int) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("期望长度 %d, got=%d (%v)", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("期望 %v, got=%v", want, got)
		}
	}
}
