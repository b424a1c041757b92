package tilemap

import (
	"math"
	"testing"

	"RpgTools/internal/core/geom"
)

func TestLot_Indices(t *testing.T) {
	size := geom.NewSize(3, 2)
	got, ok := NewLot(1, geom.NewSize(2, 2)).Indices(size)
	if !ok {
		t.Fatalf("期望地块在网格内")
	}
	assertInts(t, got, []int{1, 2, 4, 5})
}

func TestLot_越界(t *testing.T) {
	size := geom.NewSize(3, 2)
	cases := []Lot{
		NewLot(2, geom.NewSize(2, 1)),
		NewLot(3, geom.NewSize(1, 2)),
		NewLot(6, geom.Square(1)),
		NewLot(-1, geom.Square(1)),
	}
	for _, lot := range cases {
		if _, ok := lot.Indices(size); ok {
			t.Fatalf("期望地块 %+v 越界", lot)
		}
	}
}

func TestLot_Reanchor(t *testing.T) {
	lot := NewLot(4, geom.Square(1)) // (1,1) in 3 wide
	moved, ok := lot.Reanchor(geom.NewSize(3, 3), geom.NewSize(2, 2))
	if !ok || moved.Tile != 3 {
		t.Fatalf("期望 (1,1) 在 2 宽网格下标为 3, got=%d ok=%v", moved.Tile, ok)
	}
	if _, ok := NewLot(2, geom.Square(1)).Reanchor(geom.NewSize(3, 3), geom.NewSize(2, 2)); ok {
		t.Fatalf("期望 (2,0) 在 2x2 网格外")
	}
}

func TestLot_超大尺寸不溢出(t *testing.T) {
	size := geom.NewSize(3, 2)
	cases := []Lot{
		NewLot(1, geom.NewSize(math.MaxInt, 1)),
		NewLot(0, geom.NewSize(1, math.MaxInt)),
		NewLot(4, geom.NewSize(math.MaxInt, math.MaxInt)),
	}
	for _, lot := range cases {
		if lot.IsInside(size) {
			t.Fatalf("期望地块 %+v 不在 3x2 网格内", lot)
		}
		if _, ok := lot.Indices(size); ok {
			t.Fatalf("期望地块 %+v 越界", lot)
		}
	}
	if !NewLot(0, size).IsInside(size) {
		t.Fatalf("期望与网格同大的地块在界内")
	}
}
