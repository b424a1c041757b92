package entity

import (
	"testing"

	"RpgTools/internal/core/geom"
	"RpgTools/internal/core/tilemap"
)

func constructions(t *Town) []Construction {
	out := make([]Construction, 0, len(t.Map().Tiles()))
	for _, tile := range t.Map().Tiles() {
		out = append(out, tile.Construction)
	}
	return out
}

func assertConstructions(t *testing.T, town *Town, want ...Construction) {
	t.Helper()
	got := constructions(town)
	if len(got) != len(want) {
		t.Fatalf("期望 %d 个格子, got=%d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("期望建造物 %v, got=%v", want, got)
		}
	}
}

func TestNewTown_默认值(t *testing.T) {
	town := NewTown(3)
	if town.Name().String() != "Town 3" {
		t.Fatalf("期望默认名 Town 3, got=%s", town.Name())
	}
	if town.Size() != geom.Square(1) {
		t.Fatalf("期望 1x1, got=%s", town.Size())
	}
	tile, _ := town.Map().GetTile(0)
	if tile.Terrain != PlainTerrain() || !tile.Construction.IsNone() {
		t.Fatalf("期望平原空地, got=%+v", tile)
	}
}

func TestSetLotConstruction_成功写入整块(t *testing.T) {
	town := NewTownWithSize(0, geom.NewSize(3, 2))
	b := BuildingConstruction(0)
	if !town.SetLotConstruction(tilemap.NewLot(0, geom.NewSize(2, 1)), b) {
		t.Fatalf("期望放置成功")
	}
	none := NoConstruction()
	assertConstructions(t, &town, b, b, none, none, none, none)
	if !town.IsLotConstruction(tilemap.NewLot(0, geom.NewSize(2, 1)), b) {
		t.Fatalf("期望 IsLotConstruction 为 true")
	}
}

func TestSetLotConstruction_冲突时不改变任何格子(t *testing.T) {
	town := NewTownWithSize(0, geom.NewSize(3, 2))
	other := BuildingConstruction(1)
	if !town.SetLotConstruction(tilemap.NewLot(5, geom.Square(1)), other) {
		t.Fatalf("期望预置建筑成功")
	}
	before := constructions(&town)

	// 地块覆盖 1,2,4,5，最后一格冲突
	if town.SetLotConstruction(tilemap.NewLot(1, geom.Square(2)), BuildingConstruction(2)) {
		t.Fatalf("期望冲突时失败")
	}
	assertConstructions(t, &town, before...)
}

func TestSetLotConstruction_越界时不改变任何格子(t *testing.T) {
	town := NewTownWithSize(0, geom.NewSize(3, 2))
	if town.SetLotConstruction(tilemap.NewLot(2, geom.NewSize(2, 1)), BuildingConstruction(0)) {
		t.Fatalf("期望越界失败")
	}
	for _, c := range constructions(&town) {
		if !c.IsNone() {
			t.Fatalf("期望不发生半写, got=%v", constructions(&town))
		}
	}
}

func TestSetLotConstruction_写空地总是成功(t *testing.T) {
	town := NewTownWithSize(0, geom.NewSize(2, 1))
	lot := tilemap.NewLot(0, geom.NewSize(2, 1))
	town.SetLotConstruction(lot, StreetConstruction(4))
	if !town.SetLotConstruction(lot, NoConstruction()) {
		t.Fatalf("期望清空成功")
	}
	if !town.IsLotFree(lot) {
		t.Fatalf("期望清空后为空地")
	}
}

func TestCanUpdateBuilding(t *testing.T) {
	town := NewTownWithSize(0, geom.NewSize(2, 2))
	town.SetLotConstruction(tilemap.NewLot(0, geom.Square(1)), BuildingConstruction(0))
	town.SetLotConstruction(tilemap.NewLot(3, geom.Square(1)), BuildingConstruction(1))

	if !town.CanUpdateBuilding(tilemap.NewLot(0, geom.NewSize(2, 1)), 0) {
		t.Fatalf("期望自己的格子和空格可以更新")
	}
	if town.CanUpdateBuilding(tilemap.NewLot(0, geom.Square(2)), 0) {
		t.Fatalf("期望被其他建筑挡住")
	}
	if town.CanUpdateBuilding(tilemap.NewLot(1, geom.Square(2)), 1) {
		t.Fatalf("期望越界时不能更新")
	}
}

func TestTown_街道与地形引用替换(t *testing.T) {
	town := NewTownWithSize(0, geom.NewSize(2, 2))
	tile, _ := town.Map().GetTileMut(0)
	tile.Construction = StreetConstruction(3)
	tile.Terrain = HillTerrain(5)
	edge, _ := town.Map().GetEdgeMut(2, geom.Right)
	*edge = StreetEdge(3)
	river, _ := town.Map().GetTileMut(1)
	river.Terrain = RiverTerrain(7)

	town.ReplaceStreet(3, 1)
	town.ReplaceMountain(5, 0)
	town.ReplaceRiver(7, 2)

	if town.ContainsStreet(3) || !town.ContainsStreet(1) {
		t.Fatalf("期望街道 3 被替换为 1")
	}
	if e, _ := town.Map().GetEdge(3, geom.Left); e != StreetEdge(1) {
		t.Fatalf("期望格边上的街道也被替换, got=%+v", e)
	}
	if town.ContainsMountain(5) || !town.ContainsMountain(0) {
		t.Fatalf("期望山脉 5 被替换为 0")
	}
	if town.ContainsRiver(7) || !town.ContainsRiver(2) {
		t.Fatalf("期望河 7 被替换为 2")
	}
}

func TestTown_ContainsStreet_只在格边上(t *testing.T) {
	town := NewTownWithSize(0, geom.NewSize(2, 1))
	edge, _ := town.Map().GetEdgeMut(0, geom.Top)
	*edge = StreetEdge(0)
	if !town.ContainsStreet(0) {
		t.Fatalf("期望识别格边上的街道")
	}
}

func TestTown_Clone_地图独立(t *testing.T) {
	town := NewTownWithSize(0, geom.NewSize(2, 1))
	c := town.Clone()
	town.SetLotConstruction(tilemap.NewLot(0, geom.Square(1)), BuildingConstruction(0))
	if !c.IsLotFree(tilemap.NewLot(0, geom.NewSize(2, 1))) {
		t.Fatalf("期望副本不受原城镇修改影响")
	}
}
