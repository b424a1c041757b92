package entity

import (
	"RpgTools/internal/core/geom"
	"RpgTools/internal/core/tilemap"
)

// TownMap 是城镇地图：格子存地形和建造物，格边存街道。
type TownMap = tilemap.EdgeMap[TownTile, TownEdge]

// Town 是一座城镇。
type Town struct {
	id   TownID
	name Name
	m    TownMap
}

// NewTown 创建 1x1 平原的城镇，默认名 "Town {id}"。
func NewTown(id TownID) Town {
	return NewTownWithSize(id, geom.Square(1))
}

// NewTownWithSize 创建给定尺寸、全部为平原的城镇。
func NewTownWithSize(id TownID, size geom.Size) Town {
	return Town{
		id:   id,
		name: defaultName("Town", int(id)),
		m:    tilemap.SimpleEdgeMap(size, NewTownTile(PlainTerrain()), NoEdge()),
	}
}

// RestoreTown 用持久化数据重建城镇。
func RestoreTown(id TownID, name Name, m TownMap) Town {
	return Town{id: id, name: name, m: m}
}

func (t Town) ID() TownID {
	return t.id
}

func (t Town) WithID(id TownID) Town {
	t.id = id
	return t
}

func (t *Town) Name() Name {
	return t.name
}

func (t *Town) SetName(name Name) {
	t.name = name
}

// Map 返回可修改的地图。
func (t *Town) Map() *TownMap {
	return &t.m
}

func (t *Town) Size() geom.Size {
	return t.m.Size()
}

// Clone 返回地图数组独立的副本。
func (t *Town) Clone() Town {
	return Town{id: t.id, name: t.name, m: t.m.Clone()}
}

// SetLotConstruction 把地块内所有格子设为 c。
//
// 先完整校验再写入：地块越界，或者 c 非空而某格已被占用，都返回 false 且地图不变。
// 写入空地总是允许的，用于清空旧地块。
func (t *Town) SetLotConstruction(lot tilemap.Lot, c Construction) bool {
	indices, ok := lot.Indices(t.m.Size())
	if !ok {
		return false
	}
	tiles := t.m.Tiles()
	if !c.IsNone() {
		for _, i := range indices {
			if !tiles[i].Construction.IsNone() {
				return false
			}
		}
	}
	for _, i := range indices {
		tiles[i].Construction = c
	}
	return true
}

// IsLotConstruction 判断地块内每一格都恰好是 c。
func (t *Town) IsLotConstruction(lot tilemap.Lot, c Construction) bool {
	return t.checkLot(lot, func(got Construction) bool { return got == c })
}

// CanUpdateBuilding 判断地块内每一格要么空着，要么已经属于建筑 id。
func (t *Town) CanUpdateBuilding(lot tilemap.Lot, id BuildingID) bool {
	own := BuildingConstruction(id)
	return t.checkLot(lot, func(got Construction) bool { return got.IsNone() || got == own })
}

// IsLotFree 判断地块内全是空地。
func (t *Town) IsLotFree(lot tilemap.Lot) bool {
	return t.IsLotConstruction(lot, NoConstruction())
}

func (t *Town) checkLot(lot tilemap.Lot, check func(Construction) bool) bool {
	indices, ok := lot.Indices(t.m.Size())
	if !ok {
		return false
	}
	tiles := t.m.Tiles()
	for _, i := range indices {
		if !check(tiles[i].Construction) {
			return false
		}
	}
	return true
}

// ContainsStreet 判断街道是否出现在某个格子或格边上。
func (t *Town) ContainsStreet(id StreetID) bool {
	for _, tile := range t.m.Tiles() {
		if sid, ok := tile.Construction.StreetID(); ok && sid == id {
			return true
		}
	}
	return t.anyEdge(func(e TownEdge) bool {
		sid, ok := e.StreetID()
		return ok && sid == id
	})
}

// ContainsMountain 判断是否有格子属于山脉 id。
func (t *Town) ContainsMountain(id MountainID) bool {
	for _, tile := range t.m.Tiles() {
		if mid, ok := tile.Terrain.MountainID(); ok && mid == id {
			return true
		}
	}
	return false
}

// ContainsRiver 判断是否有格子属于河 id。
func (t *Town) ContainsRiver(id RiverID) bool {
	for _, tile := range t.m.Tiles() {
		if rid, ok := tile.Terrain.RiverID(); ok && rid == id {
			return true
		}
	}
	return false
}

// CountBuildings 返回被建筑占用的格子数。
func (t *Town) CountBuildings() int {
	n := 0
	for _, tile := range t.m.Tiles() {
		if tile.Construction.Kind() == ConstructionBuilding {
			n++
		}
	}
	return n
}

// ReplaceStreet 把格子和格边上对 from 街道的引用改成 to。
func (t *Town) ReplaceStreet(from, to StreetID) {
	tiles := t.m.Tiles()
	for i := range tiles {
		if sid, ok := tiles[i].Construction.StreetID(); ok && sid == from {
			tiles[i].Construction = StreetConstruction(to)
		}
	}
	for _, edges := range [][]TownEdge{t.m.HorizontalEdges(), t.m.VerticalEdges()} {
		for i := range edges {
			if sid, ok := edges[i].StreetID(); ok && sid == from {
				edges[i] = StreetEdge(to)
			}
		}
	}
}

// ReplaceMountain 把地形里对 from 山脉的引用改成 to。
func (t *Town) ReplaceMountain(from, to MountainID) {
	tiles := t.m.Tiles()
	for i := range tiles {
		tiles[i].Terrain = tiles[i].Terrain.ReplaceMountain(from, to)
	}
}

// ReplaceRiver 把地形里对 from 河的引用改成 to。
func (t *Town) ReplaceRiver(from, to RiverID) {
	tiles := t.m.Tiles()
	for i := range tiles {
		tiles[i].Terrain = tiles[i].Terrain.ReplaceRiver(from, to)
	}
}

// Resize 改变地图尺寸，新格子为平原空地，新格边为空。
func (t *Town) Resize(size geom.Size) {
	t.m.Resize(size, NewTownTile(PlainTerrain()), NoEdge())
}

func (t *Town) anyEdge(match func(TownEdge) bool) bool {
	for _, e := range t.m.HorizontalEdges() {
		if match(e) {
			return true
		}
	}
	for _, e := range t.m.VerticalEdges() {
		if match(e) {
			return true
		}
	}
	return false
}
