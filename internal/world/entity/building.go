package entity

import (
	"RpgTools/internal/core/geom"
	"RpgTools/internal/core/tilemap"
)

// BuildingLot 是建筑在某座城镇里占用的地块。
type BuildingLot struct {
	Town TownID
	Tile int
	Size geom.Size
}

// SingleTileLot 返回只占一格的地块。
func SingleTileLot(town TownID, tile int) BuildingLot {
	return BuildingLot{Town: town, Tile: tile, Size: geom.Square(1)}
}

// BigLot 返回给定尺寸的地块。
func BigLot(town TownID, tile int, size geom.Size) BuildingLot {
	return BuildingLot{Town: town, Tile: tile, Size: size}
}

// Area 返回去掉城镇信息的网格地块。
func (l BuildingLot) Area() tilemap.Lot {
	return tilemap.NewLot(l.Tile, l.Size)
}

// Building 是城镇里的一座建筑。
type Building struct {
	id   BuildingID
	name Name
	lot  BuildingLot
}

// NewBuilding 创建建筑，默认名 "Building {id}"。
func NewBuilding(id BuildingID, lot BuildingLot) Building {
	return Building{id: id, name: defaultName("Building", int(id)), lot: lot}
}

// RestoreBuilding 用持久化数据重建建筑。
func RestoreBuilding(id BuildingID, name Name, lot BuildingLot) Building {
	return Building{id: id, name: name, lot: lot}
}

func (b Building) ID() BuildingID {
	return b.id
}

func (b Building) WithID(id BuildingID) Building {
	b.id = id
	return b
}

func (b *Building) Name() Name {
	return b.name
}

func (b *Building) SetName(name Name) {
	b.name = name
}

func (b *Building) Lot() BuildingLot {
	return b.lot
}

func (b *Building) SetLot(lot BuildingLot) {
	b.lot = lot
}
