package entity

import "fmt"

// ConstructionKind 是格子上建造物的种类。
type ConstructionKind uint8

const (
	ConstructionNone ConstructionKind = iota
	ConstructionBuilding
	ConstructionStreet
)

// Construction 是格子的占用标记，零值表示空地。
type Construction struct {
	kind     ConstructionKind
	building BuildingID
	street   StreetID
}

func NoConstruction() Construction {
	return Construction{}
}

func BuildingConstruction(id BuildingID) Construction {
	return Construction{kind: ConstructionBuilding, building: id}
}

func StreetConstruction(id StreetID) Construction {
	return Construction{kind: ConstructionStreet, street: id}
}

func (c Construction) Kind() ConstructionKind {
	return c.kind
}

func (c Construction) IsNone() bool {
	return c.kind == ConstructionNone
}

func (c Construction) BuildingID() (BuildingID, bool) {
	return c.building, c.kind == ConstructionBuilding
}

func (c Construction) StreetID() (StreetID, bool) {
	return c.street, c.kind == ConstructionStreet
}

func (c Construction) String() string {
	switch c.kind {
	case ConstructionBuilding:
		return fmt.Sprintf("building(%d)", c.building)
	case ConstructionStreet:
		return fmt.Sprintf("street(%d)", c.street)
	default:
		return "none"
	}
}

// TownTile 是城镇地图上的一格。
type TownTile struct {
	Terrain      Terrain
	Construction Construction
}

func NewTownTile(terrain Terrain) TownTile {
	return TownTile{Terrain: terrain}
}

// TownEdge 是两格之间的边，可以是街道，零值表示没有东西。
type TownEdge struct {
	street    StreetID
	hasStreet bool
}

func NoEdge() TownEdge {
	return TownEdge{}
}

func StreetEdge(id StreetID) TownEdge {
	return TownEdge{street: id, hasStreet: true}
}

func (e TownEdge) StreetID() (StreetID, bool) {
	return e.street, e.hasStreet
}

func (e TownEdge) IsNone() bool {
	return !e.hasStreet
}
