package entity

import "fmt"

// TerrainKind 是地形种类。
type TerrainKind uint8

const (
	TerrainPlain TerrainKind = iota
	TerrainHill
	TerrainMountain
	TerrainRiver
)

func (k TerrainKind) String() string {
	switch k {
	case TerrainPlain:
		return "plain"
	case TerrainHill:
		return "hill"
	case TerrainMountain:
		return "mountain"
	case TerrainRiver:
		return "river"
	default:
		return "unknown"
	}
}

// Terrain 是格子的地形。丘陵和山地属于某座山脉，河流属于某条河。
type Terrain struct {
	kind     TerrainKind
	mountain MountainID
	river    RiverID
}

func PlainTerrain() Terrain {
	return Terrain{kind: TerrainPlain}
}

func HillTerrain(id MountainID) Terrain {
	return Terrain{kind: TerrainHill, mountain: id}
}

func MountainTerrain(id MountainID) Terrain {
	return Terrain{kind: TerrainMountain, mountain: id}
}

func RiverTerrain(id RiverID) Terrain {
	return Terrain{kind: TerrainRiver, river: id}
}

func (t Terrain) Kind() TerrainKind {
	return t.kind
}

// MountainID 返回丘陵或山地所属的山脉。
func (t Terrain) MountainID() (MountainID, bool) {
	if t.kind == TerrainHill || t.kind == TerrainMountain {
		return t.mountain, true
	}
	return 0, false
}

// RiverID 返回河流地形所属的河。
func (t Terrain) RiverID() (RiverID, bool) {
	if t.kind == TerrainRiver {
		return t.river, true
	}
	return 0, false
}

// ReplaceMountain 把对 from 山脉的引用改成 to。
func (t Terrain) ReplaceMountain(from, to MountainID) Terrain {
	if id, ok := t.MountainID(); ok && id == from {
		t.mountain = to
	}
	return t
}

// ReplaceRiver 把对 from 河的引用改成 to。
func (t Terrain) ReplaceRiver(from, to RiverID) Terrain {
	if id, ok := t.RiverID(); ok && id == from {
		t.river = to
	}
	return t
}

func (t Terrain) String() string {
	switch t.kind {
	case TerrainHill, TerrainMountain:
		return fmt.Sprintf("%s(%d)", t.kind, t.mountain)
	case TerrainRiver:
		return fmt.Sprintf("%s(%d)", t.kind, t.river)
	default:
		return t.kind.String()
	}
}
