package app

import (
	"RpgTools/internal/world/entity"
)

// 只读查询，给渲染和接口层使用。

// GetConstruction 返回城镇某格的建造物，城镇或格子不存在时 ok 为 false。
func GetConstruction(data *entity.RpgData, townID entity.TownID, tile int) (entity.Construction, bool) {
	town, ok := data.Towns.GetMut(townID)
	if !ok {
		return entity.Construction{}, false
	}
	t, ok := town.Map().GetTile(tile)
	if !ok {
		return entity.Construction{}, false
	}
	return t.Construction, true
}

func IsConstruction(data *entity.RpgData, townID entity.TownID, tile int, c entity.Construction) bool {
	got, ok := GetConstruction(data, townID, tile)
	return ok && got == c
}

func IsBuilding(data *entity.RpgData, townID entity.TownID, tile int, id entity.BuildingID) bool {
	return IsConstruction(data, townID, tile, entity.BuildingConstruction(id))
}

func IsStreet(data *entity.RpgData, townID entity.TownID, tile int, id entity.StreetID) bool {
	return IsConstruction(data, townID, tile, entity.StreetConstruction(id))
}

func IsFree(data *entity.RpgData, townID entity.TownID, tile int) bool {
	return IsConstruction(data, townID, tile, entity.NoConstruction())
}

// IsTerrain 判断某格的地形。
func IsTerrain(data *entity.RpgData, townID entity.TownID, tile int, terrain entity.Terrain) bool {
	town, ok := data.Towns.GetMut(townID)
	if !ok {
		return false
	}
	t, ok := town.Map().GetTile(tile)
	return ok && t.Terrain == terrain
}

// CountBuildings 返回位于城镇里的建筑数量。
func CountBuildings(data *entity.RpgData, townID entity.TownID) int {
	n := 0
	data.Buildings.Each(func(_ entity.BuildingID, b *entity.Building) bool {
		if b.Lot().Town == townID {
			n++
		}
		return true
	})
	return n
}

// ContainsTown 判断实体的城镇集合里是否有 townID。
func ContainsTown(w entity.WithTowns, townID entity.TownID) bool {
	return w != nil && w.HasTown(townID)
}
