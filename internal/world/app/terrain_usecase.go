package app

import (
	"RpgTools/internal/world/entity"

	"go.uber.org/zap"
)

func (s *EditorService) CreateRiver(data *entity.RpgData) entity.RiverID {
	id := data.Rivers.Create(entity.NewRiver)
	s.changed(data, "create_river", zap.Int("river", int(id)))
	return id
}

func (s *EditorService) CreateMountain(data *entity.RpgData) entity.MountainID {
	id := data.Mountains.Create(entity.NewMountain)
	s.changed(data, "create_mountain", zap.Int("mountain", int(id)))
	return id
}

// EditTerrain 修改一个格子的地形。引用的河流或山脉必须存在，城镇关联随之更新。
func (s *EditorService) EditTerrain(data *entity.RpgData, townID entity.TownID, tileIndex int, terrain entity.Terrain) error {
	town, tile, err := s.getTile(data, townID, tileIndex)
	if err != nil {
		return err
	}
	if err := s.checkTerrain(data, terrain); err != nil {
		return err
	}
	old := tile.Terrain
	tile.Terrain = terrain
	s.relinkTerrain(data, town, old, terrain)
	s.changed(data, "edit_terrain", zap.Int("town", int(townID)), zap.Int("tile", tileIndex), zap.Stringer("terrain", terrain))
	return nil
}

func (s *EditorService) checkTerrain(data *entity.RpgData, terrain entity.Terrain) error {
	if id, ok := terrain.MountainID(); ok && !data.Mountains.Contains(id) {
		return ErrMountainNotFound.WithData("mountain", int(id))
	}
	if id, ok := terrain.RiverID(); ok && !data.Rivers.Contains(id) {
		return ErrRiverNotFound.WithData("river", int(id))
	}
	return nil
}

// relinkTerrain 在地形从 old 变为 next 之后维护河流和山脉的城镇集合。
func (s *EditorService) relinkTerrain(data *entity.RpgData, town *entity.Town, old, next entity.Terrain) {
	if id, ok := old.MountainID(); ok && !town.ContainsMountain(id) {
		if m, ok := data.Mountains.GetMut(id); ok {
			m.RemoveTown(town.ID())
		}
	}
	if id, ok := old.RiverID(); ok && !town.ContainsRiver(id) {
		if r, ok := data.Rivers.GetMut(id); ok {
			r.RemoveTown(town.ID())
		}
	}
	if id, ok := next.MountainID(); ok {
		if m, ok := data.Mountains.GetMut(id); ok {
			m.AddTown(town.ID())
		}
	}
	if id, ok := next.RiverID(); ok {
		if r, ok := data.Rivers.GetMut(id); ok {
			r.AddTown(town.ID())
		}
	}
}

// DeleteRiver 删除没有被任何城镇使用的河流。
func (s *EditorService) DeleteRiver(data *entity.RpgData, id entity.RiverID) error {
	river, ok := data.Rivers.Get(id)
	if !ok {
		return ErrRiverNotFound.WithData("river", int(id))
	}
	if towns := river.Towns(); len(towns) != 0 {
		return blockedByTowns("river", int(id), towns)
	}
	r := data.Rivers.Delete(id)
	if old, swapped := r.Swapped(); swapped {
		moved, _ := data.Rivers.Get(id)
		for _, tid := range moved.Towns() {
			if town, ok := data.Towns.GetMut(tid); ok {
				town.ReplaceRiver(old, id)
			}
		}
	}
	s.changed(data, "delete_river", zap.Int("river", int(id)), zap.Stringer("outcome", r.Outcome))
	return nil
}

// DeleteMountain 删除没有被任何城镇使用的山脉。
func (s *EditorService) DeleteMountain(data *entity.RpgData, id entity.MountainID) error {
	mountain, ok := data.Mountains.Get(id)
	if !ok {
		return ErrMountainNotFound.WithData("mountain", int(id))
	}
	if towns := mountain.Towns(); len(towns) != 0 {
		return blockedByTowns("mountain", int(id), towns)
	}
	r := data.Mountains.Delete(id)
	if old, swapped := r.Swapped(); swapped {
		moved, _ := data.Mountains.Get(id)
		for _, tid := range moved.Towns() {
			if town, ok := data.Towns.GetMut(tid); ok {
				town.ReplaceMountain(old, id)
			}
		}
	}
	s.changed(data, "delete_mountain", zap.Int("mountain", int(id)), zap.Stringer("outcome", r.Outcome))
	return nil
}
