package app

import (
	"RpgTools/internal/core/geom"
	"RpgTools/internal/world/entity"

	"go.uber.org/zap"
)

// CreateStreet 创建一条还没有铺到任何城镇里的街道。
func (s *EditorService) CreateStreet(data *entity.RpgData) entity.StreetID {
	id := data.Streets.Create(entity.NewStreet)
	s.changed(data, "create_street", zap.Int("street", int(id)))
	return id
}

// AddStreetToTile 把空地格子铺成街道，并记录街道出现在这座城镇里。
func (s *EditorService) AddStreetToTile(data *entity.RpgData, townID entity.TownID, tileIndex int, streetID entity.StreetID) error {
	_, tile, err := s.getTile(data, townID, tileIndex)
	if err != nil {
		return err
	}
	street, ok := data.Streets.GetMut(streetID)
	if !ok {
		return ErrStreetNotFound.WithData("street", int(streetID))
	}
	if !tile.Construction.IsNone() {
		return ErrLotOccupied.
			WithData("town", int(townID)).
			WithData("tile", tileIndex).
			WithData("construction", tile.Construction.String())
	}
	tile.Construction = entity.StreetConstruction(streetID)
	street.AddTown(townID)
	s.changed(data, "add_street_to_tile", zap.Int("town", int(townID)), zap.Int("tile", tileIndex), zap.Int("street", int(streetID)))
	return nil
}

// RemoveStreetFromTile 把街道格子还原为空地；城镇里不再有这条街道时解除关联。
func (s *EditorService) RemoveStreetFromTile(data *entity.RpgData, townID entity.TownID, tileIndex int) error {
	town, tile, err := s.getTile(data, townID, tileIndex)
	if err != nil {
		return err
	}
	streetID, ok := tile.Construction.StreetID()
	if !ok {
		return ErrNotAStreet.WithData("town", int(townID)).WithData("tile", tileIndex)
	}
	tile.Construction = entity.NoConstruction()
	s.unlinkStreet(data, town, streetID)
	s.changed(data, "remove_street_from_tile", zap.Int("town", int(townID)), zap.Int("tile", tileIndex), zap.Int("street", int(streetID)))
	return nil
}

// AddStreetToEdge 把格子某一边设为街道，相邻格子共享这条边。
func (s *EditorService) AddStreetToEdge(data *entity.RpgData, townID entity.TownID, tileIndex int, side geom.Side, streetID entity.StreetID) error {
	town, err := s.getTown(data, townID)
	if err != nil {
		return err
	}
	edge, ok := town.Map().GetEdgeMut(tileIndex, side)
	if !ok {
		return ErrTileOutsideTown.WithData("town", int(townID)).WithData("tile", tileIndex)
	}
	street, ok := data.Streets.GetMut(streetID)
	if !ok {
		return ErrStreetNotFound.WithData("street", int(streetID))
	}
	if !edge.IsNone() {
		return ErrLotOccupied.
			WithReason(ReasonBlockedByStreet).
			WithData("town", int(townID)).
			WithData("tile", tileIndex).
			WithData("side", side.String())
	}
	*edge = entity.StreetEdge(streetID)
	street.AddTown(townID)
	s.changed(data, "add_street_to_edge", zap.Int("town", int(townID)), zap.Int("tile", tileIndex), zap.Stringer("side", side))
	return nil
}

// RemoveStreetFromEdge 清空格边上的街道。
func (s *EditorService) RemoveStreetFromEdge(data *entity.RpgData, townID entity.TownID, tileIndex int, side geom.Side) error {
	town, err := s.getTown(data, townID)
	if err != nil {
		return err
	}
	edge, ok := town.Map().GetEdgeMut(tileIndex, side)
	if !ok {
		return ErrTileOutsideTown.WithData("town", int(townID)).WithData("tile", tileIndex)
	}
	streetID, ok := edge.StreetID()
	if !ok {
		return ErrNotAStreet.WithData("town", int(townID)).WithData("tile", tileIndex).WithData("side", side.String())
	}
	*edge = entity.NoEdge()
	s.unlinkStreet(data, town, streetID)
	s.changed(data, "remove_street_from_edge", zap.Int("town", int(townID)), zap.Int("tile", tileIndex), zap.Stringer("side", side))
	return nil
}

// DeleteStreet 删除没有被任何城镇使用的街道。
func (s *EditorService) DeleteStreet(data *entity.RpgData, id entity.StreetID) error {
	street, ok := data.Streets.Get(id)
	if !ok {
		return ErrStreetNotFound.WithData("street", int(id))
	}
	if towns := street.Towns(); len(towns) != 0 {
		return blockedByTowns("street", int(id), towns)
	}
	r := data.Streets.Delete(id)
	if old, swapped := r.Swapped(); swapped {
		moved, _ := data.Streets.Get(id)
		for _, tid := range moved.Towns() {
			if town, ok := data.Towns.GetMut(tid); ok {
				town.ReplaceStreet(old, id)
			}
		}
	}
	s.changed(data, "delete_street", zap.Int("street", int(id)), zap.Stringer("outcome", r.Outcome))
	return nil
}

func (s *EditorService) unlinkStreet(data *entity.RpgData, town *entity.Town, id entity.StreetID) {
	if town.ContainsStreet(id) {
		return
	}
	if street, ok := data.Streets.GetMut(id); ok {
		street.RemoveTown(town.ID())
	}
}

func blockedByTowns(kind string, id int, towns []entity.TownID) error {
	ids := make([]int, len(towns))
	for i, t := range towns {
		ids[i] = int(t)
	}
	return ErrDeleteBlocked.
		WithReason(ReasonUsedByTowns).
		WithData("kind", kind).
		WithData("id", id).
		WithData("towns", ids)
}
