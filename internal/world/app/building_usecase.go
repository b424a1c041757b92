package app

import (
	"RpgTools/internal/core/geom"
	"RpgTools/internal/world/entity"

	"go.uber.org/zap"
)

// CreateBuilding 在空闲地块上创建建筑。
func (s *EditorService) CreateBuilding(data *entity.RpgData, lot entity.BuildingLot) (entity.BuildingID, error) {
	town, err := s.getTown(data, lot.Town)
	if err != nil {
		return 0, err
	}
	if err := checkLotFree(town, lot); err != nil {
		return 0, err
	}
	id := data.Buildings.Create(func(id entity.BuildingID) entity.Building {
		return entity.NewBuilding(id, lot)
	})
	// 上面已经确认地块空闲，这里不会失败
	town.SetLotConstruction(lot.Area(), entity.BuildingConstruction(id))
	s.changed(data, "create_building", zap.Int("building", int(id)), zap.Int("town", int(lot.Town)), zap.Int("tile", lot.Tile))
	return id, nil
}

// ResizeBuilding 原地改变建筑尺寸，锚点不变。
//
// 新地块里只能有空地或者这座建筑自己。先清空旧地块再写入新地块，
// 写入失败时城镇保持清空状态并返回系统错误，不会出现两座建筑重叠。
func (s *EditorService) ResizeBuilding(data *entity.RpgData, id entity.BuildingID, width, height int) error {
	b, ok := data.Buildings.GetMut(id)
	if !ok {
		return ErrBuildingNotFound.WithData("building", int(id))
	}
	old := b.Lot()
	town, err := s.getTown(data, old.Town)
	if err != nil {
		return err
	}
	next := entity.BigLot(old.Town, old.Tile, geom.NewSize(width, height))
	if !next.Area().IsInside(town.Size()) {
		return ErrLotOutsideTown.
			WithReason(ReasonTownTooSmall).
			WithData("building", int(id)).
			WithData("size", next.Size.String())
	}
	if !town.CanUpdateBuilding(next.Area(), id) {
		return ErrLotOccupied.
			WithReason(ReasonBlockedByBuilding).
			WithData("building", int(id)).
			WithData("size", next.Size.String())
	}

	if !town.SetLotConstruction(old.Area(), entity.NoConstruction()) {
		data.MarkDirty()
		return ErrInternal.WithReason(ReasonLotClearFailed).WithData("building", int(id))
	}
	if !town.SetLotConstruction(next.Area(), entity.BuildingConstruction(id)) {
		data.MarkDirty()
		s.log.Warn("resize_building left lot cleared", zap.Int("building", int(id)))
		return ErrInternal.WithReason(ReasonLotApplyFailed).WithData("building", int(id))
	}
	b.SetLot(next)
	s.changed(data, "resize_building", zap.Int("building", int(id)), zap.Stringer("size", next.Size))
	return nil
}

// DeleteBuilding 删除建筑并清空它的地块。
//
// 交换删除时，被移动的建筑换了 id，它地块上的标记要同步改写。
func (s *EditorService) DeleteBuilding(data *entity.RpgData, id entity.BuildingID) error {
	r := data.Buildings.Delete(id)
	if !r.Found() {
		return ErrBuildingNotFound.WithData("building", int(id))
	}
	if _, swapped := r.Swapped(); swapped {
		moved, _ := data.Buildings.Get(id)
		if town, ok := data.Towns.GetMut(moved.Lot().Town); ok {
			area := moved.Lot().Area()
			town.SetLotConstruction(area, entity.NoConstruction())
			town.SetLotConstruction(area, entity.BuildingConstruction(id))
		}
	}
	if town, ok := data.Towns.GetMut(r.Element.Lot().Town); ok {
		town.SetLotConstruction(r.Element.Lot().Area(), entity.NoConstruction())
	}
	s.changed(data, "delete_building", zap.Int("building", int(id)), zap.Stringer("outcome", r.Outcome))
	return nil
}

func checkLotFree(town *entity.Town, lot entity.BuildingLot) error {
	area := lot.Area()
	if !area.IsInside(town.Size()) {
		return ErrLotOutsideTown.
			WithData("town", int(lot.Town)).
			WithData("tile", lot.Tile).
			WithData("size", lot.Size.String())
	}
	if !town.IsLotFree(area) {
		return ErrLotOccupied.
			WithData("town", int(lot.Town)).
			WithData("tile", lot.Tile).
			WithData("size", lot.Size.String())
	}
	return nil
}
