package app

import (
	"RpgTools/internal/core/geom"
	"RpgTools/internal/core/storage"
	"RpgTools/internal/world/entity"

	"go.uber.org/zap"
)

// CreateTown 创建给定尺寸的平原城镇。格子数超过 geom.MaxLen 时拒绝。
func (s *EditorService) CreateTown(data *entity.RpgData, size geom.Size) (entity.TownID, error) {
	if err := checkTownSize(size); err != nil {
		return 0, err
	}
	id := data.Towns.Create(func(id entity.TownID) entity.Town {
		return entity.NewTownWithSize(id, size)
	})
	s.changed(data, "create_town", zap.Int("town", int(id)), zap.Stringer("size", size))
	return id, nil
}

func checkTownSize(size geom.Size) error {
	if size.IsBounded() {
		return nil
	}
	return ErrTownTooLarge.
		WithData("width", size.Width()).
		WithData("height", size.Height()).
		WithData("max", geom.MaxLen)
}

// ResizeTown 改变城镇尺寸，保留左上角重叠区域。
//
// 只要有一座建筑的地块在新尺寸下放不下就拒绝，数据不变。
// 成功时建筑地块按原坐标换算到新宽度，被裁掉的街道、河流、山脉会解除与城镇的关联。
func (s *EditorService) ResizeTown(data *entity.RpgData, id entity.TownID, width, height int) error {
	town, err := s.getTown(data, id)
	if err != nil {
		return err
	}
	from, to := town.Size(), geom.NewSize(width, height)
	if err := checkTownSize(to); err != nil {
		return err
	}

	type move struct {
		id  entity.BuildingID
		lot entity.BuildingLot
	}
	var moves []move
	var failed []int
	data.Buildings.Each(func(bid entity.BuildingID, b *entity.Building) bool {
		lot := b.Lot()
		if lot.Town != id {
			return true
		}
		area, ok := lot.Area().Reanchor(from, to)
		if !ok || !area.IsInside(to) {
			failed = append(failed, int(bid))
			return true
		}
		lot.Tile = area.Tile
		moves = append(moves, move{id: bid, lot: lot})
		return true
	})
	if len(failed) != 0 {
		return ErrLotOutsideTown.
			WithReason(ReasonTownTooSmall).
			WithData("town", int(id)).
			WithData("size", to.String()).
			WithData("buildings", failed)
	}

	streets, rivers, mountains := townFeatures(town)
	town.Resize(to)
	for _, m := range moves {
		b, _ := data.Buildings.GetMut(m.id)
		b.SetLot(m.lot)
	}
	s.unlinkDropped(data, town, streets, rivers, mountains)
	s.changed(data, "resize_town", zap.Int("town", int(id)), zap.Stringer("from", from), zap.Stringer("to", to))
	return nil
}

// DeleteTown 删除城镇。城镇里还有建筑时拒绝。
func (s *EditorService) DeleteTown(data *entity.RpgData, id entity.TownID) error {
	if !data.Towns.Contains(id) {
		return ErrTownNotFound.WithData("town", int(id))
	}
	var blocking []int
	data.Buildings.Each(func(bid entity.BuildingID, b *entity.Building) bool {
		if b.Lot().Town == id {
			blocking = append(blocking, int(bid))
		}
		return true
	})
	if len(blocking) != 0 {
		return ErrDeleteBlocked.
			WithReason(ReasonHasBuildings).
			WithData("town", int(id)).
			WithData("buildings", blocking)
	}

	eachWithTowns(data, func(w entity.WithTowns) { w.RemoveTown(id) })

	r := data.Towns.Delete(id)
	if old, swapped := r.Swapped(); swapped {
		s.patchTownID(data, old, id)
	}
	s.changed(data, "delete_town", zap.Int("town", int(id)), zap.Stringer("outcome", r.Outcome))
	return nil
}

// patchTownID 把所有对 from 的城镇引用改成 to。
func (s *EditorService) patchTownID(data *entity.RpgData, from, to entity.TownID) {
	data.Buildings.Each(func(_ entity.BuildingID, b *entity.Building) bool {
		if lot := b.Lot(); lot.Town == from {
			lot.Town = to
			b.SetLot(lot)
		}
		return true
	})
	eachWithTowns(data, func(w entity.WithTowns) { w.ReplaceTown(from, to) })
}

func (s *EditorService) unlinkDropped(data *entity.RpgData, town *entity.Town, streets []entity.StreetID, rivers []entity.RiverID, mountains []entity.MountainID) {
	id := town.ID()
	for _, sid := range streets {
		if st, ok := data.Streets.GetMut(sid); ok && !town.ContainsStreet(sid) {
			st.RemoveTown(id)
		}
	}
	for _, rid := range rivers {
		if r, ok := data.Rivers.GetMut(rid); ok && !town.ContainsRiver(rid) {
			r.RemoveTown(id)
		}
	}
	for _, mid := range mountains {
		if m, ok := data.Mountains.GetMut(mid); ok && !town.ContainsMountain(mid) {
			m.RemoveTown(id)
		}
	}
}

// townFeatures 列出城镇里出现的街道、河流和山脉。
func townFeatures(town *entity.Town) ([]entity.StreetID, []entity.RiverID, []entity.MountainID) {
	streets := map[entity.StreetID]struct{}{}
	rivers := map[entity.RiverID]struct{}{}
	mountains := map[entity.MountainID]struct{}{}
	m := town.Map()
	for _, tile := range m.Tiles() {
		if sid, ok := tile.Construction.StreetID(); ok {
			streets[sid] = struct{}{}
		}
		if rid, ok := tile.Terrain.RiverID(); ok {
			rivers[rid] = struct{}{}
		}
		if mid, ok := tile.Terrain.MountainID(); ok {
			mountains[mid] = struct{}{}
		}
	}
	for _, edges := range [][]entity.TownEdge{m.HorizontalEdges(), m.VerticalEdges()} {
		for _, e := range edges {
			if sid, ok := e.StreetID(); ok {
				streets[sid] = struct{}{}
			}
		}
	}
	return keys(streets), keys(rivers), keys(mountains)
}

func keys[K storage.ID](m map[K]struct{}) []K {
	out := make([]K, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}

// eachWithTowns 对所有记录城镇引用的实体调用 fn。
func eachWithTowns(data *entity.RpgData, fn func(entity.WithTowns)) {
	data.Streets.Each(func(_ entity.StreetID, st *entity.Street) bool {
		fn(st)
		return true
	})
	data.Rivers.Each(func(_ entity.RiverID, r *entity.River) bool {
		fn(r)
		return true
	})
	data.Mountains.Each(func(_ entity.MountainID, m *entity.Mountain) bool {
		fn(m)
		return true
	})
}
