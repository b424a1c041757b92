package app

import (
	"RpgTools/internal/core/storage"
	"RpgTools/internal/world/entity"
)

// namedPtr 约束 *T 能读写名字。
type namedPtr[T any] interface {
	*T
	entity.Named
}

// UpdateName 修改仓库里某个实体的名字：去首尾空白，不能为空，不能与其他实体重名。
func UpdateName[I storage.ID, T storage.Element[I, T], P namedPtr[T]](data *entity.RpgData, st *storage.Storage[I, T], id I, raw string) error {
	name, err := entity.NewName(raw)
	if err != nil {
		return err
	}
	target, ok := st.GetMut(id)
	if !ok {
		return ErrElementNotFound.WithData("id", int(id))
	}
	duplicate := false
	st.Each(func(other I, e *T) bool {
		if other != id && P(e).Name() == name {
			duplicate = true
			return false
		}
		return true
	})
	if duplicate {
		return ErrDuplicateName.WithData("name", name.String())
	}
	P(target).SetName(name)
	data.MarkDirty()
	return nil
}

// 各类实体的改名入口。

func (s *EditorService) UpdateTownName(data *entity.RpgData, id entity.TownID, raw string) error {
	if !data.Towns.Contains(id) {
		return ErrTownNotFound.WithData("town", int(id))
	}
	return UpdateName[entity.TownID, entity.Town, *entity.Town](data, data.Towns, id, raw)
}

func (s *EditorService) UpdateBuildingName(data *entity.RpgData, id entity.BuildingID, raw string) error {
	if !data.Buildings.Contains(id) {
		return ErrBuildingNotFound.WithData("building", int(id))
	}
	return UpdateName[entity.BuildingID, entity.Building, *entity.Building](data, data.Buildings, id, raw)
}

func (s *EditorService) UpdateStreetName(data *entity.RpgData, id entity.StreetID, raw string) error {
	if !data.Streets.Contains(id) {
		return ErrStreetNotFound.WithData("street", int(id))
	}
	return UpdateName[entity.StreetID, entity.Street, *entity.Street](data, data.Streets, id, raw)
}

func (s *EditorService) UpdateRiverName(data *entity.RpgData, id entity.RiverID, raw string) error {
	if !data.Rivers.Contains(id) {
		return ErrRiverNotFound.WithData("river", int(id))
	}
	return UpdateName[entity.RiverID, entity.River, *entity.River](data, data.Rivers, id, raw)
}

func (s *EditorService) UpdateMountainName(data *entity.RpgData, id entity.MountainID, raw string) error {
	if !data.Mountains.Contains(id) {
		return ErrMountainNotFound.WithData("mountain", int(id))
	}
	return UpdateName[entity.MountainID, entity.Mountain, *entity.Mountain](data, data.Mountains, id, raw)
}
