package entity

import (
	"RpgTools/internal/core/storage"
	"RpgTools/modules/kit/errx"
)

// ErrCorruptData 表示持久化数据不能还原成一致的仓库。
var ErrCorruptData = errx.NewSys("WORLD_DATA_CORRUPT", "世界数据损坏")

// RpgData 是一个设定（setting）下的全部世界数据。
//
// 不做并发保护：宿主保证同一时刻只有一个写者。
type RpgData struct {
	setting   string
	Buildings *storage.Storage[BuildingID, Building]
	Mountains *storage.Storage[MountainID, Mountain]
	Rivers    *storage.Storage[RiverID, River]
	Streets   *storage.Storage[StreetID, Street]
	Towns     *storage.Storage[TownID, Town]
	dirty     bool
	// 最近一次落盘的快照版本
	version   uint64
}

// NewRpgData 创建空的设定数据。
func NewRpgData(setting string) *RpgData {
	return &RpgData{
		setting:   setting,
		Buildings: storage.New[BuildingID, Building](),
		Mountains: storage.New[MountainID, Mountain](),
		Rivers:    storage.New[RiverID, River](),
		Streets:   storage.New[StreetID, Street](),
		Towns:     storage.New[TownID, Town](),
	}
}

// RestoreRpgData 用持久化的元素序列重建数据，每类元素的 id 必须与位置一致。
func RestoreRpgData(s *RpgPersistSnapshot) (*RpgData, error) {
	if s == nil {
		return nil, ErrCorruptData.WithData("reason", "nil snapshot")
	}
	d := &RpgData{setting: s.Setting, version: s.Version}
	var err error
	if d.Buildings, err = storage.Load[BuildingID](s.Buildings); err != nil {
		return nil, corrupt("building", err)
	}
	if d.Mountains, err = storage.Load[MountainID](s.Mountains); err != nil {
		return nil, corrupt("mountain", err)
	}
	if d.Rivers, err = storage.Load[RiverID](s.Rivers); err != nil {
		return nil, corrupt("river", err)
	}
	if d.Streets, err = storage.Load[StreetID](s.Streets); err != nil {
		return nil, corrupt("street", err)
	}
	if d.Towns, err = storage.Load[TownID](s.Towns); err != nil {
		return nil, corrupt("town", err)
	}
	return d, nil
}

func corrupt(kind string, cause error) error {
	return ErrCorruptData.WithData("kind", kind).WithCause(cause)
}

func (d *RpgData) Setting() string {
	return d.setting
}

// Version 是数据被还原时所在的快照版本，新建的数据为 0。
func (d *RpgData) Version() uint64 {
	return d.version
}

func (d *RpgData) Dirty() bool {
	return d.dirty
}

// MarkDirty 标记数据已修改，等待下一次落盘。
func (d *RpgData) MarkDirty() {
	d.dirty = true
}

func (d *RpgData) ClearDirty() {
	d.dirty = false
}

// BuildPersistSnapshot 在数据有修改时生成深拷贝快照，快照可以交给其他 goroutine 写库。
func (d *RpgData) BuildPersistSnapshot(version uint64) (*RpgPersistSnapshot, bool) {
	if d == nil || !d.dirty {
		return nil, false
	}
	return d.Snapshot(version), true
}

// Snapshot 无条件生成深拷贝快照。
func (d *RpgData) Snapshot(version uint64) *RpgPersistSnapshot {
	s := &RpgPersistSnapshot{
		Version:   version,
		Setting:   d.setting,
		Buildings: d.Buildings.GetAll(),
		Mountains: make([]Mountain, 0, d.Mountains.Len()),
		Rivers:    make([]River, 0, d.Rivers.Len()),
		Streets:   make([]Street, 0, d.Streets.Len()),
		Towns:     make([]Town, 0, d.Towns.Len()),
	}
	d.Mountains.Each(func(_ MountainID, m *Mountain) bool {
		s.Mountains = append(s.Mountains, m.Clone())
		return true
	})
	d.Rivers.Each(func(_ RiverID, r *River) bool {
		s.Rivers = append(s.Rivers, r.Clone())
		return true
	})
	d.Streets.Each(func(_ StreetID, st *Street) bool {
		s.Streets = append(s.Streets, st.Clone())
		return true
	})
	d.Towns.Each(func(_ TownID, t *Town) bool {
		s.Towns = append(s.Towns, t.Clone())
		return true
	})
	return s
}
