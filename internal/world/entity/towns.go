package entity

import "slices"

// WithTowns 是记录自己出现在哪些城镇里的实体（街道、河流、山脉）。
type WithTowns interface {
	Towns() []TownID
	HasTown(id TownID) bool
	AddTown(id TownID)
	RemoveTown(id TownID)
	ReplaceTown(from, to TownID)
}

// townRefs 是 WithTowns 的公共实现。
type townRefs struct {
	towns map[TownID]struct{}
}

func newTownRefs(ids []TownID) townRefs {
	r := townRefs{}
	for _, id := range ids {
		r.AddTown(id)
	}
	return r
}

// Towns 按升序返回引用的城镇。
func (r *townRefs) Towns() []TownID {
	out := make([]TownID, 0, len(r.towns))
	for id := range r.towns {
		out = append(out, id)
	}
	slices.Sort(out)
	return out
}

func (r *townRefs) HasTown(id TownID) bool {
	_, ok := r.towns[id]
	return ok
}

func (r *townRefs) AddTown(id TownID) {
	if r.towns == nil {
		r.towns = make(map[TownID]struct{}, 1)
	}
	r.towns[id] = struct{}{}
}

func (r *townRefs) RemoveTown(id TownID) {
	delete(r.towns, id)
}

// ReplaceTown 把对 from 的引用改成 to，用于城镇交换删除之后。
func (r *townRefs) ReplaceTown(from, to TownID) {
	if !r.HasTown(from) {
		return
	}
	r.RemoveTown(from)
	r.AddTown(to)
}

func (r *townRefs) TownCount() int {
	return len(r.towns)
}

func (r townRefs) clone() townRefs {
	if r.towns == nil {
		return townRefs{}
	}
	out := make(map[TownID]struct{}, len(r.towns))
	for id := range r.towns {
		out[id] = struct{}{}
	}
	return townRefs{towns: out}
}
