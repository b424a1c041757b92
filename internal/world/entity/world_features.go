package entity

// Street 是可以跨多个城镇的街道。
type Street struct {
	townRefs
	id   StreetID
	name Name
}

func NewStreet(id StreetID) Street {
	return Street{id: id, name: defaultName("Street", int(id))}
}

func RestoreStreet(id StreetID, name Name, towns []TownID) Street {
	return Street{townRefs: newTownRefs(towns), id: id, name: name}
}

func (s Street) ID() StreetID {
	return s.id
}

func (s Street) WithID(id StreetID) Street {
	s.id = id
	return s
}

func (s *Street) Name() Name        { return s.name }
func (s *Street) SetName(name Name) { s.name = name }

func (s *Street) Clone() Street {
	return Street{townRefs: s.townRefs.clone(), id: s.id, name: s.name}
}

// River 是一条河，地形为河流的格子引用它。
type River struct {
	townRefs
	id   RiverID
	name Name
}

func NewRiver(id RiverID) River {
	return River{id: id, name: defaultName("River", int(id))}
}

func RestoreRiver(id RiverID, name Name, towns []TownID) River {
	return River{townRefs: newTownRefs(towns), id: id, name: name}
}

func (r River) ID() RiverID {
	return r.id
}

func (r River) WithID(id RiverID) River {
	r.id = id
	return r
}

func (r *River) Name() Name        { return r.name }
func (r *River) SetName(name Name) { r.name = name }

func (r *River) Clone() River {
	return River{townRefs: r.townRefs.clone(), id: r.id, name: r.name}
}

// Mountain 是一座山脉，丘陵和山地格子引用它。
type Mountain struct {
	townRefs
	id   MountainID
	name Name
}

func NewMountain(id MountainID) Mountain {
	return Mountain{id: id, name: defaultName("Mountain", int(id))}
}

func RestoreMountain(id MountainID, name Name, towns []TownID) Mountain {
	return Mountain{townRefs: newTownRefs(towns), id: id, name: name}
}

func (m Mountain) ID() MountainID {
	return m.id
}

func (m Mountain) WithID(id MountainID) Mountain {
	m.id = id
	return m
}

func (m *Mountain) Name() Name        { return m.name }
func (m *Mountain) SetName(name Name) { m.name = name }

func (m *Mountain) Clone() Mountain {
	return Mountain{townRefs: m.townRefs.clone(), id: m.id, name: m.name}
}
