package model

import (
	"RpgTools/internal/core/geom"
	"RpgTools/internal/core/tilemap"
	"RpgTools/internal/world/entity"
	"RpgTools/modules/kit/errx"
)

// NoStreet 表示边上没有街道。
const NoStreet = -1

var ErrBadDocument = errx.NewSys("WORLD_BAD_DOCUMENT", "持久化文档格式错误")

// SettingDoc 是一个设定的完整持久化形态，各切片按 id 顺序排列。
type SettingDoc struct {
	Setting   string        `bson:"_id" json:"setting"`
	Version   uint64        `bson:"version" json:"version"`
	Buildings []BuildingDoc `bson:"buildings" json:"buildings"`
	Mountains []FeatureDoc  `bson:"mountains" json:"mountains"`
	Rivers    []FeatureDoc  `bson:"rivers" json:"rivers"`
	Streets   []FeatureDoc  `bson:"streets" json:"streets"`
	Towns     []TownDoc     `bson:"towns" json:"towns"`
}

type BuildingDoc struct {
	ID     int    `bson:"id" json:"id"`
	Name   string `bson:"name" json:"name"`
	Town   int    `bson:"town" json:"town"`
	Tile   int    `bson:"tile" json:"tile"`
	Width  int    `bson:"w" json:"w"`
	Height int    `bson:"h" json:"h"`
}

// FeatureDoc 存街道、河流和山脉，它们都只有名字和所在城镇。
type FeatureDoc struct {
	ID    int    `bson:"id" json:"id"`
	Name  string `bson:"name" json:"name"`
	Towns []int  `bson:"towns" json:"towns"`
}

type TownDoc struct {
	ID         int       `bson:"id" json:"id"`
	Name       string    `bson:"name" json:"name"`
	Width      int       `bson:"w" json:"w"`
	Height     int       `bson:"h" json:"h"`
	Tiles      []TileDoc `bson:"tiles" json:"tiles"`
	Horizontal []int     `bson:"hedges" json:"hedges"`
	Vertical   []int     `bson:"vedges" json:"vedges"`
}

type TileDoc struct {
	Terrain      uint8 `bson:"t" json:"t"`
	TerrainRef   int   `bson:"tr,omitempty" json:"tr,omitempty"`
	Construction uint8 `bson:"c" json:"c"`
	Ref          int   `bson:"cr,omitempty" json:"cr,omitempty"`
}

func SnapshotToDoc(s *entity.RpgPersistSnapshot) SettingDoc {
	doc := SettingDoc{
		Setting:   s.Setting,
		Version:   s.Version,
		Buildings: make([]BuildingDoc, 0, len(s.Buildings)),
		Mountains: make([]FeatureDoc, 0, len(s.Mountains)),
		Rivers:    make([]FeatureDoc, 0, len(s.Rivers)),
		Streets:   make([]FeatureDoc, 0, len(s.Streets)),
		Towns:     make([]TownDoc, 0, len(s.Towns)),
	}
	for i := range s.Buildings {
		b := &s.Buildings[i]
		lot := b.Lot()
		doc.Buildings = append(doc.Buildings, BuildingDoc{
			ID:     int(b.ID()),
			Name:   b.Name().String(),
			Town:   int(lot.Town),
			Tile:   lot.Tile,
			Width:  lot.Size.Width(),
			Height: lot.Size.Height(),
		})
	}
	for i := range s.Mountains {
		m := &s.Mountains[i]
		doc.Mountains = append(doc.Mountains, FeatureDoc{ID: int(m.ID()), Name: m.Name().String(), Towns: townInts(m.Towns())})
	}
	for i := range s.Rivers {
		r := &s.Rivers[i]
		doc.Rivers = append(doc.Rivers, FeatureDoc{ID: int(r.ID()), Name: r.Name().String(), Towns: townInts(r.Towns())})
	}
	for i := range s.Streets {
		st := &s.Streets[i]
		doc.Streets = append(doc.Streets, FeatureDoc{ID: int(st.ID()), Name: st.Name().String(), Towns: townInts(st.Towns())})
	}
	for i := range s.Towns {
		doc.Towns = append(doc.Towns, townToDoc(&s.Towns[i]))
	}
	return doc
}

func townToDoc(t *entity.Town) TownDoc {
	m := t.Map()
	size := m.Size()
	tiles := m.Tiles()
	doc := TownDoc{
		ID:         int(t.ID()),
		Name:       t.Name().String(),
		Width:      size.Width(),
		Height:     size.Height(),
		Tiles:      make([]TileDoc, 0, len(tiles)),
		Horizontal: edgesToInts(m.HorizontalEdges()),
		Vertical:   edgesToInts(m.VerticalEdges()),
	}
	for _, tile := range tiles {
		td := TileDoc{
			Terrain:      uint8(tile.Terrain.Kind()),
			Construction: uint8(tile.Construction.Kind()),
		}
		if id, ok := tile.Terrain.MountainID(); ok {
			td.TerrainRef = int(id)
		} else if id, ok := tile.Terrain.RiverID(); ok {
			td.TerrainRef = int(id)
		}
		if id, ok := tile.Construction.BuildingID(); ok {
			td.Ref = int(id)
		} else if id, ok := tile.Construction.StreetID(); ok {
			td.Ref = int(id)
		}
		doc.Tiles = append(doc.Tiles, td)
	}
	return doc
}

// DocToSnapshot 还原快照。名字非法或地图形状不符时返回 ErrBadDocument。
func DocToSnapshot(doc SettingDoc) (*entity.RpgPersistSnapshot, error) {
	s := &entity.RpgPersistSnapshot{
		Version:   doc.Version,
		Setting:   doc.Setting,
		Buildings: make([]entity.Building, 0, len(doc.Buildings)),
		Mountains: make([]entity.Mountain, 0, len(doc.Mountains)),
		Rivers:    make([]entity.River, 0, len(doc.Rivers)),
		Streets:   make([]entity.Street, 0, len(doc.Streets)),
		Towns:     make([]entity.Town, 0, len(doc.Towns)),
	}
	for _, b := range doc.Buildings {
		name, err := entity.NewName(b.Name)
		if err != nil {
			return nil, bad("building", b.ID, err)
		}
		lot := entity.BigLot(entity.TownID(b.Town), b.Tile, geom.NewSize(b.Width, b.Height))
		s.Buildings = append(s.Buildings, entity.RestoreBuilding(entity.BuildingID(b.ID), name, lot))
	}
	for _, f := range doc.Mountains {
		name, err := entity.NewName(f.Name)
		if err != nil {
			return nil, bad("mountain", f.ID, err)
		}
		s.Mountains = append(s.Mountains, entity.RestoreMountain(entity.MountainID(f.ID), name, intsToTowns(f.Towns)))
	}
	for _, f := range doc.Rivers {
		name, err := entity.NewName(f.Name)
		if err != nil {
			return nil, bad("river", f.ID, err)
		}
		s.Rivers = append(s.Rivers, entity.RestoreRiver(entity.RiverID(f.ID), name, intsToTowns(f.Towns)))
	}
	for _, f := range doc.Streets {
		name, err := entity.NewName(f.Name)
		if err != nil {
			return nil, bad("street", f.ID, err)
		}
		s.Streets = append(s.Streets, entity.RestoreStreet(entity.StreetID(f.ID), name, intsToTowns(f.Towns)))
	}
	for _, td := range doc.Towns {
		town, err := docToTown(td)
		if err != nil {
			return nil, err
		}
		s.Towns = append(s.Towns, town)
	}
	return s, nil
}

func docToTown(doc TownDoc) (entity.Town, error) {
	name, err := entity.NewName(doc.Name)
	if err != nil {
		return entity.Town{}, bad("town", doc.ID, err)
	}
	tiles := make([]entity.TownTile, 0, len(doc.Tiles))
	for _, td := range doc.Tiles {
		tile, err := docToTile(td)
		if err != nil {
			return entity.Town{}, bad("town", doc.ID, err)
		}
		tiles = append(tiles, tile)
	}
	m, err := tilemap.NewEdgeMap(geom.NewSize(doc.Width, doc.Height), tiles, intsToEdges(doc.Horizontal), intsToEdges(doc.Vertical))
	if err != nil {
		return entity.Town{}, bad("town", doc.ID, err)
	}
	return entity.RestoreTown(entity.TownID(doc.ID), name, m), nil
}

func docToTile(td TileDoc) (entity.TownTile, error) {
	var terrain entity.Terrain
	switch entity.TerrainKind(td.Terrain) {
	case entity.TerrainPlain:
		terrain = entity.PlainTerrain()
	case entity.TerrainHill:
		terrain = entity.HillTerrain(entity.MountainID(td.TerrainRef))
	case entity.TerrainMountain:
		terrain = entity.MountainTerrain(entity.MountainID(td.TerrainRef))
	case entity.TerrainRiver:
		terrain = entity.RiverTerrain(entity.RiverID(td.TerrainRef))
	default:
		return entity.TownTile{}, ErrBadDocument.WithData("terrain", td.Terrain)
	}
	tile := entity.NewTownTile(terrain)
	switch entity.ConstructionKind(td.Construction) {
	case entity.ConstructionNone:
	case entity.ConstructionBuilding:
		tile.Construction = entity.BuildingConstruction(entity.BuildingID(td.Ref))
	case entity.ConstructionStreet:
		tile.Construction = entity.StreetConstruction(entity.StreetID(td.Ref))
	default:
		return entity.TownTile{}, ErrBadDocument.WithData("construction", td.Construction)
	}
	return tile, nil
}

func bad(kind string, id int, cause error) error {
	return ErrBadDocument.WithData("kind", kind).WithData("id", id).WithCause(cause)
}

func townInts(ids []entity.TownID) []int {
	out := make([]int, len(ids))
	for i, id := range ids {
		out[i] = int(id)
	}
	return out
}

func intsToTowns(ids []int) []entity.TownID {
	out := make([]entity.TownID, len(ids))
	for i, id := range ids {
		out[i] = entity.TownID(id)
	}
	return out
}

func edgesToInts(edges []entity.TownEdge) []int {
	out := make([]int, len(edges))
	for i, e := range edges {
		if id, ok := e.StreetID(); ok {
			out[i] = int(id)
		} else {
			out[i] = NoStreet
		}
	}
	return out
}

func intsToEdges(ids []int) []entity.TownEdge {
	out := make([]entity.TownEdge, len(ids))
	for i, id := range ids {
		if id == NoStreet {
			out[i] = entity.NoEdge()
		} else {
			out[i] = entity.StreetEdge(entity.StreetID(id))
		}
	}
	return out
}

// DataFromDoc 把文档还原成可编辑的数据，并校验 id 与位置一致。
func DataFromDoc(doc SettingDoc) (*entity.RpgData, error) {
	s, err := DocToSnapshot(doc)
	if err != nil {
		return nil, err
	}
	return entity.RestoreRpgData(s)
}
