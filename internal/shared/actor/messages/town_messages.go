package messages

type CreateTown struct {
	EditorBase
	Width, Height int
}

type ResizeTown struct {
	EditorBase
	Town          int
	Width, Height int
}

type DeleteTown struct {
	EditorBase
	Town int
}

// GetTown 返回 *TownView。
type GetTown struct {
	EditorBase
	Town int
}

type TileView struct {
	Terrain      string
	Construction string
}

type TownView struct {
	OK            bool
	Code          string
	Message       string
	ID            int
	Name          string
	Width, Height int
	Tiles         []TileView
}

type CreateBuilding struct {
	EditorBase
	Town          int
	Tile          int
	Width, Height int
}

type ResizeBuilding struct {
	EditorBase
	Building      int
	Width, Height int
}

type DeleteBuilding struct {
	EditorBase
	Building int
}

// Rename 修改任意实体的名字，Kind 取 town/building/street/river/mountain。
type Rename struct {
	EditorBase
	Kind string
	ID   int
	Name string
}

// Save 立即把脏数据排入写库队列。
type Save struct {
	EditorBase
}

// Stats 返回 *StatsView，用于就绪检查和启动日志。
type Stats struct {
	EditorBase
}

type StatsView struct {
	Towns, Buildings, Streets, Rivers, Mountains int
	Dirty                                        bool
	SavedVersion                                 uint64
}
