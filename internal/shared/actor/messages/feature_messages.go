package messages

type CreateStreet struct {
	EditorBase
}

type AddStreetToTile struct {
	EditorBase
	Town   int
	Tile   int
	Street int
}

type RemoveStreetFromTile struct {
	EditorBase
	Town int
	Tile int
}

type AddStreetToEdge struct {
	EditorBase
	Town   int
	Tile   int
	Side   Side
	Street int
}

type RemoveStreetFromEdge struct {
	EditorBase
	Town int
	Tile int
	Side Side
}

type DeleteStreet struct {
	EditorBase
	Street int
}

type CreateRiver struct {
	EditorBase
}

type DeleteRiver struct {
	EditorBase
	River int
}

type CreateMountain struct {
	EditorBase
}

type DeleteMountain struct {
	EditorBase
	Mountain int
}

// EditTerrain 的 Terrain 取 plain/hill/mountain/river，Ref 是所属山脉或河流的 id。
type EditTerrain struct {
	EditorBase
	Town    int
	Tile    int
	Terrain string
	Ref     int
}

// GenerateTerrain 用噪声为城镇生成丘陵和山地，Seed 为 0 时随机。
type GenerateTerrain struct {
	EditorBase
	Town     int
	Mountain int
	Seed     int64
}
