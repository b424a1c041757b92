package entity

import "fmt"

// 各类实体的 id 都是所在仓库里的位置，删除后可能被别的实体复用。
type (
	TownID     int
	BuildingID int
	StreetID   int
	RiverID    int
	MountainID int
)

func defaultName(kind string, id int) Name {
	return Name{value: fmt.Sprintf("%s %d", kind, id)}
}
