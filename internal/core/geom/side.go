package geom

// Side 是格子的四条边。
type Side uint8

const (
	Top Side = iota
	Left
	Bottom
	Right
)

func (s Side) String() string {
	switch s {
	case Top:
		return "top"
	case Left:
		return "left"
	case Bottom:
		return "bottom"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

// IsHorizontal 表示这条边在水平边数组里（上、下边）。
func (s Side) IsHorizontal() bool {
	return s == Top || s == Bottom
}
