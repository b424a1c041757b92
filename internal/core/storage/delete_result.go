package storage

// Outcome 是删除的三种结果。
type Outcome uint8

const (
	// NotFound 表示 id 不存在，仓库未改变。
	NotFound Outcome = iota
	// DeletedLastElement 表示删除的是最后一个元素，其余 id 不变。
	DeletedLastElement
	// SwappedAndRemoved 表示最后一个元素被移到了被删除的位置。
	SwappedAndRemoved
)

func (o Outcome) String() string {
	switch o {
	case NotFound:
		return "not_found"
	case DeletedLastElement:
		return "deleted_last_element"
	case SwappedAndRemoved:
		return "swapped_and_removed"
	default:
		return "unknown"
	}
}

// DeleteResult 描述一次删除。
//
// Element 是被删除的元素（NotFound 时为零值）。
// IDToUpdate 只在 SwappedAndRemoved 时有意义：原先使用这个 id 的引用要改成被删除的 id。
type DeleteResult[I ID, T any] struct {
	Outcome    Outcome
	Element    T
	IDToUpdate I
}

// Found 表示确实删掉了一个元素。
func (r DeleteResult[I, T]) Found() bool {
	return r.Outcome != NotFound
}

// Swapped 返回需要改写的旧 id。
func (r DeleteResult[I, T]) Swapped() (I, bool) {
	return r.IDToUpdate, r.Outcome == SwappedAndRemoved
}
