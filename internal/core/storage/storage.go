// Package storage 提供按稠密整数 id 索引的实体仓库。
//
// 仓库里第 i 个元素的 id 恒为 i。删除采用交换删除：最后一个元素被挪到空位上，
// 并通过 DeleteResult 告诉调用方哪个旧 id 需要改写成新 id。
package storage

import (
	"RpgTools/modules/kit/errx"
)

// ID 是实体 id 的约束，具体领域用 `type TownID int` 之类的具名类型。
type ID interface {
	~int
}

// Element 是可放入 Storage 的实体：能报告自己的 id，也能返回换了 id 的副本。
type Element[I ID, T any] interface {
	ID() I
	WithID(id I) T
}

// ErrIDMismatch 表示批量加载时某个元素的 id 不等于它所在的位置。
var ErrIDMismatch = errx.NewSys("CORE_ID_MISMATCH", "实体 id 与位置不一致")

// Storage 是实体仓库，零值可直接使用。不做并发保护，由宿主串行化访问。
type Storage[I ID, T Element[I, T]] struct {
	elements []T
}

// New 返回空仓库。
func New[I ID, T Element[I, T]]() *Storage[I, T] {
	return &Storage[I, T]{}
}

// Load 用已持久化的元素重建仓库，要求 elements[i].ID() == i。
func Load[I ID, T Element[I, T]](elements []T) (*Storage[I, T], error) {
	for i, e := range elements {
		if int(e.ID()) != i {
			return nil, ErrIDMismatch.WithData("position", i).WithData("id", int(e.ID()))
		}
	}
	out := make([]T, len(elements))
	copy(out, elements)
	return &Storage[I, T]{elements: out}, nil
}

// Create 用下一个 id（当前长度）调用 factory 构造元素并追加，返回新 id。
func (s *Storage[I, T]) Create(factory func(id I) T) I {
	id := I(len(s.elements))
	s.elements = append(s.elements, factory(id))
	return id
}

// Get 返回 id 对应元素的副本。
func (s *Storage[I, T]) Get(id I) (T, bool) {
	if !s.Contains(id) {
		var zero T
		return zero, false
	}
	return s.elements[id], true
}

// GetMut 返回元素的指针，可原地修改。指针在下一次 Create/Delete 之前有效。
func (s *Storage[I, T]) GetMut(id I) (*T, bool) {
	if !s.Contains(id) {
		return nil, false
	}
	return &s.elements[id], true
}

// GetAll 按 id 顺序返回全部元素的拷贝。
func (s *Storage[I, T]) GetAll() []T {
	out := make([]T, len(s.elements))
	copy(out, s.elements)
	return out
}

// Each 按 id 顺序遍历，fn 返回 false 时停止。
func (s *Storage[I, T]) Each(fn func(id I, element *T) bool) {
	for i := range s.elements {
		if !fn(I(i), &s.elements[i]) {
			return
		}
	}
}

func (s *Storage[I, T]) Len() int {
	return len(s.elements)
}

func (s *Storage[I, T]) Contains(id I) bool {
	return id >= 0 && int(id) < len(s.elements)
}

// Delete 交换删除 id 对应的元素。
//
// 删除最后一个元素时直接弹出；否则把最后一个元素改成 id 放到空位，
// 结果里的 IDToUpdate 是它原来的 id，调用方需要把所有对它的引用改成 id。
func (s *Storage[I, T]) Delete(id I) DeleteResult[I, T] {
	if !s.Contains(id) {
		return DeleteResult[I, T]{Outcome: NotFound}
	}
	last := len(s.elements) - 1
	moved := s.elements[last]
	var zero T
	s.elements[last] = zero
	s.elements = s.elements[:last]

	if int(id) == last {
		return DeleteResult[I, T]{Outcome: DeletedLastElement, Element: moved}
	}
	deleted := s.elements[id]
	s.elements[id] = moved.WithID(id)
	return DeleteResult[I, T]{
		Outcome:    SwappedAndRemoved,
		Element:    deleted,
		IDToUpdate: I(last),
	}
}
