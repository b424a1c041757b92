package storage

import (
	"errors"
	"fmt"
	"testing"
)

type itemID int

type item struct {
	id   itemID
	name string
}

func (i item) ID() itemID { return i.id }

func (i item) WithID(id itemID) item {
	i.id = id
	return i
}

func newItem(name string) func(itemID) item {
	return func(id itemID) item { return item{id: id, name: name} }
}

func filled(n int) *Storage[itemID, item] {
	s := New[itemID, item]()
	for i := 0; i < n; i++ {
		s.Create(newItem(fmt.Sprintf("e%d", i)))
	}
	return s
}

func assertDense(t *testing.T, s *Storage[itemID, item]) {
	t.Helper()
	for i, e := range s.GetAll() {
		if int(e.ID()) != i {
			t.Fatalf("期望位置 %d 的 id 为 %d, got=%d", i, i, e.ID())
		}
	}
}

func TestStorage_Create_分配连续id(t *testing.T) {
	var s Storage[itemID, item]
	for want := 0; want < 3; want++ {
		if got := s.Create(newItem("x")); int(got) != want {
			t.Fatalf("期望第 %d 次创建得到 id=%d, got=%d", want, want, got)
		}
	}
	assertDense(t, &s)
	if s.Len() != 3 {
		t.Fatalf("期望长度 3, got=%d", s.Len())
	}
}

func TestStorage_Get与GetMut(t *testing.T) {
	s := filled(2)
	if e, ok := s.Get(1); !ok || e.name != "e1" {
		t.Fatalf("期望取到 e1, got=%+v ok=%v", e, ok)
	}
	if _, ok := s.Get(2); ok {
		t.Fatalf("期望 id==len 取不到")
	}
	if _, ok := s.Get(-1); ok {
		t.Fatalf("期望负 id 取不到")
	}
	p, ok := s.GetMut(0)
	if !ok {
		t.Fatalf("期望 GetMut(0) 成功")
	}
	p.name = "renamed"
	if e, _ := s.Get(0); e.name != "renamed" {
		t.Fatalf("期望原地修改生效, got=%s", e.name)
	}
}

func TestStorage_GetAll_返回拷贝(t *testing.T) {
	s := filled(2)
	all := s.GetAll()
	all[0].name = "mutated"
	if e, _ := s.Get(0); e.name != "e0" {
		t.Fatalf("期望 GetAll 返回拷贝, got=%s", e.name)
	}
}

func TestStorage_Delete_不存在(t *testing.T) {
	s := filled(2)
	r := s.Delete(5)
	if r.Outcome != NotFound || r.Found() {
		t.Fatalf("期望 NotFound, got=%s", r.Outcome)
	}
	if s.Len() != 2 {
		t.Fatalf("期望仓库不变")
	}
}

func TestStorage_Delete_最后一个元素(t *testing.T) {
	s := filled(3)
	r := s.Delete(2)
	if r.Outcome != DeletedLastElement || r.Element.name != "e2" {
		t.Fatalf("期望删除最后一个元素 e2, got=%s %+v", r.Outcome, r.Element)
	}
	if _, swapped := r.Swapped(); swapped {
		t.Fatalf("期望没有需要改写的 id")
	}
	if s.Len() != 2 {
		t.Fatalf("期望长度 2, got=%d", s.Len())
	}
	assertDense(t, s)
}

func TestStorage_Delete_交换删除(t *testing.T) {
	s := filled(4)
	r := s.Delete(1)
	if r.Outcome != SwappedAndRemoved {
		t.Fatalf("期望 SwappedAndRemoved, got=%s", r.Outcome)
	}
	if r.Element.name != "e1" || r.Element.ID() != 1 {
		t.Fatalf("期望返回被删除的 e1, got=%+v", r.Element)
	}
	if old, _ := r.Swapped(); old != 3 {
		t.Fatalf("期望 IDToUpdate=3, got=%d", old)
	}
	moved, _ := s.Get(1)
	if moved.name != "e3" || moved.ID() != 1 {
		t.Fatalf("期望 e3 被移到 id=1, got=%+v", moved)
	}
	if s.Len() != 3 {
		t.Fatalf("期望长度 3, got=%d", s.Len())
	}
	assertDense(t, s)
}

func TestStorage_Delete_反复删除保持稠密(t *testing.T) {
	s := filled(6)
	for _, id := range []itemID{0, 2, 0, 1, 0, 0} {
		if r := s.Delete(id); !r.Found() {
			t.Fatalf("期望删除 id=%d 成功", id)
		}
		assertDense(t, s)
	}
	if s.Len() != 0 {
		t.Fatalf("期望清空, got=%d", s.Len())
	}
}

func TestStorage_Load_校验id位置(t *testing.T) {
	s, err := Load[itemID]([]item{{id: 0, name: "a"}, {id: 1, name: "b"}})
	if err != nil || s.Len() != 2 {
		t.Fatalf("期望加载成功, err=%v", err)
	}
	_, err = Load[itemID]([]item{{id: 1, name: "a"}})
	if !errors.Is(err, ErrIDMismatch) {
		t.Fatalf("期望 ErrIDMismatch, got=%v", err)
	}
}

func TestStorage_Each_可提前停止(t *testing.T) {
	s := filled(5)
	visited := 0
	s.Each(func(id itemID, e *item) bool {
		visited++
		return id < 2
	})
	if visited != 3 {
		t.Fatalf("期望遍历 3 个后停止, got=%d", visited)
	}
}
