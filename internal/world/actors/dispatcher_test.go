package actors

import (
	"testing"

	"RpgTools/internal/shared/actor/messages"
)

func TestDispatcher_所有命令都有处理函数(t *testing.T) {
	d := NewDispatcher()
	all := []messages.EditorMessage{
		&messages.CreateTown{}, &messages.ResizeTown{}, &messages.DeleteTown{}, &messages.GetTown{},
		&messages.CreateBuilding{}, &messages.ResizeBuilding{}, &messages.DeleteBuilding{},
		&messages.Rename{}, &messages.Save{}, &messages.Stats{},
		&messages.CreateStreet{}, &messages.AddStreetToTile{}, &messages.RemoveStreetFromTile{},
		&messages.AddStreetToEdge{}, &messages.RemoveStreetFromEdge{}, &messages.DeleteStreet{},
		&messages.CreateRiver{}, &messages.DeleteRiver{}, &messages.CreateMountain{}, &messages.DeleteMountain{},
		&messages.EditTerrain{}, &messages.GenerateTerrain{},
	}
	for _, m := range all {
		if !d.Has(m) {
			t.Fatalf("期望 %T 已注册", m)
		}
	}
}

func TestFailReply_非errx错误按内部错误处理(t *testing.T) {
	r := failReply(errNoHandler.WithData("type", "x"))
	if r.OK || r.Biz || r.Code != "INTERNAL_ERROR" {
		t.Fatalf("期望内部错误回复, got=%+v", r)
	}
	if r.Data["type"] != "x" {
		t.Fatalf("期望携带上下文, got=%v", r.Data)
	}
}

func TestParseTerrain(t *testing.T) {
	if _, err := parseTerrain("lava", 0); err == nil {
		t.Fatalf("期望未知地形报错")
	}
	tr, err := parseTerrain("River", 2)
	if err != nil || tr.String() != "river(2)" {
		t.Fatalf("期望 river(2), got=%s err=%v", tr, err)
	}
}
