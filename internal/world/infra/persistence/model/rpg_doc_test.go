package model

import (
	"errors"
	"testing"

	"RpgTools/internal/core/geom"
	"RpgTools/internal/world/app"
	"RpgTools/internal/world/entity"
	"RpgTools/modules/kit/logx"
)

// sampleData 构造一个 3x2 城镇：一栋建筑、一条街道（格子+边）、一块山地和一块河流。
func sampleData(t *testing.T) *entity.RpgData {
	t.Helper()
	s := app.NewEditorService(logx.Nop())
	d := entity.NewRpgData("doc")
	town, err := s.CreateTown(d, geom.NewSize(3, 2))
	if err != nil {
		t.Fatalf("期望城镇创建成功, err=%v", err)
	}
	if _, err := s.CreateBuilding(d, entity.BigLot(town, 0, geom.NewSize(2, 1))); err != nil {
		t.Fatalf("期望建筑创建成功, err=%v", err)
	}
	street := s.CreateStreet(d)
	if err := s.AddStreetToTile(d, town, 2, street); err != nil {
		t.Fatalf("期望街道放置成功, err=%v", err)
	}
	if err := s.AddStreetToEdge(d, town, 3, geom.Top, street); err != nil {
		t.Fatalf("期望街道边放置成功, err=%v", err)
	}
	mountain := s.CreateMountain(d)
	river := s.CreateRiver(d)
	if err := s.EditTerrain(d, town, 3, entity.HillTerrain(mountain)); err != nil {
		t.Fatalf("期望地形修改成功, err=%v", err)
	}
	if err := s.EditTerrain(d, town, 5, entity.RiverTerrain(river)); err != nil {
		t.Fatalf("期望地形修改成功, err=%v", err)
	}
	return d
}

func TestDoc_快照还原后内容一致(t *testing.T) {
	d := sampleData(t)
	doc := SnapshotToDoc(d.Snapshot(7))
	if doc.Version != 7 || doc.Setting != "doc" {
		t.Fatalf("期望版本 7 设定 doc, got=%d %s", doc.Version, doc.Setting)
	}

	back, err := DataFromDoc(doc)
	if err != nil {
		t.Fatalf("期望还原成功, err=%v", err)
	}
	orig, _ := d.Towns.GetMut(0)
	got, ok := back.Towns.GetMut(0)
	if !ok {
		t.Fatalf("期望还原出城镇 0")
	}
	if got.Size() != orig.Size() {
		t.Fatalf("期望尺寸 %s, got=%s", orig.Size(), got.Size())
	}
	for i, tile := range orig.Map().Tiles() {
		if g, _ := got.Map().GetTile(i); g != tile {
			t.Fatalf("期望格子 %d 为 %+v, got=%+v", i, tile, g)
		}
	}
	if e, _ := got.Map().GetEdge(3, geom.Top); e != entity.StreetEdge(0) {
		t.Fatalf("期望格子 3 上边是街道 0, got=%+v", e)
	}
	st, _ := back.Streets.GetMut(0)
	if !st.HasTown(0) {
		t.Fatalf("期望街道 0 记录城镇 0")
	}
	b, _ := back.Buildings.Get(0)
	if b.Lot().Size != geom.NewSize(2, 1) {
		t.Fatalf("期望建筑尺寸 2x1, got=%s", b.Lot().Size)
	}
}

func TestDoc_形状不符时报错(t *testing.T) {
	doc := SnapshotToDoc(sampleData(t).Snapshot(1))
	doc.Towns[0].Horizontal = doc.Towns[0].Horizontal[1:]
	if _, err := DataFromDoc(doc); !errors.Is(err, ErrBadDocument) {
		t.Fatalf("期望 ErrBadDocument, got=%v", err)
	}
}

func TestDoc_空名字报错(t *testing.T) {
	doc := SnapshotToDoc(sampleData(t).Snapshot(1))
	doc.Buildings[0].Name = "  "
	if _, err := DataFromDoc(doc); !errors.Is(err, ErrBadDocument) {
		t.Fatalf("期望 ErrBadDocument, got=%v", err)
	}
}

func TestDoc_id与位置不一致报错(t *testing.T) {
	doc := SnapshotToDoc(sampleData(t).Snapshot(1))
	doc.Streets[0].ID = 4
	if _, err := DataFromDoc(doc); !errors.Is(err, entity.ErrCorruptData) {
		t.Fatalf("期望 ErrCorruptData, got=%v", err)
	}
}
