package dc

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"RpgTools/internal/core/geom"
	"RpgTools/internal/world/entity"
)

type fakeRepo struct {
	mu       sync.Mutex
	data     *entity.RpgData
	saved    []*entity.RpgPersistSnapshot
	failLeft int
}

func (r *fakeRepo) Load(ctx context.Context, setting string) (*entity.RpgData, error) {
	if r.data != nil {
		return r.data, nil
	}
	return entity.NewRpgData(setting), nil
}

func (r *fakeRepo) Save(ctx context.Context, s *entity.RpgPersistSnapshot) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failLeft > 0 {
		r.failLeft--
		return errors.New("store down")
	}
	r.saved = append(r.saved, s)
	return nil
}

func (r *fakeRepo) savedVersions() []uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]uint64, 0, len(r.saved))
	for _, s := range r.saved {
		out = append(out, s.Version)
	}
	return out
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("等待条件超时")
}

func TestEditorDC_Flush_写入脏数据(t *testing.T) {
	repo := &fakeRepo{}
	d := NewEditorDC(repo, nil, time.Second)
	data, err := d.Load(context.Background(), "demo")
	if err != nil {
		t.Fatalf("期望加载成功, err=%v", err)
	}

	if err := d.Flush(context.Background()); err != nil {
		t.Fatalf("期望干净数据 Flush 无操作, err=%v", err)
	}
	data.Towns.Create(entity.NewTown)
	data.MarkDirty()
	if err := d.Flush(context.Background()); err != nil {
		t.Fatalf("期望 Flush 成功, err=%v", err)
	}
	if d.IsDirty() {
		t.Fatalf("期望生成快照后清除脏标记")
	}
	waitFor(t, func() bool { return d.SavedVersion() == 1 })

	if err := d.Close(context.Background()); err != nil {
		t.Fatalf("期望关闭成功, err=%v", err)
	}
	if got := repo.savedVersions(); len(got) != 1 || got[0] != 1 {
		t.Fatalf("期望只写入一次版本 1, got=%v", got)
	}
}

func TestEditorDC_写库失败后重试(t *testing.T) {
	repo := &fakeRepo{failLeft: 2}
	d := NewEditorDC(repo, nil, time.Second)
	data, _ := d.Load(context.Background(), "demo")
	data.MarkDirty()
	_ = d.Flush(context.Background())

	waitFor(t, func() bool { return d.SavedVersion() == 1 })
	_ = d.Close(context.Background())
}

func TestEditorDC_Close_写入最后的修改(t *testing.T) {
	repo := &fakeRepo{}
	d := NewEditorDC(repo, nil, time.Second)
	data, _ := d.Load(context.Background(), "demo")
	data.Towns.Create(func(id entity.TownID) entity.Town { return entity.NewTownWithSize(id, geom.Square(2)) })
	data.MarkDirty()

	if err := d.Close(context.Background()); err != nil {
		t.Fatalf("期望关闭成功, err=%v", err)
	}
	got := repo.savedVersions()
	if len(got) != 1 {
		t.Fatalf("期望关闭时写入一次, got=%v", got)
	}
	if len(repo.saved[0].Towns) != 1 {
		t.Fatalf("期望快照包含城镇")
	}
}

func TestEditorDC_仓库为空(t *testing.T) {
	d := NewEditorDC(nil, nil, 0)
	if _, err := d.Load(context.Background(), "demo"); err == nil {
		t.Fatalf("期望没有仓库时加载失败")
	}
	if d.FlushEvery() != defaultFlushEvery {
		t.Fatalf("期望使用默认落盘间隔")
	}
	_ = d.Close(context.Background())
}
