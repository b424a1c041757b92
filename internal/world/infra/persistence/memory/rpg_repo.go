// Package memory 是进程内的数据仓库，用于测试和不落盘的临时编辑。
package memory

import (
	"context"
	"sync"

	"RpgTools/internal/world/entity"
	"RpgTools/internal/world/infra/persistence/model"
)

// RpgRepository 以文档形式保存数据，读写都会复制，调用方拿到的数据互不影响。
type RpgRepository struct {
	mu    sync.RWMutex
	docs  map[string]model.SettingDoc
	saves int
}

func NewRpgRepository() *RpgRepository {
	return &RpgRepository{docs: make(map[string]model.SettingDoc)}
}

func (r *RpgRepository) Load(ctx context.Context, setting string) (*entity.RpgData, error) {
	_ = ctx
	r.mu.RLock()
	doc, ok := r.docs[setting]
	r.mu.RUnlock()
	if !ok {
		return entity.NewRpgData(setting), nil
	}
	return model.DataFromDoc(doc)
}

func (r *RpgRepository) Save(ctx context.Context, s *entity.RpgPersistSnapshot) error {
	_ = ctx
	if s == nil {
		return nil
	}
	doc := model.SnapshotToDoc(s)
	r.mu.Lock()
	defer r.mu.Unlock()
	// 乱序到达的旧版本直接丢弃
	if cur, ok := r.docs[s.Setting]; ok && cur.Version > doc.Version {
		return nil
	}
	r.docs[s.Setting] = doc
	r.saves++
	return nil
}

// Saves 返回成功写入的次数。
func (r *RpgRepository) Saves() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.saves
}

func (r *RpgRepository) Version(setting string) (uint64, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	doc, ok := r.docs[setting]
	return doc.Version, ok
}
