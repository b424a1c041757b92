package port

import (
	"context"

	"RpgTools/internal/world/entity"
)

// DataRepository 负责一个设定下全部世界数据的读写。
//
// Load 在设定不存在时返回空数据而不是错误；Save 总是整体覆盖。
type DataRepository interface {
	Load(ctx context.Context, setting string) (*entity.RpgData, error)
	Save(ctx context.Context, s *entity.RpgPersistSnapshot) error
}
