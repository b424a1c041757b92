// Package app 实现世界编辑的用例。
//
// 所有方法都直接修改传入的 RpgData，不加锁；调用方（EditorActor）保证串行。
// 每个成功的写操作都会把数据标记为脏，等待落盘。
package app

import (
	"RpgTools/internal/world/entity"
	"RpgTools/modules/kit/logx"

	"go.uber.org/zap"
)

type Logger = logx.Logger

type EditorService struct {
	log Logger
}

func NewEditorService(log Logger) *EditorService {
	if log == nil {
		log = logx.Nop()
	}
	return &EditorService{log: log}
}

func (s *EditorService) getTown(data *entity.RpgData, id entity.TownID) (*entity.Town, error) {
	town, ok := data.Towns.GetMut(id)
	if !ok {
		return nil, ErrTownNotFound.WithData("town", int(id))
	}
	return town, nil
}

func (s *EditorService) getTile(data *entity.RpgData, townID entity.TownID, tile int) (*entity.Town, *entity.TownTile, error) {
	town, err := s.getTown(data, townID)
	if err != nil {
		return nil, nil, err
	}
	t, ok := town.Map().GetTileMut(tile)
	if !ok {
		return nil, nil, ErrTileOutsideTown.WithData("town", int(townID)).WithData("tile", tile)
	}
	return town, t, nil
}

func (s *EditorService) changed(data *entity.RpgData, action string, fields ...zap.Field) {
	data.MarkDirty()
	s.log.Debug(action, append(fields, zap.String("setting", data.Setting()))...)
}
