// Package mysql 用 gorm 把每个设定存成一行。
package mysql

import (
	"context"
	"errors"

	"RpgTools/internal/world/entity"
	"RpgTools/internal/world/infra/persistence/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type RpgRepository struct {
	db *gorm.DB
}

// NewRpgRepository 会自动建表。
func NewRpgRepository(db *gorm.DB) (*RpgRepository, error) {
	if db == nil {
		return nil, errors.New("mysql db is nil")
	}
	if err := db.AutoMigrate(&model.SettingRow{}); err != nil {
		return nil, err
	}
	return &RpgRepository{db: db}, nil
}

func (r *RpgRepository) Load(ctx context.Context, setting string) (*entity.RpgData, error) {
	var row model.SettingRow
	err := r.db.WithContext(ctx).Where("setting = ?", setting).Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entity.NewRpgData(setting), nil
	}
	if err != nil {
		return nil, err
	}
	return model.DataFromDoc(row.Doc())
}

func (r *RpgRepository) Save(ctx context.Context, s *entity.RpgPersistSnapshot) error {
	if s == nil {
		return nil
	}
	row := model.RowFromDoc(model.SnapshotToDoc(s))
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var cur model.SettingRow
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Select("setting", "version").
			Where("setting = ?", row.Setting).
			Take(&cur).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			return tx.Create(&row).Error
		case err != nil:
			return err
		case cur.Version > row.Version:
			return nil
		}
		return tx.Model(&model.SettingRow{}).
			Where("setting = ?", row.Setting).
			Select("version", "buildings", "mountains", "rivers", "streets", "towns", "updated_at").
			Updates(&row).Error
	})
}
