package model

import "time"

// SettingRow 是 MySQL 中一个设定的行，各类实体按 JSON 列存放。
type SettingRow struct {
	Setting   string        `gorm:"column:setting;type:varchar(100);primaryKey;not null;comment:设定名" json:"setting"`
	Version   uint64        `gorm:"column:version;type:bigint UNSIGNED;not null;comment:快照版本" json:"version"`
	Buildings []BuildingDoc `gorm:"column:buildings;type:json;serializer:json" json:"buildings"`
	Mountains []FeatureDoc  `gorm:"column:mountains;type:json;serializer:json" json:"mountains"`
	Rivers    []FeatureDoc  `gorm:"column:rivers;type:json;serializer:json" json:"rivers"`
	Streets   []FeatureDoc  `gorm:"column:streets;type:json;serializer:json" json:"streets"`
	Towns     []TownDoc     `gorm:"column:towns;type:json;serializer:json" json:"towns"`
	UpdatedAt time.Time     `gorm:"column:updated_at;type:timestamp;not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (m *SettingRow) TableName() string {
	return "rpg_setting"
}

func RowFromDoc(doc SettingDoc) SettingRow {
	return SettingRow{
		Setting:   doc.Setting,
		Version:   doc.Version,
		Buildings: doc.Buildings,
		Mountains: doc.Mountains,
		Rivers:    doc.Rivers,
		Streets:   doc.Streets,
		Towns:     doc.Towns,
	}
}

func (m *SettingRow) Doc() SettingDoc {
	return SettingDoc{
		Setting:   m.Setting,
		Version:   m.Version,
		Buildings: m.Buildings,
		Mountains: m.Mountains,
		Rivers:    m.Rivers,
		Streets:   m.Streets,
		Towns:     m.Towns,
	}
}
