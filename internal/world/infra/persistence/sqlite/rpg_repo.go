// Package sqlite 把设定数据按实体类型分表存进本地 SQLite 文件。
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"RpgTools/internal/world/entity"
	"RpgTools/internal/world/infra/persistence/model"
)

const schema = `
CREATE TABLE IF NOT EXISTS rpg_settings (
	setting TEXT PRIMARY KEY,
	version INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS rpg_buildings (
	setting TEXT NOT NULL,
	id INTEGER NOT NULL,
	name TEXT NOT NULL,
	town INTEGER NOT NULL,
	tile INTEGER NOT NULL,
	width INTEGER NOT NULL,
	height INTEGER NOT NULL,
	PRIMARY KEY (setting, id)
);

CREATE TABLE IF NOT EXISTS rpg_features (
	setting TEXT NOT NULL,
	kind TEXT NOT NULL,
	id INTEGER NOT NULL,
	name TEXT NOT NULL,
	towns_json TEXT NOT NULL,
	PRIMARY KEY (setting, kind, id)
);

CREATE TABLE IF NOT EXISTS rpg_towns (
	setting TEXT NOT NULL,
	id INTEGER NOT NULL,
	name TEXT NOT NULL,
	width INTEGER NOT NULL,
	height INTEGER NOT NULL,
	tiles_json TEXT NOT NULL,
	hedges_json TEXT NOT NULL,
	vedges_json TEXT NOT NULL,
	PRIMARY KEY (setting, id)
);
`

const (
	kindMountain = "mountain"
	kindRiver    = "river"
	kindStreet   = "street"
)

type buildingRow struct {
	Setting string `db:"setting"`
	ID      int    `db:"id"`
	Name    string `db:"name"`
	Town    int    `db:"town"`
	Tile    int    `db:"tile"`
	Width   int    `db:"width"`
	Height  int    `db:"height"`
}

type featureRow struct {
	Setting   string `db:"setting"`
	Kind      string `db:"kind"`
	ID        int    `db:"id"`
	Name      string `db:"name"`
	TownsJSON string `db:"towns_json"`
}

type townRow struct {
	Setting    string `db:"setting"`
	ID         int    `db:"id"`
	Name       string `db:"name"`
	Width      int    `db:"width"`
	Height     int    `db:"height"`
	TilesJSON  string `db:"tiles_json"`
	HEdgesJSON string `db:"hedges_json"`
	VEdgesJSON string `db:"vedges_json"`
}

type RpgRepository struct {
	db *sqlx.DB
}

// NewRpgRepository 建表后返回仓库。
func NewRpgRepository(db *sqlx.DB) (*RpgRepository, error) {
	if db == nil {
		return nil, errors.New("sqlite db is nil")
	}
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &RpgRepository{db: db}, nil
}

func (r *RpgRepository) Load(ctx context.Context, setting string) (*entity.RpgData, error) {
	var version uint64
	err := r.db.GetContext(ctx, &version, "SELECT version FROM rpg_settings WHERE setting = ?", setting)
	if errors.Is(err, sql.ErrNoRows) {
		return entity.NewRpgData(setting), nil
	}
	if err != nil {
		return nil, err
	}

	doc := model.SettingDoc{Setting: setting, Version: version}

	var buildings []buildingRow
	if err := r.db.SelectContext(ctx, &buildings, "SELECT * FROM rpg_buildings WHERE setting = ? ORDER BY id", setting); err != nil {
		return nil, err
	}
	for _, b := range buildings {
		doc.Buildings = append(doc.Buildings, model.BuildingDoc{
			ID: b.ID, Name: b.Name, Town: b.Town, Tile: b.Tile, Width: b.Width, Height: b.Height,
		})
	}

	var features []featureRow
	if err := r.db.SelectContext(ctx, &features, "SELECT * FROM rpg_features WHERE setting = ? ORDER BY kind, id", setting); err != nil {
		return nil, err
	}
	for _, f := range features {
		fd := model.FeatureDoc{ID: f.ID, Name: f.Name}
		if err := json.Unmarshal([]byte(f.TownsJSON), &fd.Towns); err != nil {
			return nil, fmt.Errorf("decode %s %d towns: %w", f.Kind, f.ID, err)
		}
		switch f.Kind {
		case kindMountain:
			doc.Mountains = append(doc.Mountains, fd)
		case kindRiver:
			doc.Rivers = append(doc.Rivers, fd)
		case kindStreet:
			doc.Streets = append(doc.Streets, fd)
		}
	}

	var towns []townRow
	if err := r.db.SelectContext(ctx, &towns, "SELECT * FROM rpg_towns WHERE setting = ? ORDER BY id", setting); err != nil {
		return nil, err
	}
	for _, t := range towns {
		td := model.TownDoc{ID: t.ID, Name: t.Name, Width: t.Width, Height: t.Height}
		if err := unmarshalAll(
			t.TilesJSON, &td.Tiles,
			t.HEdgesJSON, &td.Horizontal,
			t.VEdgesJSON, &td.Vertical,
		); err != nil {
			return nil, fmt.Errorf("decode town %d: %w", t.ID, err)
		}
		doc.Towns = append(doc.Towns, td)
	}

	return model.DataFromDoc(doc)
}

// Save 在一个事务里整体替换该设定的所有行，旧版本快照直接忽略。
func (r *RpgRepository) Save(ctx context.Context, s *entity.RpgPersistSnapshot) error {
	if s == nil {
		return nil
	}
	doc := model.SnapshotToDoc(s)

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var cur uint64
	err = tx.GetContext(ctx, &cur, "SELECT version FROM rpg_settings WHERE setting = ?", doc.Setting)
	switch {
	case errors.Is(err, sql.ErrNoRows):
	case err != nil:
		return err
	case cur > doc.Version:
		return nil
	}

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO rpg_settings (setting, version) VALUES (?, ?)
		 ON CONFLICT(setting) DO UPDATE SET version = excluded.version`,
		doc.Setting, doc.Version); err != nil {
		return err
	}
	for _, table := range []string{"rpg_buildings", "rpg_features", "rpg_towns"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table+" WHERE setting = ?", doc.Setting); err != nil {
			return err
		}
	}

	for _, b := range doc.Buildings {
		row := buildingRow{Setting: doc.Setting, ID: b.ID, Name: b.Name, Town: b.Town, Tile: b.Tile, Width: b.Width, Height: b.Height}
		if _, err := tx.NamedExecContext(ctx,
			`INSERT INTO rpg_buildings (setting, id, name, town, tile, width, height)
			 VALUES (:setting, :id, :name, :town, :tile, :width, :height)`, row); err != nil {
			return err
		}
	}

	for kind, list := range map[string][]model.FeatureDoc{
		kindMountain: doc.Mountains,
		kindRiver:    doc.Rivers,
		kindStreet:   doc.Streets,
	} {
		for _, f := range list {
			towns, err := json.Marshal(f.Towns)
			if err != nil {
				return err
			}
			row := featureRow{Setting: doc.Setting, Kind: kind, ID: f.ID, Name: f.Name, TownsJSON: string(towns)}
			if _, err := tx.NamedExecContext(ctx,
				`INSERT INTO rpg_features (setting, kind, id, name, towns_json)
				 VALUES (:setting, :kind, :id, :name, :towns_json)`, row); err != nil {
				return err
			}
		}
	}

	for _, t := range doc.Towns {
		row := townRow{Setting: doc.Setting, ID: t.ID, Name: t.Name, Width: t.Width, Height: t.Height}
		if row.TilesJSON, err = marshal(t.Tiles); err != nil {
			return err
		}
		if row.HEdgesJSON, err = marshal(t.Horizontal); err != nil {
			return err
		}
		if row.VEdgesJSON, err = marshal(t.Vertical); err != nil {
			return err
		}
		if _, err := tx.NamedExecContext(ctx,
			`INSERT INTO rpg_towns (setting, id, name, width, height, tiles_json, hedges_json, vedges_json)
			 VALUES (:setting, :id, :name, :width, :height, :tiles_json, :hedges_json, :vedges_json)`, row); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func marshal(v any) (string, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

// unmarshalAll 依次解码 (json, 目标) 对。
func unmarshalAll(pairs ...any) error {
	for i := 0; i+1 < len(pairs); i += 2 {
		raw, _ := pairs[i].(string)
		if err := json.Unmarshal([]byte(raw), pairs[i+1]); err != nil {
			return err
		}
	}
	return nil
}
