// Package sqlite 打开本地 SQLite 文件，供单机编辑使用。
package sqlite

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"

	"RpgTools/internal/shared/serverconfig"
)

// Open 以 WAL 模式打开数据库。path 为 ":memory:" 时只保留一个连接，否则每个连接各自一份内存库。
func Open(cfg serverconfig.SQLiteConfig, l *zap.Logger) (*sqlx.DB, error) {
	if l == nil {
		l = zap.NewNop()
	}
	path := cfg.Path
	if path == "" {
		return nil, fmt.Errorf("sqlite path is empty")
	}
	dsn := path + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)"
	if path == ":memory:" {
		dsn = path
	}
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	db.SetMaxOpenConns(1)
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}
	l.Info("open sqlite success", zap.String("path", path))
	return db, nil
}
