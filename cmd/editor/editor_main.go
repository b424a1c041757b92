package main

import (
	"context"
	"errors"
	"fmt"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"RpgTools/internal/shared/infrastructure/db"
	sharedmongo "RpgTools/internal/shared/infrastructure/mongo"
	sharedsqlite "RpgTools/internal/shared/infrastructure/sqlite"
	"RpgTools/internal/shared/logs"
	"RpgTools/internal/shared/serverconfig"
	transporthttp "RpgTools/internal/shared/transport/http"
	editoractor "RpgTools/internal/world/actor"
	"RpgTools/internal/world/app/port"
	"RpgTools/internal/world/infra/persistence/memory"
	rpgmongo "RpgTools/internal/world/infra/persistence/mongodb"
	rpgmysql "RpgTools/internal/world/infra/persistence/mysql"
	rpgsqlite "RpgTools/internal/world/infra/persistence/sqlite"
	"RpgTools/modules/kit/logx"

	"go.uber.org/zap"
)

// configEnv 指定配置文件路径，未设置时向上查找 configs/conf.yml。
const configEnv = "RPG_CONFIG"

func main() {
	if err := serverconfig.Load(os.Getenv(configEnv)); err != nil {
		panic(err)
	}
	conf := serverconfig.Conf
	zl, err := logs.Init("editor", conf.Log)
	if err != nil {
		panic(err)
	}
	defer logs.Sync()
	logs.Info("conf", zap.Any("conf", conf))
	logger := logx.NewZapLogger(zl)

	repo, closeRepo, err := openRepository(conf, zl)
	if err != nil {
		logs.Fatal("open repository failed", zap.String("driver", conf.Storage.Driver), zap.Error(err))
	}
	defer closeRepo()

	rt := editoractor.NewRuntime(repo, editoractor.Options{
		AskTimeout: conf.Editor.AskTimeout,
		FlushEvery: conf.Storage.FlushEvery,
		Logger:     logger,
	})
	setting := conf.Storage.Setting

	// 预热：触发设定加载，失败只记录，/readyz 会反映状态
	if stats, err := rt.Stats(context.Background(), setting); err != nil {
		logx.ReportErrorWithLoggerContext(context.Background(), logger, "editor_warmup", err)
	} else {
		logs.Info("setting loaded",
			zap.String("setting", setting),
			zap.Int("towns", stats.Towns),
			zap.Int("buildings", stats.Buildings),
		)
	}

	addr := fmt.Sprintf("%s:%d", conf.HTTPServer.Host, conf.HTTPServer.Port)
	server := transporthttp.NewHttpServer(addr, logger, func(ctx context.Context) error {
		_, err := rt.Stats(ctx, setting)
		return err
	})
	go func() {
		logs.Info("health server started", zap.String("addr", addr))
		if err := server.Start(); err != nil && !errors.Is(err, nethttp.ErrServerClosed) {
			logs.Error("health server stopped", zap.Error(err))
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	logs.Info("收到退出信号，准备优雅退出")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rt.Save(shutdownCtx, setting); err != nil {
		logx.ReportErrorWithLoggerContext(shutdownCtx, logger, "editor_final_save", err)
	}
	_ = server.Shutdown(shutdownCtx)
	rt.Shutdown()
}

func openRepository(conf serverconfig.Config, zl *zap.Logger) (port.DataRepository, func(), error) {
	switch conf.Storage.Driver {
	case serverconfig.DriverMemory:
		return memory.NewRpgRepository(), func() {}, nil
	case serverconfig.DriverMongoDB:
		client, err := sharedmongo.Open(context.Background(), conf.MongoDB, zl)
		if err != nil {
			return nil, nil, err
		}
		repo := rpgmongo.NewRpgRepository(client.Database(conf.MongoDB.Database), conf.MongoDB.Collection)
		return repo, func() { _ = client.Disconnect(context.Background()) }, nil
	case serverconfig.DriverMySQL:
		gdb, err := db.Open(conf.MySQL)
		if err != nil {
			return nil, nil, err
		}
		repo, err := rpgmysql.NewRpgRepository(gdb)
		if err != nil {
			return nil, nil, err
		}
		return repo, func() {
			if sqlDB, err := gdb.DB(); err == nil {
				_ = sqlDB.Close()
			}
		}, nil
	case serverconfig.DriverSQLite:
		sdb, err := sharedsqlite.Open(conf.SQLite, zl)
		if err != nil {
			return nil, nil, err
		}
		repo, err := rpgsqlite.NewRpgRepository(sdb)
		if err != nil {
			_ = sdb.Close()
			return nil, nil, err
		}
		return repo, func() { _ = sdb.Close() }, nil
	}
	return nil, nil, fmt.Errorf("unknown storage driver %q", conf.Storage.Driver)
}
