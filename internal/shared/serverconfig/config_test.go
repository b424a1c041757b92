package serverconfig

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConf(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "conf.yml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("期望写入配置成功, err=%v", err)
	}
	return path
}

func TestLoad_解析时长和默认值(t *testing.T) {
	Conf = Config{}
	path := writeConf(t, `
storage:
  driver: sqlite
  flush_every: 500ms
editor:
  ask_timeout: 2s
mysql:
  slow_threshold: 1s
`)
	if err := Load(path); err != nil {
		t.Fatalf("期望加载成功, err=%v", err)
	}
	if Conf.Storage.FlushEvery != 500*time.Millisecond {
		t.Fatalf("期望 flush_every=500ms, got=%s", Conf.Storage.FlushEvery)
	}
	if Conf.Editor.AskTimeout != 2*time.Second || Conf.MySQL.SlowThreshold != time.Second {
		t.Fatalf("期望时长被解析, got=%s %s", Conf.Editor.AskTimeout, Conf.MySQL.SlowThreshold)
	}
	if Conf.Storage.Setting != "default" || Conf.SQLite.Path != "rpg.db" {
		t.Fatalf("期望默认值, got setting=%q path=%q", Conf.Storage.Setting, Conf.SQLite.Path)
	}
}

func TestLoad_环境变量覆盖设定名(t *testing.T) {
	Conf = Config{}
	t.Setenv(settingEnv, "from-env")
	path := writeConf(t, "storage:\n  setting: from-file\n")
	if err := Load(path); err != nil {
		t.Fatalf("期望加载成功, err=%v", err)
	}
	if Conf.Storage.Setting != "from-env" || Conf.Storage.Driver != DriverMemory {
		t.Fatalf("期望 from-env 和默认 memory 驱动, got=%q %q", Conf.Storage.Setting, Conf.Storage.Driver)
	}
}

func TestLoad_文件不存在(t *testing.T) {
	if err := Load(filepath.Join(t.TempDir(), "missing.yml")); err == nil {
		t.Fatalf("期望返回错误")
	}
}
