package serverconfig

import (
	"os"
	"time"

	"RpgTools/internal/shared/config"
)

const defaultConfigRelPath = "configs/conf.yml"

const settingEnv = "RPG_SETTING"

var Conf Config

// Load 读取配置并补齐默认值。path 为空时从当前目录向上查找 configs/conf.yml。
func Load(path string) error {
	if path == "" {
		path = defaultConfigRelPath
	}
	if _, err := config.Load(path, &Conf); err != nil {
		return err
	}
	Conf.applyDefaults()
	return nil
}

func (c *Config) applyDefaults() {
	// 环境变量优先于配置文件
	if s := os.Getenv(settingEnv); s != "" {
		c.Storage.Setting = s
	}
	if c.Storage.Setting == "" {
		c.Storage.Setting = "default"
	}
	if c.Storage.Driver == "" {
		c.Storage.Driver = DriverMemory
	}
	if c.Storage.FlushEvery <= 0 {
		c.Storage.FlushEvery = 3 * time.Second
	}
	if c.Editor.AskTimeout <= 0 {
		c.Editor.AskTimeout = 3 * time.Second
	}
	if c.MongoDB.Collection == "" {
		c.MongoDB.Collection = "rpg_settings"
	}
	if c.SQLite.Path == "" {
		c.SQLite.Path = "rpg.db"
	}
}
