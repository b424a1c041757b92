package config

import (
	"os"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var (
	watchMu  sync.Mutex
	onChange []func()
)

// OnChange 注册配置热更新后的回调。
func OnChange(fn func()) {
	watchMu.Lock()
	defer watchMu.Unlock()
	onChange = append(onChange, fn)
}

func load(configPath string, out any) error {
	v := viper.New()
	v.SetConfigFile(configPath)
	if err := v.ReadInConfig(); err != nil {
		return err
	}
	if err := v.Unmarshal(out, decodeHook()); err != nil {
		return err
	}

	v.OnConfigChange(func(e fsnotify.Event) {
		watchMu.Lock()
		defer watchMu.Unlock()
		if err := v.Unmarshal(out, decodeHook()); err != nil {
			zap.L().Error("reload config failed", zap.String("file", e.Name), zap.Error(err))
			return
		}
		zap.L().Info("config reloaded", zap.String("file", e.Name))
		for _, fn := range onChange {
			fn()
		}
	})
	v.WatchConfig()
	return nil
}

// decodeHook 支持 "3s"、"200ms" 这类时长写法。
func decodeHook() viper.DecoderConfigOption {
	return viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	))
}

func fileExist(fileName string) bool {
	_, err := os.Stat(fileName)
	return err == nil
}
