// Package config 用 viper 加载 yaml 配置并监听变更。
package config

import (
	"errors"
	"os"
	"path/filepath"
)

const defaultConfigRelPath = "configs/conf.yml"

var ErrConfigNotFound = errors.New("config file not exist")

// Load 把配置解码进 out 并返回实际使用的路径。
//
// 约定：
// 1) 绝对路径直接使用；
// 2) 相对路径先按当前目录解析，不存在时从当前目录开始向上查找。
func Load(cfgName string, out any) (string, error) {
	path, err := resolve(cfgName)
	if err != nil {
		return "", err
	}
	return path, load(path, out)
}

func resolve(cfgName string) (string, error) {
	if cfgName == "" {
		cfgName = defaultConfigRelPath
	}
	if filepath.IsAbs(cfgName) {
		if !fileExist(cfgName) {
			return "", errors.Join(ErrConfigNotFound, errors.New(cfgName))
		}
		return cfgName, nil
	}
	curDir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return findConfigUpward(curDir, cfgName)
}

func findConfigUpward(startDir, rel string) (string, error) {
	dir := startDir
	for {
		candidate := filepath.Join(dir, rel)
		if fileExist(candidate) {
			return candidate, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", errors.Join(ErrConfigNotFound, errors.New("searched "+rel+" from: "+startDir))
		}
		dir = parent
	}
}
