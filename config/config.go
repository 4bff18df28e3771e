package config

import (
	"github.com/spf13/viper"

	"github.com/moyu-x/batch-rename/internal"
)

type Config struct {
	Database struct {
		Path string
	}
	Counter struct {
		Path string
	}
	History struct {
		Enabled bool
	}
	Server struct {
		Addr string
	}
	Performance struct {
		Workers int
	}
	Logging struct {
		Level string
		File  string
	}
}

var cfg Config

// Load 读取配置文件
// file 非空时只读取该文件，否则依次查找 $HOME/.batch-rename、
// 当前目录和 /etc/batch-rename，找不到配置文件时使用默认值
func Load(file string) (*Config, error) {
	if file != "" {
		viper.SetConfigFile(file)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")

		viper.AddConfigPath("$HOME/.batch-rename")
		viper.AddConfigPath(".")
		viper.AddConfigPath("/etc/batch-rename")
	}

	viper.SetDefault("database.path", internal.DefaultDatabasePath)
	viper.SetDefault("counter.path", internal.DefaultCounterPath)
	viper.SetDefault("history.enabled", true)
	viper.SetDefault("server.addr", internal.DefaultServerAddr)
	viper.SetDefault("performance.workers", internal.DefaultWorkers)
	viper.SetDefault("logging.level", "info")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func Get() *Config {
	return &cfg
}
