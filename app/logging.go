package app

import "github.com/moyu-x/batch-rename/pkg/logger"

// InitLogging 初始化日志，verbose 时强制 debug 级别
func InitLogging(verbose bool, level, file string) error {
	if verbose {
		level = "debug"
	}
	return logger.Init(level, file)
}
