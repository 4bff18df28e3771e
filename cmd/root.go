package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/moyu-x/batch-rename/app"
	"github.com/moyu-x/batch-rename/config"
	"github.com/moyu-x/batch-rename/internal"
)

var (
	cfgFile string
	debug   bool
	logFile string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "batch-rename",
	Short: "一个按规则批量重命名文件的工具",
	Long: `Batch Rename 是一个命令行工具，按可组合的规则批量重命名文件。

主要功能:
- 固定名称、序号、替换、增删字符、扩展名、大小写、全半角八种模式
- 替换支持字面量和正则表达式，只作用于文件名主体
- 重命名前校验空名和目标冲突，单个文件失败不中断批次
- 序号支持批内编号或跨批次的持久化计数器
- 每个批次的结果写入 SQLite 历史库，可查询回溯
- 提供 TUI 交互界面和 HTTP 接口两种附加入口`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// setup 读取配置并初始化日志，所有子命令的公共入口
func setup() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, err
	}

	file := cfg.Logging.File
	if logFile != "" {
		file = logFile
	}
	if err := app.InitLogging(debug, cfg.Logging.Level, file); err != nil {
		return nil, err
	}

	return cfg, nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "配置文件路径（默认查找 "+internal.DefaultConfigPath+" 等位置）")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "输出调试日志")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "日志同时写入指定文件")
}
