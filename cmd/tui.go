package cmd

import (
	"github.com/spf13/cobra"

	"github.com/moyu-x/batch-rename/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "启动交互式界面",
	Long:  `启动终端交互界面，逐步选择模式、填写参数、预览并执行重命名。`,
	RunE:  runTui,
}

func runTui(cmd *cobra.Command, args []string) error {
	cfg, err := setup()
	if err != nil {
		return err
	}

	return tui.Run(&tui.Config{
		CounterPath:    cfg.Counter.Path,
		DatabasePath:   cfg.Database.Path,
		HistoryEnabled: cfg.History.Enabled,
		Workers:        cfg.Performance.Workers,
	})
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}
