package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/moyu-x/batch-rename/app"
	"github.com/moyu-x/batch-rename/pkg/logger"
	"github.com/moyu-x/batch-rename/pkg/renamer"
)

// 结果输出颜色
var (
	colorGreen = color.New(color.FgGreen)
	colorRed   = color.New(color.FgRed)
	colorCyan  = color.New(color.FgCyan)
)

// addRenameFlags 注册各模式子命令共用的参数
func addRenameFlags(cmd *cobra.Command) {
	cmd.Flags().String("glob", "", "按文件名过滤，支持 ** 通配符")
	cmd.Flags().String("type", "", "按内容类别过滤: image/video/audio/document/archive")
	cmd.Flags().Bool("dry-run", false, "预览模式，不实际修改文件")
	cmd.Flags().Bool("no-history", false, "本次不写入历史记录")
}

// runRename 组装参数执行批次，逐个打印结果并输出统计
func runRename(cmd *cobra.Command, args []string, rc renamer.Command) error {
	cfg, err := setup()
	if err != nil {
		return err
	}

	glob, _ := cmd.Flags().GetString("glob")
	typeFilter, _ := cmd.Flags().GetString("type")
	dryRun, _ := cmd.Flags().GetBool("dry-run")
	noHistory, _ := cmd.Flags().GetBool("no-history")
	// counter 只在 serial 子命令上注册，其余命令取到 false
	useCounter, _ := cmd.Flags().GetBool("counter")

	opts := &app.RenameOptions{
		Args:           args,
		Command:        rc,
		Glob:           glob,
		Type:           typeFilter,
		DryRun:         dryRun,
		UseCounter:     useCounter,
		CounterPath:    cfg.Counter.Path,
		HistoryEnabled: cfg.History.Enabled && !noHistory,
		DatabasePath:   cfg.Database.Path,
		Workers:        cfg.Performance.Workers,
		OnResult:       printResult(dryRun),
	}

	outcome, err := app.RunRename(opts)
	if err != nil {
		return err
	}

	printBatchStats(outcome)
	return nil
}

// printResult 返回逐个文件的结果打印回调
func printResult(dryRun bool) func(renamer.Result) {
	return func(r renamer.Result) {
		switch {
		case r.Ok() && dryRun:
			colorCyan.Printf("[预览] %s -> %s\n", r.Path, r.NewName)
		case r.Ok():
			colorGreen.Printf("%s -> %s\n", r.Path, r.NewName)
		default:
			colorRed.Printf("%s [%s]\n", r.Path, r.StatusText())
		}
	}
}

func printBatchStats(outcome *app.RenameOutcome) {
	stats := outcome.Stats

	logger.Get().Info().Msg("========== 处理完成 ==========")
	logger.Get().Info().Msgf("总文件数: %d", stats.Total)
	logger.Get().Info().Msgf("成功: %d 个文件", stats.Succeeded)
	logger.Get().Info().Msgf("失败: %d 个文件", stats.Failed)
	if outcome.BatchID != "" {
		logger.Get().Info().Msgf("历史批次: %s", outcome.BatchID)
	}
	logger.Get().Info().Msgf("总耗时: %v", stats.EndTime.Sub(stats.StartTime))
	logger.Get().Info().Msg("============================")
}

// parsePosition 解析 start/end 位置参数
func parsePosition(s string) (renamer.Position, error) {
	switch renamer.Position(s) {
	case renamer.PositionStart, renamer.PositionEnd:
		return renamer.Position(s), nil
	}
	return "", fmt.Errorf("位置参数无效: %q，应为 start 或 end", s)
}
