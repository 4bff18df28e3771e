package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/moyu-x/batch-rename/app"
	"github.com/moyu-x/batch-rename/internal"
	"github.com/moyu-x/batch-rename/pkg/renamer"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "查看重命名历史",
	Long: `列出最近的重命名批次及其成功数量。
使用 history show <batch-id> 查看单个批次的逐文件明细。`,
	RunE: runHistoryList,
}

var historyShowCmd = &cobra.Command{
	Use:   "show <batch-id>",
	Short: "查看单个批次的重命名明细",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryShow,
}

func runHistoryList(cmd *cobra.Command, args []string) error {
	cfg, err := setup()
	if err != nil {
		return err
	}

	limit, _ := cmd.Flags().GetInt("limit")
	batches, err := app.ListHistory(cfg.Database.Path, limit)
	if err != nil {
		return err
	}

	if len(batches) == 0 {
		fmt.Println("暂无历史记录")
		return nil
	}

	for _, b := range batches {
		created := time.Unix(b.CreatedAt, 0).Format("2006-01-02 15:04:05")
		fmt.Printf("%s  %s  %-9s  成功 %d/%d\n",
			b.BatchID, created, b.Mode, b.Succeeded, b.Total)
	}
	return nil
}

func runHistoryShow(cmd *cobra.Command, args []string) error {
	cfg, err := setup()
	if err != nil {
		return err
	}

	records, err := app.ShowBatch(cfg.Database.Path, args[0])
	if err != nil {
		return err
	}

	if len(records) == 0 {
		fmt.Println("未找到对应批次")
		return nil
	}

	for _, r := range records {
		if r.Status == string(renamer.StatusSuccess) {
			colorGreen.Printf("%s -> %s\n", r.OldPath, r.NewPath)
		} else {
			colorRed.Printf("%s [%s]\n", r.OldPath, r.Status)
		}
	}
	return nil
}

func init() {
	historyCmd.Flags().IntP("limit", "n", internal.DefaultHistoryLimit, "显示的批次数量")

	historyCmd.AddCommand(historyShowCmd)
	rootCmd.AddCommand(historyCmd)
}
