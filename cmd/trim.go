package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/moyu-x/batch-rename/pkg/renamer"
)

var trimCmd = &cobra.Command{
	Use:   "trim <files...>",
	Short: "从文件名两端删除字符",
	Long: `从文件名主体的开头或结尾删除指定数量的字符，按 Unicode 字符计数。
删除数量不小于文件名长度时结果为空名，批次校验会拦截该文件。`,
	Args: cobra.MinimumNArgs(1),
	RunE: runTrim,
}

func runTrim(cmd *cobra.Command, args []string) error {
	count, _ := cmd.Flags().GetInt("count")
	position, _ := cmd.Flags().GetString("position")

	if count < 0 {
		return fmt.Errorf("删除数量不能为负数: %d", count)
	}
	pos, err := parsePosition(position)
	if err != nil {
		return err
	}

	return runRename(cmd, args, renamer.NewTrim(count, pos))
}

func init() {
	trimCmd.Flags().IntP("count", "n", 0, "删除的字符数 (必需)")
	trimCmd.Flags().StringP("position", "p", "end", "删除位置: start 或 end")

	if err := trimCmd.MarkFlagRequired("count"); err != nil {
		fmt.Println("删除数量需要给出")
		return
	}

	addRenameFlags(trimCmd)
	rootCmd.AddCommand(trimCmd)
}
