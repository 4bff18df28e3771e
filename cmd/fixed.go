package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/moyu-x/batch-rename/pkg/renamer"
)

var fixedCmd = &cobra.Command{
	Use:   "fixed <files...>",
	Short: "重命名为固定名称",
	Long: `把文件重命名为指定的固定名称。
多个文件使用同一名称时，批次校验会拦截后续的目标冲突。`,
	Args: cobra.MinimumNArgs(1),
	RunE: runFixed,
}

func runFixed(cmd *cobra.Command, args []string) error {
	name, _ := cmd.Flags().GetString("name")
	keepExt, _ := cmd.Flags().GetBool("keep-ext")

	return runRename(cmd, args, renamer.NewFixed(name, keepExt))
}

func init() {
	fixedCmd.Flags().StringP("name", "n", "", "新的文件名主体 (必需)")
	fixedCmd.Flags().Bool("keep-ext", true, "保留原扩展名")

	if err := fixedCmd.MarkFlagRequired("name"); err != nil {
		fmt.Println("固定名称需要给出")
		return
	}

	addRenameFlags(fixedCmd)
	rootCmd.AddCommand(fixedCmd)
}
