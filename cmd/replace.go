package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/moyu-x/batch-rename/pkg/renamer"
)

var replaceCmd = &cobra.Command{
	Use:   "replace <files...>",
	Short: "替换文件名中的文本",
	Long: `把文件名主体中所有匹配的文本替换为新文本，扩展名不参与匹配。
指定 --regex 时按 Go 正则表达式匹配，替换文本支持 $1 等捕获组引用，
表达式无法编译时整个批次被拒绝，不改动任何文件。`,
	Args: cobra.MinimumNArgs(1),
	RunE: runReplace,
}

func runReplace(cmd *cobra.Command, args []string) error {
	from, _ := cmd.Flags().GetString("from")
	to, _ := cmd.Flags().GetString("to")
	useRegex, _ := cmd.Flags().GetBool("regex")

	return runRename(cmd, args, renamer.NewReplace(from, to, useRegex))
}

func init() {
	replaceCmd.Flags().StringP("from", "f", "", "要查找的文本或正则表达式 (必需)")
	replaceCmd.Flags().StringP("to", "t", "", "替换后的文本")
	replaceCmd.Flags().BoolP("regex", "r", false, "按正则表达式匹配")

	if err := replaceCmd.MarkFlagRequired("from"); err != nil {
		fmt.Println("查找文本需要给出")
		return
	}

	addRenameFlags(replaceCmd)
	rootCmd.AddCommand(replaceCmd)
}
