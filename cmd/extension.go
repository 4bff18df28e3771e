package cmd

import (
	"github.com/spf13/cobra"

	"github.com/moyu-x/batch-rename/pkg/renamer"
)

var extensionCmd = &cobra.Command{
	Use:     "extension <files...>",
	Aliases: []string{"ext"},
	Short:   "修改文件扩展名",
	Long: `把文件扩展名替换为指定值，文件名主体保持不变。
扩展名开头的 . 会被忽略，留空则移除扩展名。`,
	Args: cobra.MinimumNArgs(1),
	RunE: runExtension,
}

func runExtension(cmd *cobra.Command, args []string) error {
	newExt, _ := cmd.Flags().GetString("ext")

	return runRename(cmd, args, renamer.NewExtension(newExt))
}

func init() {
	extensionCmd.Flags().StringP("ext", "e", "", "新的扩展名，留空则移除扩展名")

	addRenameFlags(extensionCmd)
	rootCmd.AddCommand(extensionCmd)
}
