package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/moyu-x/batch-rename/pkg/renamer"
)

var addCmd = &cobra.Command{
	Use:   "add <files...>",
	Short: "在文件名前后追加文本",
	Long:  `在文件名主体的开头或结尾追加指定文本，扩展名保持不变。`,
	Args:  cobra.MinimumNArgs(1),
	RunE:  runAdd,
}

func runAdd(cmd *cobra.Command, args []string) error {
	text, _ := cmd.Flags().GetString("text")
	position, _ := cmd.Flags().GetString("position")

	pos, err := parsePosition(position)
	if err != nil {
		return err
	}

	return runRename(cmd, args, renamer.NewAdd(text, pos))
}

func init() {
	addCmd.Flags().StringP("text", "x", "", "要追加的文本 (必需)")
	addCmd.Flags().StringP("position", "p", "end", "追加位置: start 或 end")

	if err := addCmd.MarkFlagRequired("text"); err != nil {
		fmt.Println("追加文本需要给出")
		return
	}

	addRenameFlags(addCmd)
	rootCmd.AddCommand(addCmd)
}
