package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/moyu-x/batch-rename/pkg/renamer"
)

var widthCmd = &cobra.Command{
	Use:   "width <files...>",
	Short: "转换文件名全角/半角",
	Long: `在全角和半角之间转换文件名主体，覆盖 ASCII 可见字符和空格。
zenkaku 把半角转为全角，hankaku 把全角转为半角，其余字符不受影响。`,
	Args: cobra.MinimumNArgs(1),
	RunE: runWidth,
}

func runWidth(cmd *cobra.Command, args []string) error {
	mode, _ := cmd.Flags().GetString("mode")

	cm, err := parseConvertMode(mode)
	if err != nil {
		return err
	}

	return runRename(cmd, args, renamer.NewConvert(cm))
}

// parseConvertMode 解析 zenkaku/hankaku 参数
func parseConvertMode(s string) (renamer.ConvertMode, error) {
	switch renamer.ConvertMode(s) {
	case renamer.ConvertZenkaku, renamer.ConvertHankaku:
		return renamer.ConvertMode(s), nil
	}
	return "", fmt.Errorf("全半角参数无效: %q，应为 zenkaku 或 hankaku", s)
}

func init() {
	widthCmd.Flags().StringP("mode", "m", "", "转换方向: zenkaku 或 hankaku (必需)")

	if err := widthCmd.MarkFlagRequired("mode"); err != nil {
		fmt.Println("转换方向需要给出")
		return
	}

	addRenameFlags(widthCmd)
	rootCmd.AddCommand(widthCmd)
}
