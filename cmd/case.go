package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/moyu-x/batch-rename/pkg/renamer"
)

var caseCmd = &cobra.Command{
	Use:   "case <files...>",
	Short: "转换文件名大小写",
	Long:  `把文件名主体转换为全大写或全小写，扩展名保持不变。`,
	Args:  cobra.MinimumNArgs(1),
	RunE:  runCase,
}

func runCase(cmd *cobra.Command, args []string) error {
	mode, _ := cmd.Flags().GetString("mode")

	cm, err := parseCaseMode(mode)
	if err != nil {
		return err
	}

	return runRename(cmd, args, renamer.NewCase(cm))
}

// parseCaseMode 解析 upper/lower 参数
func parseCaseMode(s string) (renamer.CaseMode, error) {
	switch renamer.CaseMode(s) {
	case renamer.CaseUpper, renamer.CaseLower:
		return renamer.CaseMode(s), nil
	}
	return "", fmt.Errorf("大小写参数无效: %q，应为 upper 或 lower", s)
}

func init() {
	caseCmd.Flags().StringP("mode", "m", "", "转换方式: upper 或 lower (必需)")

	if err := caseCmd.MarkFlagRequired("mode"); err != nil {
		fmt.Println("转换方式需要给出")
		return
	}

	addRenameFlags(caseCmd)
	rootCmd.AddCommand(caseCmd)
}
