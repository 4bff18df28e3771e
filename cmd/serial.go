package cmd

import (
	"github.com/spf13/cobra"

	"github.com/moyu-x/batch-rename/pkg/renamer"
)

var serialCmd = &cobra.Command{
	Use:   "serial <files...>",
	Short: "按递增序号批量重命名",
	Long: `为每个文件分配递增序号组成新文件名，可配置前后缀和补零宽度。
默认从 --number 开始批内编号；指定 --counter 时改用持久化计数器，
序号跨批次连续，由配置 counter.path 指定存储位置。`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSerial,
}

func runSerial(cmd *cobra.Command, args []string) error {
	prefix, _ := cmd.Flags().GetString("prefix")
	suffix, _ := cmd.Flags().GetString("suffix")
	number, _ := cmd.Flags().GetInt("number")
	pad, _ := cmd.Flags().GetInt("pad")
	keepExt, _ := cmd.Flags().GetBool("keep-ext")
	keepOriginal, _ := cmd.Flags().GetBool("keep-original")

	return runRename(cmd, args, renamer.NewSerial(renamer.SerialConfig{
		Prefix:       prefix,
		Suffix:       suffix,
		Number:       number,
		Pad:          pad,
		KeepExt:      keepExt,
		KeepOriginal: keepOriginal,
	}))
}

func init() {
	serialCmd.Flags().StringP("prefix", "p", "", "序号前缀")
	serialCmd.Flags().StringP("suffix", "s", "", "序号后缀")
	serialCmd.Flags().IntP("number", "n", 1, "起始序号")
	serialCmd.Flags().Int("pad", 0, "序号补零宽度")
	serialCmd.Flags().Bool("keep-ext", true, "保留原扩展名")
	serialCmd.Flags().Bool("keep-original", false, "在前缀之后保留原文件名")
	serialCmd.Flags().BoolP("counter", "c", false, "使用持久化计数器，序号跨批次连续")

	addRenameFlags(serialCmd)
	rootCmd.AddCommand(serialCmd)
}
