package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/moyu-x/batch-rename/pkg/counter"
)

var counterCmd = &cobra.Command{
	Use:   "counter",
	Short: "查看和管理持久化计数器",
	Long: `管理 serial --counter 模式使用的持久化计数器。
不带子命令时显示下一个待分配的序号。`,
	RunE: runCounterShow,
}

var counterSetCmd = &cobra.Command{
	Use:   "set <number>",
	Short: "设置计数器的下一个序号",
	Args:  cobra.ExactArgs(1),
	RunE:  runCounterSet,
}

var counterResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "把计数器重置为 1",
	RunE:  runCounterReset,
}

func runCounterShow(cmd *cobra.Command, args []string) error {
	cfg, err := setup()
	if err != nil {
		return err
	}

	store, err := counter.New(cfg.Counter.Path)
	if err != nil {
		return err
	}
	defer store.Close()

	fmt.Printf("计数器文件: %s\n", store.Path())
	fmt.Printf("下一个序号: %d\n", store.Peek())
	return nil
}

func runCounterSet(cmd *cobra.Command, args []string) error {
	cfg, err := setup()
	if err != nil {
		return err
	}

	n, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("序号必须是整数: %q", args[0])
	}
	if n < 1 {
		return fmt.Errorf("序号必须不小于 1，当前为 %d", n)
	}

	store, err := counter.New(cfg.Counter.Path)
	if err != nil {
		return err
	}

	store.SetNext(n)
	if err := store.Flush(); err != nil {
		return err
	}

	fmt.Printf("计数器已设置为 %d\n", n)
	return nil
}

func runCounterReset(cmd *cobra.Command, args []string) error {
	cfg, err := setup()
	if err != nil {
		return err
	}

	store, err := counter.New(cfg.Counter.Path)
	if err != nil {
		return err
	}

	if err := store.Reset(); err != nil {
		return err
	}

	fmt.Println("计数器已重置为 1")
	return nil
}

func init() {
	counterCmd.AddCommand(counterSetCmd)
	counterCmd.AddCommand(counterResetCmd)

	rootCmd.AddCommand(counterCmd)
}
