package cmd

import (
	"github.com/spf13/cobra"

	"github.com/moyu-x/batch-rename/pkg/web"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "启动 HTTP 服务",
	Long: `以 HTTP 服务方式提供重命名接口。
接口挂载在 /api/v1 下，支持执行、预演和历史查询。`,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := setup()
	if err != nil {
		return err
	}

	addr, _ := cmd.Flags().GetString("addr")
	if addr == "" {
		addr = cfg.Server.Addr
	}

	return web.Run(addr, cfg)
}

func init() {
	serveCmd.Flags().StringP("addr", "a", "", "监听地址（默认读取配置 server.addr）")

	rootCmd.AddCommand(serveCmd)
}
