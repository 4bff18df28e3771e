// Package web 提供批量重命名的 HTTP 接口
package web

import (
	"github.com/gin-gonic/gin"

	"github.com/moyu-x/batch-rename/config"
	"github.com/moyu-x/batch-rename/pkg/logger"
	"github.com/moyu-x/batch-rename/pkg/web/controller"
)

// Run 注入配置、构建路由并监听 addr
func Run(addr string, cfg *config.Config) error {
	controller.Init(cfg)

	r := NewRouter()
	logger.Get().Info().Msgf("HTTP 服务监听 %s", addr)
	return r.Run(addr)
}

// NewRouter 组装全部路由
func NewRouter() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(logMiddleware())

	r.GET("/ping", controller.PingHandler)

	api := r.Group("/api/v1")
	{
		api.POST("/rename", withRename(func(c *controller.RenameController) { c.Rename() }))
		api.POST("/preview", withRename(func(c *controller.RenameController) { c.Preview() }))
		api.GET("/history", withHistory(func(c *controller.HistoryController) { c.ListBatches() }))
		api.GET("/history/:id", withHistory(func(c *controller.HistoryController) { c.GetBatch() }))
	}

	return r
}

func withRename(fn func(*controller.RenameController)) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		fn(controller.NewRenameController(ctx))
	}
}

func withHistory(fn func(*controller.HistoryController)) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		fn(controller.NewHistoryController(ctx))
	}
}

func logMiddleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		logger.Get().Info().Msgf("HTTP 请求: %s %s", ctx.Request.Method, ctx.Request.URL.String())
		ctx.Next()
	}
}
