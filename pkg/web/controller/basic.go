package controller

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/moyu-x/batch-rename/config"
	"github.com/moyu-x/batch-rename/pkg/web/model"
)

// 运行配置由 Init 注入，路由启动前必须调用
var appConfig *config.Config

// Init 注入控制器依赖的运行配置
func Init(cfg *config.Config) {
	appConfig = cfg
}

type basicController struct {
	ctx *gin.Context
}

func newBasicController(ctx *gin.Context) *basicController {
	return &basicController{ctx: ctx}
}

func (c *basicController) RespondError(status int, code model.ErrorCode, message ...string) {
	resp := model.Response{Code: code}
	if len(message) > 0 {
		resp.Message = message[0]
	}
	c.ctx.JSON(status, resp)
}

func (c *basicController) RespondSuccess(data any) {
	c.ctx.JSON(http.StatusOK, model.Response{Code: model.CodeOK, Data: data})
}

func (c *basicController) QueryInt(query string, defaultValue int) int {
	val, err := strconv.Atoi(query)
	if err != nil {
		return defaultValue
	}
	return val
}

func (c *basicController) bindJSON(target any) error {
	decoder := json.NewDecoder(c.ctx.Request.Body)
	return decoder.Decode(target)
}

// PingHandler 健康检查
func PingHandler(ctx *gin.Context) {
	ctx.String(http.StatusOK, "pong")
}
