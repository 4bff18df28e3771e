package controller

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/moyu-x/batch-rename/app"
	"github.com/moyu-x/batch-rename/pkg/web/model"
)

// RenameController 处理重命名执行和预演接口
type RenameController struct {
	*basicController
}

func NewRenameController(ctx *gin.Context) *RenameController {
	return &RenameController{
		basicController: newBasicController(ctx),
	}
}

// Rename 执行批量重命名
func (c *RenameController) Rename() {
	c.handleRename(false)
}

// Preview 预演批量重命名，返回将要产生的结果但不改动文件
func (c *RenameController) Preview() {
	c.handleRename(true)
}

func (c *RenameController) handleRename(forceDryRun bool) {
	var request model.RenameRequest
	if err := c.bindJSON(&request); err != nil {
		c.RespondError(
			http.StatusBadRequest,
			model.ErrorCodeInvalidRequest,
			fmt.Sprintf("解析请求失败: %v", err),
		)
		return
	}

	if err := request.Validate(); err != nil {
		c.RespondError(
			http.StatusBadRequest,
			model.ErrorCodeInvalidRequest,
			fmt.Sprintf("请求校验失败: %v", err),
		)
		return
	}

	outcome, err := app.RunRename(&app.RenameOptions{
		Args:           request.Paths,
		Command:        request.Command,
		Glob:           request.Glob,
		Type:           request.Type,
		DryRun:         forceDryRun || request.DryRun,
		UseCounter:     request.UseCounter,
		CounterPath:    appConfig.Counter.Path,
		HistoryEnabled: appConfig.History.Enabled,
		DatabasePath:   appConfig.Database.Path,
		Workers:        appConfig.Performance.Workers,
	})
	if err != nil {
		c.RespondError(
			http.StatusInternalServerError,
			model.ErrorCodeRenameFailed,
			fmt.Sprintf("批次执行失败: %v", err),
		)
		return
	}

	c.RespondSuccess(newRenameResponse(outcome))
}

func newRenameResponse(outcome *app.RenameOutcome) model.RenameResponse {
	resp := model.RenameResponse{
		BatchID:   outcome.BatchID,
		Total:     outcome.Stats.Total,
		Succeeded: outcome.Stats.Succeeded,
		Failed:    outcome.Stats.Failed,
		Results:   make([]model.RenameResult, 0, len(outcome.Results)),
	}
	for _, r := range outcome.Results {
		resp.Results = append(resp.Results, model.RenameResult{
			Path:    r.Path,
			Status:  r.StatusText(),
			NewName: r.NewName,
		})
	}
	return resp
}
