package controller

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/moyu-x/batch-rename/app"
	"github.com/moyu-x/batch-rename/internal"
	"github.com/moyu-x/batch-rename/pkg/web/model"
)

// HistoryController 处理历史查询接口
type HistoryController struct {
	*basicController
}

func NewHistoryController(ctx *gin.Context) *HistoryController {
	return &HistoryController{
		basicController: newBasicController(ctx),
	}
}

// ListBatches 返回最近的批次摘要，limit 参数控制数量
func (c *HistoryController) ListBatches() {
	limit := c.QueryInt(c.ctx.Query("limit"), internal.DefaultHistoryLimit)

	batches, err := app.ListHistory(appConfig.Database.Path, limit)
	if err != nil {
		c.RespondError(
			http.StatusInternalServerError,
			model.ErrorCodeHistoryFailed,
			fmt.Sprintf("查询历史失败: %v", err),
		)
		return
	}

	items := make([]model.HistoryBatch, 0, len(batches))
	for _, b := range batches {
		items = append(items, model.HistoryBatch{
			BatchID:   b.BatchID,
			Mode:      b.Mode,
			Total:     b.Total,
			Succeeded: b.Succeeded,
			CreatedAt: b.CreatedAt,
		})
	}
	c.RespondSuccess(items)
}

// GetBatch 返回单个批次的逐文件明细
func (c *HistoryController) GetBatch() {
	batchID := c.ctx.Param("id")

	records, err := app.ShowBatch(appConfig.Database.Path, batchID)
	if err != nil {
		c.RespondError(
			http.StatusInternalServerError,
			model.ErrorCodeHistoryFailed,
			fmt.Sprintf("查询历史失败: %v", err),
		)
		return
	}

	if len(records) == 0 {
		c.RespondError(http.StatusNotFound, model.ErrorCodeNotFound, "未找到对应批次")
		return
	}

	items := make([]model.HistoryRecord, 0, len(records))
	for _, r := range records {
		items = append(items, model.HistoryRecord{
			OldPath:   r.OldPath,
			NewPath:   r.NewPath,
			Status:    r.Status,
			Hash:      r.Hash,
			CreatedAt: r.CreatedAt,
		})
	}
	c.RespondSuccess(items)
}
