package app

import (
	"fmt"

	"github.com/moyu-x/batch-rename/internal"
	"github.com/moyu-x/batch-rename/pkg/database"
)

// ListHistory 查询最近的批次汇总
func ListHistory(dbPath string, limit int) ([]database.BatchSummary, error) {
	db, err := database.NewDatabase(dbPath)
	if err != nil {
		return nil, fmt.Errorf("打开历史数据库失败: %w", err)
	}
	defer db.Close()

	return db.RecentBatches(limit)
}

// ShowBatch 查询指定批次的全部记录
func ShowBatch(dbPath, batchID string) ([]internal.RenameRecord, error) {
	db, err := database.NewDatabase(dbPath)
	if err != nil {
		return nil, fmt.Errorf("打开历史数据库失败: %w", err)
	}
	defer db.Close()

	return db.BatchRecords(batchID)
}
