package internal

import "time"

// 批次处理统计
type BatchStats struct {
	Total     int
	Succeeded int
	Failed    int
	StartTime time.Time
	EndTime   time.Time
}

// 重命名历史记录
type RenameRecord struct {
	ID        int64
	BatchID   string
	OldPath   string
	NewPath   string
	Status    string
	Mode      string
	Hash      string
	CreatedAt int64
}
