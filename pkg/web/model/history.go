package model

// HistoryBatch 批次摘要
type HistoryBatch struct {
	BatchID   string `json:"batch_id"`
	Mode      string `json:"mode"`
	Total     int64  `json:"total"`
	Succeeded int64  `json:"succeeded"`
	CreatedAt int64  `json:"created_at"`
}

// HistoryRecord 批次内单个文件的记录
type HistoryRecord struct {
	OldPath   string `json:"old_path"`
	NewPath   string `json:"new_path,omitempty"`
	Status    string `json:"status"`
	Hash      string `json:"hash,omitempty"`
	CreatedAt int64  `json:"created_at"`
}
