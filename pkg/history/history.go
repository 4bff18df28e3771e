// Package history 在批次完成后写入重命名历史
package history

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/moyu-x/batch-rename/internal"
	"github.com/moyu-x/batch-rename/pkg/database"
	"github.com/moyu-x/batch-rename/pkg/hasher"
	"github.com/moyu-x/batch-rename/pkg/logger"
	"github.com/moyu-x/batch-rename/pkg/renamer"
)

// Recorder 批次历史记录器
// 成功重命名的文件并发计算内容哈希后随记录一起入库
type Recorder struct {
	db      *database.Database
	workers int
}

// NewRecorder 创建历史记录器
func NewRecorder(db *database.Database, workers int) *Recorder {
	return &Recorder{db: db, workers: workers}
}

// Record 将一个批次的结果写入历史库，返回生成的批次 ID
// 记录与结果一一对应，失败的记录哈希和新路径留空
func (r *Recorder) Record(cmd renamer.Command, results []renamer.Result) (string, error) {
	batchID := uuid.NewString()
	hashes := r.hashNewFiles(results)

	now := time.Now().Unix()
	records := make([]internal.RenameRecord, 0, len(results))
	for _, res := range results {
		rec := internal.RenameRecord{
			BatchID:   batchID,
			OldPath:   res.Path,
			Status:    res.StatusText(),
			Mode:      string(cmd.Mode),
			CreatedAt: now,
		}
		if res.Ok() {
			newPath := newFullPath(res)
			rec.NewPath = newPath
			if h, ok := hashes[newPath]; ok {
				rec.Hash = fmt.Sprintf("%x", h)
			}
		}
		records = append(records, rec)
	}

	if err := r.db.InsertRecords(records); err != nil {
		return "", err
	}

	logger.Get().Debug().Str("batch", batchID).Int("count", len(records)).Msg("历史记录写入完成")
	return batchID, nil
}

// hashNewFiles 并发计算成功结果对应新文件的哈希
// 池启动失败时降级为不带哈希的记录
func (r *Recorder) hashNewFiles(results []renamer.Result) map[string]uint64 {
	paths := make([]string, 0, len(results))
	for _, res := range results {
		if res.Ok() {
			paths = append(paths, newFullPath(res))
		}
	}
	if len(paths) == 0 {
		return nil
	}

	pool := hasher.NewPool(r.workers)
	if err := pool.Start(); err != nil {
		logger.Get().Warn().Err(err).Msg("哈希计算池启动失败，历史记录不带哈希")
		return nil
	}

	done := make(chan map[string]uint64, 1)
	go func() {
		hashes := make(map[string]uint64, len(paths))
		for res := range pool.Results() {
			if res.Err == nil {
				hashes[res.Path] = res.Hash
			}
		}
		done <- hashes
	}()

	for _, p := range paths {
		pool.AddTask(hasher.Task{Path: p})
	}
	pool.Close()
	return <-done
}

// newFullPath 由结果拼出重命名后的完整路径
func newFullPath(res renamer.Result) string {
	return renamer.Split(res.Path).Dir + res.NewName
}
