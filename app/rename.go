package app

import (
	"fmt"
	"sync"
	"time"

	"github.com/moyu-x/batch-rename/internal"
	"github.com/moyu-x/batch-rename/pkg/batch"
	"github.com/moyu-x/batch-rename/pkg/counter"
	"github.com/moyu-x/batch-rename/pkg/database"
	"github.com/moyu-x/batch-rename/pkg/history"
	"github.com/moyu-x/batch-rename/pkg/logger"
	"github.com/moyu-x/batch-rename/pkg/renamer"
)

// RenameOptions 一次批量重命名的全部参数
type RenameOptions struct {
	Args    []string // 文件或目录参数
	Command renamer.Command
	Glob    string // 文件名通配过滤
	Type    string // 内容类别过滤
	DryRun  bool

	// Serial 模式使用持久化计数器
	UseCounter  bool
	CounterPath string

	// 历史记录
	HistoryEnabled bool
	DatabasePath   string
	Workers        int

	// 每个文件处理完成后的回调，可为 nil
	OnResult func(renamer.Result)
}

// RenameOutcome 批次执行结果
type RenameOutcome struct {
	BatchID string // 历史批次 ID，未记录时为空
	Results []renamer.Result
	Stats   internal.BatchStats
}

// 手动计数的批次串行执行，避免并发请求争用计数器文件
var counterMu sync.Mutex

// RunRename 执行完整的重命名流程:
// 展开参数 -> 绑定序号策略 -> 调度批次 -> 回写计数器 -> 写入历史
func RunRename(opts *RenameOptions) (*RenameOutcome, error) {
	builder := batch.NewBuilder()
	builder.Glob = opts.Glob
	builder.Type = opts.Type
	paths, err := builder.Build(opts.Args)
	if err != nil {
		return nil, fmt.Errorf("构建批次失败: %w", err)
	}

	outcome := &RenameOutcome{}
	stats := internal.BatchStats{StartTime: time.Now()}
	if len(paths) == 0 {
		logger.Get().Warn().Msg("没有匹配的文件")
		stats.EndTime = time.Now()
		outcome.Stats = stats
		return outcome, nil
	}

	logger.Get().Info().Msgf("开始批量重命名，模式: %s，文件数: %d", opts.Command.Mode, len(paths))

	d := renamer.NewDispatcher()
	d.DryRun = opts.DryRun
	d.OnResult = opts.OnResult

	b := renamer.NewBatch(paths, opts.Command)

	var store *counter.Store
	if opts.UseCounter && opts.Command.Mode == renamer.ModeSerial {
		counterMu.Lock()
		defer counterMu.Unlock()

		store, err = counter.New(opts.CounterPath)
		if err != nil {
			return nil, fmt.Errorf("打开计数器失败: %w", err)
		}
		defer store.Close()
		b.Sequence = renamer.NewManualSequence(store.Peek())
	}

	results, err := d.Dispatch(b)
	if err != nil {
		return nil, fmt.Errorf("批次处理失败: %w", err)
	}

	// 预演不消耗持久化序号
	if store != nil && !opts.DryRun {
		store.SetNext(b.Sequence.Next)
		if err := store.Flush(); err != nil {
			logger.Get().Error().Err(err).Msg("计数器落盘失败")
		}
	}

	stats.Total = len(results)
	for _, r := range results {
		if r.Ok() {
			stats.Succeeded++
		} else {
			stats.Failed++
		}
	}
	stats.EndTime = time.Now()

	outcome.Results = results
	outcome.Stats = stats

	if opts.HistoryEnabled && !opts.DryRun {
		outcome.BatchID = recordHistory(opts, results)
	}

	logger.Get().Info().Msgf("批量重命名完成，成功: %d，失败: %d，耗时: %v",
		stats.Succeeded, stats.Failed, stats.EndTime.Sub(stats.StartTime))
	return outcome, nil
}

// recordHistory 写入历史库，失败时降级为跳过
func recordHistory(opts *RenameOptions, results []renamer.Result) string {
	db, err := database.NewDatabase(opts.DatabasePath)
	if err != nil {
		logger.Get().Warn().Err(err).Msg("历史数据库不可用，跳过记录")
		return ""
	}
	defer db.Close()

	batchID, err := history.NewRecorder(db, opts.Workers).Record(opts.Command, results)
	if err != nil {
		logger.Get().Warn().Err(err).Msg("写入历史记录失败")
		return ""
	}
	return batchID
}
