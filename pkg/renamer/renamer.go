// Package renamer 实现批量重命名引擎
// 每个文件依次经过拆分、转换、校验、执行四个阶段，
// 单个文件失败不会中止整个批次
package renamer

import (
	"fmt"
	"runtime"

	"github.com/spf13/afero"

	"github.com/moyu-x/batch-rename/pkg/logger"
)

// BatchState 批次所处的阶段
type BatchState int

const (
	BatchPending BatchState = iota
	BatchProcessing
	BatchDone
)

// Batch 一次批量重命名任务
type Batch struct {
	Paths    []string
	Command  Command
	Sequence *SequenceState // nil 时按批次内计数处理
	State    BatchState
	Results  []Result
}

// NewBatch 创建待处理的批次
func NewBatch(paths []string, cmd Command) *Batch {
	return &Batch{Paths: paths, Command: cmd, State: BatchPending}
}

// Dispatcher 批量重命名调度器
// 批次内严格按输入顺序逐个处理，不做并发
type Dispatcher struct {
	Fs              afero.Fs
	CaseInsensitive bool         // 目标路径比较是否忽略大小写
	DryRun          bool         // 只校验不执行，结果中带预期新名称
	OnResult        func(Result) // 每个文件处理完后的回调，可为 nil
}

// NewDispatcher 创建使用本机文件系统的调度器
// Windows 和 macOS 上目标路径比较默认忽略大小写
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		Fs:              afero.NewOsFs(),
		CaseInsensitive: runtime.GOOS == "windows" || runtime.GOOS == "darwin",
	}
}

// Dispatch 顺序处理批次内的全部文件
// 返回的结果与输入路径一一对应，顺序一致
func (d *Dispatcher) Dispatch(b *Batch) ([]Result, error) {
	if !b.Command.Mode.Known() {
		return nil, fmt.Errorf("未知的重命名模式: %q", b.Command.Mode)
	}

	b.State = BatchProcessing
	defer func() { b.State = BatchDone }()

	fs := d.Fs
	if fs == nil {
		fs = afero.NewOsFs()
	}

	t, err := newTransformer(b.Command, b.Sequence)
	if err != nil {
		// 正则编译失败时批次内所有文件统一判定 InvalidPattern
		logger.Get().Warn().Err(err).Msg("替换模式无效")
		b.Results = make([]Result, 0, len(b.Paths))
		for _, p := range b.Paths {
			r := Result{Path: p, Status: StatusInvalidPattern}
			b.Results = append(b.Results, r)
			d.emit(r)
		}
		return b.Results, nil
	}

	v := newValidator(fs, d.CaseInsensitive)
	a := &applier{fs: fs}

	b.Results = make([]Result, 0, len(b.Paths))
	for _, p := range b.Paths {
		r := d.processOne(t, v, a, p)
		b.Results = append(b.Results, r)
		d.emit(r)
	}
	return b.Results, nil
}

// processOne 处理单个文件: 拆分 -> 转换 -> 校验 -> 重命名
func (d *Dispatcher) processOne(t *transformer, v *validator, a *applier, path string) Result {
	src := Split(path)
	dst := t.apply(src)

	res := Result{Path: path}
	if status := v.check(path, dst); status != StatusSuccess {
		res.Status = status
		return res
	}

	res.NewName = dst.Join()
	if d.DryRun {
		res.Status = StatusSuccess
		return res
	}

	if err := a.rename(path, dst.JoinPath()); err != nil {
		logger.Get().Warn().Err(err).Str("path", path).Msg("重命名失败")
		res.Status = StatusIoError
		res.Detail = ioDetail(err)
		res.NewName = ""
		return res
	}

	logger.Get().Debug().Str("from", path).Str("to", dst.JoinPath()).Msg("重命名完成")
	res.Status = StatusSuccess
	return res
}

func (d *Dispatcher) emit(r Result) {
	if d.OnResult != nil {
		d.OnResult(r)
	}
}
