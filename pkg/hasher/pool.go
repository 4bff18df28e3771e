package hasher

import (
	"sync"

	"github.com/panjf2000/ants/v2"

	"github.com/moyu-x/batch-rename/internal"
	"github.com/moyu-x/batch-rename/pkg/logger"
)

// Task 待计算哈希的文件
type Task struct {
	Path string
}

// Result 单个文件的哈希结果
type Result struct {
	Path string
	Hash uint64
	Err  error
}

// Pool 基于 goroutine 池的并发哈希计算
// 任务和结果都经由带缓冲的通道传递
type Pool struct {
	workers int
	tasks   chan Task
	results chan Result
	wg      sync.WaitGroup
	pool    *ants.Pool
}

// NewPool 创建哈希计算池，workers 小于 1 时使用默认值
func NewPool(workers int) *Pool {
	if workers < 1 {
		workers = internal.DefaultWorkers
	}
	return &Pool{
		workers: workers,
		tasks:   make(chan Task, internal.DefaultBufferSize),
		results: make(chan Result, internal.DefaultBufferSize),
	}
}

// Start 启动工作协程
func (p *Pool) Start() error {
	logger.Get().Debug().Msgf("启动哈希计算池，工作协程数: %d", p.workers)

	pool, err := ants.NewPool(p.workers)
	if err != nil {
		return err
	}
	p.pool = pool

	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		if err := p.pool.Submit(p.worker); err != nil {
			p.wg.Done()
			return err
		}
	}
	return nil
}

func (p *Pool) worker() {
	defer p.wg.Done()
	for task := range p.tasks {
		hash, err := CalculateHash(task.Path)
		p.results <- Result{Path: task.Path, Hash: hash, Err: err}
	}
}

// AddTask 提交一个哈希任务
func (p *Pool) AddTask(task Task) {
	p.tasks <- task
}

// Results 返回结果通道，Close 后关闭
func (p *Pool) Results() <-chan Result {
	return p.results
}

// Close 停止接收新任务，等待在途任务完成后关闭结果通道
// 必须有消费方在并发读取 Results，否则会阻塞
func (p *Pool) Close() {
	close(p.tasks)
	p.wg.Wait()

	if p.pool != nil {
		p.pool.Release()
	}
	close(p.results)
}
