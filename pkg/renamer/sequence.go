package renamer

// Policy 序号分配策略
type Policy string

const (
	// PolicyBatch 每个批次从 Serial 配置的起始序号重新计数
	PolicyBatch Policy = "batch"
	// PolicyManual 跨批次持续递增，批次结束后由调用方持久化
	PolicyManual Policy = "manual"
)

// SequenceState 批次内的序号计数状态
// 仅 Serial 模式消耗序号，每处理一个文件递增一次，
// 与该文件最终成功与否无关
type SequenceState struct {
	Policy Policy
	Next   int // 下一个待分配的序号
}

// NewBatchSequence 创建批次内计数的序号状态
// 起始值在批次开始时由 Serial 配置决定
func NewBatchSequence() *SequenceState {
	return &SequenceState{Policy: PolicyBatch}
}

// NewManualSequence 创建从持久化计数器继续的序号状态
func NewManualSequence(next int) *SequenceState {
	return &SequenceState{Policy: PolicyManual, Next: next}
}

// Take 取出当前序号并递增
func (s *SequenceState) Take() int {
	n := s.Next
	s.Next++
	return n
}
