package renamer

// 单个文件的处理状态
type Status string

const (
	StatusSuccess        Status = "Success"
	StatusAlreadyExists  Status = "AlreadyExists"
	StatusEmptyName      Status = "EmptyName"
	StatusInvalidPattern Status = "InvalidPattern"
	StatusIoError        Status = "IoError"
)

// Result 单个文件的重命名结果
type Result struct {
	Path    string // 原始完整路径
	Status  Status
	Detail  string // IoError 附带的系统错误信息
	NewName string // 成功时的新文件名（不含目录部分）
}

// Ok 返回该文件是否重命名成功
func (r Result) Ok() bool {
	return r.Status == StatusSuccess
}

// StatusText 返回对外展示的状态文本
// IoError 附带系统错误详情，其余状态原样输出
func (r Result) StatusText() string {
	if r.Status == StatusIoError && r.Detail != "" {
		return string(StatusIoError) + ": " + r.Detail
	}
	return string(r.Status)
}
