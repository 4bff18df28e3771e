package renamer

import (
	"errors"
	"os"

	"github.com/spf13/afero"
)

// applier 执行实际的文件系统重命名
type applier struct {
	fs afero.Fs
}

func (a *applier) rename(src, dst string) error {
	return a.fs.Rename(src, dst)
}

// ioDetail 提取重命名失败的系统错误信息
// LinkError 和 PathError 去掉路径前缀，只保留底层原因
func ioDetail(err error) string {
	var linkErr *os.LinkError
	if errors.As(err, &linkErr) {
		return linkErr.Err.Error()
	}
	var pathErr *os.PathError
	if errors.As(err, &pathErr) {
		return pathErr.Err.Error()
	}
	return err.Error()
}
