package renamer

import (
	"strings"

	"github.com/spf13/afero"
)

// validator 重命名执行前的目标名称校验
// 记录批次内已占用的目标路径，避免同批次文件互相覆盖
type validator struct {
	fs              afero.Fs
	caseInsensitive bool
	claimed         map[string]struct{}
}

func newValidator(fs afero.Fs, caseInsensitive bool) *validator {
	return &validator{
		fs:              fs,
		caseInsensitive: caseInsensitive,
		claimed:         make(map[string]struct{}),
	}
}

// check 校验计算出的新名称
// 通过时占用目标路径并返回 StatusSuccess
// 源路径与目标路径相同视为合法，大小写不敏感的文件系统上
// 仅大小写不同的改名同样放行
func (v *validator) check(src string, dst Components) Status {
	if dst.Stem == "" {
		return StatusEmptyName
	}

	dstPath := dst.JoinPath()
	key := v.fold(dstPath)
	if _, ok := v.claimed[key]; ok {
		return StatusAlreadyExists
	}
	if !v.samePath(src, dstPath) {
		if exists, err := afero.Exists(v.fs, dstPath); err == nil && exists {
			return StatusAlreadyExists
		}
	}

	v.claimed[key] = struct{}{}
	return StatusSuccess
}

// fold 大小写不敏感时统一转为小写作为占用表的键
func (v *validator) fold(path string) string {
	if v.caseInsensitive {
		return strings.ToLower(path)
	}
	return path
}

func (v *validator) samePath(a, b string) bool {
	if v.caseInsensitive {
		return strings.EqualFold(a, b)
	}
	return a == b
}
