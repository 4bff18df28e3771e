package renamer

import (
	"path/filepath"
	"strings"
)

// Components 路径拆分后的组成部分
// Ext 为空字符串表示没有扩展名
type Components struct {
	Dir  string // 目录前缀，保留结尾分隔符
	Stem string // 文件名主干
	Ext  string // 扩展名，不含点号
}

// Split 将完整路径拆分为目录、主干和扩展名
// 以最后一段文件名中的最后一个点号为界:
//   - 没有点号或仅有开头的点号(如 .gitignore)视为无扩展名
//   - 结尾的点号会被丢弃，如 "file." 的主干为 "file"
//   - "archive.tar.gz" 的主干为 "archive.tar"，扩展名为 "gz"
func Split(path string) Components {
	dir, base := filepath.Split(path)
	idx := strings.LastIndex(base, ".")
	if idx <= 0 {
		return Components{Dir: dir, Stem: base}
	}
	return Components{Dir: dir, Stem: base[:idx], Ext: base[idx+1:]}
}

// Join 拼接主干和扩展名为完整文件名
// 扩展名为空时不带点号
func (c Components) Join() string {
	if c.Ext == "" {
		return c.Stem
	}
	return c.Stem + "." + c.Ext
}

// JoinPath 拼接回完整路径
func (c Components) JoinPath() string {
	return c.Dir + c.Join()
}
