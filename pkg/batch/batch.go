// Package batch 将命令行参数展开为有序的待处理文件列表
package batch

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/h2non/filetype"
	"github.com/h2non/filetype/types"
	"github.com/spf13/afero"

	"github.com/moyu-x/batch-rename/pkg/logger"
)

// 内容识别读取的文件头大小
const sniffSize = 8192

// 受支持的内容类别
var knownTypes = []string{"image", "video", "audio", "document", "archive"}

// Builder 展开并过滤输入参数
type Builder struct {
	Fs   afero.Fs
	Glob string // 按文件名匹配的通配模式，空值不过滤
	Type string // 按内容类别过滤，空值不过滤
}

// NewBuilder 创建基于本机文件系统的构建器
func NewBuilder() *Builder {
	return &Builder{Fs: afero.NewOsFs()}
}

// KnownType 检查内容类别是否受支持
func KnownType(t string) bool {
	for _, k := range knownTypes {
		if t == k {
			return true
		}
	}
	return false
}

// Types 返回全部受支持的内容类别
func Types() []string {
	out := make([]string, len(knownTypes))
	copy(out, knownTypes)
	return out
}

// Build 展开输入参数为有序的文件路径列表
// 文件参数保持输入顺序，目录参数展开为按文件名排序的直接子文件，
// 不递归子目录。无法访问的路径保留在列表中，由引擎在执行时报告
func (b *Builder) Build(args []string) ([]string, error) {
	paths := make([]string, 0, len(args))
	for _, arg := range args {
		info, err := b.Fs.Stat(arg)
		if err == nil && info.IsDir() {
			children, err := b.expandDir(arg)
			if err != nil {
				return nil, err
			}
			paths = append(paths, children...)
			continue
		}
		if err != nil {
			logger.Get().Warn().Str("path", arg).Msg("路径无法访问，保留待处理时报告")
		}
		keep, err := b.keep(arg)
		if err != nil {
			return nil, err
		}
		if keep {
			paths = append(paths, arg)
		}
	}

	logger.Get().Debug().Int("count", len(paths)).Msg("批次路径列表构建完成")
	return paths, nil
}

// expandDir 列出目录的直接子文件并应用过滤
// afero.ReadDir 返回按文件名排序的结果
func (b *Builder) expandDir(dir string) ([]string, error) {
	infos, err := afero.ReadDir(b.Fs, dir)
	if err != nil {
		return nil, fmt.Errorf("读取目录 %s 失败: %w", dir, err)
	}

	out := make([]string, 0, len(infos))
	for _, info := range infos {
		if info.IsDir() {
			continue
		}
		path := filepath.Join(dir, info.Name())
		keep, err := b.keep(path)
		if err != nil {
			return nil, err
		}
		if keep {
			out = append(out, path)
		}
	}
	return out, nil
}

// keep 按通配模式和内容类别判断是否保留
func (b *Builder) keep(path string) (bool, error) {
	if b.Glob != "" {
		matched, err := doublestar.Match(b.Glob, filepath.Base(path))
		if err != nil {
			return false, fmt.Errorf("通配模式 %q 无效: %w", b.Glob, err)
		}
		if !matched {
			return false, nil
		}
	}
	if b.Type != "" && b.category(path) != b.Type {
		return false, nil
	}
	return true, nil
}

// category 读取文件头识别内容类别
// 无法读取或无法识别时返回 unknown
func (b *Builder) category(path string) string {
	f, err := b.Fs.Open(path)
	if err != nil {
		return "unknown"
	}
	defer f.Close()

	buf := make([]byte, sniffSize)
	n, err := f.Read(buf)
	if err != nil && err != io.EOF {
		return "unknown"
	}

	t, err := filetype.Match(buf[:n])
	if err != nil || t == types.Unknown {
		return "unknown"
	}

	if mime := t.MIME.Value; len(mime) >= 5 {
		switch mime[:5] {
		case "image":
			return "image"
		case "video":
			return "video"
		case "audio":
			return "audio"
		}
	}

	switch t.Extension {
	case "pdf", "doc", "docx", "xls", "xlsx", "ppt", "pptx", "rtf", "odt", "ods", "odp":
		return "document"
	case "zip", "tar", "gz", "bz2", "rar", "7z", "xz":
		return "archive"
	}
	return "other"
}
