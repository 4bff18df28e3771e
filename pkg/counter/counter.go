// Package counter 维护手动计数策略的持久化序号
// 文件内容是一个十进制整数，表示下一个待分配的序号
package counter

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/moyu-x/batch-rename/pkg/logger"
)

// Store 文件持久化的序号计数器
type Store struct {
	path  string
	mu    sync.Mutex
	next  int
	dirty bool
}

// New 打开指定路径的计数器
// 文件不存在时从 1 开始，内容无法解析时返回错误
func New(path string) (*Store, error) {
	path = expandPath(path)
	s := &Store{path: path, next: 1}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		logger.Get().Debug().Str("path", path).Msg("计数器文件不存在，从 1 开始")
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("读取计数器文件失败: %w", err)
	}

	text := strings.TrimSpace(string(data))
	if text == "" {
		return s, nil
	}
	n, err := strconv.Atoi(text)
	if err != nil {
		return nil, fmt.Errorf("计数器文件内容无效 %q: %w", text, err)
	}
	if n < 1 {
		return nil, fmt.Errorf("计数器值必须不小于 1，当前为 %d", n)
	}

	s.next = n
	logger.Get().Debug().Str("path", path).Int("next", n).Msg("计数器已加载")
	return s, nil
}

// Peek 返回下一个序号，不消耗
func (s *Store) Peek() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.next
}

// SetNext 设置下一个序号，批次结束后回写消耗量
func (s *Store) SetNext(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if n == s.next {
		return
	}
	s.next = n
	s.dirty = true
}

// Flush 将当前值落盘，无改动时跳过
func (s *Store) Flush() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.flushLocked()
}

func (s *Store) flushLocked() error {
	if !s.dirty {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("创建计数器目录失败: %w", err)
	}
	if err := os.WriteFile(s.path, []byte(strconv.Itoa(s.next)+"\n"), 0o644); err != nil {
		return fmt.Errorf("写入计数器文件失败: %w", err)
	}
	s.dirty = false
	return nil
}

// Reset 重置为 1 并立即落盘
func (s *Store) Reset() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.next = 1
	s.dirty = true
	return s.flushLocked()
}

// Close 落盘未保存的改动
func (s *Store) Close() error {
	return s.Flush()
}

// Path 返回展开后的文件路径
func (s *Store) Path() string {
	return s.path
}

// Exists 检查计数器文件是否存在
func Exists(path string) bool {
	_, err := os.Stat(expandPath(path))
	return !os.IsNotExist(err)
}

// expandPath 展开路径开头的 ~ 为用户主目录
func expandPath(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, strings.TrimPrefix(path, "~"))
	}
	return path
}
