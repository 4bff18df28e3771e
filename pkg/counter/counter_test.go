package counter

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewStoreFresh(t *testing.T) {
	path := filepath.Join(t.TempDir(), "counter")
	s, err := New(path)
	if err != nil {
		t.Fatalf("打开计数器失败: %v", err)
	}
	defer s.Close()

	if got := s.Peek(); got != 1 {
		t.Errorf("Expected fresh counter to start at 1, got %d", got)
	}
}

func TestStorePersistence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "counter")

	s, err := New(path)
	if err != nil {
		t.Fatalf("打开计数器失败: %v", err)
	}
	s.SetNext(7)
	if err := s.Close(); err != nil {
		t.Fatalf("关闭计数器失败: %v", err)
	}

	// 重新打开读取持久化的值
	s2, err := New(path)
	if err != nil {
		t.Fatalf("重新打开计数器失败: %v", err)
	}
	defer s2.Close()
	if got := s2.Peek(); got != 7 {
		t.Errorf("Expected persisted value 7, got %d", got)
	}
}

func TestStoreFileFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "counter")
	s, err := New(path)
	if err != nil {
		t.Fatalf("打开计数器失败: %v", err)
	}
	s.SetNext(42)
	if err := s.Flush(); err != nil {
		t.Fatalf("落盘失败: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("读取计数器文件失败: %v", err)
	}
	if strings.TrimSpace(string(data)) != "42" {
		t.Errorf("Expected plain integer content, got %q", data)
	}
}

func TestStoreParsesWhitespace(t *testing.T) {
	path := filepath.Join(t.TempDir(), "counter")
	if err := os.WriteFile(path, []byte("  12\n"), 0o644); err != nil {
		t.Fatalf("写入测试文件失败: %v", err)
	}

	s, err := New(path)
	if err != nil {
		t.Fatalf("打开计数器失败: %v", err)
	}
	defer s.Close()
	if got := s.Peek(); got != 12 {
		t.Errorf("Expected 12, got %d", got)
	}
}

func TestStoreCorruptContent(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"non-numeric", "abc"},
		{"zero", "0"},
		{"negative", "-3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "counter")
			if err := os.WriteFile(path, []byte(tt.content), 0o644); err != nil {
				t.Fatalf("写入测试文件失败: %v", err)
			}
			if _, err := New(path); err == nil {
				t.Errorf("Expected error for content %q, got nil", tt.content)
			}
		})
	}
}

func TestStoreEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "counter")
	if err := os.WriteFile(path, []byte(""), 0o644); err != nil {
		t.Fatalf("写入测试文件失败: %v", err)
	}

	// 空文件视为全新计数器
	s, err := New(path)
	if err != nil {
		t.Fatalf("打开计数器失败: %v", err)
	}
	defer s.Close()
	if got := s.Peek(); got != 1 {
		t.Errorf("Expected 1, got %d", got)
	}
}

func TestStoreReset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "counter")
	s, err := New(path)
	if err != nil {
		t.Fatalf("打开计数器失败: %v", err)
	}
	s.SetNext(99)
	if err := s.Reset(); err != nil {
		t.Fatalf("重置计数器失败: %v", err)
	}
	if got := s.Peek(); got != 1 {
		t.Errorf("Expected 1 after reset, got %d", got)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("读取计数器文件失败: %v", err)
	}
	if strings.TrimSpace(string(data)) != "1" {
		t.Errorf("Expected reset value on disk, got %q", data)
	}
}

func TestStoreUntouchedWritesNothing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "counter")
	s, err := New(path)
	if err != nil {
		t.Fatalf("打开计数器失败: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("关闭计数器失败: %v", err)
	}

	// 没有消耗过序号就不创建文件
	if Exists(path) {
		t.Error("Expected no counter file for untouched store")
	}
}

func TestStoreCreatesParentDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "counter")
	s, err := New(path)
	if err != nil {
		t.Fatalf("打开计数器失败: %v", err)
	}
	s.SetNext(5)
	if err := s.Flush(); err != nil {
		t.Fatalf("落盘失败: %v", err)
	}
	if !Exists(path) {
		t.Error("Expected counter file to be created with parent dirs")
	}
}

func TestExists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "counter")
	if Exists(path) {
		t.Error("Expected Exists to be false before creation")
	}
	if err := os.WriteFile(path, []byte("3"), 0o644); err != nil {
		t.Fatalf("写入测试文件失败: %v", err)
	}
	if !Exists(path) {
		t.Error("Expected Exists to be true after creation")
	}
}
