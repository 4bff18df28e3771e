package batch

import (
	"reflect"
	"testing"

	"github.com/spf13/afero"
)

// 真实文件头，内容识别按魔数判断
var (
	pngData  = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")
	jpegData = []byte("\xff\xd8\xff\xe0\x00\x10JFIF\x00\x01")
	zipData  = []byte("PK\x03\x04\x14\x00\x00\x00\x08\x00")
	textData = []byte("just some plain text")
)

func writeFiles(t *testing.T, fs afero.Fs, files map[string][]byte) {
	t.Helper()
	for path, data := range files {
		if err := afero.WriteFile(fs, path, data, 0o644); err != nil {
			t.Fatalf("创建测试文件失败: %v", err)
		}
	}
}

func TestBuildExplicitOrder(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFiles(t, fs, map[string][]byte{
		"z.txt": textData,
		"a.txt": textData,
		"m.txt": textData,
	})

	b := &Builder{Fs: fs}
	got, err := b.Build([]string{"z.txt", "a.txt", "m.txt"})
	if err != nil {
		t.Fatalf("构建批次失败: %v", err)
	}

	// 显式传入的文件保持原始顺序，不排序
	expected := []string{"z.txt", "a.txt", "m.txt"}
	if !reflect.DeepEqual(got, expected) {
		t.Errorf("Expected %v, got %v", expected, got)
	}
}

func TestBuildDirExpansion(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFiles(t, fs, map[string][]byte{
		"photos/c.png":        pngData,
		"photos/a.png":        pngData,
		"photos/b.png":        pngData,
		"photos/nested/d.png": pngData,
	})

	b := &Builder{Fs: fs}
	got, err := b.Build([]string{"photos"})
	if err != nil {
		t.Fatalf("构建批次失败: %v", err)
	}

	// 目录展开为按名称排序的直接子文件，不递归
	expected := []string{"photos/a.png", "photos/b.png", "photos/c.png"}
	if !reflect.DeepEqual(got, expected) {
		t.Errorf("Expected %v, got %v", expected, got)
	}
}

func TestBuildMixedArgs(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFiles(t, fs, map[string][]byte{
		"single.txt": textData,
		"dir/b.txt":  textData,
		"dir/a.txt":  textData,
	})

	b := &Builder{Fs: fs}
	got, err := b.Build([]string{"single.txt", "dir"})
	if err != nil {
		t.Fatalf("构建批次失败: %v", err)
	}

	expected := []string{"single.txt", "dir/a.txt", "dir/b.txt"}
	if !reflect.DeepEqual(got, expected) {
		t.Errorf("Expected %v, got %v", expected, got)
	}
}

func TestBuildGlobFilter(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFiles(t, fs, map[string][]byte{
		"dir/IMG_001.png": pngData,
		"dir/IMG_002.jpg": jpegData,
		"dir/notes.txt":   textData,
	})

	b := &Builder{Fs: fs, Glob: "IMG_*.png"}
	got, err := b.Build([]string{"dir"})
	if err != nil {
		t.Fatalf("构建批次失败: %v", err)
	}

	expected := []string{"dir/IMG_001.png"}
	if !reflect.DeepEqual(got, expected) {
		t.Errorf("Expected %v, got %v", expected, got)
	}
}

func TestBuildBadGlob(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFiles(t, fs, map[string][]byte{"a.txt": textData})

	b := &Builder{Fs: fs, Glob: "[unclosed"}
	if _, err := b.Build([]string{"a.txt"}); err == nil {
		t.Fatal("Expected error for bad glob pattern, got nil")
	}
}

func TestBuildTypeFilter(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFiles(t, fs, map[string][]byte{
		"dir/photo.png":   pngData,
		"dir/shot.jpg":    jpegData,
		"dir/notes.txt":   textData,
		"dir/bundle.zip":  zipData,
		"dir/fake_ext.md": jpegData, // 按内容识别，不看扩展名
	})

	b := &Builder{Fs: fs, Type: "image"}
	got, err := b.Build([]string{"dir"})
	if err != nil {
		t.Fatalf("构建批次失败: %v", err)
	}

	expected := []string{"dir/fake_ext.md", "dir/photo.png", "dir/shot.jpg"}
	if !reflect.DeepEqual(got, expected) {
		t.Errorf("Expected %v, got %v", expected, got)
	}
}

func TestBuildArchiveFilter(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFiles(t, fs, map[string][]byte{
		"dir/bundle.zip": zipData,
		"dir/photo.png":  pngData,
	})

	b := &Builder{Fs: fs, Type: "archive"}
	got, err := b.Build([]string{"dir"})
	if err != nil {
		t.Fatalf("构建批次失败: %v", err)
	}

	expected := []string{"dir/bundle.zip"}
	if !reflect.DeepEqual(got, expected) {
		t.Errorf("Expected %v, got %v", expected, got)
	}
}

func TestBuildMissingPathKept(t *testing.T) {
	b := &Builder{Fs: afero.NewMemMapFs()}
	got, err := b.Build([]string{"ghost.txt"})
	if err != nil {
		t.Fatalf("构建批次失败: %v", err)
	}

	// 不存在的路径原样保留，由引擎处理时报告 IoError
	expected := []string{"ghost.txt"}
	if !reflect.DeepEqual(got, expected) {
		t.Errorf("Expected %v, got %v", expected, got)
	}
}

func TestBuildMissingPathExcludedByTypeFilter(t *testing.T) {
	b := &Builder{Fs: afero.NewMemMapFs(), Type: "image"}
	got, err := b.Build([]string{"ghost.png"})
	if err != nil {
		t.Fatalf("构建批次失败: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("Expected unreadable path excluded by type filter, got %v", got)
	}
}

func TestKnownType(t *testing.T) {
	for _, typ := range Types() {
		if !KnownType(typ) {
			t.Errorf("Type %q should be known", typ)
		}
	}
	if KnownType("spreadsheet") {
		t.Error("Unexpected type should not be known")
	}
}
