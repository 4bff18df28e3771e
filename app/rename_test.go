package app

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/moyu-x/batch-rename/pkg/counter"
	"github.com/moyu-x/batch-rename/pkg/renamer"
)

func writeTestFiles(t *testing.T, dir string, names ...string) []string {
	t.Helper()
	paths := make([]string, 0, len(names))
	for _, name := range names {
		p := filepath.Join(dir, name)
		if err := os.WriteFile(p, []byte("data "+name), 0o644); err != nil {
			t.Fatalf("创建测试文件失败: %v", err)
		}
		paths = append(paths, p)
	}
	return paths
}

func TestRunRenameEndToEnd(t *testing.T) {
	workDir := t.TempDir()
	writeTestFiles(t, workDir, "IMG1.png", "IMG2.png")

	opts := &RenameOptions{
		Args: []string{workDir},
		Command: renamer.NewSerial(renamer.SerialConfig{
			Prefix: "Vacation_", Number: 1, Pad: 3, KeepExt: true,
		}),
		HistoryEnabled: true,
		DatabasePath:   filepath.Join(t.TempDir(), "history.db"),
		Workers:        2,
	}
	outcome, err := RunRename(opts)
	if err != nil {
		t.Fatalf("批量重命名失败: %v", err)
	}

	if len(outcome.Results) != 2 {
		t.Fatalf("Expected 2 results, got %d", len(outcome.Results))
	}
	expected := []string{"Vacation_001.png", "Vacation_002.png"}
	for i, r := range outcome.Results {
		if !r.Ok() {
			t.Errorf("File %d: expected success, got %q", i, r.StatusText())
		}
		if r.NewName != expected[i] {
			t.Errorf("File %d: expected %q, got %q", i, expected[i], r.NewName)
		}
	}
	for _, name := range expected {
		if _, err := os.Stat(filepath.Join(workDir, name)); err != nil {
			t.Errorf("Expected renamed file %s: %v", name, err)
		}
	}
	if outcome.Stats.Succeeded != 2 || outcome.Stats.Failed != 0 {
		t.Errorf("Unexpected stats: %+v", outcome.Stats)
	}
	if outcome.BatchID == "" {
		t.Error("Expected history batch ID")
	}
}

func TestRunRenameManualCounter(t *testing.T) {
	counterPath := filepath.Join(t.TempDir(), "counter")
	cmd := renamer.NewSerial(renamer.SerialConfig{Prefix: "file_", Pad: 2, KeepExt: true})

	run := func(names ...string) *RenameOutcome {
		t.Helper()
		dir := t.TempDir()
		paths := writeTestFiles(t, dir, names...)
		outcome, err := RunRename(&RenameOptions{
			Args:        paths,
			Command:     cmd,
			UseCounter:  true,
			CounterPath: counterPath,
		})
		if err != nil {
			t.Fatalf("批量重命名失败: %v", err)
		}
		return outcome
	}

	// 第一批 3 个文件消耗 1 2 3
	first := run("a.txt", "b.txt", "c.txt")
	for i, r := range first.Results {
		want := fmt.Sprintf("file_%02d.txt", i+1)
		if r.NewName != want {
			t.Errorf("Batch 1 file %d: expected %q, got %q", i, want, r.NewName)
		}
	}

	store, err := counter.New(counterPath)
	if err != nil {
		t.Fatalf("打开计数器失败: %v", err)
	}
	if got := store.Peek(); got != 4 {
		t.Errorf("After batch 1: expected counter 4, got %d", got)
	}
	store.Close()

	// 第二批继续消耗 4 5
	second := run("d.txt", "e.txt")
	for i, r := range second.Results {
		want := fmt.Sprintf("file_%02d.txt", i+4)
		if r.NewName != want {
			t.Errorf("Batch 2 file %d: expected %q, got %q", i, want, r.NewName)
		}
	}

	store, err = counter.New(counterPath)
	if err != nil {
		t.Fatalf("打开计数器失败: %v", err)
	}
	defer store.Close()
	if got := store.Peek(); got != 6 {
		t.Errorf("After batch 2: expected counter 6, got %d", got)
	}
}

func TestRunRenameDryRun(t *testing.T) {
	workDir := t.TempDir()
	paths := writeTestFiles(t, workDir, "draft.txt")
	counterPath := filepath.Join(t.TempDir(), "counter")

	outcome, err := RunRename(&RenameOptions{
		Args:        paths,
		Command:     renamer.NewSerial(renamer.SerialConfig{Prefix: "n", Pad: 2, KeepExt: true}),
		DryRun:      true,
		UseCounter:  true,
		CounterPath: counterPath,
	})
	if err != nil {
		t.Fatalf("批量重命名失败: %v", err)
	}

	if outcome.Results[0].NewName != "n01.txt" {
		t.Errorf("Expected preview name, got %q", outcome.Results[0].NewName)
	}
	// 预演不改动文件，也不消耗计数器
	if _, err := os.Stat(paths[0]); err != nil {
		t.Errorf("Dry run should not rename: %v", err)
	}
	if counter.Exists(counterPath) {
		t.Error("Dry run should not persist counter")
	}
}

func TestRunRenameNoMatches(t *testing.T) {
	outcome, err := RunRename(&RenameOptions{
		Args:    []string{t.TempDir()},
		Command: renamer.NewCase(renamer.CaseLower),
	})
	if err != nil {
		t.Fatalf("空批次不应报错: %v", err)
	}
	if len(outcome.Results) != 0 || outcome.Stats.Total != 0 {
		t.Errorf("Expected empty outcome, got %+v", outcome)
	}
}

func TestRunRenameCallback(t *testing.T) {
	workDir := t.TempDir()
	paths := writeTestFiles(t, workDir, "a.txt", "b.txt")

	var seen []string
	_, err := RunRename(&RenameOptions{
		Args:    paths,
		Command: renamer.NewAdd("_x", renamer.PositionEnd),
		OnResult: func(r renamer.Result) {
			seen = append(seen, r.Path)
		},
	})
	if err != nil {
		t.Fatalf("批量重命名失败: %v", err)
	}
	if len(seen) != 2 {
		t.Errorf("Expected 2 callbacks, got %d", len(seen))
	}
}
