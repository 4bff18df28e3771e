package model

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/moyu-x/batch-rename/pkg/renamer"
)

// RenameRequest 一次批量重命名请求
type RenameRequest struct {
	Paths      []string        `json:"paths" validate:"required,min=1"`
	Command    renamer.Command `json:"command"`
	Glob       string          `json:"glob,omitempty"`
	Type       string          `json:"type,omitempty"`
	DryRun     bool            `json:"dry_run,omitempty"`
	UseCounter bool            `json:"use_counter,omitempty"`
}

func (r *RenameRequest) Validate() error {
	validate := validator.New()
	if err := validate.Struct(r); err != nil {
		return err
	}
	if !r.Command.Mode.Known() {
		return fmt.Errorf("未知的重命名模式: %q", r.Command.Mode)
	}
	return nil
}

// RenameResult 单个文件的处理结果
type RenameResult struct {
	Path    string `json:"path"`
	Status  string `json:"status"`
	NewName string `json:"new_name,omitempty"`
}

// RenameResponse 批次执行结果
type RenameResponse struct {
	BatchID   string         `json:"batch_id,omitempty"`
	Total     int            `json:"total"`
	Succeeded int            `json:"succeeded"`
	Failed    int            `json:"failed"`
	Results   []RenameResult `json:"results"`
}
