package tui

import (
	"github.com/moyu-x/batch-rename/app"
	"github.com/moyu-x/batch-rename/pkg/renamer"
)

// previewMsg 预演完成，携带将要产生的结果
type previewMsg struct {
	results []renamer.Result
}

// resultMsg 批次中单个文件处理完成
type resultMsg struct {
	result renamer.Result
}

// completeMsg 整个批次处理完成
type completeMsg struct {
	outcome *app.RenameOutcome
}

type errMsg error
