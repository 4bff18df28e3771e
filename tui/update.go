package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/moyu-x/batch-rename/app"
	"github.com/moyu-x/batch-rename/internal"
	"github.com/moyu-x/batch-rename/pkg/logger"
	"github.com/moyu-x/batch-rename/pkg/renamer"
)

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

		switch m.state {
		case StateConfig:
			return m.updateConfigPhase(msg)
		case StateConfirm:
			return m.updateConfirmPhase(msg)
		case StateComplete:
			if msg.String() == "enter" {
				m.resetForNewBatch()
			}
			return m, nil
		}
		// 处理中只响应 ctrl+c
		return m, nil

	case tea.WindowSizeMsg:
		m.handleResize(msg)

	case previewMsg:
		m.preview = msg.results
		m.previewReady = true
		return m, nil

	case resultMsg:
		m.results = append(m.results, msg.result)
		m.processed++
		if msg.result.Ok() {
			m.succeeded++
		} else {
			m.failed++
		}
		m.currentFile = msg.result.Path

		cmds = append(cmds, m.listenEvents())
		if m.total > 0 {
			percent := float64(m.processed) / float64(m.total)
			cmds = append(cmds, m.progressBar.SetPercent(percent))
		}
		return m, tea.Batch(cmds...)

	case completeMsg:
		m.state = StateComplete
		m.outcome = msg.outcome
		m.logFinalStats()
		return m, nil

	case errMsg:
		m.err = msg
		switch m.state {
		case StateConfirm:
			m.state = StateConfig
		case StateProcessing:
			m.state = StateComplete
		}
		return m, nil

	case spinner.TickMsg:
		if m.state == StateConfirm && !m.previewReady {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
	}

	// 非按键消息继续驱动当前界面的组件
	if m.state == StateConfig {
		var cmd tea.Cmd
		m.modeList, cmd = m.modeList.Update(msg)
		cmds = append(cmds, cmd)

		for i := range m.paramInputs {
			m.paramInputs[i], cmd = m.paramInputs[i].Update(msg)
			cmds = append(cmds, cmd)
		}

		m.pathInput, cmd = m.pathInput.Update(msg)
		cmds = append(cmds, cmd)

		m.pathList, cmd = m.pathList.Update(msg)
		cmds = append(cmds, cmd)
	}

	if m.state == StateProcessing {
		model, cmd := m.progressBar.Update(msg)
		m.progressBar = model.(progress.Model)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

func (m *model) updateConfigPhase(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "tab" {
		m.nextFocus()
		m.updateFocusState()
		return m, textinput.Blink
	}

	if msg.String() == "enter" {
		return m.handleEnterKey()
	}

	if (msg.String() == "delete" || msg.String() == "backspace") && m.focus == FocusPathList {
		m.removeSelectedPath()
		return m, nil
	}

	// 其余按键交给当前焦点组件，失焦的输入框不响应
	var cmd tea.Cmd
	switch m.focus {
	case FocusMode:
		m.modeList, cmd = m.modeList.Update(msg)
	case FocusParams:
		if m.paramIndex < len(m.paramInputs) {
			m.paramInputs[m.paramIndex], cmd = m.paramInputs[m.paramIndex].Update(msg)
		}
	case FocusPathInput:
		m.pathInput, cmd = m.pathInput.Update(msg)
	case FocusPathList:
		m.pathList, cmd = m.pathList.Update(msg)
	}
	return m, cmd
}

func (m *model) updateConfirmPhase(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.state = StateConfig
		return m, nil
	case "enter":
		if !m.previewReady {
			return m, nil
		}
		if len(m.preview) == 0 {
			m.state = StateConfig
			return m, nil
		}
		return m.startBatch()
	}
	return m, nil
}

func (m *model) nextFocus() {
	switch m.focus {
	case FocusMode:
		m.focus = FocusParams
		m.paramIndex = 0
	case FocusParams:
		if m.paramIndex+1 < len(m.paramInputs) {
			m.paramIndex++
		} else {
			m.focus = FocusPathInput
		}
	case FocusPathInput:
		m.focus = FocusPathList
	case FocusPathList:
		m.focus = FocusMode
	}
}

func (m *model) updateFocusState() {
	m.modeList.KeyMap.CursorUp.SetEnabled(m.focus == FocusMode)
	m.modeList.KeyMap.CursorDown.SetEnabled(m.focus == FocusMode)

	for i := range m.paramInputs {
		if m.focus == FocusParams && i == m.paramIndex {
			m.paramInputs[i].Focus()
		} else {
			m.paramInputs[i].Blur()
		}
	}

	if m.focus == FocusPathInput {
		m.pathInput.Focus()
	} else {
		m.pathInput.Blur()
	}

	m.pathList.KeyMap.CursorUp.SetEnabled(m.focus == FocusPathList)
	m.pathList.KeyMap.CursorDown.SetEnabled(m.focus == FocusPathList)
}

func (m *model) handleEnterKey() (tea.Model, tea.Cmd) {
	switch m.focus {
	case FocusMode:
		if item, ok := m.modeList.SelectedItem().(modeItem); ok && item.mode != m.mode {
			m.mode = item.mode
			m.rebuildParamInputs()
		}
		return m, nil

	case FocusParams:
		// 回车移动到下一个参数
		m.nextFocus()
		m.updateFocusState()
		return m, textinput.Blink

	case FocusPathInput:
		path := strings.TrimSpace(m.pathInput.Value())
		if path != "" {
			m.paths = append(m.paths, path)
			m.pathList.InsertItem(len(m.paths)-1, pathItem{path: path})
			m.pathInput.Reset()
		}
		return m, nil

	case FocusPathList:
		return m.startPreview()
	}

	return m, nil
}

func (m *model) removeSelectedPath() {
	idx := m.pathList.Index()
	if idx < 0 || idx >= len(m.paths) {
		return
	}
	m.pathList.RemoveItem(idx)
	m.paths = append(m.paths[:idx], m.paths[idx+1:]...)
}

// startPreview 校验配置并进入预演
func (m *model) startPreview() (tea.Model, tea.Cmd) {
	m.err = nil

	if len(m.paths) == 0 {
		m.err = fmt.Errorf("请先添加文件或目录路径")
		return m, nil
	}

	rc, useCounter, err := m.buildCommand()
	if err != nil {
		m.err = err
		return m, nil
	}

	m.command = rc
	m.useCounter = useCounter
	m.preview = nil
	m.previewReady = false
	m.state = StateConfirm

	return m, tea.Batch(m.spinner.Tick, previewCmd(rc, useCounter, m.paths))
}

func previewCmd(rc renamer.Command, useCounter bool, paths []string) tea.Cmd {
	return func() tea.Msg {
		outcome, err := app.RunRename(&app.RenameOptions{
			Args:        paths,
			Command:     rc,
			DryRun:      true,
			UseCounter:  useCounter,
			CounterPath: cfg.CounterPath,
		})
		if err != nil {
			return errMsg(err)
		}
		return previewMsg{results: outcome.Results}
	}
}

// startBatch 正式执行批次，结果通过 channel 逐个送回界面
func (m *model) startBatch() (tea.Model, tea.Cmd) {
	m.state = StateProcessing
	m.results = nil
	m.processed = 0
	m.succeeded = 0
	m.failed = 0
	m.total = len(m.preview)
	m.currentFile = ""

	events := make(chan tea.Msg, internal.DefaultBufferSize)
	m.events = events

	rc, useCounter := m.command, m.useCounter
	paths := make([]string, len(m.paths))
	copy(paths, m.paths)

	go func() {
		outcome, err := app.RunRename(&app.RenameOptions{
			Args:           paths,
			Command:        rc,
			UseCounter:     useCounter,
			CounterPath:    cfg.CounterPath,
			HistoryEnabled: cfg.HistoryEnabled,
			DatabasePath:   cfg.DatabasePath,
			Workers:        cfg.Workers,
			OnResult: func(r renamer.Result) {
				events <- resultMsg{result: r}
			},
		})
		if err != nil {
			events <- errMsg(err)
		} else {
			events <- completeMsg{outcome: outcome}
		}
		close(events)
	}()

	return m, tea.Batch(m.listenEvents(), m.progressBar.SetPercent(0))
}

// listenEvents 从执行协程接力读取下一条消息
func (m *model) listenEvents() tea.Cmd {
	events := m.events
	return func() tea.Msg {
		return <-events
	}
}

func (m *model) resetForNewBatch() {
	m.state = StateConfig
	m.focus = FocusMode
	m.paths = nil
	m.pathList.SetItems([]list.Item{})
	m.pathInput.Reset()
	m.preview = nil
	m.previewReady = false
	m.results = nil
	m.outcome = nil
	m.err = nil
	m.updateFocusState()
}

func (m *model) handleResize(msg tea.WindowSizeMsg) {
	width := msg.Width

	m.modeList.SetWidth(width - 4)
	for i := range m.paramInputs {
		m.paramInputs[i].Width = width - 10
	}
	m.pathInput.Width = width - 10
	m.pathList.SetWidth(width - 4)
	m.progressBar.Width = width - 10
}

// buildCommand 把参数输入框的内容解析为引擎命令
// 返回值第二项表示 Serial 模式是否使用持久化计数器
func (m *model) buildCommand() (renamer.Command, bool, error) {
	value := func(i int) string {
		return strings.TrimSpace(m.paramInputs[i].Value())
	}

	switch m.mode {
	case renamer.ModeFixed:
		return renamer.NewFixed(value(0), parseYesNo(value(1), true)), false, nil

	case renamer.ModeSerial:
		number, err := parseIntField(value(2), "起始序号")
		if err != nil {
			return renamer.Command{}, false, err
		}
		pad, err := parseIntField(value(3), "补零宽度")
		if err != nil {
			return renamer.Command{}, false, err
		}
		rc := renamer.NewSerial(renamer.SerialConfig{
			Prefix:       value(0),
			Suffix:       value(1),
			Number:       number,
			Pad:          pad,
			KeepExt:      parseYesNo(value(4), true),
			KeepOriginal: parseYesNo(value(5), false),
		})
		return rc, parseYesNo(value(6), false), nil

	case renamer.ModeReplace:
		return renamer.NewReplace(value(0), value(1), parseYesNo(value(2), false)), false, nil

	case renamer.ModeAdd:
		pos, err := parsePositionField(value(1))
		if err != nil {
			return renamer.Command{}, false, err
		}
		return renamer.NewAdd(value(0), pos), false, nil

	case renamer.ModeTrim:
		count, err := parseIntField(value(0), "删除字符数")
		if err != nil {
			return renamer.Command{}, false, err
		}
		if count < 0 {
			return renamer.Command{}, false, fmt.Errorf("删除字符数不能为负数: %d", count)
		}
		pos, err := parsePositionField(value(1))
		if err != nil {
			return renamer.Command{}, false, err
		}
		return renamer.NewTrim(count, pos), false, nil

	case renamer.ModeExtension:
		return renamer.NewExtension(value(0)), false, nil

	case renamer.ModeCase:
		switch renamer.CaseMode(value(0)) {
		case renamer.CaseUpper, renamer.CaseLower:
			return renamer.NewCase(renamer.CaseMode(value(0))), false, nil
		}
		return renamer.Command{}, false, fmt.Errorf("方式无效: %q，应为 upper 或 lower", value(0))

	case renamer.ModeConvert:
		switch renamer.ConvertMode(value(0)) {
		case renamer.ConvertZenkaku, renamer.ConvertHankaku:
			return renamer.NewConvert(renamer.ConvertMode(value(0))), false, nil
		}
		return renamer.Command{}, false, fmt.Errorf("方向无效: %q，应为 zenkaku 或 hankaku", value(0))
	}

	return renamer.Command{}, false, fmt.Errorf("未选择重命名模式")
}

func parseYesNo(s string, def bool) bool {
	switch strings.ToLower(s) {
	case "y", "yes", "true", "1":
		return true
	case "n", "no", "false", "0":
		return false
	}
	return def
}

func parseIntField(s, name string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%s必须是整数: %q", name, s)
	}
	return n, nil
}

func parsePositionField(s string) (renamer.Position, error) {
	switch renamer.Position(s) {
	case renamer.PositionStart, renamer.PositionEnd:
		return renamer.Position(s), nil
	}
	return "", fmt.Errorf("位置无效: %q，应为 start 或 end", s)
}

func (m *model) logFinalStats() {
	logger.Get().Info().Msg("========== 处理完成 ==========")
	logger.Get().Info().Msgf("总文件数: %d", m.total)
	logger.Get().Info().Msgf("成功: %d 个文件", m.succeeded)
	logger.Get().Info().Msgf("失败: %d 个文件", m.failed)
	if m.outcome != nil && m.outcome.BatchID != "" {
		logger.Get().Info().Msgf("历史批次: %s", m.outcome.BatchID)
	}
	logger.Get().Info().Msg("============================")
}
