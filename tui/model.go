package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/moyu-x/batch-rename/app"
	"github.com/moyu-x/batch-rename/pkg/renamer"
)

type State int

const (
	StateConfig State = iota
	StateConfirm
	StateProcessing
	StateComplete
)

type Focus int

const (
	FocusMode Focus = iota
	FocusParams
	FocusPathInput
	FocusPathList
)

type model struct {
	state State
	focus Focus

	// 当前配置
	mode       renamer.Mode
	command    renamer.Command
	useCounter bool

	// 配置界面组件
	modeList    list.Model
	paramLabels []string
	paramInputs []textinput.Model
	paramIndex  int
	pathInput   textinput.Model
	pathList    list.Model
	paths       []string

	// 预演结果
	preview      []renamer.Result
	previewReady bool

	// 执行进度
	total       int
	processed   int
	succeeded   int
	failed      int
	currentFile string
	results     []renamer.Result
	outcome     *app.RenameOutcome
	events      chan tea.Msg

	progressBar progress.Model
	spinner     spinner.Model
	err         error
}

func initialModel() model {
	delegate := list.NewDefaultDelegate()
	delegate.ShowDescription = false
	delegate.SetSpacing(0)

	modeList := list.New([]list.Item{
		modeItem{mode: renamer.ModeFixed, title: "固定名称", desc: "所有文件使用同一名称"},
		modeItem{mode: renamer.ModeSerial, title: "序号编号", desc: "前缀 + 递增序号 + 后缀"},
		modeItem{mode: renamer.ModeReplace, title: "查找替换", desc: "替换主体中的文本，支持正则"},
		modeItem{mode: renamer.ModeAdd, title: "追加文本", desc: "在主体开头或结尾追加文本"},
		modeItem{mode: renamer.ModeTrim, title: "删除字符", desc: "从主体两端删除指定数量的字符"},
		modeItem{mode: renamer.ModeExtension, title: "修改扩展名", desc: "替换或移除扩展名"},
		modeItem{mode: renamer.ModeCase, title: "大小写", desc: "主体转为全大写或全小写"},
		modeItem{mode: renamer.ModeConvert, title: "全角半角", desc: "主体在全角和半角之间转换"},
	}, delegate, 0, 10)

	modeList.SetShowTitle(false)
	modeList.SetShowStatusBar(false)
	modeList.SetFilteringEnabled(false)
	modeList.SetShowHelp(false)

	pathInput := textinput.New()
	pathInput.Placeholder = "请输入文件或目录路径（按回车添加）"
	pathInput.Prompt = "> "
	pathInput.PromptStyle = focusedPromptStyle
	pathInput.TextStyle = textStyle

	pathDelegate := list.NewDefaultDelegate()
	pathDelegate.ShowDescription = false
	pathDelegate.SetSpacing(0)

	pathList := list.New([]list.Item{}, pathDelegate, 0, 5)
	pathList.SetShowTitle(false)
	pathList.SetShowStatusBar(false)
	pathList.SetFilteringEnabled(false)
	pathList.SetShowHelp(false)

	progressBar := progress.New(progress.WithDefaultGradient())
	progressBar.PercentageStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("205")).
		Width(4)

	s := spinner.New()
	s.Spinner = spinner.Spinner{
		Frames: []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"},
		FPS:    time.Second / 10,
	}
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	m := model{
		state:       StateConfig,
		focus:       FocusMode,
		mode:        renamer.ModeFixed,
		modeList:    modeList,
		pathInput:   pathInput,
		pathList:    pathList,
		progressBar: progressBar,
		spinner:     s,
	}
	m.rebuildParamInputs()
	m.updateFocusState()
	return m
}

func (m model) Init() tea.Cmd {
	return nil
}

type modeItem struct {
	mode  renamer.Mode
	title string
	desc  string
}

func (m modeItem) Title() string       { return m.title }
func (m modeItem) Description() string { return m.desc }
func (m modeItem) FilterValue() string { return m.title }

type pathItem struct {
	path string
}

func (p pathItem) Title() string       { return p.path }
func (p pathItem) Description() string { return "" }
func (p pathItem) FilterValue() string { return p.path }

// paramSpec 每个模式的参数输入框定义
type paramSpec struct {
	label       string
	placeholder string
	initial     string
}

func specsForMode(mode renamer.Mode) []paramSpec {
	switch mode {
	case renamer.ModeFixed:
		return []paramSpec{
			{label: "新文件名", placeholder: "例如：photo"},
			{label: "保留扩展名 (y/n)", initial: "y"},
		}
	case renamer.ModeSerial:
		return []paramSpec{
			{label: "前缀", placeholder: "例如：IMG_"},
			{label: "后缀", placeholder: "可留空"},
			{label: "起始序号", initial: "1"},
			{label: "补零宽度", initial: "0"},
			{label: "保留扩展名 (y/n)", initial: "y"},
			{label: "保留原文件名 (y/n)", initial: "n"},
			{label: "使用持久化计数器 (y/n)", initial: "n"},
		}
	case renamer.ModeReplace:
		return []paramSpec{
			{label: "查找文本", placeholder: "文本或正则表达式"},
			{label: "替换为", placeholder: "可留空"},
			{label: "使用正则 (y/n)", initial: "n"},
		}
	case renamer.ModeAdd:
		return []paramSpec{
			{label: "追加文本", placeholder: "例如：_v2"},
			{label: "位置 (start/end)", initial: "end"},
		}
	case renamer.ModeTrim:
		return []paramSpec{
			{label: "删除字符数", initial: "1"},
			{label: "位置 (start/end)", initial: "end"},
		}
	case renamer.ModeExtension:
		return []paramSpec{
			{label: "新扩展名", placeholder: "留空则移除扩展名"},
		}
	case renamer.ModeCase:
		return []paramSpec{
			{label: "方式 (upper/lower)", initial: "lower"},
		}
	case renamer.ModeConvert:
		return []paramSpec{
			{label: "方向 (zenkaku/hankaku)", initial: "hankaku"},
		}
	}
	return nil
}

// rebuildParamInputs 切换模式后重建参数输入框
func (m *model) rebuildParamInputs() {
	specs := specsForMode(m.mode)
	m.paramLabels = make([]string, 0, len(specs))
	m.paramInputs = make([]textinput.Model, 0, len(specs))

	for _, spec := range specs {
		input := textinput.New()
		input.Placeholder = spec.placeholder
		input.Prompt = "> "
		input.PromptStyle = focusedPromptStyle
		input.TextStyle = textStyle
		if spec.initial != "" {
			input.SetValue(spec.initial)
		}
		m.paramLabels = append(m.paramLabels, spec.label)
		m.paramInputs = append(m.paramInputs, input)
	}

	m.paramIndex = 0
}
