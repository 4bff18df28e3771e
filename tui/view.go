package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/moyu-x/batch-rename/pkg/renamer"
)

// confirmView 和 completeView 的结果列表最多展示的行数
const maxResultLines = 15

func (m *model) View() string {
	switch m.state {
	case StateConfig:
		return m.configView()
	case StateConfirm:
		return m.confirmView()
	case StateProcessing:
		return m.processingView()
	case StateComplete:
		return m.completeView()
	default:
		return "未知状态"
	}
}

func (m *model) configView() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("📁 批量重命名工具") + "\n\n")

	b.WriteString(separatorStyle.Render(strings.Repeat("─", 60)) + "\n\n")

	b.WriteString(labelStyle.Render("1. 选择重命名模式：") + "\n")
	if m.focus == FocusMode {
		b.WriteString(focusedStyle.Render(m.modeList.View()) + "\n\n")
	} else {
		b.WriteString(normalStyle.Render(m.modeList.View()) + "\n\n")
	}

	b.WriteString(labelStyle.Render("2. 填写模式参数：") + "\n")
	if m.focus == FocusParams {
		b.WriteString(focusedStyle.Render(m.renderParams()) + "\n\n")
	} else {
		b.WriteString(normalStyle.Render(m.renderParams()) + "\n\n")
	}

	b.WriteString(labelStyle.Render("3. 输入文件或目录路径：") + "\n")
	if m.focus == FocusPathInput {
		b.WriteString(focusedStyle.Render(m.pathInput.View()) + "\n\n")
	} else {
		b.WriteString(normalStyle.Render(m.pathInput.View()) + "\n\n")
	}

	b.WriteString(labelStyle.Render("已添加路径列表：") + "\n")
	if m.focus == FocusPathList {
		b.WriteString(focusedStyle.Render(m.pathList.View()) + "\n\n")
	} else {
		b.WriteString(normalStyle.Render(m.pathList.View()) + "\n\n")
	}

	if m.err != nil {
		b.WriteString(errorTextStyle.Render("⚠ "+m.err.Error()) + "\n\n")
	}

	b.WriteString(separatorStyle.Render(strings.Repeat("─", 60)) + "\n")
	b.WriteString(hintStyle.Render("操作提示：") + "\n")
	b.WriteString("  • Tab 键切换焦点，Enter 确认\n")
	b.WriteString("  • 在路径列表上按 Enter 开始预览\n")
	b.WriteString("  • Delete 删除选中的路径\n")
	b.WriteString("  • Ctrl+C 退出程序\n")

	return lipgloss.NewStyle().
		Padding(1).
		Render(b.String())
}

func (m *model) renderParams() string {
	var b strings.Builder
	for i, label := range m.paramLabels {
		marker := "  "
		name := promptStyle.Render(label)
		if m.focus == FocusParams && i == m.paramIndex {
			marker = "▸ "
			name = focusedTitleStyle.Render(label)
		}
		b.WriteString(fmt.Sprintf("%s%s %s", marker, name, m.paramInputs[i].View()))
		if i < len(m.paramLabels)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

func (m *model) confirmView() string {
	var b strings.Builder

	if !m.previewReady {
		b.WriteString(titleStyle.Render("🔍 正在生成预览...") + "\n\n")
		b.WriteString(m.spinner.View() + " 正在计算新文件名...\n")
		return lipgloss.NewStyle().
			Padding(2).
			Render(b.String())
	}

	if len(m.preview) == 0 {
		b.WriteString(titleStyle.Render("🔍 预览结果") + "\n\n")
		b.WriteString("  没有匹配到任何文件\n\n")
		b.WriteString(hintStyle.Render("按 Enter 或 Esc 返回修改配置") + "\n")
		return lipgloss.NewStyle().
			Padding(2).
			Render(b.String())
	}

	b.WriteString(titleStyle.Render("🔍 预览结果（不会改动文件）") + "\n\n")

	ok, bad := 0, 0
	for i, r := range m.preview {
		if r.Ok() {
			ok++
		} else {
			bad++
		}
		if i < maxResultLines {
			b.WriteString("  " + renderResultLine(r) + "\n")
		}
	}
	if len(m.preview) > maxResultLines {
		b.WriteString(hintStyle.Render(fmt.Sprintf("  …… 共 %d 个文件", len(m.preview))) + "\n")
	}

	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  成功 %d 个，失败 %d 个\n\n", ok, bad))

	b.WriteString(separatorStyle.Render(strings.Repeat("─", 60)) + "\n")
	b.WriteString(hintStyle.Render("Enter 执行重命名，Esc 返回修改") + "\n")

	return lipgloss.NewStyle().
		Padding(2).
		Render(b.String())
}

func (m *model) processingView() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("🔄 正在重命名...") + "\n\n")

	b.WriteString(labelStyle.Render("处理进度：") + "\n")
	b.WriteString(m.progressBar.View() + "\n\n")

	b.WriteString(statsBoxStyle.Render(
		m.renderStats(),
	) + "\n\n")

	b.WriteString(labelStyle.Render("当前文件：") + "\n")
	b.WriteString(filePathStyle.Render(m.currentFile) + "\n\n")

	return lipgloss.NewStyle().
		Padding(2).
		Render(b.String())
}

func (m *model) completeView() string {
	var b strings.Builder

	if m.err != nil {
		b.WriteString(errorTextStyle.Render("❌ 批次执行出错！") + "\n\n")
		b.WriteString("  " + m.err.Error() + "\n\n")
	} else {
		b.WriteString(successTitleStyle.Render("✅ 处理完成！") + "\n\n")
	}

	b.WriteString(statsBoxStyle.Render(
		m.renderFinalStats(),
	) + "\n\n")

	if len(m.results) > 0 {
		b.WriteString(labelStyle.Render("最近结果：") + "\n")
		shown := 0
		for i := len(m.results) - 1; i >= 0 && shown < 10; i-- {
			b.WriteString("  " + renderResultLine(m.results[i]) + "\n")
			shown++
		}
		b.WriteString("\n")
	}

	b.WriteString(separatorStyle.Render(strings.Repeat("─", 60)) + "\n")
	b.WriteString(hintStyle.Render("按 Enter 开始新的批次，Ctrl+C 退出") + "\n")

	return lipgloss.NewStyle().
		Padding(2).
		Render(b.String())
}

func (m *model) renderStats() string {
	var b strings.Builder
	b.WriteString("📊 实时统计：\n\n")
	b.WriteString(fmt.Sprintf("  总文件数：  %d\n", m.total))
	b.WriteString(fmt.Sprintf("  已处理：    %d / %d\n", m.processed, m.total))
	b.WriteString(fmt.Sprintf("  成功：      %d 个文件\n", m.succeeded))
	b.WriteString(fmt.Sprintf("  失败：      %d 个文件\n", m.failed))
	return b.String()
}

func (m *model) renderFinalStats() string {
	var b strings.Builder
	b.WriteString("📊 最终统计：\n\n")
	b.WriteString(fmt.Sprintf("  • 总文件数：  %d 个\n", m.total))
	b.WriteString(fmt.Sprintf("  • 成功：      %d 个文件\n", m.succeeded))
	b.WriteString(fmt.Sprintf("  • 失败：      %d 个文件\n", m.failed))
	if m.outcome != nil {
		if m.outcome.BatchID != "" {
			b.WriteString(fmt.Sprintf("  • 历史批次：  %s\n", m.outcome.BatchID))
		}
		elapsed := m.outcome.Stats.EndTime.Sub(m.outcome.Stats.StartTime)
		b.WriteString(fmt.Sprintf("  • 总耗时：    %s\n", elapsed.String()))
	}
	return b.String()
}

func renderResultLine(r renamer.Result) string {
	if r.Ok() {
		return successTextStyle.Render(fmt.Sprintf("%s -> %s", r.Path, r.NewName))
	}
	return errorTextStyle.Render(fmt.Sprintf("%s [%s]", r.Path, r.StatusText()))
}
