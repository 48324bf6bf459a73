package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/csheth/jobmail/internal/lifecycle"
)

func (m *model) View() string {
	parts := []string{m.heroView()}
	if m.ctrl.InputRevealed() {
		parts = append(parts, m.inputPanel())
	}
	parts = append(parts, m.actionView())
	if m.ctrl.Stalled() {
		parts = append(parts, m.stallView())
	}
	if m.ctrl.Phase() == lifecycle.Failed {
		parts = append(parts, m.failureView())
	}
	if m.ctrl.Result() != "" {
		parts = append(parts, m.resultView())
	}
	parts = append(parts, m.statusView())
	if m.helpVisible {
		parts = append(parts, m.keyLegendView())
	}
	return joinNonEmpty(parts)
}

func (m *model) heroView() string {
	if m.ctrl.Result() != "" {
		return taglineStyle.Render(heroHeadline)
	}
	return lipgloss.JoinVertical(
		lipgloss.Left,
		renderLogo(),
		heroTitleStyle.Render(heroHeadline),
		taglineStyle.Render(heroTagline),
	)
}

func (m *model) inputPanel() string {
	return joinNonEmpty([]string{
		sectionHeaderStyle.Render("Job posting URL"),
		inputBoxStyle.Render(m.urlInput.View()),
		helperStyle.Render("Enter: generate • Esc: close"),
	})
}

func (m *model) actionView() string {
	if m.ctrl.Busy() {
		return fmt.Sprintf("%s %s", m.spinner.View(), phraseStyle.Render(m.ctrl.Phrase()))
	}
	button := buttonStyle.Render("Generate Email ✦")
	hint := "Press Enter"
	if url := strings.TrimSpace(m.ctrl.Input()); url != "" && !m.ctrl.InputRevealed() {
		hint = fmt.Sprintf("Press Enter to use %s", url)
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, button, helperStyle.Render("  "+hint))
}

func (m *model) stallView() string {
	body := wordwrap.String(stallNotice, m.layout.wrapWidth()-4)
	return noticeBoxStyle.Render(joinNonEmpty([]string{
		noticeTitleStyle.Render("Server is busy"),
		body,
		helperStyle.Render("Esc: dismiss"),
	}))
}

func (m *model) failureView() string {
	message := wordwrap.String(m.ctrl.FailureMessage(), m.layout.wrapWidth()-4)
	return errorBoxStyle.Render(joinNonEmpty([]string{
		errorStyle.Render("Error generating email"),
		message,
	}))
}

func (m *model) resultView() string {
	copyHint := helperStyle.Render("Ctrl+Y: copy")
	if m.ctrl.Copied() {
		copyHint = copiedStyle.Render("✓ Copied")
	}
	header := lipgloss.JoinHorizontal(
		lipgloss.Top,
		sectionHeaderStyle.Render("Your Generated Email"),
		"  ",
		copyHint,
	)
	return joinNonEmpty([]string{
		header,
		emailBoxStyle.Render(m.viewport.View()),
		helperStyle.Render("Ctrl+R: start over • ↑/↓: scroll"),
	})
}

func (m *model) statusView() string {
	stats := []string{fmt.Sprintf("Phase %s", m.ctrl.Phase())}
	if m.ctrl.Busy() {
		stats = append(stats, fmt.Sprintf("Step %d/10", m.ctrl.PhraseIndex()+1))
	}
	if m.ctrl.Result() != "" {
		stats = append(stats, fmt.Sprintf("%d words", len(strings.Fields(m.ctrl.Result()))))
	}
	stats = append(stats, "? help")
	return statusBarStyle.Render(strings.Join(stats, "  •  "))
}

func (m *model) keyLegendView() string {
	hints := []keyHint{
		{"enter", "Generate email"},
		{"ctrl+y", "Copy email"},
		{"ctrl+r", "Start over"},
		{"esc", "Dismiss / close / quit"},
		{"↑/↓", "Scroll email"},
		{"ctrl+c", "Quit"},
	}
	rows := []string{sectionHeaderStyle.Render("Keys")}
	const columns = 3
	for i := 0; i < len(hints); i += columns {
		end := i + columns
		if end > len(hints) {
			end = len(hints)
		}
		var cells []string
		for _, hint := range hints[i:end] {
			key := keyStyle.Render(hint.Key)
			desc := keyDescStyle.Render(" " + hint.Description + "  ")
			cells = append(cells, lipgloss.JoinHorizontal(lipgloss.Top, key, desc))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return legendBoxStyle.Render(strings.Join(rows, "\n"))
}

func joinNonEmpty(parts []string) string {
	filtered := make([]string, 0, len(parts))
	for _, part := range parts {
		if strings.TrimSpace(part) == "" {
			continue
		}
		filtered = append(filtered, part)
	}
	return strings.Join(filtered, "\n\n")
}
