package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	accentColor        = lipgloss.Color("#7aa2f7")
	inkColor           = lipgloss.Color("#0f0f0f")
	paperColor         = lipgloss.Color("#f5f5f5")
	secondaryTextColor = lipgloss.Color("#a9b1d6")

	sectionHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("81"))
	errorStyle         = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	helperStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	phraseStyle        = lipgloss.NewStyle().Foreground(paperColor).Italic(true)
	copiedStyle        = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#a3be8c"))

	heroTitleStyle   = lipgloss.NewStyle().Bold(true).Foreground(paperColor)
	taglineStyle     = lipgloss.NewStyle().Foreground(secondaryTextColor).Italic(true)
	buttonStyle      = lipgloss.NewStyle().Bold(true).Foreground(inkColor).Background(paperColor).Padding(0, 2)
	inputBoxStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(accentColor).Padding(0, 1)
	emailBoxStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#56526e")).Padding(0, 1)
	noticeBoxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#ffd166")).Padding(0, 1)
	noticeTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ffd166"))
	errorBoxStyle    = lipgloss.NewStyle().Border(lipgloss.DoubleBorder()).BorderForeground(lipgloss.Color("9")).Padding(0, 1)
	statusBarStyle   = lipgloss.NewStyle().Foreground(inkColor).Background(lipgloss.Color("#8ecae6")).Padding(0, 1)
	keyStyle         = lipgloss.NewStyle().Bold(true).Foreground(inkColor).Background(lipgloss.Color("#ffd166")).Padding(0, 1)
	keyDescStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#e0def4"))
	legendBoxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#56526e")).Padding(1, 2)

	logoFaceStyle      = lipgloss.NewStyle().Bold(true).Foreground(paperColor)
	logoShadowStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#3b4261"))
	logoContainerStyle = lipgloss.NewStyle().Padding(0, 1)
	logoArtLines       = []string{
		"     ██╗   ██████╗   ██████╗   ███╗   ███╗   █████╗   ██╗  ██╗       ",
		"     ██║  ██╔═══██╗  ██╔══██╗  ████╗ ████║  ██╔══██╗  ██║  ██║       ",
		"     ██║  ██║   ██║  ██████╔╝  ██╔████╔██║  ███████║  ██║  ██║       ",
		"██   ██║  ██║   ██║  ██╔══██╗  ██║╚██╔╝██║  ██╔══██║  ██║  ██║       ",
		"╚█████╔╝  ╚██████╔╝  ██████╔╝  ██║ ╚═╝ ██║  ██║  ██║  ██║  ███████╗  ",
		" ╚════╝    ╚═════╝   ╚═════╝   ╚═╝     ╚═╝  ╚═╝  ╚═╝  ╚═╝  ╚══════╝  ",
	}
)

// renderLogo draws the block-letter logo with a one-cell drop shadow.
func renderLogo() string {
	if len(logoArtLines) == 0 {
		return ""
	}
	width := 0
	lineRunes := make([][]rune, len(logoArtLines))
	for i, line := range logoArtLines {
		runes := []rune(line)
		lineRunes[i] = runes
		if len(runes) > width {
			width = len(runes)
		}
	}
	width++
	height := len(logoArtLines) + 1

	type cell struct {
		r     rune
		style lipgloss.Style
	}
	grid := make([][]cell, height)
	for i := range grid {
		grid[i] = make([]cell, width)
	}

	paint := func(dx, dy int, style lipgloss.Style) {
		for y, runes := range lineRunes {
			for x, r := range runes {
				if r == ' ' {
					continue
				}
				grid[y+dy][x+dx] = cell{r: r, style: style}
			}
		}
	}
	paint(1, 1, logoShadowStyle)
	paint(0, 0, logoFaceStyle)

	lines := make([]string, height)
	for y, row := range grid {
		var b strings.Builder
		for _, c := range row {
			if c.r == 0 {
				b.WriteRune(' ')
				continue
			}
			b.WriteString(c.style.Render(string(c.r)))
		}
		lines[y] = b.String()
	}
	return logoContainerStyle.Render(strings.Join(lines, "\n"))
}
