package tui

import (
	"io"
	"log/slog"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/reflow/wordwrap"

	"github.com/csheth/jobmail/internal/lifecycle"
)

// Config wires runtime options into the TUI program.
type Config struct {
	Controller *lifecycle.Controller
	// InitialURL prefills the reference so Enter submits right away.
	InitialURL string
	// Clipboard writes text to the system clipboard. Defaults to atotto/clipboard.
	Clipboard func(string) error
	Logger    *slog.Logger
}

// New returns a tea.Model ready to be mounted into a Program.
func New(config Config) tea.Model {
	if config.Controller == nil {
		config.Controller = lifecycle.New(lifecycle.Config{Logger: config.Logger})
	}
	if config.Clipboard == nil {
		config.Clipboard = clipboard.WriteAll
	}
	if config.Logger == nil {
		config.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	layout := newPageLayout()

	urlInput := textinput.New()
	urlInput.Placeholder = urlPlaceholder
	urlInput.CharLimit = 2048
	urlInput.Width = layout.inputWidth

	spin := spinner.New()
	spin.Spinner = spinner.Dot

	vp := viewport.New(layout.viewportWidth, layout.viewportHeight)
	vp.MouseWheelEnabled = true

	m := &model{
		config:   config,
		ctrl:     config.Controller,
		layout:   layout,
		urlInput: urlInput,
		spinner:  spin,
		viewport: vp,
	}
	if url := strings.TrimSpace(config.InitialURL); url != "" {
		m.urlInput.SetValue(url)
		m.ctrl.SetInput(url)
	}
	return m
}

type model struct {
	config Config
	ctrl   *lifecycle.Controller
	layout pageLayout

	urlInput textinput.Model
	spinner  spinner.Model
	viewport viewport.Model

	renderedResult string
	renderedWidth  int
	helpVisible    bool
}

func (m *model) Init() tea.Cmd {
	return textinput.Blink
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if m.ctrl.Busy() {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		if m.ctrl.Result() != "" {
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}
		return m, nil
	case copyResultMsg:
		if msg.err != nil {
			m.ctrl.CopyFailed(msg.err)
			return m, nil
		}
		m.config.Logger.Debug("email copied to clipboard", "request_id", m.ctrl.RequestID())
		return m, m.ctrl.AcknowledgeCopy(msg.epoch)
	case tea.WindowSizeMsg:
		m.layout.Update(msg.Width, msg.Height)
		m.urlInput.Width = m.layout.inputWidth
		m.viewport.Width = m.layout.viewportWidth
		m.viewport.Height = m.layout.viewportHeight
		m.syncResult()
		return m, nil
	}

	if cmd, handled := m.ctrl.Update(msg); handled {
		m.syncResult()
		return m, cmd
	}
	return m, nil
}

func (m *model) handleKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "enter":
		return m, m.submit()
	case "ctrl+r":
		m.reset()
		return m, nil
	case "ctrl+y":
		return m, m.copyResult()
	case "esc":
		switch {
		case m.ctrl.Stalled():
			m.ctrl.DismissStall()
		case m.ctrl.InputRevealed():
			m.ctrl.HideInput()
			m.urlInput.Blur()
		case m.helpVisible:
			m.helpVisible = false
		default:
			return m, tea.Quit
		}
		return m, nil
	}

	if m.urlInput.Focused() {
		var cmd tea.Cmd
		m.urlInput, cmd = m.urlInput.Update(key)
		m.ctrl.SetInput(m.urlInput.Value())
		return m, cmd
	}

	if key.String() == "?" {
		m.helpVisible = !m.helpVisible
		return m, nil
	}

	if m.ctrl.Result() != "" {
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(key)
		return m, cmd
	}
	return m, nil
}

func (m *model) submit() tea.Cmd {
	if m.ctrl.Busy() {
		return nil
	}
	m.ctrl.SetInput(m.urlInput.Value())
	cmd := m.ctrl.Submit(m.ctrl.Input())
	m.syncResult()
	if m.ctrl.Busy() {
		m.urlInput.Blur()
		return tea.Batch(cmd, m.spinner.Tick)
	}
	if m.ctrl.InputRevealed() {
		return m.urlInput.Focus()
	}
	return cmd
}

func (m *model) reset() {
	m.ctrl.Reset()
	m.urlInput.SetValue("")
	m.urlInput.Blur()
	m.syncResult()
}

func (m *model) copyResult() tea.Cmd {
	text := m.ctrl.Result()
	if text == "" {
		return nil
	}
	write := m.config.Clipboard
	epoch := m.ctrl.CopyEpoch()
	return func() tea.Msg {
		return copyResultMsg{epoch: epoch, err: write(text)}
	}
}

// syncResult keeps the viewport content in step with the controller's result.
func (m *model) syncResult() {
	result := m.ctrl.Result()
	width := m.layout.wrapWidth()
	if result == m.renderedResult && width == m.renderedWidth {
		return
	}
	m.renderedResult = result
	m.renderedWidth = width
	if result == "" {
		m.viewport.SetContent("")
	} else {
		m.viewport.SetContent(wordwrap.String(result, width))
	}
	m.viewport.GotoTop()
}
