package tui

import (
	"errors"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"

	"quiz-widget/backend/internal/chat"
	"quiz-widget/backend/internal/model"
	"quiz-widget/backend/internal/quiz"
)

const (
	headerHeight = 1
	footerHeight = 3 // status line, divider, input
)

// Options configures the terminal widget.
type Options struct {
	ID       string
	Title    string
	Greeting string
	QuizTool string
	// MarkdownStyle is a glamour standard style name. Empty means auto
	// detection from the terminal.
	MarkdownStyle string
	Logger        *slog.Logger
}

// Model is the root Bubble Tea model of the terminal widget.
type Model struct {
	adapter *chat.Adapter
	bridge  *bridge
	opts    Options
	logger  *slog.Logger

	viewport viewport.Model
	input    textinput.Model
	spinner  spinner.Model
	md       *glamour.TermRenderer

	snap     chat.Snapshot
	errText  string
	notice   string
	session  *quiz.Session
	width    int
	height   int
	ready    bool
	quitting bool
}

// New builds the widget and the adapter behind it.
func New(transport chat.Transport, opts Options) Model {
	if opts.Title == "" {
		opts.Title = "AI Assistant"
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	b := newBridge()
	adapter := chat.NewAdapter(transport, chat.Options{
		ID:       opts.ID,
		Greeting: opts.Greeting,
		QuizTool: opts.QuizTool,
		Logger:   logger,
		OnUpdate: b.notify,
		OnError:  b.onError,
		OnQuiz:   b.onQuiz,
	})

	in := textinput.New()
	in.Placeholder = "Type your message..."
	in.Prompt = "> "
	in.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = mutedStyle

	return Model{
		adapter: adapter,
		bridge:  b,
		opts:    opts,
		logger:  logger,
		input:   in,
		spinner: sp,
		snap:    adapter.View(),
	}
}

// Run shows the widget until the user quits.
func Run(transport chat.Transport, opts Options) error {
	m := New(transport, opts)
	defer m.Close()
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

// Adapter exposes the conversation driving the widget.
func (m Model) Adapter() *chat.Adapter { return m.adapter }

// Close stops any reply still streaming.
func (m Model) Close() { m.adapter.Close() }

func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.spinner.Tick, waitForUpdate(m.bridge.signal))
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.layout()
		return m, nil

	case adapterUpdateMsg:
		m.refresh()
		return m, waitForUpdate(m.bridge.signal)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		if m.snap.Status == model.StatusSubmitted || m.hasLoadingQuiz() {
			m.redraw()
		}
		return m, cmd

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.quitting = true
			m.adapter.Close()
			return m, tea.Quit
		}
		if m.session != nil {
			return m.handleQuizKey(msg)
		}
		if handled, cmd := m.handleChatKey(msg); handled {
			return m, cmd
		}
	}

	if m.snap.Status == model.StatusReady && m.session == nil {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		cmds = append(cmds, cmd)
	}
	if m.ready {
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}

// handleChatKey runs chat-level shortcuts. It reports false for keys that
// should fall through to the input and viewport.
func (m *Model) handleChatKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		text := m.input.Value()
		if m.snap.Status != model.StatusReady || strings.TrimSpace(text) == "" {
			return true, nil
		}
		if err := m.adapter.Submit(text); err != nil {
			m.notice = err.Error()
			return true, nil
		}
		m.input.Reset()
		m.notice = ""
		m.refresh()
		return true, nil

	case tea.KeyEsc:
		if m.adapter.ClearError() {
			m.errText = ""
			m.refresh()
		}
		return true, nil

	case tea.KeyCtrlO:
		doc, err := m.adapter.LatestQuiz()
		if err != nil {
			m.notice = "No quiz to open yet."
			if !errors.Is(err, chat.ErrNoQuiz) {
				m.notice = err.Error()
			}
			return true, nil
		}
		m.openQuiz(doc)
		return true, nil
	}
	return false, nil
}

func (m Model) handleQuizKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	s := m.session
	switch key := msg.String(); key {
	case "esc":
		m.session = nil
		m.notice = ""
		m.syncInput()
	case "right", "enter":
		_ = s.Advance()
	case "left":
		_ = s.Retreat()
	case "r":
		if s.Phase() == quiz.PhaseReviewing {
			s.Reset()
		}
	default:
		if option, ok := optionForKey(key); ok {
			_ = s.SelectAnswer(option)
		}
	}
	return m, nil
}

// optionForKey maps 1-4 and a-d to option indexes.
func optionForKey(key string) (int, bool) {
	if len(key) != 1 {
		return 0, false
	}
	switch c := key[0]; {
	case c >= '1' && c <= '4':
		return int(c - '1'), true
	case c >= 'a' && c <= 'd':
		return int(c - 'a'), true
	}
	return 0, false
}

func (m *Model) openQuiz(doc *quiz.Document) {
	session, err := quiz.NewSession(doc)
	if err != nil {
		m.notice = err.Error()
		return
	}
	m.session = session
	m.notice = ""
	m.input.Blur()
	m.logger.Info("Opened quiz", "title", doc.Title, "questions", session.Len())
}

// refresh pulls the adapter's state into the model.
func (m *Model) refresh() {
	m.snap = m.adapter.View()
	doc, err := m.bridge.take()
	if err != nil {
		m.errText = err.Error()
	}
	if m.snap.Status != model.StatusError {
		m.errText = ""
	}
	if doc != nil {
		m.openQuiz(doc)
	}
	m.syncInput()
	m.redraw()
}

// syncInput enables the input only while a message can be submitted.
func (m *Model) syncInput() {
	if m.snap.Status == model.StatusReady && m.session == nil {
		m.input.Focus()
	} else {
		m.input.Blur()
	}
}

func (m Model) hasLoadingQuiz() bool {
	for _, msg := range m.snap.Messages {
		for _, p := range msg.Parts {
			if p.Kind == chat.ViewQuizLoading {
				return true
			}
		}
	}
	return false
}

func (m *Model) layout() {
	contentH := max(m.height-headerHeight-footerHeight, 3)
	if !m.ready {
		m.viewport = viewport.New(m.width, contentH)
		m.ready = true
	} else {
		m.viewport.Width = m.width
		m.viewport.Height = contentH
	}
	m.input.Width = max(m.width-4, 10)
	m.md = newMarkdownRenderer(m.opts.MarkdownStyle, m.width-4)
	m.redraw()
}

// redraw re-renders the conversation into the viewport, following the
// bottom unless the user scrolled up.
func (m *Model) redraw() {
	if !m.ready {
		return
	}
	atBottom := m.viewport.AtBottom()
	m.viewport.SetContent(m.renderConversation())
	if atBottom {
		m.viewport.GotoBottom()
	}
}

func newMarkdownRenderer(style string, width int) *glamour.TermRenderer {
	styleOpt := glamour.WithAutoStyle()
	if style != "" {
		styleOpt = glamour.WithStandardStyle(style)
	}
	r, err := glamour.NewTermRenderer(styleOpt, glamour.WithWordWrap(max(width, 20)))
	if err != nil {
		return nil
	}
	return r
}
