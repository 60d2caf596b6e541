package ui

import (
	"context"
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dmitrijs2005/findash/internal/client/assistant"
)

const (
	chatTitle       = "Asistente Financiero Fin"
	chatPlaceholder = "Pregúntale a Fin..."
	chatHelp        = "enter enviar · esc cerrar · pgup/pgdn desplazar"
)

type snapshotMsg assistant.Snapshot

type askDoneMsg struct{ err error }

// ChatModel is the chat overlay. It only reads the transcript; questions go
// through the bridge and come back as snapshots.
type ChatModel struct {
	ctx         context.Context
	bridge      *assistant.Bridge
	updates     <-chan assistant.Snapshot
	unsubscribe func()
	snapshot    assistant.Snapshot

	viewport viewport.Model
	input    textinput.Model
	spinner  spinner.Model
	markdown *Markdown
	theme    Theme
	width    int
	height   int
	status   string
}

// NewChatModel subscribes to the bridge's transcript. Call Close when the
// program has finished.
func NewChatModel(ctx context.Context, b *assistant.Bridge, th Theme, mdStyle string) ChatModel {
	input := textinput.New()
	input.Placeholder = chatPlaceholder
	input.Prompt = "› "
	input.CharLimit = 2000
	input.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = th.Accent

	updates, unsubscribe := b.Transcript().Subscribe()

	m := ChatModel{
		ctx:         ctx,
		bridge:      b,
		updates:     updates,
		unsubscribe: unsubscribe,
		snapshot:    b.Transcript().Snapshot(),
		viewport:    viewport.New(80, 20),
		input:       input,
		spinner:     sp,
		markdown:    NewMarkdown(mdStyle, 78),
		theme:       th,
	}
	m.applyBusy()
	m.refresh()
	return m
}

func (m ChatModel) Close() {
	m.unsubscribe()
}

func (m ChatModel) Transcript() assistant.Snapshot {
	return m.snapshot
}

func (m ChatModel) Init() tea.Cmd {
	return tea.Batch(waitSnapshot(m.updates), m.spinner.Tick, textinput.Blink)
}

func waitSnapshot(ch <-chan assistant.Snapshot) tea.Cmd {
	return func() tea.Msg {
		s, ok := <-ch
		if !ok {
			return nil
		}
		return snapshotMsg(s)
	}
}

func (m ChatModel) ask(question string) tea.Cmd {
	ctx, b := m.ctx, m.bridge
	return func() tea.Msg {
		return askDoneMsg{err: b.Ask(ctx, question)}
	}
}

func (m ChatModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.resize()
		m.refresh()
		return m, nil

	case snapshotMsg:
		m.snapshot = assistant.Snapshot(msg)
		m.applyBusy()
		m.refresh()
		return m, waitSnapshot(m.updates)

	case askDoneMsg:
		// the answer may never have started; resync with the transcript
		m.snapshot = m.bridge.Transcript().Snapshot()
		m.applyBusy()
		m.refresh()
		m.status = ""
		switch {
		case errors.Is(msg.err, assistant.ErrNotReady):
			m.status = assistant.MsgInitError
		case errors.Is(msg.err, assistant.ErrBusy):
			m.status = "Espera a que termine la respuesta anterior."
		}
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyEsc, tea.KeyCtrlC:
			return m, tea.Quit
		case tea.KeyPgUp, tea.KeyPgDown:
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		case tea.KeyEnter:
			question := m.input.Value()
			if m.snapshot.Busy || strings.TrimSpace(question) == "" {
				return m, nil
			}
			m.input.Reset()
			// disable right away; the snapshot confirms it
			m.snapshot.Busy = true
			m.applyBusy()
			return m, m.ask(question)
		}
		if m.snapshot.Busy {
			return m, nil
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *ChatModel) applyBusy() {
	if m.snapshot.Busy {
		m.input.Blur()
		return
	}
	m.input.Focus()
}

func (m *ChatModel) resize() {
	header := lipgloss.Height(m.theme.Header.Render(chatTitle))
	// header, blank, input, status/help
	h := m.height - header - 4
	if h < 3 {
		h = 3
	}
	m.viewport.Width = m.width
	m.viewport.Height = h
	m.input.Width = m.width - 4
	m.markdown.SetWidth(m.width - 2)
}

// refresh re-renders the transcript and scrolls to the newest turn.
func (m *ChatModel) refresh() {
	m.viewport.SetContent(RenderTranscript(m.snapshot, m.markdown, m.theme))
	m.viewport.GotoBottom()
}

// RenderTranscript draws every turn in order. An empty assistant turn is the
// placeholder of an answer that has not started yet.
func RenderTranscript(s assistant.Snapshot, md *Markdown, th Theme) string {
	chunks := make([]string, 0, len(s.Turns))
	for _, t := range s.Turns {
		var label, body string
		switch {
		case t.Sender == assistant.SenderUser:
			label = th.User.Render("Tú")
			body = wrapText(t.Text, md.width)
		case t.Error:
			label = th.Assistant.Render("Fin")
			body = th.ErrorTurn.Render(wrapText(t.Text, md.width-2))
		case t.Text == "":
			label = th.Assistant.Render("Fin")
			body = th.Muted.Render("…")
		default:
			label = th.Assistant.Render("Fin")
			body = md.Render(t.Text)
		}
		chunks = append(chunks, label+"\n"+body)
	}
	return strings.Join(chunks, "\n\n")
}

func (m ChatModel) View() string {
	var footer string
	switch {
	case m.snapshot.Busy:
		footer = m.spinner.View() + " " + m.theme.Muted.Render("Fin está escribiendo...")
	case m.status != "":
		footer = m.theme.Danger.Render(m.status)
	default:
		footer = m.theme.Muted.Render(chatHelp)
	}

	return strings.Join([]string{
		m.theme.Header.Render(chatTitle),
		m.viewport.View(),
		"",
		m.input.View(),
		footer,
	}, "\n")
}
