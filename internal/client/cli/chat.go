package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/dmitrijs2005/findash/internal/client/assistant"
	"github.com/dmitrijs2005/findash/internal/client/ui"
)

// printFn is the unterminated counterpart of printlnFn, used for streaming.
var printFn = fmt.Print

// runProgram runs a bubbletea model to completion. Tests replace it.
var runProgram = func(ctx context.Context, m tea.Model) error {
	_, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	return err
}

// Ask sends question to the assistant and prints the answer as it streams.
func (a *App) Ask(ctx context.Context, question string) error {
	if !a.isLoggedIn() {
		printlnFn("Inicia sesión primero.")
		return nil
	}

	tr := a.bridge.Transcript()
	updates, cancel := tr.Subscribe()
	defer cancel()

	// the answer is the second turn appended after the current ones
	answerAt := len(tr.Snapshot().Turns) + 1

	done := make(chan error, 1)
	go func() { done <- a.bridge.Ask(ctx, question) }()

	printFn("Fin: ")
	printed := ""
	emit := func(s assistant.Snapshot) {
		if len(s.Turns) <= answerAt {
			return
		}
		answer := s.Turns[answerAt]
		if answer.Sender != assistant.SenderAssistant || answer.Error {
			return
		}
		if strings.HasPrefix(answer.Text, printed) {
			printFn(answer.Text[len(printed):])
			printed = answer.Text
		}
	}

	for {
		select {
		case s, ok := <-updates:
			if !ok {
				updates = nil
				continue
			}
			emit(s)
		case err := <-done:
			switch {
			case err == nil:
				emit(tr.Snapshot())
			case errors.Is(err, assistant.ErrEmptyQuestion):
				printFn("Escribe una pregunta.")
			case errors.Is(err, assistant.ErrNotReady):
				printFn(assistant.MsgInitError)
			case errors.Is(err, assistant.ErrBusy):
				printFn("Espera a que termine la respuesta anterior.")
			default:
				if printed != "" {
					printlnFn()
				}
				printFn(assistant.MsgAnswerError)
			}
			printlnFn()
			return err
		}
	}
}

// Chat opens the full-screen chat overlay; Esc returns to the prompt.
func (a *App) Chat(ctx context.Context) error {
	if !a.isLoggedIn() {
		printlnFn("Inicia sesión primero.")
		return nil
	}

	m := ui.NewChatModel(ctx, a.bridge, a.theme, "dark")
	defer m.Close()

	if err := runProgram(ctx, m); err != nil {
		a.log.Error(ctx, "chat overlay failed", "error", err)
		return err
	}
	return nil
}
