// Package assistant lets the user ask the hosted model about the figures on
// screen. Each question is sent together with a textual description of the
// active page, and the streamed answer grows in place inside the transcript.
package assistant

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"strings"
	"time"

	"github.com/dmitrijs2005/findash/internal/logging"
)

var (
	// ErrBusy is returned while a previous answer is still streaming.
	ErrBusy = errors.New("assistant is busy")
	// ErrEmptyQuestion is returned for blank input.
	ErrEmptyQuestion = errors.New("empty question")
	// ErrNotReady is returned when the model could not be initialized.
	ErrNotReady = errors.New("assistant not initialized")
)

const (
	// MsgAnswerError replaces the pending answer when anything fails.
	MsgAnswerError = "Lo siento, ocurrió un error al procesar tu solicitud. Por favor, inténtalo de nuevo más tarde."
	// MsgInitError is appended once when the model cannot be created.
	MsgInitError = "No se pudo inicializar el asistente de IA."
)

// Model is a chat session with the hosted model. The returned sequence is
// consumed once; it yields text fragments in arrival order.
type Model interface {
	SendMessageStream(ctx context.Context, message string) iter.Seq2[string, error]
}

// ModelFactory creates the chat session.
type ModelFactory func(ctx context.Context) (Model, error)

type Bridge struct {
	model      Model
	transcript *Transcript
	source     ContextSource
	delay      time.Duration
	log        logging.Logger
}

// NewBridge creates the model through newModel. A failure is not returned:
// it is recorded as an error turn and every later Ask reports ErrNotReady.
func NewBridge(ctx context.Context, newModel ModelFactory, t *Transcript, src ContextSource, delay time.Duration, log logging.Logger) *Bridge {
	b := &Bridge{transcript: t, source: src, delay: delay, log: log}

	m, err := newModel(ctx)
	if err != nil {
		log.Error(ctx, "assistant init failed", "error", err)
		t.appendError(MsgInitError)
		return b
	}
	b.model = m
	return b
}

func (b *Bridge) Transcript() *Transcript {
	return b.transcript
}

func (b *Bridge) Ready() bool {
	return b.model != nil
}

// Message builds the text sent to the model.
func Message(pageContext, question string) string {
	return pageContext + "\n\nPregunta del usuario: " + question
}

// Ask sends question and streams the answer into the transcript. Only one
// question may be in flight. On failure the pending turn is replaced by
// MsgAnswerError and the cause is returned; nothing is retried.
func (b *Bridge) Ask(ctx context.Context, question string) error {
	if strings.TrimSpace(question) == "" {
		return ErrEmptyQuestion
	}
	if b.model == nil {
		return ErrNotReady
	}

	id, ok := b.transcript.begin(question)
	if !ok {
		return ErrBusy
	}
	defer b.transcript.end()

	if err := b.stream(ctx, id, question); err != nil {
		b.log.Warn(ctx, "assistant answer failed", "error", err)
		b.transcript.replace(id, MsgAnswerError, true)
		return fmt.Errorf("ask assistant: %w", err)
	}
	return nil
}

func (b *Bridge) stream(ctx context.Context, id, question string) error {
	// let a navigation that just happened finish rendering
	if b.delay > 0 {
		timer := time.NewTimer(b.delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}

	msg := Message(b.source.Capture(), question)
	b.log.Debug(ctx, "assistant request", "chars", len(msg))

	var answer strings.Builder
	for fragment, err := range b.model.SendMessageStream(ctx, msg) {
		if err != nil {
			return err
		}
		answer.WriteString(fragment)
		b.transcript.replace(id, answer.String(), false)
	}
	return nil
}
