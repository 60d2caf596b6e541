package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"iter"
	"strings"
	"sync"
	"testing"

	"github.com/dmitrijs2005/findash/internal/backendtest"
	"github.com/dmitrijs2005/findash/internal/client/assistant"
	"github.com/dmitrijs2005/findash/internal/client/client"
	"github.com/dmitrijs2005/findash/internal/client/config"
	"github.com/dmitrijs2005/findash/internal/client/tokenstore"
	"github.com/dmitrijs2005/findash/internal/logging"
)

// output collects everything the app prints.
type output struct {
	mu sync.Mutex
	b  strings.Builder
}

func (o *output) String() string {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.b.String()
}

func (o *output) Reset() {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.b.Reset()
}

func captureOutput(t *testing.T) *output {
	t.Helper()
	o := &output{}
	origLn, orig := printlnFn, printFn
	printlnFn = func(a ...any) (int, error) {
		o.mu.Lock()
		defer o.mu.Unlock()
		return fmt.Fprintln(&o.b, a...)
	}
	printFn = func(a ...any) (int, error) {
		o.mu.Lock()
		defer o.mu.Unlock()
		return fmt.Fprint(&o.b, a...)
	}
	t.Cleanup(func() { printlnFn, printFn = origLn, orig })
	return o
}

// stubInputs answers text prompts from answers in order and every password
// prompt with password.
func stubInputs(t *testing.T, password string, answers ...string) {
	t.Helper()
	origST, origGP := getSimpleText, getPassword
	getSimpleText = func(_ *bufio.Reader, prompt string, _ io.Writer) (string, error) {
		if len(answers) == 0 {
			return "", fmt.Errorf("unexpected prompt %q", prompt)
		}
		a := answers[0]
		answers = answers[1:]
		return a, nil
	}
	getPassword = func(_ io.Writer) ([]byte, error) { return []byte(password), nil }
	t.Cleanup(func() {
		getSimpleText = origST
		getPassword = origGP
	})
}

type scriptedModel struct {
	mu        sync.Mutex
	fragments []string
	fail      error
	messages  []string
}

func (m *scriptedModel) SendMessageStream(_ context.Context, message string) iter.Seq2[string, error] {
	m.mu.Lock()
	m.messages = append(m.messages, message)
	m.mu.Unlock()
	return func(yield func(string, error) bool) {
		for _, f := range m.fragments {
			if !yield(f, nil) {
				return
			}
		}
		if m.fail != nil {
			yield("", m.fail)
		}
	}
}

func (m *scriptedModel) lastMessage() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.messages) == 0 {
		return ""
	}
	return m.messages[len(m.messages)-1]
}

func modelFactory(m assistant.Model, err error) assistant.ModelFactory {
	return func(context.Context) (assistant.Model, error) {
		if err != nil {
			return nil, err
		}
		return m, nil
	}
}

// newTestApp builds an App against srv with an in-memory credential store
// seeded with token.
func newTestApp(t *testing.T, srv *backendtest.Server, token string, model assistant.ModelFactory) (*App, *tokenstore.MemoryStore) {
	t.Helper()
	if model == nil {
		model = modelFactory(&scriptedModel{}, nil)
	}
	store := tokenstore.NewMemoryStore(token)
	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.APIBaseURL = srv.URL()
	cfg.ContextDelay = 0

	log := logging.Nop()
	api := client.NewHTTPClient(cfg.APIBaseURL, store, srv.Client(), log)
	a := newApp(context.Background(), cfg, log, store, api, model)
	t.Cleanup(a.Close)
	return a, store
}
