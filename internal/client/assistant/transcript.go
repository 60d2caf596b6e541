package assistant

import (
	"sync"

	"github.com/dmitrijs2005/findash/internal/notify"
	"github.com/google/uuid"
)

type Sender int

const (
	SenderUser Sender = iota
	SenderAssistant
)

func (s Sender) String() string {
	if s == SenderUser {
		return "user"
	}
	return "model"
}

// Greeting is the first assistant turn of every transcript.
const Greeting = "¡Hola! Soy Fin, tu asistente financiero. Revisa tu resumen y pregúntame lo que necesites."

// Turn is one message of the conversation. Error marks assistant turns that
// report a failure and should be rendered apart.
type Turn struct {
	ID     string
	Sender Sender
	Text   string
	Error  bool
}

// Snapshot is a copy of the transcript at one point in time.
type Snapshot struct {
	Turns []Turn
	Busy  bool
}

// Last returns the most recent turn.
func (s Snapshot) Last() (Turn, bool) {
	if len(s.Turns) == 0 {
		return Turn{}, false
	}
	return s.Turns[len(s.Turns)-1], true
}

// Transcript is the ordered list of turns plus the in-flight flag.
// Every change is published to subscribers as a Snapshot.
type Transcript struct {
	mu    sync.Mutex
	turns []Turn
	busy  bool
	hub   notify.Hub[Snapshot]
}

func NewTranscript() *Transcript {
	return &Transcript{
		turns: []Turn{{ID: uuid.NewString(), Sender: SenderAssistant, Text: Greeting}},
	}
}

func (t *Transcript) snapshotLocked() Snapshot {
	return Snapshot{Turns: append([]Turn(nil), t.turns...), Busy: t.busy}
}

func (t *Transcript) publishLocked() {
	t.hub.Publish(t.snapshotLocked())
}

func (t *Transcript) Snapshot() Snapshot {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.snapshotLocked()
}

func (t *Transcript) Busy() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.busy
}

func (t *Transcript) Subscribe() (<-chan Snapshot, func()) {
	return t.hub.Subscribe()
}

func (t *Transcript) Close() {
	t.hub.Close()
}

// begin appends the user's question and an empty assistant placeholder and
// marks the transcript busy. It fails when a request is already in flight.
func (t *Transcript) begin(question string) (string, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.busy {
		return "", false
	}
	id := uuid.NewString()
	t.turns = append(t.turns,
		Turn{ID: uuid.NewString(), Sender: SenderUser, Text: question},
		Turn{ID: id, Sender: SenderAssistant},
	)
	t.busy = true
	t.publishLocked()
	return id, true
}

// replace overwrites the text of turn id.
func (t *Transcript) replace(id, text string, isErr bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	for i := range t.turns {
		if t.turns[i].ID == id {
			t.turns[i].Text = text
			t.turns[i].Error = isErr
			t.publishLocked()
			return
		}
	}
}

func (t *Transcript) end() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.busy = false
	t.publishLocked()
}

// appendError adds a standalone error-flagged assistant turn.
func (t *Transcript) appendError(text string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.turns = append(t.turns, Turn{ID: uuid.NewString(), Sender: SenderAssistant, Text: text, Error: true})
	t.publishLocked()
}
