package pages

import (
	"sync"

	"github.com/dmitrijs2005/findash/internal/client/router"
	"github.com/dmitrijs2005/findash/internal/notify"
	"github.com/shopspring/decimal"
)

type BlockKind int

const (
	BlockField BlockKind = iota
	BlockTable
	BlockChart
)

// Slice is one labelled value of a chart.
type Slice struct {
	Label string
	Value decimal.Decimal
}

// Block is one addressable element of a rendered page.
type Block struct {
	Kind  BlockKind
	ID    string
	Label string

	// BlockField
	Value string

	// BlockTable
	Headers []string
	Rows    [][]string

	// BlockChart
	Slices []Slice
}

// Document is a rendered page: what is on screen, addressable by block id.
// A shown Document is never mutated; use the With* helpers to derive one.
type Document struct {
	View     router.View
	Title    string
	Subtitle string
	Blocks   []Block
	// Error is the page's error region.
	Error string
	// Notice is a transient success message.
	Notice string
}

// Field returns the value of the field block id.
func (d *Document) Field(id string) (string, bool) {
	if d == nil {
		return "", false
	}
	for _, b := range d.Blocks {
		if b.Kind == BlockField && b.ID == id {
			return b.Value, true
		}
	}
	return "", false
}

// Table returns the table block id.
func (d *Document) Table(id string) (Block, bool) {
	if d == nil {
		return Block{}, false
	}
	for _, b := range d.Blocks {
		if b.Kind == BlockTable && b.ID == id {
			return b, true
		}
	}
	return Block{}, false
}

func (d *Document) clone() *Document {
	c := *d
	c.Blocks = append([]Block(nil), d.Blocks...)
	return &c
}

// WithError returns a copy of d showing msg in its error region.
func (d *Document) WithError(msg string) *Document {
	c := d.clone()
	c.Error = msg
	c.Notice = ""
	return c
}

// WithNotice returns a copy of d showing msg as a success notice.
func (d *Document) WithNotice(msg string) *Document {
	c := d.clone()
	c.Notice = msg
	return c
}

// Screen holds the document currently on display.
type Screen struct {
	mu  sync.RWMutex
	doc *Document
	hub notify.Hub[*Document]
}

func NewScreen() *Screen {
	return &Screen{}
}

// Show puts doc on display and notifies subscribers.
func (s *Screen) Show(doc *Document) {
	s.mu.Lock()
	s.doc = doc
	s.hub.Publish(doc)
	s.mu.Unlock()
}

// Current is the document on display, nil before the first Show.
func (s *Screen) Current() *Document {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.doc
}

func (s *Screen) Subscribe() (<-chan *Document, func()) {
	return s.hub.Subscribe()
}
