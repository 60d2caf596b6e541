package pages

import (
	"context"
	"fmt"
	"strconv"

	"github.com/dmitrijs2005/findash/internal/client/client"
	"github.com/dmitrijs2005/findash/internal/client/router"
	"github.com/dmitrijs2005/findash/internal/common"
)

// column is one table column of a CRUD page.
type column[T any] struct {
	header string
	cell   func(T) string
}

// crudPage lists a backend collection as a table and edits it through a form.
type crudPage[T any, P any] struct {
	view     router.View
	subtitle string
	tableID  string
	coll     client.Collection[T, P]
	id       func(T) int64
	columns  []column[T]
	fields   []Field
	parse    func(*formReader) P
	values   func(T) map[string]string
}

var _ Editor = (*crudPage[struct{}, struct{}])(nil)

func (p *crudPage[T, P]) View() router.View { return p.view }

func (p *crudPage[T, P]) Form() []Field { return p.fields }

func (p *crudPage[T, P]) Load(ctx context.Context) *Document {
	doc := &Document{View: p.view, Title: p.view.Title(), Subtitle: p.subtitle}

	items, err := p.coll.List(ctx)
	if err != nil {
		doc.Error = client.Message(err)
		return doc
	}

	headers := make([]string, 0, len(p.columns)+1)
	headers = append(headers, "ID")
	for _, c := range p.columns {
		headers = append(headers, c.header)
	}

	rows := make([][]string, 0, len(items))
	for _, it := range items {
		row := make([]string, 0, len(headers))
		row = append(row, strconv.FormatInt(p.id(it), 10))
		for _, c := range p.columns {
			row = append(row, c.cell(it))
		}
		rows = append(rows, row)
	}

	doc.Blocks = append(doc.Blocks, Block{
		Kind:    BlockTable,
		ID:      p.tableID,
		Label:   p.view.Title(),
		Headers: headers,
		Rows:    rows,
	})
	return doc
}

func (p *crudPage[T, P]) Values(ctx context.Context, id int64) (map[string]string, error) {
	items, err := p.coll.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, it := range items {
		if p.id(it) == id {
			return p.values(it), nil
		}
	}
	return nil, fmt.Errorf("record %d: %w", id, common.ErrorNotFound)
}

func (p *crudPage[T, P]) payload(values map[string]string) (P, error) {
	r := newFormReader(p.fields, values)
	payload := p.parse(r)
	return payload, r.err()
}

func (p *crudPage[T, P]) Create(ctx context.Context, values map[string]string) (*Document, error) {
	payload, err := p.payload(values)
	if err != nil {
		return nil, err
	}
	created, err := p.coll.Create(ctx, payload)
	if err != nil {
		return nil, err
	}
	return p.Load(ctx).WithNotice(created.Message), nil
}

func (p *crudPage[T, P]) Update(ctx context.Context, id int64, values map[string]string) (*Document, error) {
	payload, err := p.payload(values)
	if err != nil {
		return nil, err
	}
	ack, err := p.coll.Update(ctx, id, payload)
	if err != nil {
		return nil, err
	}
	return p.Load(ctx).WithNotice(ack.Message), nil
}

func (p *crudPage[T, P]) Delete(ctx context.Context, id int64) (*Document, error) {
	ack, err := p.coll.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	return p.Load(ctx).WithNotice(ack.Message), nil
}
