package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/dmitrijs2005/findash/internal/client/client"
	"github.com/dmitrijs2005/findash/internal/client/pages"
)

var errNotEditable = errors.New("view is not editable")

// editor returns the active page if records can be edited there.
func (a *App) editor() (pages.Editor, error) {
	comp := pages.Compose(a.session.State(), a.router.Current(), a.registry)
	if comp.Kind != pages.KindPage {
		printlnFn("Inicia sesión primero.")
		return nil, client.ErrUnauthorized
	}
	e, ok := comp.Page.(pages.Editor)
	if !ok {
		printlnFn("Esta vista no admite cambios. Usa 'go' para elegir una lista.")
		return nil, errNotEditable
	}
	return e, nil
}

// readForm asks for every field of the form. With current values, an empty
// answer keeps the current value.
func (a *App) readForm(fields []pages.Field, current map[string]string) (map[string]string, error) {
	values := make(map[string]string, len(fields))
	for _, f := range fields {
		prompt := f.Label
		if f.Optional {
			prompt += " (opcional)"
		}
		cur, hasCur := current[f.Name]
		if hasCur && cur != "" {
			prompt += fmt.Sprintf(" [%s]", cur)
		}

		v, err := getSimpleText(a.reader, prompt, os.Stdout)
		if err != nil {
			return nil, err
		}
		if v == "" && hasCur {
			v = cur
		}
		values[f.Name] = v
	}
	return values, nil
}

// mutated shows the outcome of a create, update or delete. Failures stay on
// the current page in its error region.
func (a *App) mutated(doc *pages.Document, err error) error {
	if err != nil {
		a.log.Info(context.Background(), "change rejected", "view", a.router.Current(), "error", err)
		cur := a.screen.Current()
		if cur == nil || cur.View != a.router.Current() {
			printlnFn(client.Message(err))
			return err
		}
		a.show(cur.WithError(client.Message(err)))
		return err
	}
	a.show(doc)
	return nil
}

// Add creates a record in the active list.
func (a *App) Add(ctx context.Context) error {
	e, err := a.editor()
	if err != nil {
		return err
	}
	values, err := a.readForm(e.Form(), nil)
	if err != nil {
		return err
	}
	return a.mutated(e.Create(ctx, values))
}

// Edit changes record id of the active list, prompting with its values.
func (a *App) Edit(ctx context.Context, id int64) error {
	e, err := a.editor()
	if err != nil {
		return err
	}
	current, err := e.Values(ctx, id)
	if err != nil {
		printlnFn(fmt.Sprintf("No se encontró el registro %d.", id))
		return err
	}
	values, err := a.readForm(e.Form(), current)
	if err != nil {
		return err
	}
	return a.mutated(e.Update(ctx, id, values))
}

// Delete removes record id of the active list after confirmation.
func (a *App) Delete(ctx context.Context, id int64) error {
	e, err := a.editor()
	if err != nil {
		return err
	}
	answer, err := getSimpleText(a.reader, fmt.Sprintf("¿Eliminar el registro %d? (s/N)", id), os.Stdout)
	if err != nil {
		return err
	}
	if !strings.EqualFold(answer, "s") && !strings.EqualFold(answer, "si") && !strings.EqualFold(answer, "sí") {
		printlnFn("Cancelado.")
		return nil
	}
	return a.mutated(e.Delete(ctx, id))
}
