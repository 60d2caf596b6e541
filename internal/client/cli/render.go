package cli

import (
	"context"
	"os"

	"github.com/dmitrijs2005/findash/internal/client/pages"
	"github.com/dmitrijs2005/findash/internal/client/ui"
	"golang.org/x/term"
)

// terminalWidth is the width tables are fitted to; 0 leaves them unbounded.
var terminalWidth = func() int {
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return 0
	}
	return w
}

// drain discards notifications already reflected by the next render.
func (a *App) drain() {
	select {
	case <-a.views:
	default:
	}
	select {
	case <-a.states:
	default:
	}
}

// render shows whatever the composition asks for. Pages are loaded afresh.
func (a *App) render(ctx context.Context) {
	a.drain()

	st := a.session.State()
	comp := pages.Compose(st, a.router.Current(), a.registry)

	switch comp.Kind {
	case pages.KindLoading:
		printlnFn(ui.RenderLoading(a.theme))
	case pages.KindAuth:
		printlnFn(ui.RenderAuth(st, a.googleLoginURL(), a.theme))
	default:
		doc := comp.Page.Load(ctx)
		a.show(doc)
	}
}

// show puts doc on screen and prints it under the navigation bar.
func (a *App) show(doc *pages.Document) {
	a.screen.Show(doc)
	printlnFn(ui.RenderNav(doc.View, a.session.State(), a.theme))
	printlnFn()
	printlnFn(ui.RenderDocument(doc, terminalWidth(), a.theme))
}

// Show reloads the active page.
func (a *App) Show(ctx context.Context) error {
	a.render(ctx)
	return nil
}
