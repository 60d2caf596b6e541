package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/findash/internal/client/router"
)

func (a *App) getStatus() string {
	st := a.session.State()
	switch {
	case st.Loading():
		return "(...)"
	case st.Identity != nil:
		return fmt.Sprintf("(%s %s)", st.Identity.DisplayName(), a.router.Current())
	default:
		return ""
	}
}

// Root opens the start location, resolves the session and runs the REPL.
func (a *App) Root(ctx context.Context) {
	printlnFn("Bienvenido a findash (escribe 'help' para ver los comandos)")

	a.startup(ctx)
	a.render(ctx)

	runREPL(ctx, a, a.getStatus, bufio.NewScanner(a.reader))
}

// startup handles a deep link given on the command line. A "#token=" link
// logs in with that credential and lands on the default view; anything else
// is taken as the start location and the stored credential is resolved.
func (a *App) startup(ctx context.Context) {
	if a.config.StartFragment != "" {
		frag := router.FragmentOf(a.config.StartFragment)
		if token, ok := router.ExternalToken(frag); ok {
			if err := a.session.LoginWithExternalToken(ctx, token); err != nil {
				a.log.Warn(ctx, "external login failed", "error", err)
			}
			a.router.Navigate(router.DefaultView)
			return
		}
		a.router.SetFragment(frag)
	}

	if err := a.session.Start(ctx); err != nil {
		a.log.Info(ctx, "stored session not restored", "error", err)
	}
}

// Link handles a deep link pasted at runtime, e.g. the return URL of the
// Google sign-in.
func (a *App) Link(ctx context.Context, link string) error {
	frag := router.FragmentOf(link)
	if token, ok := router.ExternalToken(frag); ok {
		err := a.session.LoginWithExternalToken(ctx, token)
		a.router.Navigate(router.DefaultView)
		return err
	}
	a.router.SetFragment(frag)
	return nil
}

// Go navigates to a view given as a fragment ("#/cuentas") or by its path
// alone ("cuentas").
func (a *App) Go(_ context.Context, fragment string) error {
	fragment = fragmentArg(fragment)
	if !router.Known(fragment) {
		printlnFn("Vista desconocida:", fragment, "(se muestra", router.DefaultView.Title()+")")
	}
	a.router.SetFragment(fragment)
	return nil
}

func fragmentArg(s string) string {
	s = strings.TrimSpace(s)
	if s == "" || strings.HasPrefix(s, "#") {
		return s
	}
	return "#/" + strings.TrimPrefix(s, "/")
}

// pollUpdates re-renders when the view or the session changed since the
// last prompt.
func (a *App) pollUpdates(ctx context.Context) {
	changed := false
	select {
	case _, ok := <-a.views:
		changed = ok
	default:
	}
	select {
	case _, ok := <-a.states:
		changed = changed || ok
	default:
	}
	if changed {
		a.render(ctx)
	}
}
