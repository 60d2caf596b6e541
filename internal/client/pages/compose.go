package pages

import (
	"github.com/dmitrijs2005/findash/internal/client/router"
	"github.com/dmitrijs2005/findash/internal/client/services"
)

// Kind is what the shell should put on screen.
type Kind int

const (
	KindLoading Kind = iota
	KindAuth
	KindPage
)

func (k Kind) String() string {
	switch k {
	case KindLoading:
		return "loading"
	case KindAuth:
		return "auth"
	default:
		return "page"
	}
}

// Composition is the outcome of Compose. Page is set only for KindPage.
type Composition struct {
	Kind Kind
	View router.View
	Page Page
}

// Compose decides what to show. It is a pure function of its inputs:
// a loading indicator while the identity is unknown, the auth form when
// nobody is logged in, otherwise the page of the active view.
func Compose(st services.State, view router.View, reg *Registry) Composition {
	switch {
	case st.Loading():
		return Composition{Kind: KindLoading, View: view}
	case !st.Authenticated():
		return Composition{Kind: KindAuth, View: view}
	default:
		p := reg.Page(view)
		return Composition{Kind: KindPage, View: p.View(), Page: p}
	}
}
