package router

import (
	"sync"

	"github.com/dmitrijs2005/findash/internal/notify"
)

// Router holds the current fragment and notifies subscribers when it changes.
// It is safe for concurrent use.
type Router struct {
	mu       sync.Mutex
	fragment string
	closed   bool
	hub      notify.Hub[View]
}

func New(initial string) *Router {
	return &Router{fragment: normalize(initial)}
}

// Current is the active view.
func (r *Router) Current() View {
	r.mu.Lock()
	defer r.mu.Unlock()
	return Parse(r.fragment)
}

// Fragment is the raw fragment, which may not name a known view.
func (r *Router) Fragment() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.fragment
}

// SetFragment replaces the fragment. Subscribers are told the resulting view
// only when the fragment actually changed. It reports whether it did.
func (r *Router) SetFragment(fragment string) bool {
	f := normalize(fragment)

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed || f == r.fragment {
		return false
	}
	r.fragment = f
	// Published under r.mu so subscribers observe changes in order.
	r.hub.Publish(Parse(f))
	return true
}

// Navigate moves to v.
func (r *Router) Navigate(v View) bool {
	return r.SetFragment(string(v))
}

// Subscribe returns a channel carrying the view after each change and a func
// that ends the subscription. Only the newest undelivered view is kept.
func (r *Router) Subscribe() (<-chan View, func()) {
	return r.hub.Subscribe()
}

// Close unsubscribes everyone. Further fragment changes are ignored.
func (r *Router) Close() {
	r.mu.Lock()
	r.closed = true
	r.mu.Unlock()
	r.hub.Close()
}
