package jnav

import "context"

// Navigator is the call surface for navigation requests. Every method queues
// an Intent on the underlying Channel and returns immediately, so it can be
// used from any goroutine, with or without access to the router.
type Navigator struct {
	ch *Channel
}

// NewNavigator creates a Navigator that sends to ch.
func NewNavigator(ch *Channel) *Navigator {
	return &Navigator{ch: ch}
}

// Channel returns the channel intents are sent to.
func (n *Navigator) Channel() *Channel {
	return n.ch
}

// Back pops the backstack. With opts.Route set it pops back to that route,
// otherwise it pops the current entry. opts.Result is handed to the entry
// being returned to.
func (n *Navigator) Back(opts BackOptions) {
	n.ch.Send(NewBack(opts))
}

// NavigateTo pushes route.
func (n *Navigator) NavigateTo(route string, opts ToOptions) {
	n.ch.Send(NewTo(route, opts))
}

// Replace swaps the current entry for route.
func (n *Navigator) Replace(route string, opts ReplaceOptions) {
	n.ch.Send(NewReplace(route, opts))
}

// ClearAndNavigateTo empties the backstack and pushes route.
func (n *Navigator) ClearAndNavigateTo(route string, params any) {
	n.ch.Send(NewOffAllTo(route, params))
}

type navigatorKey struct{}

// WithNavigator returns a copy of ctx carrying n.
func WithNavigator(ctx context.Context, n *Navigator) context.Context {
	return context.WithValue(ctx, navigatorKey{}, n)
}

// NavigatorFrom returns the Navigator stored in ctx by WithNavigator.
func NavigatorFrom(ctx context.Context) (*Navigator, bool) {
	n, ok := ctx.Value(navigatorKey{}).(*Navigator)
	return n, ok && n != nil
}
