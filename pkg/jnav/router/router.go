package router

import (
	"context"
	"fmt"
	"sort"

	"github.com/BrandonKowalski/jnav/pkg/jnav"
	"github.com/BrandonKowalski/jnav/pkg/jnav/constants"
)

// ScreenFunc renders the current entry. It is called on the router's
// goroutine each time the current entry changes.
type ScreenFunc func(entry *Entry)

// Router is an in-memory backstack implementing jnav.Router.
// Destinations are registered with their screen functions, and Run
// drives the stack from a jnav.Channel.
type Router struct {
	destinations map[string]jnav.Destination
	screens      map[string]ScreenFunc
	stack        *Stack
	nextID       int
}

var _ jnav.Router = (*Router)(nil)

// New creates a new Router.
func New() *Router {
	return &Router{
		destinations: make(map[string]jnav.Destination),
		screens:      make(map[string]ScreenFunc),
		stack:        NewStack(),
	}
}

// Register adds a destination to the router.
// fn is called whenever an entry of this destination becomes current; it may be nil.
func (r *Router) Register(dest jnav.Destination, fn ScreenFunc) *Router {
	r.destinations[dest.Path()] = dest
	if fn != nil {
		r.screens[dest.Path()] = fn
	}
	return r
}

// Destinations returns the registered destinations sorted by path.
func (r *Router) Destinations() []jnav.Destination {
	out := make([]jnav.Destination, 0, len(r.destinations))
	for _, d := range r.destinations {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Path() < out[j].Path() })
	return out
}

// Start resets the stack to a single entry for route.
func (r *Router) Start(route string) error {
	entry, err := r.newEntry(jnav.BuildRoute(route, nil))
	if err != nil {
		return err
	}
	r.stack.Clear()
	r.stack.Push(entry)
	return nil
}

// Run renders the current entry, then applies intents from ch until ctx
// ends or the stack empties, rendering again after each one.
func (r *Router) Run(ctx context.Context, ch *jnav.Channel, lc *jnav.Lifecycle) error {
	if r.stack.IsEmpty() {
		return fmt.Errorf("router: no start destination: %w", jnav.ErrEmptyStack)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	r.render()

	return jnav.Collect(ctx, ch, r, lc, jnav.AfterDispatch(func(jnav.Intent) {
		if r.stack.IsEmpty() {
			cancel()
			return
		}
		r.render()
	}))
}

// Stack returns the backstack.
func (r *Router) Stack() *Stack {
	return r.stack
}

// Current returns the current entry, or nil.
func (r *Router) Current() *Entry {
	return r.stack.Peek()
}

// Navigate implements jnav.Router.
func (r *Router) Navigate(route string, opts jnav.NavOptions) error {
	entry, err := r.newEntry(route)
	if err != nil {
		return err
	}

	switch {
	case opts.PopUpToRoot:
		r.stack.Clear()
	case opts.PopUpTo != "":
		r.PopBackStackTo(opts.PopUpTo, opts.Inclusive)
	}

	if top := r.stack.Peek(); opts.SingleTop && top != nil && top.Destination.Path() == entry.Destination.Path() {
		top.Route = entry.Route
		top.Arguments = entry.Arguments
		return nil
	}

	r.stack.Push(entry)
	return nil
}

// PopBackStackTo implements jnav.Router.
func (r *Router) PopBackStackTo(route string, inclusive bool) bool {
	i := r.stack.IndexOf(route)
	if i < 0 {
		return false
	}
	if inclusive {
		r.stack.Truncate(i)
	} else {
		r.stack.Truncate(i + 1)
	}
	return true
}

// PopBackStack implements jnav.Router.
func (r *Router) PopBackStack() bool {
	return r.stack.Pop() != nil
}

// CurrentRoute implements jnav.Router.
func (r *Router) CurrentRoute() (string, bool) {
	top := r.stack.Peek()
	if top == nil {
		return "", false
	}
	return top.Destination.Route(), true
}

// PreviousEntryState implements jnav.Router.
func (r *Router) PreviousEntryState() *jnav.StateBag {
	prev := r.stack.Previous()
	if prev == nil {
		return nil
	}
	return prev.State
}

// CurrentArguments implements jnav.Router.
func (r *Router) CurrentArguments() jnav.Arguments {
	top := r.stack.Peek()
	if top == nil {
		return jnav.Arguments{}
	}
	return top.Arguments
}

func (r *Router) newEntry(route string) (*Entry, error) {
	path, params := jnav.SplitRoute(route)
	dest, ok := r.destinations[path]
	if !ok {
		return nil, fmt.Errorf("router: %q: %w", route, jnav.ErrUnknownRoute)
	}

	args := jnav.Arguments{}
	if params != "" {
		args[constants.ParamsKey] = params
	}

	r.nextID++
	return &Entry{
		ID:          r.nextID,
		Destination: dest,
		Route:       route,
		Arguments:   args,
		State:       jnav.NewStateBag(),
	}, nil
}

func (r *Router) render() {
	top := r.stack.Peek()
	if top == nil {
		return
	}
	if fn, ok := r.screens[top.Destination.Path()]; ok {
		fn(top)
	}
}
