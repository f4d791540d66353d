package jnav

import (
	"fmt"
	"sync"

	"github.com/BrandonKowalski/jnav/pkg/jnav/constants"
)

// NavOptions are the push options a Router applies in a single transaction.
type NavOptions struct {
	SingleTop   bool   // Reuse the top entry when it is the same destination
	PopUpTo     string // Pop back to this route before pushing
	Inclusive   bool   // Also pop PopUpTo itself
	PopUpToRoot bool   // Pop every entry before pushing
}

// Router is the backstack a Collect loop drives. Implementations own their
// stack and are only called from the collecting goroutine.
type Router interface {
	// Navigate pushes route after applying opts.
	Navigate(route string, opts NavOptions) error
	// PopBackStackTo pops entries above route, and route itself when
	// inclusive. It reports false and leaves the stack untouched when route
	// is not on the stack.
	PopBackStackTo(route string, inclusive bool) bool
	// PopBackStack pops the current entry.
	PopBackStack() bool
	// CurrentRoute returns the route template of the current entry.
	CurrentRoute() (string, bool)
	// PreviousEntryState returns the state bag of the entry below the
	// current one, or nil.
	PreviousEntryState() *StateBag
	// CurrentArguments returns the arguments of the current entry.
	CurrentArguments() Arguments
}

// Arguments are the named route arguments of a backstack entry.
type Arguments map[string]string

// Get returns the named argument.
func (a Arguments) Get(name string) (string, bool) {
	v, ok := a[name]
	return v, ok
}

// StateBag is per-entry transient state shared between screens.
type StateBag struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewStateBag creates an empty state bag.
func NewStateBag() *StateBag {
	return &StateBag{values: make(map[string]string)}
}

func (b *StateBag) Set(key, value string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.values[key] = value
}

func (b *StateBag) Get(key string) (string, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	v, ok := b.values[key]
	return v, ok
}

func (b *StateBag) Remove(key string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.values, key)
}

func (b *StateBag) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.values)
}

// Apply performs in against r.
func Apply(r Router, in Intent) error {
	switch in.Kind {
	case KindBack:
		if !isAbsent(in.Payload) {
			if state := r.PreviousEntryState(); state != nil {
				state.Set(constants.ResultKey, Encode(in.Payload))
			}
		}
		if in.Route != "" {
			r.PopBackStackTo(in.Route, in.Inclusive)
			return nil
		}
		if _, ok := r.CurrentRoute(); ok {
			r.PopBackStack()
		}
		return nil

	case KindTo:
		return r.Navigate(BuildRoute(in.Route, in.Payload), NavOptions{
			SingleTop: in.SingleTop,
			PopUpTo:   in.PopUpTo,
			Inclusive: in.Inclusive,
		})

	case KindReplace:
		opts := NavOptions{SingleTop: in.SingleTop}
		if current, ok := r.CurrentRoute(); ok {
			opts.PopUpTo = current
			opts.Inclusive = true
		}
		return r.Navigate(BuildRoute(in.Route, in.Payload), opts)

	case KindOffAllTo:
		return r.Navigate(BuildRoute(in.Route, in.Payload), NavOptions{PopUpToRoot: true})

	default:
		return fmt.Errorf("jnav: unsupported intent %s", in.Kind)
	}
}

// Params decodes the params argument of an entry into a T.
func Params[T any](args Arguments) (T, bool) {
	raw, _ := args.Get(constants.ParamsKey)
	return Decode[T](raw)
}

// Result decodes the result a Back request left in state into a T.
func Result[T any](state *StateBag) (T, bool) {
	if state == nil {
		var zero T
		return zero, false
	}
	raw, _ := state.Get(constants.ResultKey)
	return Decode[T](raw)
}
