package jnav

import "fmt"

// Kind identifies which navigation request an Intent carries.
type Kind int

const (
	KindBack     Kind = iota // Pop the backstack, optionally handing a result to the previous entry
	KindTo                   // Push a destination
	KindReplace              // Swap the current entry for a destination
	KindOffAllTo             // Clear the backstack and push a destination
)

func (k Kind) String() string {
	switch k {
	case KindBack:
		return "Back"
	case KindTo:
		return "To"
	case KindReplace:
		return "Replace"
	case KindOffAllTo:
		return "OffAllTo"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Intent is a queued navigation request. Kind selects which fields apply:
//
//	Back:     Route (optional pop target), Inclusive, Payload (result)
//	To:       Route, PopUpTo, Inclusive, SingleTop, Payload (params)
//	Replace:  Route, SingleTop, Payload (params)
//	OffAllTo: Route, Payload (params)
//
// An empty string means the route is absent; a nil Payload means no payload.
type Intent struct {
	Kind      Kind
	Route     string
	PopUpTo   string
	Inclusive bool
	SingleTop bool
	Payload   any
}

func (in Intent) String() string {
	switch in.Kind {
	case KindBack:
		return fmt.Sprintf("Back(route=%q, inclusive=%t)", in.Route, in.Inclusive)
	case KindTo:
		return fmt.Sprintf("To(route=%q, popUpTo=%q, inclusive=%t, singleTop=%t)", in.Route, in.PopUpTo, in.Inclusive, in.SingleTop)
	case KindReplace:
		return fmt.Sprintf("Replace(route=%q, singleTop=%t)", in.Route, in.SingleTop)
	case KindOffAllTo:
		return fmt.Sprintf("OffAllTo(route=%q)", in.Route)
	default:
		return in.Kind.String()
	}
}

// BackOptions configures a Back request.
//
//	[4 3 2 1] Back{Route: "2", Inclusive: true}  -> [4 3]
//	[4 3 2 1] Back{Route: "2", Inclusive: false} -> [4 3 2]
type BackOptions struct {
	Route     string // Pop back to this route; empty pops the current entry only
	Inclusive bool   // Also pop Route itself
	Result    any    // Stored on the previous entry under "result"
}

// ToOptions configures a To request.
type ToOptions struct {
	PopUpTo   string // Pop back to this route before pushing
	Inclusive bool   // Also pop PopUpTo itself
	SingleTop bool   // Reuse the top entry when it is the same destination
	Params    any    // Encoded into the route's params placeholder
}

// ReplaceOptions configures a Replace request.
type ReplaceOptions struct {
	SingleTop bool
	Params    any
}

// NewBack builds a Back intent.
func NewBack(opts BackOptions) Intent {
	return Intent{Kind: KindBack, Route: opts.Route, Inclusive: opts.Inclusive, Payload: opts.Result}
}

// NewTo builds a To intent.
func NewTo(route string, opts ToOptions) Intent {
	return Intent{
		Kind:      KindTo,
		Route:     route,
		PopUpTo:   opts.PopUpTo,
		Inclusive: opts.Inclusive,
		SingleTop: opts.SingleTop,
		Payload:   opts.Params,
	}
}

// NewReplace builds a Replace intent.
func NewReplace(route string, opts ReplaceOptions) Intent {
	return Intent{Kind: KindReplace, Route: route, SingleTop: opts.SingleTop, Payload: opts.Params}
}

// NewOffAllTo builds an OffAllTo intent.
func NewOffAllTo(route string, params any) Intent {
	return Intent{Kind: KindOffAllTo, Route: route, Payload: params}
}
