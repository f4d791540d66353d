package jnav

import (
	"reflect"
	"strings"

	"github.com/BrandonKowalski/jnav/pkg/jnav/constants"
)

// Argument declares a named route argument.
type Argument struct {
	Name     string
	Nullable bool
}

// Destination is a navigable screen: a logical path, the route template
// routers match against, and the arguments that template declares.
// Destinations are values; build them once when composing the app.
type Destination struct {
	path      string
	route     string
	arguments []Argument
}

// NewDestination creates a destination whose route template is
// "<path>?params={params}" with a single nullable params argument.
func NewDestination(path string) Destination {
	return Destination{
		path:      path,
		route:     path + constants.ParamsQuery + constants.ParamsPlaceholder,
		arguments: []Argument{{Name: constants.ParamsKey, Nullable: true}},
	}
}

// Path returns the logical path, e.g. "detail".
func (d Destination) Path() string {
	return d.path
}

// Route returns the route template, e.g. "detail?params={params}".
func (d Destination) Route() string {
	return d.route
}

// Arguments returns a copy of the declared argument schema.
func (d Destination) Arguments() []Argument {
	out := make([]Argument, len(d.arguments))
	copy(out, d.arguments)
	return out
}

// IsZero reports whether d was never initialised.
func (d Destination) IsZero() bool {
	return d.path == "" && d.route == ""
}

// BuildRoute fills the params placeholder of a route template. Absent params
// remove the placeholder; present params are replaced by their JSON form.
func BuildRoute(template string, params any) string {
	if isAbsent(params) {
		return strings.Replace(template, constants.ParamsPlaceholder, "", 1)
	}
	return strings.Replace(template, constants.ParamsPlaceholder, Encode(params), 1)
}

// SplitRoute separates a route into its path and raw params text.
// "detail?params={"a":1}" yields ("detail", `{"a":1}`).
// Params text is not URL-decoded; it is exactly what BuildRoute wrote.
func SplitRoute(route string) (path string, params string) {
	path, rest, found := strings.Cut(route, "?")
	if !found {
		return route, ""
	}
	params, ok := strings.CutPrefix(rest, constants.ParamsKey+"=")
	if !ok {
		return path, ""
	}
	return path, params
}

func isAbsent(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}
