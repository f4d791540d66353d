package router

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BrandonKowalski/jnav/pkg/jnav"
	"github.com/BrandonKowalski/jnav/pkg/jnav/constants"
)

type user struct {
	Name string `json:"name"`
	Age  int    `json:"age"`
}

var (
	destA    = jnav.NewDestination("A")
	destB    = jnav.NewDestination("B")
	destC    = jnav.NewDestination("C")
	destHome = jnav.NewDestination("Home")
)

func newTestRouter(t *testing.T, start ...jnav.Destination) *Router {
	t.Helper()
	r := New().
		Register(destA, nil).
		Register(destB, nil).
		Register(destC, nil).
		Register(destHome, nil)
	for i, d := range start {
		if i == 0 {
			require.NoError(t, r.Start(d.Route()))
			continue
		}
		require.NoError(t, r.Navigate(jnav.BuildRoute(d.Route(), nil), jnav.NavOptions{}))
	}
	return r
}

func TestStartUnknownRoute(t *testing.T) {
	r := New()
	err := r.Start("missing")
	assert.ErrorIs(t, err, jnav.ErrUnknownRoute)
	assert.True(t, r.Stack().IsEmpty())
}

func TestApplyToWithParams(t *testing.T) {
	r := newTestRouter(t, destA)

	require.NoError(t, jnav.Apply(r, jnav.NewTo(destB.Route(), jnav.ToOptions{Params: user{Name: "Ann", Age: 30}})))

	top := r.Current()
	require.NotNil(t, top)
	assert.Equal(t, `B?params={"name":"Ann","age":30}`, top.Route)

	got, ok := jnav.Params[user](r.CurrentArguments())
	require.True(t, ok)
	assert.Equal(t, user{Name: "Ann", Age: 30}, got)
}

func TestApplyToWithoutParamsHasNoArgument(t *testing.T) {
	r := newTestRouter(t, destA)

	require.NoError(t, jnav.Apply(r, jnav.NewTo(destB.Route(), jnav.ToOptions{})))

	assert.Equal(t, "B?params=", r.Current().Route)
	_, ok := r.CurrentArguments().Get(constants.ParamsKey)
	assert.False(t, ok)
	_, decoded := jnav.Params[user](r.CurrentArguments())
	assert.False(t, decoded)
}

func TestApplyToUnknownRoute(t *testing.T) {
	r := newTestRouter(t, destA)

	err := jnav.Apply(r, jnav.NewTo("nowhere?params={params}", jnav.ToOptions{}))
	assert.ErrorIs(t, err, jnav.ErrUnknownRoute)
	assert.Equal(t, []string{"A"}, r.Stack().Paths())
}

func TestApplyToSingleTop(t *testing.T) {
	r := newTestRouter(t, destA, destB)

	require.NoError(t, jnav.Apply(r, jnav.NewTo(destB.Route(), jnav.ToOptions{SingleTop: true, Params: user{Name: "Bo"}})))
	assert.Equal(t, []string{"A", "B"}, r.Stack().Paths())
	got, ok := jnav.Params[user](r.CurrentArguments())
	require.True(t, ok)
	assert.Equal(t, "Bo", got.Name)

	require.NoError(t, jnav.Apply(r, jnav.NewTo(destB.Route(), jnav.ToOptions{})))
	assert.Equal(t, []string{"A", "B", "B"}, r.Stack().Paths())
}

func TestApplyToPopUpTo(t *testing.T) {
	r := newTestRouter(t, destA, destB, destC)

	require.NoError(t, jnav.Apply(r, jnav.NewTo(destHome.Route(), jnav.ToOptions{PopUpTo: destA.Route()})))
	assert.Equal(t, []string{"A", "Home"}, r.Stack().Paths())

	r = newTestRouter(t, destA, destB, destC)
	require.NoError(t, jnav.Apply(r, jnav.NewTo(destHome.Route(), jnav.ToOptions{PopUpTo: destB.Route(), Inclusive: true})))
	assert.Equal(t, []string{"A", "Home"}, r.Stack().Paths())
}

func TestApplyToPopUpToAbsentStillPushes(t *testing.T) {
	r := newTestRouter(t, destA, destB)

	require.NoError(t, jnav.Apply(r, jnav.NewTo(destC.Route(), jnav.ToOptions{PopUpTo: destHome.Route(), Inclusive: true})))
	assert.Equal(t, []string{"A", "B", "C"}, r.Stack().Paths())
}

func TestApplyReplace(t *testing.T) {
	r := newTestRouter(t, destA, destB)

	require.NoError(t, jnav.Apply(r, jnav.NewReplace(destC.Route(), jnav.ReplaceOptions{})))
	assert.Equal(t, []string{"A", "C"}, r.Stack().Paths())
}

func TestApplyReplaceOnlyPopsCurrentInstance(t *testing.T) {
	r := newTestRouter(t, destB, destA, destB)

	require.NoError(t, jnav.Apply(r, jnav.NewReplace(destC.Route(), jnav.ReplaceOptions{})))
	assert.Equal(t, []string{"B", "A", "C"}, r.Stack().Paths())
}

func TestApplyOffAllTo(t *testing.T) {
	r := newTestRouter(t, destA, destB, destC)

	require.NoError(t, jnav.Apply(r, jnav.NewOffAllTo(destHome.Route(), nil)))
	assert.Equal(t, []string{"Home"}, r.Stack().Paths())
}

func TestApplyBackWithResult(t *testing.T) {
	r := newTestRouter(t, destA, destB)
	prev := r.Stack().Previous()

	require.NoError(t, jnav.Apply(r, jnav.NewBack(jnav.BackOptions{Result: "done"})))

	assert.Equal(t, []string{"A"}, r.Stack().Paths())
	raw, ok := prev.State.Get(constants.ResultKey)
	require.True(t, ok)
	assert.Equal(t, `"done"`, raw)

	got, ok := jnav.Result[string](r.Current().State)
	require.True(t, ok)
	assert.Equal(t, "done", got)
}

func TestApplyBackOnEmptyStack(t *testing.T) {
	r := newTestRouter(t)

	assert.NotPanics(t, func() {
		require.NoError(t, jnav.Apply(r, jnav.NewBack(jnav.BackOptions{Result: "ignored"})))
	})
	assert.True(t, r.Stack().IsEmpty())
}

func TestApplyBackToRoute(t *testing.T) {
	r := newTestRouter(t, destA, destB, destC, destHome)

	require.NoError(t, jnav.Apply(r, jnav.NewBack(jnav.BackOptions{Route: destB.Route()})))
	assert.Equal(t, []string{"A", "B"}, r.Stack().Paths())

	r = newTestRouter(t, destA, destB, destC, destHome)
	require.NoError(t, jnav.Apply(r, jnav.NewBack(jnav.BackOptions{Route: "B", Inclusive: true})))
	assert.Equal(t, []string{"A"}, r.Stack().Paths())
}

func TestApplyBackToAbsentRouteIsNoop(t *testing.T) {
	r := newTestRouter(t, destA, destB)

	require.NoError(t, jnav.Apply(r, jnav.NewBack(jnav.BackOptions{Route: destHome.Route(), Inclusive: true})))
	assert.Equal(t, []string{"A", "B"}, r.Stack().Paths())
}

func TestRunWithoutStart(t *testing.T) {
	r := New().Register(destA, nil)
	err := r.Run(context.Background(), jnav.NewChannel(), nil)
	assert.ErrorIs(t, err, jnav.ErrEmptyStack)
}

func TestRunRendersAndExitsWhenStackEmpties(t *testing.T) {
	ch := jnav.NewChannel()
	nav := jnav.NewNavigator(ch)

	var rendered []string
	r := New().
		Register(destA, func(e *Entry) { rendered = append(rendered, e.Destination.Path()) }).
		Register(destB, func(e *Entry) { rendered = append(rendered, e.Destination.Path()) })
	require.NoError(t, r.Start(destA.Route()))

	nav.NavigateTo(destB.Route(), jnav.ToOptions{})
	nav.Back(jnav.BackOptions{})
	nav.Back(jnav.BackOptions{})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	require.NoError(t, r.Run(ctx, ch, jnav.NewLifecycle()))
	assert.Equal(t, []string{"A", "B", "A"}, rendered)
	assert.True(t, r.Stack().IsEmpty())
	assert.Equal(t, int64(3), ch.Stats().Delivered)
}

func TestRunDropsIntentsWhileFinishing(t *testing.T) {
	ch := jnav.NewChannel()
	nav := jnav.NewNavigator(ch)
	lc := jnav.NewLifecycle()

	r := New().Register(destA, nil).Register(destB, nil)
	require.NoError(t, r.Start(destA.Route()))

	lc.Finish()
	nav.NavigateTo(destB.Route(), jnav.ToOptions{})

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()

	require.NoError(t, r.Run(ctx, ch, lc))
	assert.Equal(t, []string{"A"}, r.Stack().Paths())
}

func TestStackTruncateAndClear(t *testing.T) {
	s := NewStack()
	for i, d := range []jnav.Destination{destA, destB, destC} {
		s.Push(&Entry{ID: i, Destination: d, Route: d.Route()})
	}

	assert.Equal(t, 2, s.IndexOf("C"))
	assert.Equal(t, -1, s.IndexOf("Home"))
	assert.Equal(t, destB, s.Previous().Destination)

	s.Truncate(5)
	assert.Equal(t, 3, s.Len())

	s.Truncate(1)
	assert.Equal(t, []string{"A"}, s.Paths())
	assert.Nil(t, s.Previous())

	s.Clear()
	assert.True(t, s.IsEmpty())
	assert.Nil(t, s.Pop())
	assert.Nil(t, s.Peek())
}
