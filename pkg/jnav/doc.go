// Package jnav queues navigation requests and replays them against a
// backstack router.
//
// Navigation requests can be made from anywhere: goroutines, timers and
// callbacks that have no access to the router. They are queued on a Channel
// and executed later by Collect, which runs inside the scope that owns the
// router and translates each Intent into backstack operations.
//
// # Basic Usage
//
//	ch := jnav.NewChannel()
//	nav := jnav.NewNavigator(ch)
//
//	home := jnav.NewDestination("home")
//	detail := jnav.NewDestination("detail")
//
//	// From any goroutine
//	nav.NavigateTo(detail.Route(), jnav.ToOptions{Params: User{Name: "Ann", Age: 30}})
//	nav.Back(jnav.BackOptions{Result: "done"})
//
//	// Inside the scope that owns the router
//	lc := jnav.NewLifecycle()
//	go jnav.Collect(ctx, ch, r, lc)
//
// # Parameters
//
// Params and results travel as JSON. Params are embedded in the route string
// ("detail?params={...}") and read back with Params; a result passed to Back
// is stored on the previous entry's StateBag and read back with Result.
// Encoding and decoding failures are logged and degrade to an empty payload.
package jnav
