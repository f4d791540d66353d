// Package router provides an in-memory backstack that jnav intents drive.
//
// Screens are registered against jnav destinations. Run renders the current
// entry, then applies every intent received from a jnav.Channel and renders
// again. Navigation requests themselves come from a jnav.Navigator, which can
// be called from any goroutine.
//
// # Basic Usage
//
//	var (
//	    home   = jnav.NewDestination("home")
//	    detail = jnav.NewDestination("detail")
//	)
//
//	ch := jnav.NewChannel()
//	nav := jnav.NewNavigator(ch)
//
//	r := router.New()
//
//	r.Register(home, func(e *router.Entry) {
//	    if msg, ok := jnav.Result[string](e.State); ok {
//	        // returned from detail with a result
//	    }
//	})
//
//	r.Register(detail, func(e *router.Entry) {
//	    game, _ := jnav.Params[Game](e.Arguments)
//	    // ...
//	    nav.Back(jnav.BackOptions{Result: "played"})
//	})
//
//	_ = r.Start(home.Route())
//	_ = r.Run(ctx, ch, jnav.NewLifecycle())
//
// # Matching
//
// Pop targets are matched against an entry's destination path, its route
// template ("detail?params={params}") or the concrete route it was opened
// with. Searches start at the top of the stack. An unknown pop target leaves
// the stack untouched.
//
// Run returns when its context ends or when the stack becomes empty.
package router
