package router_test

import (
	"context"
	"fmt"

	"github.com/BrandonKowalski/jnav/pkg/jnav"
	"github.com/BrandonKowalski/jnav/pkg/jnav/router"
)

// Domain types
type Game struct {
	ID   int
	Name string
}

var (
	gameList   = jnav.NewDestination("games")
	gameDetail = jnav.NewDestination("game")
)

// Example demonstrates a list -> detail -> back round trip carrying params
// forward and a result back.
func Example() {
	ch := jnav.NewChannel()
	nav := jnav.NewNavigator(ch)

	listVisits := 0

	r := router.New()

	r.Register(gameList, func(e *router.Entry) {
		listVisits++
		if listVisits == 1 {
			fmt.Println("List: selecting game")
			nav.NavigateTo(gameDetail.Route(), jnav.ToOptions{Params: Game{ID: 1, Name: "Portal"}})
			return
		}
		played, _ := jnav.Result[string](e.State)
		fmt.Printf("List: got %q, exiting\n", played)
		nav.Back(jnav.BackOptions{})
	})

	r.Register(gameDetail, func(e *router.Entry) {
		game, _ := jnav.Params[Game](e.Arguments)
		fmt.Printf("Detail: showing %s, going back\n", game.Name)
		nav.Back(jnav.BackOptions{Result: "played"})
	})

	_ = r.Start(gameList.Route())
	_ = r.Run(context.Background(), ch, jnav.NewLifecycle())

	fmt.Println("Stack size:", r.Stack().Len())

	// Output:
	// List: selecting game
	// Detail: showing Portal, going back
	// List: got "played", exiting
	// Stack size: 0
}

// Example_clearAndNavigate demonstrates wiping the history after a flow completes.
func Example_clearAndNavigate() {
	var (
		login   = jnav.NewDestination("login")
		consent = jnav.NewDestination("consent")
		home    = jnav.NewDestination("home")
	)

	ch := jnav.NewChannel()
	nav := jnav.NewNavigator(ch)

	r := router.New().
		Register(login, nil).
		Register(consent, nil).
		Register(home, nil)

	_ = r.Start(login.Route())

	nav.NavigateTo(consent.Route(), jnav.ToOptions{})
	nav.ClearAndNavigateTo(home.Route(), nil)

	ctx, cancel := context.WithCancel(context.Background())
	applied := 0
	sub := ch.Subscribe()
	for applied < 2 {
		in, _ := sub.Receive(ctx)
		_ = jnav.Apply(r, in)
		applied++
	}
	sub.Close()
	cancel()

	fmt.Println(r.Stack().Paths())

	// Output:
	// [home]
}
