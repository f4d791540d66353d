package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"

	"go.uber.org/atomic"

	"github.com/BrandonKowalski/jnav/pkg/jnav"
	"github.com/BrandonKowalski/jnav/pkg/jnav/router"
)

// App is the terminal host for the demo pages. Pages render on the router
// goroutine; input is read on its own goroutine and only ever talks to the
// Navigator.
type App struct {
	ch     *jnav.Channel
	nav    *jnav.Navigator
	texts  *Texts
	router *router.Router

	current atomic.Pointer[View]

	outMu sync.Mutex
	out   io.Writer
}

// NewApp wires the demo pages to a router fed by ch.
func NewApp(ch *jnav.Channel, texts *Texts, out io.Writer) *App {
	a := &App{
		ch:    ch,
		nav:   jnav.NewNavigator(ch),
		texts: texts,
		out:   out,
	}

	pages := &Pages{nav: a.nav, texts: texts}
	a.router = router.New().
		Register(firstDestination, a.show(pages.first)).
		Register(secondDestination, a.show(pages.second)).
		Register(thirdDestination, a.show(pages.third)).
		Register(fourthDestination, a.show(pages.fourth))

	return a
}

// Destinations returns every page destination.
func (a *App) Destinations() []jnav.Destination {
	return a.router.Destinations()
}

// Run starts at the start page and serves input until the backstack
// empties, the input ends or ctx is cancelled.
func (a *App) Run(ctx context.Context, start string, in io.Reader) error {
	if err := a.router.Start(start); err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lc := jnav.NewLifecycle()
	go a.readInput(in, lc, cancel)

	return a.router.Run(jnav.WithNavigator(ctx, a.nav), a.ch, lc)
}

func (a *App) show(page func(*router.Entry) View) router.ScreenFunc {
	return func(entry *router.Entry) {
		v := page(entry)
		a.current.Store(&v)

		var b strings.Builder
		b.WriteString("\n")
		for _, line := range v.Lines {
			b.WriteString(line + "\n")
		}
		for i, btn := range v.Buttons {
			fmt.Fprintf(&b, "  [%d] %s\n", i+1, btn.Label)
		}
		b.WriteString(a.texts.Get("Prompt", nil) + "\n")
		a.print(b.String())
	}
}

func (a *App) print(s string) {
	a.outMu.Lock()
	defer a.outMu.Unlock()
	io.WriteString(a.out, s)
}

func (a *App) readInput(in io.Reader, lc *jnav.Lifecycle, stop context.CancelFunc) {
	defer stop()
	defer lc.Finish()

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "q" {
			return
		}
		a.choose(line)
	}
}

// choose presses the button named by the leading option number of line.
func (a *App) choose(line string) {
	choice, rest, _ := strings.Cut(line, " ")

	v := a.current.Load()
	n, err := strconv.Atoi(choice)
	if v == nil || err != nil || n < 1 || n > len(v.Buttons) {
		a.print(a.texts.Get("InvalidChoice", map[string]any{"Choice": choice}) + "\n")
		return
	}

	jnav.GetLogger().Debug("button pressed", "label", v.Buttons[n-1].Label)
	v.Buttons[n-1].Action(strings.TrimSpace(rest))
}
