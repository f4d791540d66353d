package main

import (
	"fmt"
	"strconv"

	"github.com/BrandonKowalski/jnav/pkg/jnav"
	"github.com/BrandonKowalski/jnav/pkg/jnav/router"
)

var (
	firstDestination  = jnav.NewDestination("first")
	secondDestination = jnav.NewDestination("second")
	thirdDestination  = jnav.NewDestination("third")
	fourthDestination = jnav.NewDestination("fourth")
)

// User is the params payload page three receives.
type User struct {
	Name string `json:"name"`
	Age  *int   `json:"age,omitempty"`
}

func (u User) String() string {
	age := "null"
	if u.Age != nil {
		age = strconv.Itoa(*u.Age)
	}
	return fmt.Sprintf("User(name=%s, age=%s)", u.Name, age)
}

// Button is a selectable action on a page. Input is whatever the user typed
// after the option number.
type Button struct {
	Label  string
	Action func(input string)
}

// View is a rendered page.
type View struct {
	Lines   []string
	Buttons []Button
}

// Pages builds the views of each destination.
type Pages struct {
	nav   *jnav.Navigator
	texts *Texts
}

func (p *Pages) first(entry *router.Entry) View {
	v := View{Lines: []string{p.texts.Get("FirstPageTitle", nil)}}

	if result, ok := jnav.Result[string](entry.State); ok {
		v.Lines = append(v.Lines, p.texts.Get("FirstPageResult", map[string]any{"Result": result}))
	}

	v.Buttons = []Button{
		{Label: p.texts.Get("FirstPageToSecond", nil), Action: func(string) {
			p.nav.NavigateTo(secondDestination.Route(), jnav.ToOptions{})
		}},
		{Label: p.texts.Get("FirstPageToThird", nil), Action: func(string) {
			p.nav.NavigateTo(thirdDestination.Route(), jnav.ToOptions{Params: User{Name: "李二狗"}})
		}},
		{Label: p.texts.Get("FirstPageToFourth", nil), Action: func(string) {
			p.nav.NavigateTo(fourthDestination.Route(), jnav.ToOptions{})
		}},
	}
	return v
}

func (p *Pages) second(*router.Entry) View {
	return View{
		Lines: []string{p.texts.Get("SecondPageTitle", nil)},
		Buttons: []Button{
			{Label: p.texts.Get("SecondPageBackWithResult", nil), Action: func(string) {
				p.nav.Back(jnav.BackOptions{Result: "123"})
			}},
			{Label: p.texts.Get("Back", nil), Action: func(string) {
				p.nav.Back(jnav.BackOptions{})
			}},
		},
	}
}

func (p *Pages) third(entry *router.Entry) View {
	var user any = "null"
	if u, ok := jnav.Params[User](entry.Arguments); ok {
		user = u
	}
	return View{
		Lines: []string{p.texts.Get("ThirdPageTitle", map[string]any{"User": user})},
		Buttons: []Button{
			{Label: p.texts.Get("Back", nil), Action: func(string) {
				p.nav.Back(jnav.BackOptions{})
			}},
		},
	}
}

func (p *Pages) fourth(*router.Entry) View {
	return View{
		Lines: []string{p.texts.Get("FourthPageTitle", nil), p.texts.Get("FourthPageHint", nil)},
		Buttons: []Button{
			{Label: p.texts.Get("FourthPageDone", nil), Action: func(input string) {
				p.nav.Back(jnav.BackOptions{Result: input})
			}},
		},
	}
}
