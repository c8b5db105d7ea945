package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

type navLink struct {
	Path  string
	Label string
}

var navLinks = []navLink{
	{"/", "Home"},
	{"/pricing", "Pricing"},
	{"/about", "About us"},
	{"/contact", "Contact"},
}

// SiteHeader renders the sticky top bar. header.js adds the "scrolled"
// class once the page is scrolled past 50px; the mobile drawer is a
// checkbox toggle and needs no script.
func SiteHeader(path string) g.Node {
	return Header(
		Class("header"),
		ID("site-header"),
		Div(
			Class("container header-inner"),
			Div(
				Class("nav-brand"),
				A(Href("/"), Class("logo"), Logo()),
			),
			Input(ID("nav-drawer"), Type("checkbox"), Class("nav-drawer-toggle"), g.Attr("aria-hidden", "true")),
			Label(
				For("nav-drawer"),
				Class("nav-drawer-button"),
				g.Attr("aria-label", "Toggle navigation"),
				Span(Class("bar")), Span(Class("bar")), Span(Class("bar")),
			),
			Nav(
				Class("nav-menu"),
				g.Group(g.Map(navLinks, func(l navLink) g.Node {
					class := "nav-link"
					if l.Path == path {
						class += " active"
					}
					return A(
						Href(l.Path),
						Class(class),
						g.If(l.Path == path, g.Attr("aria-current", "page")),
						g.Text(l.Label),
					)
				})),
				Div(
					Class("nav-actions"),
					A(Href("/contact"), Class("btn-secondary"), g.Text("Log in")),
					A(Href("/contact"), Class("btn-primary"), g.Text("Sign up")),
				),
			),
		),
	)
}

// Logo is the brand mark with its purple full stop.
func Logo() g.Node {
	return g.Group([]g.Node{
		g.Text("LifeCycle"),
		Span(Class("logo-dot"), g.Text(".")),
	})
}
