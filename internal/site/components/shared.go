package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// CTA is the "Get started" banner closing most pages.
func CTA() g.Node {
	return Section(
		Class("section section-muted"),
		Div(
			Class("container"),
			Div(
				Class("cta-card"),
				H2(Class("section-title"), g.Text("Get started with"), Br(), g.Text("LifeCycle today")),
				P(Class("lead"), g.Text("Start reducing waste today")),
				A(Href("/contact"), Class("btn-primary"), g.Text("Sign up now")),
			),
		),
	)
}

// FeatureSection is a headline, copy and call to action block.
func FeatureSection(title, body, action, actionClass string, muted bool) g.Node {
	class := "section"
	if muted {
		class = "section section-muted"
	}
	return Section(
		Class(class),
		Div(
			Class("container narrow"),
			H2(Class("section-title"), g.Text(title)),
			P(Class("lead"), g.Text(body)),
			A(Href("/contact"), Class(actionClass), g.Text(action)),
		),
	)
}

// Check is the round tick used in feature lists.
func Check(label string) g.Node {
	return Li(Class("check-item"), Span(Class("check"), g.Text("✓")), g.Text(label))
}
