package pages

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/osa911/lifecycle/internal/seo"
)

func NotFound(sink seo.MetadataSink) g.Node {
	sink.Apply(seo.Options{
		Title:       "Page not found | LifeCycle",
		Description: "The page you are looking for does not exist.",
	})

	return Section(
		Class("section section-muted center"),
		Div(
			Class("container narrow"),
			H1(Class("page-title"), g.Text("Page not found")),
			P(Class("lead"), g.Text("The page you are looking for does not exist.")),
			A(Href("/"), Class("btn-primary"), g.Text("Back to home")),
		),
	)
}
