package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/osa911/lifecycle/internal/seo"
)

// Layout wraps page content in the shared shell. The head is rendered from
// doc, so pages must have applied their metadata before Layout is called.
func Layout(doc *seo.Document, path string, content ...g.Node) g.Node {
	return g.Group([]g.Node{
		g.Raw("<!DOCTYPE html>"),
		HTML(
			Lang("en"),
			Head(
				Meta(Charset("utf-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1.0")),
				g.Group(headElements(doc)),
				Link(Rel("icon"), Href("/static/favicon.svg"), Type("image/svg+xml")),
				Link(Rel("stylesheet"), Href("/static/styles.css")),
			),
			Body(
				SiteHeader(path),
				Main(Class("page"), g.Group(content)),
				SiteFooter(),
				Script(Src("/static/js/header.js"), Defer()),
			),
		),
	})
}

func headElements(doc *seo.Document) []g.Node {
	var nodes []g.Node
	for _, el := range doc.Elements() {
		v, _ := doc.Get(el)
		switch el {
		case seo.ElementTitle:
			nodes = append(nodes, TitleEl(g.Text(v)))
		case seo.ElementDescription:
			nodes = append(nodes, Meta(Name("description"), Content(v)))
		case seo.ElementKeywords:
			nodes = append(nodes, Meta(Name("keywords"), Content(v)))
		case seo.ElementCanonical:
			nodes = append(nodes, Link(Rel("canonical"), Href(v)))
		case seo.ElementOGTitle:
			nodes = append(nodes, Meta(g.Attr("property", "og:title"), Content(v)))
		case seo.ElementOGDescription:
			nodes = append(nodes, Meta(g.Attr("property", "og:description"), Content(v)))
		case seo.ElementOGImage:
			nodes = append(nodes, Meta(g.Attr("property", "og:image"), Content(v)))
		}
	}
	return nodes
}
