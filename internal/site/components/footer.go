package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

func SiteFooter() g.Node {
	return Footer(
		Class("footer"),
		Div(
			Class("container footer-inner"),
			Div(
				Class("footer-brand"),
				Div(Class("footer-logo"), g.Text("LifeCycle.")),
				Div(Class("footer-copy"), g.Text("2025 © LifeCycle"), Br(), g.Text("All rights reserved.")),
			),
			Div(
				Class("footer-links"),
				footerColumn(
					A(Href("/"), g.Text("Home")),
					A(Href("/pricing"), g.Text("Pricing")),
					A(Href("/about"), g.Text("About us")),
					A(Href("/contact"), g.Text("Contact")),
				),
				footerColumn(
					A(Href("#"), g.Text("Facebook")),
					A(Href("#"), g.Text("Instagram")),
					A(Href("#"), g.Text("Twitter")),
					A(Href("#"), g.Text("Linkedin")),
				),
				footerColumn(
					A(Href("#"), g.Text("Privacy Policy")),
					A(Href("#"), g.Text("Terms Of Service")),
				),
			),
		),
	)
}

func footerColumn(links ...g.Node) g.Node {
	return Div(Class("footer-column"), g.Group(links))
}
