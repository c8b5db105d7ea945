package pages

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/osa911/lifecycle/internal/seo"
	"github.com/osa911/lifecycle/internal/site/components"
)

func About(sink seo.MetadataSink, siteURL string) g.Node {
	sink.Apply(seo.AboutPage(siteURL))

	return g.Group([]g.Node{
		Section(
			Class("section section-muted"),
			Div(
				Class("container narrow"),
				H1(Class("page-title"), g.Text("About us")),
				H2(Class("section-subtitle"), g.Text("Three students, one frustrating problem, and a solution")),
				P(g.Text("Hi! We're three uni students who got tired of watching food and products go to waste at our part-time jobs. Whether it was a cafe tossing expired milk or a retail shop scrambling to find batch numbers, we kept seeing the same issue: nobody had a simple way to track what was about to expire.")),
				H2(Class("section-subtitle"), g.Text("So we decided to build one.")),
				P(g.Text("LifeCycle started as our own solution to make work easier, for us, our managers, and our coworkers. Now we're turning it into something that can help small businesses everywhere stop wasting inventory and start saving money.")),
				P(g.Text("We're not a big corporate team with decades of experience. We're students who work these jobs, understand these problems, and are building the tool we wish we'd had from day one.")),
			),
		),
		Section(
			Class("section"),
			Div(
				Class("container narrow"),
				H2(Class("section-title"), g.Text("Our mission")),
				P(Class("lead"), g.Text("Stop wasting stuff. It's that simple.")),
				P(g.Text("We're here to help small businesses track expiration dates without the headache. No overcomplicated software, no unnecessary features, just a straightforward system that tells you what's about to expire so you can actually do something about it.")),
				P(g.Text("Whether you're running a cafe, a retail shop, or anything in between, we want to make managing inventory less painful and more practical. Less waste, less stress, more money staying in your pocket.")),
				P(g.Text("That's it. That's the mission.")),
			),
		),
		Section(
			Class("section section-muted center"),
			Div(
				Class("container"),
				H2(Class("section-title"), g.Text("Let's talk"), Br(), g.Text("inventory.")),
				A(Href("/contact"), Class("btn-primary"), g.Text("Contact us")),
			),
		),
		components.CTA(),
	})
}
