// Package pages builds the content of each site page. Every page applies its
// metadata to the given sink before returning its nodes.
package pages

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/osa911/lifecycle/internal/seo"
	"github.com/osa911/lifecycle/internal/site/components"
)

type step struct {
	Title string
	Body  string
}

type testimonial struct {
	Lead   string
	Body   string
	Author string
}

var steps = []step{
	{"Step 1", "Sign up and tell us about your business and inventory management needs."},
	{"Step 2", "Our team will reach out to schedule a personalised consultation and demo."},
	{"Step 3", "We'll help you get set up and start optimising your inventory management."},
}

var testimonials = []testimonial{
	{"Since implementing ", "LifeCycle, we've reduced inventory waste by 35% and saved thousands.", "Sarah Wilson"},
	{"The app ", "is so easy business tracking and prevents costly expired inventory.", "Mike Rodriguez"},
	{"The application alerts ", "have transformed how we manage perishable goods. Highly recommend!", "Lisa Chen"},
}

func Home(sink seo.MetadataSink, siteURL string) g.Node {
	sink.Apply(seo.HomePage(siteURL))

	return g.Group([]g.Node{
		Section(
			Class("hero section-muted"),
			Div(
				Class("container narrow"),
				H1(Class("hero-title"), g.Text("Never let"), Br(), g.Text("inventory"), Br(), g.Text("expire again")),
				P(Class("lead"), g.Text("Monitor product lifecycles and get timely alerts before items expire. Perfect for small businesses managing perishable goods.")),
				Div(
					Class("hero-actions"),
					A(Href("/contact"), Class("btn-primary"), g.Text("Get started")),
					A(Href("/contact"), Class("btn-outline"), g.Text("See how it works")),
				),
			),
		),
		components.FeatureSection(
			"Smart expiration tracking",
			"Keep your inventory fresh and compliant. Get automated alerts before products expire and reduce waste across your business.",
			"Try for free", "btn-primary", false,
		),
		components.FeatureSection(
			"All your work is safe with us",
			"We understand how important data and information security is to you and your business. That's why we've implemented industry-leading security measures to keep your data protected and accessible only to you.",
			"Try now", "btn-dark-outline", true,
		),
		components.FeatureSection(
			"Reduce waste, save money",
			"Stop losing money on expired products. LifeCycle helps you track expiration dates, optimise inventory rotation, and cut waste by up to 40%. More savings, less stress.",
			"Try now", "btn-dark-outline", false,
		),
		Section(
			Class("section section-muted"),
			Div(
				Class("container split"),
				Div(
					H2(Class("section-title"), g.Text("How to get started with LifeCycle")),
					P(Class("lead"), g.Text("Schedule a consultation and we'll help you set up the perfect solution for your business.")),
					A(Href("/contact"), Class("btn-primary"), g.Text("Sign up now")),
				),
				Div(
					Class("steps"),
					g.Group(g.Map(steps, func(s step) g.Node {
						return Div(
							Class("step"),
							Div(Class("step-title"), g.Text(s.Title)),
							P(g.Text(s.Body)),
						)
					})),
				),
			),
		),
		Section(
			Class("section center"),
			Div(
				Class("container"),
				H2(Class("section-title"), g.Text("Testimonials")),
				P(Class("lead"), g.Text("People who think we do our job well for your brand")),
				Div(
					Class("grid-3"),
					g.Group(g.Map(testimonials, func(t testimonial) g.Node {
						return Div(
							Class("card testimonial"),
							Div(Class("quote"), Strong(g.Text(t.Lead)), g.Text(t.Body)),
							Div(Class("stars"), g.Text("★★★★★")),
							Div(Class("author"), g.Text(t.Author)),
						)
					})),
				),
			),
		),
		components.CTA(),
	})
}
