package pages

import (
	"fmt"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/osa911/lifecycle/internal/seo"
	"github.com/osa911/lifecycle/internal/site/components"
)

// NoFAQOpen means every FAQ answer is collapsed.
const NoFAQOpen = -1

type plan struct {
	Name     string
	Price    int
	Audience string
	Action   string
	Popular  bool
}

type featureSet struct {
	Tier     string
	Features []string
}

var plans = []plan{
	{Name: "Starter", Price: 9, Audience: "For individuals and small teams", Action: "Get Started with Basic"},
	{Name: "Pro", Price: 19, Audience: "For startups and growing businesses", Action: "Get Started with Pro", Popular: true},
	{Name: "Business", Price: 99, Audience: "For organizations with advanced needs", Action: "Get Started with Business"},
}

var featureSets = []featureSet{
	{"Basic", []string{"Track up to 100 products", "Expiration alerts", "Email notifications", "Performance Metrics", "Basic reporting"}},
	{"Pro", []string{"Track up to 1,000 products", "Advanced alerts", "Team collaboration", "Custom categories", "Priority support"}},
	{"Business", []string{"Unlimited products", "Task Management", "API access", "Custom integrations", "Dedicated support"}},
}

// FAQs lists the pricing page questions in display order.
var FAQs = []string{
	"How does this work?",
	"What are the benefits?",
	"Is it difficult to use?",
	"Can I have custom pricing?",
	"Is there trial version available?",
	"Where do I sign up?",
}

const faqAnswer = "This is a placeholder answer for the FAQ question. The actual content would be provided based on your specific requirements."

// FAQToggle returns the FAQ index that is open after clicking question i
// while openFAQ is open. Clicking the open question closes it.
func FAQToggle(openFAQ, i int) int {
	if openFAQ == i {
		return NoFAQOpen
	}
	return i
}

// Pricing renders the plans, the feature comparison and the FAQ with at
// most one answer expanded.
func Pricing(sink seo.MetadataSink, siteURL string, openFAQ int) g.Node {
	sink.Apply(seo.PricingPage(siteURL))

	return g.Group([]g.Node{
		Section(
			Class("section section-muted center"),
			Div(
				Class("container"),
				H1(Class("page-title"), g.Text("Pricing")),
				P(Class("lead"), g.Text("Pricing tailored to your business size and"), Br(), g.Text("needs. Launch pricing coming soon.")),
			),
		),
		Section(
			Class("section section-muted"),
			Div(
				Class("container grid-3"),
				g.Group(g.Map(plans, planCard)),
			),
		),
		Section(
			Class("section section-muted"),
			Div(
				Class("container"),
				H2(Class("section-title center"), g.Text("Compare Features")),
				Div(
					Class("grid-3"),
					g.Group(g.Map(featureSets, func(fs featureSet) g.Node {
						return Div(
							Class("card"),
							H3(Class("card-title center"), g.Text(fs.Tier)),
							Ul(Class("check-list"), g.Group(g.Map(fs.Features, components.Check))),
						)
					})),
				),
			),
		),
		Section(
			Class("section center"),
			ID("faq"),
			Div(
				Class("container narrow"),
				H2(Class("section-title"), g.Text("Frequently asked"), Br(), g.Text("questions")),
				Div(Class("faq"), g.Group(faqItems(openFAQ))),
			),
		),
		components.CTA(),
	})
}

func planCard(p plan) g.Node {
	class := "card plan"
	if p.Popular {
		class = "card plan plan-popular"
	}
	return Div(
		Class(class),
		g.If(p.Popular, Div(Class("badge"), g.Text("Most Popular"))),
		H3(Class("card-title"), g.Text(p.Name)),
		Div(
			Class("price"),
			Span(Class("currency"), g.Text("$")),
			Span(Class("amount"), g.Textf("%d", p.Price)),
			Span(Class("period"), g.Text("/month")),
		),
		P(g.Text(p.Audience)),
		A(Href("/contact"), Class("btn-dark-outline block"), g.Text(p.Action)),
	)
}

func faqItems(openFAQ int) []g.Node {
	items := make([]g.Node, 0, len(FAQs))
	for i, q := range FAQs {
		open := i == openFAQ
		next := FAQToggle(openFAQ, i)

		href := "/pricing#faq"
		if next != NoFAQOpen {
			href = fmt.Sprintf("/pricing?faq=%d#faq", next)
		}

		arrow := "faq-arrow"
		if open {
			arrow = "faq-arrow open"
		}

		items = append(items, Div(
			Class("faq-item"),
			A(
				Href(href),
				Class("faq-question"),
				g.Attr("aria-expanded", fmt.Sprintf("%t", open)),
				g.Text(q),
				Span(Class(arrow), g.Text("▼")),
			),
			g.If(open, Div(Class("faq-answer"), P(g.Text(faqAnswer)))),
		))
	}
	return items
}
