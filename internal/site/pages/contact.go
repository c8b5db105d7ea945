package pages

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/osa911/lifecycle/internal/contact"
	"github.com/osa911/lifecycle/internal/seo"
)

// EmailInputPattern mirrors the server-side email check for the browser.
const EmailInputPattern = `[^\s@]+@[^\s@]+\.[^\s@]+`

// Contact renders the form for one visitor's controller snapshot.
func Contact(sink seo.MetadataSink, siteURL string, snap contact.Snapshot) g.Node {
	sink.Apply(seo.ContactPage(siteURL))

	return Section(
		Class("section section-muted contact"),
		Div(
			Class("container narrow center"),
			H1(Class("page-title"), g.Text("Contact Us")),
			P(Class("lead"), g.Text("Explore the future with us. Feel free to get in touch.")),
			Div(
				Class("contact-card"),
				g.If(snap.State == contact.StateSuccess, successPanel()),
				g.If(snap.State != contact.StateSuccess, contactForm(snap)),
			),
		),
	)
}

func successPanel() g.Node {
	return Div(
		Class("contact-success"),
		g.Attr("role", "status"),
		Div(Class("success-icon"), g.Text("✓")),
		H2(g.Text("Thank You!")),
		P(g.Text("Your message has been sent successfully. We'll get back to you soon.")),
		Form(
			Method("post"),
			Action("/contact/dismiss"),
			Button(Type("submit"), Class("btn-primary"), g.Text("Send Another Message")),
		),
	)
}

func contactForm(snap contact.Snapshot) g.Node {
	busy := snap.Busy()
	label := "Send message"
	if busy {
		label = "Sending..."
	}

	return Form(
		Class("contact-form"),
		Method("post"),
		Action("/contact"),
		g.If(snap.State == contact.StateError,
			Div(Class("contact-error"), g.Attr("role", "alert"), g.Text("✗ "+snap.ErrorMessage)),
		),
		Input(
			Type("text"), Name(string(contact.FieldName)), Placeholder("Full Name"),
			Value(snap.Fields.Name), Required(), g.If(busy, Disabled()),
		),
		Input(
			Type("email"), Name(string(contact.FieldEmail)), Placeholder("Email address"),
			Value(snap.Fields.Email), Pattern(EmailInputPattern), Required(), g.If(busy, Disabled()),
		),
		Textarea(
			Name(string(contact.FieldMessage)), Placeholder("How can we get better?"), Rows("5"),
			Required(), g.If(busy, Disabled()), g.Text(snap.Fields.Message),
		),
		Button(Type("submit"), Class("btn-primary block"), g.If(busy, Disabled()), g.Text(label)),
	)
}
