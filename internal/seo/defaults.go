package seo

const siteName = "LifeCycle"

// Shell returns a Document with the site-wide metadata every page starts
// from. siteURL has no trailing slash.
func Shell(siteURL string) *Document {
	return NewDocument(map[Element]string{
		ElementTitle:         "LifeCycle - Expiration Tracking for Small Business Inventory",
		ElementDescription:   "Monitor product lifecycles and get timely alerts before items expire. Perfect for small businesses managing perishable goods.",
		ElementKeywords:      "inventory management, expiration tracking, small business inventory, reduce waste",
		ElementCanonical:     siteURL + "/",
		ElementOGTitle:       siteName,
		ElementOGDescription: "Never let inventory expire again.",
		ElementOGImage:       siteURL + "/package.png",
	})
}

// HomePage is the metadata for "/".
func HomePage(siteURL string) Options {
	return Options{
		Title:         "LifeCycle - Never Let Inventory Expire Again",
		Description:   "Monitor product lifecycles and get timely alerts before items expire. Perfect for small businesses managing perishable goods.",
		Canonical:     siteURL + "/",
		OGTitle:       "LifeCycle - Never Let Inventory Expire Again",
		OGDescription: "Smart expiration tracking that keeps your inventory fresh and reduces waste.",
	}
}

// AboutPage is the metadata for "/about".
func AboutPage(siteURL string) Options {
	return Options{
		Title:         "About LifeCycle - Built by Students Who Hate Waste",
		Description:   "Three students, one frustrating problem, and a solution. Learn why we built LifeCycle to help small businesses stop wasting inventory.",
		Canonical:     siteURL + "/about",
		OGTitle:       "About LifeCycle",
		OGDescription: "Stop wasting stuff. It's that simple.",
	}
}

// PricingPage is the metadata for "/pricing".
func PricingPage(siteURL string) Options {
	return Options{
		Title:         "LifeCycle Pricing - Plans for Every Business Size",
		Description:   "Pricing tailored to your business size and needs. Starter, Pro and Business plans for expiration tracking.",
		Keywords:      "lifecycle pricing, inventory software pricing, expiration tracking plans",
		Canonical:     siteURL + "/pricing",
		OGTitle:       "LifeCycle Pricing",
		OGDescription: "Pricing tailored to your business size and needs.",
	}
}

// ContactPage is the metadata for "/contact".
func ContactPage(siteURL string) Options {
	return Options{
		Title:         "Contact LifeCycle - Inventory Management Support & Sales",
		Description:   "Get in touch with LifeCycle's inventory management experts. Contact us for support, sales inquiries, or to schedule a demo of our expiration tracking software.",
		Keywords:      "contact lifecycle, inventory management support, expiration tracking software demo, small business inventory help",
		Canonical:     siteURL + "/contact",
		OGTitle:       "Contact LifeCycle - Inventory Management Support",
		OGDescription: "Get in touch with LifeCycle's inventory management experts. Contact us for support, sales inquiries, or to schedule a demo.",
		OGImage:       siteURL + "/package.png",
	}
}
