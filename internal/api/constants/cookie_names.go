package constants

// Cookie names used in the application
const (
	// Contact form session cookie (HttpOnly)
	CookieFormSession = "lc_form"

	// Cookie paths
	CookiePathRoot = "/" // Root path for cookies available throughout the site
)
