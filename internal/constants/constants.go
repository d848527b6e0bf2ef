package constants

// Controller registry keys.
const (
	Catalog = iota
	Blog
	Pages
	Forms
	Auth
	Sitemap
)
