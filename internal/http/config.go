package http

// RouterConfig contains all dependencies and configuration needed
// to create the HTTP router.
type RouterConfig struct {
	// Storage
	Database  Pinger
	Books     BookStore
	Customers CustomerStore
	Loans     LoanStore

	// Application info
	Version string

	// Serve the Swagger UI and OpenAPI document
	DocsEnabled bool
}
