package api

import (
	"blog-api/auth"
	"blog-api/database"
)

// initializeHandlers creates and returns all handlers organized in a
// routeHandlers struct
func initializeHandlers(db database.Database, issuer *auth.Issuer, credentials auth.Verifier) *routeHandlers {
	return &routeHandlers{
		authHandler: newAuthHandler(issuer, credentials),
		blogHandler: newBlogHandler(db.BlogRepo()),
	}
}
