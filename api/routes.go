package api

import (
	"github.com/go-chi/chi/v5"
)

// setupRoutes wires the public and bearer-protected route groups. List and
// get stay public on purpose, matching the publishing model: anyone reads,
// only the authenticated operator writes.
func setupRoutes(r chi.Router, handlers *routeHandlers, authMiddleware authMiddleware) {
	r.Route("/api", func(r chi.Router) {
		// Public endpoints
		r.Post("/auth/login", handlers.authHandler.login())
		r.Get("/blogs", handlers.blogHandler.listBlogs())
		r.Get("/blogs/{blogID}", handlers.blogHandler.getBlog())

		// Authenticated endpoints
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.authenticate)

			r.Post("/blogs", handlers.blogHandler.createBlog())
			r.Put("/blogs/{blogID}", handlers.blogHandler.updateBlog())
			r.Delete("/blogs/{blogID}", handlers.blogHandler.deleteBlog())
		})
	})
}
