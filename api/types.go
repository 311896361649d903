package api

import (
	"blog-api/models"
)

// routeHandlers contains all the handlers for different route types
type routeHandlers struct {
	authHandler authHandler
	blogHandler blogHandler
}

// MessageResponse is the uniform error/acknowledgment envelope.
type MessageResponse struct {
	Message string `json:"message"`
}

// TokenResponse carries a freshly issued session token.
type TokenResponse struct {
	Token string `json:"token"`
}

// LoginRequest is the login payload.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// BlogPage is one window of the blog collection plus pagination metadata.
type BlogPage struct {
	Data        []models.Blog `json:"data"`
	TotalCount  int64         `json:"totalCount"`
	CurrentPage int           `json:"currentPage"`
	PageSize    int           `json:"pageSize"`
	TotalPages  int           `json:"totalPages"`
}
