package api

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog/log"

	"blog-api/auth"
	"blog-api/config"
	"blog-api/database"
)

type Server struct {
	*http.Server
}

func NewServer(db database.Database) (Server, error) {
	c := config.New()

	port := config.GetString(c, "PORT", "8080")
	address := fmt.Sprintf("0.0.0.0:%s", port)

	// The signing key and expiry have no defaults: a missing value must
	// stop the server from starting, never silently sign with a fallback.
	signingKey, err := config.RequireString(c, "JWT_KEY")
	if err != nil {
		return Server{}, err
	}
	expireMinutes, err := config.RequireInt(c, "JWT_EXPIRE_MINUTES")
	if err != nil {
		return Server{}, err
	}

	issuer, err := auth.NewIssuer(auth.IssuerConfig{
		Key:           signingKey,
		Issuer:        config.GetString(c, "JWT_ISSUER", "blog-api"),
		Audience:      config.GetString(c, "JWT_AUDIENCE", "blog-api-clients"),
		ExpireMinutes: expireMinutes,
	})
	if err != nil {
		return Server{}, err
	}

	router := newRouter(db, issuer, c)

	readTimeout := time.Duration(config.GetInt(c, "READ_TIMEOUT_SECONDS", 30)) * time.Second
	writeTimeout := time.Duration(config.GetInt(c, "WRITE_TIMEOUT_SECONDS", 30)) * time.Second
	idleTimeout := time.Duration(config.GetInt(c, "IDLE_TIMEOUT_SECONDS", 120)) * time.Second

	server := &http.Server{
		Addr:         address,
		Handler:      router,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}

	return Server{server}, nil
}

func newRouter(db database.Database, issuer *auth.Issuer, c map[string]string) *chi.Mux {
	chiRouter := chi.NewRouter()

	chiRouter.Use(RecoverPanics)
	chiRouter.Use(RequestLogger)

	acceptedOrigins := strings.Split(config.GetString(c, "ACCEPTED_ORIGINS", "*"), ",")
	chiRouter.Use(cors.Handler(cors.Options{
		AllowedOrigins:   acceptedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	handlers := initializeHandlers(db, issuer, auth.NewStaticCredentials())
	authMiddleware := newAuthMiddleware(issuer)

	setupRoutes(chiRouter, handlers, authMiddleware)

	return chiRouter
}

func (s Server) Start(errChannel chan<- error) {
	log.Info().Msgf("Server started on: %s", s.Addr)
	errChannel <- s.ListenAndServe()
}

func (s Server) ShutdownGracefully(timeout time.Duration) {
	log.Info().Msg("Gracefully shutting down...")

	gracefulCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := s.Shutdown(gracefulCtx); err != nil {
		log.Error().Msgf("Error shutting down the server: %v", err)
	} else {
		log.Info().Msg("HttpServer gracefully shut down")
	}
}
