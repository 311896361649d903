package api

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"blog-api/auth"
	"blog-api/errs"
)

type authHandler struct {
	responder   Responder
	logger      zerolog.Logger
	issuer      *auth.Issuer
	credentials auth.Verifier
}

func newAuthHandler(issuer *auth.Issuer, credentials auth.Verifier) authHandler {
	logger := log.With().Str("handlerName", "authHandler").Logger()

	return authHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		issuer:      issuer,
		credentials: credentials,
	}
}

// login exchanges the fixed credential pair for a signed session token.
// Every failure mode, malformed body included, collapses into the same
// "Invalid credentials" response so nothing about the account leaks.
func (h authHandler) login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.responder.WriteError(w, errs.NewInvalidCredentialsError())
			return
		}

		if !h.credentials.Verify(req.Username, req.Password) {
			h.logger.Warn().Str("username", req.Username).Msg("failed login attempt")
			h.responder.WriteError(w, errs.NewInvalidCredentialsError())
			return
		}

		token, err := h.issuer.Generate(req.Username)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, http.StatusOK, TokenResponse{Token: token})
	}
}
