package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	"cargotrail/contexts/identity-access/auth-service/application"
	autherrors "cargotrail/contexts/identity-access/auth-service/domain/errors"
	authhttp "cargotrail/contexts/identity-access/auth-service/transport/http"
)

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req authhttp.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeInvalidJSON(w)
		return
	}

	resp, err := s.auth.Handler.LoginHandler(r.Context(), req)
	if err != nil {
		writeAuthDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// authorizeDelete verifies the bearer token and checks the role policy for
// the given operation. A nil return means the caller may proceed.
func (s *Server) authorizeDelete(r *http.Request, operation application.Operation) error {
	claims, err := s.auth.Service.VerifyBearer(r.Context(), r.Header.Get("Authorization"))
	if err != nil {
		return err
	}
	return s.auth.Guard.Authorize(claims, operation)
}

func writeAuthDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, autherrors.ErrInvalidCredentials):
		writeError(w, http.StatusUnauthorized, "invalid_credentials", err.Error())
	case errors.Is(err, autherrors.ErrInvalidOrExpiredToken):
		writeError(w, http.StatusUnauthorized, "invalid_token", err.Error())
	case errors.Is(err, autherrors.ErrMissingToken):
		writeError(w, http.StatusForbidden, "missing_token", err.Error())
	case errors.Is(err, autherrors.ErrForbidden):
		writeError(w, http.StatusForbidden, "forbidden", err.Error())
	case errors.Is(err, autherrors.ErrStoreUnavailable):
		writeError(w, http.StatusServiceUnavailable, "store_unavailable", "store unavailable")
	default:
		writeError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}
