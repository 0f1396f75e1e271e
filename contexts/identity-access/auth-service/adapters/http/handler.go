package httpadapter

import (
	"context"
	"log/slog"

	"cargotrail/contexts/identity-access/auth-service/application"
	httptransport "cargotrail/contexts/identity-access/auth-service/transport/http"
)

// Handler maps HTTP DTOs to application calls.
type Handler struct {
	Service application.Service
	Logger  *slog.Logger
}

func (h Handler) LoginHandler(ctx context.Context, request httptransport.LoginRequest) (httptransport.LoginResponse, error) {
	result, err := h.Service.Authenticate(ctx, request.Username, request.Password)
	if err != nil {
		application.ResolveLogger(h.Logger).Debug("login rejected",
			"event", "auth_http_login_rejected",
			"module", "identity-access/auth-service",
			"layer", "transport",
		)
		return httptransport.LoginResponse{}, err
	}
	return httptransport.LoginResponse{
		Token: result.Token,
		User: httptransport.UserDTO{
			ID:       result.User.ID,
			Username: result.User.Username,
			Role:     result.User.Role,
		},
	}, nil
}
