package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/gw-support-ledger/internal/models"
)

//go:generate mockgen -source=signin.go -destination=signin_mock.go -package=handlers

// SignInService exchanges credentials for a session token.
type SignInService interface {
	SignIn(ctx context.Context, username, password string) (string, error)
}

// NewSignInHandler returns an HTTP handler that signs a database user in.
// @Summary Sign in
// @Description Exchanges database-level credentials for a session token to send as x-auth.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body models.SignInRequest true "Credentials"
// @Success 200 {object} models.DataResponse{data=models.SignInResponse}
// @Failure 400 {object} models.ErrorResponse "WebError or SecurityError"
// @Router /signin [post]
func NewSignInHandler(svc SignInService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.SignInRequest
		if err := decodeBody(r, &req); err != nil {
			writeError(w, r, err)
			return
		}

		token, err := svc.SignIn(r.Context(), req.User, req.Pass)
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeData(w, models.SignInResponse{Token: token})
	}
}
