package middlewares

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/gw-support-ledger/internal/jwt"
	"github.com/sbilibin2017/gw-support-ledger/internal/logger"
	"github.com/sbilibin2017/gw-support-ledger/internal/models"
)

//go:generate mockgen -source=auth.go -destination=auth_mock.go -package=middlewares

// Tokener defines the minimal interface needed by the middleware
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// AuthMiddleware requires an x-auth token and passes it down in the request
// context. Whether the token is any good is decided by the database when a
// handler uses it.
func AuthMiddleware(tokener Tokener) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			tokenString, err := tokener.GetTokenFromRequest(ctx, r)
			if err != nil || tokenString == "" {
				logger.Log.Errorw("authorization failed", "err", err)
				writeCategory(w, models.CategoryWeb)
				return
			}

			if claims, err := tokener.GetClaims(ctx, tokenString); err != nil {
				logger.Log.Debugw("token payload not readable", "err", err)
			} else {
				logger.Log.Debugw("request token",
					"subject", claims.Subject,
					"access", claims.Access,
					"expires_at", claims.ExpiresAt,
				)
				ctx = jwt.WithClaims(ctx, claims)
				if rl, ok := ctx.Value(requestLogKey{}).(*requestLog); ok {
					rl.claims = claims
				}
			}

			next.ServeHTTP(w, r.WithContext(jwt.WithToken(ctx, tokenString)))
		})
	}
}

func writeCategory(w http.ResponseWriter, category string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusBadRequest)
	_ = json.NewEncoder(w).Encode(models.ErrorResponse{ErrorMessage: category})
}
