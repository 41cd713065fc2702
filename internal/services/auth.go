package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/sbilibin2017/gw-support-ledger/internal/logger"
	"github.com/sbilibin2017/gw-support-ledger/internal/models"
)

//go:generate mockgen -source=auth.go -destination=auth_mock.go -package=services

// Authenticator validates a session token against the database.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) error
}

// CredentialExchanger trades a login and password for a session token.
type CredentialExchanger interface {
	SignIn(ctx context.Context, username, password string) (string, error)
}

// AuthService owns the shared database session. Authenticating switches the
// identity of the one connection every request uses, so a token check and
// the store calls made under it run as a single unit.
type AuthService struct {
	mu     sync.Mutex
	auth   Authenticator
	signer CredentialExchanger
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(auth Authenticator, signer CredentialExchanger) *AuthService {
	return &AuthService{
		auth:   auth,
		signer: signer,
	}
}

// Authenticate checks token with the database. Nothing is cached: the next
// call asks the database again.
func (svc *AuthService) Authenticate(ctx context.Context, token string) error {
	return svc.Run(ctx, token, nil)
}

// Run authenticates token and then calls op while no other request can
// change the session. An empty token fails with models.ErrMissingToken
// before anything reaches the database.
func (svc *AuthService) Run(ctx context.Context, token string, op func(ctx context.Context) error) error {
	if token == "" {
		return models.ErrMissingToken
	}

	svc.mu.Lock()
	defer svc.mu.Unlock()

	if err := svc.auth.Authenticate(ctx, token); err != nil {
		logger.Log.Errorw("token rejected", "err", err)
		return fmt.Errorf("%w: %v", models.ErrAuthenticationRejected, err)
	}

	if op == nil {
		return nil
	}
	return op(ctx)
}

// SignIn exchanges credentials for a token.
func (svc *AuthService) SignIn(ctx context.Context, username, password string) (string, error) {
	if username == "" || password == "" {
		return "", fmt.Errorf("%w: user and pass are required", models.ErrValidation)
	}

	svc.mu.Lock()
	defer svc.mu.Unlock()

	token, err := svc.signer.SignIn(ctx, username, password)
	if err != nil {
		logger.Log.Errorw("signin failed", "user", username, "err", err)
		return "", fmt.Errorf("%w: %v", models.ErrAuthenticationRejected, err)
	}

	return token, nil
}
