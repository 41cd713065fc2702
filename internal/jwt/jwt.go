package jwt

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sbilibin2017/gw-support-ledger/internal/models"
)

// HeaderXAuth carries the session token on every API request.
const HeaderXAuth = "x-auth"

// Claims is the subset of a SurrealDB session token worth logging.
type Claims struct {
	Subject   string    // ID claim: the login or record the token was issued for
	Access    string    // AC claim: access method name
	Namespace string    // NS claim
	Database  string    // DB claim
	ExpiresAt time.Time // exp claim, zero if absent
}

// JWT reads session tokens from requests. It never verifies signatures:
// whether a token is valid is decided by the database on every call.
type JWT struct {
	Header string // request header holding the token
	parser *jwt.Parser
}

// New creates a JWT reader for the x-auth header.
func New() *JWT {
	return &JWT{
		Header: HeaderXAuth,
		parser: jwt.NewParser(),
	}
}

// GetTokenFromRequest returns the x-auth header exactly as sent. The token
// is opaque here: nothing is stripped or rewritten before the database sees it.
func (j *JWT) GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error) {
	raw := r.Header.Get(j.Header)
	if strings.TrimSpace(raw) == "" {
		return "", models.ErrMissingToken
	}
	return raw, nil
}

// GetClaims decodes the token payload without checking its signature.
func (j *JWT) GetClaims(ctx context.Context, tokenString string) (*Claims, error) {
	mc := jwt.MapClaims{}
	if _, _, err := j.parser.ParseUnverified(tokenString, mc); err != nil {
		return nil, fmt.Errorf("decode token: %w", err)
	}

	claims := &Claims{
		Subject:   claimString(mc, "ID", "id"),
		Access:    claimString(mc, "AC", "ac"),
		Namespace: claimString(mc, "NS", "ns"),
		Database:  claimString(mc, "DB", "db"),
	}

	exp, err := mc.GetExpirationTime()
	if err != nil {
		return nil, fmt.Errorf("decode token expiry: %w", err)
	}
	if exp != nil {
		claims.ExpiresAt = exp.Time
	}

	return claims, nil
}

// LogFields returns the claims as zap key/value pairs. A nil c yields none.
func (c *Claims) LogFields() []any {
	if c == nil {
		return nil
	}
	return []any{"subject", c.Subject, "access", c.Access}
}

func claimString(mc jwt.MapClaims, keys ...string) string {
	for _, k := range keys {
		if v, ok := mc[k].(string); ok {
			return v
		}
	}
	return ""
}

type tokenKey struct{}

// WithToken returns a copy of ctx carrying the request's session token.
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenKey{}, token)
}

type claimsKey struct{}

// WithClaims returns a copy of ctx carrying the decoded token payload.
func WithClaims(ctx context.Context, claims *Claims) context.Context {
	return context.WithValue(ctx, claimsKey{}, claims)
}

// ClaimsFromContext returns the claims stored by WithClaims, or nil.
func ClaimsFromContext(ctx context.Context) *Claims {
	claims, _ := ctx.Value(claimsKey{}).(*Claims)
	return claims
}

// TokenFromContext returns the token stored by WithToken, or "".
func TokenFromContext(ctx context.Context) string {
	token, _ := ctx.Value(tokenKey{}).(string)
	return token
}
