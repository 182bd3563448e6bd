package service

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"lbseries/internal/config"
	"lbseries/internal/domain"
)

// Token scopes.
const (
	ScopeHooks   = "hooks"
	ScopeQuery   = "query"
	ScopeReports = "reports"
)

// AllScopes lists every scope a service token may carry.
var AllScopes = []string{ScopeHooks, ScopeQuery, ScopeReports}

// Claims are the JWT claims of a service token.
type Claims struct {
	jwt.RegisteredClaims
	Scope []string `json:"scope"`
}

// HasScope reports whether the token grants scope.
func (c *Claims) HasScope(scope string) bool {
	for _, s := range c.Scope {
		if s == scope {
			return true
		}
	}
	return false
}

// TokenService issues and validates the tokens the host framework presents
// when calling the hooks.
type TokenService interface {
	Issue(subject string, ttl time.Duration, scopes ...string) (string, error)
	Validate(tokenString string) (*Claims, error)
}

type tokenService struct {
	cfg config.JWTConfig
	now func() time.Time
}

// NewTokenService creates a new TokenService implementation.
func NewTokenService(cfg config.JWTConfig) TokenService {
	return &tokenService{cfg: cfg, now: time.Now}
}

func (s *tokenService) Issue(subject string, ttl time.Duration, scopes ...string) (string, error) {
	if ttl <= 0 {
		ttl = s.cfg.Expiry
	}
	if len(scopes) == 0 {
		scopes = AllScopes
	}
	now := s.now()
	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			Issuer:    s.cfg.Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			ID:        uuid.New().String(),
			Audience:  jwt.ClaimStrings{s.cfg.Audience},
		},
		Scope: scopes,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.Secret))
	if err != nil {
		return "", fmt.Errorf("signing service token: %w", err)
	}
	return signed, nil
}

func (s *tokenService) Validate(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.cfg.Secret), nil
	},
		jwt.WithIssuer(s.cfg.Issuer),
		jwt.WithAudience(s.cfg.Audience),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUnauthorized, err)
	}
	if !token.Valid {
		return nil, domain.ErrUnauthorized
	}
	return claims, nil
}
