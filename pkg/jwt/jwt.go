package jwt

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken     = errors.New("invalid token")
	ErrTokenExpired     = errors.New("token expired")
	ErrInvalidSignature = errors.New("invalid signature")
	ErrMissingSecret    = errors.New("signing secret is required")
)

// reservedClaims are payload keys owned by the token layer. Extension
// claims under these names are dropped at signing time so callers cannot
// override expiry or identity fields.
var reservedClaims = map[string]struct{}{
	"iss":   {},
	"sub":   {},
	"aud":   {},
	"exp":   {},
	"nbf":   {},
	"iat":   {},
	"jti":   {},
	"email": {},
}

// Claims is the identity payload carried by a token: a required email plus
// an open extension map for any other caller-supplied claims. The extension
// map is flattened into the JWT payload alongside the registered claims.
type Claims struct {
	Email string
	Extra map[string]interface{}

	gojwt.RegisteredClaims
}

// MarshalJSON flattens Extra into the payload next to email and the
// registered claims. Reserved keys in Extra are skipped.
func (c Claims) MarshalJSON() ([]byte, error) {
	out := make(map[string]interface{}, len(c.Extra)+4)

	for k, v := range c.Extra {
		if _, reserved := reservedClaims[k]; reserved {
			continue
		}
		out[k] = v
	}

	registered, err := json.Marshal(c.RegisteredClaims)
	if err != nil {
		return nil, err
	}
	var registeredMap map[string]interface{}
	if err := json.Unmarshal(registered, &registeredMap); err != nil {
		return nil, err
	}
	for k, v := range registeredMap {
		out[k] = v
	}

	if c.Email != "" {
		out["email"] = c.Email
	}

	return json.Marshal(out)
}

// UnmarshalJSON splits the payload back into email, registered claims, and
// the extension map.
func (c *Claims) UnmarshalJSON(data []byte) error {
	if err := json.Unmarshal(data, &c.RegisteredClaims); err != nil {
		return err
	}

	var raw map[string]interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	if email, ok := raw["email"].(string); ok {
		c.Email = email
	}

	for k := range reservedClaims {
		delete(raw, k)
	}
	if len(raw) > 0 {
		c.Extra = raw
	} else {
		c.Extra = nil
	}

	return nil
}

// Service signs and verifies HMAC-SHA256 identity tokens
type Service struct {
	secret     []byte
	issuer     string
	expiration time.Duration
}

// Config holds token service configuration
type Config struct {
	Secret     string
	Issuer     string
	Expiration time.Duration // Default: 7 days
}

// DefaultExpiration is the token lifetime when none is configured.
const DefaultExpiration = 7 * 24 * time.Hour

// NewService creates a new token service
func NewService(cfg Config) (*Service, error) {
	if cfg.Secret == "" {
		return nil, ErrMissingSecret
	}
	if cfg.Expiration == 0 {
		cfg.Expiration = DefaultExpiration
	}

	return &Service{
		secret:     []byte(cfg.Secret),
		issuer:     cfg.Issuer,
		expiration: cfg.Expiration,
	}, nil
}

// Sign creates a signed token from the given claims, stamping issuance and
// expiry times. The caller's email and extension claims are preserved
// verbatim.
func (s *Service) Sign(claims Claims) (string, error) {
	now := time.Now()
	claims.IssuedAt = gojwt.NewNumericDate(now)
	claims.ExpiresAt = gojwt.NewNumericDate(now.Add(s.expiration))
	if claims.Issuer == "" {
		claims.Issuer = s.issuer
	}

	token := gojwt.NewWithClaims(gojwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Validate verifies a token's signature and expiry and returns its claims.
// Only HS256 tokens are accepted.
func (s *Service) Validate(tokenString string) (*Claims, error) {
	claims := &Claims{}

	_, err := gojwt.ParseWithClaims(tokenString, claims,
		func(t *gojwt.Token) (interface{}, error) {
			return s.secret, nil
		},
		gojwt.WithValidMethods([]string{gojwt.SigningMethodHS256.Alg()}),
	)
	if err != nil {
		switch {
		case errors.Is(err, gojwt.ErrTokenExpired):
			return nil, ErrTokenExpired
		case errors.Is(err, gojwt.ErrTokenSignatureInvalid):
			return nil, ErrInvalidSignature
		default:
			return nil, ErrInvalidToken
		}
	}

	return claims, nil
}

// GetExpiration returns the configured token lifetime
func (s *Service) GetExpiration() time.Duration {
	return s.expiration
}
