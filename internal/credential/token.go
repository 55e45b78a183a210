package credential

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/rs/zerolog"
)

// Token is the credential record cached per node: the bearer token pair
// issued by a node's auth service. Field names match the on-disk JSON format.
type Token struct {
	AccessToken  string `json:"access_token" yaml:"access_token"`
	RefreshToken string `json:"refresh_token,omitempty" yaml:"refresh_token,omitempty"`
	ExpiresAt    int64  `json:"expires_at,omitempty" yaml:"expires_at,omitempty"`
}

// IsZero reports whether the token carries no credential material.
func (t Token) IsZero() bool {
	return t.AccessToken == "" && t.RefreshToken == ""
}

// Summary holds the registered claims of the access token, extracted without
// signature verification. It exists for display purposes only: the node is
// the authority on token validity, not this cache.
type Summary struct {
	Subject  string
	Issuer   string
	IssuedAt time.Time
	Expiry   time.Time
}

// Claims peeks at the access token's registered JWT claims without verifying
// the signature. Fails if the access token is not a structurally valid JWT.
func (t Token) Claims() (Summary, error) {
	var claims jwt.RegisteredClaims
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(t.AccessToken, &claims); err != nil {
		return Summary{}, fmt.Errorf("parsing access token claims: %w", err)
	}

	s := Summary{
		Subject: claims.Subject,
		Issuer:  claims.Issuer,
	}
	if claims.IssuedAt != nil {
		s.IssuedAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		s.Expiry = claims.ExpiresAt.Time
	}
	return s, nil
}

// MarshalZerologObject logs the shape of the token without its material.
// Token values must never reach the log stream.
func (t Token) MarshalZerologObject(e *zerolog.Event) {
	e.Bool("has_access_token", t.AccessToken != "").
		Bool("has_refresh_token", t.RefreshToken != "").
		Int("access_token_len", len(t.AccessToken))
	if t.ExpiresAt != 0 {
		e.Time("expires_at", time.Unix(t.ExpiresAt, 0).UTC())
	}
}
