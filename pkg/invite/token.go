// Package invite issues and verifies signed, time-boxed invitation tokens.
package invite

import (
	"errors"
	"net/url"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const audience = "project-invitation"

var ErrInvalidToken = errors.New("invalid invitation token")

type Claims struct {
	ProjectID uint   `json:"pid"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	jwt.RegisteredClaims
}

type Signer struct {
	key    []byte
	issuer string
	ttl    time.Duration
	now    func() time.Time
}

func NewSigner(secret, issuer string, ttl time.Duration) *Signer {
	return &Signer{
		key:    []byte(secret),
		issuer: issuer,
		ttl:    ttl,
		now:    time.Now,
	}
}

// WithClock returns a copy of the signer that reads time from now.
func (s *Signer) WithClock(now func() time.Time) *Signer {
	cp := *s
	cp.now = now
	return &cp
}

func (s *Signer) Sign(projectID uint, email, role string) (string, error) {
	issued := s.now()
	claims := &Claims{
		ProjectID: projectID,
		Email:     strings.ToLower(strings.TrimSpace(email)),
		Role:      role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    s.issuer,
			Audience:  jwt.ClaimStrings{audience},
			IssuedAt:  jwt.NewNumericDate(issued),
			ExpiresAt: jwt.NewNumericDate(issued.Add(s.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.key)
}

// Parse verifies signature, issuer, audience and expiry. Every failure is
// reported as ErrInvalidToken.
func (s *Signer) Parse(token string) (*Claims, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return s.key, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(s.issuer),
		jwt.WithAudience(audience),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil || !parsed.Valid {
		return nil, ErrInvalidToken
	}
	if claims.ProjectID == 0 || claims.Email == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// Link builds the acceptance URL carrying token.
func Link(baseURL, token string) string {
	return strings.TrimRight(baseURL, "/") + "/invitations/accept?token=" + url.QueryEscape(token)
}
