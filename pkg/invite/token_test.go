package invite

import (
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignAndParse(t *testing.T) {
	s := NewSigner("secret", "scrumish", time.Hour)

	tok, err := s.Sign(7, " Dev@Example.com ", "TESTER")
	require.NoError(t, err)

	claims, err := s.Parse(tok)
	require.NoError(t, err)
	assert.Equal(t, uint(7), claims.ProjectID)
	assert.Equal(t, "dev@example.com", claims.Email)
	assert.Equal(t, "TESTER", claims.Role)
	assert.NotEmpty(t, claims.ID)
}

func TestParseRejects(t *testing.T) {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	s := NewSigner("secret", "scrumish", time.Hour).WithClock(func() time.Time { return base })

	tok, err := s.Sign(1, "a@example.com", "DEVELOPER")
	require.NoError(t, err)

	t.Run("expired", func(t *testing.T) {
		late := s.WithClock(func() time.Time { return base.Add(2 * time.Hour) })
		_, err := late.Parse(tok)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("wrong key", func(t *testing.T) {
		other := NewSigner("other", "scrumish", time.Hour).WithClock(func() time.Time { return base })
		_, err := other.Parse(tok)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("wrong issuer", func(t *testing.T) {
		other := NewSigner("secret", "elsewhere", time.Hour).WithClock(func() time.Time { return base })
		_, err := other.Parse(tok)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := s.Parse("not-a-token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestLink(t *testing.T) {
	link := Link("https://tracker.example.com/", "a.b+c")
	assert.True(t, strings.HasPrefix(link, "https://tracker.example.com/invitations/accept?token="))

	u, err := url.Parse(link)
	require.NoError(t, err)
	assert.Equal(t, "a.b+c", u.Query().Get("token"))
}
