package mailer

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInvitation(t *testing.T) {
	msg := Invitation("Apollo", "TESTER", "http://x/invitations/accept?token=abc", "dev@example.com")

	assert.Equal(t, []string{"dev@example.com"}, msg.To)
	assert.Equal(t, "Invitation to join the project 'Apollo'", msg.Subject)
	assert.Contains(t, msg.Body, "as a TESTER.")
	assert.True(t, strings.HasSuffix(msg.Body, "http://x/invitations/accept?token=abc"))
}

func headerLines(t *testing.T, raw []byte) []string {
	t.Helper()
	head, _, ok := strings.Cut(string(raw), "\r\n\r\n")
	require.True(t, ok, "message has no header/body separator")
	return strings.Split(head, "\r\n")
}

func TestCompose(t *testing.T) {
	raw, err := Compose(Message{
		From:    "no-reply@example.com",
		To:      []string{"a@example.com", "b@example.com"},
		Subject: "Hi",
		Body:    "line1\nline2",
	})
	require.NoError(t, err)

	lines := headerLines(t, raw)
	assert.Contains(t, lines, "Subject: Hi")
	assert.Contains(t, string(raw), "no-reply@example.com")
	assert.Contains(t, string(raw), "a@example.com")
	assert.Contains(t, string(raw), "b@example.com")
	assert.Contains(t, string(raw), "line1")
	assert.Contains(t, string(raw), "line2")
}

func TestComposeKeepsControlCharactersOutOfHeaders(t *testing.T) {
	raw, err := Compose(Message{
		From:    "no-reply@example.com",
		To:      []string{"dev@example.com"},
		Subject: "Hi\r\nBcc: attacker@example.com",
		Body:    "hello",
	})
	require.NoError(t, err)

	for _, line := range headerLines(t, raw) {
		assert.False(t, strings.HasPrefix(strings.ToLower(line), "bcc:"), "unexpected header line %q", line)
	}
}

func TestComposeEncodesNonASCIISubject(t *testing.T) {
	raw, err := Compose(Message{
		From:    "no-reply@example.com",
		To:      []string{"dev@example.com"},
		Subject: "Einladung für Café",
		Body:    "hallo",
	})
	require.NoError(t, err)

	var subject string
	for _, line := range headerLines(t, raw) {
		if strings.HasPrefix(line, "Subject: ") {
			subject = line
		}
	}
	assert.Contains(t, subject, "=?UTF-8?q?")
	assert.NotContains(t, subject, "é")
}

func TestInvitationFlattensProjectNameInSubject(t *testing.T) {
	msg := Invitation("Apollo\r\nBcc: attacker@example.com", "GUEST", "http://x", "dev@example.com")
	assert.NotContains(t, msg.Subject, "\r")
	assert.NotContains(t, msg.Subject, "\n")

	msg.From = "no-reply@example.com"
	raw, err := Compose(msg)
	require.NoError(t, err)
	for _, line := range headerLines(t, raw) {
		assert.False(t, strings.HasPrefix(strings.ToLower(line), "bcc:"), "unexpected header line %q", line)
	}
}

func TestComposeRejectsBadAddress(t *testing.T) {
	_, err := Compose(Message{From: "not an address", To: []string{"dev@example.com"}, Subject: "x"})
	assert.Error(t, err)
}

func TestSendWithoutHostIsDropped(t *testing.T) {
	n := NewSMTPNotifier(func(ctx context.Context) SMTPConfig {
		return SMTPConfig{From: "no-reply@example.com"}
	})
	require.NoError(t, n.Send(context.Background(), Invitation("p", "GUEST", "l", "x@example.com")))
}
