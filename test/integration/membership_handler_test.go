//go:build integration
// +build integration

package integration

import (
	"fmt"
	"net/http"
	"net/url"
	"testing"

	"github.com/linskybing/scrumish/internal/domain/membership"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMembershipHandler_Integration(t *testing.T) {
	ctx := GetTestContext()
	gen := NewTestDataGenerator()

	p, err := gen.CreateProject(ctx.Router, ctx.LeadToken, "gemini")
	require.NoError(t, err)
	membersPath := fmt.Sprintf("/projects/%d/members", p.PID)
	lead := NewHTTPClient(ctx.Router, ctx.LeadToken)

	t.Run("AddMember - Duplicate role conflicts", func(t *testing.T) {
		uid, _, err := gen.SignUp(ctx.Router, "dup")
		require.NoError(t, err)
		_, err = gen.AddMember(ctx.Router, ctx.LeadToken, p.PID, uid, "TESTER")
		require.NoError(t, err)

		resp, err := lead.POST(membersPath, membership.AddMemberInput{UserID: uid, Role: "TESTER"})
		require.NoError(t, err)
		assert.Equal(t, http.StatusConflict, resp.StatusCode)

		resp, err = lead.POST(membersPath, membership.AddMemberInput{UserID: uid, Role: "SCRIBE"})
		require.NoError(t, err)
		assert.Equal(t, http.StatusCreated, resp.StatusCode, "a second role is a second row")
	})

	t.Run("AddMember - Unknown user", func(t *testing.T) {
		resp, err := lead.POST(membersPath, membership.AddMemberInput{UserID: 999999, Role: "GUEST"})
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("UpdateMember and RemoveMember", func(t *testing.T) {
		uid, _, err := gen.SignUp(ctx.Router, "rm")
		require.NoError(t, err)
		m, err := gen.AddMember(ctx.Router, ctx.LeadToken, p.PID, uid, "GUEST")
		require.NoError(t, err)

		role := "DEVELOPER"
		resp, err := lead.PUT(fmt.Sprintf("%s/%d", membersPath, m.ID), membership.UpdateMemberInput{Role: &role})
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode, resp.GetErrorMessage())
		var updated membership.ProjectMember
		require.NoError(t, resp.DecodeJSON(&updated))
		assert.Equal(t, membership.Role("DEVELOPER"), updated.Role)

		resp, err = lead.DELETE(fmt.Sprintf("%s/%d", membersPath, m.ID))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		resp, err = lead.DELETE(fmt.Sprintf("%s/%d", membersPath, m.ID))
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("Invite and accept", func(t *testing.T) {
		uid, token, err := gen.SignUp(ctx.Router, "invitee")
		require.NoError(t, err)
		me, err := NewHTTPClient(ctx.Router, token).GET("/users/me")
		require.NoError(t, err)
		var profile struct {
			Email string `json:"email"`
		}
		require.NoError(t, me.DecodeJSON(&profile))

		resp, err := lead.POST(fmt.Sprintf("/projects/%d/invitations", p.PID), membership.InviteInput{
			Email: profile.Email,
			Role:  "SCRUM_MASTER",
		})
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode, resp.GetErrorMessage())
		var result membership.InviteResult
		require.NoError(t, resp.DecodeJSON(&result))

		link, err := url.Parse(result.Link)
		require.NoError(t, err)
		accept := map[string]string{"token": link.Query().Get("token")}

		resp, err = NewHTTPClient(ctx.Router, "").POST("/invitations/accept", accept)
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode, resp.GetErrorMessage())
		var m membership.ProjectMember
		require.NoError(t, resp.DecodeJSON(&m))
		assert.Equal(t, uid, m.UserID)
		assert.True(t, m.IsActive)

		// accepting twice reuses the row
		resp, err = NewHTTPClient(ctx.Router, "").POST("/invitations/accept", accept)
		require.NoError(t, err)
		var again membership.ProjectMember
		require.NoError(t, resp.DecodeJSON(&again))
		assert.Equal(t, m.ID, again.ID)

		// a scrum master may invite in turn
		resp, err = NewHTTPClient(ctx.Router, token).POST(fmt.Sprintf("/projects/%d/invitations", p.PID), membership.InviteInput{
			Email: "nobody-yet@test.com",
			Role:  "GUEST",
		})
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("Invite - Outsider cannot see project", func(t *testing.T) {
		resp, err := NewHTTPClient(ctx.Router, ctx.OutsiderToken).POST(fmt.Sprintf("/projects/%d/invitations", p.PID), membership.InviteInput{
			Email: "x@test.com",
			Role:  "GUEST",
		})
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}
