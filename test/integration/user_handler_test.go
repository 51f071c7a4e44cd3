//go:build integration
// +build integration

package integration

import (
	"net/http"
	"testing"

	"github.com/linskybing/scrumish/internal/domain/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserHandler_Integration(t *testing.T) {
	ctx := GetTestContext()

	t.Run("GetUsers - Success for All Users", func(t *testing.T) {
		resp, err := NewHTTPClient(ctx.Router, ctx.MemberToken).GET("/users")
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var users []user.UserDTO
		require.NoError(t, resp.DecodeJSON(&users))
		assert.GreaterOrEqual(t, len(users), 4)
	})

	t.Run("GetUsers - Unauthorized without Token", func(t *testing.T) {
		resp, err := NewHTTPClient(ctx.Router, "").GET("/users")
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("Me - Returns own profile", func(t *testing.T) {
		resp, err := NewHTTPClient(ctx.Router, ctx.OutsiderToken).GET("/users/me")
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var profile user.Profile
		require.NoError(t, resp.DecodeJSON(&profile))
		assert.Equal(t, ctx.OutsiderID, profile.UID)
		assert.Equal(t, 0, profile.ProjectCount)
	})

	t.Run("UpdateMe - Password change needs old password", func(t *testing.T) {
		_, token, err := NewTestDataGenerator().SignUp(ctx.Router, "pw")
		require.NoError(t, err)
		client := NewHTTPClient(ctx.Router, token)

		newPass := "newpassword456"
		resp, err := client.PUT("/users/me", user.UpdateUserInput{Password: &newPass})
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

		wrong := "not-my-password"
		resp, err = client.PUT("/users/me", user.UpdateUserInput{OldPassword: &wrong, Password: &newPass})
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

		old := "password123"
		resp, err = client.PUT("/users/me", user.UpdateUserInput{OldPassword: &old, Password: &newPass})
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("Logout - Clears cookie", func(t *testing.T) {
		resp, err := NewHTTPClient(ctx.Router, "").POST("/logout", nil)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Contains(t, resp.Headers.Get("Set-Cookie"), "token=")
	})
}
