//go:build integration
// +build integration

package integration

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/linskybing/scrumish/internal/domain/project"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectHandler_Integration(t *testing.T) {
	ctx := GetTestContext()
	gen := NewTestDataGenerator()

	p, err := gen.CreateProject(ctx.Router, ctx.LeadToken, "apollo")
	require.NoError(t, err)
	path := fmt.Sprintf("/projects/%d", p.PID)

	t.Run("CreateProject - Caller becomes lead", func(t *testing.T) {
		require.NotNil(t, p.LeadID)
		assert.Equal(t, ctx.LeadID, *p.LeadID)
		assert.True(t, p.IsActive)
	})

	t.Run("GetProjects - Unauthorized without Token", func(t *testing.T) {
		resp, err := NewHTTPClient(ctx.Router, "").GET("/projects")
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("GetProjectByID - Hidden from outsiders", func(t *testing.T) {
		resp, err := NewHTTPClient(ctx.Router, ctx.OutsiderToken).GET(path)
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("GetProjectByID - Hidden from admins without membership", func(t *testing.T) {
		resp, err := NewHTTPClient(ctx.Router, ctx.AdminToken).GET(path)
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("CreateProject - Duplicate name", func(t *testing.T) {
		resp, err := NewHTTPClient(ctx.Router, ctx.LeadToken).POST("/projects", project.ProjectInput{
			Name:     p.Name,
			Type:     "KA",
			Category: "IT",
		})
		require.NoError(t, err)
		assert.Equal(t, http.StatusConflict, resp.StatusCode)
	})

	t.Run("CreateProject - Unknown type rejected", func(t *testing.T) {
		resp, err := NewHTTPClient(ctx.Router, ctx.LeadToken).POST("/projects", map[string]any{
			"name":     gen.Name("bad-type"),
			"type":     "ZZ",
			"category": "IT",
		})
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("UpdateProject - Duration derived", func(t *testing.T) {
		start, end := "2024-01-01", "2024-03-01"
		resp, err := NewHTTPClient(ctx.Router, ctx.LeadToken).PUT(path, project.ProjectInput{
			Name:      p.Name,
			Type:      "SC",
			Category:  "Software",
			StartDate: &start,
			EndDate:   &end,
		})
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode, resp.GetErrorMessage())

		var updated project.Project
		require.NoError(t, resp.DecodeJSON(&updated))
		require.NotNil(t, updated.Duration)
		assert.Equal(t, 60, *updated.Duration)
		require.NotNil(t, updated.LeadID, "lead is kept when omitted")
		assert.Equal(t, ctx.LeadID, *updated.LeadID)
	})

	t.Run("UpdateProject - Members cannot edit", func(t *testing.T) {
		_, err := gen.AddMember(ctx.Router, ctx.LeadToken, p.PID, ctx.MemberID, "DEVELOPER")
		require.NoError(t, err)

		resp, err := NewHTTPClient(ctx.Router, ctx.MemberToken).PUT(path, project.ProjectInput{
			Name:     p.Name,
			Type:     "SC",
			Category: "Software",
		})
		require.NoError(t, err)
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)

		resp, err = NewHTTPClient(ctx.Router, ctx.MemberToken).GET("/projects")
		require.NoError(t, err)
		var projects []project.Project
		require.NoError(t, resp.DecodeJSON(&projects))
		ids := make([]uint, 0, len(projects))
		for _, v := range projects {
			ids = append(ids, v.PID)
		}
		assert.Contains(t, ids, p.PID)
	})

	t.Run("DeleteProject - Lead only", func(t *testing.T) {
		other, err := gen.CreateProject(ctx.Router, ctx.LeadToken, "doomed")
		require.NoError(t, err)
		otherPath := fmt.Sprintf("/projects/%d", other.PID)

		resp, err := NewHTTPClient(ctx.Router, ctx.LeadToken).DELETE(otherPath)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		resp, err = NewHTTPClient(ctx.Router, ctx.LeadToken).GET(otherPath)
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}
