package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/linskybing/scrumish/internal/api/middleware"
	"github.com/linskybing/scrumish/internal/domain/project"
	"github.com/linskybing/scrumish/internal/domain/user"
	"github.com/linskybing/scrumish/internal/repository"
	"github.com/linskybing/scrumish/internal/repository/mock"
	"github.com/linskybing/scrumish/pkg/types"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func newEngine(t *testing.T, claims *types.Claims) (*gin.Engine, *mock.MockProjectRepo, *mock.MockUserRepo) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	projects := mock.NewMockProjectRepo(ctrl)
	users := mock.NewMockUserRepo(ctrl)
	auth := middleware.NewAuth(&repository.Repos{Project: projects, User: users})

	r := gin.New()
	r.Use(func(c *gin.Context) {
		if claims != nil {
			c.Set("claims", claims)
		}
		c.Next()
	})
	r.GET("/projects/:id", auth.ProjectAccess("id"), func(c *gin.Context) {
		p, ok := middleware.CurrentProject(c)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.String(http.StatusOK, p.Name)
	})
	r.GET("/admin", auth.Admin(), func(c *gin.Context) { c.Status(http.StatusNoContent) })
	return r, projects, users
}

func get(r *gin.Engine, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	r.ServeHTTP(rec, req)
	return rec
}

func TestProjectAccess(t *testing.T) {
	t.Run("anonymous caller sees not found", func(t *testing.T) {
		r, _, _ := newEngine(t, nil)
		assert.Equal(t, http.StatusNotFound, get(r, "/projects/10").Code)
	})

	t.Run("bad id", func(t *testing.T) {
		r, _, _ := newEngine(t, &types.Claims{UserID: 2})
		assert.Equal(t, http.StatusBadRequest, get(r, "/projects/abc").Code)
	})

	t.Run("invisible project", func(t *testing.T) {
		r, projects, _ := newEngine(t, &types.Claims{UserID: 2})
		projects.EXPECT().GetVisibleProject(uint(10), uint(2)).Return(project.Project{}, gorm.ErrRecordNotFound)

		assert.Equal(t, http.StatusNotFound, get(r, "/projects/10").Code)
	})

	t.Run("visible project is stored for handlers", func(t *testing.T) {
		r, projects, _ := newEngine(t, &types.Claims{UserID: 2})
		projects.EXPECT().GetVisibleProject(uint(10), uint(2)).Return(project.Project{PID: 10, Name: "Apollo"}, nil)

		rec := get(r, "/projects/10")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Apollo", rec.Body.String())
	})
}

func TestAdminReadsStoredFlag(t *testing.T) {
	t.Run("token claim alone is not enough", func(t *testing.T) {
		r, _, users := newEngine(t, &types.Claims{UserID: 3, IsAdmin: true})
		users.EXPECT().GetUserByID(uint(3)).Return(user.User{UID: 3, IsActive: true}, nil)

		assert.Equal(t, http.StatusForbidden, get(r, "/admin").Code)
	})

	t.Run("stored admin passes", func(t *testing.T) {
		r, _, users := newEngine(t, &types.Claims{UserID: 3})
		users.EXPECT().GetUserByID(uint(3)).Return(user.User{UID: 3, IsAdmin: true, IsActive: true}, nil)

		assert.Equal(t, http.StatusNoContent, get(r, "/admin").Code)
	})
}
