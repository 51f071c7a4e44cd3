package middleware

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/linskybing/scrumish/internal/config"
	"github.com/linskybing/scrumish/internal/domain/project"
	"github.com/linskybing/scrumish/internal/repository"
	"github.com/linskybing/scrumish/pkg/response"
	"github.com/linskybing/scrumish/pkg/utils"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const projectKey = "project"

// Auth handles authorization middleware
type Auth struct {
	repos *repository.Repos
}

// NewAuth creates a new Auth middleware instance
func NewAuth(repos *repository.Repos) *Auth {
	return &Auth{repos: repos}
}

// Admin lets the request through only for users whose stored record is
// flagged admin. The token flag alone is not trusted.
func (a *Auth) Admin() gin.HandlerFunc {
	return func(c *gin.Context) {
		uid, err := utils.GetUserIDFromContext(c)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
			return
		}

		u, err := a.repos.User.GetUserByID(uid)
		if err != nil || !u.IsAdmin || !u.IsActive {
			c.AbortWithStatusJSON(http.StatusForbidden, response.ErrorResponse{Error: "Admin only"})
			return
		}
		c.Next()
	}
}

// ProjectAccess resolves the project named by param and answers 404 when
// the caller is anonymous or neither leads it nor holds a membership in it.
func (a *Auth) ProjectAccess(param string) gin.HandlerFunc {
	return func(c *gin.Context) {
		pid, err := utils.ParseIDParam(c, param)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid project id"})
			return
		}

		uid, err := utils.GetUserIDFromContext(c)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusNotFound, response.ErrorResponse{Error: "project not found"})
			return
		}

		p, err := a.repos.Project.GetVisibleProject(pid, uid)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.AbortWithStatusJSON(http.StatusNotFound, response.ErrorResponse{Error: "project not found"})
			return
		}
		if err != nil {
			log.WithError(err).WithField("project_id", pid).Error("project access lookup failed")
			c.AbortWithStatusJSON(http.StatusInternalServerError, response.ErrorResponse{Error: "internal error"})
			return
		}

		c.Set(projectKey, p)
		c.Next()
	}
}

// CurrentProject returns the project stored by ProjectAccess.
func CurrentProject(c *gin.Context) (project.Project, bool) {
	v, ok := c.Get(projectKey)
	if !ok {
		return project.Project{}, false
	}
	p, ok := v.(project.Project)
	return p, ok
}

// CORSMiddleware allows origins starting with any configured prefix.
func CORSMiddleware() gin.HandlerFunc {
	origins := config.AllowedOrigins
	return cors.New(cors.Config{
		AllowOriginFunc: func(origin string) bool {
			for _, prefix := range origins {
				if strings.HasPrefix(origin, prefix) {
					return true
				}
			}
			return false
		},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	})
}
