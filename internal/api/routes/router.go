package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	_ "github.com/linskybing/scrumish/docs"
	"github.com/linskybing/scrumish/internal/api/handlers"
	"github.com/linskybing/scrumish/internal/api/middleware"
	"github.com/linskybing/scrumish/internal/application"
	"github.com/linskybing/scrumish/internal/repository"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func RegisterRoutes(r *gin.Engine, svc *application.Services, repos *repository.Repos) {
	h := handlers.New(svc)
	authMiddleware := middleware.NewAuth(repos)

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	r.POST("/register", h.User.Register)
	r.POST("/login", h.User.Login)
	r.POST("/logout", h.User.Logout)
	r.GET("/invitations/accept", h.Membership.AcceptInvitation)
	r.POST("/invitations/accept", h.Membership.AcceptInvitation)
	r.GET("/site", h.Settings.GetSite)
	r.GET("/choices", h.Settings.GetChoices)

	auth := r.Group("/")
	auth.Use(middleware.JWTAuthMiddleware())
	{
		auth.GET("/users/me", h.User.Me)
		auth.PUT("/users/me", h.User.UpdateMe)
		auth.GET("/users", h.User.ListUsers)

		auth.GET("/projects", h.Project.GetProjects)
		auth.POST("/projects", h.Project.CreateProject)

		project := auth.Group("/projects/:id", authMiddleware.ProjectAccess("id"))
		ProjectRoutes(project, h)

		admin := auth.Group("/admin", authMiddleware.Admin())
		AdminRoutes(admin, h)
	}
}
