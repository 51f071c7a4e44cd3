package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/scrumish/internal/application"
	"github.com/linskybing/scrumish/internal/domain/project"
	"github.com/linskybing/scrumish/pkg/response"
)

type ProjectHandler struct {
	svc *application.ProjectService
}

func NewProjectHandler(svc *application.ProjectService) *ProjectHandler {
	return &ProjectHandler{svc: svc}
}

// GetProjects godoc
// @Summary List projects visible to the current user
// @Tags projects
// @Security BearerAuth
// @Produce json
// @Success 200 {array} project.Project
// @Failure 401 {object} response.ErrorResponse "Unauthorized"
// @Failure 500 {object} response.ErrorResponse "Internal server error"
// @Router /projects [get]
func (h *ProjectHandler) GetProjects(c *gin.Context) {
	projects, err := h.svc.ListProjects(c)
	if err != nil {
		respondError(c, err)
		return
	}
	if projects == nil {
		projects = []project.Project{}
	}
	c.JSON(http.StatusOK, projects)
}

// GetProjectByID godoc
// @Summary Get project by ID
// @Tags projects
// @Security BearerAuth
// @Produce json
// @Param id path uint true "Project ID"
// @Success 200 {object} project.Project
// @Failure 400 {object} response.ErrorResponse "Invalid project id"
// @Failure 404 {object} response.ErrorResponse "Project not found"
// @Router /projects/{id} [get]
func (h *ProjectHandler) GetProjectByID(c *gin.Context) {
	p, ok := currentProject(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, p)
}

// CreateProject godoc
// @Summary Create a new project
// @Description The caller becomes lead when lead_id is omitted.
// @Tags projects
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param input body project.ProjectInput true "Project"
// @Success 201 {object} project.Project
// @Failure 400 {object} response.ValidationErrorResponse "Bad request"
// @Failure 409 {object} response.ErrorResponse "Project name already taken"
// @Router /projects [post]
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	var input project.ProjectInput
	if !bind(c, &input) {
		return
	}
	p, err := h.svc.CreateProject(c, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, p)
}

// UpdateProject godoc
// @Summary Replace project fields
// @Tags projects
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path uint true "Project ID"
// @Param input body project.ProjectInput true "Project"
// @Success 200 {object} project.Project
// @Failure 400 {object} response.ValidationErrorResponse "Bad request"
// @Failure 403 {object} response.ErrorResponse "Only the lead may update"
// @Failure 404 {object} response.ErrorResponse "Project not found"
// @Failure 409 {object} response.ErrorResponse "Project name already taken"
// @Router /projects/{id} [put]
func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	current, ok := currentProject(c)
	if !ok {
		return
	}
	var input project.ProjectInput
	if !bind(c, &input) {
		return
	}
	p, err := h.svc.UpdateProject(c, current.PID, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// DeleteProject godoc
// @Summary Delete project and everything under it
// @Tags projects
// @Security BearerAuth
// @Produce json
// @Param id path uint true "Project ID"
// @Success 200 {object} response.MessageResponse "Project deleted"
// @Failure 403 {object} response.ErrorResponse "Only the lead may delete"
// @Failure 404 {object} response.ErrorResponse "Project not found"
// @Router /projects/{id} [delete]
func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	current, ok := currentProject(c)
	if !ok {
		return
	}
	if err := h.svc.DeleteProject(c, current.PID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "project deleted"})
}
