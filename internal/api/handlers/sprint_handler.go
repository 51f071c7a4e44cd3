package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/scrumish/internal/application"
	"github.com/linskybing/scrumish/internal/domain/sprint"
	"github.com/linskybing/scrumish/pkg/response"
)

type SprintHandler struct {
	svc *application.SprintService
}

func NewSprintHandler(svc *application.SprintService) *SprintHandler {
	return &SprintHandler{svc: svc}
}

// ListSprints godoc
// @Summary List project sprints
// @Tags sprints
// @Security BearerAuth
// @Produce json
// @Param id path uint true "Project ID"
// @Success 200 {array} sprint.Sprint
// @Router /projects/{id}/sprints [get]
func (h *SprintHandler) ListSprints(c *gin.Context) {
	p, ok := currentProject(c)
	if !ok {
		return
	}
	sprints, err := h.svc.ListSprints(p.PID)
	if err != nil {
		respondError(c, err)
		return
	}
	if sprints == nil {
		sprints = []sprint.Sprint{}
	}
	c.JSON(http.StatusOK, sprints)
}

// GetSprint godoc
// @Summary Get sprint with its issues
// @Tags sprints
// @Security BearerAuth
// @Produce json
// @Param id path uint true "Project ID"
// @Param sprint_id path uint true "Sprint ID"
// @Success 200 {object} sprint.Sprint
// @Failure 404 {object} response.ErrorResponse "Sprint not found"
// @Router /projects/{id}/sprints/{sprint_id} [get]
func (h *SprintHandler) GetSprint(c *gin.Context) {
	p, ok := currentProject(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "sprint_id")
	if !ok {
		return
	}
	sp, err := h.svc.GetSprint(p.PID, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, sp)
}

// CreateSprint godoc
// @Summary Create sprint
// @Tags sprints
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path uint true "Project ID"
// @Param input body sprint.SprintInput true "Sprint"
// @Success 201 {object} sprint.Sprint
// @Failure 400 {object} response.ValidationErrorResponse "Bad request"
// @Router /projects/{id}/sprints [post]
func (h *SprintHandler) CreateSprint(c *gin.Context) {
	p, ok := currentProject(c)
	if !ok {
		return
	}
	var input sprint.SprintInput
	if !bind(c, &input) {
		return
	}
	sp, err := h.svc.CreateSprint(c, p.PID, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, sp)
}

// UpdateSprint godoc
// @Summary Replace sprint fields and issue set
// @Tags sprints
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path uint true "Project ID"
// @Param sprint_id path uint true "Sprint ID"
// @Param input body sprint.SprintInput true "Sprint"
// @Success 200 {object} sprint.Sprint
// @Failure 400 {object} response.ValidationErrorResponse "Bad request"
// @Failure 404 {object} response.ErrorResponse "Sprint not found"
// @Router /projects/{id}/sprints/{sprint_id} [put]
func (h *SprintHandler) UpdateSprint(c *gin.Context) {
	p, ok := currentProject(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "sprint_id")
	if !ok {
		return
	}
	var input sprint.SprintInput
	if !bind(c, &input) {
		return
	}
	sp, err := h.svc.UpdateSprint(c, p.PID, id, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, sp)
}

// DeleteSprint godoc
// @Summary Delete sprint
// @Tags sprints
// @Security BearerAuth
// @Produce json
// @Param id path uint true "Project ID"
// @Param sprint_id path uint true "Sprint ID"
// @Success 200 {object} response.MessageResponse
// @Failure 404 {object} response.ErrorResponse "Sprint not found"
// @Router /projects/{id}/sprints/{sprint_id} [delete]
func (h *SprintHandler) DeleteSprint(c *gin.Context) {
	p, ok := currentProject(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "sprint_id")
	if !ok {
		return
	}
	if err := h.svc.DeleteSprint(c, p.PID, id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "sprint deleted"})
}
