package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/scrumish/internal/application"
	"github.com/linskybing/scrumish/internal/domain/epic"
	"github.com/linskybing/scrumish/pkg/response"
)

type EpicHandler struct {
	svc *application.EpicService
}

func NewEpicHandler(svc *application.EpicService) *EpicHandler {
	return &EpicHandler{svc: svc}
}

// ListEpics godoc
// @Summary List project epics
// @Tags epics
// @Security BearerAuth
// @Produce json
// @Param id path uint true "Project ID"
// @Success 200 {array} epic.Epic
// @Router /projects/{id}/epics [get]
func (h *EpicHandler) ListEpics(c *gin.Context) {
	p, ok := currentProject(c)
	if !ok {
		return
	}
	epics, err := h.svc.ListEpics(p.PID)
	if err != nil {
		respondError(c, err)
		return
	}
	if epics == nil {
		epics = []epic.Epic{}
	}
	c.JSON(http.StatusOK, epics)
}

// GetEpic godoc
// @Summary Get epic with its issues
// @Tags epics
// @Security BearerAuth
// @Produce json
// @Param id path uint true "Project ID"
// @Param epic_id path uint true "Epic ID"
// @Success 200 {object} epic.Epic
// @Failure 404 {object} response.ErrorResponse "Epic not found"
// @Router /projects/{id}/epics/{epic_id} [get]
func (h *EpicHandler) GetEpic(c *gin.Context) {
	p, ok := currentProject(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "epic_id")
	if !ok {
		return
	}
	e, err := h.svc.GetEpic(p.PID, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, e)
}

// CreateEpic godoc
// @Summary Create epic
// @Tags epics
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path uint true "Project ID"
// @Param input body epic.EpicInput true "Epic"
// @Success 201 {object} epic.Epic
// @Failure 400 {object} response.ValidationErrorResponse "Bad request"
// @Router /projects/{id}/epics [post]
func (h *EpicHandler) CreateEpic(c *gin.Context) {
	p, ok := currentProject(c)
	if !ok {
		return
	}
	var input epic.EpicInput
	if !bind(c, &input) {
		return
	}
	e, err := h.svc.CreateEpic(c, p.PID, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, e)
}

// UpdateEpic godoc
// @Summary Replace epic fields and issue set
// @Tags epics
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path uint true "Project ID"
// @Param epic_id path uint true "Epic ID"
// @Param input body epic.EpicInput true "Epic"
// @Success 200 {object} epic.Epic
// @Failure 400 {object} response.ValidationErrorResponse "Bad request"
// @Failure 404 {object} response.ErrorResponse "Epic not found"
// @Router /projects/{id}/epics/{epic_id} [put]
func (h *EpicHandler) UpdateEpic(c *gin.Context) {
	p, ok := currentProject(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "epic_id")
	if !ok {
		return
	}
	var input epic.EpicInput
	if !bind(c, &input) {
		return
	}
	e, err := h.svc.UpdateEpic(c, p.PID, id, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, e)
}

// DeleteEpic godoc
// @Summary Delete epic
// @Tags epics
// @Security BearerAuth
// @Produce json
// @Param id path uint true "Project ID"
// @Param epic_id path uint true "Epic ID"
// @Success 200 {object} response.MessageResponse
// @Failure 404 {object} response.ErrorResponse "Epic not found"
// @Router /projects/{id}/epics/{epic_id} [delete]
func (h *EpicHandler) DeleteEpic(c *gin.Context) {
	p, ok := currentProject(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "epic_id")
	if !ok {
		return
	}
	if err := h.svc.DeleteEpic(c, p.PID, id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "epic deleted"})
}
