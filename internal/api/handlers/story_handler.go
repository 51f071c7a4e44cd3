package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/scrumish/internal/application"
	"github.com/linskybing/scrumish/internal/domain/story"
	"github.com/linskybing/scrumish/pkg/response"
)

type StoryHandler struct {
	svc *application.StoryService
}

func NewStoryHandler(svc *application.StoryService) *StoryHandler {
	return &StoryHandler{svc: svc}
}

// ListStories godoc
// @Summary List project user stories
// @Tags stories
// @Security BearerAuth
// @Produce json
// @Param id path uint true "Project ID"
// @Success 200 {array} story.UserStory
// @Router /projects/{id}/stories [get]
func (h *StoryHandler) ListStories(c *gin.Context) {
	p, ok := currentProject(c)
	if !ok {
		return
	}
	stories, err := h.svc.ListStories(p.PID)
	if err != nil {
		respondError(c, err)
		return
	}
	if stories == nil {
		stories = []story.UserStory{}
	}
	c.JSON(http.StatusOK, stories)
}

// GetStory godoc
// @Summary Get user story
// @Tags stories
// @Security BearerAuth
// @Produce json
// @Param id path uint true "Project ID"
// @Param story_id path uint true "Story ID"
// @Success 200 {object} story.UserStory
// @Failure 404 {object} response.ErrorResponse "User story not found"
// @Router /projects/{id}/stories/{story_id} [get]
func (h *StoryHandler) GetStory(c *gin.Context) {
	p, ok := currentProject(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "story_id")
	if !ok {
		return
	}
	st, err := h.svc.GetStory(p.PID, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, st)
}

// CreateStory godoc
// @Summary Create user story
// @Tags stories
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path uint true "Project ID"
// @Param input body story.UserStoryInput true "User story"
// @Success 201 {object} story.UserStory
// @Failure 400 {object} response.ValidationErrorResponse "Bad request"
// @Router /projects/{id}/stories [post]
func (h *StoryHandler) CreateStory(c *gin.Context) {
	p, ok := currentProject(c)
	if !ok {
		return
	}
	var input story.UserStoryInput
	if !bind(c, &input) {
		return
	}
	st, err := h.svc.CreateStory(c, p.PID, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, st)
}

// UpdateStory godoc
// @Summary Replace user story fields
// @Tags stories
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path uint true "Project ID"
// @Param story_id path uint true "Story ID"
// @Param input body story.UserStoryInput true "User story"
// @Success 200 {object} story.UserStory
// @Failure 400 {object} response.ValidationErrorResponse "Bad request"
// @Failure 404 {object} response.ErrorResponse "User story not found"
// @Router /projects/{id}/stories/{story_id} [put]
func (h *StoryHandler) UpdateStory(c *gin.Context) {
	p, ok := currentProject(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "story_id")
	if !ok {
		return
	}
	var input story.UserStoryInput
	if !bind(c, &input) {
		return
	}
	st, err := h.svc.UpdateStory(c, p.PID, id, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, st)
}

// DeleteStory godoc
// @Summary Delete user story
// @Tags stories
// @Security BearerAuth
// @Produce json
// @Param id path uint true "Project ID"
// @Param story_id path uint true "Story ID"
// @Success 200 {object} response.MessageResponse
// @Failure 404 {object} response.ErrorResponse "User story not found"
// @Router /projects/{id}/stories/{story_id} [delete]
func (h *StoryHandler) DeleteStory(c *gin.Context) {
	p, ok := currentProject(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "story_id")
	if !ok {
		return
	}
	if err := h.svc.DeleteStory(c, p.PID, id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "user story deleted"})
}

// ListCriteria godoc
// @Summary List acceptance criteria of a story
// @Tags stories
// @Security BearerAuth
// @Produce json
// @Param id path uint true "Project ID"
// @Param story_id path uint true "Story ID"
// @Success 200 {array} story.AcceptanceCriteria
// @Failure 404 {object} response.ErrorResponse "User story not found"
// @Router /projects/{id}/stories/{story_id}/criteria [get]
func (h *StoryHandler) ListCriteria(c *gin.Context) {
	p, ok := currentProject(c)
	if !ok {
		return
	}
	storyID, ok := pathID(c, "story_id")
	if !ok {
		return
	}
	list, err := h.svc.ListCriteria(p.PID, storyID)
	if err != nil {
		respondError(c, err)
		return
	}
	if list == nil {
		list = []story.AcceptanceCriteria{}
	}
	c.JSON(http.StatusOK, list)
}

// CreateCriteria godoc
// @Summary Add acceptance criteria to a story
// @Tags stories
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path uint true "Project ID"
// @Param story_id path uint true "Story ID"
// @Param input body story.CriteriaInput true "Criteria"
// @Success 201 {object} story.AcceptanceCriteria
// @Failure 400 {object} response.ValidationErrorResponse "Bad request"
// @Router /projects/{id}/stories/{story_id}/criteria [post]
func (h *StoryHandler) CreateCriteria(c *gin.Context) {
	p, ok := currentProject(c)
	if !ok {
		return
	}
	storyID, ok := pathID(c, "story_id")
	if !ok {
		return
	}
	var input story.CriteriaInput
	if !bind(c, &input) {
		return
	}
	a, err := h.svc.CreateCriteria(c, p.PID, storyID, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, a)
}

// UpdateCriteria godoc
// @Summary Replace acceptance criteria
// @Tags stories
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path uint true "Project ID"
// @Param story_id path uint true "Story ID"
// @Param criteria_id path uint true "Criteria ID"
// @Param input body story.CriteriaInput true "Criteria"
// @Success 200 {object} story.AcceptanceCriteria
// @Failure 404 {object} response.ErrorResponse "Acceptance criteria not found"
// @Router /projects/{id}/stories/{story_id}/criteria/{criteria_id} [put]
func (h *StoryHandler) UpdateCriteria(c *gin.Context) {
	p, ok := currentProject(c)
	if !ok {
		return
	}
	storyID, ok := pathID(c, "story_id")
	if !ok {
		return
	}
	id, ok := pathID(c, "criteria_id")
	if !ok {
		return
	}
	var input story.CriteriaInput
	if !bind(c, &input) {
		return
	}
	a, err := h.svc.UpdateCriteria(c, p.PID, storyID, id, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, a)
}

// DeleteCriteria godoc
// @Summary Delete acceptance criteria
// @Tags stories
// @Security BearerAuth
// @Produce json
// @Param id path uint true "Project ID"
// @Param story_id path uint true "Story ID"
// @Param criteria_id path uint true "Criteria ID"
// @Success 200 {object} response.MessageResponse
// @Failure 404 {object} response.ErrorResponse "Acceptance criteria not found"
// @Router /projects/{id}/stories/{story_id}/criteria/{criteria_id} [delete]
func (h *StoryHandler) DeleteCriteria(c *gin.Context) {
	p, ok := currentProject(c)
	if !ok {
		return
	}
	storyID, ok := pathID(c, "story_id")
	if !ok {
		return
	}
	id, ok := pathID(c, "criteria_id")
	if !ok {
		return
	}
	if err := h.svc.DeleteCriteria(c, p.PID, storyID, id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "acceptance criteria deleted"})
}
