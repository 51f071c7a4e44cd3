package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/scrumish/internal/application"
	"github.com/linskybing/scrumish/internal/domain/issue"
	"github.com/linskybing/scrumish/pkg/response"
)

type IssueHandler struct {
	svc *application.IssueService
}

func NewIssueHandler(svc *application.IssueService) *IssueHandler {
	return &IssueHandler{svc: svc}
}

// ListIssues godoc
// @Summary List project issues
// @Tags issues
// @Security BearerAuth
// @Produce json
// @Param id path uint true "Project ID"
// @Param status query string false "Status filter"
// @Param type query string false "Type filter"
// @Param priority query string false "Priority filter"
// @Param assignee_id query uint false "Assignee filter"
// @Success 200 {array} issue.Issue
// @Failure 404 {object} response.ErrorResponse "Project not found"
// @Router /projects/{id}/issues [get]
func (h *IssueHandler) ListIssues(c *gin.Context) {
	p, ok := currentProject(c)
	if !ok {
		return
	}
	var filter issue.IssueFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid filter"})
		return
	}
	issues, err := h.svc.ListIssues(p.PID, filter)
	if err != nil {
		respondError(c, err)
		return
	}
	if issues == nil {
		issues = []issue.Issue{}
	}
	c.JSON(http.StatusOK, issues)
}

// GetIssue godoc
// @Summary Get issue
// @Tags issues
// @Security BearerAuth
// @Produce json
// @Param id path uint true "Project ID"
// @Param issue_id path uint true "Issue ID"
// @Success 200 {object} issue.Issue
// @Failure 404 {object} response.ErrorResponse "Issue not found"
// @Router /projects/{id}/issues/{issue_id} [get]
func (h *IssueHandler) GetIssue(c *gin.Context) {
	p, ok := currentProject(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "issue_id")
	if !ok {
		return
	}
	i, err := h.svc.GetIssue(p.PID, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, i)
}

// CreateIssue godoc
// @Summary Create issue
// @Tags issues
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path uint true "Project ID"
// @Param input body issue.IssueInput true "Issue"
// @Success 201 {object} issue.Issue
// @Failure 400 {object} response.ValidationErrorResponse "Bad request or dependency cycle"
// @Router /projects/{id}/issues [post]
func (h *IssueHandler) CreateIssue(c *gin.Context) {
	p, ok := currentProject(c)
	if !ok {
		return
	}
	var input issue.IssueInput
	if !bind(c, &input) {
		return
	}
	i, err := h.svc.CreateIssue(c, p.PID, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, i)
}

// UpdateIssue godoc
// @Summary Replace issue fields
// @Tags issues
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path uint true "Project ID"
// @Param issue_id path uint true "Issue ID"
// @Param input body issue.IssueInput true "Issue"
// @Success 200 {object} issue.Issue
// @Failure 400 {object} response.ValidationErrorResponse "Bad request or dependency cycle"
// @Failure 404 {object} response.ErrorResponse "Issue not found"
// @Router /projects/{id}/issues/{issue_id} [put]
func (h *IssueHandler) UpdateIssue(c *gin.Context) {
	p, ok := currentProject(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "issue_id")
	if !ok {
		return
	}
	var input issue.IssueInput
	if !bind(c, &input) {
		return
	}
	i, err := h.svc.UpdateIssue(c, p.PID, id, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, i)
}

// DeleteIssue godoc
// @Summary Delete issue
// @Tags issues
// @Security BearerAuth
// @Produce json
// @Param id path uint true "Project ID"
// @Param issue_id path uint true "Issue ID"
// @Success 200 {object} response.MessageResponse
// @Failure 404 {object} response.ErrorResponse "Issue not found"
// @Failure 409 {object} response.ErrorResponse "Other issues depend on it"
// @Router /projects/{id}/issues/{issue_id} [delete]
func (h *IssueHandler) DeleteIssue(c *gin.Context) {
	p, ok := currentProject(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "issue_id")
	if !ok {
		return
	}
	if err := h.svc.DeleteIssue(c, p.PID, id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "issue deleted"})
}

// ListAttachments godoc
// @Summary List issue attachments
// @Tags issues
// @Security BearerAuth
// @Produce json
// @Param id path uint true "Project ID"
// @Param issue_id path uint true "Issue ID"
// @Success 200 {array} issue.Attachment
// @Failure 404 {object} response.ErrorResponse "Issue not found"
// @Router /projects/{id}/issues/{issue_id}/attachments [get]
func (h *IssueHandler) ListAttachments(c *gin.Context) {
	p, ok := currentProject(c)
	if !ok {
		return
	}
	issueID, ok := pathID(c, "issue_id")
	if !ok {
		return
	}
	list, err := h.svc.ListAttachments(p.PID, issueID)
	if err != nil {
		respondError(c, err)
		return
	}
	if list == nil {
		list = []issue.Attachment{}
	}
	c.JSON(http.StatusOK, list)
}

// UploadAttachment godoc
// @Summary Upload an attachment
// @Tags issues
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param id path uint true "Project ID"
// @Param issue_id path uint true "Issue ID"
// @Param file formData file true "File"
// @Param description formData string false "Description"
// @Success 201 {object} issue.Attachment
// @Failure 400 {object} response.ValidationErrorResponse "File missing"
// @Failure 404 {object} response.ErrorResponse "Issue not found"
// @Failure 503 {object} response.ErrorResponse "Object storage disabled"
// @Router /projects/{id}/issues/{issue_id}/attachments [post]
func (h *IssueHandler) UploadAttachment(c *gin.Context) {
	p, ok := currentProject(c)
	if !ok {
		return
	}
	issueID, ok := pathID(c, "issue_id")
	if !ok {
		return
	}
	up, done, ok := formFile(c, "file", true)
	if !ok {
		return
	}
	defer done()

	a, err := h.svc.AddAttachment(c, p.PID, issueID, *up, c.PostForm("description"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, a)
}

// DownloadAttachment godoc
// @Summary Download an attachment
// @Tags issues
// @Security BearerAuth
// @Produce octet-stream
// @Param id path uint true "Project ID"
// @Param issue_id path uint true "Issue ID"
// @Param attachment_id path uint true "Attachment ID"
// @Success 200 {file} file
// @Failure 404 {object} response.ErrorResponse "Attachment not found"
// @Router /projects/{id}/issues/{issue_id}/attachments/{attachment_id} [get]
func (h *IssueHandler) DownloadAttachment(c *gin.Context) {
	p, ok := currentProject(c)
	if !ok {
		return
	}
	issueID, ok := pathID(c, "issue_id")
	if !ok {
		return
	}
	id, ok := pathID(c, "attachment_id")
	if !ok {
		return
	}
	a, body, err := h.svc.OpenAttachment(c, p.PID, issueID, id)
	if err != nil {
		respondError(c, err)
		return
	}
	sendFile(c, body, a.Size, a.ContentType, a.Filename)
}

// DeleteAttachment godoc
// @Summary Delete an attachment
// @Tags issues
// @Security BearerAuth
// @Produce json
// @Param id path uint true "Project ID"
// @Param issue_id path uint true "Issue ID"
// @Param attachment_id path uint true "Attachment ID"
// @Success 200 {object} response.MessageResponse
// @Failure 404 {object} response.ErrorResponse "Attachment not found"
// @Router /projects/{id}/issues/{issue_id}/attachments/{attachment_id} [delete]
func (h *IssueHandler) DeleteAttachment(c *gin.Context) {
	p, ok := currentProject(c)
	if !ok {
		return
	}
	issueID, ok := pathID(c, "issue_id")
	if !ok {
		return
	}
	id, ok := pathID(c, "attachment_id")
	if !ok {
		return
	}
	if err := h.svc.DeleteAttachment(c, p.PID, issueID, id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "attachment deleted"})
}
