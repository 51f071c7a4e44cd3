package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/scrumish/internal/application"
	"github.com/linskybing/scrumish/internal/domain/membership"
	"github.com/linskybing/scrumish/pkg/response"
)

type MembershipHandler struct {
	svc *application.MembershipService
}

func NewMembershipHandler(svc *application.MembershipService) *MembershipHandler {
	return &MembershipHandler{svc: svc}
}

// ListMembers godoc
// @Summary List project members
// @Tags members
// @Security BearerAuth
// @Produce json
// @Param id path uint true "Project ID"
// @Success 200 {array} membership.ProjectMember
// @Failure 404 {object} response.ErrorResponse "Project not found"
// @Router /projects/{id}/members [get]
func (h *MembershipHandler) ListMembers(c *gin.Context) {
	p, ok := currentProject(c)
	if !ok {
		return
	}
	members, err := h.svc.ListMembers(p.PID)
	if err != nil {
		respondError(c, err)
		return
	}
	if members == nil {
		members = []membership.ProjectMember{}
	}
	c.JSON(http.StatusOK, members)
}

// AddMember godoc
// @Summary Add a user to the project
// @Tags members
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path uint true "Project ID"
// @Param input body membership.AddMemberInput true "Member"
// @Success 201 {object} membership.ProjectMember
// @Failure 400 {object} response.ValidationErrorResponse "Bad request"
// @Failure 403 {object} response.ErrorResponse "Only the lead may add members"
// @Failure 409 {object} response.ErrorResponse "User already holds this role"
// @Router /projects/{id}/members [post]
func (h *MembershipHandler) AddMember(c *gin.Context) {
	p, ok := currentProject(c)
	if !ok {
		return
	}
	var input membership.AddMemberInput
	if !bind(c, &input) {
		return
	}
	m, err := h.svc.AddMember(c, p, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, m)
}

// UpdateMember godoc
// @Summary Change a member's role or active flag
// @Tags members
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path uint true "Project ID"
// @Param member_id path uint true "Member ID"
// @Param input body membership.UpdateMemberInput true "Member fields"
// @Success 200 {object} membership.ProjectMember
// @Failure 403 {object} response.ErrorResponse "Only the lead may change members"
// @Failure 404 {object} response.ErrorResponse "Member not found"
// @Router /projects/{id}/members/{member_id} [put]
func (h *MembershipHandler) UpdateMember(c *gin.Context) {
	p, ok := currentProject(c)
	if !ok {
		return
	}
	memberID, ok := pathID(c, "member_id")
	if !ok {
		return
	}
	var input membership.UpdateMemberInput
	if !bind(c, &input) {
		return
	}
	m, err := h.svc.UpdateMember(c, p, memberID, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, m)
}

// RemoveMember godoc
// @Summary Remove a member row
// @Tags members
// @Security BearerAuth
// @Produce json
// @Param id path uint true "Project ID"
// @Param member_id path uint true "Member ID"
// @Success 200 {object} response.MessageResponse
// @Failure 403 {object} response.ErrorResponse "Only the lead may remove members"
// @Failure 404 {object} response.ErrorResponse "Member not found"
// @Router /projects/{id}/members/{member_id} [delete]
func (h *MembershipHandler) RemoveMember(c *gin.Context) {
	p, ok := currentProject(c)
	if !ok {
		return
	}
	memberID, ok := pathID(c, "member_id")
	if !ok {
		return
	}
	if err := h.svc.RemoveMember(c, p, memberID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "member removed"})
}

// Invite godoc
// @Summary Invite someone by email
// @Description Lead, admin, product owners and scrum masters may invite. The link is only echoed outside production.
// @Tags members
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path uint true "Project ID"
// @Param input body membership.InviteInput true "Invitation"
// @Success 200 {object} membership.InviteResult
// @Failure 400 {object} response.ValidationErrorResponse "Bad request"
// @Failure 403 {object} response.ErrorResponse "Not allowed to invite"
// @Failure 502 {object} response.ErrorResponse "Mail delivery failed"
// @Router /projects/{id}/invitations [post]
func (h *MembershipHandler) Invite(c *gin.Context) {
	p, ok := currentProject(c)
	if !ok {
		return
	}
	var input membership.InviteInput
	if !bind(c, &input) {
		return
	}
	result, err := h.svc.Invite(c, p, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

type acceptInput struct {
	Token string `json:"token" form:"token" binding:"required"`
}

// AcceptInvitation godoc
// @Summary Accept an invitation
// @Tags members
// @Accept json
// @Produce json
// @Param token query string true "Invitation token"
// @Success 200 {object} membership.ProjectMember
// @Failure 400 {object} response.ErrorResponse "Invalid invitation"
// @Router /invitations/accept [get]
// @Router /invitations/accept [post]
func (h *MembershipHandler) AcceptInvitation(c *gin.Context) {
	var input acceptInput
	if input.Token = c.Query("token"); input.Token == "" && !bind(c, &input) {
		return
	}
	m, err := h.svc.AcceptToken(c, input.Token)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, m)
}
