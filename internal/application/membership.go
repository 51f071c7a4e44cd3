package application

import (
	"context"
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/scrumish/internal/config"
	"github.com/linskybing/scrumish/internal/domain/membership"
	"github.com/linskybing/scrumish/internal/domain/project"
	"github.com/linskybing/scrumish/internal/domain/shared"
	"github.com/linskybing/scrumish/internal/repository"
	"github.com/linskybing/scrumish/pkg/invite"
	"github.com/linskybing/scrumish/pkg/mailer"
	"github.com/linskybing/scrumish/pkg/metrics"
	"github.com/linskybing/scrumish/pkg/utils"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrMemberNotFound     = errors.New("member not found")
	ErrMemberExists       = errors.New("user already holds this role in the project")
	ErrInvalidInvitation  = errors.New("invalid invitation")
	ErrInvitationDelivery = errors.New("failed to deliver invitation")
)

type MembershipService struct {
	Repos    *repository.Repos
	signer   *invite.Signer
	notifier mailer.Notifier
}

func NewMembershipService(repos *repository.Repos, signer *invite.Signer, notifier mailer.Notifier) *MembershipService {
	return &MembershipService{
		Repos:    repos,
		signer:   signer,
		notifier: notifier,
	}
}

func (s *MembershipService) ListMembers(projectID uint) ([]membership.ProjectMember, error) {
	return s.Repos.Member.ListMembers(projectID)
}

func (s *MembershipService) AddMember(c *gin.Context, p project.Project, input membership.AddMemberInput) (membership.ProjectMember, error) {
	if err := s.requireLead(c, p); err != nil {
		return membership.ProjectMember{}, err
	}
	if _, err := s.Repos.User.GetUserByID(input.UserID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return membership.ProjectMember{}, shared.NewValidationError("user_id", "user not found")
		}
		return membership.ProjectMember{}, err
	}

	m := membership.ProjectMember{
		ProjectID: p.PID,
		UserID:    input.UserID,
		Role:      membership.RoleDeveloper,
		IsActive:  boolOr(input.IsActive, true),
	}
	if input.Role != "" {
		m.Role = membership.Role(input.Role)
	}
	if err := s.Repos.Member.CreateMember(&m); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return membership.ProjectMember{}, ErrMemberExists
		}
		return membership.ProjectMember{}, err
	}

	utils.LogAuditWithConsole(c, "create", "project_member", idString(m.ID), nil, m, "member added", s.Repos.Audit)
	return m, nil
}

func (s *MembershipService) UpdateMember(c *gin.Context, p project.Project, memberID uint, input membership.UpdateMemberInput) (membership.ProjectMember, error) {
	if err := s.requireLead(c, p); err != nil {
		return membership.ProjectMember{}, err
	}
	m, err := s.Repos.Member.GetMember(p.PID, memberID)
	if err != nil {
		return membership.ProjectMember{}, notFound(err, ErrMemberNotFound)
	}
	before := m

	if input.Role != nil {
		m.Role = membership.Role(*input.Role)
	}
	if input.IsActive != nil {
		m.IsActive = *input.IsActive
	}
	m.User = nil
	if err := s.Repos.Member.UpdateMember(&m); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return membership.ProjectMember{}, ErrMemberExists
		}
		return membership.ProjectMember{}, err
	}

	utils.LogAuditWithConsole(c, "update", "project_member", idString(m.ID), before, m, "member updated", s.Repos.Audit)
	return m, nil
}

func (s *MembershipService) RemoveMember(c *gin.Context, p project.Project, memberID uint) error {
	if err := s.requireLead(c, p); err != nil {
		return err
	}
	m, err := s.Repos.Member.GetMember(p.PID, memberID)
	if err != nil {
		return notFound(err, ErrMemberNotFound)
	}
	if err := s.Repos.Member.DeleteMember(m.ID); err != nil {
		return err
	}
	utils.LogAuditWithConsole(c, "delete", "project_member", idString(m.ID), m, nil, "member removed", s.Repos.Audit)
	return nil
}

// Invite mails a signed acceptance link. Nothing is stored until the
// invitee accepts.
func (s *MembershipService) Invite(c *gin.Context, p project.Project, input membership.InviteInput) (membership.InviteResult, error) {
	if err := s.requireInviter(c, p); err != nil {
		return membership.InviteResult{}, err
	}

	token, err := s.signer.Sign(p.PID, input.Email, input.Role)
	if err != nil {
		return membership.InviteResult{}, err
	}
	link := invite.Link(config.PublicBaseURL, token)

	msg := mailer.Invitation(p.Name, input.Role, link, input.Email)
	if err := s.notifier.Send(requestContext(c), msg); err != nil {
		log.WithError(err).WithFields(log.Fields{
			"project_id": p.PID,
			"email":      input.Email,
		}).Error("invitation delivery failed")
		return membership.InviteResult{}, ErrInvitationDelivery
	}
	metrics.InvitationsSent.Inc()

	result := membership.InviteResult{
		ProjectID: p.PID,
		Email:     input.Email,
		Role:      membership.Role(input.Role),
	}
	if !config.IsProduction {
		result.Link = link
	}

	utils.LogAuditWithConsole(c, "invite", "project_member", "", nil, result, "invitation sent", s.Repos.Audit)
	return result, nil
}

// AcceptToken verifies an invitation token and applies it.
func (s *MembershipService) AcceptToken(c *gin.Context, token string) (membership.ProjectMember, error) {
	claims, err := s.signer.Parse(token)
	if err != nil {
		metrics.InvitationsAccepted.WithLabelValues("invalid").Inc()
		return membership.ProjectMember{}, ErrInvalidInvitation
	}
	return s.Accept(c, membership.Invitation{
		ProjectID: claims.ProjectID,
		Email:     claims.Email,
		Role:      membership.Role(claims.Role),
	})
}

// Accept makes the invited user an active member with the invited role.
// An existing row with that role is reactivated; otherwise the oldest row of
// the pair is repurposed, and only a user with no rows gets a new one.
func (s *MembershipService) Accept(c *gin.Context, inv membership.Invitation) (membership.ProjectMember, error) {
	if !inv.Role.Valid() {
		metrics.InvitationsAccepted.WithLabelValues("invalid").Inc()
		return membership.ProjectMember{}, ErrInvalidInvitation
	}
	u, err := s.Repos.User.GetUserByEmail(inv.Email)
	if err != nil {
		metrics.InvitationsAccepted.WithLabelValues("invalid").Inc()
		return membership.ProjectMember{}, notFound(err, ErrInvalidInvitation)
	}
	if _, err := s.Repos.Project.GetProjectByID(inv.ProjectID); err != nil {
		metrics.InvitationsAccepted.WithLabelValues("invalid").Inc()
		return membership.ProjectMember{}, notFound(err, ErrInvalidInvitation)
	}

	m, err := s.upsertMember(inv.ProjectID, u.UID, inv.Role)
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		// a concurrent accept inserted the row first; the retry sees it
		m, err = s.upsertMember(inv.ProjectID, u.UID, inv.Role)
	}
	if err != nil {
		return membership.ProjectMember{}, err
	}

	metrics.InvitationsAccepted.WithLabelValues("accepted").Inc()
	utils.LogAuditWithConsole(c, "accept", "project_member", idString(m.ID), nil, m, "invitation accepted", s.Repos.Audit)
	return m, nil
}

func (s *MembershipService) upsertMember(projectID, userID uint, role membership.Role) (membership.ProjectMember, error) {
	var result membership.ProjectMember
	err := s.Repos.ExecTx(func(tx *repository.Repos) error {
		rows, err := tx.Member.LockByProjectAndUser(projectID, userID)
		if err != nil {
			return err
		}
		for _, row := range rows {
			if row.Role == role {
				row.IsActive = true
				result = row
				return tx.Member.UpdateMember(&result)
			}
		}
		if len(rows) > 0 {
			result = rows[0]
			result.Role = role
			result.IsActive = true
			return tx.Member.UpdateMember(&result)
		}
		result = membership.ProjectMember{
			ProjectID: projectID,
			UserID:    userID,
			Role:      role,
			IsActive:  true,
		}
		return tx.Member.CreateMember(&result)
	})
	return result, err
}

// requireLead allows the project lead and admins.
func (s *MembershipService) requireLead(c *gin.Context, p project.Project) error {
	uid, err := callerID(c)
	if err != nil {
		return err
	}
	if p.IsLead(uid) {
		return nil
	}
	admin, err := isAdmin(s.Repos, uid)
	if err != nil {
		return err
	}
	if !admin {
		return ErrForbidden
	}
	return nil
}

// requireInviter additionally allows active product owners and scrum masters.
func (s *MembershipService) requireInviter(c *gin.Context, p project.Project) error {
	if err := s.requireLead(c, p); !errors.Is(err, ErrForbidden) {
		return err
	}
	uid, _ := callerID(c)
	ok, err := s.Repos.Member.HasRole(p.PID, uid, membership.ManagingRoles)
	if err != nil {
		return err
	}
	if !ok {
		return ErrForbidden
	}
	return nil
}

func requestContext(c *gin.Context) context.Context {
	if c != nil && c.Request != nil {
		return c.Request.Context()
	}
	return context.Background()
}
