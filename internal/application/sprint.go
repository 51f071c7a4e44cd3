package application

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/scrumish/internal/domain/shared"
	"github.com/linskybing/scrumish/internal/domain/sprint"
	"github.com/linskybing/scrumish/internal/repository"
	"github.com/linskybing/scrumish/pkg/utils"
)

var ErrSprintNotFound = errors.New("sprint not found")

type SprintService struct {
	Repos *repository.Repos
	now   func() time.Time
}

func NewSprintService(repos *repository.Repos) *SprintService {
	return &SprintService{
		Repos: repos,
		now:   time.Now,
	}
}

func (s *SprintService) ListSprints(projectID uint) ([]sprint.Sprint, error) {
	return s.Repos.Sprint.ListSprints(projectID)
}

func (s *SprintService) GetSprint(projectID, id uint) (sprint.Sprint, error) {
	sp, err := s.Repos.Sprint.GetSprint(projectID, id)
	if err != nil {
		return sprint.Sprint{}, notFound(err, ErrSprintNotFound)
	}
	return sp, nil
}

func (s *SprintService) CreateSprint(c *gin.Context, projectID uint, input sprint.SprintInput) (sprint.Sprint, error) {
	uid, err := callerID(c)
	if err != nil {
		return sprint.Sprint{}, err
	}

	sp := sprint.Sprint{ProjectID: projectID, CreatedByID: &uid}
	if err := s.apply(&sp, input); err != nil {
		return sprint.Sprint{}, err
	}
	issues, err := projectIssues(s.Repos, projectID, input.IssueIDs)
	if err != nil {
		return sprint.Sprint{}, err
	}
	if err := s.Repos.Sprint.CreateSprint(&sp, issues); err != nil {
		return sprint.Sprint{}, err
	}
	sp.Issues = issues

	utils.LogAuditWithConsole(c, "create", "sprint", idString(sp.ID), nil, sp, "sprint created", s.Repos.Audit)
	return sp, nil
}

// UpdateSprint replaces every field and the issue set.
func (s *SprintService) UpdateSprint(c *gin.Context, projectID, id uint, input sprint.SprintInput) (sprint.Sprint, error) {
	sp, err := s.GetSprint(projectID, id)
	if err != nil {
		return sprint.Sprint{}, err
	}
	before := sp

	if err := s.apply(&sp, input); err != nil {
		return sprint.Sprint{}, err
	}
	issues, err := projectIssues(s.Repos, projectID, input.IssueIDs)
	if err != nil {
		return sprint.Sprint{}, err
	}
	if err := s.Repos.Sprint.UpdateSprint(&sp, issues); err != nil {
		return sprint.Sprint{}, err
	}
	sp.Issues = issues

	utils.LogAuditWithConsole(c, "update", "sprint", idString(sp.ID), before, sp, "sprint updated", s.Repos.Audit)
	return sp, nil
}

func (s *SprintService) DeleteSprint(c *gin.Context, projectID, id uint) error {
	sp, err := s.GetSprint(projectID, id)
	if err != nil {
		return err
	}
	if err := s.Repos.Sprint.DeleteSprint(id); err != nil {
		return err
	}
	utils.LogAuditWithConsole(c, "delete", "sprint", idString(id), sp, nil, "sprint deleted", s.Repos.Audit)
	return nil
}

func (s *SprintService) apply(sp *sprint.Sprint, input sprint.SprintInput) error {
	if err := sp.SetBounds(input.StartDate, input.EndDate); err != nil {
		return err
	}
	next := sprint.StatusNotStarted
	if input.Status != "" {
		next = sprint.Status(input.Status)
	}
	if !next.Valid() {
		return shared.NewValidationError("status", "unknown sprint status")
	}

	sp.Name = input.Name
	sp.Goal = deref(input.Goal)
	sp.IsActive = boolOr(input.IsActive, true)
	sp.SetStatus(next, s.now())
	return sp.Derive()
}
