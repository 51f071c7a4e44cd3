package application

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/scrumish/internal/domain/epic"
	"github.com/linskybing/scrumish/internal/domain/shared"
	"github.com/linskybing/scrumish/internal/repository"
	"github.com/linskybing/scrumish/pkg/utils"
)

var ErrEpicNotFound = errors.New("epic not found")

type EpicService struct {
	Repos *repository.Repos
	now   func() time.Time
}

func NewEpicService(repos *repository.Repos) *EpicService {
	return &EpicService{
		Repos: repos,
		now:   time.Now,
	}
}

func (s *EpicService) ListEpics(projectID uint) ([]epic.Epic, error) {
	return s.Repos.Epic.ListEpics(projectID)
}

func (s *EpicService) GetEpic(projectID, id uint) (epic.Epic, error) {
	e, err := s.Repos.Epic.GetEpic(projectID, id)
	if err != nil {
		return epic.Epic{}, notFound(err, ErrEpicNotFound)
	}
	return e, nil
}

func (s *EpicService) CreateEpic(c *gin.Context, projectID uint, input epic.EpicInput) (epic.Epic, error) {
	uid, err := callerID(c)
	if err != nil {
		return epic.Epic{}, err
	}

	e := epic.Epic{ProjectID: projectID, CreatedByID: &uid}
	if err := s.apply(&e, input); err != nil {
		return epic.Epic{}, err
	}
	issues, err := projectIssues(s.Repos, projectID, input.IssueIDs)
	if err != nil {
		return epic.Epic{}, err
	}
	if err := s.Repos.Epic.CreateEpic(&e, issues); err != nil {
		return epic.Epic{}, err
	}
	e.Issues = issues

	utils.LogAuditWithConsole(c, "create", "epic", idString(e.ID), nil, e, "epic created", s.Repos.Audit)
	return e, nil
}

func (s *EpicService) UpdateEpic(c *gin.Context, projectID, id uint, input epic.EpicInput) (epic.Epic, error) {
	e, err := s.GetEpic(projectID, id)
	if err != nil {
		return epic.Epic{}, err
	}
	before := e

	if err := s.apply(&e, input); err != nil {
		return epic.Epic{}, err
	}
	issues, err := projectIssues(s.Repos, projectID, input.IssueIDs)
	if err != nil {
		return epic.Epic{}, err
	}
	if err := s.Repos.Epic.UpdateEpic(&e, issues); err != nil {
		return epic.Epic{}, err
	}
	e.Issues = issues

	utils.LogAuditWithConsole(c, "update", "epic", idString(e.ID), before, e, "epic updated", s.Repos.Audit)
	return e, nil
}

func (s *EpicService) DeleteEpic(c *gin.Context, projectID, id uint) error {
	e, err := s.GetEpic(projectID, id)
	if err != nil {
		return err
	}
	if err := s.Repos.Epic.DeleteEpic(id); err != nil {
		return err
	}
	utils.LogAuditWithConsole(c, "delete", "epic", idString(id), e, nil, "epic deleted", s.Repos.Audit)
	return nil
}

func (s *EpicService) apply(e *epic.Epic, input epic.EpicInput) error {
	if err := e.SetBounds(input.StartDate, input.EndDate); err != nil {
		return err
	}
	next := epic.StatusToDo
	if input.Status != "" {
		next = epic.Status(input.Status)
	}
	if !next.Valid() {
		return shared.NewValidationError("status", "unknown epic status")
	}
	priority := shared.PriorityLow
	if input.Priority != "" {
		priority = shared.Priority(input.Priority)
	}
	if !priority.Valid() {
		return shared.NewValidationError("priority", "unknown priority")
	}

	e.Title = input.Title
	e.Description = deref(input.Description)
	e.Priority = priority
	e.IsBlocked = boolOr(input.IsBlocked, false)
	e.IsPublished = boolOr(input.IsPublished, false)
	e.SetStatus(next, s.now())
	return e.Derive()
}
