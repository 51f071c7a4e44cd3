package application

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/scrumish/internal/domain/shared"
	"github.com/linskybing/scrumish/internal/domain/story"
	"github.com/linskybing/scrumish/internal/repository"
	"github.com/linskybing/scrumish/pkg/utils"
	"gorm.io/gorm"
)

var (
	ErrStoryNotFound    = errors.New("user story not found")
	ErrCriteriaNotFound = errors.New("acceptance criteria not found")
)

type StoryService struct {
	Repos *repository.Repos
	now   func() time.Time
}

func NewStoryService(repos *repository.Repos) *StoryService {
	return &StoryService{
		Repos: repos,
		now:   time.Now,
	}
}

func (s *StoryService) ListStories(projectID uint) ([]story.UserStory, error) {
	return s.Repos.Story.ListStories(projectID)
}

func (s *StoryService) GetStory(projectID, id uint) (story.UserStory, error) {
	st, err := s.Repos.Story.GetStory(projectID, id)
	if err != nil {
		return story.UserStory{}, notFound(err, ErrStoryNotFound)
	}
	return st, nil
}

func (s *StoryService) CreateStory(c *gin.Context, projectID uint, input story.UserStoryInput) (story.UserStory, error) {
	uid, err := callerID(c)
	if err != nil {
		return story.UserStory{}, err
	}

	st := story.UserStory{ProjectID: projectID, CreatedByID: &uid}
	if err := s.apply(&st, input); err != nil {
		return story.UserStory{}, err
	}
	issues, err := projectIssues(s.Repos, projectID, input.IssueIDs)
	if err != nil {
		return story.UserStory{}, err
	}
	if err := s.Repos.Story.CreateStory(&st, issues); err != nil {
		return story.UserStory{}, err
	}
	st.Issues = issues

	utils.LogAuditWithConsole(c, "create", "user_story", idString(st.ID), nil, st, "user story created", s.Repos.Audit)
	return st, nil
}

func (s *StoryService) UpdateStory(c *gin.Context, projectID, id uint, input story.UserStoryInput) (story.UserStory, error) {
	st, err := s.GetStory(projectID, id)
	if err != nil {
		return story.UserStory{}, err
	}
	before := st

	if err := s.apply(&st, input); err != nil {
		return story.UserStory{}, err
	}
	issues, err := projectIssues(s.Repos, projectID, input.IssueIDs)
	if err != nil {
		return story.UserStory{}, err
	}
	if err := s.Repos.Story.UpdateStory(&st, issues); err != nil {
		return story.UserStory{}, err
	}
	st.Issues = issues

	utils.LogAuditWithConsole(c, "update", "user_story", idString(st.ID), before, st, "user story updated", s.Repos.Audit)
	return st, nil
}

func (s *StoryService) DeleteStory(c *gin.Context, projectID, id uint) error {
	st, err := s.GetStory(projectID, id)
	if err != nil {
		return err
	}
	if err := s.Repos.Story.DeleteStory(id); err != nil {
		return err
	}
	utils.LogAuditWithConsole(c, "delete", "user_story", idString(id), st, nil, "user story deleted", s.Repos.Audit)
	return nil
}

// apply validates the references of input against projectID before
// overwriting st. Epic and sprint must live in the same project.
func (s *StoryService) apply(st *story.UserStory, input story.UserStoryInput) error {
	verr := &shared.ValidationError{}
	if err := st.SetBounds(input.StartDate, input.EndDate); err != nil {
		var be *shared.ValidationError
		if !errors.As(err, &be) {
			return err
		}
		for f, m := range be.Fields {
			verr.Add(f, m)
		}
	}
	if input.EpicID != nil {
		if _, err := s.Repos.Epic.GetEpic(st.ProjectID, *input.EpicID); err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
			verr.Add("epic_id", "epic must belong to this project")
		}
	}
	if input.SprintID != nil {
		if _, err := s.Repos.Sprint.GetSprint(st.ProjectID, *input.SprintID); err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
			verr.Add("sprint_id", "sprint must belong to this project")
		}
	}
	if input.ProductOwnerID != nil {
		if _, err := s.Repos.User.GetUserByID(*input.ProductOwnerID); err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
			verr.Add("product_owner_id", "user not found")
		}
	}
	if verr.HasErrors() {
		return verr
	}

	st.Title = input.Title
	st.Description = deref(input.Description)
	st.Priority = shared.PriorityLow
	if input.Priority != "" {
		st.Priority = shared.Priority(input.Priority)
	}
	st.Status = shared.StatusToDo
	if input.Status != "" {
		st.Status = shared.Status(input.Status)
	}
	st.IsActive = boolOr(input.IsActive, true)
	st.IsBlocked = boolOr(input.IsBlocked, false)
	st.EpicID = input.EpicID
	st.SprintID = input.SprintID
	st.ProductOwnerID = input.ProductOwnerID
	st.SetApproved(boolOr(input.IsApproved, false), s.now())
	return st.Derive()
}

func (s *StoryService) ListCriteria(projectID, storyID uint) ([]story.AcceptanceCriteria, error) {
	if _, err := s.GetStory(projectID, storyID); err != nil {
		return nil, err
	}
	return s.Repos.Story.ListCriteria(storyID)
}

func (s *StoryService) GetCriteria(projectID, storyID, id uint) (story.AcceptanceCriteria, error) {
	if _, err := s.GetStory(projectID, storyID); err != nil {
		return story.AcceptanceCriteria{}, err
	}
	a, err := s.Repos.Story.GetCriteria(storyID, id)
	if err != nil {
		return story.AcceptanceCriteria{}, notFound(err, ErrCriteriaNotFound)
	}
	return a, nil
}

func (s *StoryService) CreateCriteria(c *gin.Context, projectID, storyID uint, input story.CriteriaInput) (story.AcceptanceCriteria, error) {
	uid, err := callerID(c)
	if err != nil {
		return story.AcceptanceCriteria{}, err
	}
	if _, err := s.GetStory(projectID, storyID); err != nil {
		return story.AcceptanceCriteria{}, err
	}

	a := story.AcceptanceCriteria{UserStoryID: &storyID, CreatedByID: &uid}
	if err := s.applyCriteria(&a, projectID, input); err != nil {
		return story.AcceptanceCriteria{}, err
	}
	if err := s.Repos.Story.CreateCriteria(&a); err != nil {
		return story.AcceptanceCriteria{}, err
	}

	utils.LogAuditWithConsole(c, "create", "acceptance_criteria", idString(a.ID), nil, a, "acceptance criteria created", s.Repos.Audit)
	return a, nil
}

func (s *StoryService) UpdateCriteria(c *gin.Context, projectID, storyID, id uint, input story.CriteriaInput) (story.AcceptanceCriteria, error) {
	a, err := s.GetCriteria(projectID, storyID, id)
	if err != nil {
		return story.AcceptanceCriteria{}, err
	}
	before := a

	if err := s.applyCriteria(&a, projectID, input); err != nil {
		return story.AcceptanceCriteria{}, err
	}
	if err := s.Repos.Story.UpdateCriteria(&a); err != nil {
		return story.AcceptanceCriteria{}, err
	}

	utils.LogAuditWithConsole(c, "update", "acceptance_criteria", idString(a.ID), before, a, "acceptance criteria updated", s.Repos.Audit)
	return a, nil
}

func (s *StoryService) DeleteCriteria(c *gin.Context, projectID, storyID, id uint) error {
	a, err := s.GetCriteria(projectID, storyID, id)
	if err != nil {
		return err
	}
	if err := s.Repos.Story.DeleteCriteria(a.ID); err != nil {
		return err
	}
	utils.LogAuditWithConsole(c, "delete", "acceptance_criteria", idString(a.ID), a, nil, "acceptance criteria deleted", s.Repos.Audit)
	return nil
}

func (s *StoryService) applyCriteria(a *story.AcceptanceCriteria, projectID uint, input story.CriteriaInput) error {
	if input.IssueID != nil {
		if _, err := s.Repos.Issue.GetIssue(projectID, *input.IssueID); err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
			return shared.NewValidationError("issue_id", "issue must belong to this project")
		}
	}

	a.IssueID = input.IssueID
	a.Description = deref(input.Description)
	a.Given = deref(input.Given)
	a.When = deref(input.When)
	a.Then = deref(input.Then)
	a.Type = story.CriteriaBehaviourDriven
	if input.Type != "" {
		a.Type = story.CriteriaType(input.Type)
	}
	a.SetMet(boolOr(input.IsMet, false), s.now())
	return nil
}
