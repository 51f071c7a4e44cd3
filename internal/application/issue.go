package application

import (
	"errors"
	"fmt"
	"io"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/scrumish/internal/domain/issue"
	"github.com/linskybing/scrumish/internal/domain/shared"
	"github.com/linskybing/scrumish/internal/repository"
	"github.com/linskybing/scrumish/pkg/storage"
	"github.com/linskybing/scrumish/pkg/utils"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrIssueNotFound      = errors.New("issue not found")
	ErrIssueHasDependents = errors.New("other issues depend on this issue")
	ErrDependencyCycle    = errors.New("dependency would create a cycle")
	ErrAttachmentNotFound = errors.New("attachment not found")
	ErrStorageDisabled    = errors.New("object storage is not configured")
)

// maxDependencyDepth bounds the walk along dependent_on links.
const maxDependencyDepth = 1000

type IssueService struct {
	Repos *repository.Repos
	store storage.ObjectStore
}

func NewIssueService(repos *repository.Repos, store storage.ObjectStore) *IssueService {
	return &IssueService{
		Repos: repos,
		store: store,
	}
}

func (s *IssueService) ListIssues(projectID uint, filter issue.IssueFilter) ([]issue.Issue, error) {
	return s.Repos.Issue.ListIssues(projectID, filter)
}

func (s *IssueService) GetIssue(projectID, id uint) (issue.Issue, error) {
	i, err := s.Repos.Issue.GetIssue(projectID, id)
	if err != nil {
		return issue.Issue{}, notFound(err, ErrIssueNotFound)
	}
	return i, nil
}

func (s *IssueService) CreateIssue(c *gin.Context, projectID uint, input issue.IssueInput) (issue.Issue, error) {
	uid, err := callerID(c)
	if err != nil {
		return issue.Issue{}, err
	}

	i := issue.Issue{ProjectID: projectID, CreatedByID: &uid}
	if err := s.apply(&i, input); err != nil {
		return issue.Issue{}, err
	}
	if err := s.Repos.Issue.CreateIssue(&i); err != nil {
		return issue.Issue{}, err
	}

	utils.LogAuditWithConsole(c, "create", "issue", idString(i.ID), nil, i, "issue created", s.Repos.Audit)
	return i, nil
}

func (s *IssueService) UpdateIssue(c *gin.Context, projectID, id uint, input issue.IssueInput) (issue.Issue, error) {
	i, err := s.GetIssue(projectID, id)
	if err != nil {
		return issue.Issue{}, err
	}
	before := i

	if err := s.apply(&i, input); err != nil {
		return issue.Issue{}, err
	}
	if err := s.Repos.Issue.UpdateIssue(&i); err != nil {
		return issue.Issue{}, err
	}

	utils.LogAuditWithConsole(c, "update", "issue", idString(i.ID), before, i, "issue updated", s.Repos.Audit)
	return i, nil
}

// DeleteIssue refuses while another issue depends on it. Attachment
// objects are removed after the rows are gone.
func (s *IssueService) DeleteIssue(c *gin.Context, projectID, id uint) error {
	i, err := s.GetIssue(projectID, id)
	if err != nil {
		return err
	}
	n, err := s.Repos.Issue.CountDependents(id)
	if err != nil {
		return err
	}
	if n > 0 {
		return ErrIssueHasDependents
	}

	attachments, err := s.Repos.Issue.ListAttachments(id)
	if err != nil {
		return err
	}
	if err := s.Repos.Issue.DeleteIssue(id); err != nil {
		return err
	}
	for _, a := range attachments {
		s.removeObject(c, a.ObjectKey)
	}

	utils.LogAuditWithConsole(c, "delete", "issue", idString(id), i, nil, "issue deleted", s.Repos.Audit)
	return nil
}

func (s *IssueService) ListAttachments(projectID, issueID uint) ([]issue.Attachment, error) {
	if _, err := s.GetIssue(projectID, issueID); err != nil {
		return nil, err
	}
	return s.Repos.Issue.ListAttachments(issueID)
}

// Upload describes one file received for storage.
type Upload struct {
	Filename    string
	ContentType string
	Size        int64
	Body        io.Reader
}

func (s *IssueService) AddAttachment(c *gin.Context, projectID, issueID uint, up Upload, description string) (issue.Attachment, error) {
	if s.store == nil {
		return issue.Attachment{}, ErrStorageDisabled
	}
	uid, err := callerID(c)
	if err != nil {
		return issue.Attachment{}, err
	}
	if _, err := s.GetIssue(projectID, issueID); err != nil {
		return issue.Attachment{}, err
	}

	key := storage.ObjectKey(fmt.Sprintf("issues/%d", issueID), up.Filename)
	if err := s.store.Put(requestContext(c), key, up.Body, up.Size, up.ContentType); err != nil {
		return issue.Attachment{}, err
	}

	a := issue.Attachment{
		IssueID:     issueID,
		ObjectKey:   key,
		Filename:    up.Filename,
		ContentType: up.ContentType,
		Size:        up.Size,
		Description: description,
		CreatedByID: &uid,
	}
	if err := s.Repos.Issue.CreateAttachment(&a); err != nil {
		s.removeObject(c, key)
		return issue.Attachment{}, err
	}

	utils.LogAuditWithConsole(c, "create", "issue_attachment", idString(a.ID), nil, a, "attachment uploaded", s.Repos.Audit)
	return a, nil
}

// OpenAttachment returns the stored file; the caller closes the reader.
func (s *IssueService) OpenAttachment(c *gin.Context, projectID, issueID, id uint) (issue.Attachment, io.ReadCloser, error) {
	if s.store == nil {
		return issue.Attachment{}, nil, ErrStorageDisabled
	}
	a, err := s.attachment(projectID, issueID, id)
	if err != nil {
		return issue.Attachment{}, nil, err
	}
	body, err := s.store.Get(requestContext(c), a.ObjectKey)
	if err != nil {
		return issue.Attachment{}, nil, err
	}
	return a, body, nil
}

func (s *IssueService) DeleteAttachment(c *gin.Context, projectID, issueID, id uint) error {
	a, err := s.attachment(projectID, issueID, id)
	if err != nil {
		return err
	}
	if err := s.Repos.Issue.DeleteAttachment(a.ID); err != nil {
		return err
	}
	s.removeObject(c, a.ObjectKey)

	utils.LogAuditWithConsole(c, "delete", "issue_attachment", idString(a.ID), a, nil, "attachment deleted", s.Repos.Audit)
	return nil
}

func (s *IssueService) attachment(projectID, issueID, id uint) (issue.Attachment, error) {
	if _, err := s.GetIssue(projectID, issueID); err != nil {
		return issue.Attachment{}, err
	}
	a, err := s.Repos.Issue.GetAttachment(issueID, id)
	if err != nil {
		return issue.Attachment{}, notFound(err, ErrAttachmentNotFound)
	}
	return a, nil
}

func (s *IssueService) removeObject(c *gin.Context, key string) {
	if s.store == nil || key == "" {
		return
	}
	if err := s.store.Remove(requestContext(c), key); err != nil {
		log.WithError(err).WithField("key", key).Warn("failed to remove stored object")
	}
}

func (s *IssueService) apply(i *issue.Issue, input issue.IssueInput) error {
	verr := &shared.ValidationError{}
	if err := i.SetBounds(input.StartDate, input.EndDate); err != nil {
		var be *shared.ValidationError
		if errors.As(err, &be) {
			for f, m := range be.Fields {
				verr.Add(f, m)
			}
		}
	}
	if input.AssigneeID != nil {
		if _, err := s.Repos.User.GetUserByID(*input.AssigneeID); err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
			verr.Add("assignee_id", "user not found")
		}
	}
	if input.DependentOnID != nil {
		if err := s.checkDependency(i, *input.DependentOnID); err != nil {
			var de *shared.ValidationError
			if !errors.As(err, &de) {
				return err
			}
			for f, m := range de.Fields {
				verr.Add(f, m)
			}
		}
	}
	if verr.HasErrors() {
		return verr
	}

	i.Title = input.Title
	i.Description = deref(input.Description)
	i.Type = issue.TypeTask
	if input.Type != "" {
		i.Type = issue.Type(input.Type)
	}
	i.Status = shared.StatusToDo
	if input.Status != "" {
		i.Status = shared.Status(input.Status)
	}
	i.Priority = shared.PriorityMedium
	if input.Priority != "" {
		i.Priority = shared.Priority(input.Priority)
	}
	i.AssigneeID = input.AssigneeID
	i.Resolution = deref(input.Resolution)

	i.StepsToReproduce = deref(input.StepsToReproduce)
	i.ExpectedResult = deref(input.ExpectedResult)
	i.ActualResult = deref(input.ActualResult)
	i.Environment = deref(input.Environment)

	i.Requirements = deref(input.Requirements)
	i.BusinessValue = deref(input.BusinessValue)
	i.FeatureDependencies = deref(input.FeatureDependencies)

	i.PerformanceImpact = deref(input.PerformanceImpact)
	i.EstimatedImpact = deref(input.EstimatedImpact)
	i.UserFeedback = deref(input.UserFeedback)
	i.TechnicalDetails = deref(input.TechnicalDetails)

	i.EffortEstimate = input.EffortEstimate
	i.DependentOnID = input.DependentOnID
	return i.Derive()
}

// checkDependency requires target to live in the same project and walks the
// chain from target to make sure it never reaches i.
func (s *IssueService) checkDependency(i *issue.Issue, target uint) error {
	if i.ID != 0 && target == i.ID {
		return ErrDependencyCycle
	}
	if _, err := s.Repos.Issue.GetIssue(i.ProjectID, target); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return shared.NewValidationError("dependent_on_id", "issue must belong to this project")
		}
		return err
	}
	if i.ID == 0 {
		return nil
	}

	next := &target
	for depth := 0; next != nil && depth < maxDependencyDepth; depth++ {
		if *next == i.ID {
			return ErrDependencyCycle
		}
		dep, err := s.Repos.Issue.GetDependencyID(*next)
		if err != nil {
			return err
		}
		next = dep
	}
	return nil
}
