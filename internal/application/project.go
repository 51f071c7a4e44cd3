package application

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/scrumish/internal/domain/project"
	"github.com/linskybing/scrumish/internal/domain/shared"
	"github.com/linskybing/scrumish/internal/repository"
	"github.com/linskybing/scrumish/pkg/utils"
	"gorm.io/gorm"
)

var (
	ErrProjectNotFound  = errors.New("project not found")
	ErrProjectNameTaken = errors.New("project name already taken")
)

type ProjectService struct {
	Repos *repository.Repos
}

func NewProjectService(repos *repository.Repos) *ProjectService {
	return &ProjectService{
		Repos: repos,
	}
}

func (s *ProjectService) ListProjects(c *gin.Context) ([]project.Project, error) {
	uid, err := callerID(c)
	if err != nil {
		return nil, err
	}
	return s.Repos.Project.ListVisibleProjects(uid)
}

// GetProject returns the project only when the caller may see it.
func (s *ProjectService) GetProject(c *gin.Context, id uint) (project.Project, error) {
	uid, err := callerID(c)
	if err != nil {
		return project.Project{}, err
	}
	p, err := s.Repos.Project.GetVisibleProject(id, uid)
	if err != nil {
		return project.Project{}, notFound(err, ErrProjectNotFound)
	}
	return p, nil
}

func (s *ProjectService) CreateProject(c *gin.Context, input project.ProjectInput) (project.Project, error) {
	uid, err := callerID(c)
	if err != nil {
		return project.Project{}, err
	}

	p := project.Project{CreatedByID: &uid, LeadID: &uid}
	if err := s.apply(&p, input); err != nil {
		return project.Project{}, err
	}

	if err := s.Repos.Project.CreateProject(&p); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return project.Project{}, ErrProjectNameTaken
		}
		return project.Project{}, err
	}

	utils.LogAuditWithConsole(c, "create", "project", idString(p.PID), nil, p, "project created", s.Repos.Audit)
	return p, nil
}

// UpdateProject replaces every form field. Only the lead or an admin may
// change a project the caller can see.
func (s *ProjectService) UpdateProject(c *gin.Context, id uint, input project.ProjectInput) (project.Project, error) {
	p, err := s.managedProject(c, id)
	if err != nil {
		return project.Project{}, err
	}
	before := p

	if err := s.apply(&p, input); err != nil {
		return project.Project{}, err
	}
	if err := s.Repos.Project.UpdateProject(&p); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return project.Project{}, ErrProjectNameTaken
		}
		return project.Project{}, err
	}

	utils.LogAuditWithConsole(c, "update", "project", idString(p.PID), before, p, "project updated", s.Repos.Audit)
	return p, nil
}

func (s *ProjectService) DeleteProject(c *gin.Context, id uint) error {
	p, err := s.managedProject(c, id)
	if err != nil {
		return err
	}
	if err := s.Repos.Project.DeleteProject(id); err != nil {
		return err
	}
	utils.LogAuditWithConsole(c, "delete", "project", idString(id), p, nil, "project deleted", s.Repos.Audit)
	return nil
}

func (s *ProjectService) managedProject(c *gin.Context, id uint) (project.Project, error) {
	p, err := s.GetProject(c, id)
	if err != nil {
		return project.Project{}, err
	}
	uid, _ := callerID(c)
	if p.IsLead(uid) {
		return p, nil
	}
	admin, err := isAdmin(s.Repos, uid)
	if err != nil {
		return project.Project{}, err
	}
	if !admin {
		return project.Project{}, ErrForbidden
	}
	return p, nil
}

func (s *ProjectService) apply(p *project.Project, input project.ProjectInput) error {
	verr := &shared.ValidationError{}
	if !project.Type(input.Type).Valid() {
		verr.Add("type", "unknown project type")
	}
	if !project.Category(input.Category).Valid() {
		verr.Add("category", "unknown project category")
	}
	if err := p.SetBounds(input.StartDate, input.EndDate); err != nil {
		var be *shared.ValidationError
		if errors.As(err, &be) {
			for f, m := range be.Fields {
				verr.Add(f, m)
			}
		}
	}
	if input.LeadID != nil {
		if _, err := s.Repos.User.GetUserByID(*input.LeadID); err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
			verr.Add("lead_id", "user not found")
		}
		p.LeadID = input.LeadID
	}
	if verr.HasErrors() {
		return verr
	}

	p.Name = input.Name
	p.Type = project.Type(input.Type)
	p.Category = project.Category(input.Category)
	p.Description = deref(input.Description)
	p.IsActive = boolOr(input.IsActive, true)
	return p.Derive()
}
