package repository

import (
	"github.com/linskybing/scrumish/internal/domain/issue"
	"github.com/linskybing/scrumish/internal/domain/project"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProjectRepo interface {
	GetProjectByID(id uint) (project.Project, error)
	GetVisibleProject(id, uid uint) (project.Project, error)
	ListVisibleProjects(uid uint) ([]project.Project, error)
	CreateProject(p *project.Project) error
	UpdateProject(p *project.Project) error
	DeleteProject(id uint) error
	WithTx(tx *gorm.DB) ProjectRepo
}

type DBProjectRepo struct {
	db *gorm.DB
}

func NewProjectRepo(db *gorm.DB) *DBProjectRepo {
	return &DBProjectRepo{
		db: db,
	}
}

// VisibleTo restricts a projects query to rows uid leads or holds any
// membership in. EXISTS keeps each project at most once however many
// roles uid holds.
func VisibleTo(uid uint) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(
			"projects.lead_id = ? OR EXISTS (SELECT 1 FROM project_members pm WHERE pm.project_id = projects.p_id AND pm.user_id = ?)",
			uid, uid,
		)
	}
}

func (r *DBProjectRepo) GetProjectByID(id uint) (project.Project, error) {
	var p project.Project
	err := r.db.First(&p, id).Error
	return p, err
}

func (r *DBProjectRepo) GetVisibleProject(id, uid uint) (project.Project, error) {
	var p project.Project
	err := r.db.Scopes(VisibleTo(uid)).Where("projects.p_id = ?", id).First(&p).Error
	return p, err
}

func (r *DBProjectRepo) ListVisibleProjects(uid uint) ([]project.Project, error) {
	var projects []project.Project
	err := r.db.Scopes(VisibleTo(uid)).
		Order("projects.create_at DESC").
		Order("projects.p_id DESC").
		Find(&projects).Error
	return projects, err
}

func (r *DBProjectRepo) CreateProject(p *project.Project) error {
	return r.db.Omit(clause.Associations).Create(p).Error
}

func (r *DBProjectRepo) UpdateProject(p *project.Project) error {
	return r.db.Omit(clause.Associations).Save(p).Error
}

// DeleteProject removes the project and, through ON DELETE CASCADE, all of
// its children. Dependency links between the project's own issues are
// cleared first since that foreign key restricts deletes.
func (r *DBProjectRepo) DeleteProject(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&issue.Issue{}).
			Where("project_id = ? AND dependent_on_id IS NOT NULL", id).
			Update("dependent_on_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&project.Project{}, id).Error
	})
}

func (r *DBProjectRepo) WithTx(tx *gorm.DB) ProjectRepo {
	if tx == nil {
		return r
	}
	return &DBProjectRepo{
		db: tx,
	}
}
