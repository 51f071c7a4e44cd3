package repository

import (
	"github.com/linskybing/scrumish/internal/domain/issue"
	"github.com/linskybing/scrumish/internal/domain/sprint"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SprintRepo interface {
	GetSprint(projectID, id uint) (sprint.Sprint, error)
	ListSprints(projectID uint) ([]sprint.Sprint, error)
	CreateSprint(s *sprint.Sprint, issues []issue.Issue) error
	UpdateSprint(s *sprint.Sprint, issues []issue.Issue) error
	DeleteSprint(id uint) error
	WithTx(tx *gorm.DB) SprintRepo
}

type DBSprintRepo struct {
	db *gorm.DB
}

func NewSprintRepo(db *gorm.DB) *DBSprintRepo {
	return &DBSprintRepo{
		db: db,
	}
}

func (r *DBSprintRepo) GetSprint(projectID, id uint) (sprint.Sprint, error) {
	var s sprint.Sprint
	err := r.db.Preload("Issues").
		Where("project_id = ? AND id = ?", projectID, id).
		First(&s).Error
	return s, err
}

func (r *DBSprintRepo) ListSprints(projectID uint) ([]sprint.Sprint, error) {
	var sprints []sprint.Sprint
	err := r.db.Where("project_id = ?", projectID).
		Order("create_at DESC").Order("id DESC").
		Find(&sprints).Error
	return sprints, err
}

func (r *DBSprintRepo) CreateSprint(s *sprint.Sprint, issues []issue.Issue) error {
	return saveWithLinks(r.db, s, true, "Issues", issues)
}

func (r *DBSprintRepo) UpdateSprint(s *sprint.Sprint, issues []issue.Issue) error {
	return saveWithLinks(r.db, s, false, "Issues", issues)
}

func (r *DBSprintRepo) DeleteSprint(id uint) error {
	return r.db.Select(clause.Associations).Delete(&sprint.Sprint{ID: id}).Error
}

func (r *DBSprintRepo) WithTx(tx *gorm.DB) SprintRepo {
	if tx == nil {
		return r
	}
	return &DBSprintRepo{
		db: tx,
	}
}

// saveWithLinks writes owner and swaps the full link set of its
// many-to-many field in one transaction. Linked rows are only referenced,
// never inserted or updated.
func saveWithLinks[T any](db *gorm.DB, owner any, create bool, name string, items []T) error {
	return db.Transaction(func(tx *gorm.DB) error {
		write := tx.Omit(clause.Associations)
		var err error
		if create {
			err = write.Create(owner).Error
		} else {
			err = write.Save(owner).Error
		}
		if err != nil {
			return err
		}

		assoc := tx.Model(owner).Omit(name + ".*").Association(name)
		if len(items) == 0 {
			return assoc.Clear()
		}
		return assoc.Replace(items)
	})
}
