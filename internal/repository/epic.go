package repository

import (
	"github.com/linskybing/scrumish/internal/domain/epic"
	"github.com/linskybing/scrumish/internal/domain/issue"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type EpicRepo interface {
	GetEpic(projectID, id uint) (epic.Epic, error)
	ListEpics(projectID uint) ([]epic.Epic, error)
	CreateEpic(e *epic.Epic, issues []issue.Issue) error
	UpdateEpic(e *epic.Epic, issues []issue.Issue) error
	DeleteEpic(id uint) error
	WithTx(tx *gorm.DB) EpicRepo
}

type DBEpicRepo struct {
	db *gorm.DB
}

func NewEpicRepo(db *gorm.DB) *DBEpicRepo {
	return &DBEpicRepo{
		db: db,
	}
}

func (r *DBEpicRepo) GetEpic(projectID, id uint) (epic.Epic, error) {
	var e epic.Epic
	err := r.db.Preload("Issues").
		Where("project_id = ? AND id = ?", projectID, id).
		First(&e).Error
	return e, err
}

func (r *DBEpicRepo) ListEpics(projectID uint) ([]epic.Epic, error) {
	var epics []epic.Epic
	err := r.db.Where("project_id = ?", projectID).
		Order("create_at DESC").Order("id DESC").
		Find(&epics).Error
	return epics, err
}

func (r *DBEpicRepo) CreateEpic(e *epic.Epic, issues []issue.Issue) error {
	return saveWithLinks(r.db, e, true, "Issues", issues)
}

func (r *DBEpicRepo) UpdateEpic(e *epic.Epic, issues []issue.Issue) error {
	return saveWithLinks(r.db, e, false, "Issues", issues)
}

func (r *DBEpicRepo) DeleteEpic(id uint) error {
	return r.db.Select(clause.Associations).Delete(&epic.Epic{ID: id}).Error
}

func (r *DBEpicRepo) WithTx(tx *gorm.DB) EpicRepo {
	if tx == nil {
		return r
	}
	return &DBEpicRepo{
		db: tx,
	}
}
