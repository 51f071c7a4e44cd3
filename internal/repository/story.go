package repository

import (
	"github.com/linskybing/scrumish/internal/domain/issue"
	"github.com/linskybing/scrumish/internal/domain/story"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type StoryRepo interface {
	GetStory(projectID, id uint) (story.UserStory, error)
	ListStories(projectID uint) ([]story.UserStory, error)
	CreateStory(s *story.UserStory, issues []issue.Issue) error
	UpdateStory(s *story.UserStory, issues []issue.Issue) error
	DeleteStory(id uint) error

	ListCriteria(storyID uint) ([]story.AcceptanceCriteria, error)
	GetCriteria(storyID, id uint) (story.AcceptanceCriteria, error)
	CreateCriteria(a *story.AcceptanceCriteria) error
	UpdateCriteria(a *story.AcceptanceCriteria) error
	DeleteCriteria(id uint) error

	WithTx(tx *gorm.DB) StoryRepo
}

type DBStoryRepo struct {
	db *gorm.DB
}

func NewStoryRepo(db *gorm.DB) *DBStoryRepo {
	return &DBStoryRepo{
		db: db,
	}
}

func (r *DBStoryRepo) GetStory(projectID, id uint) (story.UserStory, error) {
	var s story.UserStory
	err := r.db.Preload("Issues").
		Where("project_id = ? AND id = ?", projectID, id).
		First(&s).Error
	return s, err
}

func (r *DBStoryRepo) ListStories(projectID uint) ([]story.UserStory, error) {
	var stories []story.UserStory
	err := r.db.Where("project_id = ?", projectID).
		Order("create_at DESC").Order("id DESC").
		Find(&stories).Error
	return stories, err
}

func (r *DBStoryRepo) CreateStory(s *story.UserStory, issues []issue.Issue) error {
	return saveWithLinks(r.db, s, true, "Issues", issues)
}

func (r *DBStoryRepo) UpdateStory(s *story.UserStory, issues []issue.Issue) error {
	return saveWithLinks(r.db, s, false, "Issues", issues)
}

func (r *DBStoryRepo) DeleteStory(id uint) error {
	return r.db.Select(clause.Associations).Delete(&story.UserStory{ID: id}).Error
}

func (r *DBStoryRepo) ListCriteria(storyID uint) ([]story.AcceptanceCriteria, error) {
	var criteria []story.AcceptanceCriteria
	err := r.db.Where("user_story_id = ?", storyID).
		Order("create_at DESC").Order("id DESC").
		Find(&criteria).Error
	return criteria, err
}

func (r *DBStoryRepo) GetCriteria(storyID, id uint) (story.AcceptanceCriteria, error) {
	var a story.AcceptanceCriteria
	err := r.db.Where("user_story_id = ? AND id = ?", storyID, id).First(&a).Error
	return a, err
}

func (r *DBStoryRepo) CreateCriteria(a *story.AcceptanceCriteria) error {
	return r.db.Omit(clause.Associations).Create(a).Error
}

func (r *DBStoryRepo) UpdateCriteria(a *story.AcceptanceCriteria) error {
	return r.db.Omit(clause.Associations).Save(a).Error
}

func (r *DBStoryRepo) DeleteCriteria(id uint) error {
	return r.db.Delete(&story.AcceptanceCriteria{}, id).Error
}

func (r *DBStoryRepo) WithTx(tx *gorm.DB) StoryRepo {
	if tx == nil {
		return r
	}
	return &DBStoryRepo{
		db: tx,
	}
}
