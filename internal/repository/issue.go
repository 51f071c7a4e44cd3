package repository

import (
	"github.com/linskybing/scrumish/internal/domain/issue"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type IssueRepo interface {
	GetIssue(projectID, id uint) (issue.Issue, error)
	ListIssues(projectID uint, filter issue.IssueFilter) ([]issue.Issue, error)
	GetIssuesByIDs(projectID uint, ids []uint) ([]issue.Issue, error)
	GetDependencyID(id uint) (*uint, error)
	CountDependents(id uint) (int64, error)
	CreateIssue(i *issue.Issue) error
	UpdateIssue(i *issue.Issue) error
	DeleteIssue(id uint) error

	CreateAttachment(a *issue.Attachment) error
	ListAttachments(issueID uint) ([]issue.Attachment, error)
	GetAttachment(issueID, id uint) (issue.Attachment, error)
	DeleteAttachment(id uint) error
	ListAttachmentKeysByProject(projectID uint) ([]string, error)

	WithTx(tx *gorm.DB) IssueRepo
}

type DBIssueRepo struct {
	db *gorm.DB
}

func NewIssueRepo(db *gorm.DB) *DBIssueRepo {
	return &DBIssueRepo{
		db: db,
	}
}

func (r *DBIssueRepo) GetIssue(projectID, id uint) (issue.Issue, error) {
	var i issue.Issue
	err := r.db.Where("project_id = ? AND id = ?", projectID, id).First(&i).Error
	return i, err
}

func (r *DBIssueRepo) ListIssues(projectID uint, filter issue.IssueFilter) ([]issue.Issue, error) {
	var issues []issue.Issue
	query := r.db.Where("project_id = ?", projectID)
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Type != "" {
		query = query.Where("type = ?", filter.Type)
	}
	if filter.Priority != "" {
		query = query.Where("priority = ?", filter.Priority)
	}
	if filter.AssigneeID != nil {
		query = query.Where("assignee_id = ?", *filter.AssigneeID)
	}
	err := query.Order("create_at DESC").Order("id DESC").Find(&issues).Error
	return issues, err
}

// GetIssuesByIDs returns the issues of projectID among ids. Callers compare
// lengths to detect ids from other projects.
func (r *DBIssueRepo) GetIssuesByIDs(projectID uint, ids []uint) ([]issue.Issue, error) {
	var issues []issue.Issue
	if len(ids) == 0 {
		return issues, nil
	}
	err := r.db.Where("project_id = ? AND id IN ?", projectID, ids).Find(&issues).Error
	return issues, err
}

func (r *DBIssueRepo) GetDependencyID(id uint) (*uint, error) {
	var i issue.Issue
	if err := r.db.Select("id", "dependent_on_id").First(&i, id).Error; err != nil {
		return nil, err
	}
	return i.DependentOnID, nil
}

func (r *DBIssueRepo) CountDependents(id uint) (int64, error) {
	var count int64
	err := r.db.Model(&issue.Issue{}).Where("dependent_on_id = ?", id).Count(&count).Error
	return count, err
}

func (r *DBIssueRepo) CreateIssue(i *issue.Issue) error {
	return r.db.Omit(clause.Associations).Create(i).Error
}

func (r *DBIssueRepo) UpdateIssue(i *issue.Issue) error {
	return r.db.Omit(clause.Associations).Save(i).Error
}

func (r *DBIssueRepo) DeleteIssue(id uint) error {
	return r.db.Delete(&issue.Issue{}, id).Error
}

func (r *DBIssueRepo) CreateAttachment(a *issue.Attachment) error {
	return r.db.Omit(clause.Associations).Create(a).Error
}

func (r *DBIssueRepo) ListAttachments(issueID uint) ([]issue.Attachment, error) {
	var attachments []issue.Attachment
	err := r.db.Where("issue_id = ?", issueID).Order("id").Find(&attachments).Error
	return attachments, err
}

func (r *DBIssueRepo) GetAttachment(issueID, id uint) (issue.Attachment, error) {
	var a issue.Attachment
	err := r.db.Where("issue_id = ? AND id = ?", issueID, id).First(&a).Error
	return a, err
}

func (r *DBIssueRepo) DeleteAttachment(id uint) error {
	return r.db.Delete(&issue.Attachment{}, id).Error
}

func (r *DBIssueRepo) ListAttachmentKeysByProject(projectID uint) ([]string, error) {
	var keys []string
	err := r.db.Model(&issue.Attachment{}).
		Joins("JOIN issues ON issues.id = issue_attachments.issue_id").
		Where("issues.project_id = ?", projectID).
		Pluck("issue_attachments.object_key", &keys).Error
	return keys, err
}

func (r *DBIssueRepo) WithTx(tx *gorm.DB) IssueRepo {
	if tx == nil {
		return r
	}
	return &DBIssueRepo{
		db: tx,
	}
}
