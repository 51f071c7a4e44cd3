package repository

import (
	"github.com/linskybing/scrumish/internal/domain/membership"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type MemberRepo interface {
	ListMembers(projectID uint) ([]membership.ProjectMember, error)
	GetMember(projectID, id uint) (membership.ProjectMember, error)
	// LockByProjectAndUser returns every row of the pair, oldest first, and
	// holds row locks until the surrounding transaction ends.
	LockByProjectAndUser(projectID, userID uint) ([]membership.ProjectMember, error)
	HasRole(projectID, userID uint, roles []membership.Role) (bool, error)
	CreateMember(m *membership.ProjectMember) error
	UpdateMember(m *membership.ProjectMember) error
	DeleteMember(id uint) error
	WithTx(tx *gorm.DB) MemberRepo
}

type DBMemberRepo struct {
	db *gorm.DB
}

func NewMemberRepo(db *gorm.DB) *DBMemberRepo {
	return &DBMemberRepo{
		db: db,
	}
}

func (r *DBMemberRepo) ListMembers(projectID uint) ([]membership.ProjectMember, error) {
	var members []membership.ProjectMember
	err := r.db.Preload("User").
		Where("project_id = ?", projectID).
		Order("id").
		Find(&members).Error
	return members, err
}

func (r *DBMemberRepo) GetMember(projectID, id uint) (membership.ProjectMember, error) {
	var m membership.ProjectMember
	err := r.db.Preload("User").
		Where("project_id = ? AND id = ?", projectID, id).
		First(&m).Error
	return m, err
}

func (r *DBMemberRepo) LockByProjectAndUser(projectID, userID uint) ([]membership.ProjectMember, error) {
	var members []membership.ProjectMember
	err := r.db.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("project_id = ? AND user_id = ?", projectID, userID).
		Order("id").
		Find(&members).Error
	return members, err
}

// HasRole reports whether the user holds an active membership with one of roles.
func (r *DBMemberRepo) HasRole(projectID, userID uint, roles []membership.Role) (bool, error) {
	var count int64
	err := r.db.Model(&membership.ProjectMember{}).
		Where("project_id = ? AND user_id = ? AND is_active = ? AND role IN ?", projectID, userID, true, roles).
		Count(&count).Error
	return count > 0, err
}

func (r *DBMemberRepo) CreateMember(m *membership.ProjectMember) error {
	return r.db.Omit(clause.Associations).Create(m).Error
}

func (r *DBMemberRepo) UpdateMember(m *membership.ProjectMember) error {
	return r.db.Omit(clause.Associations).Save(m).Error
}

func (r *DBMemberRepo) DeleteMember(id uint) error {
	return r.db.Delete(&membership.ProjectMember{}, id).Error
}

func (r *DBMemberRepo) WithTx(tx *gorm.DB) MemberRepo {
	if tx == nil {
		return r
	}
	return &DBMemberRepo{
		db: tx,
	}
}
