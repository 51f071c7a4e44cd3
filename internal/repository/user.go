package repository

import (
	"strings"

	"github.com/linskybing/scrumish/internal/domain/user"
	"gorm.io/gorm"
)

type UserRepo interface {
	GetUserByID(id uint) (user.User, error)
	GetUserByUsername(username string) (user.User, error)
	GetUserByEmail(email string) (user.User, error)
	ListUsers() ([]user.User, error)
	SaveUser(u *user.User) error
	WithTx(tx *gorm.DB) UserRepo
}

type DBUserRepo struct {
	db *gorm.DB
}

func NewUserRepo(db *gorm.DB) *DBUserRepo {
	return &DBUserRepo{
		db: db,
	}
}

func (r *DBUserRepo) GetUserByID(id uint) (user.User, error) {
	var u user.User
	err := r.db.First(&u, id).Error
	return u, err
}

func (r *DBUserRepo) GetUserByUsername(username string) (user.User, error) {
	var u user.User
	err := r.db.Where("username = ?", username).First(&u).Error
	return u, err
}

// GetUserByEmail matches case-insensitively; emails are stored lower-cased.
func (r *DBUserRepo) GetUserByEmail(email string) (user.User, error) {
	var u user.User
	err := r.db.Where("email = ?", strings.ToLower(strings.TrimSpace(email))).First(&u).Error
	return u, err
}

func (r *DBUserRepo) ListUsers() ([]user.User, error) {
	var users []user.User
	err := r.db.Order("u_id").Find(&users).Error
	return users, err
}

func (r *DBUserRepo) SaveUser(u *user.User) error {
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))
	return r.db.Save(u).Error
}

func (r *DBUserRepo) WithTx(tx *gorm.DB) UserRepo {
	if tx == nil {
		return r
	}
	return &DBUserRepo{
		db: tx,
	}
}
