package repository

import (
	"errors"

	"github.com/linskybing/scrumish/internal/domain/settings"
	"gorm.io/gorm"
)

var ErrSingletonExists = errors.New("settings row already exists")

type SettingsRepo interface {
	// GetSettings returns gorm.ErrRecordNotFound until a row is created.
	GetSettings() (settings.SiteSettings, error)
	CreateSettings(s *settings.SiteSettings) error
	UpdateSettings(s *settings.SiteSettings) error
	WithTx(tx *gorm.DB) SettingsRepo
}

type DBSettingsRepo struct {
	db *gorm.DB
}

func NewSettingsRepo(db *gorm.DB) *DBSettingsRepo {
	return &DBSettingsRepo{
		db: db,
	}
}

func (r *DBSettingsRepo) GetSettings() (settings.SiteSettings, error) {
	var s settings.SiteSettings
	err := r.db.Order("id").First(&s).Error
	return s, err
}

func (r *DBSettingsRepo) CreateSettings(s *settings.SiteSettings) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&settings.SiteSettings{}).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrSingletonExists
		}
		s.Singleton = true
		err := tx.Create(s).Error
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrSingletonExists
		}
		return err
	})
}

// UpdateSettings only touches an existing row; it never inserts.
func (r *DBSettingsRepo) UpdateSettings(s *settings.SiteSettings) error {
	if s.ID == 0 {
		return gorm.ErrRecordNotFound
	}
	return r.db.Save(s).Error
}

func (r *DBSettingsRepo) WithTx(tx *gorm.DB) SettingsRepo {
	if tx == nil {
		return r
	}
	return &DBSettingsRepo{
		db: tx,
	}
}
