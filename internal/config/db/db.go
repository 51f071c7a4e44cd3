package db

import (
	"fmt"

	"github.com/linskybing/scrumish/internal/config"
	"github.com/linskybing/scrumish/internal/domain/audit"
	"github.com/linskybing/scrumish/internal/domain/epic"
	"github.com/linskybing/scrumish/internal/domain/issue"
	"github.com/linskybing/scrumish/internal/domain/membership"
	"github.com/linskybing/scrumish/internal/domain/project"
	"github.com/linskybing/scrumish/internal/domain/qa"
	"github.com/linskybing/scrumish/internal/domain/settings"
	"github.com/linskybing/scrumish/internal/domain/sprint"
	"github.com/linskybing/scrumish/internal/domain/story"
	"github.com/linskybing/scrumish/internal/domain/user"
	log "github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// Models lists every persisted type in dependency order.
func Models() []any {
	return []any{
		&user.User{},
		&project.Project{},
		&membership.ProjectMember{},
		&issue.Issue{},
		&issue.Attachment{},
		&sprint.Sprint{},
		&epic.Epic{},
		&story.UserStory{},
		&story.AcceptanceCriteria{},
		&qa.TestCase{},
		&qa.TestExecution{},
		&qa.TestPlan{},
		&settings.SiteSettings{},
		&audit.AuditLog{},
	}
}

// GormConfig translates driver errors so unique violations surface as
// gorm.ErrDuplicatedKey.
func GormConfig() *gorm.Config {
	return &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Warn),
	}
}

func DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		config.DbHost,
		config.DbPort,
		config.DbUser,
		config.DbPassword,
		config.DbName,
	)
}

func Init() {
	var err error
	DB, err = gorm.Open(postgres.Open(DSN()), GormConfig())
	if err != nil {
		log.WithError(err).Fatal("Failed to connect to DB")
	}
	log.Info("Database connected")
}

func Migrate(gormDB *gorm.DB) error {
	return gormDB.AutoMigrate(Models()...)
}

func InitWithGormDB(gormDB *gorm.DB) {
	DB = gormDB
}
