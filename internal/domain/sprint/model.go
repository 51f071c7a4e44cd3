package sprint

import (
	"time"

	"github.com/linskybing/scrumish/internal/domain/issue"
	"github.com/linskybing/scrumish/internal/domain/project"
	"github.com/linskybing/scrumish/internal/domain/shared"
	"github.com/linskybing/scrumish/internal/domain/user"
	"gorm.io/gorm"
)

type Status string

const (
	StatusNotStarted Status = "NOT_STARTED"
	StatusInProgress Status = "IN_PROGRESS"
	StatusCompleted  Status = "COMPLETED"
	StatusArchived   Status = "ARCHIVED"
)

var StatusChoices = []shared.Choice{
	{Code: string(StatusNotStarted), Label: "Not Started"},
	{Code: string(StatusInProgress), Label: "In Progress"},
	{Code: string(StatusCompleted), Label: "Completed"},
	{Code: string(StatusArchived), Label: "Archived"},
}

func (s Status) Valid() bool { return shared.HasChoice(StatusChoices, string(s)) }

type Sprint struct {
	ID          uint             `gorm:"primaryKey" json:"id"`
	ProjectID   uint             `gorm:"not null;index" json:"project_id"`
	Project     *project.Project `gorm:"foreignKey:ProjectID;references:PID;constraint:OnDelete:CASCADE" json:"-"`
	Name        string           `gorm:"size:255;not null" json:"name"`
	Goal        string           `gorm:"type:text" json:"goal"`
	Status      Status           `gorm:"size:20;not null;default:'NOT_STARTED'" json:"status"`
	IsActive    bool             `gorm:"not null" json:"is_active"`
	CompletedAt *time.Time       `json:"completed_at"`
	Issues      []issue.Issue    `gorm:"many2many:sprint_issues;constraint:OnDelete:CASCADE" json:"issues,omitempty"`
	shared.Schedule
	CreatedByID *uint      `gorm:"index" json:"created_by_id"`
	CreatedBy   *user.User `gorm:"foreignKey:CreatedByID;references:UID;constraint:OnDelete:SET NULL" json:"-"`
	CreatedAt   time.Time  `gorm:"column:create_at;autoCreateTime" json:"create_at"`
	UpdatedAt   time.Time  `gorm:"column:update_at;autoUpdateTime" json:"update_at"`
}

func (Sprint) TableName() string {
	return "sprints"
}

func (s *Sprint) BeforeSave(tx *gorm.DB) error {
	return s.Derive()
}

// SetStatus moves the sprint to next, stamping CompletedAt on entry to COMPLETED.
func (s *Sprint) SetStatus(next Status, now time.Time) {
	s.CompletedAt = shared.Stamp(s.Status == StatusCompleted, next == StatusCompleted, s.CompletedAt, now)
	s.Status = next
}
