package epic

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
	StatusToDo       Status = "TO_DO"
	StatusInProgress Status = "IN_PROGRESS"
	StatusCompleted  Status = "COMPLETED"
	StatusArchived   Status = "ARCHIVED"
)

var StatusChoices = []shared.Choice{
	{Code: string(StatusToDo), Label: "To Do"},
	{Code: string(StatusInProgress), Label: "In Progress"},
	{Code: string(StatusCompleted), Label: "Completed"},
	{Code: string(StatusArchived), Label: "Archived"},
}

func (s Status) Valid() bool { return shared.HasChoice(StatusChoices, string(s)) }

type Epic struct {
	ID          uint             `gorm:"primaryKey" json:"id"`
	ProjectID   uint             `gorm:"not null;index" json:"project_id"`
	Project     *project.Project `gorm:"foreignKey:ProjectID;references:PID;constraint:OnDelete:CASCADE" json:"-"`
	Title       string           `gorm:"size:255;not null" json:"title"`
	Description string           `gorm:"type:text" json:"description"`
	Status      Status           `gorm:"size:20;not null;default:'TO_DO'" json:"status"`
	Priority    shared.Priority  `gorm:"size:20;not null;default:'low'" json:"priority"`
	CompletedAt *time.Time       `json:"completed_at"`
	Issues      []issue.Issue    `gorm:"many2many:epic_issues;constraint:OnDelete:CASCADE" json:"issues,omitempty"`
	IsBlocked   bool             `gorm:"not null;default:false" json:"is_blocked"`
	IsPublished bool             `gorm:"not null;default:false" json:"is_published"`
	shared.Schedule
	CreatedByID *uint      `gorm:"index" json:"created_by_id"`
	CreatedBy   *user.User `gorm:"foreignKey:CreatedByID;references:UID;constraint:OnDelete:SET NULL" json:"-"`
	CreatedAt   time.Time  `gorm:"column:create_at;autoCreateTime" json:"create_at"`
	UpdatedAt   time.Time  `gorm:"column:update_at;autoUpdateTime" json:"update_at"`
}

func (Epic) TableName() string {
	return "epics"
}

func (e *Epic) BeforeSave(tx *gorm.DB) error {
	return e.Derive()
}

func (e *Epic) SetStatus(next Status, now time.Time) {
	e.CompletedAt = shared.Stamp(e.Status == StatusCompleted, next == StatusCompleted, e.CompletedAt, now)
	e.Status = next
}
