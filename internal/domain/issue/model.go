package issue

import (
	"time"

	"github.com/linskybing/scrumish/internal/domain/project"
	"github.com/linskybing/scrumish/internal/domain/shared"
	"github.com/linskybing/scrumish/internal/domain/user"
	"gorm.io/gorm"
)

type Type string

const (
	TypeBug         Type = "BUG"
	TypeTask        Type = "TASK"
	TypeFeature     Type = "FEATURE"
	TypeImprovement Type = "IMPROVEMENT"
)

var TypeChoices = []shared.Choice{
	{Code: string(TypeBug), Label: "Bug"},
	{Code: string(TypeTask), Label: "Task"},
	{Code: string(TypeFeature), Label: "Feature"},
	{Code: string(TypeImprovement), Label: "Improvement"},
}

func (t Type) Valid() bool { return shared.HasChoice(TypeChoices, string(t)) }

type Issue struct {
	ID          uint             `gorm:"primaryKey" json:"id"`
	ProjectID   uint             `gorm:"not null;index" json:"project_id"`
	Project     *project.Project `gorm:"foreignKey:ProjectID;references:PID;constraint:OnDelete:CASCADE" json:"-"`
	Title       string           `gorm:"size:255;not null" json:"title"`
	Description string           `gorm:"type:text" json:"description"`
	Type        Type             `gorm:"size:20;not null;default:'TASK'" json:"type"`
	Status      shared.Status    `gorm:"size:20;not null;default:'TO_DO'" json:"status"`
	Priority    shared.Priority  `gorm:"size:20;not null;default:'medium'" json:"priority"`
	AssigneeID  *uint            `gorm:"index" json:"assignee_id"`
	Assignee    *user.User       `gorm:"foreignKey:AssigneeID;references:UID;constraint:OnDelete:SET NULL" json:"-"`
	Resolution  string           `gorm:"type:text" json:"resolution"`

	// bug report
	StepsToReproduce string `gorm:"type:text" json:"steps_to_reproduce"`
	ExpectedResult   string `gorm:"type:text" json:"expected_result"`
	ActualResult     string `gorm:"type:text" json:"actual_result"`
	Environment      string `gorm:"type:text" json:"environment"`

	// feature
	Requirements        string `gorm:"type:text" json:"requirements"`
	BusinessValue       string `gorm:"type:text" json:"business_value"`
	FeatureDependencies string `gorm:"type:text" json:"feature_dependencies"`

	// improvement
	PerformanceImpact string `gorm:"type:text" json:"performance_impact"`
	EstimatedImpact   string `gorm:"type:text" json:"estimated_impact"`
	UserFeedback      string `gorm:"type:text" json:"user_feedback"`
	TechnicalDetails  string `gorm:"type:text" json:"technical_details"`

	// task
	EffortEstimate *uint  `json:"effort_estimate"`
	DependentOnID  *uint  `gorm:"index" json:"dependent_on_id"`
	DependentOn    *Issue `gorm:"foreignKey:DependentOnID;constraint:OnDelete:RESTRICT" json:"-"`

	shared.Schedule
	CreatedByID *uint      `gorm:"index" json:"created_by_id"`
	CreatedBy   *user.User `gorm:"foreignKey:CreatedByID;references:UID;constraint:OnDelete:SET NULL" json:"-"`
	CreatedAt   time.Time  `gorm:"column:create_at;autoCreateTime" json:"create_at"`
	UpdatedAt   time.Time  `gorm:"column:update_at;autoUpdateTime" json:"update_at"`
}

func (Issue) TableName() string {
	return "issues"
}

func (i *Issue) BeforeSave(tx *gorm.DB) error {
	return i.Derive()
}

// Attachment is a file stored in object storage and linked to an issue.
type Attachment struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	IssueID     uint       `gorm:"not null;index" json:"issue_id"`
	Issue       *Issue     `gorm:"foreignKey:IssueID;constraint:OnDelete:CASCADE" json:"-"`
	ObjectKey   string     `gorm:"size:512;not null" json:"-"`
	Filename    string     `gorm:"size:255;not null" json:"filename"`
	ContentType string     `gorm:"size:127" json:"content_type"`
	Size        int64      `json:"size"`
	Description string     `gorm:"type:text" json:"description"`
	CreatedByID *uint      `gorm:"index" json:"created_by_id"`
	CreatedBy   *user.User `gorm:"foreignKey:CreatedByID;references:UID;constraint:OnDelete:SET NULL" json:"-"`
	CreatedAt   time.Time  `gorm:"column:create_at;autoCreateTime" json:"create_at"`
	UpdatedAt   time.Time  `gorm:"column:update_at;autoUpdateTime" json:"update_at"`
}

func (Attachment) TableName() string {
	return "issue_attachments"
}
