package story

import (
	"time"

	"github.com/linskybing/scrumish/internal/domain/epic"
	"github.com/linskybing/scrumish/internal/domain/issue"
	"github.com/linskybing/scrumish/internal/domain/project"
	"github.com/linskybing/scrumish/internal/domain/shared"
	"github.com/linskybing/scrumish/internal/domain/sprint"
	"github.com/linskybing/scrumish/internal/domain/user"
	"gorm.io/gorm"
)

type UserStory struct {
	ID             uint             `gorm:"primaryKey" json:"id"`
	ProjectID      uint             `gorm:"not null;index" json:"project_id"`
	Project        *project.Project `gorm:"foreignKey:ProjectID;references:PID;constraint:OnDelete:CASCADE" json:"-"`
	Title          string           `gorm:"size:255;not null" json:"title"`
	Description    string           `gorm:"type:text" json:"description"`
	Priority       shared.Priority  `gorm:"size:20;not null;default:'low'" json:"priority"`
	Status         shared.Status    `gorm:"size:20;not null;default:'TO_DO'" json:"status"`
	IsActive       bool             `gorm:"not null" json:"is_active"`
	IsBlocked      bool             `gorm:"not null;default:false" json:"is_blocked"`
	EpicID         *uint            `gorm:"index" json:"epic_id"`
	Epic           *epic.Epic       `gorm:"foreignKey:EpicID;constraint:OnDelete:SET NULL" json:"-"`
	SprintID       *uint            `gorm:"index" json:"sprint_id"`
	Sprint         *sprint.Sprint   `gorm:"foreignKey:SprintID;constraint:OnDelete:SET NULL" json:"-"`
	Issues         []issue.Issue    `gorm:"many2many:user_story_issues;constraint:OnDelete:CASCADE" json:"issues,omitempty"`
	ProductOwnerID *uint            `gorm:"index" json:"product_owner_id"`
	ProductOwner   *user.User       `gorm:"foreignKey:ProductOwnerID;references:UID;constraint:OnDelete:RESTRICT" json:"-"`
	IsApproved     bool             `gorm:"not null;default:false" json:"is_approved"`
	ApprovedAt     *time.Time       `json:"approved_at"`
	shared.Schedule
	CreatedByID *uint      `gorm:"index" json:"created_by_id"`
	CreatedBy   *user.User `gorm:"foreignKey:CreatedByID;references:UID;constraint:OnDelete:SET NULL" json:"-"`
	CreatedAt   time.Time  `gorm:"column:create_at;autoCreateTime" json:"create_at"`
	UpdatedAt   time.Time  `gorm:"column:update_at;autoUpdateTime" json:"update_at"`
}

func (UserStory) TableName() string {
	return "user_stories"
}

func (s *UserStory) BeforeSave(tx *gorm.DB) error {
	return s.Derive()
}

// SetApproved applies the approval flag and stamps ApprovedAt when it turns on.
func (s *UserStory) SetApproved(approved bool, now time.Time) {
	s.ApprovedAt = shared.Stamp(s.IsApproved, approved, s.ApprovedAt, now)
	s.IsApproved = approved
}

type CriteriaType string

const (
	CriteriaBehaviourDriven CriteriaType = "BD"
	CriteriaDescriptive     CriteriaType = "DS"
)

var CriteriaTypeChoices = []shared.Choice{
	{Code: string(CriteriaBehaviourDriven), Label: "Behaviour-Driven"},
	{Code: string(CriteriaDescriptive), Label: "Descriptive"},
}

func (t CriteriaType) Valid() bool { return shared.HasChoice(CriteriaTypeChoices, string(t)) }

// AcceptanceCriteria belongs to a user story, an issue, or both.
type AcceptanceCriteria struct {
	ID          uint         `gorm:"primaryKey" json:"id"`
	UserStoryID *uint        `gorm:"index" json:"user_story_id"`
	UserStory   *UserStory   `gorm:"foreignKey:UserStoryID;constraint:OnDelete:CASCADE" json:"-"`
	IssueID     *uint        `gorm:"index" json:"issue_id"`
	Issue       *issue.Issue `gorm:"foreignKey:IssueID;constraint:OnDelete:CASCADE" json:"-"`
	Description string       `gorm:"type:text" json:"description"`
	Given       string       `gorm:"type:text" json:"given"`
	When        string       `gorm:"type:text" json:"when"`
	Then        string       `gorm:"type:text" json:"then"`
	Type        CriteriaType `gorm:"size:2;not null;default:'BD'" json:"type"`
	IsMet       bool         `gorm:"not null;default:false" json:"is_met"`
	MetAt       *time.Time   `json:"met_at"`
	CreatedByID *uint        `gorm:"index" json:"created_by_id"`
	CreatedBy   *user.User   `gorm:"foreignKey:CreatedByID;references:UID;constraint:OnDelete:SET NULL" json:"-"`
	CreatedAt   time.Time    `gorm:"column:create_at;autoCreateTime" json:"create_at"`
	UpdatedAt   time.Time    `gorm:"column:update_at;autoUpdateTime" json:"update_at"`
}

func (AcceptanceCriteria) TableName() string {
	return "acceptance_criteria"
}

func (a *AcceptanceCriteria) SetMet(met bool, now time.Time) {
	a.MetAt = shared.Stamp(a.IsMet, met, a.MetAt, now)
	a.IsMet = met
}
