package qa

import (
	"time"

	"github.com/linskybing/scrumish/internal/domain/issue"
	"github.com/linskybing/scrumish/internal/domain/project"
	"github.com/linskybing/scrumish/internal/domain/shared"
	"github.com/linskybing/scrumish/internal/domain/user"
	"gorm.io/gorm"
)

var TestLevelChoices = []shared.Choice{
	{Code: "COMPONENT", Label: "Component"},
	{Code: "COMPONENT_INTEGRATION", Label: "Component Integration"},
	{Code: "SYSTEM", Label: "System"},
	{Code: "SYSTEM_INTEGRATION", Label: "System Integration"},
	{Code: "ACCEPTANCE", Label: "Acceptance"},
}

var TestTypeChoices = []shared.Choice{
	{Code: "FUNCTIONAL", Label: "Functional"},
	{Code: "NON_FUNCTIONAL", Label: "Non-Functional"},
	{Code: "BLACK_BOX", Label: "Black Box"},
	{Code: "WHITE_BOX", Label: "White Box"},
	{Code: "CONFIRMATION", Label: "Confirmation"},
	{Code: "REGRESSION", Label: "Regression"},
	{Code: "MAINTENANCE", Label: "Maintenance"},
}

var AcceptanceTestingTypeChoices = []shared.Choice{
	{Code: "USER", Label: "User"},
	{Code: "OPERATIONAL", Label: "Operational"},
	{Code: "ALPHA", Label: "Alpha"},
	{Code: "BETA", Label: "Beta"},
}

type ExecutionType string

const (
	ExecutionManual    ExecutionType = "MANUAL"
	ExecutionAutomated ExecutionType = "AUTOMATED"
)

var ExecutionTypeChoices = []shared.Choice{
	{Code: string(ExecutionManual), Label: "Manual"},
	{Code: string(ExecutionAutomated), Label: "Automated"},
}

type ExecutionStatus string

const (
	ExecutionPassed      ExecutionStatus = "PASSED"
	ExecutionFailed      ExecutionStatus = "FAILED"
	ExecutionBlocked     ExecutionStatus = "BLOCKED"
	ExecutionNotExecuted ExecutionStatus = "NOT_EXECUTED"
)

var ExecutionStatusChoices = []shared.Choice{
	{Code: string(ExecutionPassed), Label: "Passed"},
	{Code: string(ExecutionFailed), Label: "Failed"},
	{Code: string(ExecutionBlocked), Label: "Blocked"},
	{Code: string(ExecutionNotExecuted), Label: "Not Executed"},
}

type TestCase struct {
	ID             uint         `gorm:"primaryKey" json:"id"`
	IssueID        uint         `gorm:"not null;index" json:"issue_id"`
	Issue          *issue.Issue `gorm:"foreignKey:IssueID;constraint:OnDelete:CASCADE" json:"-"`
	Title          string       `gorm:"size:255;not null" json:"title"`
	Description    string       `gorm:"type:text" json:"description"`
	Steps          string       `gorm:"type:text" json:"steps"`
	ExpectedResult string       `gorm:"type:text" json:"expected_result"`
	CreatedByID    *uint        `gorm:"index" json:"created_by_id"`
	CreatedBy      *user.User   `gorm:"foreignKey:CreatedByID;references:UID;constraint:OnDelete:SET NULL" json:"-"`
	CreatedAt      time.Time    `gorm:"column:create_at;autoCreateTime" json:"create_at"`
	UpdatedAt      time.Time    `gorm:"column:update_at;autoUpdateTime" json:"update_at"`
}

func (TestCase) TableName() string {
	return "test_cases"
}

type TestExecution struct {
	ID            uint            `gorm:"primaryKey" json:"id"`
	TestCaseID    uint            `gorm:"not null;index" json:"test_case_id"`
	TestCase      *TestCase       `gorm:"foreignKey:TestCaseID;constraint:OnDelete:CASCADE" json:"-"`
	ExecutionType ExecutionType   `gorm:"size:10;not null;default:'MANUAL'" json:"execution_type"`
	Status        ExecutionStatus `gorm:"size:15;not null;default:'NOT_EXECUTED'" json:"status"`
	ExecutedByID  *uint           `gorm:"index" json:"executed_by_id"`
	ExecutedBy    *user.User      `gorm:"foreignKey:ExecutedByID;references:UID;constraint:OnDelete:SET NULL" json:"-"`
	ExecutionDate time.Time       `gorm:"autoCreateTime" json:"execution_date"`
	Log           string          `gorm:"type:text" json:"log"`
	EvidenceKey   string          `gorm:"size:512" json:"-"`
	EvidenceName  string          `gorm:"size:255" json:"evidence_name,omitempty"`
	CreatedByID   *uint           `gorm:"index" json:"created_by_id"`
	CreatedBy     *user.User      `gorm:"foreignKey:CreatedByID;references:UID;constraint:OnDelete:SET NULL" json:"-"`
	CreatedAt     time.Time       `gorm:"column:create_at;autoCreateTime" json:"create_at"`
	UpdatedAt     time.Time       `gorm:"column:update_at;autoUpdateTime" json:"update_at"`
}

func (TestExecution) TableName() string {
	return "test_executions"
}

type TestPlan struct {
	ID            uint             `gorm:"primaryKey" json:"id"`
	ProjectID     uint             `gorm:"not null;index" json:"project_id"`
	Project       *project.Project `gorm:"foreignKey:ProjectID;references:PID;constraint:OnDelete:CASCADE" json:"-"`
	Title         string           `gorm:"size:255;not null" json:"title"`
	Description   string           `gorm:"type:text" json:"description"`
	EntryCriteria string           `gorm:"type:text" json:"entry_criteria"`
	ExitCriteria  string           `gorm:"type:text" json:"exit_criteria"`
	TestCases     []TestCase       `gorm:"many2many:test_plan_cases;constraint:OnDelete:CASCADE" json:"test_cases,omitempty"`
	shared.Schedule
	CreatedByID *uint      `gorm:"index" json:"created_by_id"`
	CreatedBy   *user.User `gorm:"foreignKey:CreatedByID;references:UID;constraint:OnDelete:SET NULL" json:"-"`
	CreatedAt   time.Time  `gorm:"column:create_at;autoCreateTime" json:"create_at"`
	UpdatedAt   time.Time  `gorm:"column:update_at;autoUpdateTime" json:"update_at"`
}

func (TestPlan) TableName() string {
	return "test_plans"
}

func (p *TestPlan) BeforeSave(tx *gorm.DB) error {
	return p.Derive()
}
