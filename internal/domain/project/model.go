package project

import (
	"time"

	"github.com/linskybing/scrumish/internal/domain/shared"
	"github.com/linskybing/scrumish/internal/domain/user"
	"gorm.io/gorm"
)

// Type is the delivery methodology a project follows.
type Type string

const (
	TypeScrum          Type = "SC"
	TypeKanban         Type = "KA"
	TypeWaterfall      Type = "WF"
	TypeAgile          Type = "AG"
	TypeLean           Type = "LE"
	TypeSixSigma       Type = "SS"
	TypePrince2        Type = "P2"
	TypeHybrid         Type = "HY"
	TypeCriticalPath   Type = "CP"
	TypeCriticalChain  Type = "CC"
	TypeExtreme        Type = "XP"
	TypeAdaptive       Type = "AP"
	TypePMBOK          Type = "PM"
	TypeEventChain     Type = "EC"
	TypeFeatureDriven  Type = "FD"
	TypeRapid          Type = "RA"
	TypeIntegrated     Type = "IP"
	TypeDesignThinking Type = "DT"
)

var TypeChoices = []shared.Choice{
	{Code: string(TypeScrum), Label: "Scrum"},
	{Code: string(TypeKanban), Label: "Kanban"},
	{Code: string(TypeWaterfall), Label: "Waterfall"},
	{Code: string(TypeAgile), Label: "Agile"},
	{Code: string(TypeLean), Label: "Lean"},
	{Code: string(TypeSixSigma), Label: "Six Sigma"},
	{Code: string(TypePrince2), Label: "PRINCE2"},
	{Code: string(TypeHybrid), Label: "Hybrid"},
	{Code: string(TypeCriticalPath), Label: "Critical Path Method"},
	{Code: string(TypeCriticalChain), Label: "Critical Chain Project Management"},
	{Code: string(TypeExtreme), Label: "Extreme Programming"},
	{Code: string(TypeAdaptive), Label: "Adaptive Project Framework"},
	{Code: string(TypePMBOK), Label: "PMBOK (Project Management Body of Knowledge)"},
	{Code: string(TypeEventChain), Label: "Event Chain Methodology"},
	{Code: string(TypeFeatureDriven), Label: "Feature-Driven Development"},
	{Code: string(TypeRapid), Label: "Rapid Application Development"},
	{Code: string(TypeIntegrated), Label: "Integrated Project Delivery"},
	{Code: string(TypeDesignThinking), Label: "Design Thinking"},
}

func (t Type) Valid() bool { return shared.HasChoice(TypeChoices, string(t)) }

type Category string

var CategoryChoices = []shared.Choice{
	{Code: "Software", Label: "Software Development"},
	{Code: "Marketing", Label: "Marketing Campaigns"},
	{Code: "Finance", Label: "Financial Planning"},
	{Code: "Operations", Label: "Operations Management"},
	{Code: "HR", Label: "Human Resources"},
	{Code: "Sales", Label: "Sales and CRM"},
	{Code: "IT", Label: "IT Infrastructure"},
	{Code: "Research", Label: "Research and Development"},
	{Code: "Design", Label: "Product or Graphic Design"},
	{Code: "Education", Label: "Educational Projects"},
	{Code: "Healthcare", Label: "Healthcare Services"},
	{Code: "Customer Service", Label: "Customer Support"},
	{Code: "Legal", Label: "Legal Projects"},
	{Code: "Events", Label: "Event Planning"},
	{Code: "Construction", Label: "Construction Projects"},
	{Code: "Non-Profit", Label: "Non-Profit Initiatives"},
}

func (c Category) Valid() bool { return shared.HasChoice(CategoryChoices, string(c)) }

// Project is the root aggregate; every other work item hangs off one.
// Visibility is granted to the lead and to anyone holding a membership row.
type Project struct {
	PID         uint       `gorm:"primaryKey;column:p_id;autoIncrement" json:"p_id"`
	Name        string     `gorm:"size:255;not null;uniqueIndex" json:"name"`
	Type        Type       `gorm:"size:3;not null" json:"type"`
	Category    Category   `gorm:"size:20;not null" json:"category"`
	Description string     `gorm:"type:text" json:"description"`
	LeadID      *uint      `gorm:"index" json:"lead_id"`
	Lead        *user.User `gorm:"foreignKey:LeadID;references:UID;constraint:OnDelete:SET NULL" json:"-"`
	IsActive    bool       `gorm:"not null" json:"is_active"`
	shared.Schedule
	CreatedByID *uint      `gorm:"index" json:"created_by_id"`
	CreatedBy   *user.User `gorm:"foreignKey:CreatedByID;references:UID;constraint:OnDelete:SET NULL" json:"-"`
	CreatedAt   time.Time  `gorm:"column:create_at;autoCreateTime" json:"create_at"`
	UpdatedAt   time.Time  `gorm:"column:update_at;autoUpdateTime" json:"update_at"`
}

func (Project) TableName() string {
	return "projects"
}

func (p *Project) BeforeSave(tx *gorm.DB) error {
	return p.Derive()
}

// IsLead reports whether uid leads the project.
func (p *Project) IsLead(uid uint) bool {
	return p.LeadID != nil && *p.LeadID == uid
}
