package membership

import (
	"time"

	"github.com/linskybing/scrumish/internal/domain/project"
	"github.com/linskybing/scrumish/internal/domain/shared"
	"github.com/linskybing/scrumish/internal/domain/user"
)

type Role string

const (
	RoleProductOwner Role = "PRODUCT_OWNER"
	RoleScrumMaster  Role = "SCRUM_MASTER"
	RoleDeveloper    Role = "DEVELOPER"
	RoleTester       Role = "TESTER"
	RoleScribe       Role = "SCRIBE"
	RoleGuest        Role = "GUEST"
)

var RoleChoices = []shared.Choice{
	{Code: string(RoleProductOwner), Label: "Product Owner"},
	{Code: string(RoleScrumMaster), Label: "Scrum Master"},
	{Code: string(RoleDeveloper), Label: "Developer"},
	{Code: string(RoleTester), Label: "Tester"},
	{Code: string(RoleScribe), Label: "Scribe"},
	{Code: string(RoleGuest), Label: "Guest"},
}

func (r Role) Valid() bool { return shared.HasChoice(RoleChoices, string(r)) }

// ManagingRoles may invite others into a project.
var ManagingRoles = []Role{RoleProductOwner, RoleScrumMaster}

// ProjectMember links a user to a project under one role. A user may hold
// several roles in the same project; the triple is unique.
type ProjectMember struct {
	ID         uint             `gorm:"primaryKey" json:"id"`
	ProjectID  uint             `gorm:"not null;uniqueIndex:idx_member_project_user_role" json:"project_id"`
	Project    *project.Project `gorm:"foreignKey:ProjectID;references:PID;constraint:OnDelete:CASCADE" json:"-"`
	UserID     uint             `gorm:"not null;uniqueIndex:idx_member_project_user_role;index" json:"user_id"`
	User       *user.User       `gorm:"foreignKey:UserID;references:UID;constraint:OnDelete:CASCADE" json:"user,omitempty"`
	Role       Role             `gorm:"size:15;not null;default:'DEVELOPER';uniqueIndex:idx_member_project_user_role" json:"role"`
	IsActive   bool             `gorm:"not null;default:false" json:"is_active"`
	DateJoined time.Time        `gorm:"autoUpdateTime" json:"date_joined"`
}

func (ProjectMember) TableName() string {
	return "project_members"
}
