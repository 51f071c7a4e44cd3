package membership

type AddMemberInput struct {
	UserID   uint   `json:"user_id" form:"user_id" binding:"required"`
	Role     string `json:"role" form:"role" binding:"omitempty,oneof=PRODUCT_OWNER SCRUM_MASTER DEVELOPER TESTER SCRIBE GUEST"`
	IsActive *bool  `json:"is_active" form:"is_active"`
}

type UpdateMemberInput struct {
	Role     *string `json:"role" form:"role" binding:"omitempty,oneof=PRODUCT_OWNER SCRUM_MASTER DEVELOPER TESTER SCRIBE GUEST"`
	IsActive *bool   `json:"is_active" form:"is_active"`
}

type InviteInput struct {
	Email string `json:"email" form:"email" binding:"required,email" example:"dev@example.com"`
	Role  string `json:"role" form:"role" binding:"required,oneof=PRODUCT_OWNER SCRUM_MASTER DEVELOPER TESTER SCRIBE GUEST" example:"DEVELOPER"`
}

// Invitation is what an invite resolves to. It is never stored.
type Invitation struct {
	ProjectID uint   `json:"project_id"`
	Email     string `json:"email"`
	Role      Role   `json:"role"`
}

type InviteResult struct {
	ProjectID uint   `json:"project_id"`
	Email     string `json:"email"`
	Role      Role   `json:"role"`
	Link      string `json:"link,omitempty"`
}
