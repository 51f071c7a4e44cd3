package story

type UserStoryInput struct {
	Title          string  `json:"title" form:"title" binding:"required,max=255" example:"As a shopper I can pay by card"`
	Description    *string `json:"description" form:"description"`
	Priority       string  `json:"priority" form:"priority" binding:"omitempty,oneof=low medium high critical" example:"low"`
	Status         string  `json:"status" form:"status" binding:"omitempty,oneof=TO_DO IN_PROGRESS IN_REVIEW COMPLETED BLOCKED" example:"TO_DO"`
	IsActive       *bool   `json:"is_active" form:"is_active"`
	IsBlocked      *bool   `json:"is_blocked" form:"is_blocked"`
	EpicID         *uint   `json:"epic_id" form:"epic_id"`
	SprintID       *uint   `json:"sprint_id" form:"sprint_id"`
	IssueIDs       []uint  `json:"issue_ids" form:"issue_ids"`
	ProductOwnerID *uint   `json:"product_owner_id" form:"product_owner_id"`
	IsApproved     *bool   `json:"is_approved" form:"is_approved"`
	StartDate      *string `json:"start_date" form:"start_date" example:"2024-01-01"`
	EndDate        *string `json:"end_date" form:"end_date" example:"2024-01-10"`
}

type CriteriaInput struct {
	IssueID     *uint   `json:"issue_id" form:"issue_id"`
	Description *string `json:"description" form:"description"`
	Given       *string `json:"given" form:"given"`
	When        *string `json:"when" form:"when"`
	Then        *string `json:"then" form:"then"`
	Type        string  `json:"type" form:"type" binding:"omitempty,oneof=BD DS" example:"BD"`
	IsMet       *bool   `json:"is_met" form:"is_met"`
}
