package sprint

type SprintInput struct {
	Name      string  `json:"name" form:"name" binding:"required,max=255" example:"Sprint 12"`
	Goal      *string `json:"goal" form:"goal"`
	Status    string  `json:"status" form:"status" binding:"omitempty,oneof=NOT_STARTED IN_PROGRESS COMPLETED ARCHIVED" example:"NOT_STARTED"`
	IsActive  *bool   `json:"is_active" form:"is_active"`
	IssueIDs  []uint  `json:"issue_ids" form:"issue_ids"`
	StartDate *string `json:"start_date" form:"start_date" example:"2024-01-01"`
	EndDate   *string `json:"end_date" form:"end_date" example:"2024-01-14"`
}
