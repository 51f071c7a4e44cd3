package epic

type EpicInput struct {
	Title       string  `json:"title" form:"title" binding:"required,max=255" example:"Payments"`
	Description *string `json:"description" form:"description"`
	Status      string  `json:"status" form:"status" binding:"omitempty,oneof=TO_DO IN_PROGRESS COMPLETED ARCHIVED" example:"TO_DO"`
	Priority    string  `json:"priority" form:"priority" binding:"omitempty,oneof=low medium high critical" example:"low"`
	IsBlocked   *bool   `json:"is_blocked" form:"is_blocked"`
	IsPublished *bool   `json:"is_published" form:"is_published"`
	IssueIDs    []uint  `json:"issue_ids" form:"issue_ids"`
	StartDate   *string `json:"start_date" form:"start_date" example:"2024-01-01"`
	EndDate     *string `json:"end_date" form:"end_date" example:"2024-06-30"`
}
