package project

// ProjectInput is the full form for creating or replacing a project.
type ProjectInput struct {
	Name        string  `json:"name" form:"name" binding:"required,max=255" example:"Checkout revamp"`
	Type        string  `json:"type" form:"type" binding:"required,oneof=SC KA WF AG LE SS P2 HY CP CC XP AP PM EC FD RA IP DT" example:"SC"`
	Category    string  `json:"category" form:"category" binding:"required,oneof=Software Marketing Finance Operations HR Sales IT Research Design Education Healthcare 'Customer Service' Legal Events Construction Non-Profit" example:"Software"`
	Description *string `json:"description" form:"description"`
	LeadID      *uint   `json:"lead_id" form:"lead_id"`
	IsActive    *bool   `json:"is_active" form:"is_active"`
	StartDate   *string `json:"start_date" form:"start_date" example:"2024-01-01"`
	EndDate     *string `json:"end_date" form:"end_date" example:"2024-03-31"`
}
