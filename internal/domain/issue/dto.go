package issue

// IssueInput is the full form for creating or replacing an issue.
type IssueInput struct {
	Title       string  `json:"title" form:"title" binding:"required,max=255" example:"Login fails on Safari"`
	Description *string `json:"description" form:"description"`
	Type        string  `json:"type" form:"type" binding:"omitempty,oneof=BUG TASK FEATURE IMPROVEMENT" example:"BUG"`
	Status      string  `json:"status" form:"status" binding:"omitempty,oneof=TO_DO IN_PROGRESS IN_REVIEW COMPLETED BLOCKED" example:"TO_DO"`
	Priority    string  `json:"priority" form:"priority" binding:"omitempty,oneof=low medium high critical" example:"medium"`
	AssigneeID  *uint   `json:"assignee_id" form:"assignee_id"`
	Resolution  *string `json:"resolution" form:"resolution"`

	StepsToReproduce *string `json:"steps_to_reproduce" form:"steps_to_reproduce"`
	ExpectedResult   *string `json:"expected_result" form:"expected_result"`
	ActualResult     *string `json:"actual_result" form:"actual_result"`
	Environment      *string `json:"environment" form:"environment"`

	Requirements        *string `json:"requirements" form:"requirements"`
	BusinessValue       *string `json:"business_value" form:"business_value"`
	FeatureDependencies *string `json:"feature_dependencies" form:"feature_dependencies"`

	PerformanceImpact *string `json:"performance_impact" form:"performance_impact"`
	EstimatedImpact   *string `json:"estimated_impact" form:"estimated_impact"`
	UserFeedback      *string `json:"user_feedback" form:"user_feedback"`
	TechnicalDetails  *string `json:"technical_details" form:"technical_details"`

	EffortEstimate *uint `json:"effort_estimate" form:"effort_estimate"`
	DependentOnID  *uint `json:"dependent_on_id" form:"dependent_on_id"`

	StartDate *string `json:"start_date" form:"start_date" example:"2024-01-01"`
	EndDate   *string `json:"end_date" form:"end_date" example:"2024-01-05"`
}

type IssueFilter struct {
	Status     string `form:"status"`
	Type       string `form:"type"`
	Priority   string `form:"priority"`
	AssigneeID *uint  `form:"assignee_id"`
}
