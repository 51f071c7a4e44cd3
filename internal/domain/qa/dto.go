package qa

type TestCaseInput struct {
	Title          string  `json:"title" form:"title" binding:"required,max=255" example:"Card payment succeeds"`
	Description    *string `json:"description" form:"description"`
	Steps          *string `json:"steps" form:"steps"`
	ExpectedResult *string `json:"expected_result" form:"expected_result"`
}

// ExecutionInput records one run of a test case. Evidence is an optional
// multipart file named "evidence".
type ExecutionInput struct {
	ExecutionType string  `json:"execution_type" form:"execution_type" binding:"omitempty,oneof=MANUAL AUTOMATED" example:"MANUAL"`
	Status        string  `json:"status" form:"status" binding:"omitempty,oneof=PASSED FAILED BLOCKED NOT_EXECUTED" example:"PASSED"`
	Log           *string `json:"log" form:"log"`
}

type TestPlanInput struct {
	Title         string  `json:"title" form:"title" binding:"required,max=255" example:"Release 2.1 regression"`
	Description   *string `json:"description" form:"description"`
	EntryCriteria *string `json:"entry_criteria" form:"entry_criteria"`
	ExitCriteria  *string `json:"exit_criteria" form:"exit_criteria"`
	TestCaseIDs   []uint  `json:"test_case_ids" form:"test_case_ids"`
	StartDate     *string `json:"start_date" form:"start_date" example:"2024-01-01"`
	EndDate       *string `json:"end_date" form:"end_date" example:"2024-01-07"`
}
