package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/scrumish/internal/application"
	"github.com/linskybing/scrumish/internal/domain/qa"
	"github.com/linskybing/scrumish/pkg/response"
)

type QAHandler struct {
	svc *application.QAService
}

func NewQAHandler(svc *application.QAService) *QAHandler {
	return &QAHandler{svc: svc}
}

// issueScope resolves the project and issue ids shared by every test case route.
func issueScope(c *gin.Context) (uint, uint, bool) {
	p, ok := currentProject(c)
	if !ok {
		return 0, 0, false
	}
	issueID, ok := pathID(c, "issue_id")
	if !ok {
		return 0, 0, false
	}
	return p.PID, issueID, true
}

// ListTestCases godoc
// @Summary List test cases of an issue
// @Tags qa
// @Security BearerAuth
// @Produce json
// @Param id path uint true "Project ID"
// @Param issue_id path uint true "Issue ID"
// @Success 200 {array} qa.TestCase
// @Failure 404 {object} response.ErrorResponse "Issue not found"
// @Router /projects/{id}/issues/{issue_id}/test-cases [get]
func (h *QAHandler) ListTestCases(c *gin.Context) {
	pid, issueID, ok := issueScope(c)
	if !ok {
		return
	}
	cases, err := h.svc.ListTestCases(pid, issueID)
	if err != nil {
		respondError(c, err)
		return
	}
	if cases == nil {
		cases = []qa.TestCase{}
	}
	c.JSON(http.StatusOK, cases)
}

// CreateTestCase godoc
// @Summary Create test case
// @Tags qa
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path uint true "Project ID"
// @Param issue_id path uint true "Issue ID"
// @Param input body qa.TestCaseInput true "Test case"
// @Success 201 {object} qa.TestCase
// @Failure 404 {object} response.ErrorResponse "Issue not found"
// @Router /projects/{id}/issues/{issue_id}/test-cases [post]
func (h *QAHandler) CreateTestCase(c *gin.Context) {
	pid, issueID, ok := issueScope(c)
	if !ok {
		return
	}
	var input qa.TestCaseInput
	if !bind(c, &input) {
		return
	}
	tc, err := h.svc.CreateTestCase(c, pid, issueID, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, tc)
}

// GetTestCase godoc
// @Summary Get test case
// @Tags qa
// @Security BearerAuth
// @Produce json
// @Param id path uint true "Project ID"
// @Param issue_id path uint true "Issue ID"
// @Param case_id path uint true "Test case ID"
// @Success 200 {object} qa.TestCase
// @Failure 404 {object} response.ErrorResponse "Test case not found"
// @Router /projects/{id}/issues/{issue_id}/test-cases/{case_id} [get]
func (h *QAHandler) GetTestCase(c *gin.Context) {
	pid, issueID, ok := issueScope(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "case_id")
	if !ok {
		return
	}
	tc, err := h.svc.GetTestCase(pid, issueID, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, tc)
}

// UpdateTestCase godoc
// @Summary Replace test case fields
// @Tags qa
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path uint true "Project ID"
// @Param issue_id path uint true "Issue ID"
// @Param case_id path uint true "Test case ID"
// @Param input body qa.TestCaseInput true "Test case"
// @Success 200 {object} qa.TestCase
// @Failure 404 {object} response.ErrorResponse "Test case not found"
// @Router /projects/{id}/issues/{issue_id}/test-cases/{case_id} [put]
func (h *QAHandler) UpdateTestCase(c *gin.Context) {
	pid, issueID, ok := issueScope(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "case_id")
	if !ok {
		return
	}
	var input qa.TestCaseInput
	if !bind(c, &input) {
		return
	}
	tc, err := h.svc.UpdateTestCase(c, pid, issueID, id, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, tc)
}

// DeleteTestCase godoc
// @Summary Delete test case and its executions
// @Tags qa
// @Security BearerAuth
// @Produce json
// @Param id path uint true "Project ID"
// @Param issue_id path uint true "Issue ID"
// @Param case_id path uint true "Test case ID"
// @Success 200 {object} response.MessageResponse
// @Failure 404 {object} response.ErrorResponse "Test case not found"
// @Router /projects/{id}/issues/{issue_id}/test-cases/{case_id} [delete]
func (h *QAHandler) DeleteTestCase(c *gin.Context) {
	pid, issueID, ok := issueScope(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "case_id")
	if !ok {
		return
	}
	if err := h.svc.DeleteTestCase(c, pid, issueID, id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "test case deleted"})
}

// ListExecutions godoc
// @Summary List executions of a test case
// @Tags qa
// @Security BearerAuth
// @Produce json
// @Param id path uint true "Project ID"
// @Param issue_id path uint true "Issue ID"
// @Param case_id path uint true "Test case ID"
// @Success 200 {array} qa.TestExecution
// @Failure 404 {object} response.ErrorResponse "Test case not found"
// @Router /projects/{id}/issues/{issue_id}/test-cases/{case_id}/executions [get]
func (h *QAHandler) ListExecutions(c *gin.Context) {
	pid, issueID, ok := issueScope(c)
	if !ok {
		return
	}
	caseID, ok := pathID(c, "case_id")
	if !ok {
		return
	}
	execs, err := h.svc.ListExecutions(pid, issueID, caseID)
	if err != nil {
		respondError(c, err)
		return
	}
	if execs == nil {
		execs = []qa.TestExecution{}
	}
	c.JSON(http.StatusOK, execs)
}

// RecordExecution godoc
// @Summary Record a test execution
// @Tags qa
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param id path uint true "Project ID"
// @Param issue_id path uint true "Issue ID"
// @Param case_id path uint true "Test case ID"
// @Param execution_type formData string false "MANUAL or AUTOMATED"
// @Param status formData string false "PASSED, FAILED, BLOCKED or NOT_EXECUTED"
// @Param log formData string false "Execution log"
// @Param evidence formData file false "Evidence file"
// @Success 201 {object} qa.TestExecution
// @Failure 404 {object} response.ErrorResponse "Test case not found"
// @Failure 503 {object} response.ErrorResponse "Object storage disabled"
// @Router /projects/{id}/issues/{issue_id}/test-cases/{case_id}/executions [post]
func (h *QAHandler) RecordExecution(c *gin.Context) {
	pid, issueID, ok := issueScope(c)
	if !ok {
		return
	}
	caseID, ok := pathID(c, "case_id")
	if !ok {
		return
	}
	var input qa.ExecutionInput
	if !bind(c, &input) {
		return
	}
	evidence, done, ok := formFile(c, "evidence", false)
	if !ok {
		return
	}
	defer done()

	e, err := h.svc.RecordExecution(c, pid, issueID, caseID, input, evidence)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, e)
}

// DownloadEvidence godoc
// @Summary Download execution evidence
// @Tags qa
// @Security BearerAuth
// @Produce octet-stream
// @Param id path uint true "Project ID"
// @Param issue_id path uint true "Issue ID"
// @Param case_id path uint true "Test case ID"
// @Param execution_id path uint true "Execution ID"
// @Success 200 {file} file
// @Failure 404 {object} response.ErrorResponse "Execution or evidence not found"
// @Router /projects/{id}/issues/{issue_id}/test-cases/{case_id}/executions/{execution_id}/evidence [get]
func (h *QAHandler) DownloadEvidence(c *gin.Context) {
	pid, issueID, ok := issueScope(c)
	if !ok {
		return
	}
	caseID, ok := pathID(c, "case_id")
	if !ok {
		return
	}
	id, ok := pathID(c, "execution_id")
	if !ok {
		return
	}
	e, body, err := h.svc.OpenEvidence(c, pid, issueID, caseID, id)
	if err != nil {
		respondError(c, err)
		return
	}
	sendFile(c, body, -1, "", e.EvidenceName)
}

// ListTestPlans godoc
// @Summary List project test plans
// @Tags qa
// @Security BearerAuth
// @Produce json
// @Param id path uint true "Project ID"
// @Success 200 {array} qa.TestPlan
// @Router /projects/{id}/test-plans [get]
func (h *QAHandler) ListTestPlans(c *gin.Context) {
	p, ok := currentProject(c)
	if !ok {
		return
	}
	plans, err := h.svc.ListTestPlans(p.PID)
	if err != nil {
		respondError(c, err)
		return
	}
	if plans == nil {
		plans = []qa.TestPlan{}
	}
	c.JSON(http.StatusOK, plans)
}

// GetTestPlan godoc
// @Summary Get test plan with its cases
// @Tags qa
// @Security BearerAuth
// @Produce json
// @Param id path uint true "Project ID"
// @Param plan_id path uint true "Test plan ID"
// @Success 200 {object} qa.TestPlan
// @Failure 404 {object} response.ErrorResponse "Test plan not found"
// @Router /projects/{id}/test-plans/{plan_id} [get]
func (h *QAHandler) GetTestPlan(c *gin.Context) {
	p, ok := currentProject(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "plan_id")
	if !ok {
		return
	}
	plan, err := h.svc.GetTestPlan(p.PID, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, plan)
}

// CreateTestPlan godoc
// @Summary Create test plan
// @Tags qa
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path uint true "Project ID"
// @Param input body qa.TestPlanInput true "Test plan"
// @Success 201 {object} qa.TestPlan
// @Failure 400 {object} response.ValidationErrorResponse "Bad request"
// @Router /projects/{id}/test-plans [post]
func (h *QAHandler) CreateTestPlan(c *gin.Context) {
	p, ok := currentProject(c)
	if !ok {
		return
	}
	var input qa.TestPlanInput
	if !bind(c, &input) {
		return
	}
	plan, err := h.svc.CreateTestPlan(c, p.PID, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, plan)
}

// UpdateTestPlan godoc
// @Summary Replace test plan fields and case set
// @Tags qa
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path uint true "Project ID"
// @Param plan_id path uint true "Test plan ID"
// @Param input body qa.TestPlanInput true "Test plan"
// @Success 200 {object} qa.TestPlan
// @Failure 404 {object} response.ErrorResponse "Test plan not found"
// @Router /projects/{id}/test-plans/{plan_id} [put]
func (h *QAHandler) UpdateTestPlan(c *gin.Context) {
	p, ok := currentProject(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "plan_id")
	if !ok {
		return
	}
	var input qa.TestPlanInput
	if !bind(c, &input) {
		return
	}
	plan, err := h.svc.UpdateTestPlan(c, p.PID, id, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, plan)
}

// DeleteTestPlan godoc
// @Summary Delete test plan
// @Tags qa
// @Security BearerAuth
// @Produce json
// @Param id path uint true "Project ID"
// @Param plan_id path uint true "Test plan ID"
// @Success 200 {object} response.MessageResponse
// @Failure 404 {object} response.ErrorResponse "Test plan not found"
// @Router /projects/{id}/test-plans/{plan_id} [delete]
func (h *QAHandler) DeleteTestPlan(c *gin.Context) {
	p, ok := currentProject(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "plan_id")
	if !ok {
		return
	}
	if err := h.svc.DeleteTestPlan(c, p.PID, id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "test plan deleted"})
}
