package application

import (
	"errors"
	"fmt"
	"io"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/scrumish/internal/domain/qa"
	"github.com/linskybing/scrumish/internal/domain/shared"
	"github.com/linskybing/scrumish/internal/repository"
	"github.com/linskybing/scrumish/pkg/storage"
	"github.com/linskybing/scrumish/pkg/utils"
	log "github.com/sirupsen/logrus"
)

var (
	ErrTestCaseNotFound  = errors.New("test case not found")
	ErrExecutionNotFound = errors.New("test execution not found")
	ErrEvidenceNotFound  = errors.New("execution has no evidence")
	ErrTestPlanNotFound  = errors.New("test plan not found")
)

// QAService manages test cases under issues, their executions, and
// project test plans.
type QAService struct {
	Repos *repository.Repos
	store storage.ObjectStore
}

func NewQAService(repos *repository.Repos, store storage.ObjectStore) *QAService {
	return &QAService{
		Repos: repos,
		store: store,
	}
}

func (s *QAService) issueInProject(projectID, issueID uint) error {
	if _, err := s.Repos.Issue.GetIssue(projectID, issueID); err != nil {
		return notFound(err, ErrIssueNotFound)
	}
	return nil
}

func (s *QAService) ListTestCases(projectID, issueID uint) ([]qa.TestCase, error) {
	if err := s.issueInProject(projectID, issueID); err != nil {
		return nil, err
	}
	return s.Repos.QA.ListTestCases(issueID)
}

func (s *QAService) GetTestCase(projectID, issueID, id uint) (qa.TestCase, error) {
	if err := s.issueInProject(projectID, issueID); err != nil {
		return qa.TestCase{}, err
	}
	tc, err := s.Repos.QA.GetTestCase(issueID, id)
	if err != nil {
		return qa.TestCase{}, notFound(err, ErrTestCaseNotFound)
	}
	return tc, nil
}

func (s *QAService) CreateTestCase(c *gin.Context, projectID, issueID uint, input qa.TestCaseInput) (qa.TestCase, error) {
	uid, err := callerID(c)
	if err != nil {
		return qa.TestCase{}, err
	}
	if err := s.issueInProject(projectID, issueID); err != nil {
		return qa.TestCase{}, err
	}

	tc := qa.TestCase{IssueID: issueID, CreatedByID: &uid}
	applyTestCase(&tc, input)
	if err := s.Repos.QA.CreateTestCase(&tc); err != nil {
		return qa.TestCase{}, err
	}

	utils.LogAuditWithConsole(c, "create", "test_case", idString(tc.ID), nil, tc, "test case created", s.Repos.Audit)
	return tc, nil
}

func (s *QAService) UpdateTestCase(c *gin.Context, projectID, issueID, id uint, input qa.TestCaseInput) (qa.TestCase, error) {
	tc, err := s.GetTestCase(projectID, issueID, id)
	if err != nil {
		return qa.TestCase{}, err
	}
	before := tc

	applyTestCase(&tc, input)
	if err := s.Repos.QA.UpdateTestCase(&tc); err != nil {
		return qa.TestCase{}, err
	}

	utils.LogAuditWithConsole(c, "update", "test_case", idString(tc.ID), before, tc, "test case updated", s.Repos.Audit)
	return tc, nil
}

// DeleteTestCase drops the case with its executions and their evidence objects.
func (s *QAService) DeleteTestCase(c *gin.Context, projectID, issueID, id uint) error {
	tc, err := s.GetTestCase(projectID, issueID, id)
	if err != nil {
		return err
	}
	execs, err := s.Repos.QA.ListExecutions(tc.ID)
	if err != nil {
		return err
	}
	if err := s.Repos.QA.DeleteTestCase(tc.ID); err != nil {
		return err
	}
	for _, e := range execs {
		s.removeObject(c, e.EvidenceKey)
	}

	utils.LogAuditWithConsole(c, "delete", "test_case", idString(tc.ID), tc, nil, "test case deleted", s.Repos.Audit)
	return nil
}

func applyTestCase(tc *qa.TestCase, input qa.TestCaseInput) {
	tc.Title = input.Title
	tc.Description = deref(input.Description)
	tc.Steps = deref(input.Steps)
	tc.ExpectedResult = deref(input.ExpectedResult)
}

func (s *QAService) ListExecutions(projectID, issueID, testCaseID uint) ([]qa.TestExecution, error) {
	if _, err := s.GetTestCase(projectID, issueID, testCaseID); err != nil {
		return nil, err
	}
	return s.Repos.QA.ListExecutions(testCaseID)
}

// RecordExecution stores one run of a test case. evidence may be nil.
func (s *QAService) RecordExecution(c *gin.Context, projectID, issueID, testCaseID uint, input qa.ExecutionInput, evidence *Upload) (qa.TestExecution, error) {
	uid, err := callerID(c)
	if err != nil {
		return qa.TestExecution{}, err
	}
	if _, err := s.GetTestCase(projectID, issueID, testCaseID); err != nil {
		return qa.TestExecution{}, err
	}
	if evidence != nil && s.store == nil {
		return qa.TestExecution{}, ErrStorageDisabled
	}

	e := qa.TestExecution{
		TestCaseID:    testCaseID,
		ExecutionType: qa.ExecutionManual,
		Status:        qa.ExecutionNotExecuted,
		ExecutedByID:  &uid,
		CreatedByID:   &uid,
		Log:           deref(input.Log),
	}
	if input.ExecutionType != "" {
		e.ExecutionType = qa.ExecutionType(input.ExecutionType)
	}
	if input.Status != "" {
		e.Status = qa.ExecutionStatus(input.Status)
	}

	if evidence != nil {
		key := storage.ObjectKey(fmt.Sprintf("executions/%d", testCaseID), evidence.Filename)
		if err := s.store.Put(requestContext(c), key, evidence.Body, evidence.Size, evidence.ContentType); err != nil {
			return qa.TestExecution{}, err
		}
		e.EvidenceKey = key
		e.EvidenceName = evidence.Filename
	}
	if err := s.Repos.QA.CreateExecution(&e); err != nil {
		s.removeObject(c, e.EvidenceKey)
		return qa.TestExecution{}, err
	}

	utils.LogAuditWithConsole(c, "create", "test_execution", idString(e.ID), nil, e, "test execution recorded", s.Repos.Audit)
	return e, nil
}

// OpenEvidence returns the evidence file of an execution; the caller closes the reader.
func (s *QAService) OpenEvidence(c *gin.Context, projectID, issueID, testCaseID, id uint) (qa.TestExecution, io.ReadCloser, error) {
	if s.store == nil {
		return qa.TestExecution{}, nil, ErrStorageDisabled
	}
	if _, err := s.GetTestCase(projectID, issueID, testCaseID); err != nil {
		return qa.TestExecution{}, nil, err
	}
	e, err := s.Repos.QA.GetExecution(testCaseID, id)
	if err != nil {
		return qa.TestExecution{}, nil, notFound(err, ErrExecutionNotFound)
	}
	if e.EvidenceKey == "" {
		return qa.TestExecution{}, nil, ErrEvidenceNotFound
	}
	body, err := s.store.Get(requestContext(c), e.EvidenceKey)
	if err != nil {
		return qa.TestExecution{}, nil, err
	}
	return e, body, nil
}

func (s *QAService) removeObject(c *gin.Context, key string) {
	if s.store == nil || key == "" {
		return
	}
	if err := s.store.Remove(requestContext(c), key); err != nil {
		log.WithError(err).WithField("key", key).Warn("failed to remove stored object")
	}
}

func (s *QAService) ListTestPlans(projectID uint) ([]qa.TestPlan, error) {
	return s.Repos.QA.ListTestPlans(projectID)
}

func (s *QAService) GetTestPlan(projectID, id uint) (qa.TestPlan, error) {
	p, err := s.Repos.QA.GetTestPlan(projectID, id)
	if err != nil {
		return qa.TestPlan{}, notFound(err, ErrTestPlanNotFound)
	}
	return p, nil
}

func (s *QAService) CreateTestPlan(c *gin.Context, projectID uint, input qa.TestPlanInput) (qa.TestPlan, error) {
	uid, err := callerID(c)
	if err != nil {
		return qa.TestPlan{}, err
	}

	p := qa.TestPlan{ProjectID: projectID, CreatedByID: &uid}
	if err := applyTestPlan(&p, input); err != nil {
		return qa.TestPlan{}, err
	}
	cases, err := s.projectTestCases(projectID, input.TestCaseIDs)
	if err != nil {
		return qa.TestPlan{}, err
	}
	if err := s.Repos.QA.CreateTestPlan(&p, cases); err != nil {
		return qa.TestPlan{}, err
	}
	p.TestCases = cases

	utils.LogAuditWithConsole(c, "create", "test_plan", idString(p.ID), nil, p, "test plan created", s.Repos.Audit)
	return p, nil
}

func (s *QAService) UpdateTestPlan(c *gin.Context, projectID, id uint, input qa.TestPlanInput) (qa.TestPlan, error) {
	p, err := s.GetTestPlan(projectID, id)
	if err != nil {
		return qa.TestPlan{}, err
	}
	before := p

	if err := applyTestPlan(&p, input); err != nil {
		return qa.TestPlan{}, err
	}
	cases, err := s.projectTestCases(projectID, input.TestCaseIDs)
	if err != nil {
		return qa.TestPlan{}, err
	}
	if err := s.Repos.QA.UpdateTestPlan(&p, cases); err != nil {
		return qa.TestPlan{}, err
	}
	p.TestCases = cases

	utils.LogAuditWithConsole(c, "update", "test_plan", idString(p.ID), before, p, "test plan updated", s.Repos.Audit)
	return p, nil
}

func (s *QAService) DeleteTestPlan(c *gin.Context, projectID, id uint) error {
	p, err := s.GetTestPlan(projectID, id)
	if err != nil {
		return err
	}
	if err := s.Repos.QA.DeleteTestPlan(id); err != nil {
		return err
	}
	utils.LogAuditWithConsole(c, "delete", "test_plan", idString(id), p, nil, "test plan deleted", s.Repos.Audit)
	return nil
}

func (s *QAService) projectTestCases(projectID uint, ids []uint) ([]qa.TestCase, error) {
	ids = uniqueIDs(ids)
	if len(ids) == 0 {
		return nil, nil
	}
	cases, err := s.Repos.QA.GetTestCasesByIDs(projectID, ids)
	if err != nil {
		return nil, err
	}
	if len(cases) != len(ids) {
		return nil, shared.NewValidationError("test_case_ids", "every test case must belong to this project")
	}
	return cases, nil
}

func applyTestPlan(p *qa.TestPlan, input qa.TestPlanInput) error {
	if err := p.SetBounds(input.StartDate, input.EndDate); err != nil {
		return err
	}
	p.Title = input.Title
	p.Description = deref(input.Description)
	p.EntryCriteria = deref(input.EntryCriteria)
	p.ExitCriteria = deref(input.ExitCriteria)
	return p.Derive()
}
