package repository

import (
	"github.com/linskybing/scrumish/internal/domain/qa"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type QARepo interface {
	GetTestCase(issueID, id uint) (qa.TestCase, error)
	ListTestCases(issueID uint) ([]qa.TestCase, error)
	GetTestCasesByIDs(projectID uint, ids []uint) ([]qa.TestCase, error)
	CreateTestCase(tc *qa.TestCase) error
	UpdateTestCase(tc *qa.TestCase) error
	DeleteTestCase(id uint) error

	ListExecutions(testCaseID uint) ([]qa.TestExecution, error)
	GetExecution(testCaseID, id uint) (qa.TestExecution, error)
	CreateExecution(e *qa.TestExecution) error

	GetTestPlan(projectID, id uint) (qa.TestPlan, error)
	ListTestPlans(projectID uint) ([]qa.TestPlan, error)
	CreateTestPlan(p *qa.TestPlan, cases []qa.TestCase) error
	UpdateTestPlan(p *qa.TestPlan, cases []qa.TestCase) error
	DeleteTestPlan(id uint) error

	WithTx(tx *gorm.DB) QARepo
}

type DBQARepo struct {
	db *gorm.DB
}

func NewQARepo(db *gorm.DB) *DBQARepo {
	return &DBQARepo{
		db: db,
	}
}

func (r *DBQARepo) GetTestCase(issueID, id uint) (qa.TestCase, error) {
	var tc qa.TestCase
	err := r.db.Where("issue_id = ? AND id = ?", issueID, id).First(&tc).Error
	return tc, err
}

func (r *DBQARepo) ListTestCases(issueID uint) ([]qa.TestCase, error) {
	var cases []qa.TestCase
	err := r.db.Where("issue_id = ?", issueID).
		Order("create_at DESC").Order("id DESC").
		Find(&cases).Error
	return cases, err
}

func (r *DBQARepo) GetTestCasesByIDs(projectID uint, ids []uint) ([]qa.TestCase, error) {
	var cases []qa.TestCase
	if len(ids) == 0 {
		return cases, nil
	}
	err := r.db.Joins("JOIN issues ON issues.id = test_cases.issue_id").
		Where("issues.project_id = ? AND test_cases.id IN ?", projectID, ids).
		Find(&cases).Error
	return cases, err
}

func (r *DBQARepo) CreateTestCase(tc *qa.TestCase) error {
	return r.db.Omit(clause.Associations).Create(tc).Error
}

func (r *DBQARepo) UpdateTestCase(tc *qa.TestCase) error {
	return r.db.Omit(clause.Associations).Save(tc).Error
}

func (r *DBQARepo) DeleteTestCase(id uint) error {
	return r.db.Delete(&qa.TestCase{}, id).Error
}

func (r *DBQARepo) ListExecutions(testCaseID uint) ([]qa.TestExecution, error) {
	var execs []qa.TestExecution
	err := r.db.Where("test_case_id = ?", testCaseID).
		Order("execution_date DESC").Order("id DESC").
		Find(&execs).Error
	return execs, err
}

func (r *DBQARepo) GetExecution(testCaseID, id uint) (qa.TestExecution, error) {
	var e qa.TestExecution
	err := r.db.Where("test_case_id = ? AND id = ?", testCaseID, id).First(&e).Error
	return e, err
}

func (r *DBQARepo) CreateExecution(e *qa.TestExecution) error {
	return r.db.Omit(clause.Associations).Create(e).Error
}

func (r *DBQARepo) GetTestPlan(projectID, id uint) (qa.TestPlan, error) {
	var p qa.TestPlan
	err := r.db.Preload("TestCases").
		Where("project_id = ? AND id = ?", projectID, id).
		First(&p).Error
	return p, err
}

func (r *DBQARepo) ListTestPlans(projectID uint) ([]qa.TestPlan, error) {
	var plans []qa.TestPlan
	err := r.db.Where("project_id = ?", projectID).
		Order("create_at DESC").Order("id DESC").
		Find(&plans).Error
	return plans, err
}

func (r *DBQARepo) CreateTestPlan(p *qa.TestPlan, cases []qa.TestCase) error {
	return saveWithLinks(r.db, p, true, "TestCases", cases)
}

func (r *DBQARepo) UpdateTestPlan(p *qa.TestPlan, cases []qa.TestCase) error {
	return saveWithLinks(r.db, p, false, "TestCases", cases)
}

func (r *DBQARepo) DeleteTestPlan(id uint) error {
	return r.db.Select(clause.Associations).Delete(&qa.TestPlan{ID: id}).Error
}

func (r *DBQARepo) WithTx(tx *gorm.DB) QARepo {
	if tx == nil {
		return r
	}
	return &DBQARepo{
		db: tx,
	}
}
