//go:build integration
// +build integration

package integration

import (
	"log"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/scrumish/internal/testutils"
)

// TestContext holds all test dependencies
type TestContext struct {
	Server        *testutils.Server
	Router        *gin.Engine
	AdminToken    string
	LeadToken     string
	MemberToken   string
	OutsiderToken string
	AdminID       uint
	LeadID        uint
	MemberID      uint
	OutsiderID    uint
}

var testCtx *TestContext

// TestMain sets up the test environment
func TestMain(m *testing.M) {
	gormDB, cleanup := testutils.SetupPostgresForIntegration()

	if err := setupTestEnvironment(testutils.SetupRouter(gormDB, nil)); err != nil {
		cleanup()
		log.Fatalf("Failed to setup test environment: %v", err)
	}

	code := m.Run()

	cleanup()
	os.Exit(code)
}

func setupTestEnvironment(srv *testutils.Server) error {
	testCtx = &TestContext{Server: srv, Router: srv.Router}
	gen := NewTestDataGenerator()

	var err error
	if testCtx.AdminID, testCtx.AdminToken, err = gen.SignUp(srv.Router, "admin"); err != nil {
		return err
	}
	if err := srv.DB.Exec("UPDATE users SET is_admin = ? WHERE u_id = ?", true, testCtx.AdminID).Error; err != nil {
		return err
	}
	if testCtx.LeadID, testCtx.LeadToken, err = gen.SignUp(srv.Router, "lead"); err != nil {
		return err
	}
	if testCtx.MemberID, testCtx.MemberToken, err = gen.SignUp(srv.Router, "member"); err != nil {
		return err
	}
	if testCtx.OutsiderID, testCtx.OutsiderToken, err = gen.SignUp(srv.Router, "outsider"); err != nil {
		return err
	}
	return nil
}

// GetTestContext returns the global test context
func GetTestContext() *TestContext {
	return testCtx
}
