//go:build integration
// +build integration

package integration

import (
	"fmt"
	"math/rand"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/scrumish/internal/domain/membership"
	"github.com/linskybing/scrumish/internal/domain/project"
	"github.com/linskybing/scrumish/internal/domain/user"
	"github.com/linskybing/scrumish/pkg/response"
)

// TestDataGenerator generates test data for integration tests
type TestDataGenerator struct {
	rand *rand.Rand
}

// NewTestDataGenerator creates a new test data generator
func NewTestDataGenerator() *TestDataGenerator {
	return &TestDataGenerator{
		rand: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Name returns prefix with a random suffix
func (g *TestDataGenerator) Name(prefix string) string {
	return fmt.Sprintf("%s-%d", prefix, g.rand.Intn(1000000))
}

// SignUp registers a fresh user and logs it in
func (g *TestDataGenerator) SignUp(router *gin.Engine, prefix string) (uint, string, error) {
	client := NewHTTPClient(router, "")
	name := g.Name(prefix)

	resp, err := client.POST("/register", user.CreateUserInput{
		Username: name,
		Password: "password123",
		Email:    name + "@test.com",
	})
	if err != nil {
		return 0, "", err
	}
	if resp.StatusCode != http.StatusCreated {
		return 0, "", fmt.Errorf("register %s: %d %s", name, resp.StatusCode, resp.GetErrorMessage())
	}

	resp, err = client.POST("/login", user.LoginInput{Username: name, Password: "password123"})
	if err != nil {
		return 0, "", err
	}
	if resp.StatusCode != http.StatusOK {
		return 0, "", fmt.Errorf("login %s: %d %s", name, resp.StatusCode, resp.GetErrorMessage())
	}
	var tok response.TokenResponse
	if err := resp.DecodeJSON(&tok); err != nil {
		return 0, "", err
	}
	return tok.UID, tok.Token, nil
}

// CreateProject creates a project led by the token's owner
func (g *TestDataGenerator) CreateProject(router *gin.Engine, token, prefix string) (project.Project, error) {
	resp, err := NewHTTPClient(router, token).POST("/projects", project.ProjectInput{
		Name:     g.Name(prefix),
		Type:     "SC",
		Category: "Software",
	})
	if err != nil {
		return project.Project{}, err
	}
	if resp.StatusCode != http.StatusCreated {
		return project.Project{}, fmt.Errorf("create project: %d %s", resp.StatusCode, resp.GetErrorMessage())
	}
	var p project.Project
	err = resp.DecodeJSON(&p)
	return p, err
}

// AddMember adds uid to the project with role, acting as the lead
func (g *TestDataGenerator) AddMember(router *gin.Engine, leadToken string, pid, uid uint, role string) (membership.ProjectMember, error) {
	resp, err := NewHTTPClient(router, leadToken).POST(fmt.Sprintf("/projects/%d/members", pid), membership.AddMemberInput{
		UserID: uid,
		Role:   role,
	})
	if err != nil {
		return membership.ProjectMember{}, err
	}
	if resp.StatusCode != http.StatusCreated {
		return membership.ProjectMember{}, fmt.Errorf("add member: %d %s", resp.StatusCode, resp.GetErrorMessage())
	}
	var m membership.ProjectMember
	err = resp.DecodeJSON(&m)
	return m, err
}
