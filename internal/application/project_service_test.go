package application_test

import (
	"errors"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/linskybing/scrumish/internal/application"
	"github.com/linskybing/scrumish/internal/domain/project"
	"github.com/linskybing/scrumish/internal/domain/shared"
	"github.com/linskybing/scrumish/internal/domain/user"
	"github.com/linskybing/scrumish/internal/repository"
	"github.com/linskybing/scrumish/internal/repository/mock"
	"github.com/linskybing/scrumish/pkg/types"
	"github.com/linskybing/scrumish/pkg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func stubAudit() {
	utils.LogAuditWithConsole = func(c *gin.Context, action, resourceType, resourceID string, oldData, newData interface{}, msg string, repos repository.AuditRepo) {
	}
}

func contextAs(uid uint, admin bool) *gin.Context {
	c, _ := gin.CreateTestContext(nil)
	c.Set("claims", &types.Claims{UserID: uid, IsAdmin: admin})
	return c
}

func setupProjectMocks(t *testing.T) (*application.ProjectService, *mock.MockProjectRepo, *mock.MockUserRepo) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockProject := mock.NewMockProjectRepo(ctrl)
	mockUser := mock.NewMockUserRepo(ctrl)
	mockAudit := mock.NewMockAuditRepo(ctrl)

	repos := &repository.Repos{
		Project: mockProject,
		User:    mockUser,
		Audit:   mockAudit,
	}
	stubAudit()
	return application.NewProjectService(repos), mockProject, mockUser
}

func projectInput(name string) project.ProjectInput {
	return project.ProjectInput{Name: name, Type: "SC", Category: "Software"}
}

func TestCreateProject(t *testing.T) {
	svc, mockProject, mockUser := setupProjectMocks(t)

	t.Run("creator becomes lead", func(t *testing.T) {
		c := contextAs(5, false)
		mockProject.EXPECT().CreateProject(gomock.Any()).DoAndReturn(func(p *project.Project) error {
			p.PID = 1
			return nil
		})

		p, err := svc.CreateProject(c, projectInput("alpha"))
		require.NoError(t, err)
		require.NotNil(t, p.LeadID)
		assert.Equal(t, uint(5), *p.LeadID)
		assert.Equal(t, uint(5), *p.CreatedByID)
		assert.True(t, p.IsActive)
	})

	t.Run("explicit lead must exist", func(t *testing.T) {
		c := contextAs(5, false)
		lead := uint(99)
		mockUser.EXPECT().GetUserByID(lead).Return(user.User{}, gorm.ErrRecordNotFound)

		in := projectInput("beta")
		in.LeadID = &lead
		_, err := svc.CreateProject(c, in)

		var verr *shared.ValidationError
		require.True(t, errors.As(err, &verr))
		assert.Contains(t, verr.Fields, "lead_id")
	})

	t.Run("end before start", func(t *testing.T) {
		c := contextAs(5, false)
		in := projectInput("gamma")
		start, end := "2024-03-01", "2024-02-01"
		in.StartDate, in.EndDate = &start, &end

		_, err := svc.CreateProject(c, in)
		var verr *shared.ValidationError
		require.True(t, errors.As(err, &verr))
		assert.Contains(t, verr.Fields, "end_date")
	})

	t.Run("duplicate name", func(t *testing.T) {
		c := contextAs(5, false)
		mockProject.EXPECT().CreateProject(gomock.Any()).Return(gorm.ErrDuplicatedKey)

		_, err := svc.CreateProject(c, projectInput("alpha"))
		assert.ErrorIs(t, err, application.ErrProjectNameTaken)
	})

	t.Run("duration derived", func(t *testing.T) {
		c := contextAs(5, false)
		in := projectInput("delta")
		start, end := "2024-01-01", "2024-01-31"
		in.StartDate, in.EndDate = &start, &end
		mockProject.EXPECT().CreateProject(gomock.Any()).Return(nil)

		p, err := svc.CreateProject(c, in)
		require.NoError(t, err)
		require.NotNil(t, p.Duration)
		assert.Equal(t, 30, *p.Duration)
	})
}

func TestProjectAccess(t *testing.T) {
	svc, mockProject, mockUser := setupProjectMocks(t)
	lead := uint(1)

	t.Run("invisible project is not found", func(t *testing.T) {
		c := contextAs(2, false)
		mockProject.EXPECT().GetVisibleProject(uint(10), uint(2)).Return(project.Project{}, gorm.ErrRecordNotFound)

		_, err := svc.GetProject(c, 10)
		assert.ErrorIs(t, err, application.ErrProjectNotFound)
	})

	t.Run("member that is not lead cannot update", func(t *testing.T) {
		c := contextAs(2, false)
		mockProject.EXPECT().GetVisibleProject(uint(10), uint(2)).Return(project.Project{PID: 10, LeadID: &lead}, nil)
		mockUser.EXPECT().GetUserByID(uint(2)).Return(user.User{UID: 2, IsActive: true}, nil)

		_, err := svc.UpdateProject(c, 10, projectInput("renamed"))
		assert.ErrorIs(t, err, application.ErrForbidden)
	})

	t.Run("member that is not lead cannot delete", func(t *testing.T) {
		c := contextAs(2, false)
		mockProject.EXPECT().GetVisibleProject(uint(10), uint(2)).Return(project.Project{PID: 10, LeadID: &lead}, nil)
		mockUser.EXPECT().GetUserByID(uint(2)).Return(user.User{UID: 2, IsActive: true}, nil)

		assert.ErrorIs(t, svc.DeleteProject(c, 10), application.ErrForbidden)
	})

	t.Run("admin claim in token is not trusted once revoked", func(t *testing.T) {
		c := contextAs(2, true)
		mockProject.EXPECT().GetVisibleProject(uint(10), uint(2)).Return(project.Project{PID: 10, LeadID: &lead}, nil)
		mockUser.EXPECT().GetUserByID(uint(2)).Return(user.User{UID: 2, IsAdmin: false, IsActive: true}, nil)

		assert.ErrorIs(t, svc.DeleteProject(c, 10), application.ErrForbidden)
	})

	t.Run("deactivated admin is refused", func(t *testing.T) {
		c := contextAs(2, true)
		mockProject.EXPECT().GetVisibleProject(uint(10), uint(2)).Return(project.Project{PID: 10, LeadID: &lead}, nil)
		mockUser.EXPECT().GetUserByID(uint(2)).Return(user.User{UID: 2, IsAdmin: true, IsActive: false}, nil)

		_, err := svc.UpdateProject(c, 10, projectInput("renamed"))
		assert.ErrorIs(t, err, application.ErrForbidden)
	})

	t.Run("stored admin may delete without an admin token", func(t *testing.T) {
		c := contextAs(4, false)
		mockProject.EXPECT().GetVisibleProject(uint(10), uint(4)).Return(project.Project{PID: 10, LeadID: &lead}, nil)
		mockUser.EXPECT().GetUserByID(uint(4)).Return(user.User{UID: 4, IsAdmin: true, IsActive: true}, nil)
		mockProject.EXPECT().DeleteProject(uint(10)).Return(nil)

		assert.NoError(t, svc.DeleteProject(c, 10))
	})

	t.Run("admin outside the project still sees not found", func(t *testing.T) {
		c := contextAs(3, true)
		mockProject.EXPECT().GetVisibleProject(uint(10), uint(3)).Return(project.Project{}, gorm.ErrRecordNotFound)

		assert.ErrorIs(t, svc.DeleteProject(c, 10), application.ErrProjectNotFound)
	})

	t.Run("lead replaces fields", func(t *testing.T) {
		c := contextAs(1, false)
		existing := project.Project{PID: 10, Name: "old", Description: "kept?", LeadID: &lead}
		mockProject.EXPECT().GetVisibleProject(uint(10), uint(1)).Return(existing, nil)
		mockProject.EXPECT().UpdateProject(gomock.Any()).Return(nil)

		p, err := svc.UpdateProject(c, 10, projectInput("renamed"))
		require.NoError(t, err)
		assert.Equal(t, "renamed", p.Name)
		assert.Empty(t, p.Description, "omitted fields are cleared")
		assert.Equal(t, &lead, p.LeadID)
	})

	t.Run("lead deletes", func(t *testing.T) {
		c := contextAs(1, false)
		mockProject.EXPECT().GetVisibleProject(uint(10), uint(1)).Return(project.Project{PID: 10, LeadID: &lead}, nil)
		mockProject.EXPECT().DeleteProject(uint(10)).Return(nil)

		assert.NoError(t, svc.DeleteProject(c, 10))
	})
}

func TestListProjectsRequiresCaller(t *testing.T) {
	svc, _, _ := setupProjectMocks(t)
	c, _ := gin.CreateTestContext(nil)

	_, err := svc.ListProjects(c)
	assert.ErrorIs(t, err, application.ErrUnauthenticated)
}
