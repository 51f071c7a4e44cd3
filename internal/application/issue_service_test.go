package application_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/linskybing/scrumish/internal/application"
	"github.com/linskybing/scrumish/internal/domain/issue"
	"github.com/linskybing/scrumish/internal/domain/project"
	"github.com/linskybing/scrumish/internal/domain/shared"
	"github.com/linskybing/scrumish/internal/domain/user"
	"github.com/linskybing/scrumish/internal/repository"
	"github.com/linskybing/scrumish/internal/repository/mock"
	"github.com/linskybing/scrumish/internal/testutils"
	storemock "github.com/linskybing/scrumish/pkg/storage/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupIssueMocks(t *testing.T) (*application.IssueService, *mock.MockIssueRepo, *storemock.MockObjectStore) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockIssue := mock.NewMockIssueRepo(ctrl)
	store := storemock.NewMockObjectStore(ctrl)
	repos := &repository.Repos{
		Issue: mockIssue,
		User:  mock.NewMockUserRepo(ctrl),
		Audit: mock.NewMockAuditRepo(ctrl),
	}
	stubAudit()
	return application.NewIssueService(repos, store), mockIssue, store
}

func TestDeleteIssueWithDependents(t *testing.T) {
	svc, mockIssue, _ := setupIssueMocks(t)
	c := contextAs(1, false)

	mockIssue.EXPECT().GetIssue(uint(10), uint(3)).Return(issue.Issue{ID: 3, ProjectID: 10}, nil)
	mockIssue.EXPECT().CountDependents(uint(3)).Return(int64(2), nil)

	assert.ErrorIs(t, svc.DeleteIssue(c, 10, 3), application.ErrIssueHasDependents)
}

func TestDeleteIssueRemovesAttachmentObjects(t *testing.T) {
	svc, mockIssue, store := setupIssueMocks(t)
	c := contextAs(1, false)

	mockIssue.EXPECT().GetIssue(uint(10), uint(3)).Return(issue.Issue{ID: 3, ProjectID: 10}, nil)
	mockIssue.EXPECT().CountDependents(uint(3)).Return(int64(0), nil)
	mockIssue.EXPECT().ListAttachments(uint(3)).Return([]issue.Attachment{{ID: 1, ObjectKey: "issues/3/a"}}, nil)
	mockIssue.EXPECT().DeleteIssue(uint(3)).Return(nil)
	store.EXPECT().Remove(gomock.Any(), "issues/3/a").Return(nil)

	require.NoError(t, svc.DeleteIssue(c, 10, 3))
}

func TestAddAttachment(t *testing.T) {
	svc, mockIssue, store := setupIssueMocks(t)
	c := contextAs(1, false)

	mockIssue.EXPECT().GetIssue(uint(10), uint(3)).Return(issue.Issue{ID: 3, ProjectID: 10}, nil).Times(2)

	t.Run("stored then recorded", func(t *testing.T) {
		var storedKey string
		store.EXPECT().Put(gomock.Any(), gomock.Any(), gomock.Any(), int64(5), "text/plain").
			DoAndReturn(func(_ context.Context, key string, _ io.Reader, _ int64, _ string) error {
				storedKey = key
				return nil
			})
		mockIssue.EXPECT().CreateAttachment(gomock.Any()).Return(nil)

		a, err := svc.AddAttachment(c, 10, 3, application.Upload{
			Filename: "notes.txt", ContentType: "text/plain", Size: 5, Body: bytes.NewBufferString("hello"),
		}, "log")
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(a.ObjectKey, "issues/3/"))
		assert.True(t, strings.HasSuffix(a.ObjectKey, "-notes.txt"))
		assert.Equal(t, storedKey, a.ObjectKey)
	})

	t.Run("object removed when row fails", func(t *testing.T) {
		store.EXPECT().Put(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		mockIssue.EXPECT().CreateAttachment(gomock.Any()).Return(errors.New("db down"))
		store.EXPECT().Remove(gomock.Any(), gomock.Any()).Return(nil)

		_, err := svc.AddAttachment(c, 10, 3, application.Upload{Filename: "x", Body: bytes.NewBufferString("")}, "")
		assert.Error(t, err)
	})
}

func TestAttachmentOnForeignIssueNotFound(t *testing.T) {
	svc, mockIssue, _ := setupIssueMocks(t)
	c := contextAs(1, false)

	mockIssue.EXPECT().GetIssue(uint(10), uint(99)).Return(issue.Issue{}, gorm.ErrRecordNotFound)

	_, _, err := svc.OpenAttachment(c, 10, 99, 1)
	assert.ErrorIs(t, err, application.ErrIssueNotFound)
}

func TestIssueDependencyRules(t *testing.T) {
	repos := repository.NewRepositories(testutils.NewSQLiteDB(t))
	stubAudit()
	svc := application.NewIssueService(repos, nil)

	u := user.User{Username: "deps", Email: "deps@example.com", Password: "x", IsActive: true}
	require.NoError(t, repos.User.SaveUser(&u))
	c := contextAs(u.UID, false)

	p := project.Project{Name: "deps", Type: project.TypeScrum, Category: "IT"}
	require.NoError(t, repos.Project.CreateProject(&p))
	other := project.Project{Name: "other", Type: project.TypeScrum, Category: "IT"}
	require.NoError(t, repos.Project.CreateProject(&other))

	create := func(pid uint, title string, dep *uint) (issue.Issue, error) {
		return svc.CreateIssue(c, pid, issue.IssueInput{Title: title, DependentOnID: dep})
	}

	a, err := create(p.PID, "a", nil)
	require.NoError(t, err)
	assert.Equal(t, issue.TypeTask, a.Type)
	assert.Equal(t, shared.StatusToDo, a.Status)
	assert.Equal(t, shared.PriorityMedium, a.Priority)

	b, err := create(p.PID, "b", &a.ID)
	require.NoError(t, err)
	cIssue, err := create(p.PID, "c", &b.ID)
	require.NoError(t, err)

	t.Run("cycle rejected", func(t *testing.T) {
		_, err := svc.UpdateIssue(c, p.PID, a.ID, issue.IssueInput{Title: "a", DependentOnID: &cIssue.ID})
		assert.ErrorIs(t, err, application.ErrDependencyCycle)
	})

	t.Run("self dependency rejected", func(t *testing.T) {
		_, err := svc.UpdateIssue(c, p.PID, a.ID, issue.IssueInput{Title: "a", DependentOnID: &a.ID})
		assert.ErrorIs(t, err, application.ErrDependencyCycle)
	})

	t.Run("cross project rejected", func(t *testing.T) {
		foreign, err := create(other.PID, "foreign", nil)
		require.NoError(t, err)

		_, err = create(p.PID, "d", &foreign.ID)
		var verr *shared.ValidationError
		require.True(t, errors.As(err, &verr))
		assert.Contains(t, verr.Fields, "dependent_on_id")
	})

	t.Run("dependents block deletion", func(t *testing.T) {
		assert.ErrorIs(t, svc.DeleteIssue(c, p.PID, b.ID), application.ErrIssueHasDependents)
		require.NoError(t, svc.DeleteIssue(c, p.PID, cIssue.ID))
		require.NoError(t, svc.DeleteIssue(c, p.PID, b.ID))
	})
}
