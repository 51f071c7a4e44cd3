package application_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/linskybing/scrumish/internal/application"
	"github.com/linskybing/scrumish/internal/domain/membership"
	"github.com/linskybing/scrumish/internal/domain/project"
	"github.com/linskybing/scrumish/internal/domain/user"
	"github.com/linskybing/scrumish/internal/repository"
	"github.com/linskybing/scrumish/internal/repository/mock"
	"github.com/linskybing/scrumish/internal/testutils"
	"github.com/linskybing/scrumish/pkg/invite"
	"github.com/linskybing/scrumish/pkg/mailer"
	mailmock "github.com/linskybing/scrumish/pkg/mailer/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type membershipMocks struct {
	member   *mock.MockMemberRepo
	user     *mock.MockUserRepo
	project  *mock.MockProjectRepo
	notifier *mailmock.MockNotifier
}

func testSigner() *invite.Signer {
	return invite.NewSigner("test-secret", "scrumish-test", time.Hour)
}

func setupMembershipMocks(t *testing.T) (*application.MembershipService, membershipMocks) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	m := membershipMocks{
		member:   mock.NewMockMemberRepo(ctrl),
		user:     mock.NewMockUserRepo(ctrl),
		project:  mock.NewMockProjectRepo(ctrl),
		notifier: mailmock.NewMockNotifier(ctrl),
	}
	repos := &repository.Repos{
		Member:  m.member,
		User:    m.user,
		Project: m.project,
		Audit:   mock.NewMockAuditRepo(ctrl),
	}
	stubAudit()
	return application.NewMembershipService(repos, testSigner(), m.notifier), m
}

func TestInvitePermissions(t *testing.T) {
	svc, m := setupMembershipMocks(t)
	lead := uint(1)
	p := project.Project{PID: 10, Name: "Apollo", LeadID: &lead}
	in := membership.InviteInput{Email: "new@example.com", Role: "DEVELOPER"}

	t.Run("plain developer is refused", func(t *testing.T) {
		c := contextAs(2, false)
		m.user.EXPECT().GetUserByID(uint(2)).Return(user.User{UID: 2, IsActive: true}, nil)
		m.member.EXPECT().HasRole(uint(10), uint(2), membership.ManagingRoles).Return(false, nil)

		_, err := svc.Invite(c, p, in)
		assert.ErrorIs(t, err, application.ErrForbidden)
	})

	t.Run("scrum master may invite", func(t *testing.T) {
		c := contextAs(3, false)
		m.user.EXPECT().GetUserByID(uint(3)).Return(user.User{UID: 3, IsActive: true}, nil)
		m.member.EXPECT().HasRole(uint(10), uint(3), membership.ManagingRoles).Return(true, nil)
		m.notifier.EXPECT().Send(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, msg mailer.Message) error {
			assert.Equal(t, []string{"new@example.com"}, msg.To)
			assert.Equal(t, "Invitation to join the project 'Apollo'", msg.Subject)
			assert.Contains(t, msg.Body, "/invitations/accept?token=")
			return nil
		})

		res, err := svc.Invite(c, p, in)
		require.NoError(t, err)
		assert.Equal(t, membership.RoleDeveloper, res.Role)
	})

	t.Run("lead may invite and token round-trips", func(t *testing.T) {
		c := contextAs(1, false)
		var sent mailer.Message
		m.notifier.EXPECT().Send(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, msg mailer.Message) error {
			sent = msg
			return nil
		})

		_, err := svc.Invite(c, p, in)
		require.NoError(t, err)

		idx := strings.Index(sent.Body, "token=")
		require.Greater(t, idx, 0)
		claims, err := testSigner().Parse(strings.TrimSpace(sent.Body[idx+len("token="):]))
		require.NoError(t, err)
		assert.Equal(t, uint(10), claims.ProjectID)
		assert.Equal(t, "new@example.com", claims.Email)
		assert.Equal(t, "DEVELOPER", claims.Role)
	})
}

func TestAcceptRejectsInvalidInvitations(t *testing.T) {
	svc, m := setupMembershipMocks(t)
	c := contextAs(0, false)

	t.Run("garbage token", func(t *testing.T) {
		_, err := svc.AcceptToken(c, "not-a-token")
		assert.ErrorIs(t, err, application.ErrInvalidInvitation)
	})

	t.Run("token from another key", func(t *testing.T) {
		other := invite.NewSigner("other-secret", "scrumish-test", time.Hour)
		tok, err := other.Sign(10, "new@example.com", "DEVELOPER")
		require.NoError(t, err)

		_, err = svc.AcceptToken(c, tok)
		assert.ErrorIs(t, err, application.ErrInvalidInvitation)
	})

	t.Run("unknown email", func(t *testing.T) {
		m.user.EXPECT().GetUserByEmail("ghost@example.com").Return(user.User{}, gorm.ErrRecordNotFound)

		_, err := svc.Accept(c, membership.Invitation{ProjectID: 10, Email: "ghost@example.com", Role: membership.RoleTester})
		assert.ErrorIs(t, err, application.ErrInvalidInvitation)
	})

	t.Run("unknown project", func(t *testing.T) {
		m.user.EXPECT().GetUserByEmail("new@example.com").Return(user.User{UID: 4}, nil)
		m.project.EXPECT().GetProjectByID(uint(404)).Return(project.Project{}, gorm.ErrRecordNotFound)

		_, err := svc.Accept(c, membership.Invitation{ProjectID: 404, Email: "new@example.com", Role: membership.RoleTester})
		assert.ErrorIs(t, err, application.ErrInvalidInvitation)
	})

	t.Run("unknown role", func(t *testing.T) {
		_, err := svc.Accept(c, membership.Invitation{ProjectID: 10, Email: "new@example.com", Role: "OWNER"})
		assert.ErrorIs(t, err, application.ErrInvalidInvitation)
	})
}

func TestAcceptRetriesAfterDuplicateKey(t *testing.T) {
	svc, m := setupMembershipMocks(t)
	c := contextAs(0, false)

	m.user.EXPECT().GetUserByEmail("new@example.com").Return(user.User{UID: 4}, nil)
	m.project.EXPECT().GetProjectByID(uint(10)).Return(project.Project{PID: 10}, nil)

	existing := membership.ProjectMember{ID: 8, ProjectID: 10, UserID: 4, Role: membership.RoleTester}
	gomock.InOrder(
		m.member.EXPECT().LockByProjectAndUser(uint(10), uint(4)).Return(nil, nil),
		m.member.EXPECT().CreateMember(gomock.Any()).Return(gorm.ErrDuplicatedKey),
		m.member.EXPECT().LockByProjectAndUser(uint(10), uint(4)).Return([]membership.ProjectMember{existing}, nil),
		m.member.EXPECT().UpdateMember(gomock.Any()).Return(nil),
	)

	got, err := svc.Accept(c, membership.Invitation{ProjectID: 10, Email: "new@example.com", Role: membership.RoleTester})
	require.NoError(t, err)
	assert.Equal(t, uint(8), got.ID)
	assert.True(t, got.IsActive)
}

// Accept against a real database exercises the locking upsert.
func TestAcceptUpsert(t *testing.T) {
	repos := repository.NewRepositories(testutils.NewSQLiteDB(t))
	stubAudit()
	svc := application.NewMembershipService(repos, testSigner(), nil)
	c := contextAs(0, false)

	u := user.User{Username: "ivy", Email: "ivy@example.com", Password: "x", IsActive: true}
	require.NoError(t, repos.User.SaveUser(&u))
	p := project.Project{Name: "upsert", Type: project.TypeScrum, Category: "IT", IsActive: true}
	require.NoError(t, repos.Project.CreateProject(&p))

	accept := func(role membership.Role) membership.ProjectMember {
		t.Helper()
		tok, err := testSigner().Sign(p.PID, "IVY@example.com", string(role))
		require.NoError(t, err)
		m, err := svc.AcceptToken(c, tok)
		require.NoError(t, err)
		return m
	}

	first := accept(membership.RoleDeveloper)
	assert.True(t, first.IsActive)
	assert.Equal(t, membership.RoleDeveloper, first.Role)

	again := accept(membership.RoleDeveloper)
	assert.Equal(t, first.ID, again.ID, "accepting twice is idempotent")

	changed := accept(membership.RoleTester)
	assert.Equal(t, first.ID, changed.ID, "the existing row is repurposed")
	assert.Equal(t, membership.RoleTester, changed.Role)

	rows, err := repos.Member.ListMembers(p.PID)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.True(t, rows[0].IsActive)

	// a user with several roles gets the matching row reactivated
	extra := membership.ProjectMember{ProjectID: p.PID, UserID: u.UID, Role: membership.RoleScribe}
	require.NoError(t, repos.Member.CreateMember(&extra))
	reactivated := accept(membership.RoleScribe)
	assert.Equal(t, extra.ID, reactivated.ID)
	assert.True(t, reactivated.IsActive)

	rows, err = repos.Member.ListMembers(p.PID)
	require.NoError(t, err)
	assert.Len(t, rows, 2)
}

func TestAddMemberRejectsDuplicateRole(t *testing.T) {
	svc, m := setupMembershipMocks(t)
	lead := uint(1)
	p := project.Project{PID: 10, LeadID: &lead}
	c := contextAs(1, false)

	m.user.EXPECT().GetUserByID(uint(4)).Return(user.User{UID: 4}, nil)
	m.member.EXPECT().CreateMember(gomock.Any()).Return(gorm.ErrDuplicatedKey)

	_, err := svc.AddMember(c, p, membership.AddMemberInput{UserID: 4, Role: "TESTER"})
	assert.ErrorIs(t, err, application.ErrMemberExists)
}

func TestMemberManagementChecksStoredAdminFlag(t *testing.T) {
	svc, m := setupMembershipMocks(t)
	lead := uint(1)
	p := project.Project{PID: 10, LeadID: &lead}

	t.Run("stale admin token is refused", func(t *testing.T) {
		c := contextAs(7, true)
		m.user.EXPECT().GetUserByID(uint(7)).Return(user.User{UID: 7, IsActive: true}, nil)

		_, err := svc.AddMember(c, p, membership.AddMemberInput{UserID: 4, Role: "TESTER"})
		assert.ErrorIs(t, err, application.ErrForbidden)
	})

	t.Run("stored admin may add members", func(t *testing.T) {
		c := contextAs(8, false)
		m.user.EXPECT().GetUserByID(uint(8)).Return(user.User{UID: 8, IsAdmin: true, IsActive: true}, nil)
		m.user.EXPECT().GetUserByID(uint(4)).Return(user.User{UID: 4}, nil)
		m.member.EXPECT().CreateMember(gomock.Any()).Return(nil)

		got, err := svc.AddMember(c, p, membership.AddMemberInput{UserID: 4, Role: "TESTER"})
		require.NoError(t, err)
		assert.Equal(t, membership.RoleTester, got.Role)
	})
}
