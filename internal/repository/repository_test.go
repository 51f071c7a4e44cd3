package repository_test

import (
	"errors"
	"testing"
	"time"

	"github.com/linskybing/scrumish/internal/domain/audit"
	"github.com/linskybing/scrumish/internal/domain/issue"
	"github.com/linskybing/scrumish/internal/domain/membership"
	"github.com/linskybing/scrumish/internal/domain/project"
	"github.com/linskybing/scrumish/internal/domain/qa"
	"github.com/linskybing/scrumish/internal/domain/settings"
	"github.com/linskybing/scrumish/internal/domain/shared"
	"github.com/linskybing/scrumish/internal/domain/sprint"
	"github.com/linskybing/scrumish/internal/domain/story"
	"github.com/linskybing/scrumish/internal/domain/user"
	"github.com/linskybing/scrumish/internal/repository"
	"github.com/linskybing/scrumish/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedUser(t *testing.T, repos *repository.Repos, name string) user.User {
	t.Helper()
	u := user.User{Username: name, Email: name + "@Example.com", Password: "x", IsActive: true}
	require.NoError(t, repos.User.SaveUser(&u))
	return u
}

func seedProject(t *testing.T, repos *repository.Repos, name string, lead *uint) project.Project {
	t.Helper()
	p := project.Project{Name: name, Type: project.TypeScrum, Category: "Software", LeadID: lead, IsActive: true}
	require.NoError(t, repos.Project.CreateProject(&p))
	return p
}

func seedMember(t *testing.T, repos *repository.Repos, pid, uid uint, role membership.Role, active bool) membership.ProjectMember {
	t.Helper()
	m := membership.ProjectMember{ProjectID: pid, UserID: uid, Role: role, IsActive: active}
	require.NoError(t, repos.Member.CreateMember(&m))
	return m
}

func seedIssue(t *testing.T, repos *repository.Repos, pid uint, title string) issue.Issue {
	t.Helper()
	i := issue.Issue{ProjectID: pid, Title: title, Type: issue.TypeTask, Status: shared.StatusToDo, Priority: shared.PriorityMedium}
	require.NoError(t, repos.Issue.CreateIssue(&i))
	return i
}

func at(v string) *time.Time {
	t, _ := time.Parse(shared.DateLayout, v)
	return &t
}

func TestProjectVisibility(t *testing.T) {
	repos := repository.NewRepositories(testutils.NewSQLiteDB(t))

	alice := seedUser(t, repos, "alice")
	bob := seedUser(t, repos, "bob")
	carol := seedUser(t, repos, "carol")

	led := seedProject(t, repos, "led-by-alice", &alice.UID)
	twoRoles := seedProject(t, repos, "bob-has-two-roles", &carol.UID)
	hidden := seedProject(t, repos, "carol-only", &carol.UID)
	inactive := seedProject(t, repos, "bob-inactive", &carol.UID)

	seedMember(t, repos, twoRoles.PID, bob.UID, membership.RoleDeveloper, true)
	seedMember(t, repos, twoRoles.PID, bob.UID, membership.RoleTester, true)
	seedMember(t, repos, inactive.PID, bob.UID, membership.RoleGuest, false)

	t.Run("each project once regardless of role count", func(t *testing.T) {
		projects, err := repos.Project.ListVisibleProjects(bob.UID)
		require.NoError(t, err)

		ids := make([]uint, 0, len(projects))
		for _, p := range projects {
			ids = append(ids, p.PID)
		}
		assert.ElementsMatch(t, []uint{twoRoles.PID, inactive.PID}, ids)
	})

	t.Run("lead sees own project without membership", func(t *testing.T) {
		got, err := repos.Project.GetVisibleProject(led.PID, alice.UID)
		require.NoError(t, err)
		assert.Equal(t, led.PID, got.PID)
	})

	t.Run("outsider gets record not found", func(t *testing.T) {
		_, err := repos.Project.GetVisibleProject(hidden.PID, bob.UID)
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	})

	t.Run("lead holding a membership is listed once", func(t *testing.T) {
		seedMember(t, repos, led.PID, alice.UID, membership.RoleDeveloper, true)

		projects, err := repos.Project.ListVisibleProjects(alice.UID)
		require.NoError(t, err)
		require.Len(t, projects, 1)
		assert.Equal(t, led.PID, projects[0].PID)
	})
}

func TestProjectDurationIsPersisted(t *testing.T) {
	repos := repository.NewRepositories(testutils.NewSQLiteDB(t))

	p := project.Project{Name: "timed", Type: project.TypeKanban, Category: "IT", IsActive: true}
	p.StartDate = at("2024-01-01")
	p.EndDate = at("2024-01-10")
	require.NoError(t, repos.Project.CreateProject(&p))

	got, err := repos.Project.GetProjectByID(p.PID)
	require.NoError(t, err)
	require.NotNil(t, got.Duration)
	assert.Equal(t, 9, *got.Duration)

	got.EndDate = nil
	require.NoError(t, repos.Project.UpdateProject(&got))

	got, err = repos.Project.GetProjectByID(p.PID)
	require.NoError(t, err)
	assert.Nil(t, got.Duration)

	bad := project.Project{Name: "backwards", Type: project.TypeKanban, Category: "IT"}
	bad.StartDate = at("2024-02-10")
	bad.EndDate = at("2024-02-01")
	err = repos.Project.CreateProject(&bad)
	var verr *shared.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Contains(t, verr.Fields, "end_date")
	assert.Zero(t, bad.PID)
}

func TestMemberRepo(t *testing.T) {
	repos := repository.NewRepositories(testutils.NewSQLiteDB(t))

	u := seedUser(t, repos, "dave")
	p := seedProject(t, repos, "members", nil)

	first := seedMember(t, repos, p.PID, u.UID, membership.RoleDeveloper, false)
	second := seedMember(t, repos, p.PID, u.UID, membership.RoleScrumMaster, true)

	t.Run("duplicate triple rejected", func(t *testing.T) {
		dup := membership.ProjectMember{ProjectID: p.PID, UserID: u.UID, Role: membership.RoleDeveloper}
		err := repos.Member.CreateMember(&dup)
		assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
	})

	t.Run("lock returns rows oldest first", func(t *testing.T) {
		rows, err := repos.Member.LockByProjectAndUser(p.PID, u.UID)
		require.NoError(t, err)
		require.Len(t, rows, 2)
		assert.Equal(t, first.ID, rows[0].ID)
		assert.Equal(t, second.ID, rows[1].ID)
	})

	t.Run("has role counts active rows only", func(t *testing.T) {
		ok, err := repos.Member.HasRole(p.PID, u.UID, membership.ManagingRoles)
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = repos.Member.HasRole(p.PID, u.UID, []membership.Role{membership.RoleDeveloper})
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("list preloads user", func(t *testing.T) {
		members, err := repos.Member.ListMembers(p.PID)
		require.NoError(t, err)
		require.Len(t, members, 2)
		require.NotNil(t, members[0].User)
		assert.Equal(t, "dave", members[0].User.Username)
	})

	t.Run("project delete cascades", func(t *testing.T) {
		require.NoError(t, repos.Project.DeleteProject(p.PID))
		members, err := repos.Member.ListMembers(p.PID)
		require.NoError(t, err)
		assert.Empty(t, members)
	})
}

func TestUserEmailLookupIgnoresCase(t *testing.T) {
	repos := repository.NewRepositories(testutils.NewSQLiteDB(t))
	seedUser(t, repos, "erin")

	u, err := repos.User.GetUserByEmail("ERIN@example.COM")
	require.NoError(t, err)
	assert.Equal(t, "erin", u.Username)
}

func TestIssueDependencies(t *testing.T) {
	repos := repository.NewRepositories(testutils.NewSQLiteDB(t))
	p := seedProject(t, repos, "deps", nil)

	base := seedIssue(t, repos, p.PID, "base")
	child := seedIssue(t, repos, p.PID, "child")
	child.DependentOnID = &base.ID
	require.NoError(t, repos.Issue.UpdateIssue(&child))

	dep, err := repos.Issue.GetDependencyID(child.ID)
	require.NoError(t, err)
	require.NotNil(t, dep)
	assert.Equal(t, base.ID, *dep)

	n, err := repos.Issue.CountDependents(base.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	assert.Error(t, repos.Issue.DeleteIssue(base.ID), "restricted while a dependent exists")

	other := seedProject(t, repos, "other", nil)
	foreign := seedIssue(t, repos, other.PID, "foreign")
	found, err := repos.Issue.GetIssuesByIDs(p.PID, []uint{base.ID, foreign.ID})
	require.NoError(t, err)
	assert.Len(t, found, 1)
}

func TestAttachmentKeysByProject(t *testing.T) {
	repos := repository.NewRepositories(testutils.NewSQLiteDB(t))
	p := seedProject(t, repos, "files", nil)
	i := seedIssue(t, repos, p.PID, "with file")

	a := issue.Attachment{IssueID: i.ID, ObjectKey: "issues/1/a.txt", Filename: "a.txt"}
	require.NoError(t, repos.Issue.CreateAttachment(&a))

	keys, err := repos.Issue.ListAttachmentKeysByProject(p.PID)
	require.NoError(t, err)
	assert.Equal(t, []string{"issues/1/a.txt"}, keys)
}

func TestSprintIssueLinks(t *testing.T) {
	repos := repository.NewRepositories(testutils.NewSQLiteDB(t))
	p := seedProject(t, repos, "sprinting", nil)
	a := seedIssue(t, repos, p.PID, "a")
	b := seedIssue(t, repos, p.PID, "b")

	s := sprint.Sprint{ProjectID: p.PID, Name: "S1", Status: sprint.StatusNotStarted, IsActive: true}
	require.NoError(t, repos.Sprint.CreateSprint(&s, []issue.Issue{a, b}))

	got, err := repos.Sprint.GetSprint(p.PID, s.ID)
	require.NoError(t, err)
	assert.Len(t, got.Issues, 2)

	require.NoError(t, repos.Sprint.UpdateSprint(&got, []issue.Issue{b}))
	got, err = repos.Sprint.GetSprint(p.PID, s.ID)
	require.NoError(t, err)
	require.Len(t, got.Issues, 1)
	assert.Equal(t, b.ID, got.Issues[0].ID)

	require.NoError(t, repos.Sprint.UpdateSprint(&got, nil))
	got, err = repos.Sprint.GetSprint(p.PID, s.ID)
	require.NoError(t, err)
	assert.Empty(t, got.Issues)

	require.NoError(t, repos.Sprint.DeleteSprint(s.ID))
	_, err = repos.Sprint.GetSprint(p.PID, s.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	_, err = repos.Issue.GetIssue(p.PID, a.ID)
	assert.NoError(t, err, "issues survive sprint deletion")
}

func TestSprintLinkToMissingIssueLeavesNothingBehind(t *testing.T) {
	db := testutils.NewSQLiteDB(t)
	repos := repository.NewRepositories(db)
	p := seedProject(t, repos, "sprinting", nil)
	kept := seedIssue(t, repos, p.PID, "kept")
	gone := seedIssue(t, repos, p.PID, "gone")
	require.NoError(t, repos.Issue.DeleteIssue(gone.ID))

	s := sprint.Sprint{ProjectID: p.PID, Name: "S1", Status: sprint.StatusNotStarted, IsActive: true}
	require.Error(t, repos.Sprint.CreateSprint(&s, []issue.Issue{kept, gone}))

	sprints, err := repos.Sprint.ListSprints(p.PID)
	require.NoError(t, err)
	assert.Empty(t, sprints)

	_, err = repos.Issue.GetIssue(p.PID, gone.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound, "a stale link must not resurrect the issue")

	existing := sprint.Sprint{ProjectID: p.PID, Name: "S2", Status: sprint.StatusNotStarted, IsActive: true}
	require.NoError(t, repos.Sprint.CreateSprint(&existing, []issue.Issue{kept}))
	existing.Name = "S2 renamed"
	require.Error(t, repos.Sprint.UpdateSprint(&existing, []issue.Issue{gone}))

	got, err := repos.Sprint.GetSprint(p.PID, existing.ID)
	require.NoError(t, err)
	assert.Equal(t, "S2", got.Name)
	require.Len(t, got.Issues, 1)
	assert.Equal(t, kept.ID, got.Issues[0].ID)

	var issues int64
	require.NoError(t, db.Model(&issue.Issue{}).Count(&issues).Error)
	assert.EqualValues(t, 1, issues)
}

func TestDeleteProjectWithChildren(t *testing.T) {
	db := testutils.NewSQLiteDB(t)
	repos := repository.NewRepositories(db)
	owner := seedUser(t, repos, "owner")
	p := seedProject(t, repos, "doomed", &owner.UID)
	seedMember(t, repos, p.PID, owner.UID, membership.RoleProductOwner, true)

	base := seedIssue(t, repos, p.PID, "base")
	blocked := seedIssue(t, repos, p.PID, "blocked")
	blocked.DependentOnID = &base.ID
	require.NoError(t, repos.Issue.UpdateIssue(&blocked))

	s := sprint.Sprint{ProjectID: p.PID, Name: "S1", Status: sprint.StatusNotStarted, IsActive: true}
	require.NoError(t, repos.Sprint.CreateSprint(&s, []issue.Issue{base, blocked}))
	us := story.UserStory{ProjectID: p.PID, Title: "as a user", IsActive: true, SprintID: &s.ID, ProductOwnerID: &owner.UID}
	require.NoError(t, repos.Story.CreateStory(&us, []issue.Issue{blocked}))

	other := seedProject(t, repos, "survivor", nil)
	survivor := seedIssue(t, repos, other.PID, "survivor")

	require.NoError(t, repos.Project.DeleteProject(p.PID))

	_, err := repos.Project.GetProjectByID(p.PID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	_, err = repos.Issue.GetIssue(p.PID, base.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	_, err = repos.Issue.GetIssue(p.PID, blocked.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	for _, model := range []any{&sprint.Sprint{}, &story.UserStory{}, &membership.ProjectMember{}} {
		var n int64
		require.NoError(t, db.Model(model).Where("project_id = ?", p.PID).Count(&n).Error)
		assert.Zero(t, n, "%T rows left behind", model)
	}

	_, err = repos.Issue.GetIssue(other.PID, survivor.ID)
	assert.NoError(t, err)
	_, err = repos.User.GetUserByID(owner.UID)
	assert.NoError(t, err)
}

func TestTestPlanCases(t *testing.T) {
	repos := repository.NewRepositories(testutils.NewSQLiteDB(t))
	p := seedProject(t, repos, "qa", nil)
	i := seedIssue(t, repos, p.PID, "feature")

	tc := qa.TestCase{IssueID: i.ID, Title: "login works"}
	require.NoError(t, repos.QA.CreateTestCase(&tc))

	inProject, err := repos.QA.GetTestCasesByIDs(p.PID, []uint{tc.ID})
	require.NoError(t, err)
	require.Len(t, inProject, 1)
	assert.Equal(t, tc.ID, inProject[0].ID)

	other := seedProject(t, repos, "elsewhere", nil)
	elsewhere, err := repos.QA.GetTestCasesByIDs(other.PID, []uint{tc.ID})
	require.NoError(t, err)
	assert.Empty(t, elsewhere)

	plan := qa.TestPlan{ProjectID: p.PID, Title: "release"}
	require.NoError(t, repos.QA.CreateTestPlan(&plan, []qa.TestCase{tc}))

	got, err := repos.QA.GetTestPlan(p.PID, plan.ID)
	require.NoError(t, err)
	require.Len(t, got.TestCases, 1)
	assert.Equal(t, "login works", got.TestCases[0].Title)
}

func TestSettingsSingleton(t *testing.T) {
	repos := repository.NewRepositories(testutils.NewSQLiteDB(t))

	_, err := repos.Settings.GetSettings()
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	s := settings.SiteSettings{DisplayName: "Team board"}
	require.NoError(t, repos.Settings.CreateSettings(&s))

	again := settings.SiteSettings{DisplayName: "Second"}
	assert.ErrorIs(t, repos.Settings.CreateSettings(&again), repository.ErrSingletonExists)

	assert.ErrorIs(t, repos.Settings.UpdateSettings(&settings.SiteSettings{DisplayName: "no id"}), gorm.ErrRecordNotFound)

	s.DisplayName = "Renamed"
	require.NoError(t, repos.Settings.UpdateSettings(&s))
	got, err := repos.Settings.GetSettings()
	require.NoError(t, err)
	assert.Equal(t, "Renamed", got.DisplayName)
	assert.True(t, got.Singleton, "updates never clear the singleton marker")
}

func TestSettingsSecondRowRejectedByDatabase(t *testing.T) {
	db := testutils.NewSQLiteDB(t)
	repos := repository.NewRepositories(db)

	first := settings.SiteSettings{DisplayName: "first"}
	require.NoError(t, repos.Settings.CreateSettings(&first))

	// Insert without the count check, as a concurrent creator would.
	second := settings.SiteSettings{DisplayName: "second", Singleton: true}
	assert.ErrorIs(t, db.Create(&second).Error, gorm.ErrDuplicatedKey)

	var n int64
	require.NoError(t, db.Model(&settings.SiteSettings{}).Count(&n).Error)
	assert.EqualValues(t, 1, n)
}

func TestDeleteOldAuditLogs(t *testing.T) {
	repos := repository.NewRepositories(testutils.NewSQLiteDB(t))

	old := audit.AuditLog{Action: "create", ResourceType: "project", CreatedAt: time.Now().AddDate(0, 0, -40)}
	recent := audit.AuditLog{Action: "update", ResourceType: "project"}
	require.NoError(t, repos.Audit.CreateAuditLog(&old))
	require.NoError(t, repos.Audit.CreateAuditLog(&recent))

	n, err := repos.Audit.DeleteOldAuditLogs(30)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	action := "update"
	logs, err := repos.Audit.GetAuditLogs(repository.AuditQueryParams{Action: &action})
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, recent.ID, logs[0].ID)
}

func TestExecTxRollsBack(t *testing.T) {
	repos := repository.NewRepositories(testutils.NewSQLiteDB(t))

	boom := errors.New("boom")
	err := repos.ExecTx(func(tx *repository.Repos) error {
		p := project.Project{Name: "rolled back", Type: project.TypeScrum, Category: "IT"}
		if err := tx.Project.CreateProject(&p); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	again := project.Project{Name: "rolled back", Type: project.TypeScrum, Category: "IT"}
	assert.NoError(t, repos.Project.CreateProject(&again), "name is free after rollback")
}
