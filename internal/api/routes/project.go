package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/linskybing/scrumish/internal/api/handlers"
)

// ProjectRoutes registers everything scoped to a single project. The group
// is expected to carry the project access middleware already.
func ProjectRoutes(rg *gin.RouterGroup, h *handlers.Handlers) {
	rg.GET("", h.Project.GetProjectByID)
	rg.PUT("", h.Project.UpdateProject)
	rg.DELETE("", h.Project.DeleteProject)

	members := rg.Group("/members")
	{
		members.GET("", h.Membership.ListMembers)
		members.POST("", h.Membership.AddMember)
		members.PUT("/:member_id", h.Membership.UpdateMember)
		members.DELETE("/:member_id", h.Membership.RemoveMember)
	}
	rg.POST("/invitations", h.Membership.Invite)

	issues := rg.Group("/issues")
	{
		issues.GET("", h.Issue.ListIssues)
		issues.POST("", h.Issue.CreateIssue)
		issues.GET("/:issue_id", h.Issue.GetIssue)
		issues.PUT("/:issue_id", h.Issue.UpdateIssue)
		issues.DELETE("/:issue_id", h.Issue.DeleteIssue)

		issues.GET("/:issue_id/attachments", h.Issue.ListAttachments)
		issues.POST("/:issue_id/attachments", h.Issue.UploadAttachment)
		issues.GET("/:issue_id/attachments/:attachment_id", h.Issue.DownloadAttachment)
		issues.DELETE("/:issue_id/attachments/:attachment_id", h.Issue.DeleteAttachment)

		cases := issues.Group("/:issue_id/test-cases")
		{
			cases.GET("", h.QA.ListTestCases)
			cases.POST("", h.QA.CreateTestCase)
			cases.GET("/:case_id", h.QA.GetTestCase)
			cases.PUT("/:case_id", h.QA.UpdateTestCase)
			cases.DELETE("/:case_id", h.QA.DeleteTestCase)
			cases.GET("/:case_id/executions", h.QA.ListExecutions)
			cases.POST("/:case_id/executions", h.QA.RecordExecution)
			cases.GET("/:case_id/executions/:execution_id/evidence", h.QA.DownloadEvidence)
		}
	}

	sprints := rg.Group("/sprints")
	{
		sprints.GET("", h.Sprint.ListSprints)
		sprints.POST("", h.Sprint.CreateSprint)
		sprints.GET("/:sprint_id", h.Sprint.GetSprint)
		sprints.PUT("/:sprint_id", h.Sprint.UpdateSprint)
		sprints.DELETE("/:sprint_id", h.Sprint.DeleteSprint)
	}

	epics := rg.Group("/epics")
	{
		epics.GET("", h.Epic.ListEpics)
		epics.POST("", h.Epic.CreateEpic)
		epics.GET("/:epic_id", h.Epic.GetEpic)
		epics.PUT("/:epic_id", h.Epic.UpdateEpic)
		epics.DELETE("/:epic_id", h.Epic.DeleteEpic)
	}

	stories := rg.Group("/stories")
	{
		stories.GET("", h.Story.ListStories)
		stories.POST("", h.Story.CreateStory)
		stories.GET("/:story_id", h.Story.GetStory)
		stories.PUT("/:story_id", h.Story.UpdateStory)
		stories.DELETE("/:story_id", h.Story.DeleteStory)

		stories.GET("/:story_id/criteria", h.Story.ListCriteria)
		stories.POST("/:story_id/criteria", h.Story.CreateCriteria)
		stories.PUT("/:story_id/criteria/:criteria_id", h.Story.UpdateCriteria)
		stories.DELETE("/:story_id/criteria/:criteria_id", h.Story.DeleteCriteria)
	}

	plans := rg.Group("/test-plans")
	{
		plans.GET("", h.QA.ListTestPlans)
		plans.POST("", h.QA.CreateTestPlan)
		plans.GET("/:plan_id", h.QA.GetTestPlan)
		plans.PUT("/:plan_id", h.QA.UpdateTestPlan)
		plans.DELETE("/:plan_id", h.QA.DeleteTestPlan)
	}
}

// AdminRoutes registers site administration endpoints.
func AdminRoutes(rg *gin.RouterGroup, h *handlers.Handlers) {
	rg.GET("/settings", h.Settings.GetSettings)
	rg.POST("/settings", h.Settings.CreateSettings)
	rg.PUT("/settings", h.Settings.UpdateSettings)
	rg.PUT("/settings/logo", h.Settings.UploadLogo)
	rg.GET("/audit-logs", h.Audit.GetAuditLogs)
}
