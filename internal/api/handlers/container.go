package handlers

import (
	"github.com/linskybing/scrumish/internal/application"
)

type Handlers struct {
	Audit      *AuditHandler
	User       *UserHandler
	Project    *ProjectHandler
	Membership *MembershipHandler
	Issue      *IssueHandler
	Sprint     *SprintHandler
	Epic       *EpicHandler
	Story      *StoryHandler
	QA         *QAHandler
	Settings   *SettingsHandler
}

func New(svc *application.Services) *Handlers {
	return &Handlers{
		Audit:      NewAuditHandler(svc.Audit),
		User:       NewUserHandler(svc.User),
		Project:    NewProjectHandler(svc.Project),
		Membership: NewMembershipHandler(svc.Membership),
		Issue:      NewIssueHandler(svc.Issue),
		Sprint:     NewSprintHandler(svc.Sprint),
		Epic:       NewEpicHandler(svc.Epic),
		Story:      NewStoryHandler(svc.Story),
		QA:         NewQAHandler(svc.QA),
		Settings:   NewSettingsHandler(svc.Settings),
	}
}
