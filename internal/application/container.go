package application

import (
	"github.com/linskybing/scrumish/internal/repository"
	"github.com/linskybing/scrumish/pkg/invite"
	"github.com/linskybing/scrumish/pkg/mailer"
	"github.com/linskybing/scrumish/pkg/storage"
)

type Services struct {
	Audit      *AuditService
	User       *UserService
	Project    *ProjectService
	Membership *MembershipService
	Issue      *IssueService
	Sprint     *SprintService
	Epic       *EpicService
	Story      *StoryService
	QA         *QAService
	Settings   *SettingsService
}

// New wires every service. A nil notifier sends mail over SMTP using the
// stored site settings, falling back to the environment.
func New(repos *repository.Repos, store storage.ObjectStore, signer *invite.Signer, notifier mailer.Notifier) *Services {
	settings := NewSettingsService(repos, store)
	if notifier == nil {
		notifier = mailer.NewSMTPNotifier(settings.MailConfig)
	}
	return &Services{
		Audit:      NewAuditService(repos),
		User:       NewUserService(repos),
		Project:    NewProjectService(repos),
		Membership: NewMembershipService(repos, signer, notifier),
		Issue:      NewIssueService(repos, store),
		Sprint:     NewSprintService(repos),
		Epic:       NewEpicService(repos),
		Story:      NewStoryService(repos),
		QA:         NewQAService(repos, store),
		Settings:   settings,
	}
}
