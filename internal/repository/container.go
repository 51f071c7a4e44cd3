package repository

import (
	"gorm.io/gorm"
)

type Repos struct {
	User     UserRepo
	Project  ProjectRepo
	Member   MemberRepo
	Issue    IssueRepo
	Sprint   SprintRepo
	Epic     EpicRepo
	Story    StoryRepo
	QA       QARepo
	Settings SettingsRepo
	Audit    AuditRepo

	db *gorm.DB
}

func NewRepositories(db *gorm.DB) *Repos {
	return &Repos{
		User:     NewUserRepo(db),
		Project:  NewProjectRepo(db),
		Member:   NewMemberRepo(db),
		Issue:    NewIssueRepo(db),
		Sprint:   NewSprintRepo(db),
		Epic:     NewEpicRepo(db),
		Story:    NewStoryRepo(db),
		QA:       NewQARepo(db),
		Settings: NewSettingsRepo(db),
		Audit:    NewAuditRepo(db),
		db:       db,
	}
}

func (r *Repos) WithTx(tx *gorm.DB) *Repos {
	return &Repos{
		User:     r.User.WithTx(tx),
		Project:  r.Project.WithTx(tx),
		Member:   r.Member.WithTx(tx),
		Issue:    r.Issue.WithTx(tx),
		Sprint:   r.Sprint.WithTx(tx),
		Epic:     r.Epic.WithTx(tx),
		Story:    r.Story.WithTx(tx),
		QA:       r.QA.WithTx(tx),
		Settings: r.Settings.WithTx(tx),
		Audit:    r.Audit.WithTx(tx),
		db:       tx,
	}
}

// ExecTx runs fn against repositories bound to one transaction. Repos built
// without a database (unit tests with mocks) run fn directly.
func (r *Repos) ExecTx(fn func(*Repos) error) error {
	if r.db == nil {
		return fn(r)
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		return fn(r.WithTx(tx))
	})
}
