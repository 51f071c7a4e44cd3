package application_test

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/linskybing/scrumish/internal/application"
	"github.com/linskybing/scrumish/internal/config"
	"github.com/linskybing/scrumish/internal/domain/settings"
	"github.com/linskybing/scrumish/internal/repository"
	"github.com/linskybing/scrumish/internal/repository/mock"
	storemock "github.com/linskybing/scrumish/pkg/storage/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupSettingsMocks(t *testing.T) (*application.SettingsService, *mock.MockSettingsRepo, *storemock.MockObjectStore) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockSettings := mock.NewMockSettingsRepo(ctrl)
	store := storemock.NewMockObjectStore(ctrl)
	repos := &repository.Repos{
		Settings: mockSettings,
		Audit:    mock.NewMockAuditRepo(ctrl),
	}
	stubAudit()
	return application.NewSettingsService(repos, store), mockSettings, store
}

func TestSettingsAreCached(t *testing.T) {
	svc, mockSettings, _ := setupSettingsMocks(t)

	mockSettings.EXPECT().GetSettings().Return(settings.SiteSettings{ID: 1, DisplayName: "Acme"}, nil).Times(1)

	for i := 0; i < 3; i++ {
		st, err := svc.GetSettings()
		require.NoError(t, err)
		assert.Equal(t, "Acme", st.DisplayName)
	}
}

func TestSettingsMissingRow(t *testing.T) {
	svc, mockSettings, _ := setupSettingsMocks(t)

	mockSettings.EXPECT().GetSettings().Return(settings.SiteSettings{}, gorm.ErrRecordNotFound).Times(1)

	_, err := svc.GetSettings()
	assert.ErrorIs(t, err, application.ErrSettingsNotFound)

	info := svc.SiteInfo(context.Background())
	assert.Equal(t, settings.DefaultDisplayName, info.DisplayName)
	assert.Empty(t, info.LogoURL)
}

func TestCreateSettingsTwice(t *testing.T) {
	svc, mockSettings, _ := setupSettingsMocks(t)
	c := contextAs(1, true)

	mockSettings.EXPECT().CreateSettings(gomock.Any()).Return(repository.ErrSingletonExists)

	_, err := svc.CreateSettings(c, settings.SettingsInput{})
	assert.ErrorIs(t, err, application.ErrSettingsExists)
}

func TestUpdateSettingsInvalidatesCache(t *testing.T) {
	svc, mockSettings, _ := setupSettingsMocks(t)
	c := contextAs(1, true)

	stored := settings.SiteSettings{ID: 1, DisplayName: "Old", SMTPHost: "mail.old", SMTPPassword: "secret"}
	gomock.InOrder(
		mockSettings.EXPECT().GetSettings().Return(stored, nil),
		mockSettings.EXPECT().GetSettings().Return(stored, nil),
		mockSettings.EXPECT().UpdateSettings(gomock.Any()).DoAndReturn(func(s *settings.SiteSettings) error {
			assert.Equal(t, "secret", s.SMTPPassword, "omitted password is kept")
			return nil
		}),
		mockSettings.EXPECT().GetSettings().Return(settings.SiteSettings{ID: 1, DisplayName: "New"}, nil),
	)

	st, err := svc.GetSettings()
	require.NoError(t, err)
	assert.Equal(t, "Old", st.DisplayName)

	name := "New"
	_, err = svc.UpdateSettings(c, settings.SettingsInput{DisplayName: &name})
	require.NoError(t, err)

	st, err = svc.GetSettings()
	require.NoError(t, err)
	assert.Equal(t, "New", st.DisplayName)
}

func TestMailConfigSource(t *testing.T) {
	config.SMTPHost = "env.example.com"
	config.SMTPPort = 25
	config.MailFrom = "noreply@example.com"

	t.Run("environment without stored smtp", func(t *testing.T) {
		svc, mockSettings, _ := setupSettingsMocks(t)
		mockSettings.EXPECT().GetSettings().Return(settings.SiteSettings{ID: 1}, nil)

		cfg := svc.MailConfig(context.Background())
		assert.Equal(t, "env.example.com", cfg.Host)
		assert.Equal(t, 25, cfg.Port)
	})

	t.Run("stored smtp wins", func(t *testing.T) {
		svc, mockSettings, _ := setupSettingsMocks(t)
		mockSettings.EXPECT().GetSettings().Return(settings.SiteSettings{ID: 1, SMTPHost: "db.example.com", SMTPPort: 465, SMTPUseSSL: true}, nil)

		cfg := svc.MailConfig(context.Background())
		assert.Equal(t, "db.example.com", cfg.Host)
		assert.Equal(t, 465, cfg.Port)
		assert.True(t, cfg.UseSSL)
		assert.Equal(t, "noreply@example.com", cfg.From)
	})
}

func TestSiteInfoLogo(t *testing.T) {
	svc, mockSettings, store := setupSettingsMocks(t)

	mockSettings.EXPECT().GetSettings().Return(settings.SiteSettings{ID: 1, LogoKey: "site/logo/x.png"}, nil)
	store.EXPECT().PresignedURL(gomock.Any(), "site/logo/x.png", gomock.Any()).Return("http://minio/x.png", nil)

	info := svc.SiteInfo(context.Background())
	assert.Equal(t, settings.DefaultDisplayName, info.DisplayName)
	assert.Equal(t, "http://minio/x.png", info.LogoURL)
}
