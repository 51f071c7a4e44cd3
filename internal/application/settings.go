package application

import (
	"context"
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/scrumish/internal/config"
	"github.com/linskybing/scrumish/internal/domain/settings"
	"github.com/linskybing/scrumish/internal/repository"
	"github.com/linskybing/scrumish/pkg/mailer"
	"github.com/linskybing/scrumish/pkg/metrics"
	"github.com/linskybing/scrumish/pkg/storage"
	"github.com/linskybing/scrumish/pkg/utils"
	"github.com/patrickmn/go-cache"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrSettingsExists   = errors.New("site settings already exist")
	ErrSettingsNotFound = errors.New("site settings not found")
)

const (
	settingsCacheKey = "site_settings"
	logoURLExpiry    = time.Hour
)

// SettingsService serves the singleton site settings through a short-lived
// cache. An absent row is cached as the zero value.
type SettingsService struct {
	Repos *repository.Repos
	store storage.ObjectStore
	cache *cache.Cache
}

func NewSettingsService(repos *repository.Repos, store storage.ObjectStore) *SettingsService {
	return &SettingsService{
		Repos: repos,
		store: store,
		cache: cache.New(config.SettingsCacheTTL, 2*config.SettingsCacheTTL),
	}
}

func (s *SettingsService) load() (settings.SiteSettings, error) {
	if v, ok := s.cache.Get(settingsCacheKey); ok {
		metrics.SettingsCacheHits.WithLabelValues("hit").Inc()
		return v.(settings.SiteSettings), nil
	}
	metrics.SettingsCacheHits.WithLabelValues("miss").Inc()

	st, err := s.Repos.Settings.GetSettings()
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return settings.SiteSettings{}, err
	}
	s.cache.SetDefault(settingsCacheKey, st)
	return st, nil
}

func (s *SettingsService) GetSettings() (settings.SiteSettings, error) {
	st, err := s.load()
	if err != nil {
		return settings.SiteSettings{}, err
	}
	if st.ID == 0 {
		return settings.SiteSettings{}, ErrSettingsNotFound
	}
	return st, nil
}

func (s *SettingsService) CreateSettings(c *gin.Context, input settings.SettingsInput) (settings.SiteSettings, error) {
	var st settings.SiteSettings
	applySettings(&st, input)
	if err := s.Repos.Settings.CreateSettings(&st); err != nil {
		if errors.Is(err, repository.ErrSingletonExists) {
			return settings.SiteSettings{}, ErrSettingsExists
		}
		return settings.SiteSettings{}, err
	}
	s.cache.Delete(settingsCacheKey)

	utils.LogAuditWithConsole(c, "create", "site_settings", idString(st.ID), nil, st, "site settings created", s.Repos.Audit)
	return st, nil
}

// UpdateSettings replaces the stored row. A nil SMTP password keeps the
// stored one since it is never sent back to clients.
func (s *SettingsService) UpdateSettings(c *gin.Context, input settings.SettingsInput) (settings.SiteSettings, error) {
	st, err := s.fresh()
	if err != nil {
		return settings.SiteSettings{}, err
	}
	before := st

	password := st.SMTPPassword
	applySettings(&st, input)
	if input.SMTPPassword == nil {
		st.SMTPPassword = password
	}
	if err := s.Repos.Settings.UpdateSettings(&st); err != nil {
		return settings.SiteSettings{}, err
	}
	s.cache.Delete(settingsCacheKey)

	utils.LogAuditWithConsole(c, "update", "site_settings", idString(st.ID), before, st, "site settings updated", s.Repos.Audit)
	return st, nil
}

// UploadLogo stores a new logo and drops the previous object.
func (s *SettingsService) UploadLogo(c *gin.Context, up Upload) (settings.SiteSettings, error) {
	if s.store == nil {
		return settings.SiteSettings{}, ErrStorageDisabled
	}
	st, err := s.fresh()
	if err != nil {
		return settings.SiteSettings{}, err
	}
	ctx := requestContext(c)

	key := storage.ObjectKey("site/logo", up.Filename)
	if err := s.store.Put(ctx, key, up.Body, up.Size, up.ContentType); err != nil {
		return settings.SiteSettings{}, err
	}
	previous := st.LogoKey
	st.LogoKey = key
	if err := s.Repos.Settings.UpdateSettings(&st); err != nil {
		_ = s.store.Remove(ctx, key)
		return settings.SiteSettings{}, err
	}
	s.cache.Delete(settingsCacheKey)
	if previous != "" {
		if err := s.store.Remove(ctx, previous); err != nil {
			log.WithError(err).WithField("key", previous).Warn("failed to remove previous logo")
		}
	}

	utils.LogAuditWithConsole(c, "update", "site_settings", idString(st.ID), nil, st, "site logo uploaded", s.Repos.Audit)
	return st, nil
}

// fresh reads the row past the cache for writes.
func (s *SettingsService) fresh() (settings.SiteSettings, error) {
	st, err := s.Repos.Settings.GetSettings()
	if err != nil {
		return settings.SiteSettings{}, notFound(err, ErrSettingsNotFound)
	}
	return st, nil
}

// SiteInfo never fails: missing settings or storage fall back to defaults.
func (s *SettingsService) SiteInfo(ctx context.Context) settings.SiteInfo {
	st, err := s.load()
	if err != nil {
		log.WithError(err).Warn("failed to load site settings")
	}
	info := settings.SiteInfo{DisplayName: st.Name()}
	if st.LogoKey != "" && s.store != nil {
		u, err := s.store.PresignedURL(ctx, st.LogoKey, logoURLExpiry)
		if err != nil {
			log.WithError(err).Warn("failed to presign logo url")
		} else {
			info.LogoURL = u
		}
	}
	return info
}

// MailConfig prefers SMTP values from stored settings over the environment.
func (s *SettingsService) MailConfig(ctx context.Context) mailer.SMTPConfig {
	cfg := mailer.SMTPConfig{
		Host:     config.SMTPHost,
		Port:     config.SMTPPort,
		Username: config.SMTPUsername,
		Password: config.SMTPPassword,
		UseTLS:   config.SMTPUseTLS,
		UseSSL:   config.SMTPUseSSL,
		From:     config.MailFrom,
	}
	st, err := s.load()
	if err != nil {
		log.WithError(err).Warn("failed to load site settings, using environment mail config")
		return cfg
	}
	if st.HasSMTP() {
		cfg.Host = st.SMTPHost
		cfg.Port = st.SMTPPort
		cfg.Username = st.SMTPUsername
		cfg.Password = st.SMTPPassword
		cfg.UseTLS = st.SMTPUseTLS
		cfg.UseSSL = st.SMTPUseSSL
	}
	return cfg
}

func applySettings(st *settings.SiteSettings, input settings.SettingsInput) {
	st.DisplayName = deref(input.DisplayName)
	st.SMTPHost = deref(input.SMTPHost)
	st.SMTPPort = 0
	if input.SMTPPort != nil {
		st.SMTPPort = *input.SMTPPort
	}
	st.SMTPUsername = deref(input.SMTPUsername)
	st.SMTPPassword = deref(input.SMTPPassword)
	st.SMTPUseTLS = boolOr(input.SMTPUseTLS, false)
	st.SMTPUseSSL = boolOr(input.SMTPUseSSL, false)
}
