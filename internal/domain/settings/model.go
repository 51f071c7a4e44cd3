package settings

import "time"

const DefaultDisplayName = "Scrum-ish"

// SiteSettings is a singleton row carrying branding and outbound mail
// configuration. At most one row may exist; the unique Singleton column
// enforces that in the database.
type SiteSettings struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Singleton    bool      `gorm:"<-:create;not null;default:true;uniqueIndex" json:"-"`
	DisplayName  string    `gorm:"size:255" json:"display_name"`
	LogoKey      string    `gorm:"size:512" json:"-"`
	SMTPHost     string    `gorm:"size:255" json:"smtp_host"`
	SMTPPort     int       `json:"smtp_port"`
	SMTPUsername string    `gorm:"size:255" json:"smtp_username"`
	SMTPPassword string    `gorm:"size:255" json:"-"`
	SMTPUseTLS   bool      `gorm:"not null;default:false" json:"smtp_use_tls"`
	SMTPUseSSL   bool      `gorm:"not null;default:false" json:"smtp_use_ssl"`
	CreatedAt    time.Time `gorm:"column:create_at;autoCreateTime" json:"create_at"`
	UpdatedAt    time.Time `gorm:"column:update_at;autoUpdateTime" json:"update_at"`
}

func (SiteSettings) TableName() string {
	return "site_settings"
}

// Name returns the configured display name or the default.
func (s *SiteSettings) Name() string {
	if s == nil || s.DisplayName == "" {
		return DefaultDisplayName
	}
	return s.DisplayName
}

func (s *SiteSettings) HasSMTP() bool {
	return s != nil && s.SMTPHost != ""
}
