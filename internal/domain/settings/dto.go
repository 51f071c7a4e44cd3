package settings

type SettingsInput struct {
	DisplayName  *string `json:"display_name" form:"display_name" binding:"omitempty,max=255" example:"Scrum-ish"`
	SMTPHost     *string `json:"smtp_host" form:"smtp_host" example:"smtp.example.com"`
	SMTPPort     *int    `json:"smtp_port" form:"smtp_port" binding:"omitempty,min=1,max=65535" example:"587"`
	SMTPUsername *string `json:"smtp_username" form:"smtp_username"`
	SMTPPassword *string `json:"smtp_password" form:"smtp_password"`
	SMTPUseTLS   *bool   `json:"smtp_use_tls" form:"smtp_use_tls"`
	SMTPUseSSL   *bool   `json:"smtp_use_ssl" form:"smtp_use_ssl"`
}

// SiteInfo is the public branding view of the settings.
type SiteInfo struct {
	DisplayName string `json:"display_name" example:"Scrum-ish"`
	LogoURL     string `json:"logo_url,omitempty"`
}
