package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"
)

var (
	Environment  string
	IsProduction bool
	ServerPort   string
	LogLevel     string
	LogFormat    string

	DbHost     string
	DbPort     string
	DbUser     string
	DbPassword string
	DbName     string

	JwtSecret string
	Issuer    string
	TokenTTL  time.Duration

	ReservedAdminUsername string
	AdminPassword         string
	AdminEmail            string

	InviteSecret  string
	InviteTTL     time.Duration
	PublicBaseURL string

	MinioEndpoint  string
	MinioAccessKey string
	MinioSecretKey string
	MinioUseSSL    bool
	MinioBucket    string

	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	SMTPUseTLS   bool
	SMTPUseSSL   bool
	MailFrom     string

	SettingsCacheTTL   time.Duration
	AuditRetentionDays int

	AllowedOrigins []string
)

// fileConfig mirrors the environment keys for an optional YAML overlay.
type fileConfig struct {
	Server struct {
		Port          string   `yaml:"port"`
		PublicBaseURL string   `yaml:"public_base_url"`
		Origins       []string `yaml:"allowed_origins"`
	} `yaml:"server"`
	Database struct {
		Host     string `yaml:"host"`
		Port     string `yaml:"port"`
		User     string `yaml:"user"`
		Password string `yaml:"password"`
		Name     string `yaml:"name"`
	} `yaml:"database"`
	Minio struct {
		Endpoint  string `yaml:"endpoint"`
		AccessKey string `yaml:"access_key"`
		SecretKey string `yaml:"secret_key"`
		Bucket    string `yaml:"bucket"`
		UseSSL    *bool  `yaml:"use_ssl"`
	} `yaml:"minio"`
	Mail struct {
		Host     string `yaml:"host"`
		Port     int    `yaml:"port"`
		Username string `yaml:"username"`
		Password string `yaml:"password"`
		From     string `yaml:"from"`
		UseTLS   *bool  `yaml:"use_tls"`
		UseSSL   *bool  `yaml:"use_ssl"`
	} `yaml:"mail"`
	Invite struct {
		TTL string `yaml:"ttl"`
	} `yaml:"invite"`
	Log struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
	} `yaml:"log"`
}

func LoadConfig() {
	if err := godotenv.Load(); err != nil {
		log.Info("No .env file found, using environment variables")
	}

	Environment = getEnv("ENVIRONMENT", "development")
	IsProduction = Environment == "production"
	ServerPort = getEnv("SERVER_PORT", "8080")
	LogLevel = getEnv("LOG_LEVEL", "info")
	LogFormat = getEnv("LOG_FORMAT", "text")

	DbHost = getEnv("DB_HOST", "localhost")
	DbPort = getEnv("DB_PORT", "5432")
	DbUser = getEnv("DB_USER", "postgres")
	DbPassword = getEnv("DB_PASSWORD", "password")
	DbName = getEnv("DB_NAME", "scrumish")

	JwtSecret = getEnv("JWT_SECRET", "defaultsecret")
	Issuer = getEnv("ISSUER", "scrumish")
	TokenTTL = getDuration("TOKEN_TTL", 24*time.Hour)

	ReservedAdminUsername = getEnv("ADMIN_USERNAME", "admin")
	AdminPassword = getEnv("ADMIN_PASSWORD", "")
	AdminEmail = getEnv("ADMIN_EMAIL", "admin@example.com")

	InviteSecret = getEnv("INVITE_SECRET", JwtSecret+":invitations")
	InviteTTL = getDuration("INVITE_TTL", 72*time.Hour)
	PublicBaseURL = getEnv("PUBLIC_BASE_URL", "http://localhost:8080")

	MinioEndpoint = getEnv("MINIO_ENDPOINT", "localhost:9000")
	MinioAccessKey = getEnv("MINIO_ACCESS_KEY", "minioadmin")
	MinioSecretKey = getEnv("MINIO_SECRET_KEY", "minioadmin")
	MinioBucket = getEnv("MINIO_BUCKET", "scrumish")
	MinioUseSSL = getBool("MINIO_USE_SSL", false)

	SMTPHost = getEnv("SMTP_HOST", "")
	SMTPPort = getInt("SMTP_PORT", 587)
	SMTPUsername = getEnv("SMTP_USERNAME", "")
	SMTPPassword = getEnv("SMTP_PASSWORD", "")
	SMTPUseTLS = getBool("SMTP_USE_TLS", false)
	SMTPUseSSL = getBool("SMTP_USE_SSL", false)
	MailFrom = getEnv("MAIL_FROM", "no-reply@example.com")

	SettingsCacheTTL = getDuration("SETTINGS_CACHE_TTL", time.Minute)
	AuditRetentionDays = getInt("AUDIT_RETENTION_DAYS", 30)

	AllowedOrigins = []string{"http://localhost:", "http://127.0.0.1:"}

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := LoadFile(path); err != nil {
			log.WithError(err).Warnf("Failed to load config file %s", path)
		}
	}
}

// LoadFile overlays non-empty values from a YAML file onto the loaded config.
func LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return err
	}
	applyFile(fc)
	return nil
}

func applyFile(fc fileConfig) {
	setString(&ServerPort, fc.Server.Port)
	setString(&PublicBaseURL, fc.Server.PublicBaseURL)
	if len(fc.Server.Origins) > 0 {
		AllowedOrigins = fc.Server.Origins
	}

	setString(&DbHost, fc.Database.Host)
	setString(&DbPort, fc.Database.Port)
	setString(&DbUser, fc.Database.User)
	setString(&DbPassword, fc.Database.Password)
	setString(&DbName, fc.Database.Name)

	setString(&MinioEndpoint, fc.Minio.Endpoint)
	setString(&MinioAccessKey, fc.Minio.AccessKey)
	setString(&MinioSecretKey, fc.Minio.SecretKey)
	setString(&MinioBucket, fc.Minio.Bucket)
	if fc.Minio.UseSSL != nil {
		MinioUseSSL = *fc.Minio.UseSSL
	}

	setString(&SMTPHost, fc.Mail.Host)
	if fc.Mail.Port > 0 {
		SMTPPort = fc.Mail.Port
	}
	setString(&SMTPUsername, fc.Mail.Username)
	setString(&SMTPPassword, fc.Mail.Password)
	setString(&MailFrom, fc.Mail.From)
	if fc.Mail.UseTLS != nil {
		SMTPUseTLS = *fc.Mail.UseTLS
	}
	if fc.Mail.UseSSL != nil {
		SMTPUseSSL = *fc.Mail.UseSSL
	}

	if fc.Invite.TTL != "" {
		if d, err := time.ParseDuration(fc.Invite.TTL); err == nil {
			InviteTTL = d
		}
	}
	setString(&LogLevel, fc.Log.Level)
	setString(&LogFormat, fc.Log.Format)
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getBool(key string, fallback bool) bool {
	v, err := strconv.ParseBool(getEnv(key, ""))
	if err != nil {
		return fallback
	}
	return v
}

func getInt(key string, fallback int) int {
	v, err := strconv.Atoi(getEnv(key, ""))
	if err != nil {
		return fallback
	}
	return v
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v, err := time.ParseDuration(getEnv(key, ""))
	if err != nil {
		return fallback
	}
	return v
}
