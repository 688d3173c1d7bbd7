package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config хранит все конфигурационные параметры приложения.
type Config struct {
	DatabaseURL  string
	JWTSecretKey string
	ServerPort   int

	AdminEmail        string
	AdminPasswordHash string

	PublicURL             string
	CORSAllowedOrigins    []string
	RegisterRatePerMinute int

	SMTP SMTPConfig
	R2   R2Config
}

// SMTPConfig is empty when outgoing mail is disabled.
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

func (c SMTPConfig) Enabled() bool {
	return c.Host != ""
}

// R2Config is either fully set or fully empty.
type R2Config struct {
	AccountID       string
	AccessKeyID     string
	SecretAccessKey string
	BucketName      string
	PublicBaseURL   string
}

func (c R2Config) Enabled() bool {
	return c.AccountID != ""
}

const (
	defaultPort          = 8080
	defaultSMTPPort      = 465
	defaultRegisterRate  = 10
	defaultPublicURL     = "http://localhost:3000"
	defaultAllowedOrigin = "http://localhost:3000"
)

// Load загружает конфигурацию из переменных окружения.
// Опционально подгружает .env файл (полезно для локальной разработки).
func Load() (*Config, error) {
	_ = godotenv.Load()

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is not set")
	}

	jwtKey := os.Getenv("JWT_SECRET_KEY")
	if jwtKey == "" {
		return nil, fmt.Errorf("JWT_SECRET_KEY environment variable is not set")
	}

	port, err := intFromEnv("SERVER_PORT", defaultPort)
	if err != nil {
		return nil, err
	}
	if port <= 0 || port > 65535 {
		return nil, fmt.Errorf("SERVER_PORT must be between 1 and 65535, got %d", port)
	}

	rate, err := intFromEnv("REGISTER_RATE_PER_MINUTE", defaultRegisterRate)
	if err != nil {
		return nil, err
	}
	if rate <= 0 {
		return nil, fmt.Errorf("REGISTER_RATE_PER_MINUTE must be positive, got %d", rate)
	}

	smtp, err := loadSMTP()
	if err != nil {
		return nil, err
	}

	r2, err := loadR2()
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		DatabaseURL:           dbURL,
		JWTSecretKey:          jwtKey,
		ServerPort:            port,
		AdminEmail:            strings.ToLower(strings.TrimSpace(os.Getenv("ADMIN_EMAIL"))),
		AdminPasswordHash:     os.Getenv("ADMIN_PASSWORD_HASH"),
		PublicURL:             strings.TrimRight(stringFromEnv("PUBLIC_URL", defaultPublicURL), "/"),
		CORSAllowedOrigins:    splitList(stringFromEnv("CORS_ALLOWED_ORIGINS", defaultAllowedOrigin)),
		RegisterRatePerMinute: rate,
		SMTP:                  smtp,
		R2:                    r2,
	}

	return cfg, nil
}

func loadSMTP() (SMTPConfig, error) {
	host := os.Getenv("SMTP_HOST")
	if host == "" {
		return SMTPConfig{}, nil
	}

	port, err := intFromEnv("SMTP_PORT", defaultSMTPPort)
	if err != nil {
		return SMTPConfig{}, err
	}

	cfg := SMTPConfig{
		Host:     host,
		Port:     port,
		Username: os.Getenv("SMTP_USER"),
		Password: os.Getenv("SMTP_PASS"),
		From:     os.Getenv("SMTP_FROM"),
	}
	if cfg.From == "" {
		cfg.From = cfg.Username
	}
	if cfg.From == "" {
		return SMTPConfig{}, errors.New("SMTP_FROM or SMTP_USER must be set when SMTP_HOST is set")
	}
	return cfg, nil
}

func loadR2() (R2Config, error) {
	cfg := R2Config{
		AccountID:       os.Getenv("R2_ACCOUNT_ID"),
		AccessKeyID:     os.Getenv("R2_ACCESS_KEY_ID"),
		SecretAccessKey: os.Getenv("R2_SECRET_ACCESS_KEY"),
		BucketName:      os.Getenv("R2_BUCKET_NAME"),
		PublicBaseURL:   os.Getenv("R2_PUBLIC_BASE_URL"),
	}

	values := map[string]string{
		"R2_ACCOUNT_ID":        cfg.AccountID,
		"R2_ACCESS_KEY_ID":     cfg.AccessKeyID,
		"R2_SECRET_ACCESS_KEY": cfg.SecretAccessKey,
		"R2_BUCKET_NAME":       cfg.BucketName,
		"R2_PUBLIC_BASE_URL":   cfg.PublicBaseURL,
	}
	var missing []string
	for _, name := range []string{"R2_ACCOUNT_ID", "R2_ACCESS_KEY_ID", "R2_SECRET_ACCESS_KEY", "R2_BUCKET_NAME", "R2_PUBLIC_BASE_URL"} {
		if values[name] == "" {
			missing = append(missing, name)
		}
	}

	switch len(missing) {
	case 0:
		return cfg, nil
	case len(values):
		return R2Config{}, nil
	default:
		return R2Config{}, fmt.Errorf("incomplete R2 configuration, missing: %s", strings.Join(missing, ", "))
	}
}

func stringFromEnv(name, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(name)); v != "" {
		return v
	}
	return fallback
}

func intFromEnv(name string, fallback int) (int, error) {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s environment variable: %w", name, err)
	}
	return v, nil
}

func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
