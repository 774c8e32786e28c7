package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App     AppConfig
	DB      DBConfig
	Redis   RedisConfig
	JWT     JWTConfig
	Session SessionConfig
	Mock    MockConfig
	HTTP    HTTPConfig
}

type AppConfig struct {
	Port     string
	Env      string
	LogLevel string
}

type DBConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

type RedisConfig struct {
	Enabled  bool
	Host     string
	Port     string
	Password string
	DB       int
}

type JWTConfig struct {
	Secret string
	Expiry time.Duration
}

// SessionConfig controls how long an idle session keeps its store alive.
type SessionConfig struct {
	TTL           time.Duration
	SweepInterval time.Duration
}

// MockConfig tunes the stand-in backend services.
type MockConfig struct {
	AuthDelay       time.Duration
	AssessmentDelay time.Duration
	DoctorsDelay    time.Duration
	FailureRate     float64
	AssessmentMode  string // "rules" or "stub"
	DoctorSource    string // "static" or "postgres"
}

type HTTPConfig struct {
	CORSOrigins    []string
	AuthRateLimit  int // requests per minute per IP on /auth
	ShutdownPeriod time.Duration
}

const (
	AssessmentModeRules = "rules"
	AssessmentModeStub  = "stub"

	DoctorSourceStatic   = "static"
	DoctorSourcePostgres = "postgres"
)

func LoadConfig() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()

	v.SetDefault("APP_PORT", "8080")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("REDIS_ENABLED", false)
	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", "6379")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("JWT_SECRET", "change-me")
	v.SetDefault("JWT_EXPIRY", "24h")
	v.SetDefault("SESSION_TTL", "30m")
	v.SetDefault("SESSION_SWEEP_INTERVAL", "1m")
	v.SetDefault("MOCK_AUTH_DELAY", "1500ms")
	v.SetDefault("MOCK_ASSESSMENT_DELAY", "2000ms")
	v.SetDefault("MOCK_DOCTORS_DELAY", "1000ms")
	v.SetDefault("MOCK_FAILURE_RATE", 0.0)
	v.SetDefault("ASSESSMENT_MODE", AssessmentModeRules)
	v.SetDefault("DOCTOR_SOURCE", DoctorSourceStatic)
	v.SetDefault("CORS_ORIGINS", "*")
	v.SetDefault("RATE_LIMIT_AUTH_RPM", 30)
	v.SetDefault("SHUTDOWN_PERIOD", "10s")

	// A missing .env is fine, the environment and defaults still apply.
	_ = v.ReadInConfig()

	config := &Config{
		App: AppConfig{
			Port:     v.GetString("APP_PORT"),
			Env:      v.GetString("APP_ENV"),
			LogLevel: v.GetString("LOG_LEVEL"),
		},
		DB: DBConfig{
			Host:     v.GetString("DB_HOST"),
			Port:     v.GetString("DB_PORT"),
			User:     v.GetString("DB_USER"),
			Password: v.GetString("DB_PASSWORD"),
			Name:     v.GetString("DB_NAME"),
		},
		Redis: RedisConfig{
			Enabled:  v.GetBool("REDIS_ENABLED"),
			Host:     v.GetString("REDIS_HOST"),
			Port:     v.GetString("REDIS_PORT"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
		JWT: JWTConfig{
			Secret: v.GetString("JWT_SECRET"),
			Expiry: v.GetDuration("JWT_EXPIRY"),
		},
		Session: SessionConfig{
			TTL:           v.GetDuration("SESSION_TTL"),
			SweepInterval: v.GetDuration("SESSION_SWEEP_INTERVAL"),
		},
		Mock: MockConfig{
			AuthDelay:       v.GetDuration("MOCK_AUTH_DELAY"),
			AssessmentDelay: v.GetDuration("MOCK_ASSESSMENT_DELAY"),
			DoctorsDelay:    v.GetDuration("MOCK_DOCTORS_DELAY"),
			FailureRate:     v.GetFloat64("MOCK_FAILURE_RATE"),
			AssessmentMode:  strings.ToLower(v.GetString("ASSESSMENT_MODE")),
			DoctorSource:    strings.ToLower(v.GetString("DOCTOR_SOURCE")),
		},
		HTTP: HTTPConfig{
			CORSOrigins:    splitList(v.GetString("CORS_ORIGINS")),
			AuthRateLimit:  v.GetInt("RATE_LIMIT_AUTH_RPM"),
			ShutdownPeriod: v.GetDuration("SHUTDOWN_PERIOD"),
		},
	}

	if config.JWT.Expiry <= 0 {
		config.JWT.Expiry = 24 * time.Hour
	}
	if config.Session.TTL <= 0 {
		config.Session.TTL = 30 * time.Minute
	}
	if config.Session.SweepInterval <= 0 {
		config.Session.SweepInterval = time.Minute
	}
	if config.HTTP.ShutdownPeriod <= 0 {
		config.HTTP.ShutdownPeriod = 10 * time.Second
	}
	if config.Mock.FailureRate < 0 {
		config.Mock.FailureRate = 0
	}
	if config.Mock.FailureRate > 1 {
		config.Mock.FailureRate = 1
	}

	return config, nil
}

// IsDev reports whether the service runs in a development environment.
func (c *Config) IsDev() bool {
	return c.App.Env == "development"
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
