package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.App.Port)
	assert.Equal(t, 1500*time.Millisecond, cfg.Mock.AuthDelay)
	assert.Equal(t, 2000*time.Millisecond, cfg.Mock.AssessmentDelay)
	assert.Equal(t, 1000*time.Millisecond, cfg.Mock.DoctorsDelay)
	assert.Equal(t, AssessmentModeRules, cfg.Mock.AssessmentMode)
	assert.Equal(t, DoctorSourceStatic, cfg.Mock.DoctorSource)
	assert.False(t, cfg.Redis.Enabled)
	assert.Equal(t, []string{"*"}, cfg.HTTP.CORSOrigins)
}

func TestLoadConfig_FromEnvironment(t *testing.T) {
	t.Setenv("APP_PORT", "9000")
	t.Setenv("MOCK_AUTH_DELAY", "0s")
	t.Setenv("MOCK_FAILURE_RATE", "2.5")
	t.Setenv("ASSESSMENT_MODE", "STUB")
	t.Setenv("CORS_ORIGINS", "http://localhost:3000, http://localhost:5173 ,")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.App.Port)
	assert.Equal(t, time.Duration(0), cfg.Mock.AuthDelay)
	assert.Equal(t, 1.0, cfg.Mock.FailureRate, "failure rate is clamped to 1")
	assert.Equal(t, AssessmentModeStub, cfg.Mock.AssessmentMode)
	assert.Equal(t, []string{"http://localhost:3000", "http://localhost:5173"}, cfg.HTTP.CORSOrigins)
}

func TestConfig_IsDev(t *testing.T) {
	c := &Config{App: AppConfig{Env: "development"}}
	assert.True(t, c.IsDev())

	c.App.Env = "production"
	assert.False(t, c.IsDev())
}
