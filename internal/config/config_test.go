package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Defaults(t *testing.T) {
	cfg, err := Parse()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, DefaultTableName, cfg.Airtable.TableName)
	assert.Equal(t, "https://api.airtable.com/v0", cfg.Airtable.APIURL)
	assert.Equal(t, 10*time.Second, cfg.Airtable.Timeout)
	assert.Equal(t, 30*time.Minute, cfg.FormSessionTTL)
	assert.Equal(t, 0.5, cfg.RecaptchaMinScore)
	assert.False(t, cfg.IsProduction())
}

func TestParse_FromEnvironment(t *testing.T) {
	t.Setenv("ENV", "production")
	t.Setenv("SITE_URL", "https://example.com/")
	t.Setenv("ALLOWED_ORIGINS", "https://a.example,https://b.example")
	t.Setenv("AIRTABLE_TOKEN", "patXYZ")
	t.Setenv("AIRTABLE_BASE_ID", "appABC")
	t.Setenv("AIRTABLE_TABLE_NAME", "Leads")
	t.Setenv("AIRTABLE_TIMEOUT", "3s")
	t.Setenv("FORM_SESSION_TTL", "1h")

	cfg, err := Parse()
	require.NoError(t, err)

	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "https://example.com", cfg.SiteURL)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.AllowedOrigins)
	assert.Equal(t, "patXYZ", cfg.Airtable.Token)
	assert.Equal(t, "appABC", cfg.Airtable.BaseID)
	assert.Equal(t, "Leads", cfg.Airtable.TableName)
	assert.Equal(t, 3*time.Second, cfg.Airtable.Timeout)
	assert.Equal(t, time.Hour, cfg.FormSessionTTL)
}

func TestParse_TableName(t *testing.T) {
	t.Setenv("AIRTABLE_TABLE_NAME", "")
	cfg, err := Parse()
	require.NoError(t, err)
	assert.Equal(t, DefaultTableName, cfg.Airtable.TableName)

	// only an empty name falls back
	t.Setenv("AIRTABLE_TABLE_NAME", "   ")
	cfg, err = Parse()
	require.NoError(t, err)
	assert.Equal(t, "   ", cfg.Airtable.TableName)
}

func TestParse_InvalidDuration(t *testing.T) {
	t.Setenv("AIRTABLE_TIMEOUT", "soon")

	_, err := Parse()
	assert.Error(t, err)
}

func TestLoad_ReadsDotEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("AIRTABLE_BASE_ID=appFromFile\n"), 0o600))

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	// godotenv sets the variable in the process; restore it afterwards
	t.Setenv("AIRTABLE_BASE_ID", "")
	require.NoError(t, os.Unsetenv("AIRTABLE_BASE_ID"))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "appFromFile", cfg.Airtable.BaseID)
}
