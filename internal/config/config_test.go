package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		App: AppConfig{
			Environment: "development",
		},
		Logger: LoggerConfig{
			Level: "info",
		},
		Catalog: CatalogConfig{
			Path:        "/data/catalog.csv",
			Watch:       true,
			SettleDelay: 2 * time.Second,
		},
		Charts: ChartsConfig{
			TopRatings:        10,
			TopGenres:         15,
			TrendGenres:       8,
			TopDirectors:      10,
			TopCast:           10,
			TopCountries:      20,
			BubbleCountries:   15,
			RatingsPerCountry: 5,
			CountryTypeSplit:  10,
			SeasonLimit:       15,
			HistogramBins:     30,
			TrendFloorYear:    1990,
			DefaultYearLo:     2010,
			DefaultYearHi:     2021,
			DropdownTokens:    50,
			DetailPageSize:    100,
		},
	}
}

func TestValidate_ValidConfig(t *testing.T) {
	err := validConfig().Validate()
	assert.NoError(t, err)
}

func TestValidate_AllEnvironments(t *testing.T) {
	tests := []struct {
		env   string
		valid bool
	}{
		{"development", true},
		{"staging", true},
		{"production", true},
		{"test", false},
		{"", false},
		{"DEVELOPMENT", false}, // case sensitive
	}

	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			cfg := validConfig()
			cfg.App.Environment = tt.env

			err := cfg.Validate()
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestValidate_AllLogLevels(t *testing.T) {
	tests := []struct {
		level string
		valid bool
	}{
		{"debug", true},
		{"info", true},
		{"warn", true},
		{"error", true},
		{"DEBUG", true},  // case insensitive
		{"trace", false}, // not supported
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			cfg := validConfig()
			cfg.Logger.Level = tt.level

			err := cfg.Validate()
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestValidate_EmptyCatalogPath(t *testing.T) {
	cfg := validConfig()
	cfg.Catalog.Path = ""

	assert.Error(t, cfg.Validate())
}

func TestValidate_ChartLimits(t *testing.T) {
	cfg := validConfig()
	cfg.Charts.HistogramBins = 0
	assert.Error(t, cfg.Validate())

	cfg = validConfig()
	cfg.Charts.TopGenres = -1
	assert.Error(t, cfg.Validate())
}

func TestValidate_InvertedYearWindow(t *testing.T) {
	cfg := validConfig()
	cfg.Charts.DefaultYearLo = 2021
	cfg.Charts.DefaultYearHi = 2010

	assert.Error(t, cfg.Validate())
}

func TestGetConfigValue_Precedence(t *testing.T) {
	t.Setenv("STREAMLENS_TEST_KEY", "from-env")

	assert.Equal(t, "from-flag", getConfigValue("from-flag", "STREAMLENS_TEST_KEY", "default"))
	assert.Equal(t, "from-env", getConfigValue("", "STREAMLENS_TEST_KEY", "default"))
	assert.Equal(t, "default", getConfigValue("", "STREAMLENS_TEST_MISSING", "default"))
}

func TestGetBoolConfigValue(t *testing.T) {
	t.Setenv("STREAMLENS_TEST_BOOL", "yes")
	assert.True(t, getBoolConfigValue("", "STREAMLENS_TEST_BOOL", false))

	t.Setenv("STREAMLENS_TEST_BOOL", "nope")
	assert.False(t, getBoolConfigValue("", "STREAMLENS_TEST_BOOL", true))

	assert.True(t, getBoolConfigValue("", "STREAMLENS_TEST_BOOL_MISSING", true))
}

func TestGetIntConfigValue(t *testing.T) {
	t.Setenv("STREAMLENS_TEST_INT", "42")
	assert.Equal(t, 42, getIntConfigValue("", "STREAMLENS_TEST_INT", 7))

	t.Setenv("STREAMLENS_TEST_INT", "not-a-number")
	assert.Equal(t, 7, getIntConfigValue("", "STREAMLENS_TEST_INT", 7))
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"*"}, splitList("*"))
	assert.Equal(t, []string{"http://a", "http://b"}, splitList("http://a, http://b"))
	assert.Nil(t, splitList(""))
}

func TestExpandPath(t *testing.T) {
	abs, err := expandPath("/already/absolute", "")
	require.NoError(t, err)
	assert.Equal(t, "/already/absolute", abs)

	home, err := os.UserHomeDir()
	require.NoError(t, err)
	expanded, err := expandPath("~/catalog.csv", "")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "catalog.csv"), expanded)

	def, err := expandPath("", "/fallback")
	require.NoError(t, err)
	assert.Equal(t, "/fallback", def)
}

func TestLoadEnvFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	content := "# comment\nSTREAMLENS_ENVFILE_A=hello\nSTREAMLENS_ENVFILE_B=\"quoted\"\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	t.Setenv("STREAMLENS_ENVFILE_A", "")
	t.Setenv("STREAMLENS_ENVFILE_B", "")
	os.Unsetenv("STREAMLENS_ENVFILE_A")
	os.Unsetenv("STREAMLENS_ENVFILE_B")

	require.NoError(t, loadEnvFile(path))

	assert.Equal(t, "hello", os.Getenv("STREAMLENS_ENVFILE_A"))
	assert.Equal(t, "quoted", os.Getenv("STREAMLENS_ENVFILE_B"))
}

func TestLoadEnvFile_EnvWins(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("STREAMLENS_ENVFILE_C=from-file\n"), 0o644))
	t.Setenv("STREAMLENS_ENVFILE_C", "from-env")

	require.NoError(t, loadEnvFile(path))

	assert.Equal(t, "from-env", os.Getenv("STREAMLENS_ENVFILE_C"))
}
