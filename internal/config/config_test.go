package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeEnv(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	path := writeEnv(t, "JWT_SECRET=secret\n")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.HTTPPort)
	assert.Equal(t, DriverPostgres, cfg.StorageDriver)
	assert.Equal(t, BackendLocal, cfg.UploadBackend)
	assert.Equal(t, "/opt/uploads", cfg.UploadDir)
	assert.Equal(t, 10, cfg.UploadMaxFiles)
	assert.Equal(t, 60*time.Second, cfg.ExportTimeout)
	assert.Equal(t, 24*time.Hour, cfg.SweepGrace)
	assert.Zero(t, cfg.SweepInterval)
	assert.False(t, cfg.StrictTransitions)
	assert.False(t, cfg.RestrictAssessorReads)
}

func TestLoad_Overrides(t *testing.T) {
	path := writeEnv(t, "JWT_SECRET=secret\nSTORAGE_DRIVER=mongo\nKAFKA_BROKERS=a:9092,b:9092\nSTRICT_STATUS_TRANSITIONS=true\n")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, DriverMongo, cfg.StorageDriver)
	assert.Equal(t, []string{"a:9092", "b:9092"}, cfg.KafkaBrokers)
	assert.True(t, cfg.StrictTransitions)
}

func TestLoad_RejectsUnknownDriver(t *testing.T) {
	path := writeEnv(t, "JWT_SECRET=secret\nSTORAGE_DRIVER=sqlite\n")

	_, err := Load(path)
	assert.ErrorContains(t, err, "STORAGE_DRIVER")
}

func TestValidate(t *testing.T) {
	base := func() Config {
		return Config{
			StorageDriver:  DriverPostgres,
			UploadBackend:  BackendLocal,
			UploadDir:      "/tmp/uploads",
			UploadMaxFiles: 10,
			JWTSecret:      "secret",
		}
	}

	t.Run("Valid", func(t *testing.T) {
		cfg := base()
		assert.NoError(t, cfg.Validate())
	})

	t.Run("MissingSecret", func(t *testing.T) {
		cfg := base()
		cfg.JWTSecret = ""
		assert.ErrorContains(t, cfg.Validate(), "JWT_SECRET")
	})

	t.Run("UnknownBackend", func(t *testing.T) {
		cfg := base()
		cfg.UploadBackend = "ftp"
		assert.ErrorContains(t, cfg.Validate(), "UPLOAD_BACKEND")
	})

	t.Run("S3WithoutBucket", func(t *testing.T) {
		cfg := base()
		cfg.UploadBackend = BackendS3
		assert.ErrorContains(t, cfg.Validate(), "S3_BUCKET")
	})
}
