package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadConfig(t *testing.T) {
	t.Run("读取配置文件", func(t *testing.T) {
		path := writeConfigFile(t, `
server:
  address: ":9090"
scoring:
  strategy: "simple"
parser:
  extract_timeout: "10s"
redis:
  address: "localhost:6379"
  md5_record_expire_days: 30
`)
		cfg, err := LoadConfig(path)
		require.NoError(t, err)

		assert.Equal(t, ":9090", cfg.Server.Address)
		assert.Equal(t, "simple", cfg.Scoring.Strategy)
		assert.Equal(t, "10s", cfg.Parser.ExtractTimeout)
		assert.Equal(t, "localhost:6379", cfg.Redis.Address)
		assert.Equal(t, 30, cfg.Redis.MD5RecordExpireDays)
	})

	t.Run("缺失项填充默认值", func(t *testing.T) {
		path := writeConfigFile(t, `
logger:
  level: "debug"
`)
		cfg, err := LoadConfig(path)
		require.NoError(t, err)

		assert.Equal(t, ":8080", cfg.Server.Address)
		assert.Equal(t, "weighted", cfg.Scoring.Strategy)
		assert.Equal(t, "30s", cfg.Parser.ExtractTimeout)
		assert.Equal(t, "60s", cfg.Parser.ProcessTimeout)
		assert.Equal(t, "2s", cfg.Outbox.PollInterval)
		assert.Equal(t, 50, cfg.Outbox.BatchSize)
		assert.Equal(t, 5, cfg.Outbox.MaxRetries)
		assert.Equal(t, "resume-ats", cfg.Tracing.ServiceName)
		assert.Equal(t, "debug", cfg.Logger.Level)
	})

	t.Run("环境变量覆盖文件配置", func(t *testing.T) {
		path := writeConfigFile(t, `
server:
  address: ":9090"
`)
		t.Setenv("RESUME_ATS_SERVER_ADDRESS", ":7070")
		t.Setenv("RESUME_ATS_SCORING_STRATEGY", "simple")

		cfg, err := LoadConfig(path)
		require.NoError(t, err)

		assert.Equal(t, ":7070", cfg.Server.Address)
		assert.Equal(t, "simple", cfg.Scoring.Strategy)
	})

	t.Run("非法YAML报错", func(t *testing.T) {
		path := writeConfigFile(t, "server: [address: :::\n  broken")
		_, err := LoadConfig(path)
		assert.Error(t, err)
	})

	t.Run("测试环境下找不到文件返回默认配置", func(t *testing.T) {
		cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
		require.NoError(t, err)

		assert.Equal(t, ":8080", cfg.Server.Address)
		assert.Equal(t, "weighted", cfg.Scoring.Strategy)
		assert.Equal(t, "resume-originals", cfg.MinIO.OriginalsBucket)
		assert.Equal(t, 365, cfg.Redis.MD5RecordExpireDays)
		assert.False(t, cfg.Outbox.Enabled)
	})
}

func TestGetDuration(t *testing.T) {
	def := 15 * time.Second

	assert.Equal(t, 90*time.Second, GetDuration("1m30s", def))
	assert.Equal(t, def, GetDuration("", def))
	assert.Equal(t, def, GetDuration("not-a-duration", def))
}
