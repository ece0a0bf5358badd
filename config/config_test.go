package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testYAML = `
server:
  port: 9090
  mode: release
database:
  mysql:
    host: db.local
    port: 3306
    user: shop
    dbname: shop
  redis:
    host: cache.local
    port: 6379
admin:
  password: secret123
jwt:
  secret: test-secret
session:
  cookie_name: my_session
mq:
  enabled: true
  host: mq.local
rate_limits:
  checkout:
    rps: 5
    burst: 10
`

func TestInitConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(testYAML), 0644))

	cfg, err := InitConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "release", cfg.Server.Mode)
	assert.Equal(t, "db.local", cfg.Database.Mysql.Host)
	assert.Equal(t, "cache.local", cfg.Database.Redis.Host)
	assert.Equal(t, "secret123", cfg.Admin.Password)
	assert.Equal(t, "my_session", cfg.Session.CookieName)
	assert.True(t, cfg.MQ.Enabled)
	assert.Equal(t, 5, cfg.RateLimits.Checkout.RPS)

	// 未配置的部分落到默认值
	assert.Equal(t, 24, cfg.Session.TTLHours)
	assert.Equal(t, 12, cfg.JWT.ExpireHours)
	assert.Equal(t, 1000, cfg.RateLimits.Global.RPS)
	assert.Equal(t, "shop.orders", cfg.MQ.Exchange)
	assert.Equal(t, 4, cfg.MQ.ChannelPoolSize)
}

func TestInitConfigMissingFile(t *testing.T) {
	_, err := InitConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
