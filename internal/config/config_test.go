package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("SERVER_PORT", "")
	t.Setenv("STORE_DRIVER", "")
	t.Setenv("REDIS_URL", "")
	t.Setenv("S3_BUCKET", "")
	t.Setenv("SLOT_LOCK_TTL", "")
	t.Setenv("TIMEZONE", "")

	cfg := Load()
	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, DriverPostgres, cfg.StoreDriver)
	assert.Equal(t, "Asia/Jerusalem", cfg.Timezone)
	assert.Equal(t, 5*time.Second, cfg.SlotLockTTL)
	assert.False(t, cfg.SlotLockEnabled())
	assert.False(t, cfg.AvatarsEnabled())
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("STORE_DRIVER", "Memory")
	t.Setenv("SLOT_LOCK_TTL", "750ms")
	t.Setenv("REDIS_URL", "redis://localhost:6379/0")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.test, ,https://b.test")

	cfg := Load()
	assert.Equal(t, DriverMemory, cfg.StoreDriver)
	assert.Equal(t, 750*time.Millisecond, cfg.SlotLockTTL)
	assert.True(t, cfg.SlotLockEnabled())
	assert.Equal(t, []string{"https://a.test", "https://b.test"}, cfg.CORSAllowedOrigins)
}

func TestGetDurationRejectsGarbage(t *testing.T) {
	t.Setenv("SLOT_LOCK_TTL", "soon")
	assert.Equal(t, time.Second, getDuration("SLOT_LOCK_TTL", time.Second))
}
