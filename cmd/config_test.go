package cmd

import (
	"testing"
	"time"

	"shipments/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnvironment(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"HTTP_PORT", "TRACKING_API_URL", "TRACKING_API_TOKEN", "HTTP_CLIENT_TIMEOUT",
		"DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME", "DB_SSLMODE",
		"REDIS_HOST", "REDIS_PORT", "REDIS_DB", "KAFKA_HOST", "KAFKA_STATUS_TOPIC",
		"SYNC_SCHEDULE", "STATUS_TRANSITION_POLICY",
	} {
		t.Setenv(key, "")
	}
}

func Test_LoadConfigDefaults(t *testing.T) {
	clearEnvironment(t)

	config, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", config.HTTPPort)
	assert.Equal(t, "http://localhost:8000", config.TrackingAPIURL)
	assert.Equal(t, 15*time.Second, config.HTTPClientTimeout)
	assert.Equal(t, 6379, config.RedisPort)
	assert.Equal(t, "shipment.status-changed", config.KafkaStatusTopic)
	assert.Equal(t, "permissive", config.TransitionPolicy)
	assert.False(t, config.UsesDatabase())
}

func Test_LoadConfigFromEnvironment(t *testing.T) {
	clearEnvironment(t)
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("HTTP_CLIENT_TIMEOUT", "3s")
	t.Setenv("DB_HOST", "db")
	t.Setenv("REDIS_DB", "2")
	t.Setenv("SYNC_SCHEDULE", "0 */5 * * * *")
	t.Setenv("STATUS_TRANSITION_POLICY", "strict")

	config, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9090", config.HTTPPort)
	assert.Equal(t, 3*time.Second, config.HTTPClientTimeout)
	assert.True(t, config.UsesDatabase())
	assert.Equal(t, 2, config.RedisDB)
	assert.Equal(t, "0 */5 * * * *", config.SyncSchedule)
	assert.Equal(t, "strict", config.TransitionPolicy)
}

func Test_LoadConfigRejectsMalformedNumbers(t *testing.T) {
	clearEnvironment(t)
	t.Setenv("REDIS_PORT", "six")

	_, err := LoadConfig()
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)

	t.Setenv("REDIS_PORT", "")
	t.Setenv("HTTP_CLIENT_TIMEOUT", "soon")
	_, err = LoadConfig()
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
