package postgres

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPoolConfigBoundsConnections(t *testing.T) {
	cfg, err := poolConfig("postgres://u:p@localhost:5432/skilllens?sslmode=disable")
	require.NoError(t, err)
	assert.EqualValues(t, 10, cfg.MaxConns)
	assert.Equal(t, time.Hour, cfg.MaxConnLifetime)
	assert.Equal(t, "skilllens", cfg.ConnConfig.RuntimeParams["application_name"])
}

func TestPoolConfigKeepsExplicitApplicationName(t *testing.T) {
	cfg, err := poolConfig("postgres://u:p@localhost:5432/db?application_name=worker")
	require.NoError(t, err)
	assert.Equal(t, "worker", cfg.ConnConfig.RuntimeParams["application_name"])
}

func TestPoolConfigRejectsGarbage(t *testing.T) {
	_, err := poolConfig("postgres://%zz")
	require.Error(t, err)
}
