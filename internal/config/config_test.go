package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadFromYAML(t *testing.T, content string) *Settings {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)

	path := filepath.Join(t.TempDir(), "jelastic.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	viper.SetConfigFile(path)
	require.NoError(t, viper.ReadInConfig())

	cfg, err := Load()
	require.NoError(t, err)
	return cfg
}

func TestLoadDefaults(t *testing.T) {
	cfg := loadFromYAML(t, "app_url: https://app.paas.example/1.0\n")

	assert.Equal(t, "https://app.paas.example/1.0", cfg.AppURL)
	assert.Equal(t, 300, cfg.CacheTTL)
	assert.Equal(t, 5*time.Minute, cfg.TTL())
	assert.Equal(t, "localhost", cfg.SSHGateway)
	assert.Equal(t, 22, cfg.SSHPort)
	assert.True(t, cfg.GroupByEnvironment)
	assert.True(t, cfg.GroupByNodeType)
	assert.True(t, cfg.GroupByNodeClass)
}

func TestLoadOverridesDefaults(t *testing.T) {
	cfg := loadFromYAML(t, `
app_url: https://app.paas.example/1.0
app_id: cluster
cache_dir: /var/cache/jelastic
cache_ttl: 600
ssh_gateway: gate.paas.example
ssh_port: 3022
group_by_node_type: false
`)

	assert.Equal(t, "cluster", cfg.AppID)
	assert.Equal(t, 600, cfg.CacheTTL)
	assert.Equal(t, "gate.paas.example", cfg.SSHGateway)
	assert.Equal(t, 3022, cfg.SSHPort)
	assert.False(t, cfg.GroupByNodeType)
	assert.True(t, cfg.GroupByNodeClass)
}

func TestLoadPreservesMappingOrder(t *testing.T) {
	cfg := loadFromYAML(t, `
node_classes:
  - prefix: cp
    class: proxy
  - prefix: cp.sql
    class: db
  - prefix: sqldb
    class: database
`)

	require.Len(t, cfg.NodeClasses, 3)
	assert.Equal(t, ClassMapping{Prefix: "cp", Class: "proxy"}, cfg.NodeClasses[0])
	assert.Equal(t, ClassMapping{Prefix: "cp.sql", Class: "db"}, cfg.NodeClasses[1])
	assert.Equal(t, ClassMapping{Prefix: "sqldb", Class: "database"}, cfg.NodeClasses[2])
}

func TestCachePaths(t *testing.T) {
	cfg := loadFromYAML(t, "cache_dir: /tmp/jel\n")

	assert.Equal(t, filepath.Join("/tmp/jel", "ansible-jelastic.cache"), cfg.SnapshotPath())
	assert.Equal(t, filepath.Join("/tmp/jel", "ansible-jelastic.index"), cfg.IndexPath())
}

func TestExpandHome(t *testing.T) {
	cfg := loadFromYAML(t, "cache_dir: ~/jel-cache\n")

	home, err := os.UserHomeDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "jel-cache"), cfg.CacheDir)
}
