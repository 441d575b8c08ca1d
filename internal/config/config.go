package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	snapshotFile = "ansible-jelastic.cache"
	indexFile    = "ansible-jelastic.index"
)

// Settings holds everything the inventory needs: provider endpoint,
// credentials, cache location and TTL, SSH gateway published in hostvars,
// and the grouping configuration.
type Settings struct {
	AppURL   string `mapstructure:"app_url"`
	AppID    string `mapstructure:"app_id"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`

	CacheDir string `mapstructure:"cache_dir"`
	CacheTTL int    `mapstructure:"cache_ttl"` // seconds

	SSHGateway string `mapstructure:"ssh_gateway"`
	SSHPort    int    `mapstructure:"ssh_port"`

	GroupByEnvironment bool `mapstructure:"group_by_environment"`
	GroupByNodeType    bool `mapstructure:"group_by_node_type"`
	GroupByNodeClass   bool `mapstructure:"group_by_node_class"`

	// NodeClasses maps nodeType prefixes to class group names. Order is
	// semantic: the first matching prefix wins, so keep broader prefixes
	// below narrower ones if they should not shadow them.
	NodeClasses []ClassMapping `mapstructure:"node_classes"`
}

// ClassMapping is one ordered entry of the nodeType-prefix to class table.
type ClassMapping struct {
	Prefix string `mapstructure:"prefix" yaml:"prefix"`
	Class  string `mapstructure:"class" yaml:"class"`
}

// Load unmarshals viper state into Settings on top of the defaults.
func Load() (*Settings, error) {
	cfg := &Settings{
		CacheDir:           "~/.ansible/tmp/jelastic",
		CacheTTL:           300,
		SSHGateway:         "localhost",
		SSHPort:            22,
		GroupByEnvironment: true,
		GroupByNodeType:    true,
		GroupByNodeClass:   true,
	}

	if err := viper.Unmarshal(cfg); err != nil {
		return nil, err
	}

	dir, err := expandHome(cfg.CacheDir)
	if err != nil {
		return nil, fmt.Errorf("resolving cache_dir: %w", err)
	}
	cfg.CacheDir = dir

	return cfg, nil
}

// SnapshotPath is the primary cache file holding the full inventory.
func (s *Settings) SnapshotPath() string {
	return filepath.Join(s.CacheDir, snapshotFile)
}

// IndexPath is the host-address index file next to the snapshot.
func (s *Settings) IndexPath() string {
	return filepath.Join(s.CacheDir, indexFile)
}

// TTL returns the snapshot time-to-live as a duration.
func (s *Settings) TTL() time.Duration {
	return time.Duration(s.CacheTTL) * time.Second
}

func expandHome(path string) (string, error) {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
	}
	return path, nil
}
