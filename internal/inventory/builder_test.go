package inventory

import (
	"testing"

	"github.com/WKLive/jelastic-inventory/internal/config"
	"github.com/WKLive/jelastic-inventory/internal/provider"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultOptions() Options {
	return Options{
		GroupByNodeType:  true,
		GroupByNodeClass: true,
		NodeClasses: []config.ClassMapping{
			{Prefix: "cp.app", Class: "appserver"},
		},
		SSHGateway: "gate.paas.example",
		SSHPort:    3022,
	}
}

func runningEnv() provider.EnvironmentInfo {
	return provider.EnvironmentInfo{
		Env: provider.Environment{
			Domain:      "appA",
			ShortDomain: "a",
			UID:         42,
			Status:      provider.StatusRunning,
		},
		Nodes: []provider.Node{
			{ID: 1001, Address: "10.0.0.1", NodeType: "cp.app"},
		},
	}
}

func TestMapNodeClassFirstMatchWins(t *testing.T) {
	table := []config.ClassMapping{
		{Prefix: "cp", Class: "proxy"},
		{Prefix: "cp.sql", Class: "db"},
	}

	// not longest-prefix-wins: the earlier, broader entry shadows
	assert.Equal(t, "proxy", MapNodeClass("cp.sql.master", table))
}

func TestMapNodeClassTableOrderDecides(t *testing.T) {
	table := []config.ClassMapping{
		{Prefix: "cp.sql", Class: "db"},
		{Prefix: "cp", Class: "proxy"},
	}

	assert.Equal(t, "db", MapNodeClass("cp.sql.master", table))
	assert.Equal(t, "proxy", MapNodeClass("cp.web", table))
}

func TestMapNodeClassUnknown(t *testing.T) {
	table := []config.ClassMapping{{Prefix: "cp", Class: "proxy"}}

	assert.Equal(t, "unknown", MapNodeClass("sqldb", table))
	assert.Equal(t, "unknown", MapNodeClass("sqldb", nil))
}

func TestBuildHostVars(t *testing.T) {
	hv := BuildHostVars(
		provider.Environment{Domain: "appA", UID: 42},
		provider.Node{ID: 1001},
		"gate.paas.example", 3022)

	assert.Equal(t, HostVars{
		AnsibleSSHHost: "gate.paas.example",
		AnsibleSSHPort: 3022,
		AnsibleSSHUser: "1001-42",
	}, hv)
}

func TestAddEnvironmentFullGrouping(t *testing.T) {
	b := NewBuilder(Options{
		GroupByNodeType:  true,
		GroupByNodeClass: true,
		NodeClasses:      []config.ClassMapping{{Prefix: "cp.app", Class: "appserver"}},
		SSHGateway:       "gate.paas.example",
		SSHPort:          3022,
	})

	b.AddEnvironment(runningEnv())
	snap := b.Snapshot()

	for _, key := range []string{"appA", "a", "cp.app", "appserver"} {
		require.Contains(t, snap.Groups, key)
		assert.Equal(t, []string{"10.0.0.1"}, snap.Groups[key].Hosts, "group %q", key)
	}

	hv, ok := snap.Meta.Hostvars["10.0.0.1"]
	require.True(t, ok)
	assert.Equal(t, "gate.paas.example", hv.AnsibleSSHHost)
	assert.Equal(t, 3022, hv.AnsibleSSHPort)
	assert.Equal(t, "1001-42", hv.AnsibleSSHUser)

	entry, ok := b.Index().Resolve("10.0.0.1")
	require.True(t, ok)
	assert.Equal(t, "appA", entry.Environment)
	assert.Equal(t, "1001", entry.NodeID)
}

func TestAddEnvironmentSkipsStopped(t *testing.T) {
	b := NewBuilder(defaultOptions())

	info := runningEnv()
	info.Env.Status = 2
	b.AddEnvironment(info)

	assert.Empty(t, b.Snapshot().Groups)
	assert.Empty(t, b.Snapshot().Meta.Hostvars)
	assert.Zero(t, b.Index().Len())
}

func TestAddNodeSkipsMissingAddress(t *testing.T) {
	b := NewBuilder(defaultOptions())

	info := runningEnv()
	info.Nodes = []provider.Node{
		{ID: 1001, Address: "", NodeType: "cp.app"},
		{ID: 1002, Address: "10.0.0.2", NodeType: "cp.app"},
	}
	b.AddEnvironment(info)

	// the addressless node contributes nothing, its sibling still lands
	snap := b.Snapshot()
	assert.Equal(t, []string{"10.0.0.2"}, snap.Groups["appA"].Hosts)
	assert.Len(t, snap.Meta.Hostvars, 1)
	assert.Equal(t, 1, b.Index().Len())
}

func TestGroupingTogglesOff(t *testing.T) {
	opts := defaultOptions()
	opts.GroupByNodeType = false
	opts.GroupByNodeClass = false
	b := NewBuilder(opts)

	b.AddEnvironment(runningEnv())
	snap := b.Snapshot()

	// environment groups are always emitted
	assert.Contains(t, snap.Groups, "appA")
	assert.Contains(t, snap.Groups, "a")
	assert.NotContains(t, snap.Groups, "cp.app")
	assert.NotContains(t, snap.Groups, "appserver")
	assert.Contains(t, snap.Meta.Hostvars, "10.0.0.1")
}

func TestSharedNodeTypeGroupAccumulates(t *testing.T) {
	b := NewBuilder(defaultOptions())

	first := runningEnv()
	second := runningEnv()
	second.Env.Domain = "appB"
	second.Env.ShortDomain = "b"
	second.Nodes = []provider.Node{{ID: 2001, Address: "10.0.0.2", NodeType: "cp.app"}}

	b.AddEnvironment(first)
	b.AddEnvironment(second)

	assert.Equal(t, []string{"10.0.0.1", "10.0.0.2"}, b.Snapshot().Groups["cp.app"].Hosts)
}
