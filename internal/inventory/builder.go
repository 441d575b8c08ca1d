package inventory

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/WKLive/jelastic-inventory/internal/config"
	"github.com/WKLive/jelastic-inventory/internal/index"
	"github.com/WKLive/jelastic-inventory/internal/provider"
)

// unknownClass is the group for node types no mapping entry covers.
const unknownClass = "unknown"

// Options configure a single build pass.
type Options struct {
	GroupByNodeType  bool
	GroupByNodeClass bool
	NodeClasses      []config.ClassMapping
	SSHGateway       string
	SSHPort          int
}

// Builder turns provider environment listings into a snapshot and the
// matching host index.
type Builder struct {
	opts Options
	snap *Snapshot
	idx  *index.Index
}

// NewBuilder creates a builder with an empty snapshot and index.
func NewBuilder(opts Options) *Builder {
	return &Builder{
		opts: opts,
		snap: NewSnapshot(),
		idx:  index.New(),
	}
}

// AddEnvironment folds one environment and its nodes into the build.
// Environments that are not running contribute nothing.
func (b *Builder) AddEnvironment(info provider.EnvironmentInfo) {
	if info.Env.Status != provider.StatusRunning {
		return
	}
	for _, node := range info.Nodes {
		b.addNode(info.Env, node)
	}
}

// addNode records one host: index entry, environment groups, the optional
// node-type and node-class groups, and the hostvars entry. Nodes without
// an address cannot be inventoried and are skipped.
func (b *Builder) addNode(env provider.Environment, node provider.Node) {
	if node.Address == "" {
		return
	}

	b.idx.Record(node.Address, env.Domain, strconv.Itoa(node.ID))

	Push(b.snap.Groups, env.Domain, node.Address)
	Push(b.snap.Groups, env.ShortDomain, node.Address)

	if b.opts.GroupByNodeType {
		Push(b.snap.Groups, node.NodeType, node.Address)
	}
	if b.opts.GroupByNodeClass {
		Push(b.snap.Groups, MapNodeClass(node.NodeType, b.opts.NodeClasses), node.Address)
	}

	b.snap.Meta.Hostvars[node.Address] = BuildHostVars(env, node, b.opts.SSHGateway, b.opts.SSHPort)
}

// MapNodeClass returns the class of the first table entry whose prefix
// matches nodeType. The first match wins even when a later entry is more
// specific, so configured order decides ties.
func MapNodeClass(nodeType string, table []config.ClassMapping) string {
	for _, m := range table {
		if strings.HasPrefix(nodeType, m.Prefix) {
			return m.Class
		}
	}
	return unknownClass
}

// BuildHostVars derives the connection variables for one node.
func BuildHostVars(env provider.Environment, node provider.Node, gateway string, port int) HostVars {
	return HostVars{
		AnsibleSSHHost: gateway,
		AnsibleSSHPort: port,
		AnsibleSSHUser: fmt.Sprintf("%d-%d", node.ID, env.UID),
	}
}

// Snapshot returns the built snapshot.
func (b *Builder) Snapshot() *Snapshot {
	return b.snap
}

// Index returns the built host index.
func (b *Builder) Index() *index.Index {
	return b.idx
}
