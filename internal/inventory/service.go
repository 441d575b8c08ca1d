// Package inventory builds, persists and serves the grouped host
// inventory derived from the provider's environment listing.
package inventory

import (
	"encoding/json"
	"errors"
	"os"

	"github.com/WKLive/jelastic-inventory/internal/cache"
	"github.com/WKLive/jelastic-inventory/internal/config"
	"github.com/WKLive/jelastic-inventory/internal/index"
	"github.com/WKLive/jelastic-inventory/internal/provider"
	"go.uber.org/zap"
)

// Source is the provider capability the service needs: a scoped session
// and the environment listing.
type Source interface {
	Signin() (*provider.Session, error)
	Environments(s *provider.Session) ([]provider.EnvironmentInfo, error)
	Signout(s *provider.Session) error
}

// Service orchestrates refreshes, cached listings and single-host lookups.
type Service struct {
	cfg  *config.Settings
	src  Source
	log  *zap.Logger
	snap *Snapshot // set after a refresh in this process
	idx  *index.Index
}

// NewService wires a service from settings, a provider source and a logger.
func NewService(cfg *config.Settings, src Source, log *zap.Logger) *Service {
	return &Service{
		cfg: cfg,
		src: src,
		log: log,
		idx: index.New(),
	}
}

// Refresh rebuilds the snapshot and index from the provider and persists
// both. The provider session is released on every path, including
// failures while fetching or persisting.
func (s *Service) Refresh() (snap *Snapshot, err error) {
	sess, err := s.src.Signin()
	if err != nil {
		return nil, err
	}
	defer func() {
		if serr := s.src.Signout(sess); serr != nil {
			s.log.Warn("signout failed", zap.Error(serr))
			if err == nil {
				err = serr
				snap = nil
			}
		}
	}()

	infos, err := s.src.Environments(sess)
	if err != nil {
		return nil, err
	}

	b := NewBuilder(Options{
		GroupByNodeType:  s.cfg.GroupByNodeType,
		GroupByNodeClass: s.cfg.GroupByNodeClass,
		NodeClasses:      s.cfg.NodeClasses,
		SSHGateway:       s.cfg.SSHGateway,
		SSHPort:          s.cfg.SSHPort,
	})
	for _, info := range infos {
		b.AddEnvironment(info)
	}

	if err := cache.EnsureDir(s.cfg.CacheDir); err != nil {
		return nil, err
	}
	if err := cache.Write(s.cfg.SnapshotPath(), b.Snapshot()); err != nil {
		return nil, err
	}
	if err := b.Index().Save(s.cfg.IndexPath()); err != nil {
		return nil, err
	}

	s.snap = b.Snapshot()
	s.idx = b.Index()
	s.log.Debug("inventory refreshed",
		zap.Int("environments", len(infos)),
		zap.Int("hosts", s.idx.Len()))
	return s.snap, nil
}

// List returns the full inventory document: the cached file verbatim when
// it is still valid and force is false, otherwise a fresh build.
func (s *Service) List(force bool) ([]byte, error) {
	if !force && cache.Valid(s.cfg.SnapshotPath(), s.cfg.IndexPath(), s.cfg.TTL()) {
		s.log.Debug("serving cached inventory", zap.String("path", s.cfg.SnapshotPath()))
		return cache.Read(s.cfg.SnapshotPath())
	}

	snap, err := s.Refresh()
	if err != nil {
		return nil, err
	}
	return json.MarshalIndent(snap, "", "  ")
}

// HostInfo returns the variables for one host address, or nil when the
// host is unknown. A lookup miss triggers at most one refresh; a host
// that is still absent afterwards no longer exists and is not an error.
func (s *Service) HostInfo(address string) (*HostVars, error) {
	if s.idx.Len() == 0 {
		err := s.idx.Load(s.cfg.IndexPath())
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
		// a missing index file behaves like an empty index; the refresh
		// below rebuilds it
	}

	if _, ok := s.idx.Resolve(address); !ok {
		if _, err := s.Refresh(); err != nil {
			return nil, err
		}
		if _, ok := s.idx.Resolve(address); !ok {
			return nil, nil
		}
	}

	// The snapshot is persisted in lockstep with the index, so a resolved
	// address is served from it rather than re-fetched per node from the
	// provider. s.snap is nil only when the index came from disk.
	if s.snap == nil {
		var snap Snapshot
		data, err := cache.Read(s.cfg.SnapshotPath())
		if err == nil {
			err = json.Unmarshal(data, &snap)
		}
		if err != nil {
			if _, rerr := s.Refresh(); rerr != nil {
				return nil, rerr
			}
		} else {
			s.snap = &snap
		}
	}

	hv, ok := s.snap.Meta.Hostvars[address]
	if !ok {
		return nil, nil
	}
	return &hv, nil
}
