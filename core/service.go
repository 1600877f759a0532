package core

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/jellydator/ttlcache/v3"
	"github.com/massigy/routenet/state"
)

type pathKey struct {
	gen       uint64
	src, dest state.RouterId
}

// Service owns a topology and serves fully converged routing snapshots to
// readers while recomputations run. Recomputation happens on a copy of the
// topology and is swapped in atomically once converged, so a reader never
// observes a router mid-relaxation. Each swap bumps the generation, which
// keys the resolved-path cache so stale paths die with their snapshot.
type Service struct {
	log  *slog.Logger
	topo *state.Network

	mu   sync.RWMutex
	snap *state.Network
	gen  uint64

	paths *ttlcache.Cache[pathKey, []state.RouterId]
}

func NewService(topo *state.Network, log *slog.Logger) *Service {
	return &Service{
		log:  log,
		topo: topo,
		paths: ttlcache.New[pathKey, []state.RouterId](
			ttlcache.WithTTL[pathKey, []state.RouterId](state.PathCacheTTL),
		),
	}
}

// Recompute runs a full table computation and publishes the result.
func (s *Service) Recompute() error {
	next := s.topo.Clone()
	start := time.Now()
	if err := ComputeRoutingTables(next.Routers); err != nil {
		return err
	}
	s.mu.Lock()
	s.snap = next
	s.gen++
	gen := s.gen
	s.mu.Unlock()
	s.log.Debug("routing tables recomputed",
		"gen", gen,
		"routers", len(next.Routers),
		"took", time.Since(start))
	return nil
}

// Snapshot returns the latest converged network and its generation. The
// network is nil until the first Recompute completes.
func (s *Service) Snapshot() (*state.Network, uint64) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap, s.gen
}

// BestRoute resolves the forwarding path between two routers against the
// latest snapshot, computing tables first if none has been published yet.
func (s *Service) BestRoute(src, dest state.RouterId) ([]state.RouterId, error) {
	snap, gen := s.Snapshot()
	if snap == nil {
		if err := s.Recompute(); err != nil {
			return nil, err
		}
		snap, gen = s.Snapshot()
	}

	key := pathKey{gen: gen, src: src, dest: dest}
	if item := s.paths.Get(key); item != nil {
		return item.Value(), nil
	}

	srcR := snap.Router(src)
	if srcR == nil {
		return nil, fmt.Errorf("source %d: %w", src, state.ErrUnknownRouter)
	}
	destR := snap.Router(dest)
	if destR == nil {
		return nil, fmt.Errorf("destination %d: %w", dest, state.ErrUnknownRouter)
	}

	path, err := FindBestRoute(snap.Routers, srcR, destR)
	if err != nil {
		return nil, err
	}
	s.paths.Set(key, path, ttlcache.DefaultTTL)
	return path, nil
}

// Run recomputes immediately, then again on every tick until the context
// is cancelled. This models the periodic self-healing recomputation of a
// distance-vector network.
func (s *Service) Run(ctx context.Context, interval time.Duration) error {
	go s.paths.Start()
	defer s.paths.Stop()

	if err := s.Recompute(); err != nil {
		return err
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			s.log.Debug("recompute scheduler stopped")
			return nil
		case <-ticker.C:
			if err := s.Recompute(); err != nil {
				return err
			}
		}
	}
}
