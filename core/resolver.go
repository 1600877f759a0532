package core

import (
	"fmt"
	"slices"

	"github.com/massigy/routenet/state"
)

// FindBestRoute walks the best-hop chain from src towards dest and returns
// the full forwarding path, both endpoints included. It trusts each
// router's locally computed best hop and does not re-validate costs end to
// end; a sentinel entry means the destination lives in another component,
// and a walk longer than the router count means the tables are inconsistent
// (a bug, or a read racing a recomputation).
func FindBestRoute(routers []*state.Router, src, dest *state.Router) ([]state.RouterId, error) {
	if !slices.Contains(routers, src) {
		return nil, fmt.Errorf("source %d: %w", src.Id, state.ErrUnknownRouter)
	}
	if !slices.Contains(routers, dest) {
		return nil, fmt.Errorf("destination %d: %w", dest.Id, state.ErrUnknownRouter)
	}

	path := []state.RouterId{src.Id}
	if src == dest {
		return path, nil
	}

	cur := src
	for hops := 0; hops < len(routers); hops++ {
		next := cur.BestHop(dest.Id)
		if !next.Reachable() {
			return nil, fmt.Errorf("%d -> %d at router %d: %w", src.Id, dest.Id, cur.Id, state.ErrUnreachableDestination)
		}
		path = append(path, next.Via)
		if next.Via == dest.Id {
			return path, nil
		}
		cur = routers[next.Via]
	}
	return nil, fmt.Errorf("%d -> %d: %w", src.Id, dest.Id, state.ErrRoutePathCycle)
}

// PathSteps converts a resolved path into its consecutive (from, to) edge
// pairs, the form the renderer highlights.
func PathSteps(path []state.RouterId) []state.Edge {
	if len(path) < 2 {
		return nil
	}
	steps := make([]state.Edge, 0, len(path)-1)
	for i := 0; i < len(path)-1; i++ {
		steps = append(steps, state.Edge{V1: path[i], V2: path[i+1]})
	}
	return steps
}

// PathCost sums the per-hop edge costs along path, using each hop's own
// outgoing neighbor entry.
func PathCost(routers []*state.Router, path []state.RouterId) state.Cost {
	var total state.Cost
	for i := 0; i < len(path)-1; i++ {
		total += routers[path[i]].EdgeCost(path[i+1])
	}
	return total
}
