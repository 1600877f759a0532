package core

import (
	"cmp"
	"slices"

	"github.com/massigy/routenet/state"
)

// ComputeRoutingTables runs a Bellman-Ford style relaxation over the router
// graph, once per destination, and rewrites every router's table in place.
// Costs come from each router's own neighbor list, so asymmetric links are
// honoured: a router with no back-edge to the destination simply never
// learns a direct route.
//
// Calling it again on an unchanged topology converges to the same best
// hops, which is what makes periodic self-healing recomputation safe.
func ComputeRoutingTables(routers []*state.Router) error {
	if len(routers) == 0 {
		return state.ErrEmptyTopology
	}

	for _, r := range routers {
		r.Table = make(map[state.RouterId]*state.DestEntry, len(routers))
	}

	for _, dest := range routers {
		relaxDestination(routers, dest)
	}

	// entries were appended in discovery order; rank them by cost so the
	// first candidate is the authoritative hop and the rest are fallbacks
	for _, r := range routers {
		for _, e := range r.Table {
			slices.SortStableFunc(e.Candidates, func(a, b state.Hop) int {
				return cmp.Compare(a.Cost, b.Cost)
			})
			e.Best = e.Candidates[0]
		}
	}
	return nil
}

// relaxDestination fills in every router's table entry for dest. Entries
// start at the sentinel, dest's direct neighbors are seeded from their own
// back-edge costs, then whole-graph passes run until a pass produces no
// improvement, capped at one pass per router as a watchdog.
func relaxDestination(routers []*state.Router, dest *state.Router) {
	dest.Table[dest.Id] = &state.DestEntry{
		Best:       state.Hop{Via: dest.Id, Cost: 0},
		Candidates: []state.Hop{{Via: dest.Id, Cost: 0}},
	}
	for _, r := range routers {
		if r == dest {
			continue
		}
		r.Table[dest.Id] = &state.DestEntry{
			Best:       state.Hop{Via: state.SentinelHop, Cost: state.Inf},
			Candidates: []state.Hop{{Via: state.SentinelHop, Cost: state.Inf}},
		}
	}

	for _, n := range dest.Neighbors {
		// the link need not be symmetric: the neighbor's own list is
		// authoritative for its outgoing cost back to dest
		back := routers[n.Id].EdgeCost(dest.Id)
		if back >= state.Inf {
			continue
		}
		improve(routers[n.Id].Table[dest.Id], state.Hop{Via: dest.Id, Cost: back})
	}

	for pass := 0; pass < len(routers); pass++ {
		updated := false
		for _, r := range routers {
			if r == dest {
				continue
			}
			entry := r.Table[dest.Id]
			for _, n := range r.Neighbors {
				known := routers[n.Id].Table[dest.Id].Best.Cost
				if known >= state.Inf {
					continue // neighbor not yet informed
				}
				if improve(entry, state.Hop{Via: n.Id, Cost: n.Cost + known}) {
					updated = true
				}
			}
		}
		if !updated {
			break
		}
	}
}

// improve appends hop as the new best candidate when it is strictly better
// than the incumbent; worse or equal candidates are discarded so the list
// only grows while costs shrink.
func improve(e *state.DestEntry, hop state.Hop) bool {
	if hop.Cost >= e.Best.Cost {
		return false
	}
	e.Best = hop
	e.Candidates = append(e.Candidates, hop)
	return true
}
