package core

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/massigy/routenet/state"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustNetwork(t *testing.T, cfg *state.TopologyCfg) *state.Network {
	t.Helper()
	net, err := state.BuildNetwork(cfg)
	require.NoError(t, err)
	return net
}

// dijkstra is an independent reference: best cost from src to every router
// using each router's own outgoing neighbor costs.
func dijkstra(routers []*state.Router, src state.RouterId) map[state.RouterId]state.Cost {
	dist := make(map[state.RouterId]state.Cost, len(routers))
	for _, r := range routers {
		dist[r.Id] = state.Inf
	}
	dist[src] = 0
	visited := make(map[state.RouterId]bool, len(routers))

	for len(visited) < len(routers) {
		cur := state.SentinelHop
		best := state.Inf + 1
		for id, d := range dist {
			if !visited[id] && d < best {
				cur = id
				best = d
			}
		}
		if cur == state.SentinelHop {
			break
		}
		visited[cur] = true
		for _, n := range routers[cur].Neighbors {
			if alt := dist[cur] + n.Cost; alt < dist[n.Id] {
				dist[n.Id] = alt
			}
		}
	}
	return dist
}

func TestComputeRoutingTables_EmptyTopology(t *testing.T) {
	err := ComputeRoutingTables(nil)
	assert.ErrorIs(t, err, state.ErrEmptyTopology)
}

func TestComputeRoutingTables_SelfRoute(t *testing.T) {
	net := state.SeedNetwork()
	require.NoError(t, ComputeRoutingTables(net.Routers))
	for _, r := range net.Routers {
		best := r.BestHop(r.Id)
		assert.Equal(t, r.Id, best.Via)
		assert.Equal(t, state.Cost(0), best.Cost)
	}
}

func TestComputeRoutingTables_SeedScenario(t *testing.T) {
	net := state.SeedNetwork()
	require.NoError(t, ComputeRoutingTables(net.Routers))

	// 0-1:1, 1-4:1, 4-3:1, 3-5:1 is the cheapest chain from 0 to 5
	best := net.Routers[0].BestHop(5)
	assert.Equal(t, state.Cost(4), best.Cost)

	path, err := FindBestRoute(net.Routers, net.Routers[0], net.Routers[5])
	require.NoError(t, err)
	assert.Equal(t, state.RouterId(0), path[0])
	assert.Equal(t, state.RouterId(5), path[len(path)-1])
	assert.Equal(t, best.Cost, PathCost(net.Routers, path))
	assert.Equal(t, []state.RouterId{0, 1, 4, 3, 5}, path)
}

func TestComputeRoutingTables_MatchesDijkstra(t *testing.T) {
	net := state.SeedNetwork()
	require.NoError(t, ComputeRoutingTables(net.Routers))

	for _, src := range net.Routers {
		ref := dijkstra(net.Routers, src.Id)
		for _, dest := range net.Routers {
			assert.Equal(t, ref[dest.Id], src.BestHop(dest.Id).Cost,
				"cost %d -> %d", src.Id, dest.Id)
		}
	}
}

func TestComputeRoutingTables_TriangleInequality(t *testing.T) {
	net := state.SeedNetwork()
	require.NoError(t, ComputeRoutingTables(net.Routers))

	for _, r := range net.Routers {
		for _, dest := range net.Routers {
			best := r.BestHop(dest.Id).Cost
			for _, n := range r.Neighbors {
				via := net.Routers[n.Id].BestHop(dest.Id).Cost
				if via >= state.Inf {
					continue
				}
				assert.LessOrEqual(t, best, n.Cost+via,
					"router %d dest %d via neighbor %d", r.Id, dest.Id, n.Id)
			}
		}
	}
}

func TestComputeRoutingTables_Idempotent(t *testing.T) {
	net := state.SeedNetwork()
	require.NoError(t, ComputeRoutingTables(net.Routers))
	first := bestHops(net.Routers)

	require.NoError(t, ComputeRoutingTables(net.Routers))
	second := bestHops(net.Routers)

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("best hops changed across recomputation (-first +second):\n%s", diff)
	}
}

func bestHops(routers []*state.Router) map[state.RouterId]map[state.RouterId]state.Hop {
	out := make(map[state.RouterId]map[state.RouterId]state.Hop)
	for _, r := range routers {
		out[r.Id] = make(map[state.RouterId]state.Hop)
		for d := range r.Table {
			out[r.Id][d] = r.BestHop(d)
		}
	}
	return out
}

func TestComputeRoutingTables_AsymmetricLink(t *testing.T) {
	// router 0 lists 1 as a neighbor, but 1 does not list 0 back
	net := mustNetwork(t, &state.TopologyCfg{
		Routers: []*state.Router{
			{Id: 0, Neighbors: []state.Neighbor{{Id: 1, Cost: 5}}},
			{Id: 1},
		},
	})
	require.NoError(t, ComputeRoutingTables(net.Routers))

	// 0 still reaches 1 over its own outgoing edge
	assert.Equal(t, state.Hop{Via: 1, Cost: 5}, net.Routers[0].BestHop(1))

	// 1 has no edge back, so 0 stays unknown to it
	assert.False(t, net.Routers[1].BestHop(0).Reachable())
	_, err := FindBestRoute(net.Routers, net.Routers[1], net.Routers[0])
	assert.ErrorIs(t, err, state.ErrUnreachableDestination)
}

func TestComputeRoutingTables_Disconnected(t *testing.T) {
	net := mustNetwork(t, &state.TopologyCfg{
		Edges: []string{"0-1: 1", "2-3: 1"},
	})
	require.NoError(t, ComputeRoutingTables(net.Routers))

	entry := net.Routers[0].Entry(3)
	require.NotNil(t, entry)
	assert.Equal(t, state.Hop{Via: state.SentinelHop, Cost: state.Inf}, entry.Best)

	_, err := FindBestRoute(net.Routers, net.Routers[0], net.Routers[3])
	assert.ErrorIs(t, err, state.ErrUnreachableDestination)
}

func TestComputeRoutingTables_FallbacksRanked(t *testing.T) {
	net := state.SeedNetwork()
	require.NoError(t, ComputeRoutingTables(net.Routers))

	for _, r := range net.Routers {
		for d, e := range r.Table {
			require.NotEmpty(t, e.Candidates)
			assert.Equal(t, e.Candidates[0], e.Best, "router %d dest %d", r.Id, d)
			for i := 1; i < len(e.Candidates); i++ {
				assert.LessOrEqual(t, e.Candidates[i-1].Cost, e.Candidates[i].Cost,
					"router %d dest %d candidates out of order", r.Id, d)
			}
		}
	}
}
