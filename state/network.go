package state

import "slices"

// RouterId is a dense identifier: routers are indexed by id as array position.
type RouterId int

type MachineId int

type Cost int64

// Neighbor is a directly connected router and the outgoing cost of the link.
// Each router's neighbor list is authoritative for its own outgoing costs;
// the reverse entry may be missing or carry a different cost.
type Neighbor struct {
	Id   RouterId `yaml:"id"`
	Cost Cost     `yaml:"cost"`
}

// Hop is a candidate next hop towards some destination.
type Hop struct {
	Via  RouterId
	Cost Cost
}

func (h Hop) Reachable() bool {
	return h.Via != SentinelHop && h.Cost < Inf
}

// DestEntry is a router's knowledge about a single destination. Best is
// maintained incrementally during relaxation; Candidates records every hop
// in discovery order and is sorted ascending by cost once the tables have
// converged, so Candidates[0] == Best and the rest are ranked fallbacks.
type DestEntry struct {
	Best       Hop
	Candidates []Hop
}

type Router struct {
	Id        RouterId   `yaml:"id"`
	Neighbors []Neighbor `yaml:"neighbors"`

	// Table maps destination id to the ranked next-hop candidates.
	// Fully rewritten by every routing computation.
	Table map[RouterId]*DestEntry `yaml:"-"`
}

// EdgeCost returns the outgoing cost from r to the given router, or Inf
// when the router is not in r's neighbor list.
func (r *Router) EdgeCost(to RouterId) Cost {
	for _, n := range r.Neighbors {
		if n.Id == to {
			return n.Cost
		}
	}
	return Inf
}

// Entry returns r's table entry for dest, or nil before tables are computed.
func (r *Router) Entry(dest RouterId) *DestEntry {
	if r.Table == nil {
		return nil
	}
	return r.Table[dest]
}

// BestHop returns the authoritative next hop from r towards dest. Before
// tables are computed, or for destinations in another component, the hop is
// the sentinel.
func (r *Router) BestHop(dest RouterId) Hop {
	e := r.Entry(dest)
	if e == nil {
		return Hop{Via: SentinelHop, Cost: Inf}
	}
	return e.Best
}

func (r *Router) Clone() *Router {
	return &Router{
		Id:        r.Id,
		Neighbors: slices.Clone(r.Neighbors),
		// tables are rewritten from scratch on every computation
	}
}

// Connection is a machine's record of a past conversation with a peer.
type Connection struct {
	Peer MachineId `yaml:"peer"`
	Cost Cost      `yaml:"cost"`
}

// Machine is an end host attached to one or more routers acting as its
// gateways. Machines are pure topology leaves; no routing logic touches them.
type Machine struct {
	Id              MachineId    `yaml:"id"`
	Gateways        []RouterId   `yaml:"gateways"`
	PrevConnections []Connection `yaml:"prev_connections,omitempty"`
}

func (m *Machine) Clone() *Machine {
	return &Machine{
		Id:              m.Id,
		Gateways:        slices.Clone(m.Gateways),
		PrevConnections: slices.Clone(m.PrevConnections),
	}
}

// Network pairs the router graph with its attached machines.
type Network struct {
	Routers  []*Router
	Machines []*Machine
}

// NewNetwork validates the topology invariants (dense router ids starting
// at 0, positive costs, machine gateways referencing existing routers) and
// returns the network.
func NewNetwork(routers []*Router, machines []*Machine) (*Network, error) {
	net := &Network{Routers: routers, Machines: machines}
	if err := ValidateNetwork(net); err != nil {
		return nil, err
	}
	return net, nil
}

// Router returns the router with the given id, or nil when out of range.
func (n *Network) Router(id RouterId) *Router {
	if id < 0 || int(id) >= len(n.Routers) {
		return nil
	}
	return n.Routers[id]
}

// Clone deep-copies the topology. Routing tables are not carried over;
// the copy is meant to be handed to a fresh computation.
func (n *Network) Clone() *Network {
	c := &Network{
		Routers:  make([]*Router, 0, len(n.Routers)),
		Machines: make([]*Machine, 0, len(n.Machines)),
	}
	for _, r := range n.Routers {
		c.Routers = append(c.Routers, r.Clone())
	}
	for _, m := range n.Machines {
		c.Machines = append(c.Machines, m.Clone())
	}
	return c
}
