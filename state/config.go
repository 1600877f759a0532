package state

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/goccy/go-yaml"
)

// TopologyCfg is the on-disk description of a network. Routers may be
// declared explicitly with per-neighbor costs, through the edge shorthand,
// or both; shorthand edges are merged into the declared neighbor lists.
type TopologyCfg struct {
	Routers  []*Router  `yaml:"routers,omitempty"`
	Machines []*Machine `yaml:"machines,omitempty"`

	// Edges is a shorthand for bidirectional links, one per entry, in the
	// form "a-b: c" where a and b are router ids and c is the link cost.
	// Routers named only in edges are created implicitly.
	Edges []string `yaml:"edges,omitempty"`
}

// LoadTopology reads a YAML topology file and returns the validated network.
func LoadTopology(path string) (*Network, error) {
	file, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg TopologyCfg
	if err = yaml.Unmarshal(file, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse topology %s: %w", path, err)
	}
	return BuildNetwork(&cfg)
}

// BuildNetwork expands the edge shorthand, merges it with the declared
// routers and validates the result.
func BuildNetwork(cfg *TopologyCfg) (*Network, error) {
	routers := make(map[RouterId]*Router)
	maxId := RouterId(-1)

	for _, r := range cfg.Routers {
		if _, ok := routers[r.Id]; ok {
			return nil, fmt.Errorf("duplicate router id %d", r.Id)
		}
		routers[r.Id] = r
		maxId = max(maxId, r.Id)
	}

	edges, err := ParseEdges(cfg.Edges)
	if err != nil {
		return nil, err
	}
	for _, e := range edges {
		for _, id := range []RouterId{e.A, e.B} {
			if _, ok := routers[id]; !ok {
				routers[id] = &Router{Id: id}
				maxId = max(maxId, id)
			}
		}
		addNeighbor(routers[e.A], e.B, e.Cost)
		addNeighbor(routers[e.B], e.A, e.Cost)
	}

	ordered := make([]*Router, 0, len(routers))
	for id := RouterId(0); id <= maxId; id++ {
		r, ok := routers[id]
		if !ok {
			return nil, fmt.Errorf("router ids must be dense starting at 0: id %d is missing", id)
		}
		ordered = append(ordered, r)
	}
	return NewNetwork(ordered, cfg.Machines)
}

type EdgeCfg struct {
	A, B RouterId
	Cost Cost
}

// ParseEdges parses the "a-b: c" edge shorthand. Whitespace around the
// separators is ignored.
func ParseEdges(edges []string) ([]EdgeCfg, error) {
	parsed := make([]EdgeCfg, 0, len(edges))
	for _, line := range edges {
		pair, costStr, ok := strings.Cut(line, ":")
		if !ok {
			return nil, fmt.Errorf("invalid edge %q: expected \"a-b: cost\"", line)
		}
		a, b, ok := strings.Cut(pair, "-")
		if !ok {
			return nil, fmt.Errorf("invalid edge %q: endpoints must be separated by '-'", line)
		}
		aId, err := parseRouterId(a)
		if err != nil {
			return nil, fmt.Errorf("invalid edge %q: %w", line, err)
		}
		bId, err := parseRouterId(b)
		if err != nil {
			return nil, fmt.Errorf("invalid edge %q: %w", line, err)
		}
		if aId == bId {
			return nil, fmt.Errorf("invalid edge %q: a router cannot link to itself", line)
		}
		cost, err := strconv.ParseInt(strings.TrimSpace(costStr), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid edge %q: %w", line, err)
		}
		parsed = append(parsed, EdgeCfg{A: aId, B: bId, Cost: Cost(cost)})
	}
	return parsed, nil
}

func parseRouterId(s string) (RouterId, error) {
	id, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, err
	}
	if id < 0 {
		return 0, fmt.Errorf("router id %d is negative", id)
	}
	return RouterId(id), nil
}

func addNeighbor(r *Router, to RouterId, cost Cost) {
	for _, n := range r.Neighbors {
		if n.Id == to {
			// explicit declaration wins over the shorthand
			return
		}
	}
	r.Neighbors = append(r.Neighbors, Neighbor{Id: to, Cost: cost})
}
