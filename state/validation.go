package state

import (
	"fmt"
	"slices"
)

// ValidateNetwork checks the topology invariants the routing engine relies
// on. Router ids must be dense starting at 0 and each router must sit at its
// id's position, since the engine indexes routers by id.
func ValidateNetwork(net *Network) error {
	for i, r := range net.Routers {
		if r == nil {
			return fmt.Errorf("router at position %d is nil", i)
		}
		if r.Id != RouterId(i) {
			return fmt.Errorf("router ids must be dense starting at 0: position %d holds id %d", i, r.Id)
		}
		if err := validateNeighbors(net, r); err != nil {
			return err
		}
	}
	seen := make([]MachineId, 0, len(net.Machines))
	for _, m := range net.Machines {
		if slices.Contains(seen, m.Id) {
			return fmt.Errorf("duplicate machine id %d", m.Id)
		}
		seen = append(seen, m.Id)
		for _, gw := range m.Gateways {
			if net.Router(gw) == nil {
				return fmt.Errorf("machine %d references unknown gateway router %d", m.Id, gw)
			}
		}
	}
	return nil
}

func validateNeighbors(net *Network, r *Router) error {
	seen := make([]RouterId, 0, len(r.Neighbors))
	for _, n := range r.Neighbors {
		if n.Id == r.Id {
			return fmt.Errorf("router %d lists itself as a neighbor", r.Id)
		}
		if net.Router(n.Id) == nil {
			return fmt.Errorf("router %d lists unknown neighbor %d", r.Id, n.Id)
		}
		if n.Cost <= 0 {
			return fmt.Errorf("router %d has non-positive cost %d to neighbor %d", r.Id, n.Cost, n.Id)
		}
		if n.Cost >= Inf {
			return fmt.Errorf("router %d has cost %d to neighbor %d, which exceeds the representable maximum", r.Id, n.Cost, n.Id)
		}
		if slices.Contains(seen, n.Id) {
			return fmt.Errorf("router %d lists neighbor %d twice", r.Id, n.Id)
		}
		seen = append(seen, n.Id)
	}
	return nil
}
