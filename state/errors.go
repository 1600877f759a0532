package state

import "errors"

var (
	// ErrEmptyTopology is returned when a computation is requested over an
	// empty router list. The computation is a no-op; the caller decides
	// whether that is fatal.
	ErrEmptyTopology = errors.New("topology has no routers")

	// ErrUnknownRouter is returned when a path is requested for a router
	// that is not part of the topology.
	ErrUnknownRouter = errors.New("router is not part of the topology")

	// ErrUnreachableDestination is returned when the best-hop chain runs
	// into a sentinel entry, meaning the destination is in another
	// connected component.
	ErrUnreachableDestination = errors.New("destination is unreachable")

	// ErrRoutePathCycle is returned when a path walk visits more hops than
	// there are routers, which can only happen with inconsistent tables.
	ErrRoutePathCycle = errors.New("routing tables produced a next-hop cycle")
)
