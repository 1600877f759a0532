package state

import "time"

const (
	// Inf marks a destination as currently unknown or unreachable. It is
	// larger than any achievable path sum so it never collides with a real
	// total cost.
	Inf = Cost(1e10)

	// SentinelHop is the reserved next-hop marker paired with Inf.
	SentinelHop = RouterId(-1)
)

var (
	// RecomputeInterval is the default period between full table
	// recomputations when running in watch mode.
	RecomputeInterval = time.Second * 30

	// PathCacheTTL bounds how long a resolved path may be served from
	// cache; paths are also invalidated whenever tables are recomputed.
	PathCacheTTL = time.Second * 10
)
