package state

type Pair[Ty1, Ty2 any] struct {
	V1 Ty1
	V2 Ty2
}

// Edge is a directed (from, to) router pair, used for path highlighting.
type Edge = Pair[RouterId, RouterId]
