package core

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/massigy/routenet/state"
)

// WriteTables prints every router's table: one line per destination with
// the best next hop and cost, fallbacks trailing when present.
func WriteTables(w io.Writer, routers []*state.Router) {
	for _, r := range routers {
		fmt.Fprintf(w, "router %d\n", r.Id)
		dests := make([]state.RouterId, 0, len(r.Table))
		for d := range r.Table {
			dests = append(dests, d)
		}
		slices.Sort(dests)
		for _, d := range dests {
			e := r.Table[d]
			if !e.Best.Reachable() {
				fmt.Fprintf(w, "  %d: unreachable\n", d)
				continue
			}
			fmt.Fprintf(w, "  %d: via %d (cost %d)%s\n", d, e.Best.Via, e.Best.Cost, formatFallbacks(e))
		}
	}
}

func formatFallbacks(e *state.DestEntry) string {
	var b strings.Builder
	for _, h := range e.Candidates[1:] {
		if !h.Reachable() {
			continue
		}
		if b.Len() == 0 {
			b.WriteString(" fallbacks:")
		}
		fmt.Fprintf(&b, " %d/%d", h.Via, h.Cost)
	}
	return b.String()
}

// FormatPath renders a resolved path as "0 -> 1 -> 4 -> 3 -> 5".
func FormatPath(path []state.RouterId) string {
	parts := make([]string, 0, len(path))
	for _, id := range path {
		parts = append(parts, fmt.Sprintf("%d", id))
	}
	return strings.Join(parts, " -> ")
}
