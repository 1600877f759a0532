// Package render turns a network and an optional highlighted path into a
// Graphviz DOT document, viewable with xdot or `dot -Tsvg`.
package render

import (
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/massigy/routenet/state"
)

// WriteDot writes the network as a DOT digraph. Every neighbor relation
// becomes a labelled edge; edges listed in highlight are coloured red.
// Machines are drawn as plain arrows to their gateway routers.
func WriteDot(w io.Writer, net *state.Network, highlight []state.Edge) error {
	if len(net.Routers) == 0 {
		return state.ErrEmptyTopology
	}

	if _, err := fmt.Fprintln(w, "digraph network {"); err != nil {
		return err
	}
	for _, r := range net.Routers {
		for _, n := range r.Neighbors {
			attrs := fmt.Sprintf(" [label=%q]", fmt.Sprint(n.Cost))
			if slices.Contains(highlight, state.Edge{V1: r.Id, V2: n.Id}) {
				attrs += ` [color="red"]`
			}
			if _, err := fmt.Fprintf(w, "\tr_%d -> r_%d%s;\n", r.Id, n.Id, attrs); err != nil {
				return err
			}
		}
	}
	for _, m := range net.Machines {
		for _, gw := range m.Gateways {
			if _, err := fmt.Fprintf(w, "\tm_%d -> r_%d;\n", m.Id, gw); err != nil {
				return err
			}
		}
	}
	_, err := fmt.Fprintln(w, "}")
	return err
}

// WriteDotFile renders the network to the given file, truncating it first.
func WriteDotFile(path string, net *state.Network, highlight []state.Edge) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	if err = WriteDot(f, net, highlight); err != nil {
		return err
	}
	return f.Close()
}
