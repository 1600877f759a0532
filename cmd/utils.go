package cmd

import (
	"fmt"
	"strconv"

	"github.com/massigy/routenet/state"
)

func loadNetwork() (*state.Network, error) {
	if topologyPath == "" {
		log.Debug("no topology given, using the built-in example network")
		return state.SeedNetwork(), nil
	}
	return state.LoadTopology(topologyPath)
}

func parseRouterArg(arg string) (state.RouterId, error) {
	id, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("invalid router id %q: %w", arg, err)
	}
	return state.RouterId(id), nil
}
