package state

// SeedNetwork returns the built-in example topology: six routers in a mesh
// with three machines hanging off routers 1, 0 and 2. It is used by the CLI
// when no topology file is given.
func SeedNetwork() *Network {
	net, err := BuildNetwork(&TopologyCfg{
		Edges: []string{
			"0-1: 1",
			"0-2: 2",
			"1-2: 2",
			"1-3: 3",
			"1-4: 1",
			"2-4: 3",
			"3-4: 1",
			"3-5: 1",
			"4-5: 3",
		},
		Machines: []*Machine{
			{Id: 0, Gateways: []RouterId{1}},
			{Id: 1, Gateways: []RouterId{0}},
			{Id: 2, Gateways: []RouterId{2}},
		},
	})
	if err != nil {
		// the seed is a compile-time constant, it cannot be invalid
		panic(err)
	}
	return net
}
