package cmd

import (
	"fmt"

	"github.com/massigy/routenet/core"
	"github.com/massigy/routenet/render"
	"github.com/massigy/routenet/state"
	"github.com/spf13/cobra"
)

var (
	renderOut  string
	renderSrc  int
	renderDest int
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Write the network as a Graphviz DOT file",
	Long: `Render writes the topology as a DOT digraph, viewable with xdot or
dot -Tsvg. When --src and --dest are given, the best path between the two
routers is resolved and its edges are highlighted in red.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		net, err := loadNetwork()
		if err != nil {
			return err
		}

		var highlight []state.Edge
		if renderSrc >= 0 || renderDest >= 0 {
			if renderSrc < 0 || renderDest < 0 {
				return fmt.Errorf("--src and --dest must be given together")
			}
			if err = core.ComputeRoutingTables(net.Routers); err != nil {
				return err
			}
			srcR, destR := net.Router(state.RouterId(renderSrc)), net.Router(state.RouterId(renderDest))
			if srcR == nil || destR == nil {
				return fmt.Errorf("topology has %d routers: %w", len(net.Routers), state.ErrUnknownRouter)
			}
			path, err := core.FindBestRoute(net.Routers, srcR, destR)
			if err != nil {
				return err
			}
			highlight = core.PathSteps(path)
			log.Info("highlighting path", "path", core.FormatPath(path))
		}

		if err = render.WriteDotFile(renderOut, net, highlight); err != nil {
			return err
		}
		log.Info("network rendered", "file", renderOut)
		return nil
	},
}

func init() {
	renderCmd.Flags().StringVarP(&renderOut, "out", "o", "network.dot", "output file")
	renderCmd.Flags().IntVar(&renderSrc, "src", -1, "highlight the best path from this router")
	renderCmd.Flags().IntVar(&renderDest, "dest", -1, "highlight the best path to this router")
	rootCmd.AddCommand(renderCmd)
}
