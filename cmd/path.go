package cmd

import (
	"fmt"

	"github.com/massigy/routenet/core"
	"github.com/massigy/routenet/state"
	"github.com/spf13/cobra"
)

var pathCmd = &cobra.Command{
	Use:   "path <src> <dest>",
	Short: "Resolve the best forwarding path between two routers",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		src, err := parseRouterArg(args[0])
		if err != nil {
			return err
		}
		dest, err := parseRouterArg(args[1])
		if err != nil {
			return err
		}

		net, err := loadNetwork()
		if err != nil {
			return err
		}
		if err = core.ComputeRoutingTables(net.Routers); err != nil {
			return err
		}

		srcR, destR := net.Router(src), net.Router(dest)
		if srcR == nil || destR == nil {
			return fmt.Errorf("topology has %d routers: %w", len(net.Routers), state.ErrUnknownRouter)
		}
		path, err := core.FindBestRoute(net.Routers, srcR, destR)
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%s (cost %d)\n",
			core.FormatPath(path), core.PathCost(net.Routers, path))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(pathCmd)
}
