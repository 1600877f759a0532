package cmd

import (
	"github.com/massigy/routenet/core"
	"github.com/spf13/cobra"
)

var tablesCmd = &cobra.Command{
	Use:   "tables",
	Short: "Compute and print every router's routing table",
	RunE: func(cmd *cobra.Command, args []string) error {
		net, err := loadNetwork()
		if err != nil {
			return err
		}
		if err = core.ComputeRoutingTables(net.Routers); err != nil {
			return err
		}
		log.Info("routing tables computed", "routers", len(net.Routers))
		core.WriteTables(cmd.OutOrStdout(), net.Routers)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(tablesCmd)
}
