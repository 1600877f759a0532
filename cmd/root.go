package cmd

import (
	"log/slog"
	"os"

	"github.com/massigy/routenet/core"
	"github.com/spf13/cobra"
)

var (
	topologyPath string
	logPath      string
	verbose      bool

	log *slog.Logger
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "routenet",
	Short: "Distance-vector routing simulator",
	Long: `Routenet models a small network of routers and end machines, computes
every router's routing table with Bellman-Ford relaxation, and resolves
concrete forwarding paths from those tables.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		log, err = core.SetupLogging(verbose, logPath)
		return err
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&topologyPath, "topology", "t", "", "topology YAML file (uses the built-in example network when empty)")
	rootCmd.PersistentFlags().StringVar(&logPath, "log-file", "", "also write logs to this file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}
