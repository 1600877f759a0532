package cmd

import (
	"os/signal"
	"syscall"
	"time"

	"github.com/massigy/routenet/core"
	"github.com/massigy/routenet/state"
	"github.com/spf13/cobra"
)

var watchInterval time.Duration

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Recompute routing tables periodically until interrupted",
	Long: `Watch runs the self-healing loop: the full table computation is re-run
on every interval, and readers are always served the last fully converged
snapshot.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		net, err := loadNetwork()
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		svc := core.NewService(net, log)
		log.Info("starting recompute scheduler",
			"interval", watchInterval,
			"routers", len(net.Routers))
		return svc.Run(ctx, watchInterval)
	},
}

func init() {
	watchCmd.Flags().DurationVar(&watchInterval, "interval", state.RecomputeInterval, "time between recomputations")
	rootCmd.AddCommand(watchCmd)
}
