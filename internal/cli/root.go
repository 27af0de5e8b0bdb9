package cli

import (
	"context"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/srad-secure/srad-backend-go/internal/app"
	"github.com/srad-secure/srad-backend-go/internal/domain/settings"
)

var (
	okMark   = color.New(color.FgGreen).Sprint("✓")
	failMark = color.New(color.FgRed).Sprint("✗")
)

// RootCmd returns the sradctl command tree
func RootCmd(version string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "sradctl",
		Short:   "SRAD operations console tooling",
		Version: version,
		Long: `sradctl inspects the SRAD dispatch engine offline:
travel times between regions, regional compliance checks and substitute
rankings computed against the startup fixtures.`,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(RegionsCmd())
	rootCmd.AddCommand(TravelCmd())
	rootCmd.AddCommand(ValidateCmd())
	rootCmd.AddCommand(RankCmd())
	rootCmd.AddCommand(RosterCmd())

	return rootCmd
}

// seededContainer builds a fixture-loaded container. maxTravel overrides the
// travel limit when positive.
func seededContainer(ctx context.Context, maxTravel float64) (*app.Container, error) {
	cfg := settings.DefaultConfig()
	if maxTravel > 0 {
		if err := cfg.Set(settings.ParamMaxTravelMinutes, maxTravel); err != nil {
			return nil, err
		}
	}
	return app.NewContainer(ctx, cfg, true, time.Now().UTC())
}
