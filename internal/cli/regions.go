package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/srad-secure/srad-backend-go/internal/domain/region"
	"github.com/srad-secure/srad-backend-go/internal/service/travel"
)

// RegionsCmd returns the regions command
func RegionsCmd() *cobra.Command {
	var state string

	cmd := &cobra.Command{
		Use:   "regions",
		Short: "List operational regions",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			filter := region.State(state)
			if filter != "" && !filter.Valid() {
				return region.ErrUnknownState
			}

			for _, info := range region.All() {
				if filter != "" && info.State != filter {
					continue
				}
				fmt.Fprintf(out, "%-34s %-3s %s\n", info.Region, info.State, info.Partition)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&state, "state", "", "Only regions of this state (DF or GO)")
	return cmd
}

// TravelCmd returns the travel command
func TravelCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "travel <origin> <destination>",
		Short: "Resolve travel minutes between two regions",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			origin, err := region.Parse(args[0])
			if err != nil {
				return fmt.Errorf("origin %q: %w", args[0], err)
			}
			destination, err := region.Parse(args[1])
			if err != nil {
				return fmt.Errorf("destination %q: %w", args[1], err)
			}

			minutes := travel.ResolveTravelMinutes(origin, destination)
			mark := okMark
			if minutes > limit {
				mark = failMark
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s -> %s: %d min (limit %d)\n", mark, origin, destination, minutes, limit)
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 80, "Travel limit in minutes")
	return cmd
}
