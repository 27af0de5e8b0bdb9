package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/srad-secure/srad-backend-go/internal/domain/guard"
)

// ValidateCmd returns the validate command
func ValidateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <guard-id> <post-id>",
		Short: "Check regional compliance of a dispatch against the fixtures",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			c, err := seededContainer(ctx, 0)
			if err != nil {
				return err
			}

			v, err := c.Services.Dispatch.ValidateDispatch(ctx, args[0], args[1])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if v.OK {
				fmt.Fprintf(out, "%s %s -> %s allowed", okMark, args[0], args[1])
			} else {
				fmt.Fprintf(out, "%s %s -> %s blocked", failMark, args[0], args[1])
			}
			if v.Reason != "" {
				fmt.Fprintf(out, " (%s)", v.Reason)
			}
			fmt.Fprintln(out)
			return nil
		},
	}
	return cmd
}

// RankCmd returns the rank command
func RankCmd() *cobra.Command {
	var (
		limit     int
		maxTravel float64
	)

	cmd := &cobra.Command{
		Use:   "rank <absence-id>",
		Short: "Rank substitutes for a fixture absence",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			c, err := seededContainer(ctx, maxTravel)
			if err != nil {
				return err
			}

			ranking, err := c.Services.Dispatch.RankForAbsence(ctx, args[0], limit)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Absence %s at %s (%s shift, %s crew absent)\n",
				ranking.Absence.ID, ranking.PostRegion, ranking.Absence.Shift, ranking.Absence.Crew)
			fmt.Fprintf(out, "%d candidate(s)\n\n", ranking.Total)

			bold := color.New(color.Bold)
			for i, cand := range ranking.Candidates {
				mark := okMark
				if !cand.Selectable {
					mark = failMark
				}
				fmt.Fprintf(out, "%2d. %s %s %-28s %8.1f", i+1, mark, bold.Sprint(cand.GuardID), cand.Name, cand.Score)
				if cand.Validation.Reason != "" {
					fmt.Fprintf(out, "  %s", color.New(color.FgYellow).Sprint(cand.Validation.Reason))
				}
				fmt.Fprintln(out)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 0, "Show at most this many candidates (0 = all)")
	cmd.Flags().Float64Var(&maxTravel, "max-travel", 0, "Override the travel limit in minutes")
	return cmd
}

// RosterCmd returns the roster command
func RosterCmd() *cobra.Command {
	var crew string

	cmd := &cobra.Command{
		Use:   "roster",
		Short: "List the fixture guards",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			c, err := seededContainer(ctx, 0)
			if err != nil {
				return err
			}

			filter := guard.GuardFilter{}
			if crew != "" {
				cr := guard.Crew(crew)
				if !cr.Valid() {
					return errors.New("crew must be EVEN or ODD")
				}
				filter.Crew = &cr
			}

			guards, err := c.Services.Guard.List(ctx, filter)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, g := range guards {
				fmt.Fprintf(out, "%-4s %-28s %-4s %-10s %s\n", g.ID, g.Name, g.Crew, g.Status, g.HomeRegion)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&crew, "crew", "", "Only guards of this crew (EVEN or ODD)")
	return cmd
}
