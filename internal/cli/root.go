package cli

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/qwzybug/tsp/tsp"
)

// Execute runs the tsp CLI and returns an error if any command fails.
// The context carries cancellation (e.g. SIGINT) down into the solvers.
func Execute(ctx context.Context) error {
	var verbose bool

	root := &cobra.Command{
		Use:          "tsp",
		Short:        "tsp computes travel tours over complete weighted graphs",
		Long:         `tsp solves Travelling Salesman instances given as dense symmetric cost matrices, using either a fast metric 2-approximation or the exact Held–Karp dynamic program.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(ctx)
		},
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newSolveCmd())

	return root.ExecuteContext(ctx)
}

// newSolveCmd builds the solve subcommand: parse an instance (or use the
// built-in demo), run the selected solver, print tour and cost to stdout.
func newSolveCmd() *cobra.Command {
	var (
		algoName string
		exactMax int
	)

	cmd := &cobra.Command{
		Use:   "solve [instance-file]",
		Short: "Solve a TSP instance",
		Long: `Solve reads a whitespace-separated instance (location count n followed
by n×n costs) and prints the computed tour and its cost. Without an
instance file the built-in 4-location demo is solved.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			algo, err := parseAlgo(algoName)
			if err != nil {
				return err
			}
			// Range-check here: WithMaxExactNodes treats bad values as a
			// programming error, but flag input is user error.
			if exactMax <= 0 || exactMax > 62 {
				return fmt.Errorf("cli: --exact-max must be in [1,62], got %d", exactMax)
			}

			// Load the instance: file argument or built-in demo.
			dist := demoInstance()
			if len(args) == 1 {
				f, err := os.Open(args[0])
				if err != nil {
					return fmt.Errorf("cli: opening instance: %w", err)
				}
				defer f.Close()

				if dist, err = ParseInstance(f); err != nil {
					return err
				}
				logger.Debug("instance loaded", "file", args[0], "locations", len(dist))
			} else {
				logger.Debug("using built-in demo instance", "locations", len(dist))
			}

			opts := tsp.NewOptions(
				tsp.WithAlgorithm(algo),
				tsp.WithContext(cmd.Context()),
				tsp.WithMaxExactNodes(exactMax),
			)

			start := time.Now()
			res, err := tsp.Solve(dist, opts)
			if err != nil {
				return fmt.Errorf("cli: solving: %w", err)
			}
			logger.Info("solved", "algo", algoName, "locations", len(dist),
				"cost", res.Cost, "elapsed", time.Since(start).Round(time.Microsecond))

			fmt.Fprintln(cmd.OutOrStdout(), "Tour:", formatTour(res.Tour))
			fmt.Fprintln(cmd.OutOrStdout(), "Cost:", res.Cost)

			return nil
		},
	}

	cmd.Flags().StringVarP(&algoName, "algo", "a", "approx", "solver to use: approx or exact")
	cmd.Flags().IntVar(&exactMax, "exact-max", tsp.DefaultMaxExactNodes, "size ceiling for the exact solver")

	return cmd
}

// parseAlgo maps the --algo flag value onto the solver selector.
func parseAlgo(name string) (tsp.Algorithm, error) {
	switch strings.ToLower(name) {
	case "approx":
		return tsp.Approx2, nil
	case "exact":
		return tsp.ExactHeldKarp, nil
	default:
		return 0, fmt.Errorf("cli: unknown algorithm %q (want approx or exact)", name)
	}
}

// formatTour renders a tour as space-separated vertex indices.
func formatTour(tour []int) string {
	var sb strings.Builder
	for i, v := range tour {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%d", v)
	}

	return sb.String()
}
