package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/five82/storedash/internal/app"
	"github.com/five82/storedash/internal/state"
)

func domainNames() []string {
	names := make([]string, 0, len(state.Domains))
	for _, d := range state.Domains {
		names = append(names, d.String())
	}
	return names
}

func newRootCmd() *cobra.Command {
	var opts app.Options

	root := &cobra.Command{
		Use:   "storedash",
		Short: "Terminal dashboard for the store admin API",
		Long: `storedash shows inventory, rankings, appliances, revenue and customer
preferences of one store from the store admin HTTP API.

Run without a subcommand to open the interactive dashboard.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app.Run(cmd.Context(), opts)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&opts.ConfigPath, "config", "", "config file (default ~/.config/storedash/config.toml)")
	flags.StringVar(&opts.PrefsPath, "prefs", "", "preferences file (default ~/.config/storedash/prefs.toml)")
	flags.Int64Var(&opts.StoreID, "store", 0, "store id (default: last selected, then config)")
	flags.IntVar(&opts.Year, "year", 0, "year to show (default: current)")
	flags.IntVar(&opts.Month, "month", 0, "month to show, 1-12 (default: current)")

	root.AddCommand(newReportCmd(&opts), newLogsCmd(&opts))
	return root
}

func newReportCmd(opts *app.Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:       "report <" + strings.Join(domainNames(), "|") + ">",
		Short:     "Print one dashboard section and exit",
		Args:      cobra.ExactArgs(1),
		ValidArgs: domainNames(),
		RunE: func(cmd *cobra.Command, args []string) error {
			domain, ok := state.ParseDomain(args[0])
			if !ok {
				return fmt.Errorf("unknown section %q (want one of %s)", args[0], strings.Join(domainNames(), ", "))
			}
			if opts.Month < 0 || opts.Month > 12 {
				return fmt.Errorf("month must be between 1 and 12, got %d", opts.Month)
			}
			if opts.ServerLowStock && domain != state.DomainMealKits && domain != state.DomainLaundry {
				return fmt.Errorf("--server-low-stock needs %s or %s, got %s", state.DomainMealKits, state.DomainLaundry, domain)
			}
			return app.Report(cmd.Context(), *opts, domain, cmd.OutOrStdout())
		},
	}
	cmd.Flags().BoolVar(&opts.ServerLowStock, "server-low-stock", false, "also show the server-filtered low-stock list (mealkits, laundry)")
	return cmd
}

func newLogsCmd(opts *app.Options) *cobra.Command {
	var lines int
	var problems bool

	cmd := &cobra.Command{
		Use:   "logs",
		Short: "Print the tail of the storedash log",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app.Logs(*opts, lines, problems, cmd.OutOrStdout())
		},
	}
	cmd.Flags().IntVarP(&lines, "lines", "n", 100, "number of lines to read; 0 reads the whole file")
	cmd.Flags().BoolVar(&problems, "problems", false, "only warnings and errors")
	return cmd
}
