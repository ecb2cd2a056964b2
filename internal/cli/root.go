package cli

import (
	"os"

	"github.com/spf13/cobra"
)

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// lookupOptions collects the flags shared by the forecast and browse commands.
type lookupOptions struct {
	nation  string
	city    string
	date    string
	units   string
	format  string
	query   string
	noCache bool
	debug   bool
}

func newRootCmd() *cobra.Command {
	opts := &lookupOptions{}

	cmd := &cobra.Command{
		Use:          "pyweather",
		Short:        "pyweather — weather forecast lookup in your terminal",
		SilenceUsage: true,
		// Bare `pyweather -c Boston -n US` behaves like `pyweather forecast`.
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runForecast(cmd, opts)
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVarP(&opts.nation, "nation", "n", "", "Nation or country code (e.g. US, UK)")
	pf.StringVarP(&opts.city, "city", "c", "", "City name")
	pf.StringVarP(&opts.date, "date", "d", "", "Date YYYY-MM-DD or range YYYY-MM-DD:YYYY-MM-DD (default: today)")
	pf.StringVarP(&opts.units, "units", "u", "", "Unit group: metric|us")
	pf.BoolVar(&opts.noCache, "no-cache", false, "Bypass the forecast cache for this lookup")
	pf.BoolVar(&opts.debug, "debug", false, "Enable verbose logging to .pyweather/logs/pyweather.log")

	cmd.Flags().StringVar(&opts.format, "format", "table", "Output format: table|json")
	cmd.Flags().StringVar(&opts.query, "query", "", "JSONPath expression evaluated against the raw API response")

	cmd.AddCommand(forecastCmd(opts))
	cmd.AddCommand(cachedCmd(opts))
	cmd.AddCommand(browseCmd(opts))
	cmd.AddCommand(versionCmd())

	return cmd
}
