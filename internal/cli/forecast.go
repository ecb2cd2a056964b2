package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/V3lvetStorm/pyweather/internal/domain"
	"github.com/V3lvetStorm/pyweather/internal/infra/logger"
	"github.com/V3lvetStorm/pyweather/internal/usecase"
)

const noDataMessage = "No weather data available for the specified period."

func forecastCmd(opts *lookupOptions) *cobra.Command {
	c := &cobra.Command{
		Use:   "forecast",
		Short: "Fetch and display the forecast for a location and date range",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runForecast(cmd, opts)
		},
	}

	c.Flags().StringVar(&opts.format, "format", "table", "Output format: table|json")
	c.Flags().StringVar(&opts.query, "query", "", "JSONPath expression evaluated against the raw API response")
	return c
}

func runForecast(cmd *cobra.Command, opts *lookupOptions) error {
	done := setupLogging(opts.debug)
	defer done()
	log := logger.L()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	params, err := resolveParams(cfg, opts, time.Now().UTC())
	if err != nil {
		return err
	}

	apiKey, err := resolveAPIKey(cfg)
	if err != nil {
		return err
	}

	uc, err := newUseCase(cfg, apiKey, log)
	if err != nil {
		return err
	}

	log.Info("lookup.start",
		"location", params.Location.Query(),
		"range", params.Range.String(),
		"units", string(params.Units),
	)

	res, err := uc.Execute(cmd.Context(), params)
	if err != nil {
		return err
	}
	log.Info("lookup.done", "days", len(res.Forecast.Days), "from_cache", res.FromCache)

	return printForecast(os.Stdout, res, opts)
}

func printForecast(w io.Writer, res usecase.Result, opts *lookupOptions) error {
	if opts.query != "" {
		out, err := evalQuery(res.Raw, opts.query)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, out)
		return nil
	}

	switch opts.format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(res.Forecast)
	case "table", "":
		fc := res.Forecast
		fmt.Fprintf(w, "\n📍 %s — %s\n\n", fc.Location.Display(), fc.Range)
		if len(fc.Days) == 0 {
			fmt.Fprintln(w, noDataMessage)
			return nil
		}
		fmt.Fprintln(w, renderForecastTable(fc))
		return nil
	default:
		return &domain.OpError{
			Op:   "cli.format",
			Kind: domain.KindInvalidConfig,
			Err:  fmt.Errorf("unsupported format %q (expected table|json): %w", opts.format, domain.ErrInvalidConfig),
		}
	}
}
