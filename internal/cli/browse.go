package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/V3lvetStorm/pyweather/internal/infra/logger"
	"github.com/V3lvetStorm/pyweather/internal/ui/tui"
)

func browseCmd(opts *lookupOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Fetch the forecast and browse it interactively",
		RunE: func(cmd *cobra.Command, _ []string) error {
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

			res, err := uc.Execute(cmd.Context(), params)
			if err != nil {
				return err
			}

			return tui.Run(tui.Deps{
				Forecast: res.Forecast,
				Logger:   log,
			})
		},
	}
}
