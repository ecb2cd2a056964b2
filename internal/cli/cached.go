package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

func cachedCmd(opts *lookupOptions) *cobra.Command {
	c := &cobra.Command{
		Use:   "cached",
		Short: "Manage cached forecast snapshots",
	}

	c.AddCommand(cachedListCmd(opts))
	return c
}

func cachedListCmd(opts *lookupOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List cached forecast snapshots",
		RunE: func(cmd *cobra.Command, _ []string) error {
			done := setupLogging(opts.debug)
			defer done()

			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			cache, err := newCache(cfg)
			if err != nil {
				return err
			}
			if cache == nil {
				fmt.Println("(caching is disabled)")
				return nil
			}

			refs, err := cache.List()
			if err != nil {
				return err
			}
			if len(refs) == 0 {
				fmt.Println("(no cached forecasts)")
				return nil
			}

			now := time.Now().UTC()
			for _, r := range refs {
				state := ""
				if r.Expired(now) {
					state = "  (expired)"
				}
				fmt.Printf("- %s  %s  fetched %s%s\n",
					r.Location,
					r.Range,
					r.FetchedAt.Format(time.RFC3339),
					state,
				)
			}
			return nil
		},
	}
}
