package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ama-arogya/arogya/pkg/store"
)

func newStatsCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show interaction statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			st, err := store.New(cfg.DBPath)
			if err != nil {
				return err
			}
			defer func() { _ = st.Close() }()

			stats, err := st.Stats(context.Background())
			if err != nil {
				return err
			}

			fmt.Printf("Total interactions: %d\n", stats.TotalInteractions)
			fmt.Printf("Avg response time:  %.2fms\n", stats.AvgResponseTimeMs)
			if len(stats.Languages) > 0 {
				fmt.Println("Languages:")
				for lang, count := range stats.Languages {
					fmt.Printf("  %-4s %d\n", lang, count)
				}
			}
			if len(stats.PopularTopics) > 0 {
				fmt.Println("Top topics:")
				for _, t := range stats.PopularTopics {
					fmt.Printf("  %-14s %5d  %.2fms\n", t.Topic, t.Count, t.AvgResponseTimeMs)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "arogya.yaml", "path to config file")
	return cmd
}
