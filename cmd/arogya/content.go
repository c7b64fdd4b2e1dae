package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ama-arogya/arogya/pkg/classify"
	"github.com/ama-arogya/arogya/pkg/models"
	"github.com/ama-arogya/arogya/pkg/store"
)

func newContentCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "content",
		Short: "Manage health content",
	}

	seedCmd := &cobra.Command{
		Use:   "seed",
		Short: "Seed placeholder content rows for every topic and language",
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

			ctx := context.Background()
			n := 0
			for _, topic := range classify.Topics() {
				for _, lang := range cfg.Languages.Supported {
					err := st.UpsertContent(ctx, models.HealthContent{
						Topic:    topic,
						Language: lang,
						Title:    topic,
						Content:  fmt.Sprintf("Health guidance for %s (%s). Edit this entry.", topic, lang),
						IsActive: true,
					})
					if err != nil {
						return err
					}
					n++
				}
			}
			fmt.Printf("Seeded %d content entries\n", n)
			return nil
		},
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List stored health content",
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

			entries, err := st.ListContent(context.Background())
			if err != nil {
				return err
			}
			for _, e := range entries {
				active := " "
				if e.IsActive {
					active = "*"
				}
				fmt.Printf("%s %-14s %-4s %s\n", active, e.Topic, e.Language, e.Title)
			}
			return nil
		},
	}

	cmd.AddCommand(seedCmd, listCmd)
	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", "arogya.yaml", "path to config file")
	return cmd
}
