package main

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/thywilljoshua/pdf-digest/internal/cache"
	"github.com/thywilljoshua/pdf-digest/internal/config"
	"github.com/thywilljoshua/pdf-digest/internal/digest"
	"github.com/thywilljoshua/pdf-digest/internal/outline"
)

type nestedOutline struct {
	Document string         `json:"document"`
	Title    string         `json:"title"`
	Outline  []outline.Node `json:"outline"`
}

func outlineCmd() *cobra.Command {
	var configPath string
	var cachePath string
	var nested bool

	cmd := &cobra.Command{
		Use:   "outline <pdf>...",
		Short: "Print the title and heading outline of PDFs as JSON",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			if cmd.Flags().Changed("cache") {
				cfg.CachePath = cachePath
			}
			conf := digest.Config{Outline: cfg.Outline, Logger: slog.Default()}
			if cfg.CachePath != "" {
				store, err := cache.Open(cfg.CachePath)
				if err != nil {
					return fmt.Errorf("open cache: %w", err)
				}
				defer store.Close()
				conf.Cache = store
			}

			outs, err := digest.Outlines(cmd.Context(), conf, args)
			if err != nil {
				return err
			}
			var v any = outs
			if nested {
				trees := make([]nestedOutline, 0, len(outs))
				for _, o := range outs {
					trees = append(trees, nestedOutline{
						Document: o.Document,
						Title:    o.Title,
						Outline:  outline.Tree(o.Sections),
					})
				}
				v = trees
			}
			b, err := json.MarshalIndent(v, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(b))
			return nil
		},
	}
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "YAML config file")
	cmd.Flags().StringVar(&cachePath, "cache", "", "SQLite file caching outlines between runs")
	cmd.Flags().BoolVar(&nested, "nested", false, "nest H2/H3 headings under their parents")
	return cmd
}
