package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thywilljoshua/pdf-digest/internal/ai"
	"github.com/thywilljoshua/pdf-digest/internal/cache"
	"github.com/thywilljoshua/pdf-digest/internal/config"
	"github.com/thywilljoshua/pdf-digest/internal/digest"
)

func runCmd() *cobra.Command {
	var configPath string
	var input string
	var output string
	var outputName string
	var xlsx bool
	var cachePath string
	var aiProvider string
	var aiModel string

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Rank every PDF in the input directory and write the digest",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			flags := cmd.Flags()
			if flags.Changed("input") {
				cfg.InputDir = input
			}
			if flags.Changed("output") {
				cfg.OutputDir = output
			}
			if flags.Changed("output-name") {
				cfg.OutputName = outputName
			}
			if flags.Changed("xlsx") {
				cfg.XLSX = xlsx
			}
			if flags.Changed("cache") {
				cfg.CachePath = cachePath
			}
			if flags.Changed("ai") {
				cfg.AI.Provider = aiProvider
			}
			if flags.Changed("ai-model") {
				cfg.AI.Model = aiModel
			}

			ctx := cmd.Context()
			conf := digest.Config{
				InputDir:    cfg.InputDir,
				OutputDir:   cfg.OutputDir,
				PersonaFile: cfg.PersonaFile,
				JobFile:     cfg.JobFile,
				OutputName:  cfg.OutputName,
				XLSX:        cfg.XLSX,
				Outline:     cfg.Outline,
				Rank:        cfg.Rank,
				Enhancer:    enhancer(ctx, cfg.AI),
				Logger:      slog.Default(),
			}
			if cfg.CachePath != "" {
				store, err := cache.Open(cfg.CachePath)
				if err != nil {
					return fmt.Errorf("open cache: %w", err)
				}
				defer store.Close()
				conf.Cache = store
			}

			res, err := digest.Run(ctx, conf)
			if err != nil {
				return err
			}
			b, _ := json.MarshalIndent(res, "", "  ")
			fmt.Fprintln(cmd.OutOrStdout(), string(b))
			return nil
		},
	}
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "YAML config file")
	cmd.Flags().StringVarP(&input, "input", "i", "", "directory holding the PDFs, persona.txt and job_to_be_done.txt")
	cmd.Flags().StringVarP(&output, "output", "o", "", "directory for the digest")
	cmd.Flags().StringVar(&outputName, "output-name", "digest_output.json", "file name of the JSON digest")
	cmd.Flags().BoolVar(&xlsx, "xlsx", false, "also write an XLSX workbook next to the JSON")
	cmd.Flags().StringVar(&cachePath, "cache", "", "SQLite file caching outlines between runs")
	cmd.Flags().StringVar(&aiProvider, "ai", "off", "AI provider for persona structuring: off|gemini")
	cmd.Flags().StringVar(&aiModel, "ai-model", "gemini-2.5-flash", "model used by the AI provider")
	return cmd
}

// enhancer falls back to the rule-based persona when Gemini is not usable.
func enhancer(ctx context.Context, c config.AIConfig) ai.Enhancer {
	if !strings.EqualFold(c.Provider, "gemini") {
		return ai.Noop{}
	}
	g, err := ai.NewGemini(ctx, os.Getenv("GOOGLE_API_KEY"), c.Model)
	if err != nil {
		slog.Warn("ai.gemini.disabled", "error", err)
		return ai.Noop{}
	}
	return g
}
