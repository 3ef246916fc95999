// Package main provides the brandctl CLI: run analyses without the HTTP server.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"brandpulse-srv/config"
	configLLM "brandpulse-srv/config/llm"
	"brandpulse-srv/internal/analysis"
	analysisUsecase "brandpulse-srv/internal/analysis/usecase"
	"brandpulse-srv/internal/model"
	"brandpulse-srv/pkg/llm"
	"brandpulse-srv/pkg/log"
)

var version = "1.0.0"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

type globalFlags struct {
	seed    int64
	offline bool
	verbose bool
}

type requestFlags struct {
	influencer string
	brand      string
	platform   string
	limit      int
}

func newRootCmd() *cobra.Command {
	var g globalFlags

	rootCmd := &cobra.Command{
		Use:           "brandctl",
		Short:         "Analyse influencer content against a brand",
		Long:          "brandctl runs the BrandPulse analysis pipeline locally and prints the result as JSON.",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	rootCmd.SetVersionTemplate("brandctl version {{.Version}}\n")

	rootCmd.PersistentFlags().Int64Var(&g.seed, "seed", 0, "Seed for the post generator (0 = clock)")
	rootCmd.PersistentFlags().BoolVar(&g.offline, "offline", false, "Never call the LLM; always synthesize the analysis")
	rootCmd.PersistentFlags().BoolVar(&g.verbose, "verbose", false, "Log pipeline progress to stderr")

	rootCmd.AddCommand(newAnalyzeCmd(&g))
	rootCmd.AddCommand(newPostsCmd(&g))

	return rootCmd
}

func newAnalyzeCmd(g *globalFlags) *cobra.Command {
	var f requestFlags

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Analyse an influencer for a brand",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), 2*time.Minute)
			defer cancel()

			uc, err := buildUseCase(g)
			if err != nil {
				return err
			}

			o, err := uc.Analyze(ctx, analysis.AnalyzeInput{
				Influencer: f.influencer,
				Brand:      f.brand,
				Platform:   model.Platform(f.platform),
				Limit:      f.limit,
			})
			if err != nil {
				return fmt.Errorf("analyze: %w", err)
			}
			return writeJSON(cmd.OutOrStdout(), o)
		},
	}

	addRequestFlags(cmd, &f)
	_ = cmd.MarkFlagRequired("influencer")
	_ = cmd.MarkFlagRequired("brand")
	return cmd
}

func newPostsCmd(g *globalFlags) *cobra.Command {
	var f requestFlags

	cmd := &cobra.Command{
		Use:   "posts",
		Short: "Print the synthetic post corpus for an influencer",
		RunE: func(cmd *cobra.Command, args []string) error {
			uc, err := buildUseCase(&globalFlags{seed: g.seed, offline: true, verbose: g.verbose})
			if err != nil {
				return err
			}

			o, err := uc.GeneratePosts(cmd.Context(), analysis.PostsInput{
				Influencer: f.influencer,
				Brand:      f.brand,
				Platform:   model.Platform(f.platform),
				Limit:      f.limit,
			})
			if err != nil {
				return fmt.Errorf("posts: %w", err)
			}
			return writeJSON(cmd.OutOrStdout(), o)
		},
	}

	addRequestFlags(cmd, &f)
	_ = cmd.MarkFlagRequired("influencer")
	return cmd
}

func addRequestFlags(cmd *cobra.Command, f *requestFlags) {
	cmd.Flags().StringVarP(&f.influencer, "influencer", "i", "", "Influencer handle")
	cmd.Flags().StringVarP(&f.brand, "brand", "b", "", "Brand name")
	cmd.Flags().StringVarP(&f.platform, "platform", "p", "instagram", "instagram, youtube, tiktok or twitter")
	cmd.Flags().IntVarP(&f.limit, "limit", "l", 0, "Number of posts (0 = configured default)")
}

// buildUseCase wires the analysis pipeline without cache or event publishing.
func buildUseCase(g *globalFlags) (analysis.UseCase, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	l := log.NewNop()
	if g.verbose {
		l = log.Init(log.ZapConfig{
			Level:        cfg.Logger.Level,
			Mode:         cfg.Logger.Mode,
			Encoding:     "console",
			ColorEnabled: cfg.Logger.ColorEnabled,
		})
	}

	var provider llm.IProvider
	if !g.offline {
		provider, err = configLLM.Connect(l, cfg.LLM)
		if err != nil {
			return nil, fmt.Errorf("llm: %w", err)
		}
	}

	seed := cfg.Analysis.Seed
	if g.seed != 0 {
		seed = g.seed
	}

	return analysisUsecase.New(l, provider, nil, nil, analysisUsecase.Config{
		DefaultLimit:            cfg.Analysis.DefaultLimit,
		MaxLimit:                cfg.Analysis.MaxLimit,
		BrandMentionProbability: &cfg.Analysis.BrandMentionProbability,
		EngagementVariance:      &cfg.Analysis.EngagementVariance,
		Seed:                    seed,
	}), nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
