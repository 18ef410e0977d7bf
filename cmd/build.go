package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vinnych/portfolio/internal/progress"
	"github.com/vinnych/portfolio/internal/site"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Write the portfolio as a static site",
	Long: `Renders the page with the current project list and writes index.html,
style.css, script.js, projects.json and the matching assets to the output
directory. When the GitHub API is unavailable the fallback projects are used.`,
	RunE: runBuild,
}

func init() {
	buildCmd.Flags().String("output", "", "override output directory (defaults to output_dir from config)")
	buildCmd.Flags().Bool("offline", false, "skip the GitHub API and render the fallback projects")
	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	outputDir, _ := cmd.Flags().GetString("output")
	if outputDir == "" {
		outputDir = cfg.OutputDir
	}
	offline, _ := cmd.Flags().GetBool("offline")

	renderer, err := newRenderer(cfg)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	gen := &site.Generator{
		Renderer:  renderer,
		OutputDir: outputDir,
		AssetsDir: cfg.AssetsDir,
		Assets:    cfg.Assets,
		Reporter:  progress.NewReporter(),
		Logger:    logger,
	}
	summary, err := gen.Generate(ctx, offline)
	if err != nil {
		return fmt.Errorf("building site: %w", err)
	}

	fmt.Printf("Site written to %s (%d %s projects, %d assets)\n",
		outputDir, summary.Cards, summary.Source, summary.Assets)
	return nil
}
