// Command drawgen pre-generates the fight announcement content (VS posters
// and press dialogue) so the bot can serve /draw without live image calls.
// Safe to re-run: existing artifacts are kept as-is.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/m3rciful/cockfight/content"
	coreconfig "github.com/m3rciful/cockfight/core/config"
	"github.com/m3rciful/cockfight/core/logger"
	"github.com/m3rciful/cockfight/game"
	"github.com/m3rciful/cockfight/genai"
	"log/slog"
)

func main() {
	_ = godotenv.Load()

	configPath := flag.String("config", "config.yaml", "path to the config file")
	outputDir := flag.String("output", "", "override the draw content directory")
	onlyFight := flag.Int("fight", 0, "generate a single fight (1-3), 0 for all")
	presentations := flag.Bool("presentations", false, "generate fighter presentation images instead of fight content")
	force := flag.Bool("force", false, "with -presentations, regenerate existing images")
	flag.Parse()

	if err := run(*configPath, *outputDir, *onlyFight, *presentations, *force); err != nil {
		log.Printf("fatal: %v", err)
		os.Exit(1)
	}
}

func run(configPath, outputDir string, onlyFight int, presentations, force bool) error {
	cfg, err := coreconfig.Load(configPath)
	if err != nil {
		return err
	}
	if err := logger.Init(logger.Settings{
		Level:   cfg.Logging.Level,
		Format:  cfg.Logging.Format,
		Profile: cfg.Logging.Profile,
	}); err != nil {
		return err
	}
	defer func() { _ = logger.Shutdown() }()

	ctx := logger.Background()

	registry, err := game.LoadFighters(ctx, cfg.Data.ImagesDir)
	if err != nil {
		return err
	}
	client, err := genai.NewClient(genai.ClientOptions{
		APIKey:     cfg.Gemini.APIKey,
		TextModel:  cfg.Gemini.TextModel,
		ImageModel: cfg.Gemini.ImageModel,
		Timeout:    time.Duration(cfg.Gemini.TimeoutSeconds) * time.Second,
	})
	if err != nil {
		return err
	}

	if presentations {
		return generatePresentations(ctx, cfg.Data.ImagesDir, registry, client, force)
	}

	pairings := game.ResolvePairings(ctx, registry)

	drawDir := cfg.Data.DrawDir
	if outputDir != "" {
		drawDir = outputDir
	}
	loader := content.NewLoader(content.NewStore(drawDir), client, client, content.LoaderOptions{
		ImageMaxRetries: cfg.Gemini.ImageMaxRetries,
		ImageRetryDelay: time.Duration(cfg.Gemini.ImageRetryDelaySeconds) * time.Second,
	})

	failed := 0
	for i, pair := range pairings {
		fight := i + 1
		if onlyFight > 0 && fight != onlyFight {
			continue
		}
		logger.Info(ctx, "drawgen", "fight.generate",
			slog.Int("fight", fight),
			slog.String("fighter", pair.First.Name),
			slog.String("opponent", pair.Second.Name),
		)
		if _, err := loader.FightContent(ctx, pair, fight); err != nil {
			failed++
			logger.Error(ctx, "drawgen", "fight.failed",
				slog.Int("fight", fight),
				slog.String("err", err.Error()),
			)
			continue
		}
		logger.Info(ctx, "drawgen", "fight.done",
			slog.Int("fight", fight),
		)
	}

	logger.Info(ctx, "drawgen", "complete",
		slog.Int("total", len(pairings)),
		slog.Int("failed", failed),
	)
	if failed > 0 {
		return fmt.Errorf("fight content generation failed for %d fight(s)", failed)
	}
	return nil
}

// generatePresentations renders the party-style presentation card for each
// fighter missing one, passing every existing image in the fighter's
// directory as a reference.
func generatePresentations(ctx context.Context, imagesDir string, registry *game.Registry, gen genai.ImageGenerator, force bool) error {
	failed := 0
	for _, f := range registry.Fighters() {
		dir := filepath.Join(imagesDir, f.Name)
		out := filepath.Join(dir, "presentation.png")

		if !force {
			if _, err := os.Stat(out); err == nil {
				logger.Info(ctx, "drawgen", "presentation.exists",
					slog.String("fighter", f.Name),
				)
				continue
			}
		}

		refs := referenceImages(dir)
		if len(refs) == 0 {
			failed++
			logger.Error(ctx, "drawgen", "presentation.no_refs",
				slog.String("fighter", f.Name),
				slog.String("dir", dir),
			)
			continue
		}

		numPeople := 1
		if f.Name == "andrew_3" {
			numPeople = 3
		}

		img, err := genai.GeneratePresentationImage(ctx, gen, f.Name, f.DisplayName, numPeople, refs)
		if err != nil {
			failed++
			logger.Error(ctx, "drawgen", "presentation.failed",
				slog.String("fighter", f.Name),
				slog.String("err", err.Error()),
			)
			continue
		}
		if err := os.WriteFile(out, img, 0o644); err != nil {
			failed++
			logger.Error(ctx, "drawgen", "presentation.write_failed",
				slog.String("fighter", f.Name),
				slog.String("err", err.Error()),
			)
			continue
		}
		logger.Info(ctx, "drawgen", "presentation.done",
			slog.String("fighter", f.Name),
			slog.Int("refs", len(refs)),
		)
	}
	if failed > 0 {
		return fmt.Errorf("presentation generation failed for %d fighter(s)", failed)
	}
	return nil
}

// referenceImages lists image files in a fighter directory, excluding the
// presentation card itself.
func referenceImages(dir string) []string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}
	var paths []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := strings.ToLower(e.Name())
		if name == "presentation.png" {
			continue
		}
		switch filepath.Ext(name) {
		case ".png", ".jpg", ".jpeg", ".gif", ".webp":
			paths = append(paths, filepath.Join(dir, e.Name()))
		}
	}
	sort.Strings(paths)
	return paths
}
