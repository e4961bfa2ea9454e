package main

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/m3rciful/cockfight/bot"
	"github.com/m3rciful/cockfight/content"
	corecmd "github.com/m3rciful/cockfight/core/cmd"
	coreconfig "github.com/m3rciful/cockfight/core/config"
	coredatabase "github.com/m3rciful/cockfight/core/database"
	"github.com/m3rciful/cockfight/core/logger"
	"github.com/m3rciful/cockfight/game"
	"github.com/m3rciful/cockfight/genai"
	"github.com/m3rciful/cockfight/vote"
)

type configCarrier struct {
	cfg *coreconfig.Config
}

func (c *configCarrier) CoreConfig() *coreconfig.Config { return c.cfg }

func main() {
	_ = godotenv.Load()

	err := corecmd.Run(corecmd.Options{
		DefaultConfigPath: "config.yaml",
		LoadConfig: func(path string) (corecmd.ConfigCarrier, error) {
			cfg, err := coreconfig.Load(path)
			if err != nil {
				return nil, err
			}
			return &configCarrier{cfg: cfg}, nil
		},
		Bootstrap: bootstrap,
	})
	if err != nil {
		log.Printf("fatal: %v", err)
		os.Exit(1)
	}
}

func bootstrap(carrier corecmd.ConfigCarrier) (corecmd.TelegramApp, error) {
	cfg := carrier.CoreConfig()

	if err := logger.Init(logger.Settings{
		Level:   cfg.Logging.Level,
		Format:  cfg.Logging.Format,
		Dir:     cfg.Logging.Dir,
		File:    cfg.Logging.File,
		Profile: cfg.Logging.Profile,
	}); err != nil {
		return nil, err
	}

	ctx := logger.Background()

	db, err := coredatabase.Connect(cfg.Database)
	if err != nil {
		return nil, err
	}
	if err := coredatabase.RunMigrations(cfg.Database); err != nil {
		return nil, err
	}

	registry, err := game.LoadFighters(ctx, cfg.Data.ImagesDir)
	if err != nil {
		return nil, err
	}
	states := game.NewStore(ctx, registry)

	client, err := genai.NewClient(genai.ClientOptions{
		APIKey:     cfg.Gemini.APIKey,
		TextModel:  cfg.Gemini.TextModel,
		ImageModel: cfg.Gemini.ImageModel,
		Timeout:    time.Duration(cfg.Gemini.TimeoutSeconds) * time.Second,
	})
	if err != nil {
		return nil, err
	}

	store := content.NewStore(cfg.Data.DrawDir)
	loader := content.NewLoader(store, client, client, content.LoaderOptions{
		ImageMaxRetries: cfg.Gemini.ImageMaxRetries,
		ImageRetryDelay: time.Duration(cfg.Gemini.ImageRetryDelaySeconds) * time.Second,
	})

	return bot.NewApp(bot.Deps{
		Config: cfg,
		States: states,
		Loader: loader,
		Votes:  vote.NewSQLRepository(db),
		Text:   client,
		Image:  client,
	})
}
