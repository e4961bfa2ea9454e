// Package bot wires the tournament domain into the Telegram runtime:
// command handlers, the vote callback, and the free text commentary route.
package bot

import (
	"context"
	"fmt"
	"time"

	"github.com/m3rciful/cockfight/content"
	coreconfig "github.com/m3rciful/cockfight/core/config"
	tg "github.com/m3rciful/cockfight/core/telegram"
	"github.com/m3rciful/cockfight/core/telegram/commands"
	"github.com/m3rciful/cockfight/core/telegram/router"
	tgsender "github.com/m3rciful/cockfight/core/telegram/sender"
	"github.com/m3rciful/cockfight/game"
	"github.com/m3rciful/cockfight/genai"
	"github.com/m3rciful/cockfight/vote"

	tele "gopkg.in/telebot.v4"
)

// App bundles the bot's dependencies.
type App struct {
	cfg    *coreconfig.Config
	states *game.Store
	loader *content.Loader
	votes  vote.Repository
	text   genai.TextGenerator
	image  genai.ImageGenerator
}

// Deps carries the constructed dependencies into NewApp.
type Deps struct {
	Config *coreconfig.Config
	States *game.Store
	Loader *content.Loader
	Votes  vote.Repository
	Text   genai.TextGenerator
	Image  genai.ImageGenerator
}

// NewApp validates and assembles the application.
func NewApp(deps Deps) (*App, error) {
	if deps.Config == nil {
		return nil, fmt.Errorf("bot: config is required")
	}
	if deps.States == nil {
		return nil, fmt.Errorf("bot: game store is required")
	}
	if deps.Loader == nil {
		return nil, fmt.Errorf("bot: content loader is required")
	}
	if deps.Votes == nil {
		deps.Votes = vote.NewMemoryRepository()
	}
	if deps.Text == nil || deps.Image == nil {
		return nil, fmt.Errorf("bot: generators are required")
	}
	return &App{
		cfg:    deps.Config,
		states: deps.States,
		loader: deps.Loader,
		votes:  deps.Votes,
		text:   deps.Text,
		image:  deps.Image,
	}, nil
}

// CoreConfig exposes the embedded configuration for the runner.
func (a *App) CoreConfig() *coreconfig.Config {
	return a.cfg
}

// buildRegistry declares the command and callback surface.
func (a *App) buildRegistry() *tg.Registry {
	reg := tg.NewRegistry()

	reg.RegisterCommand("/start", commands.Command{
		Handler:     a.handleStart,
		Description: "Привітання та опис бота",
	})
	reg.RegisterCommand("/help", commands.Command{
		Handler:     a.handleHelp,
		Description: "Довідка по командах",
	})
	reg.RegisterCommand("/fighters", commands.Command{
		Handler:     a.handleFighters,
		Description: "Показати всіх бійців",
	})
	reg.RegisterCommand("/draw", commands.Command{
		Handler:     a.handleDraw,
		Description: "Оголосити наступний бій",
	})
	reg.RegisterCommand("/conference", commands.Command{
		Handler:     a.handleConference,
		Description: "Пресс-конференція з треш-током",
	})
	reg.RegisterCommand("/results", commands.Command{
		Handler:     a.handleResults,
		Description: "Результати голосування",
	})
	reg.RegisterCommand("/reset", commands.Command{
		Handler:     a.handleReset,
		Description: "Скинути турнір у цьому чаті",
		AdminOnly:   true,
		Hidden:      true,
	})

	_ = reg.RegisterCallback("vote", a.handleVote)
	_ = reg.RegisterCallback("results", a.handleResultsButton)

	reg.SetTextFallback(a.handleCommentary)

	return reg
}

// TelegramRunOptions assembles the runtime options for RunTelegram.
func (a *App) TelegramRunOptions() (tg.RunOptions, error) {
	reg := a.buildRegistry()

	routes := router.CommandRoutes(reg, router.CommandRouteOptions{
		AdminID: a.cfg.Telegram.AdminID,
		OnAdminReject: func(c tele.Context) error {
			return c.Send(notAdminText)
		},
	})
	routes = append(routes, router.CallbackRoute(reg, router.CallbackOptions{}))
	routes = append(routes, router.TextRoutes(reg, router.TextOptions{})...)

	mws := tg.DefaultMiddlewares(a.cfg, func(c tele.Context) error {
		if c.Callback() != nil {
			return c.Respond(&tele.CallbackResponse{Text: rateLimitedText})
		}
		return nil
	})

	return tg.RunOptions{
		Config:      a.cfg,
		Registry:    reg,
		Routes:      routes,
		Middlewares: mws,
		DispatcherOptions: tgsender.Options{
			QueueSize:    256,
			MaxRetries:   2,
			RetryBackoff: time.Second,
			MaxDuration:  30 * time.Second,
			Pacing:       700 * time.Millisecond,
		},
		OnStop: func(ctx context.Context, rt tg.Runtime) error {
			return nil
		},
	}, nil
}
