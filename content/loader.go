package content

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/m3rciful/cockfight/core/logger"
	"github.com/m3rciful/cockfight/game"
	"github.com/m3rciful/cockfight/genai"
	"log/slog"
)

// FightContent bundles the artifacts for one fight announcement.
type FightContent struct {
	Image    []byte
	Dialogue *Dialogue
}

// LoaderOptions configures generation behaviour.
type LoaderOptions struct {
	// ImageMaxRetries and ImageRetryDelay bound poster generation attempts.
	ImageMaxRetries int
	ImageRetryDelay time.Duration
}

// Loader serves fight content, generating missing artifacts on first access.
// Concurrent requests for the same fight share one generation pass.
type Loader struct {
	store *Store
	text  genai.TextGenerator
	image genai.ImageGenerator
	opts  LoaderOptions

	group singleflight.Group
}

// NewLoader builds a loader over the given store and generators.
func NewLoader(store *Store, text genai.TextGenerator, image genai.ImageGenerator, opts LoaderOptions) *Loader {
	if opts.ImageMaxRetries <= 0 {
		opts.ImageMaxRetries = 3
	}
	if opts.ImageRetryDelay <= 0 {
		opts.ImageRetryDelay = 2 * time.Second
	}
	return &Loader{store: store, text: text, image: image, opts: opts}
}

// FightContent returns the artifacts for a fight, generating whichever are
// missing. The dialogue is all-or-nothing: a failure in any of its parts
// leaves nothing persisted and fails the load. Poster generation is softer:
// after the retry budget is spent the fight ships with a nil image.
func (l *Loader) FightContent(ctx context.Context, pair game.Pair, fight int) (*FightContent, error) {
	v, err, shared := l.group.Do(fmt.Sprintf("fight_%d", fight), func() (any, error) {
		return l.loadOrGenerate(ctx, pair, fight)
	})
	if err != nil {
		return nil, err
	}
	if shared {
		logger.Debug(ctx, "content", "fight.shared",
			slog.Int("fight", fight),
		)
	}
	return v.(*FightContent), nil
}

func (l *Loader) loadOrGenerate(ctx context.Context, pair game.Pair, fight int) (*FightContent, error) {
	fc := &FightContent{}

	img, err := l.store.LoadImage(fight)
	if err != nil {
		return nil, err
	}
	if img != nil {
		logger.Debug(ctx, "content", "image.cache_hit",
			slog.Int("fight", fight),
			slog.String("cache", "hit"),
		)
		fc.Image = img
	} else {
		generated, genErr := l.generateImage(ctx, pair, fight)
		if genErr != nil {
			// The announcement still goes out as text when the poster
			// cannot be produced.
			logger.Warn(ctx, "content", "image.unavailable",
				slog.Int("fight", fight),
				slog.String("err", logger.SanitizeLimit(genErr.Error(), 256)),
			)
		} else {
			if err := l.store.SaveImage(fight, generated); err != nil {
				return nil, err
			}
			fc.Image = generated
		}
	}

	dlg, err := l.store.LoadDialogue(fight)
	if err != nil {
		return nil, err
	}
	if dlg != nil {
		logger.Debug(ctx, "content", "dialogue.cache_hit",
			slog.Int("fight", fight),
			slog.String("cache", "hit"),
		)
		fc.Dialogue = dlg
	} else {
		generated, genErr := l.generateDialogue(ctx, pair, fight)
		if genErr != nil {
			return nil, genErr
		}
		if err := l.store.SaveDialogue(fight, generated); err != nil {
			return nil, err
		}
		fc.Dialogue = generated
	}

	return fc, nil
}

func (l *Loader) generateImage(ctx context.Context, pair game.Pair, fight int) ([]byte, error) {
	f1 := fighterInfo(pair.First)
	f2 := fighterInfo(pair.Second)
	refs := []string{pair.First.PresentationImagePath, pair.Second.PresentationImagePath}

	start := time.Now()
	var img []byte
	err := genai.WithRetry(ctx, genai.RetryPolicy{
		MaxAttempts: l.opts.ImageMaxRetries,
		Delay:       l.opts.ImageRetryDelay,
	}, "vs_image", func() error {
		var genErr error
		img, genErr = genai.GenerateVSImage(ctx, l.image, f1, f2, refs)
		return genErr
	})
	if err != nil {
		return nil, fmt.Errorf("content: vs image for fight %d: %w", fight, err)
	}

	logger.Info(ctx, "content", "image.generated",
		slog.Int("fight", fight),
		slog.Duration("duration", logger.Took(start)),
	)
	return img, nil
}

// generateDialogue runs the six dialogue steps in order. The reaction step
// feeds on the first fighter's trash-talk, so the chain cannot be reordered.
func (l *Loader) generateDialogue(ctx context.Context, pair game.Pair, fight int) (*Dialogue, error) {
	f1 := fighterInfo(pair.First)
	f2 := fighterInfo(pair.Second)
	start := time.Now()

	comment, err := genai.OrganizerComment(ctx, l.text, f1, f2, fight)
	if err != nil {
		return nil, fmt.Errorf("content: organizer comment for fight %d: %w", fight, err)
	}

	question := genai.OrganizerQuestion(f1)

	talk1, err := genai.FighterTrashTalk(ctx, l.text, f1, f2)
	if err != nil {
		return nil, fmt.Errorf("content: fighter1 trash-talk for fight %d: %w", fight, err)
	}

	reaction, err := genai.OrganizerReaction(ctx, l.text, talk1, f2)
	if err != nil {
		return nil, fmt.Errorf("content: organizer reaction for fight %d: %w", fight, err)
	}

	talk2, err := genai.FighterTrashTalk(ctx, l.text, f2, f1)
	if err != nil {
		return nil, fmt.Errorf("content: fighter2 trash-talk for fight %d: %w", fight, err)
	}

	conclusion, err := genai.OrganizerConclusion(ctx, l.text, f1, f2, fight)
	if err != nil {
		return nil, fmt.Errorf("content: organizer conclusion for fight %d: %w", fight, err)
	}

	logger.Info(ctx, "content", "dialogue.generated",
		slog.Int("fight", fight),
		slog.Int("messages", 6),
		slog.Duration("duration", logger.Took(start)),
	)

	return &Dialogue{
		Fighter1:            pair.First.Name,
		Fighter1DisplayName: pair.First.DisplayName,
		Fighter2:            pair.Second.Name,
		Fighter2DisplayName: pair.Second.DisplayName,
		FightNumber:         fight,
		Messages: Messages{
			OrganizerComment:    comment,
			OrganizerQuestion:   question,
			Fighter1TrashTalk:   talk1,
			OrganizerReaction:   reaction,
			Fighter2TrashTalk:   talk2,
			OrganizerConclusion: conclusion,
		},
	}, nil
}

func fighterInfo(f game.Fighter) genai.FighterInfo {
	return genai.FighterInfo{DisplayName: f.DisplayName, Description: f.Description}
}
