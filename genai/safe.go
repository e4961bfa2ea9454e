package genai

import (
	"context"

	"github.com/m3rciful/cockfight/core/logger"
	"log/slog"
)

// Safe variants degrade gracefully: on failure they log one warning and
// return nil so callers can fall back to text-only messages.

// SafeSceneImage is GenerateSceneImage that never fails.
func SafeSceneImage(ctx context.Context, gen ImageGenerator, fighterName, trashTalk, opponentName string, round int) []byte {
	img, err := GenerateSceneImage(ctx, gen, fighterName, trashTalk, opponentName, round)
	if err != nil {
		logger.Warn(ctx, "genai", "scene_image.skip",
			slog.String("fighter", fighterName),
			slog.String("opponent", opponentName),
			slog.Int("round", round),
			slog.String("err_kind", string(KindOf(err))),
			slog.String("err", logger.SanitizeLimit(err.Error(), 256)),
		)
		return nil
	}
	return img
}

// SafeFighterPortrait is GenerateFighterPortrait that never fails.
func SafeFighterPortrait(ctx context.Context, gen ImageGenerator, fighterName, description, roosterPath, humanPath string) []byte {
	img, err := GenerateFighterPortrait(ctx, gen, fighterName, description, roosterPath, humanPath)
	if err != nil {
		logger.Warn(ctx, "genai", "portrait.skip",
			slog.String("fighter", fighterName),
			slog.String("err_kind", string(KindOf(err))),
			slog.String("err", logger.SanitizeLimit(err.Error(), 256)),
		)
		return nil
	}
	return img
}
