package genai

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

var mimeByExt = map[string]string{
	".png":  "image/png",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".gif":  "image/gif",
	".webp": "image/webp",
}

// LoadImageRef reads a reference image from disk and infers its mime type.
func LoadImageRef(path string) (ImageRef, error) {
	ext := strings.ToLower(filepath.Ext(path))
	mime, ok := mimeByExt[ext]
	if !ok {
		return ImageRef{}, fmt.Errorf("genai: unsupported image extension %q", ext)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return ImageRef{}, fmt.Errorf("genai: read reference image: %w", err)
	}
	return ImageRef{MIMEType: mime, Data: data}, nil
}

// GenerateVSImage renders the 16:9 confrontation poster for a fight pair.
// refPaths point at the fighters' presentation images; missing references
// are skipped so the poster still renders from the prompt alone.
func GenerateVSImage(ctx context.Context, gen ImageGenerator, f1, f2 FighterInfo, refPaths []string) ([]byte, error) {
	refs := make([]ImageRef, 0, len(refPaths))
	for _, p := range refPaths {
		if p == "" {
			continue
		}
		ref, err := LoadImageRef(p)
		if err != nil {
			continue
		}
		refs = append(refs, ref)
	}
	return gen.GenerateImage(ctx, ImageRequest{
		Prompt:      VSImagePrompt(f1.DisplayName, f2.DisplayName),
		AspectRatio: "16:9",
		Refs:        refs,
	})
}

// GenerateSceneImage renders a press conference scene for a trash-talk round.
func GenerateSceneImage(ctx context.Context, gen ImageGenerator, fighterName, trashTalk, opponentName string, round int) ([]byte, error) {
	return gen.GenerateImage(ctx, ImageRequest{
		Prompt:      SceneImagePrompt(fighterName, trashTalk, opponentName, round),
		AspectRatio: "16:9",
	})
}

// GenerateFighterPortrait renders a 1:1 party portrait of the trainer with
// their rooster, guided by the real photos.
func GenerateFighterPortrait(ctx context.Context, gen ImageGenerator, fighterName, description, roosterPath, humanPath string) ([]byte, error) {
	roosterRef, err := LoadImageRef(roosterPath)
	if err != nil {
		return nil, err
	}
	humanRef, err := LoadImageRef(humanPath)
	if err != nil {
		return nil, err
	}
	return gen.GenerateImage(ctx, ImageRequest{
		Prompt:      FighterPortraitPrompt(fighterName, description),
		AspectRatio: "1:1",
		Refs:        []ImageRef{roosterRef, humanRef},
	})
}

// GeneratePresentationImage renders the presentation card saved to disk by
// the offline tooling.
func GeneratePresentationImage(ctx context.Context, gen ImageGenerator, fighterName, displayName string, numPeople int, refPaths []string) ([]byte, error) {
	refs := make([]ImageRef, 0, len(refPaths))
	for _, p := range refPaths {
		ref, err := LoadImageRef(p)
		if err != nil {
			return nil, err
		}
		refs = append(refs, ref)
	}
	return gen.GenerateImage(ctx, ImageRequest{
		Prompt:      PresentationImagePrompt(fighterName, displayName, numPeople),
		AspectRatio: "1:1",
		Refs:        refs,
	})
}
