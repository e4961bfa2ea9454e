package game

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/m3rciful/cockfight/core/logger"
	"log/slog"
)

// Fighter represents a fighting rooster and its trainer.
type Fighter struct {
	Name        string
	DisplayName string
	Description string
	// RoosterImagePath points at the rooster photo (image.png).
	RoosterImagePath string
	// HumanImagePath points at the trainer photo (telegram-*.jpg or a png copy).
	HumanImagePath string
	// PresentationImagePath is an optional pre-rendered presentation card.
	PresentationImagePath string
}

// Registry holds the loaded fighter roster for the tournament.
// The roster is immutable after load.
type Registry struct {
	fighters []Fighter
	byName   map[string]Fighter
}

// LoadFighters scans imagesDir for the known fighter directories and builds
// the roster. A fighter without a rooster image or trainer photo is skipped
// with a warning, the rest of the roster still loads.
func LoadFighters(ctx context.Context, imagesDir string) (*Registry, error) {
	if imagesDir == "" {
		return nil, fmt.Errorf("game: images dir is empty")
	}

	reg := &Registry{byName: make(map[string]Fighter, len(rosterNames))}

	for _, name := range rosterNames {
		dir := filepath.Join(imagesDir, name)
		if fi, err := os.Stat(dir); err != nil || !fi.IsDir() {
			logger.Warn(ctx, "game", "fighter.dir_missing",
				slog.String("fighter", name),
				slog.String("path", dir),
			)
			continue
		}

		roosterPath := filepath.Join(dir, "image.png")
		if _, err := os.Stat(roosterPath); err != nil {
			logger.Warn(ctx, "game", "fighter.rooster_missing",
				slog.String("fighter", name),
				slog.String("path", roosterPath),
			)
			continue
		}

		humanPath := findHumanPhoto(dir)
		if humanPath == "" {
			logger.Warn(ctx, "game", "fighter.human_missing",
				slog.String("fighter", name),
				slog.String("path", dir),
			)
			continue
		}

		f := Fighter{
			Name:             name,
			DisplayName:      displayNameFor(name),
			Description:      descriptionFor(name),
			RoosterImagePath: roosterPath,
			HumanImagePath:   humanPath,
		}
		if p := filepath.Join(dir, "presentation.png"); fileExists(p) {
			f.PresentationImagePath = p
		}

		reg.fighters = append(reg.fighters, f)
		reg.byName[name] = f
	}

	logger.Info(ctx, "game", "fighters.loaded",
		slog.Int("count", len(reg.fighters)),
	)
	return reg, nil
}

// NewRegistry builds a registry directly from a fighter list. Used in tests
// and by offline tooling that supplies its own roster.
func NewRegistry(fighters []Fighter) *Registry {
	reg := &Registry{
		fighters: fighters,
		byName:   make(map[string]Fighter, len(fighters)),
	}
	for _, f := range fighters {
		reg.byName[f.Name] = f
	}
	return reg
}

// Fighters returns the loaded roster in load order.
func (r *Registry) Fighters() []Fighter {
	return r.fighters
}

// ByName returns a fighter by its short name.
func (r *Registry) ByName(name string) (Fighter, bool) {
	f, ok := r.byName[name]
	return f, ok
}

// findHumanPhoto prefers telegram-*.jpg, falling back to "image copy*.png".
func findHumanPhoto(dir string) string {
	for _, pattern := range []string{"telegram-*.jpg", "image copy*.png"} {
		matches, err := filepath.Glob(filepath.Join(dir, pattern))
		if err != nil || len(matches) == 0 {
			continue
		}
		sort.Strings(matches)
		return matches[0]
	}
	return ""
}

func fileExists(path string) bool {
	fi, err := os.Stat(path)
	return err == nil && !fi.IsDir()
}
