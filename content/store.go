// Package content manages pre-generated fight artifacts: the VS poster
// image and the press dialogue for each fight. Artifacts live on disk under
// one directory per fight and are immutable once written.
package content

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Messages holds the six-message fight announcement dialogue in speaking order.
type Messages struct {
	OrganizerComment    string `json:"organizer_comment"`
	OrganizerQuestion   string `json:"organizer_question"`
	Fighter1TrashTalk   string `json:"fighter1_trashtalk"`
	OrganizerReaction   string `json:"organizer_reaction"`
	Fighter2TrashTalk   string `json:"fighter2_trashtalk"`
	OrganizerConclusion string `json:"organizer_conclusion"`
}

// Dialogue is the persisted dialogue record for a fight.
type Dialogue struct {
	Fighter1            string   `json:"fighter1"`
	Fighter1DisplayName string   `json:"fighter1_display_name"`
	Fighter2            string   `json:"fighter2"`
	Fighter2DisplayName string   `json:"fighter2_display_name"`
	FightNumber         int      `json:"fight_number"`
	Messages            Messages `json:"messages"`
}

// Ordered returns the dialogue messages in the order they are sent.
func (d *Dialogue) Ordered() []string {
	return []string{
		d.Messages.OrganizerComment,
		d.Messages.OrganizerQuestion,
		d.Messages.Fighter1TrashTalk,
		d.Messages.OrganizerReaction,
		d.Messages.Fighter2TrashTalk,
		d.Messages.OrganizerConclusion,
	}
}

// Store reads and writes fight artifacts under a base directory.
type Store struct {
	baseDir string
}

// NewStore points a store at the draw content directory.
func NewStore(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

// FightDir returns the directory for a fight number.
func (s *Store) FightDir(fight int) string {
	return filepath.Join(s.baseDir, fmt.Sprintf("fight_%d", fight))
}

// ImagePath returns the VS poster location for a fight.
func (s *Store) ImagePath(fight int) string {
	return filepath.Join(s.FightDir(fight), "vs_image.png")
}

// DialoguePath returns the dialogue record location for a fight.
func (s *Store) DialoguePath(fight int) string {
	return filepath.Join(s.FightDir(fight), "dialogue.json")
}

// LoadImage returns the stored poster bytes, or nil if none exists yet.
func (s *Store) LoadImage(fight int) ([]byte, error) {
	data, err := os.ReadFile(s.ImagePath(fight))
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("content: read image: %w", err)
	}
	return data, nil
}

// SaveImage writes the poster atomically.
func (s *Store) SaveImage(fight int, data []byte) error {
	return s.writeAtomic(s.ImagePath(fight), data)
}

// LoadDialogue returns the stored dialogue, or nil if none exists yet.
func (s *Store) LoadDialogue(fight int) (*Dialogue, error) {
	data, err := os.ReadFile(s.DialoguePath(fight))
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("content: read dialogue: %w", err)
	}
	var d Dialogue
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("content: parse dialogue: %w", err)
	}
	return &d, nil
}

// SaveDialogue writes the dialogue record atomically.
func (s *Store) SaveDialogue(fight int, d *Dialogue) error {
	data, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return fmt.Errorf("content: encode dialogue: %w", err)
	}
	return s.writeAtomic(s.DialoguePath(fight), data)
}

// writeAtomic writes via a temp file and rename so readers never observe a
// partially written artifact.
func (s *Store) writeAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("content: mkdir: %w", err)
	}
	tmp, err := os.CreateTemp(dir, ".tmp-*")
	if err != nil {
		return fmt.Errorf("content: temp file: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("content: write: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("content: close: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("content: rename: %w", err)
	}
	return nil
}
