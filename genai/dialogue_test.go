package genai

import (
	"context"
	"strings"
	"testing"
)

type echoText struct {
	prompts []string
	reply   string
}

func (e *echoText) GenerateText(_ context.Context, prompt string) (string, error) {
	e.prompts = append(e.prompts, prompt)
	if e.reply != "" {
		return e.reply, nil
	}
	return "відповідь", nil
}

var (
	roma   = FighterInfo{DisplayName: "Пітух Рома", Description: "вусатий"}
	andrew = FighterInfo{DisplayName: "Пітух Три Андрія", Description: "троє"}
)

func TestOrganizerQuestionIsTemplate(t *testing.T) {
	q := OrganizerQuestion(roma)
	if !strings.Contains(q, roma.DisplayName) {
		t.Fatalf("question misses the fighter name: %q", q)
	}
	if !strings.Contains(q, "Готовий до бою?") {
		t.Fatalf("question misses the challenge: %q", q)
	}
}

func TestDialoguePromptsCarryContext(t *testing.T) {
	ctx := context.Background()
	gen := &echoText{}

	if _, err := OrganizerComment(ctx, gen, roma, andrew, 2); err != nil {
		t.Fatalf("OrganizerComment: %v", err)
	}
	if _, err := FighterTrashTalk(ctx, gen, roma, andrew); err != nil {
		t.Fatalf("FighterTrashTalk: %v", err)
	}
	if _, err := OrganizerReaction(ctx, gen, "я тебе заклюю", andrew); err != nil {
		t.Fatalf("OrganizerReaction: %v", err)
	}
	if _, err := OrganizerConclusion(ctx, gen, roma, andrew, 2); err != nil {
		t.Fatalf("OrganizerConclusion: %v", err)
	}
	if _, err := FightIntro(ctx, gen, roma, andrew, 2); err != nil {
		t.Fatalf("FightIntro: %v", err)
	}
	if _, err := ConferenceTrashTalk(ctx, gen, roma, andrew, 3); err != nil {
		t.Fatalf("ConferenceTrashTalk: %v", err)
	}
	if _, err := AudienceCommentary(ctx, gen, "хто переможе?"); err != nil {
		t.Fatalf("AudienceCommentary: %v", err)
	}

	if len(gen.prompts) != 7 {
		t.Fatalf("model calls = %d, want 7", len(gen.prompts))
	}
	for i, p := range gen.prompts[:6] {
		if !strings.Contains(p, andrew.DisplayName) {
			t.Fatalf("prompt %d misses opponent name: %q", i, p)
		}
	}
	if !strings.Contains(gen.prompts[2], "я тебе заклюю") {
		t.Fatalf("reaction prompt misses the quoted trash talk: %q", gen.prompts[2])
	}
	if !strings.Contains(gen.prompts[6], "хто переможе?") {
		t.Fatalf("commentary prompt misses the user text: %q", gen.prompts[6])
	}
}

func TestFallbacksMentionFighters(t *testing.T) {
	cases := []string{
		FallbackTrashTalk(roma),
		FallbackOrganizerComment(roma, andrew),
		FallbackOrganizerReaction(roma),
		FallbackOrganizerConclusion(roma, andrew),
		FallbackFightIntro(roma, andrew, 1),
	}
	for i, line := range cases {
		if !strings.Contains(line, roma.DisplayName) {
			t.Fatalf("fallback %d misses the fighter name: %q", i, line)
		}
	}
}

func TestSafeFighterPortraitNeverFails(t *testing.T) {
	gen := &failingImageGen{}
	img := SafeFighterPortrait(context.Background(), gen, "roma", "вусатий",
		"no/such/rooster.png", "no/such/human.jpg")
	if img != nil {
		t.Fatalf("expected nil image, got %d bytes", len(img))
	}
	if gen.calls != 0 {
		t.Fatalf("generator called %d times despite missing refs", gen.calls)
	}
}
