package genai

import (
	"context"
	"fmt"
)

// FighterInfo carries the fields the dialogue prompts need.
type FighterInfo struct {
	DisplayName string
	Description string
}

// OrganizerComment generates the organizer's take on an upcoming fight.
func OrganizerComment(ctx context.Context, gen TextGenerator, f1, f2 FighterInfo, fight int) (string, error) {
	prompt := joinPrompt(organizerCommentSystemPrompt,
		organizerCommentPrompt(f1.DisplayName, f1.Description, f2.DisplayName, f2.Description, fight))
	return gen.GenerateText(ctx, prompt)
}

// OrganizerQuestion is a plain template, no model call involved.
func OrganizerQuestion(fighter FighterInfo) string {
	return fmt.Sprintf("%s, що скажеш про свого суперника? Готовий до бою?", fighter.DisplayName)
}

// FighterTrashTalk generates a fighter's trash-talk aimed at the opponent.
func FighterTrashTalk(ctx context.Context, gen TextGenerator, fighter, opponent FighterInfo) (string, error) {
	prompt := joinPrompt(trashTalkSystemPrompt,
		fighterTrashTalkPrompt(fighter.DisplayName, fighter.Description, opponent.DisplayName, opponent.Description))
	return gen.GenerateText(ctx, prompt)
}

// OrganizerReaction generates the organizer's reaction to trash-talk and
// hands the microphone to the next fighter.
func OrganizerReaction(ctx context.Context, gen TextGenerator, trashTalk string, next FighterInfo) (string, error) {
	prompt := joinPrompt(organizerReactionSystemPrompt,
		organizerReactionPrompt(trashTalk, next.DisplayName))
	return gen.GenerateText(ctx, prompt)
}

// OrganizerConclusion wraps up the exchange between two fighters.
func OrganizerConclusion(ctx context.Context, gen TextGenerator, f1, f2 FighterInfo, fight int) (string, error) {
	prompt := joinPrompt(organizerConclusionSystemPrompt,
		organizerConclusionPrompt(f1.DisplayName, f2.DisplayName, fight))
	return gen.GenerateText(ctx, prompt)
}

// FightIntro generates a dramatic announcer-style intro for a fight.
func FightIntro(ctx context.Context, gen TextGenerator, f1, f2 FighterInfo, fight int) (string, error) {
	prompt := joinPrompt(fightIntroSystemPrompt,
		fightIntroPrompt(f1.DisplayName, f1.Description, f2.DisplayName, f2.Description, fight))
	return gen.GenerateText(ctx, prompt)
}

// ConferenceTrashTalk generates a round of press conference trash-talk.
func ConferenceTrashTalk(ctx context.Context, gen TextGenerator, fighter, opponent FighterInfo, round int) (string, error) {
	prompt := joinPrompt(trashTalkSystemPrompt,
		conferenceTrashTalkPrompt(fighter.DisplayName, fighter.Description, opponent.DisplayName, opponent.Description, round))
	return gen.GenerateText(ctx, prompt)
}

// AudienceCommentary generates the organizer's quip in response to a free
// text message from the chat.
func AudienceCommentary(ctx context.Context, gen TextGenerator, userText string) (string, error) {
	prompt := joinPrompt(audienceCommentarySystemPrompt, audienceCommentaryPrompt(userText))
	return gen.GenerateText(ctx, prompt)
}

// Fallback lines keep the show going when the model is unavailable.

// FallbackTrashTalk is the canned line used when trash-talk generation fails.
func FallbackTrashTalk(fighter FighterInfo) string {
	return fmt.Sprintf("Ку-ка-рі-куууу! Я %s і я готовий розірвати суперника!", fighter.DisplayName)
}

// FallbackOrganizerComment is the canned organizer comment.
func FallbackOrganizerComment(f1, f2 FighterInfo) string {
	return fmt.Sprintf("Оце буде бій! %s проти %s - це буде щось неймовірне!", f1.DisplayName, f2.DisplayName)
}

// FallbackOrganizerReaction is the canned organizer reaction.
func FallbackOrganizerReaction(next FighterInfo) string {
	return fmt.Sprintf("Ого! Гостро! %s, що скажеш у відповідь?", next.DisplayName)
}

// FallbackOrganizerConclusion is the canned organizer conclusion.
func FallbackOrganizerConclusion(f1, f2 FighterInfo) string {
	return fmt.Sprintf("Неймовірно! %s vs %s - це буде ЛЕГЕНДАРНИЙ бій!", f1.DisplayName, f2.DisplayName)
}

// FallbackFightIntro is the canned announcer intro.
func FallbackFightIntro(f1, f2 FighterInfo, fight int) string {
	return fmt.Sprintf("БІЙ #%d: На арену виходять два непереможних бійці! %s проти %s! Хто переможе?",
		fight, f1.DisplayName, f2.DisplayName)
}
