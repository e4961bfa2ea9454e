package bot

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/m3rciful/cockfight/core/logger"
	"github.com/m3rciful/cockfight/core/telegram/callbacks"
	tghelpers "github.com/m3rciful/cockfight/core/telegram/helpers"
	"github.com/m3rciful/cockfight/core/telegram/keyboard"
	"github.com/m3rciful/cockfight/game"
	"github.com/m3rciful/cockfight/genai"
	"github.com/m3rciful/cockfight/vote"
	"log/slog"

	tele "gopkg.in/telebot.v4"
)

func (a *App) handleStart(c tele.Context) error {
	return tghelpers.SendText(c, introText)
}

func (a *App) handleHelp(c tele.Context) error {
	return tghelpers.SendText(c, helpText)
}

// handleFighters introduces the roster: one photo per fighter with the
// display name and description as caption.
func (a *App) handleFighters(c tele.Context) error {
	ctx := tghelpers.BuildContext(c)
	fighters := a.states.Registry().Fighters()
	if len(fighters) == 0 {
		return tghelpers.SendText(c, fightersMissingText)
	}

	logger.Info(ctx, "bot", "fighters.show",
		slog.Int("count", len(fighters)),
	)

	for _, f := range fighters {
		caption := fmt.Sprintf("*%s*\n%s", f.DisplayName, f.Description)
		caption = trimCaption(caption)

		photoPath := f.RoosterImagePath
		if f.PresentationImagePath != "" {
			photoPath = f.PresentationImagePath
		}
		if _, err := os.Stat(photoPath); err != nil {
			logger.Warn(ctx, "bot", "fighters.photo_missing",
				slog.String("fighter", f.Name),
				slog.String("path", photoPath),
			)
			if err := tghelpers.SendMD(c, caption+"\n(Фото недоступне)"); err != nil {
				return err
			}
			continue
		}

		photo := &tele.Photo{File: tele.FromDisk(photoPath), Caption: caption}
		if err := tghelpers.SendPhoto(c, photo); err != nil {
			return err
		}
	}

	return tghelpers.SendText(c, fightersOutroText)
}

// handleDraw announces the next fight: VS poster, the six-message press
// dialogue, then the vote keyboard. The announcement track advances only
// after the content was resolved, so a failed attempt can be retried.
func (a *App) handleDraw(c tele.Context) error {
	ctx := tghelpers.BuildContext(c)

	if n := len(a.states.Registry().Fighters()); n != rosterSize {
		return tghelpers.SendText(c, incompleteRosterText(n))
	}
	state := a.states.GetOrCreate(ctx, c.Chat().ID)

	pair, ok := state.CurrentFight()
	if !ok {
		return tghelpers.SendText(c, allFightsAnnouncedText)
	}
	fight := state.CurrentFightNumber()

	fc, err := a.loader.FightContent(ctx, pair, fight)
	if err != nil {
		logger.Warn(ctx, "bot", "draw.content_unavailable",
			slog.Int("fight", fight),
			slog.String("err", logger.SanitizeLimit(err.Error(), 256)),
		)
		return tghelpers.SendText(c, contentMissingText)
	}

	header := fightHeader(fight, pair.First.DisplayName, pair.Second.DisplayName)
	if len(fc.Image) > 0 {
		photo := &tele.Photo{
			File:    tele.FromReader(bytes.NewReader(fc.Image)),
			Caption: header,
		}
		if err := tghelpers.SendPhoto(c, photo); err != nil {
			return err
		}
	} else {
		if err := tghelpers.SendText(c, header); err != nil {
			return err
		}
	}

	for _, msg := range fc.Dialogue.Ordered() {
		if msg == "" {
			continue
		}
		if err := tghelpers.SendText(c, msg); err != nil {
			return err
		}
	}

	markup := keyboard.InlineButtonsNPerRow([]keyboard.InlineBtn{
		{
			Text:   pair.First.DisplayName,
			Unique: "vote",
			Data:   fmt.Sprintf("%d|%s", fight, pair.First.Name),
		},
		{
			Text:   pair.Second.DisplayName,
			Unique: "vote",
			Data:   fmt.Sprintf("%d|%s", fight, pair.Second.Name),
		},
		{
			Text:   refreshResultsButtonText,
			Unique: "results",
			Data:   strconv.Itoa(fight),
		},
	}, 2)
	if err := tghelpers.SendText(c, votePrompt(pair.First.DisplayName, pair.Second.DisplayName),
		&tele.SendOptions{ReplyMarkup: markup}); err != nil {
		return err
	}

	state.AdvanceFight()
	logger.Info(ctx, "bot", "draw.announced",
		slog.Int("fight", fight),
		slog.String("fighter", pair.First.Name),
		slog.String("opponent", pair.Second.Name),
	)
	return nil
}

// handleVote records a vote from the inline keyboard. Payload is
// "<fight>|<fighter_name>".
func (a *App) handleVote(c tele.Context) error {
	ctx := tghelpers.BuildContext(c)

	fight, fighterName, err := callbacks.PayloadIntString(c, "|")
	if err != nil {
		return c.Respond(&tele.CallbackResponse{Text: genericErrorText})
	}
	if _, ok := a.states.Registry().ByName(fighterName); !ok {
		return c.Respond(&tele.CallbackResponse{Text: genericErrorText})
	}

	outcome, err := a.votes.Record(ctx, c.Chat().ID, fight, c.Sender().ID, fighterName)
	if err != nil {
		logger.Error(ctx, "bot", "vote.record_failed",
			slog.Int("fight", fight),
			slog.String("err", logger.SanitizeLimit(err.Error(), 256)),
		)
		return c.Respond(&tele.CallbackResponse{Text: genericErrorText})
	}

	if outcome == vote.Duplicate {
		return c.Respond(&tele.CallbackResponse{Text: voteDuplicateNotice})
	}
	// The vote is recorded either way; a failed toast must not block the
	// updated tally message.
	respErr := c.Respond(&tele.CallbackResponse{Text: voteAcceptedNotice})
	if err := a.sendResults(c, ctx, fight); err != nil {
		return err
	}
	return respErr
}

// sendResults posts the current tally for a fight into the chat.
func (a *App) sendResults(c tele.Context, ctx context.Context, fight int) error {
	results, err := a.votes.Results(ctx, c.Chat().ID, fight)
	if err != nil || len(results) == 0 {
		if err != nil {
			logger.Warn(ctx, "bot", "results.read_failed",
				slog.Int("fight", fight),
				slog.String("err", logger.SanitizeLimit(err.Error(), 256)),
			)
		}
		return nil
	}
	return tghelpers.SendText(c, formatResults(fight, a.resultsLines(results)))
}

// handleResults shows the tally for a fight. An optional numeric argument
// selects the fight, default is the most recently announced one.
func (a *App) handleResults(c tele.Context) error {
	ctx := tghelpers.BuildContext(c)
	state := a.states.GetOrCreate(ctx, c.Chat().ID)

	fight := 0
	if arg := strings.TrimSpace(c.Message().Payload); arg != "" {
		n, err := strconv.Atoi(arg)
		if err != nil || n < 1 || n > len(state.Pairings()) {
			return tghelpers.SendText(c, genericErrorText)
		}
		fight = n
	} else {
		fight = announcedFights(state)
		if fight == 0 {
			return tghelpers.SendText(c, noDrawYetText)
		}
	}

	results, err := a.votes.Results(ctx, c.Chat().ID, fight)
	if err != nil {
		logger.Error(ctx, "bot", "results.failed",
			slog.Int("fight", fight),
			slog.String("err", logger.SanitizeLimit(err.Error(), 256)),
		)
		return tghelpers.SendText(c, genericErrorText)
	}
	if len(results) == 0 {
		return tghelpers.SendText(c, noVotesYetText)
	}
	return tghelpers.SendText(c, formatResults(fight, a.resultsLines(results)))
}

func (a *App) resultsLines(results []vote.Result) []string {
	lines := make([]string, len(results))
	for i, r := range results {
		display := r.Fighter
		if f, ok := a.states.Registry().ByName(r.Fighter); ok {
			display = f.DisplayName
		}
		lines[i] = resultsLine(display, r.Count, r.Percent)
	}
	return lines
}

// handleResultsButton refreshes the tally from the inline keyboard under a
// fight announcement. Payload is the fight number.
func (a *App) handleResultsButton(c tele.Context) error {
	ctx := tghelpers.BuildContext(c)

	fight, err := callbacks.PayloadInt(c)
	if err != nil {
		return c.Respond(&tele.CallbackResponse{Text: genericErrorText})
	}

	results, err := a.votes.Results(ctx, c.Chat().ID, fight)
	if err != nil {
		logger.Error(ctx, "bot", "results.refresh_failed",
			slog.Int("fight", fight),
			slog.String("err", logger.SanitizeLimit(err.Error(), 256)),
		)
		return c.Respond(&tele.CallbackResponse{Text: genericErrorText})
	}
	if len(results) == 0 {
		return c.Respond(&tele.CallbackResponse{Text: noVotesYetText})
	}

	respErr := c.Respond()
	if err := tghelpers.SendText(c, formatResults(fight, a.resultsLines(results))); err != nil {
		return err
	}
	return respErr
}

// handleConference runs the live press conference for the current pair:
// three rounds, each fighter speaking once per round, with generated scene
// images when the image model cooperates.
func (a *App) handleConference(c tele.Context) error {
	ctx := tghelpers.BuildContext(c)
	state := a.states.GetOrCreate(ctx, c.Chat().ID)

	if len(state.Pairings()) == 0 {
		return tghelpers.SendText(c, noDrawYetText)
	}
	pair, ok := state.CurrentPair()
	if !ok {
		return tghelpers.SendText(c, allConferencesDoneText)
	}
	pairNumber, _, _, _ := state.ConferenceProgress()

	logger.Info(ctx, "bot", "conference.start",
		slog.Int("fight", pairNumber),
		slog.String("fighter", pair.First.Name),
		slog.String("opponent", pair.Second.Name),
	)

	if err := tghelpers.SendText(c, conferenceStart(pairNumber, pair.First.DisplayName, pair.Second.DisplayName)); err != nil {
		return err
	}

	for round := 1; round <= 3; round++ {
		if err := tghelpers.SendText(c, conferenceRound(round)); err != nil {
			return err
		}
		if err := a.sendTrashTalkTurn(c, pair.First, pair.Second, round); err != nil {
			return err
		}
		if err := a.sendTrashTalkTurn(c, pair.Second, pair.First, round); err != nil {
			return err
		}
		state.AdvanceRound()
	}

	if err := tghelpers.SendText(c, conferenceEnd(pair.First.DisplayName, pair.Second.DisplayName)); err != nil {
		return err
	}

	hasMore := state.AdvanceConference()
	logger.Info(ctx, "bot", "conference.done",
		slog.Int("fight", pairNumber),
		slog.Bool("more", hasMore),
	)
	if hasMore {
		return tghelpers.SendText(c, nextConferenceText)
	}
	return tghelpers.SendText(c, allConferencesDoneText)
}

// sendTrashTalkTurn generates one fighter's line for the round and sends it,
// with a scene image when available. Generation failures degrade to the
// canned line rather than aborting the show.
func (a *App) sendTrashTalkTurn(c tele.Context, speaker, opponent game.Fighter, round int) error {
	ctx := tghelpers.BuildContext(c)

	spk := genai.FighterInfo{DisplayName: speaker.DisplayName, Description: speaker.Description}
	opp := genai.FighterInfo{DisplayName: opponent.DisplayName, Description: opponent.Description}

	talk, err := genai.ConferenceTrashTalk(ctx, a.text, spk, opp, round)
	if err != nil {
		logger.Warn(ctx, "bot", "conference.trashtalk_fallback",
			slog.String("fighter", speaker.Name),
			slog.Int("round", round),
			slog.String("err_kind", string(genai.KindOf(err))),
		)
		talk = genai.FallbackTrashTalk(spk)
	}

	text := fmt.Sprintf("%s:\n%s", speaker.DisplayName, talk)

	img := genai.SafeSceneImage(ctx, a.image, speaker.DisplayName, talk, opponent.DisplayName, round)
	if img == nil {
		return tghelpers.SendText(c, text)
	}
	photo := &tele.Photo{
		File:    tele.FromReader(bytes.NewReader(img)),
		Caption: trimCaption(text),
	}
	return tghelpers.SendPhoto(c, photo)
}

// handleReset drops the chat's tournament state. Admin only.
func (a *App) handleReset(c tele.Context) error {
	ctx := tghelpers.BuildContext(c)
	a.states.Remove(ctx, c.Chat().ID)
	return tghelpers.SendText(c, resetDoneText)
}

// handleCommentary answers free text once the announcement track completed.
// Before that point plain chatter is left alone.
func (a *App) handleCommentary(c tele.Context) error {
	ctx := tghelpers.BuildContext(c)
	state := a.states.GetOrCreate(ctx, c.Chat().ID)
	if !state.IsDrawComplete() {
		return nil
	}

	reply, err := genai.AudienceCommentary(ctx, a.text, logger.SanitizeLimit(c.Text(), 512))
	if err != nil {
		logger.Warn(ctx, "bot", "commentary.fallback",
			slog.String("err_kind", string(genai.KindOf(err))),
		)
		reply = "Оце так заява! Арена все розсудить!"
	}
	return tghelpers.SendText(c, reply)
}

// announcedFights returns how many fights have been revealed so far.
func announcedFights(state *game.State) int {
	if state.IsDrawComplete() {
		return len(state.Pairings())
	}
	return state.CurrentFightNumber() - 1
}

// Telegram caps photo captions at 1024 characters.
const captionLimit = 1024

func trimCaption(s string) string {
	if len(s) <= captionLimit {
		return s
	}
	runes := []rune(s)
	if len(runes) <= captionLimit-3 {
		return s
	}
	return string(runes[:captionLimit-3]) + "..."
}
