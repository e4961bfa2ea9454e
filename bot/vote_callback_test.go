package bot

import (
	"context"
	"strings"
	"testing"

	"github.com/m3rciful/cockfight/content"
	coreconfig "github.com/m3rciful/cockfight/core/config"
	"github.com/m3rciful/cockfight/core/telegram/router"
	"github.com/m3rciful/cockfight/game"
	"github.com/m3rciful/cockfight/genai"

	tele "gopkg.in/telebot.v4"
)

type fixedTextGen struct{}

func (fixedTextGen) GenerateText(ctx context.Context, prompt string) (string, error) {
	return "ok", nil
}

type fixedImageGen struct{}

func (fixedImageGen) GenerateImage(ctx context.Context, req genai.ImageRequest) ([]byte, error) {
	return []byte{0x89}, nil
}

func testRoster() []game.Fighter {
	names := []string{"petro", "oleg", "vadym", "roma", "andrew_3", "bohdan"}
	fighters := make([]game.Fighter, len(names))
	for i, n := range names {
		fighters[i] = game.Fighter{Name: n, DisplayName: "Пітух " + n}
	}
	return fighters
}

func newTestApp(t *testing.T) *App {
	t.Helper()
	reg := game.NewRegistry(testRoster())
	store := game.NewStore(context.Background(), reg)
	loader := content.NewLoader(content.NewStore(t.TempDir()), fixedTextGen{}, fixedImageGen{}, content.LoaderOptions{})
	app, err := NewApp(Deps{
		Config: &coreconfig.Config{},
		States: store,
		Loader: loader,
		Text:   fixedTextGen{},
		Image:  fixedImageGen{},
	})
	if err != nil {
		t.Fatal(err)
	}
	return app
}

// callbackContext is a minimal tele.Context for driving callback routes. It
// records every answer and every sent message; methods the callback path does
// not touch fall through to the embedded nil interface.
type callbackContext struct {
	tele.Context

	update tele.Update
	values map[string]any

	responses []string
	sent      []string
}

func newCallbackContext(updateID int, userID int64, data string) *callbackContext {
	chat := &tele.Chat{ID: 4242}
	user := &tele.User{ID: userID}
	return &callbackContext{
		update: tele.Update{
			ID: updateID,
			Callback: &tele.Callback{
				Data:    data,
				Sender:  user,
				Message: &tele.Message{Chat: chat},
			},
		},
		values: map[string]any{},
	}
}

func (c *callbackContext) Update() tele.Update      { return c.update }
func (c *callbackContext) Callback() *tele.Callback { return c.update.Callback }
func (c *callbackContext) Chat() *tele.Chat         { return c.update.Callback.Message.Chat }
func (c *callbackContext) Sender() *tele.User       { return c.update.Callback.Sender }
func (c *callbackContext) Set(key string, val any)  { c.values[key] = val }
func (c *callbackContext) Get(key string) any       { return c.values[key] }

func (c *callbackContext) Respond(resp ...*tele.CallbackResponse) error {
	text := ""
	if len(resp) > 0 && resp[0] != nil {
		text = resp[0].Text
	}
	c.responses = append(c.responses, text)
	return nil
}

func (c *callbackContext) Send(what interface{}, opts ...interface{}) error {
	if s, ok := what.(string); ok {
		c.sent = append(c.sent, s)
	}
	return nil
}

func TestVoteCallbackAnswersOnce(t *testing.T) {
	app := newTestApp(t)
	route := router.CallbackRoute(app.buildRegistry(), router.CallbackOptions{})

	c := newCallbackContext(1001, 7, "\\fvote|1|roma")
	if err := route.Handler(c); err != nil {
		t.Fatal(err)
	}
	if len(c.responses) != 1 {
		t.Fatalf("accepted vote answered %d times, want 1: %q", len(c.responses), c.responses)
	}
	if c.responses[0] != voteAcceptedNotice {
		t.Fatalf("accepted vote toast = %q, want %q", c.responses[0], voteAcceptedNotice)
	}
	if len(c.sent) != 1 {
		t.Fatalf("accepted vote sent %d messages, want the tally: %q", len(c.sent), c.sent)
	}
	if !strings.Contains(c.sent[0], "БІЙ 1") {
		t.Fatalf("tally message missing fight number: %q", c.sent[0])
	}

	dup := newCallbackContext(1002, 7, "\\fvote|1|roma")
	if err := route.Handler(dup); err != nil {
		t.Fatal(err)
	}
	if len(dup.responses) != 1 {
		t.Fatalf("repeat vote answered %d times, want 1: %q", len(dup.responses), dup.responses)
	}
	if dup.responses[0] != voteDuplicateNotice {
		t.Fatalf("repeat vote toast = %q, want %q", dup.responses[0], voteDuplicateNotice)
	}
	if len(dup.sent) != 0 {
		t.Fatalf("repeat vote sent messages: %q", dup.sent)
	}
}

func TestResultsButtonRefreshesTally(t *testing.T) {
	app := newTestApp(t)
	route := router.CallbackRoute(app.buildRegistry(), router.CallbackOptions{})

	empty := newCallbackContext(2001, 7, "\\fresults|1")
	if err := route.Handler(empty); err != nil {
		t.Fatal(err)
	}
	if len(empty.responses) != 1 || empty.responses[0] != noVotesYetText {
		t.Fatalf("empty tally answers = %q, want one %q toast", empty.responses, noVotesYetText)
	}
	if len(empty.sent) != 0 {
		t.Fatalf("empty tally sent messages: %q", empty.sent)
	}

	v := newCallbackContext(2002, 8, "\\fvote|1|roma")
	if err := route.Handler(v); err != nil {
		t.Fatal(err)
	}

	refresh := newCallbackContext(2003, 7, "\\fresults|1")
	if err := route.Handler(refresh); err != nil {
		t.Fatal(err)
	}
	if len(refresh.responses) != 1 {
		t.Fatalf("refresh answered %d times, want 1: %q", len(refresh.responses), refresh.responses)
	}
	if len(refresh.sent) != 1 {
		t.Fatalf("refresh sent %d messages, want the tally: %q", len(refresh.sent), refresh.sent)
	}
	if !strings.Contains(refresh.sent[0], "БІЙ 1") {
		t.Fatalf("tally message missing fight number: %q", refresh.sent[0])
	}
}

func TestUnknownCallbackAcknowledged(t *testing.T) {
	app := newTestApp(t)
	route := router.CallbackRoute(app.buildRegistry(), router.CallbackOptions{})

	c := newCallbackContext(3001, 7, "\\fnope|x")
	if err := route.Handler(c); err != nil {
		t.Fatal(err)
	}
	if len(c.responses) != 1 {
		t.Fatalf("unknown key answered %d times, want 1: %q", len(c.responses), c.responses)
	}
	if len(c.sent) != 0 {
		t.Fatalf("unknown key sent messages: %q", c.sent)
	}
}
