package handler

import (
	"math/rand/v2"
	"testing"

	"vocadeck/internal/deck"
	"vocadeck/internal/quiz"
	"vocadeck/internal/service"
	"vocadeck/internal/testutil"

	tele "gopkg.in/telebot.v3"
)

// fakeContext records what a handler sends back to Telegram
type fakeContext struct {
	tele.Context

	sender   *tele.User
	callback *tele.Callback
	text     string

	sent      []interface{}
	edited    []interface{}
	markups   []*tele.ReplyMarkup
	responses []*tele.CallbackResponse
}

func newMessage(userID int64, text string) *fakeContext {
	return &fakeContext{sender: &tele.User{ID: userID}, text: text}
}

func newCallback(userID int64, data string) *fakeContext {
	return &fakeContext{
		sender:   &tele.User{ID: userID},
		callback: &tele.Callback{ID: "cb", Data: "\f" + data},
	}
}

func (c *fakeContext) Sender() *tele.User       { return c.sender }
func (c *fakeContext) Callback() *tele.Callback { return c.callback }
func (c *fakeContext) Text() string             { return c.text }

func (c *fakeContext) Send(what interface{}, opts ...interface{}) error {
	c.sent = append(c.sent, what)
	c.recordMarkup(opts)
	return nil
}

func (c *fakeContext) Edit(what interface{}, opts ...interface{}) error {
	c.edited = append(c.edited, what)
	c.recordMarkup(opts)
	return nil
}

func (c *fakeContext) Respond(resp ...*tele.CallbackResponse) error {
	if len(resp) == 0 {
		resp = []*tele.CallbackResponse{nil}
	}
	c.responses = append(c.responses, resp...)
	return nil
}

func (c *fakeContext) recordMarkup(opts []interface{}) {
	for _, opt := range opts {
		if m, ok := opt.(*tele.ReplyMarkup); ok {
			c.markups = append(c.markups, m)
		}
	}
}

// shown returns the last text sent or edited
func (c *fakeContext) shown() string {
	var all []interface{}
	all = append(all, c.sent...)
	all = append(all, c.edited...)
	if len(all) == 0 {
		return ""
	}
	s, _ := all[len(all)-1].(string)
	return s
}

func (c *fakeContext) lastMarkup() *tele.ReplyMarkup {
	if len(c.markups) == 0 {
		return nil
	}
	return c.markups[len(c.markups)-1]
}

func (c *fakeContext) alerted() string {
	for _, r := range c.responses {
		if r != nil && r.ShowAlert {
			return r.Text
		}
	}
	return ""
}

type testHandler struct {
	*Handler
	users    *testutil.MockUserRepository
	results  *testutil.MockResultRepository
	progress *testutil.MockProgressRepository
}

func newTestHandler(t *testing.T, n int) *testHandler {
	t.Helper()

	users := new(testutil.MockUserRepository)
	results := new(testutil.MockResultRepository)
	progress := new(testutil.MockProgressRepository)
	logger := testutil.NewTestLogger()

	quizService := service.NewQuizService(
		testutil.NewTestItems(n),
		quiz.NewBuilder(rand.New(rand.NewPCG(1, 2))),
		results,
		3,
		logger,
		deck.WithRand(rand.New(rand.NewPCG(3, 4))),
	)

	h := NewHandler(
		nil,
		service.NewAuthService(users, "secret"),
		quizService,
		service.NewFlashcardService(progress, logger),
		service.NewStatsService(results, 60, logger),
		"https://t.me/vocadeck_bot",
		logger,
	)
	return &testHandler{Handler: h, users: users, results: results, progress: progress}
}
