package api

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"crypto_bot/internal/command"
	"crypto_bot/internal/domain"
	"crypto_bot/internal/price"
	"encoding/base64"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/line/line-bot-sdk-go/v7/linebot"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const channelSecret = "test-channel-secret"

// stubStore is an in-memory Store for handler tests
type stubStore struct {
	users map[string]*domain.UserRecord
}

func (s *stubStore) Load(_ context.Context) (map[string]*domain.UserRecord, error) {
	if s.users == nil {
		s.users = map[string]*domain.UserRecord{}
	}
	return s.users, nil
}

func (s *stubStore) Save(_ context.Context, users map[string]*domain.UserRecord) error {
	s.users = users
	return nil
}

// stubPrices never answers; webhook tests stay off the price path
type stubPrices struct{}

func (stubPrices) Fetch(_ context.Context, _ []string) (map[string]price.Quote, error) {
	return map[string]price.Quote{}, nil
}

// sign computes the webhook signature the way the platform does
func sign(body []byte) string {
	mac := hmac.New(sha256.New, []byte(channelSecret))
	mac.Write(body)
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

// newWebhookRouter wires a router against a fake reply API and returns the
// router plus the captured reply bodies
func newWebhookRouter(t *testing.T) (*gin.Engine, *[]string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	var replies []string
	replySrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		replies = append(replies, string(b))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte("{}"))
	}))
	t.Cleanup(replySrv.Close)

	bot, err := linebot.New(channelSecret, "test-token", linebot.WithEndpointBase(replySrv.URL))
	require.NoError(t, err)

	proc := command.NewProcessor(&stubStore{}, stubPrices{}, 32)
	r := gin.New()
	r.POST("/webhook", WebhookHandler(bot, proc))
	return r, &replies
}

// post delivers a webhook body with the given signature
func post(r *gin.Engine, body []byte, signature string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/webhook", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Line-Signature", signature)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestWebhookRepliesToTextEvent(t *testing.T) {
	r, replies := newWebhookRouter(t)

	body := []byte(`{"events":[{"type":"message","mode":"active","timestamp":1700000000000,` +
		`"replyToken":"rt-1","source":{"type":"user","userId":"U1"},` +
		`"message":{"id":"m1","type":"text","text":"/status"}}]}`)
	w := post(r, body, sign(body))

	assert.Equal(t, http.StatusOK, w.Code)
	require.Len(t, *replies, 1, "exactly one reply per processed event")
	assert.Contains(t, (*replies)[0], "rt-1", "reply is addressed by the reply token")
	assert.Contains(t, (*replies)[0], "No holdings yet")
}

func TestWebhookRejectsBadSignature(t *testing.T) {
	r, replies := newWebhookRouter(t)

	body := []byte(`{"events":[]}`)
	w := post(r, body, "bogus-signature")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, *replies)
}

func TestWebhookIgnoresNonTextEvents(t *testing.T) {
	r, replies := newWebhookRouter(t)

	body := []byte(`{"events":[{"type":"follow","mode":"active","timestamp":1700000000000,` +
		`"replyToken":"rt-2","source":{"type":"user","userId":"U1"}},` +
		`{"type":"message","mode":"active","timestamp":1700000000000,` +
		`"replyToken":"rt-3","source":{"type":"user","userId":"U1"},` +
		`"message":{"id":"m2","type":"sticker","packageId":"1","stickerId":"2"}}]}`)
	w := post(r, body, sign(body))

	assert.Equal(t, http.StatusOK, w.Code, "ignored events still end in success")
	assert.Empty(t, *replies, "non-text events get no reply")
}

func TestWebhookProcessesBatchInOrder(t *testing.T) {
	r, replies := newWebhookRouter(t)

	body := []byte(`{"events":[` +
		`{"type":"message","mode":"active","timestamp":1700000000000,"replyToken":"rt-a",` +
		`"source":{"type":"user","userId":"U1"},"message":{"id":"m1","type":"text","text":"/add btc 0.5"}},` +
		`{"type":"message","mode":"active","timestamp":1700000000001,"replyToken":"rt-b",` +
		`"source":{"type":"user","userId":"U1"},"message":{"id":"m2","type":"text","text":"/add btc abc"}},` +
		`{"type":"message","mode":"active","timestamp":1700000000002,"replyToken":"rt-c",` +
		`"source":{"type":"user","userId":"U1"},"message":{"id":"m3","type":"text","text":"/setgoal 1000000"}}]}`)
	w := post(r, body, sign(body))

	assert.Equal(t, http.StatusOK, w.Code)
	require.Len(t, *replies, 3, "a failing event never aborts the rest of the batch")
	assert.Contains(t, (*replies)[0], "Saved BTC = 0.5")
	assert.Contains(t, (*replies)[1], "Usage: /add")
	assert.Contains(t, (*replies)[2], "Goal set to 1000000")
}
