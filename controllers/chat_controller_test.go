package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/edm1922/mental-health-support-sub002/models"
	"github.com/edm1922/mental-health-support-sub002/services"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubRecorder 可配置写入结果的审计写入桩
type stubRecorder struct {
	mu     sync.Mutex
	ok     bool
	called int
}

func (r *stubRecorder) Record(userID, message, response string, result services.EmotionResult) (string, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.called++
	if !r.ok {
		return "", false
	}
	return "record-id", true
}

func (r *stubRecorder) calls() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.called
}

// stubDirectory 展示名查询桩
type stubDirectory struct {
	name string
	err  error
}

func (d *stubDirectory) DisplayName(userID string) (string, error) {
	return d.name, d.err
}

func newChatRouter(recorder ChatRecorder, directory services.UserDirectory, uid string) (*gin.Engine, *ChatController) {
	gin.SetMode(gin.TestMode)
	controller := NewChatController(recorder, directory, nil)

	r := gin.New()
	r.POST("/api/v1/chat", func(c *gin.Context) {
		if uid != "" {
			c.Set("uid", uid)
		}
		controller.SendMessage(c)
	})
	return r, controller
}

func postChat(t *testing.T, r *gin.Engine, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/chat", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSendMessageHappyPath(t *testing.T) {
	recorder := &stubRecorder{ok: true}
	r, controller := newChatRouter(recorder, &stubDirectory{name: "Sam"}, "user-1")

	w := postChat(t, r, `{"message":"I am so happy and excited today!"}`)
	controller.Wait()

	require.Equal(t, http.StatusOK, w.Code)

	var resp models.ChatResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "happy", resp.Emotion)
	assert.Equal(t, 0.8, resp.Sentiment)
	assert.True(t, strings.HasPrefix(resp.Response, "Hi Sam"))
	assert.Equal(t, 1, recorder.calls())
}

// 审计写入失败时仍然正常返回回复
func TestSendMessageSucceedsWhenRecordingFails(t *testing.T) {
	recorder := &stubRecorder{ok: false}
	r, controller := newChatRouter(recorder, &stubDirectory{name: "Sam"}, "user-1")

	w := postChat(t, r, `{"message":"I feel so anxious and overwhelmed about everything"}`)
	controller.Wait()

	require.Equal(t, http.StatusOK, w.Code)

	var resp models.ChatResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "anxious", resp.Emotion)
	assert.Equal(t, -0.5, resp.Sentiment)
	assert.Contains(t, resp.Response, "breathing exercise")
	assert.Equal(t, 1, recorder.calls())
}

// 展示名查询失败时退回匿名问候
func TestSendMessageDirectoryFailureFallsBack(t *testing.T) {
	recorder := &stubRecorder{ok: true}
	r, controller := newChatRouter(recorder, &stubDirectory{err: errors.New("db down")}, "user-1")

	w := postChat(t, r, `{"message":"just checking in"}`)
	controller.Wait()

	require.Equal(t, http.StatusOK, w.Code)

	var resp models.ChatResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.True(t, strings.HasPrefix(resp.Response, "Hi there"))
}

func TestSendMessageCrisisResponse(t *testing.T) {
	recorder := &stubRecorder{ok: true}
	r, controller := newChatRouter(recorder, &stubDirectory{name: "Sam"}, "user-1")

	w := postChat(t, r, `{"message":"sometimes I just want to die"}`)
	controller.Wait()

	require.Equal(t, http.StatusOK, w.Code)

	var resp models.ChatResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "crisis", resp.Emotion)
	assert.Equal(t, -1.0, resp.Sentiment)
	assert.Contains(t, resp.Response, "988")
	assert.Contains(t, resp.Response, "741741")
	assert.NotContains(t, resp.Response, "Sam")
}

func TestSendMessageMissingMessage(t *testing.T) {
	recorder := &stubRecorder{ok: true}
	r, _ := newChatRouter(recorder, &stubDirectory{name: "Sam"}, "user-1")

	w := postChat(t, r, `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, 0, recorder.calls())
}

func TestSendMessageBlankMessage(t *testing.T) {
	recorder := &stubRecorder{ok: true}
	r, _ := newChatRouter(recorder, &stubDirectory{name: "Sam"}, "user-1")

	w := postChat(t, r, `{"message":"   "}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, 0, recorder.calls())
}

func TestSendMessageUnauthenticated(t *testing.T) {
	recorder := &stubRecorder{ok: true}
	r, _ := newChatRouter(recorder, &stubDirectory{name: "Sam"}, "")

	w := postChat(t, r, `{"message":"hello"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, 0, recorder.calls())
}
