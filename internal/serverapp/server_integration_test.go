package serverapp_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chorepet/internal/config"
	"chorepet/internal/model"
	"chorepet/internal/serverapp"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	cfg := config.Default()
	cfg.Storage.DBPath = filepath.Join(t.TempDir(), "tasks.db")

	store, err := serverapp.OpenStore(context.Background(), cfg)
	require.NoError(t, err)

	handler, err := serverapp.NewHandler(serverapp.Options{
		Config: cfg,
		Store:  store,
		Pinger: store,
		Logger: log.New(io.Discard, "", 0),
	})
	require.NoError(t, err)

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv
}

func doJSON(t *testing.T, method, url string, body any) (*http.Response, map[string]any) {
	t.Helper()

	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		rd = bytes.NewReader(b)
	}
	req, err := http.NewRequest(method, url, rd)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var out map[string]any
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if len(raw) > 0 && raw[0] == '{' {
		require.NoError(t, json.Unmarshal(raw, &out))
	}
	return resp, out
}

func getTasks(t *testing.T, url string) []model.Task {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var ts []model.Task
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&ts))
	return ts
}

// The reference walkthrough: start with 5 coins, add a task, complete it,
// un-complete it, delete it. The wallet ends where it started and the task
// is gone.
func TestServer_TaskLifecycleScenario(t *testing.T) {
	srv := newTestServer(t)
	today := time.Now().Format(model.DateLayout)

	resp, body := doJSON(t, http.MethodGet, srv.URL+"/money", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.EqualValues(t, 5, body["money"])

	resp, body = doJSON(t, http.MethodPost, srv.URL+"/add", map[string]any{
		"task_name":       "feed the pet",
		"task_date":       today,
		"task_difficulty": "easy",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	taskObj := body["task"].(map[string]any)
	id := int(taskObj["id"].(float64))

	resp, body = doJSON(t, http.MethodPost, srv.URL+"/tasks/complete", map[string]any{
		"task_id":   id,
		"completed": true,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.EqualValues(t, 10, body["new_money"])

	resp, body = doJSON(t, http.MethodPost, srv.URL+"/tasks/complete", map[string]any{
		"task_id":   id,
		"completed": false,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.EqualValues(t, 5, body["new_money"])

	resp, _ = doJSON(t, http.MethodDelete, fmt.Sprintf("%s/delete/%d", srv.URL, id), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	assert.Empty(t, getTasks(t, srv.URL+"/tasks"))

	resp, body = doJSON(t, http.MethodGet, srv.URL+"/money", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.EqualValues(t, 5, body["money"])
}

func TestServer_SpendGuard(t *testing.T) {
	srv := newTestServer(t)

	resp, body := doJSON(t, http.MethodPost, srv.URL+"/money/spend", map[string]any{"amount": 1000})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, body["error"], "insufficient")

	resp, body = doJSON(t, http.MethodGet, srv.URL+"/money", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.EqualValues(t, 5, body["money"])

	resp, body = doJSON(t, http.MethodPost, srv.URL+"/money/spend", map[string]any{"amount": 3})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.EqualValues(t, 2, body["money"])
}

func TestServer_WebsocketReceivesEvents(t *testing.T) {
	srv := newTestServer(t)
	today := time.Now().Format(model.DateLayout)

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	defer conn.Close()

	resp, body := doJSON(t, http.MethodPost, srv.URL+"/add", map[string]any{
		"task_name":       "feed the pet",
		"task_date":       today,
		"task_difficulty": "hard",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	id := int(body["task"].(map[string]any)["id"].(float64))

	resp, _ = doJSON(t, http.MethodPost, srv.URL+"/tasks/complete", map[string]any{
		"task_id":   id,
		"completed": true,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	readEvent := func() map[string]any {
		require.NoError(t, conn.SetReadDeadline(time.Now().Add(3*time.Second)))
		var frame map[string]any
		require.NoError(t, conn.ReadJSON(&frame))
		return frame
	}

	frame := readEvent()
	assert.Equal(t, "task_added", frame["event"])
	added := frame["data"].(map[string]any)
	assert.Equal(t, "feed the pet", added["task_name"])

	frame = readEvent()
	assert.Equal(t, "task_updated", frame["event"])

	frame = readEvent()
	assert.Equal(t, "money_updated", frame["event"])
	assert.EqualValues(t, 20, frame["data"])
}

func TestServer_HealthAndReady(t *testing.T) {
	srv := newTestServer(t)

	resp, body := doJSON(t, http.MethodGet, srv.URL+"/healthz", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, body["ok"])
	assert.Equal(t, "chorepet", body["service"])

	resp, body = doJSON(t, http.MethodGet, srv.URL+"/readyz", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, body["ok"])
}

func TestServer_CORSPreflight(t *testing.T) {
	srv := newTestServer(t)

	req, err := http.NewRequest(http.MethodOptions, srv.URL+"/tasks", nil)
	require.NoError(t, err)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", "POST")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
}
