package config

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"acquisition_calc/pkg/core/agent"
)

func postSwitch(t *testing.T, h *Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader([]byte(body)))
	rec := httptest.NewRecorder()
	h.HandleSwitch(rec, req)
	return rec
}

func TestHandleSwitchReturnsJSON(t *testing.T) {
	h := NewHandler(agent.NewManager(agent.Config{ActiveProvider: "gemini"}))

	rec := postSwitch(t, h, `{"provider":"deepseek"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var resp Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "deepseek", resp.ActiveProvider)
	assert.Contains(t, resp.Available, "gemini")
}

func TestHandleSwitchUnknownProvider(t *testing.T) {
	h := NewHandler(agent.NewManager(agent.Config{ActiveProvider: "gemini"}))

	rec := postSwitch(t, h, `{"provider":"nonexistent"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	// The active provider is unchanged after a rejected switch.
	assert.Equal(t, "gemini", h.AgentMgr.ActiveProvider())
}

func TestHandleSwitchBadBody(t *testing.T) {
	h := NewHandler(agent.NewManager(agent.Config{ActiveProvider: "gemini"}))

	rec := postSwitch(t, h, "{broken")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleConfig(t *testing.T) {
	h := NewHandler(agent.NewManager(agent.Config{ActiveProvider: "deepseek"}))

	rec := httptest.NewRecorder()
	h.HandleConfig(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "deepseek", resp.ActiveProvider)
	assert.ElementsMatch(t, []string{"gemini", "deepseek"}, resp.Available)
}
