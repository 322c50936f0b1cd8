// Package config exposes the model-provider configuration endpoints.
package config

import (
	"encoding/json"
	"net/http"

	"acquisition_calc/pkg/core/agent"
	"acquisition_calc/pkg/core/llm"
)

type Response struct {
	ActiveProvider string   `json:"active_provider"`
	Available      []string `json:"available"`
}

type SwitchRequest struct {
	Provider string `json:"provider"`
}

// Handler holds dependencies for config endpoints.
type Handler struct {
	AgentMgr *agent.Manager
}

func NewHandler(agentMgr *agent.Manager) *Handler {
	return &Handler{AgentMgr: agentMgr}
}

func (h *Handler) HandleConfig(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(Response{
		ActiveProvider: h.AgentMgr.ActiveProvider(),
		Available:      llm.Available(),
	})
}

func (h *Handler) HandleSwitch(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
	if r.Method == "OPTIONS" {
		w.WriteHeader(http.StatusOK)
		return
	}

	var req SwitchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.AgentMgr.SetGlobalProvider(req.Provider); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(Response{
		ActiveProvider: h.AgentMgr.ActiveProvider(),
		Available:      llm.Available(),
	})
}
