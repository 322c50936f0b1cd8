// Package commentary exposes the LLM commentary endpoint.
package commentary

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"acquisition_calc/pkg/core/agent"
	corecommentary "acquisition_calc/pkg/core/commentary"
	corescenario "acquisition_calc/pkg/core/scenario"
)

var generator *corecommentary.Generator

func InitHandler(mgr *agent.Manager) {
	generator = corecommentary.NewGenerator(mgr)
}

type request struct {
	TargetRevenue float64             `json:"target_revenue"`
	Input         *corescenario.Input `json:"input,omitempty"`
}

// HandleCommentary computes one scenario and narrates it. Model calls are
// slow; the handler caps them at 60 seconds.
func HandleCommentary(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
	if r.Method == "OPTIONS" {
		w.WriteHeader(http.StatusOK)
		return
	}

	var req request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	input := corescenario.Input{TargetRevenues: []float64{req.TargetRevenue}}
	if req.Input != nil {
		input = *req.Input
	}
	if len(input.TargetRevenues) == 0 || input.TargetRevenues[0] <= 0 {
		http.Error(w, "a positive target_revenue is required", http.StatusBadRequest)
		return
	}

	result := corescenario.Compute(input)[0]

	ctx, cancel := context.WithTimeout(r.Context(), 60*time.Second)
	defer cancel()

	commentary, err := generator.Generate(ctx, result)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadGateway)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(struct {
		Result     corescenario.Result       `json:"result"`
		Commentary corecommentary.Commentary `json:"commentary"`
	}{result, commentary})
}
