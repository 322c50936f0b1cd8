// Package scenario exposes the computation and snapshot endpoints.
package scenario

import (
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"

	corescenario "acquisition_calc/pkg/core/scenario"
	"acquisition_calc/pkg/core/store"
)

var (
	repo  *store.ScenarioRepo
	vault *store.SnapshotVault
	cache *store.ResultCache
)

// InitHandler wires the storage dependencies. The cache and vault may be nil
// or DB-less; compute still works without either.
func InitHandler(resultCache *store.ResultCache, snapshotVault *store.SnapshotVault) {
	repo = store.NewScenarioRepo()
	vault = snapshotVault
	cache = resultCache
}

func cors(w http.ResponseWriter, r *http.Request, methods string) bool {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", methods+", OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
	if r.Method == "OPTIONS" {
		w.WriteHeader(http.StatusOK)
		return true
	}
	return false
}

// HandleCompute runs the pipeline for the posted input and returns the result
// batch.
func HandleCompute(w http.ResponseWriter, r *http.Request) {
	if cors(w, r, "POST") {
		return
	}

	var input corescenario.Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}
	if len(input.TargetRevenues) == 0 {
		http.Error(w, "target_revenues is required", http.StatusBadRequest)
		return
	}

	if cached := cache.Get(r.Context(), input); cached != nil {
		writeJSON(w, cached)
		return
	}

	results := corescenario.Compute(input)
	cache.Put(r.Context(), input, results)

	if store.GetPool() != nil {
		if err := repo.SaveAll(r.Context(), results); err != nil {
			logrus.WithError(err).Warn("scenario persistence failed")
		}
	}

	writeJSON(w, results)
}

type snapshotSaveRequest struct {
	Name  string             `json:"name"`
	Input corescenario.Input `json:"input"`
}

// HandleSnapshotSave computes the input and stores it under a name.
func HandleSnapshotSave(w http.ResponseWriter, r *http.Request) {
	if cors(w, r, "POST") {
		return
	}

	var req snapshotSaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}
	if req.Name == "" || len(req.Input.TargetRevenues) == 0 {
		http.Error(w, "name and input.target_revenues are required", http.StatusBadRequest)
		return
	}

	snap := store.Snapshot{
		Name:    req.Name,
		Input:   req.Input,
		Results: corescenario.Compute(req.Input),
	}
	if err := vault.Save(r.Context(), snap); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, snap)
}

// HandleSnapshotLoad returns a stored snapshot by name.
func HandleSnapshotLoad(w http.ResponseWriter, r *http.Request) {
	if cors(w, r, "GET") {
		return
	}

	name := r.URL.Query().Get("name")
	if name == "" {
		http.Error(w, "name query parameter is required", http.StatusBadRequest)
		return
	}

	snap, err := vault.Get(r.Context(), name)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if snap == nil {
		http.Error(w, "snapshot not found: "+name, http.StatusNotFound)
		return
	}
	writeJSON(w, snap)
}

// HandleSnapshotList returns the stored snapshot names.
func HandleSnapshotList(w http.ResponseWriter, r *http.Request) {
	if cors(w, r, "GET") {
		return
	}

	names, err := vault.List(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if names == nil {
		names = []string{}
	}
	writeJSON(w, names)
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}
