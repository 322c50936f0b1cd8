package scenario

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	corescenario "acquisition_calc/pkg/core/scenario"
	"acquisition_calc/pkg/core/store"
)

func initTestHandler(t *testing.T) {
	t.Helper()
	InitHandler(nil, store.NewSnapshotVault(nil, t.TempDir()))
}

func postJSON(t *testing.T, handler http.HandlerFunc, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(payload))
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func TestHandleCompute(t *testing.T) {
	initTestHandler(t)

	rec := postJSON(t, HandleCompute, map[string]interface{}{
		"target_revenues": []float64{2500000},
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var results []corescenario.Result
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &results))
	require.Len(t, results, 1)

	assert.InDelta(t, 617625, results[0].Structure.DownPaymentNeeded, 0.01)
	assert.NotEmpty(t, results[0].ID)
	assert.Len(t, results[0].Projections, 5)
}

func TestHandleComputeValidation(t *testing.T) {
	initTestHandler(t)

	rec := postJSON(t, HandleCompute, map[string]interface{}{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader([]byte("{broken")))
	rec2 := httptest.NewRecorder()
	HandleCompute(rec2, req)
	assert.Equal(t, http.StatusBadRequest, rec2.Code)
}

func TestHandleComputeCORS(t *testing.T) {
	initTestHandler(t)

	req := httptest.NewRequest(http.MethodOptions, "/", nil)
	rec := httptest.NewRecorder()
	HandleCompute(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestSnapshotRoundTrip(t *testing.T) {
	initTestHandler(t)

	rec := postJSON(t, HandleSnapshotSave, map[string]interface{}{
		"name": "broker-call",
		"input": map[string]interface{}{
			"target_revenues": []float64{1500000, 2500000},
		},
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	// Load it back.
	req := httptest.NewRequest(http.MethodGet, "/?name=broker-call", nil)
	loadRec := httptest.NewRecorder()
	HandleSnapshotLoad(loadRec, req)
	require.Equal(t, http.StatusOK, loadRec.Code)

	var snap store.Snapshot
	require.NoError(t, json.Unmarshal(loadRec.Body.Bytes(), &snap))
	assert.Equal(t, "broker-call", snap.Name)
	assert.Len(t, snap.Results, 2)
	assert.False(t, snap.SavedAt.IsZero())

	// And it shows in the listing.
	listRec := httptest.NewRecorder()
	HandleSnapshotList(listRec, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusOK, listRec.Code)
	var names []string
	require.NoError(t, json.Unmarshal(listRec.Body.Bytes(), &names))
	assert.Contains(t, names, "broker-call")
}

func TestSnapshotLoadMissing(t *testing.T) {
	initTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/?name=never-saved", nil)
	rec := httptest.NewRecorder()
	HandleSnapshotLoad(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSnapshotSaveValidation(t *testing.T) {
	initTestHandler(t)

	rec := postJSON(t, HandleSnapshotSave, map[string]interface{}{
		"name": "",
		"input": map[string]interface{}{
			"target_revenues": []float64{2500000},
		},
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
