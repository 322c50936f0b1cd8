package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"acquisition_calc/pkg/core/scenario"
)

// ScenarioRepo stores computed scenario results.
//
// Schema:
//
//	CREATE TABLE IF NOT EXISTS scenarios (
//	  id TEXT PRIMARY KEY,
//	  target_revenue DOUBLE PRECISION,
//	  result_json JSONB,
//	  updated_at TIMESTAMPTZ
//	);
type ScenarioRepo struct{}

func NewScenarioRepo() *ScenarioRepo {
	return &ScenarioRepo{}
}

// Save upserts one computed result keyed by its id.
func (r *ScenarioRepo) Save(ctx context.Context, result scenario.Result) error {
	pool := GetPool()
	if pool == nil {
		return fmt.Errorf("database pool not initialized")
	}

	jsonData, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to marshal result: %w", err)
	}

	query := `
		INSERT INTO scenarios (id, target_revenue, result_json, updated_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (id)
		DO UPDATE SET
			target_revenue = EXCLUDED.target_revenue,
			result_json = EXCLUDED.result_json,
			updated_at = EXCLUDED.updated_at;
	`
	if _, err := pool.Exec(ctx, query, result.ID, result.TargetRevenue, jsonData, time.Now()); err != nil {
		return fmt.Errorf("failed to save scenario: %w", err)
	}
	return nil
}

// SaveAll persists a batch; the first failure aborts.
func (r *ScenarioRepo) SaveAll(ctx context.Context, results []scenario.Result) error {
	for _, result := range results {
		if err := r.Save(ctx, result); err != nil {
			return err
		}
	}
	return nil
}

// Load retrieves one result by id.
func (r *ScenarioRepo) Load(ctx context.Context, id string) (*scenario.Result, error) {
	pool := GetPool()
	if pool == nil {
		return nil, fmt.Errorf("database pool not initialized")
	}

	var jsonData []byte
	err := pool.QueryRow(ctx, `SELECT result_json FROM scenarios WHERE id = $1`, id).Scan(&jsonData)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, fmt.Errorf("no scenario found for id %s", id)
		}
		return nil, fmt.Errorf("failed to load scenario: %w", err)
	}

	var result scenario.Result
	if err := json.Unmarshal(jsonData, &result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal scenario: %w", err)
	}
	return &result, nil
}

// Recent lists the latest results, newest first.
func (r *ScenarioRepo) Recent(ctx context.Context, limit int) ([]scenario.Result, error) {
	pool := GetPool()
	if pool == nil {
		return nil, fmt.Errorf("database pool not initialized")
	}
	if limit <= 0 {
		limit = 20
	}

	rows, err := pool.Query(ctx, `SELECT result_json FROM scenarios ORDER BY updated_at DESC LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query scenarios: %w", err)
	}
	defer rows.Close()

	var results []scenario.Result
	for rows.Next() {
		var jsonData []byte
		if err := rows.Scan(&jsonData); err != nil {
			return nil, fmt.Errorf("failed to scan scenario row: %w", err)
		}
		var result scenario.Result
		if err := json.Unmarshal(jsonData, &result); err != nil {
			return nil, fmt.Errorf("failed to unmarshal scenario: %w", err)
		}
		results = append(results, result)
	}
	return results, nil
}
