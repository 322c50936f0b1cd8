package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"

	"acquisition_calc/pkg/core/scenario"
)

// SnapshotVault stores named what-if snapshots: the input that was run and
// the results it produced. Hybrid storage: DB when a pool is configured, the
// local file directory otherwise.
type SnapshotVault struct {
	pool    *pgxpool.Pool
	fileDir string
}

// NewSnapshotVault creates the vault. With a nil pool and empty dir it
// defaults to a local cache directory.
func NewSnapshotVault(pool *pgxpool.Pool, dir string) *SnapshotVault {
	if pool == nil && dir == "" {
		dir = filepath.Join(".cache", "snapshots")
	}
	if dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			logrus.WithError(err).Warn("snapshot dir not writable")
		}
	}
	return &SnapshotVault{pool: pool, fileDir: dir}
}

// Snapshot is one saved what-if.
type Snapshot struct {
	Name    string            `json:"name"`
	Input   scenario.Input    `json:"input"`
	Results []scenario.Result `json:"results"`
	SavedAt time.Time         `json:"saved_at"`
}

// Save upserts a snapshot under its name.
//
// Schema:
//
//	CREATE TABLE IF NOT EXISTS snapshots (
//	  name TEXT PRIMARY KEY,
//	  snapshot_json JSONB,
//	  updated_at TIMESTAMPTZ
//	);
func (v *SnapshotVault) Save(ctx context.Context, snap Snapshot) error {
	if snap.Name == "" {
		return fmt.Errorf("snapshot name required")
	}
	snap.SavedAt = time.Now().UTC()

	jsonData, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	if v.pool != nil {
		query := `
			INSERT INTO snapshots (name, snapshot_json, updated_at)
			VALUES ($1, $2, $3)
			ON CONFLICT (name)
			DO UPDATE SET snapshot_json = EXCLUDED.snapshot_json, updated_at = EXCLUDED.updated_at;
		`
		if _, err := v.pool.Exec(ctx, query, snap.Name, jsonData, snap.SavedAt); err != nil {
			return fmt.Errorf("failed to save snapshot to db: %w", err)
		}
		return nil
	}

	if v.fileDir != "" {
		if err := os.WriteFile(v.path(snap.Name), jsonData, 0644); err != nil {
			return fmt.Errorf("failed to save snapshot file: %w", err)
		}
	}
	return nil
}

// Get retrieves a snapshot by name; nil without error on a miss.
func (v *SnapshotVault) Get(ctx context.Context, name string) (*Snapshot, error) {
	if v.pool != nil {
		var jsonData []byte
		err := v.pool.QueryRow(ctx, `SELECT snapshot_json FROM snapshots WHERE name = $1`, name).Scan(&jsonData)
		if err != nil {
			return nil, nil
		}
		var snap Snapshot
		if err := json.Unmarshal(jsonData, &snap); err != nil {
			return nil, fmt.Errorf("failed to unmarshal snapshot: %w", err)
		}
		return &snap, nil
	}

	if v.fileDir != "" {
		data, err := os.ReadFile(v.path(name))
		if err != nil {
			return nil, nil
		}
		var snap Snapshot
		if err := json.Unmarshal(data, &snap); err != nil {
			return nil, fmt.Errorf("failed to unmarshal snapshot file: %w", err)
		}
		return &snap, nil
	}
	return nil, nil
}

// Exists reports whether a snapshot with the name is stored.
func (v *SnapshotVault) Exists(ctx context.Context, name string) bool {
	if v.pool != nil {
		var one int
		return v.pool.QueryRow(ctx, `SELECT 1 FROM snapshots WHERE name = $1 LIMIT 1`, name).Scan(&one) == nil
	}
	if v.fileDir != "" {
		_, err := os.Stat(v.path(name))
		return err == nil
	}
	return false
}

// List returns stored snapshot names.
func (v *SnapshotVault) List(ctx context.Context) ([]string, error) {
	if v.pool != nil {
		rows, err := v.pool.Query(ctx, `SELECT name FROM snapshots ORDER BY updated_at DESC`)
		if err != nil {
			return nil, fmt.Errorf("failed to list snapshots: %w", err)
		}
		defer rows.Close()
		var names []string
		for rows.Next() {
			var name string
			if err := rows.Scan(&name); err != nil {
				return nil, err
			}
			names = append(names, name)
		}
		return names, nil
	}

	if v.fileDir != "" {
		entries, err := os.ReadDir(v.fileDir)
		if err != nil {
			return nil, nil
		}
		var names []string
		for _, e := range entries {
			if filepath.Ext(e.Name()) == ".json" {
				names = append(names, strings.TrimSuffix(e.Name(), ".json"))
			}
		}
		return names, nil
	}
	return nil, nil
}

func (v *SnapshotVault) path(name string) string {
	safe := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		}
		return '_'
	}, name)
	return filepath.Join(v.fileDir, safe+".json")
}
