package mysqlstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"travel_catalog/internal/adapters/observability"
)

type Store struct{ db *sql.DB }

func New(db *sql.DB) *Store { return &Store{db: db} }

// Init creates the snapshots table when it does not exist yet.
func (s *Store) Init(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, createSnapshotsSQL)
	return err
}

func (s *Store) Load(ctx context.Context, key string, dst any) (bool, error) {
	var blob []byte
	err := s.db.QueryRowContext(ctx, getSnapshotSQL, key).Scan(&blob)
	if errors.Is(err, sql.ErrNoRows) {
		observability.ObserveStore("mysql", "miss")
		return false, nil
	}
	if err != nil {
		return false, err
	}
	observability.ObserveStore("mysql", "hit")
	return true, json.Unmarshal(blob, dst)
}

func (s *Store) Save(ctx context.Context, key string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	observability.ObserveStore("mysql", "save")
	_, err = s.db.ExecContext(ctx, upsertSnapshotSQL, key, string(b))
	return err
}
