package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// SlotStore persists workspace state as whole-value text slots. Every write
// replaces the slot; partial updates do not exist.
type SlotStore struct {
	db *pgxpool.Pool
}

func NewSlotStore(db *pgxpool.Pool) *SlotStore {
	return &SlotStore{db: db}
}

func (s *SlotStore) Get(ctx context.Context, workspaceID, name string) (string, bool, error) {
	var value string
	err := s.db.QueryRow(ctx,
		`SELECT value FROM workspace_slots WHERE workspace_id = $1 AND name = $2`,
		workspaceID, name,
	).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get slot %s: %w", name, err)
	}
	return value, true, nil
}

func (s *SlotStore) Set(ctx context.Context, workspaceID, name, value string) error {
	_, err := s.db.Exec(ctx,
		`INSERT INTO workspace_slots (workspace_id, name, value, updated_at)
		 VALUES ($1, $2, $3, now())
		 ON CONFLICT (workspace_id, name)
		 DO UPDATE SET value = EXCLUDED.value, updated_at = now()`,
		workspaceID, name, value,
	)
	if err != nil {
		return fmt.Errorf("set slot %s: %w", name, err)
	}
	return nil
}
