package repos

import (
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
)

// SlotRepo reads and writes named durable slots. Values are opaque JSON
// documents; callers own the encoding.
type SlotRepo struct{ db *sqlx.DB }

func NewSlotRepo(db *sqlx.DB) *SlotRepo { return &SlotRepo{db: db} }

// Get returns the slot value and whether the slot exists.
func (r *SlotRepo) Get(key string) (string, bool, error) {
	var value string
	err := r.db.Get(&value, `SELECT value FROM kv_slots WHERE key = ?`, key)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

func (r *SlotRepo) Set(key, value string) error {
	_, err := r.db.Exec(`
		INSERT INTO kv_slots(key,value,updated_at) VALUES(?,?,?)
		ON CONFLICT(key) DO UPDATE
		SET value = excluded.value, updated_at = excluded.updated_at
	`, key, value, time.Now().UTC().Format(time.RFC3339))
	return err
}

func (r *SlotRepo) Delete(key string) error {
	_, err := r.db.Exec(`DELETE FROM kv_slots WHERE key = ?`, key)
	return err
}
