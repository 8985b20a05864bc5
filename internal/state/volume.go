package state

import (
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"time"
)

const volumeKey = "volume"

// GetVolume returns the saved volume. ok is false when none was saved.
func (m *Manager) GetVolume() (volume float64, ok bool, err error) {
	raw, ok, err := getSetting(m.db, volumeKey)
	if err != nil || !ok {
		return 0, false, err
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false, fmt.Errorf("saved volume %q: %w", raw, err)
	}
	if v < 0 || v > 1 {
		return 0, false, nil
	}
	return v, true, nil
}

func saveVolume(db *sql.DB, volume float64) error {
	return setSetting(db, volumeKey, strconv.FormatFloat(volume, 'f', -1, 64))
}

func getSetting(db *sql.DB, key string) (string, bool, error) {
	var value string
	err := db.QueryRow(`SELECT value FROM settings WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

func setSetting(db *sql.DB, key, value string) error {
	_, err := db.Exec(`
		INSERT INTO settings (key, value, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET
			value = excluded.value,
			updated_at = excluded.updated_at
	`, key, value, time.Now().Unix())
	return err
}
