// Package state persists user settings between runs.
package state

import (
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/adrg/xdg"
	_ "modernc.org/sqlite" // SQLite driver
)

const (
	appName      = "radiowaves"
	dbFileName   = "radiowaves.db"
	saveDebounce = 500 * time.Millisecond
)

type Manager struct {
	db        *sql.DB
	debounce  time.Duration
	saveMu    sync.Mutex
	saveTimer *time.Timer
	pending   *float64
}

// Open opens the database in the XDG data directory.
func Open() (*Manager, error) {
	dbPath, err := getDBPath()
	if err != nil {
		return nil, err
	}
	return OpenPath(dbPath)
}

// OpenPath opens the database at path, creating it if needed.
func OpenPath(path string) (*Manager, error) {
	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	if err := initSchema(db); err != nil {
		db.Close()
		return nil, err
	}

	return &Manager{db: db, debounce: saveDebounce}, nil
}

// Close flushes a pending save and closes the database.
func (m *Manager) Close() error {
	m.saveMu.Lock()
	if m.saveTimer != nil {
		m.saveTimer.Stop()
	}
	pending := m.pending
	m.pending = nil
	m.saveMu.Unlock()

	var flushErr error
	if pending != nil {
		flushErr = saveVolume(m.db, *pending)
	}
	return errors.Join(flushErr, m.db.Close())
}

// SaveVolume stores the volume after a quiet period, so a held key only
// writes the final value.
func (m *Manager) SaveVolume(volume float64) {
	m.saveMu.Lock()
	defer m.saveMu.Unlock()

	m.pending = &volume

	if m.saveTimer != nil {
		m.saveTimer.Stop()
	}

	m.saveTimer = time.AfterFunc(m.debounce, func() {
		m.saveMu.Lock()
		pending := m.pending
		m.pending = nil
		m.saveMu.Unlock()

		if pending != nil {
			_ = saveVolume(m.db, *pending)
		}
	})
}

func getDBPath() (string, error) {
	return xdg.DataFile(filepath.Join(appName, dbFileName))
}
