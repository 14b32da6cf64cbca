package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	_ "github.com/mattn/go-sqlite3"
)

// initialSchema is the SQL schema for initializing a new project database.
const initialSchema = `
-- Enable WAL mode for better concurrent read performance
PRAGMA journal_mode=WAL;

-- Activities table: nodes of the project network. Durations live on edges.
CREATE TABLE IF NOT EXISTS activities (
    name       TEXT PRIMARY KEY,
    label      TEXT,
    created_at TEXT NOT NULL,
    updated_at TEXT NOT NULL
);

-- Edges table: directed, durationed dependencies between activities.
-- One edge per ordered (from, to) pair; re-adding overwrites the duration.
CREATE TABLE IF NOT EXISTS edges (
    from_name TEXT NOT NULL REFERENCES activities(name) ON DELETE CASCADE,
    to_name   TEXT NOT NULL REFERENCES activities(name) ON DELETE CASCADE,
    duration  REAL NOT NULL CHECK (duration >= 0),
    PRIMARY KEY (from_name, to_name),
    CHECK (from_name != to_name)
);

-- Index for finding an activity's successors
CREATE INDEX IF NOT EXISTS idx_edges_from ON edges(from_name);

-- Index for finding an activity's predecessors
CREATE INDEX IF NOT EXISTS idx_edges_to ON edges(to_name);

-- Essential constraints: ordering annotations layered on top of the edges.
-- No duration of their own.
CREATE TABLE IF NOT EXISTS essentials (
    activity TEXT NOT NULL REFERENCES activities(name) ON DELETE CASCADE,
    required TEXT NOT NULL REFERENCES activities(name) ON DELETE CASCADE,
    PRIMARY KEY (activity, required),
    CHECK (activity != required)
);

-- Index for finding an activity's essential requirements
CREATE INDEX IF NOT EXISTS idx_essentials_activity ON essentials(activity);

-- Audit log table
CREATE TABLE IF NOT EXISTS audit_log (
    id         INTEGER PRIMARY KEY AUTOINCREMENT,
    activity   TEXT NOT NULL,
    action     TEXT NOT NULL,
    field      TEXT,
    old_value  TEXT,
    new_value  TEXT,
    changed_at TEXT NOT NULL,
    changed_by TEXT NOT NULL
);

-- Index for querying audit log by activity
CREATE INDEX IF NOT EXISTS idx_audit_log_activity ON audit_log(activity);

-- Index for querying audit log by action
CREATE INDEX IF NOT EXISTS idx_audit_log_action ON audit_log(action);

-- Index for querying audit log by agent
CREATE INDEX IF NOT EXISTS idx_audit_log_changed_by ON audit_log(changed_by);

-- Index for querying audit log by time
CREATE INDEX IF NOT EXISTS idx_audit_log_changed_at ON audit_log(changed_at);
`

// Manager handles multiple SQLite database connections, one per project.
type Manager struct {
	basePath string
	dbs      map[string]*sql.DB
	mu       sync.RWMutex
}

// NewManager creates a new database manager.
// basePath is the directory where project databases are stored (e.g., ~/.planline/projects/).
func NewManager(basePath string) (*Manager, error) {
	if err := os.MkdirAll(basePath, 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}
	return &Manager{
		basePath: basePath,
		dbs:      make(map[string]*sql.DB),
	}, nil
}

// GetDB returns the database connection for a project, creating it if necessary.
func (m *Manager) GetDB(project string) (*sql.DB, error) {
	m.mu.RLock()
	if db, ok := m.dbs[project]; ok {
		m.mu.RUnlock()
		return db, nil
	}
	m.mu.RUnlock()

	m.mu.Lock()
	defer m.mu.Unlock()

	// Double-check after acquiring write lock
	if db, ok := m.dbs[project]; ok {
		return db, nil
	}

	dbPath := filepath.Join(m.basePath, project+".db")
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Initialize schema
	if _, err := db.Exec(initialSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	m.dbs[project] = db
	return db, nil
}

// ListProjects returns a list of all known projects (based on existing database files).
func (m *Manager) ListProjects() ([]string, error) {
	entries, err := os.ReadDir(m.basePath)
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}

	var projects []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if filepath.Ext(name) == ".db" {
			projects = append(projects, name[:len(name)-3])
		}
	}
	return projects, nil
}

// Close closes all database connections.
func (m *Manager) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	var errs []error
	for project, db := range m.dbs {
		if err := db.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close %s: %w", project, err))
		}
	}
	m.dbs = make(map[string]*sql.DB)

	if len(errs) > 0 {
		return fmt.Errorf("errors closing databases: %v", errs)
	}
	return nil
}
