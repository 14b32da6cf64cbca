package sqlite

import (
	"database/sql"

	"github.com/planline/planline/internal/domain"
)

// EdgeRepository handles dependency edge persistence operations.
type EdgeRepository struct {
	db *sql.DB
}

// NewEdgeRepository creates a new EdgeRepository.
func NewEdgeRepository(db *sql.DB) *EdgeRepository {
	return &EdgeRepository{db: db}
}

// Upsert inserts an edge, overwriting the duration when the (from, to) pair
// already exists. Returns the previous duration when an overwrite happened.
func (r *EdgeRepository) Upsert(from, to string, duration float64) (previous *float64, err error) {
	var old float64
	err = r.db.QueryRow(
		"SELECT duration FROM edges WHERE from_name = ? AND to_name = ?",
		from, to,
	).Scan(&old)
	switch {
	case err == sql.ErrNoRows:
		// new edge
	case err != nil:
		return nil, err
	default:
		previous = &old
	}

	_, err = r.db.Exec(`
		INSERT INTO edges (from_name, to_name, duration)
		VALUES (?, ?, ?)
		ON CONFLICT(from_name, to_name) DO UPDATE SET duration = excluded.duration
	`, from, to, duration)
	if err != nil {
		return nil, err
	}
	return previous, nil
}

// Remove deletes an edge.
func (r *EdgeRepository) Remove(from, to string) error {
	result, err := r.db.Exec(
		"DELETE FROM edges WHERE from_name = ? AND to_name = ?",
		from, to,
	)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// ListFrom returns all outgoing edges of an activity in insertion order.
func (r *EdgeRepository) ListFrom(from string) ([]*domain.Edge, error) {
	rows, err := r.db.Query(`
		SELECT from_name, to_name, duration
		FROM edges
		WHERE from_name = ?
		ORDER BY rowid
	`, from)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return r.scanEdges(rows)
}

// ListTo returns all incoming edges of an activity.
func (r *EdgeRepository) ListTo(to string) ([]*domain.Edge, error) {
	rows, err := r.db.Query(`
		SELECT from_name, to_name, duration
		FROM edges
		WHERE to_name = ?
		ORDER BY rowid
	`, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return r.scanEdges(rows)
}

// ListAll returns every edge in the project in insertion order.
func (r *EdgeRepository) ListAll() ([]*domain.Edge, error) {
	rows, err := r.db.Query(`
		SELECT from_name, to_name, duration
		FROM edges
		ORDER BY rowid
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return r.scanEdges(rows)
}

// Exists checks if an edge exists.
func (r *EdgeRepository) Exists(from, to string) (bool, error) {
	var count int
	err := r.db.QueryRow(
		"SELECT COUNT(*) FROM edges WHERE from_name = ? AND to_name = ?",
		from, to,
	).Scan(&count)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *EdgeRepository) scanEdges(rows *sql.Rows) ([]*domain.Edge, error) {
	var edges []*domain.Edge
	for rows.Next() {
		var edge domain.Edge
		if err := rows.Scan(&edge.From, &edge.To, &edge.Duration); err != nil {
			return nil, err
		}
		edges = append(edges, &edge)
	}
	return edges, rows.Err()
}
