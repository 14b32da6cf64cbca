package sqlite

import (
	"database/sql"

	"github.com/planline/planline/internal/domain"
)

// EssentialRepository handles essential-constraint persistence operations.
type EssentialRepository struct {
	db *sql.DB
}

// NewEssentialRepository creates a new EssentialRepository.
func NewEssentialRepository(db *sql.DB) *EssentialRepository {
	return &EssentialRepository{db: db}
}

// Add records that activity is essential-dependent on required.
// Adding an existing pair is idempotent.
func (r *EssentialRepository) Add(activity, required string) error {
	_, err := r.db.Exec(`
		INSERT INTO essentials (activity, required)
		VALUES (?, ?)
		ON CONFLICT(activity, required) DO NOTHING
	`, activity, required)
	return err
}

// Remove deletes an essential constraint.
func (r *EssentialRepository) Remove(activity, required string) error {
	result, err := r.db.Exec(
		"DELETE FROM essentials WHERE activity = ? AND required = ?",
		activity, required,
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

// ListByActivity returns the essential requirements of one activity.
func (r *EssentialRepository) ListByActivity(activity string) ([]*domain.EssentialConstraint, error) {
	rows, err := r.db.Query(`
		SELECT activity, required
		FROM essentials
		WHERE activity = ?
		ORDER BY required
	`, activity)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return r.scanConstraints(rows)
}

// ListAll returns every essential constraint in the project.
func (r *EssentialRepository) ListAll() ([]*domain.EssentialConstraint, error) {
	rows, err := r.db.Query(`
		SELECT activity, required
		FROM essentials
		ORDER BY activity, required
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return r.scanConstraints(rows)
}

func (r *EssentialRepository) scanConstraints(rows *sql.Rows) ([]*domain.EssentialConstraint, error) {
	var constraints []*domain.EssentialConstraint
	for rows.Next() {
		var c domain.EssentialConstraint
		if err := rows.Scan(&c.Activity, &c.Required); err != nil {
			return nil, err
		}
		constraints = append(constraints, &c)
	}
	return constraints, rows.Err()
}
