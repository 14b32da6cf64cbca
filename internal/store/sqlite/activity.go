package sqlite

import (
	"database/sql"
	"time"

	"github.com/planline/planline/internal/domain"
)

// ActivityRepository handles activity persistence operations.
type ActivityRepository struct {
	db *sql.DB
}

// NewActivityRepository creates a new ActivityRepository.
func NewActivityRepository(db *sql.DB) *ActivityRepository {
	return &ActivityRepository{db: db}
}

// Create inserts a new activity. Inserting an existing name is a no-op so
// that implicit successor registration stays idempotent.
func (r *ActivityRepository) Create(activity *domain.Activity) error {
	_, err := r.db.Exec(`
		INSERT INTO activities (name, label, created_at, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(name) DO NOTHING
	`,
		activity.Name,
		activity.Label,
		activity.CreatedAt.Format(time.RFC3339),
		activity.UpdatedAt.Format(time.RFC3339),
	)
	return err
}

// GetByName returns an activity by its name, or sql.ErrNoRows.
func (r *ActivityRepository) GetByName(name string) (*domain.Activity, error) {
	row := r.db.QueryRow(`
		SELECT name, label, created_at, updated_at
		FROM activities
		WHERE name = ?
	`, name)
	return scanActivity(row)
}

// List returns all activities ordered by name.
func (r *ActivityRepository) List() ([]*domain.Activity, error) {
	rows, err := r.db.Query(`
		SELECT name, label, created_at, updated_at
		FROM activities
		ORDER BY name
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var activities []*domain.Activity
	for rows.Next() {
		activity, err := scanActivity(rows)
		if err != nil {
			return nil, err
		}
		activities = append(activities, activity)
	}
	return activities, rows.Err()
}

// Delete removes an activity. Edges and essential constraints referencing it
// are removed by the schema's ON DELETE CASCADE.
func (r *ActivityRepository) Delete(name string) error {
	result, err := r.db.Exec("DELETE FROM activities WHERE name = ?", name)
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

// Exists checks if an activity exists.
func (r *ActivityRepository) Exists(name string) (bool, error) {
	var count int
	err := r.db.QueryRow("SELECT COUNT(*) FROM activities WHERE name = ?", name).Scan(&count)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// SetLabel updates an activity's label and touch timestamp.
func (r *ActivityRepository) SetLabel(name, label string) error {
	result, err := r.db.Exec(`
		UPDATE activities SET label = ?, updated_at = ? WHERE name = ?
	`, label, time.Now().Format(time.RFC3339), name)
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

// scanner abstracts sql.Row and sql.Rows for scanActivity.
type scanner interface {
	Scan(dest ...interface{}) error
}

func scanActivity(s scanner) (*domain.Activity, error) {
	var activity domain.Activity
	var label sql.NullString
	var createdAt, updatedAt string

	if err := s.Scan(&activity.Name, &label, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	if label.Valid {
		activity.Label = &label.String
	}
	activity.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	activity.UpdatedAt, _ = time.Parse(time.RFC3339, updatedAt)

	return &activity, nil
}
