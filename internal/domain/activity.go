package domain

import (
	"regexp"
	"time"
)

// Activity represents a node in a project's activity network. Durations live
// on the edges between activities, not on the activity itself.
type Activity struct {
	Name      string    `json:"name"`
	Label     *string   `json:"label,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// validActivityName matches allowed activity identifiers: alphanumeric,
// dots, hyphens, underscores, 1-64 chars.
var validActivityName = regexp.MustCompile(`^[a-zA-Z0-9._-]{1,64}$`)

// ValidActivityName checks whether name is an acceptable activity identifier.
func ValidActivityName(name string) bool {
	return validActivityName.MatchString(name)
}

// NewActivity creates a new activity with the given name and default values.
func NewActivity(name string) *Activity {
	now := time.Now()
	return &Activity{
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// SetLabel sets the activity's display label.
func (a *Activity) SetLabel(label string) {
	a.Label = &label
}
