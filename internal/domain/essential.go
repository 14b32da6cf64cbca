package domain

// EssentialConstraint records that Activity's earliest start must account for
// the earliest finish of Required, even when no direct edge connects them.
// It is an ordering annotation layered on top of the network, not an edge
// with a duration of its own.
type EssentialConstraint struct {
	Activity string `json:"activity"`
	Required string `json:"required"`
}

// NewEssentialConstraint creates a new essential-activity constraint.
func NewEssentialConstraint(activity, required string) EssentialConstraint {
	return EssentialConstraint{
		Activity: activity,
		Required: required,
	}
}
