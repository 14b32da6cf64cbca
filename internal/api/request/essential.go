package request

// DeclareEssentialRequest represents a request to declare an essential constraint.
type DeclareEssentialRequest struct {
	Required string `json:"required"`
}

// Validate validates the declare essential request.
func (r *DeclareEssentialRequest) Validate() []string {
	var errors []string

	if r.Required == "" {
		errors = append(errors, "required is required")
	}

	return errors
}
