package apperrors

import "fmt"

// ErrNotFound represents an error when a requested resource is not found.
type ErrNotFound struct {
	Resource string
	ID       interface{}
}

// Error implements the error interface.
func (e *ErrNotFound) Error() string {
	if e.ID != nil {
		return fmt.Sprintf("%s with ID %v not found", e.Resource, e.ID)
	}
	return fmt.Sprintf("%s not found", e.Resource)
}

// Is allows for error checking with errors.Is().
func (e *ErrNotFound) Is(target error) bool {
	_, ok := target.(*ErrNotFound)
	return ok
}

// NewNotFoundError creates a new ErrNotFound.
func NewNotFoundError(resource string, id interface{}) *ErrNotFound {
	return &ErrNotFound{
		Resource: resource,
		ID:       id,
	}
}

// NewShowNotFoundError creates a specific error for when TVmaze does not know a show.
func NewShowNotFoundError(showID int) *ErrNotFound {
	return &ErrNotFound{
		Resource: "show",
		ID:       showID,
	}
}

// ErrUpstreamStatus is returned when TVmaze answers with a non-200 status.
type ErrUpstreamStatus struct {
	StatusCode int
	URL        string
}

// Error implements the error interface.
func (e *ErrUpstreamStatus) Error() string {
	return fmt.Sprintf("upstream returned status %d for %s", e.StatusCode, e.URL)
}

// Is allows for error checking with errors.Is().
func (e *ErrUpstreamStatus) Is(target error) bool {
	_, ok := target.(*ErrUpstreamStatus)
	return ok
}

// ErrShowNotRendered is returned when episodes are requested for a show that has
// no card on the current page.
type ErrShowNotRendered struct {
	ShowID int
}

// Error implements the error interface.
func (e *ErrShowNotRendered) Error() string {
	return fmt.Sprintf("show %d is not on the current page", e.ShowID)
}

// Is allows for error checking with errors.Is().
func (e *ErrShowNotRendered) Is(target error) bool {
	_, ok := target.(*ErrShowNotRendered)
	return ok
}
