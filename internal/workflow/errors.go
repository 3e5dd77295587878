package workflow

import "errors"

// Failure kinds for the assignment workflow. Handlers map these to wire
// responses; messages follow the API's established wording.
var (
	ErrMissingFields    = errors.New("Missing required fields: title, brand, platform, and/or payment")
	ErrMissingParameter = errors.New("Missing required parameter")
	ErrUserNotFound     = errors.New("User not found")
	ErrContentNotFound  = errors.New("Content not found")
	ErrNoContents       = errors.New("No Contents")
	ErrInvalidStatus    = errors.New("Invalid status parameter")
	ErrAlreadyAssigned  = errors.New("User or Content already assigned")
	ErrNotAssignee      = errors.New("User not authorized to update this content")
)
