package workflow

import "time"

// AssignmentWindow is how long an assignee has to complete a content
// item, counted from creation or reassignment.
const AssignmentWindow = 7 * 24 * time.Hour

// DueDateFrom computes the due date for work starting at t.
func DueDateFrom(t time.Time) time.Time {
	return t.Add(AssignmentWindow)
}
