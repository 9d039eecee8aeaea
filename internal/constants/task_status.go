package constants

type TaskStatus string

const (
	StatusUnassigned  TaskStatus = "unassigned"
	StatusAssigned    TaskStatus = "assigned"
	StatusSubmitted   TaskStatus = "submitted"
	StatusApproved    TaskStatus = "approved"
	StatusDeactivated TaskStatus = "deactivated"
)

// Terminal reports whether no further transition leaves the status.
// Deactivation of approved tasks is policy-dependent and checked by the
// lifecycle service, not here.
func (s TaskStatus) Terminal() bool {
	return s == StatusApproved || s == StatusDeactivated
}
