package task

// Priority ranks a Task.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// IsValid returns true if the priority is one of the defined constants.
func (p Priority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (p Priority) String() string {
	return string(p)
}
