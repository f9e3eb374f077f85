package enums

import "fmt"

// TaskPriority ranks how urgent a task is.
type TaskPriority string

const (
	TaskPriorityLow    TaskPriority = "low"
	TaskPriorityMedium TaskPriority = "medium"
	TaskPriorityHigh   TaskPriority = "high"
	TaskPriorityUrgent TaskPriority = "urgent"
)

var validTaskPriorities = []TaskPriority{
	TaskPriorityLow,
	TaskPriorityMedium,
	TaskPriorityHigh,
	TaskPriorityUrgent,
}

// String implements fmt.Stringer.
func (p TaskPriority) String() string {
	return string(p)
}

// IsValid reports whether the value is a known TaskPriority.
func (p TaskPriority) IsValid() bool {
	for _, candidate := range validTaskPriorities {
		if candidate == p {
			return true
		}
	}
	return false
}

// ParseTaskPriority converts raw input into a TaskPriority.
func ParseTaskPriority(value string) (TaskPriority, error) {
	for _, candidate := range validTaskPriorities {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid task priority %q", value)
}

// UnmarshalText rejects unknown priorities at the decoding boundary.
func (p *TaskPriority) UnmarshalText(text []byte) error {
	parsed, err := ParseTaskPriority(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}
