package todo

import (
	"encoding/json"
	"fmt"
)

// Status is the completion state of an Item.
type Status int

const (
	StatusTodo Status = iota
	StatusCompleted
)

func (s Status) String() string {
	if s == StatusCompleted {
		return "completed"
	}
	return "todo"
}

// Toggled returns the opposite status.
func (s Status) Toggled() Status {
	if s == StatusCompleted {
		return StatusTodo
	}
	return StatusCompleted
}

// MarshalJSON encodes the status as its string form.
func (s Status) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// UnmarshalJSON decodes "todo" or "completed". Any other string is an error.
func (s *Status) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("todo: status: %w", err)
	}
	switch raw {
	case "todo":
		*s = StatusTodo
	case "completed":
		*s = StatusCompleted
	default:
		return fmt.Errorf("todo: unknown status %q", raw)
	}
	return nil
}

// Item is a single todo entry. Todo is the one-line summary shown in the
// list, Info holds free-form detail text.
type Item struct {
	Status Status `json:"status"`
	Todo   string `json:"todo"`
	Info   string `json:"info"`
}
