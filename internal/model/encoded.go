package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// StringList is a list of strings persisted as a JSON text column.
// Malformed stored text fails the read instead of decaying to an empty list.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return nil, nil
	}
	b, err := json.Marshal([]string(l))
	if err != nil {
		return nil, fmt.Errorf("encode string list: %w", err)
	}
	return string(b), nil
}

func (l *StringList) Scan(src interface{}) error {
	data, err := textColumn(src)
	if err != nil {
		return fmt.Errorf("scan string list: %w", err)
	}
	if data == nil {
		*l = nil
		return nil
	}
	var out []string
	if err := json.Unmarshal(data, &out); err != nil {
		return fmt.Errorf("decode string list: %w", err)
	}
	*l = out
	return nil
}

// MarshalJSON renders a nil list as [] so the wire format never carries null
// for list-valued fields.
func (l StringList) MarshalJSON() ([]byte, error) {
	if l == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]string(l))
}

// RecurringRule describes how a task repeats. Stored as a JSON text column,
// absent when the task is one-shot.
type RecurringRule struct {
	Frequency string `json:"frequency"`
	Interval  int    `json:"interval,omitempty"`
}

func (r *RecurringRule) Value() (driver.Value, error) {
	if r == nil {
		return nil, nil
	}
	b, err := json.Marshal(r)
	if err != nil {
		return nil, fmt.Errorf("encode recurring rule: %w", err)
	}
	return string(b), nil
}

func (r *RecurringRule) Scan(src interface{}) error {
	data, err := textColumn(src)
	if err != nil {
		return fmt.Errorf("scan recurring rule: %w", err)
	}
	if data == nil {
		*r = RecurringRule{}
		return nil
	}
	if err := json.Unmarshal(data, r); err != nil {
		return fmt.Errorf("decode recurring rule: %w", err)
	}
	return nil
}

// TaskSkeleton is one entry of a template's embedded task list. It carries
// only the fields worth stamping onto a fresh task.
type TaskSkeleton struct {
	Title              string     `json:"title"`
	Description        string     `json:"description,omitempty"`
	Category           string     `json:"category,omitempty"`
	Priority           string     `json:"priority,omitempty"`
	Notes              string     `json:"notes,omitempty"`
	Tags               StringList `json:"tags,omitempty"`
	EstimatedPomodoros int        `json:"estimatedPomodoros,omitempty"`
}

// TaskSkeletonList is a template's task list persisted as a JSON text column.
type TaskSkeletonList []TaskSkeleton

func (l TaskSkeletonList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	b, err := json.Marshal([]TaskSkeleton(l))
	if err != nil {
		return nil, fmt.Errorf("encode template tasks: %w", err)
	}
	return string(b), nil
}

func (l *TaskSkeletonList) Scan(src interface{}) error {
	data, err := textColumn(src)
	if err != nil {
		return fmt.Errorf("scan template tasks: %w", err)
	}
	if data == nil {
		*l = nil
		return nil
	}
	var out []TaskSkeleton
	if err := json.Unmarshal(data, &out); err != nil {
		return fmt.Errorf("decode template tasks: %w", err)
	}
	*l = out
	return nil
}

func (l TaskSkeletonList) MarshalJSON() ([]byte, error) {
	if l == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]TaskSkeleton(l))
}

func textColumn(src interface{}) ([]byte, error) {
	switch v := src.(type) {
	case nil:
		return nil, nil
	case []byte:
		if len(v) == 0 {
			return nil, nil
		}
		return v, nil
	case string:
		if v == "" {
			return nil, nil
		}
		return []byte(v), nil
	default:
		return nil, fmt.Errorf("unsupported column type %T", src)
	}
}
