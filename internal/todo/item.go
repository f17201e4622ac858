package todo

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Priority buckets an item. Display order is high > medium > low but the
// list itself stays in insertion order.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// ParsePriority accepts the long names and their first letters.
func ParsePriority(s string) (Priority, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "low", "l":
		return PriorityLow, nil
	case "medium", "m", "":
		return PriorityMedium, nil
	case "high", "h":
		return PriorityHigh, nil
	}
	return "", fmt.Errorf("unknown priority: %q", s)
}

// Item is the domain model for a todo entry.
type Item struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Priority  Priority  `json:"priority"`
	Done      bool      `json:"done"`
	CreatedAt time.Time `json:"created_at"`
}

// NewItem stamps a fresh entry. Priority defaults to medium.
func NewItem(title string, p Priority) Item {
	if p == "" {
		p = PriorityMedium
	}
	return Item{
		ID:        uuid.New(),
		Title:     title,
		Priority:  p,
		CreatedAt: time.Now(),
	}
}
