package todo

import (
	"errors"
	"strings"
)

var (
	ErrIndexOutOfRange = errors.New("index out of range")
	ErrEmptyTitle      = errors.New("empty title")
)

// List wraps the item slice with the 1-based index contract the CLI and
// TUI both rely on. Duplicate titles are allowed and independent.
type List struct {
	items []Item
}

func NewList(items []Item) *List { return &List{items: items} }

// Items returns the backing slice in insertion order.
func (l *List) Items() []Item { return l.items }

func (l *List) Len() int { return len(l.items) }

// Add appends a new entry at the end.
func (l *List) Add(title string, p Priority) (Item, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return Item{}, ErrEmptyTitle
	}
	it := NewItem(title, p)
	l.items = append(l.items, it)
	return it, nil
}

// Toggle flips done for the item at the 1-based index.
func (l *List) Toggle(userIndex int) (Item, error) {
	idx, err := l.check(userIndex)
	if err != nil {
		return Item{}, err
	}
	l.items[idx].Done = !l.items[idx].Done
	return l.items[idx], nil
}

// Remove deletes the item at the 1-based index; later positions shift
// down by one.
func (l *List) Remove(userIndex int) (Item, error) {
	idx, err := l.check(userIndex)
	if err != nil {
		return Item{}, err
	}
	it := l.items[idx]
	l.items = append(l.items[:idx], l.items[idx+1:]...)
	return it, nil
}

func (l *List) check(userIndex int) (int, error) {
	if userIndex < 1 || userIndex > len(l.items) {
		return 0, ErrIndexOutOfRange
	}
	return userIndex - 1, nil
}

// Stats counts done vs pending items for the list header.
func (l *List) Stats() (done, pending int) {
	for _, it := range l.items {
		if it.Done {
			done++
		} else {
			pending++
		}
	}
	return
}
