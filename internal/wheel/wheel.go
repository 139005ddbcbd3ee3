// Package wheel holds the ordered item list and rotation angle of a spinning
// wheel, and maps rotation angles to the sector under the pointer.
package wheel

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

var (
	ErrEmptyLabel      = errors.New("label is empty")
	ErrIndexOutOfRange = errors.New("index out of range")
)

// Item is a single wheel entry. Labels may repeat; ID is unique per model.
type Item struct {
	ID    uint64
	Label string
}

// Model is the wheel state shared by the spin controller and renderers.
// It is not safe for concurrent use; all calls happen on one update loop.
type Model struct {
	items     []Item
	nextID    uint64
	angle     float64
	palette   []string
	listeners []func()
}

type Option func(*Model)

// WithPalette overrides the sector fill colors.
func WithPalette(colors []string) Option {
	return func(m *Model) {
		if len(colors) > 0 {
			m.palette = slices.Clone(colors)
		}
	}
}

func New(opts ...Option) *Model {
	m := &Model{
		palette: slices.Clone(DefaultPalette),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Subscribe registers fn to be called after every angle change and every
// item mutation.
func (m *Model) Subscribe(fn func()) {
	if fn != nil {
		m.listeners = append(m.listeners, fn)
	}
}

func (m *Model) redraw() {
	for _, fn := range m.listeners {
		fn()
	}
}

// AddItem appends a trimmed label. Whitespace-only labels are rejected.
func (m *Model) AddItem(label string) (Item, error) {
	label = strings.TrimSpace(label)
	if label == "" {
		return Item{}, ErrEmptyLabel
	}

	m.nextID++
	item := Item{ID: m.nextID, Label: label}
	m.items = append(m.items, item)
	m.redraw()
	return item, nil
}

func (m *Model) RemoveItem(index int) error {
	if index < 0 || index >= len(m.items) {
		return fmt.Errorf("remove item %d of %d: %w", index, len(m.items), ErrIndexOutOfRange)
	}
	m.items = slices.Delete(m.items, index, index+1)
	m.redraw()
	return nil
}

// RemoveID deletes the item with the given id. It reports whether an item was removed.
func (m *Model) RemoveID(id uint64) bool {
	idx := m.IndexOf(id)
	if idx < 0 {
		return false
	}
	m.items = slices.Delete(m.items, idx, idx+1)
	m.redraw()
	return true
}

func (m *Model) Clear() {
	m.items = nil
	m.redraw()
}

// IndexOf returns the current position of the item with id, or -1.
func (m *Model) IndexOf(id uint64) int {
	return slices.IndexFunc(m.items, func(it Item) bool { return it.ID == id })
}

func (m *Model) Len() int {
	return len(m.items)
}

func (m *Model) Items() []Item {
	return slices.Clone(m.items)
}

func (m *Model) Labels() []string {
	labels := make([]string, len(m.items))
	for i, it := range m.items {
		labels[i] = it.Label
	}
	return labels
}

// At returns the item at index.
func (m *Model) At(index int) (Item, error) {
	if index < 0 || index >= len(m.items) {
		return Item{}, fmt.Errorf("item %d of %d: %w", index, len(m.items), ErrIndexOutOfRange)
	}
	return m.items[index], nil
}

func (m *Model) Angle() float64 {
	return m.angle
}

// Advance rotates the wheel by delta radians. The angle is never normalized.
func (m *Model) Advance(delta float64) {
	m.angle += delta
	m.redraw()
}

func (m *Model) SetAngle(angle float64) {
	m.angle = angle
	m.redraw()
}

// SectorAt returns the index of the item under the pointer at the current
// angle, or -1 for an empty wheel.
func (m *Model) SectorAt() int {
	return SectorIndex(m.angle, len(m.items))
}

func (m *Model) Palette() []string {
	return slices.Clone(m.palette)
}
