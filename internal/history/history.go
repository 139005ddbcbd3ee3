// Package history records resolved winners in the order they were picked.
package history

import (
	"fmt"
	"slices"
	"time"
)

// Entry is one resolved winner.
type Entry struct {
	Seq   int
	Label string
	At    time.Time
}

func (e Entry) String() string {
	return fmt.Sprintf("%d. %s", e.Seq, e.Label)
}

// Log is an append-only winner list. Sequence numbers start at 1 and are
// never reused, not even after Clear.
type Log struct {
	entries []Entry
	lastSeq int
}

func New() *Log {
	return &Log{}
}

// NextSeq returns the sequence number the next Append will use.
func (l *Log) NextSeq() int {
	return l.lastSeq + 1
}

func (l *Log) Append(label string, at time.Time) Entry {
	l.lastSeq++
	e := Entry{Seq: l.lastSeq, Label: label, At: at}
	l.entries = append(l.entries, e)
	return e
}

// Clear drops all entries but keeps the sequence counter.
func (l *Log) Clear() {
	l.entries = nil
}

func (l *Log) Entries() []Entry {
	return slices.Clone(l.entries)
}

func (l *Log) Len() int {
	return len(l.entries)
}

// Last returns the most recent entry, if any.
func (l *Log) Last() (Entry, bool) {
	if len(l.entries) == 0 {
		return Entry{}, false
	}
	return l.entries[len(l.entries)-1], true
}
