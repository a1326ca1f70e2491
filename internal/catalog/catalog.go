// Package catalog holds the static record list and the name lookup over it.
package catalog

import (
	"errors"

	"github.com/baditaflorin/go_text_quality/internal/core/domain"
)

// ErrRecordNotFound is returned when no record has the requested name.
var ErrRecordNotFound = errors.New("record not found")

var defaultRecords = []domain.Record{
	{Name: "Alex", Species: "Lion", Description: "The star of the Central Park Zoo who loves the spotlight and a good steak."},
	{Name: "Marty", Species: "Zebra", Description: "A restless zebra who dreams of life in the wild."},
	{Name: "Gloria", Species: "Hippopotamus", Description: "A confident hippo and the level head of the group."},
	{Name: "Melman", Species: "Giraffe", Description: "A hypochondriac giraffe with a medicine cabinet for every occasion."},
	{Name: "King Julien", Species: "Lemur", Description: "The self-proclaimed king of the lemurs who likes to move it."},
	{Name: "Maurice", Species: "Aye-aye", Description: "King Julien's long-suffering advisor."},
	{Name: "Mort", Species: "Mouse lemur", Description: "A tiny lemur with a fixation on the king's feet."},
	{Name: "Skipper", Species: "Penguin", Description: "Leader of the penguin commando unit."},
	{Name: "Kowalski", Species: "Penguin", Description: "The penguins' strategist and inventor."},
	{Name: "Rico", Species: "Penguin", Description: "The penguin who can regurgitate almost anything."},
	{Name: "Private", Species: "Penguin", Description: "The youngest and most cheerful penguin."},
}

// Records returns a copy of the built-in records.
func Records() []domain.Record {
	out := make([]domain.Record, len(defaultRecords))
	copy(out, defaultRecords)
	return out
}

// Catalog is an immutable, ordered list of records.
type Catalog struct {
	records []domain.Record
}

// New creates a catalog over a copy of records.
func New(records []domain.Record) *Catalog {
	out := make([]domain.Record, len(records))
	copy(out, records)
	return &Catalog{records: out}
}

// Default returns a catalog over the built-in records.
func Default() *Catalog {
	return &Catalog{records: defaultRecords}
}

// Records returns a copy of the catalog's records.
func (c *Catalog) Records() []domain.Record {
	out := make([]domain.Record, len(c.records))
	copy(out, c.records)
	return out
}

// Lookup returns the first record whose name equals name exactly.
func (c *Catalog) Lookup(name string) (domain.Record, bool) {
	for _, r := range c.records {
		if r.Name == name {
			return r, true
		}
	}
	return domain.Record{}, false
}

// Find is Lookup with ErrRecordNotFound in place of the boolean.
func (c *Catalog) Find(name string) (domain.Record, error) {
	if r, ok := c.Lookup(name); ok {
		return r, nil
	}
	return domain.Record{}, ErrRecordNotFound
}
