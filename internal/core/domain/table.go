// Package domain defines the core domain models for tokenadm.
package domain

import "time"

// Entry pairs a token string with its record.
type Entry struct {
	Token  string
	Record *Token
}

// Table maps token strings to records and remembers insertion order.
// The zero value is not usable; create tables with NewTable.
type Table struct {
	order   []string
	records map[string]*Token
}

// NewTable creates an empty table.
func NewTable() *Table {
	return &Table{
		records: make(map[string]*Token),
	}
}

// Len returns the number of records.
func (t *Table) Len() int {
	return len(t.order)
}

// IsEmpty reports whether the table has no records.
func (t *Table) IsEmpty() bool {
	return len(t.order) == 0
}

// Has reports whether token is present.
func (t *Table) Has(token string) bool {
	_, ok := t.records[token]
	return ok
}

// Get returns the record for token.
func (t *Table) Get(token string) (*Token, bool) {
	rec, ok := t.records[token]
	return rec, ok
}

// Put inserts or replaces a record. New tokens are appended to the order.
func (t *Table) Put(token string, rec *Token) {
	if _, ok := t.records[token]; !ok {
		t.order = append(t.order, token)
	}
	t.records[token] = rec
}

// Delete removes token and reports whether it was present.
func (t *Table) Delete(token string) bool {
	if _, ok := t.records[token]; !ok {
		return false
	}
	delete(t.records, token)
	for i, k := range t.order {
		if k == token {
			t.order = append(t.order[:i], t.order[i+1:]...)
			break
		}
	}
	return true
}

// Entries returns the records in insertion order.
func (t *Table) Entries() []Entry {
	entries := make([]Entry, 0, len(t.order))
	for _, k := range t.order {
		entries = append(entries, Entry{Token: k, Record: t.records[k]})
	}
	return entries
}

// Expired returns the records expired at now, in insertion order.
func (t *Table) Expired(now time.Time) []Entry {
	var expired []Entry
	for _, e := range t.Entries() {
		if e.Record.IsExpired(now) {
			expired = append(expired, e)
		}
	}
	return expired
}

// Clone returns a deep copy of the table.
func (t *Table) Clone() *Table {
	c := NewTable()
	for _, e := range t.Entries() {
		rec := *e.Record
		c.Put(e.Token, &rec)
	}
	return c
}

// Equal reports whether both tables hold the same records in the same order.
func (t *Table) Equal(other *Table) bool {
	if other == nil || t.Len() != other.Len() {
		return false
	}
	for i, k := range t.order {
		if other.order[i] != k {
			return false
		}
		if *t.records[k] != *other.records[k] {
			return false
		}
	}
	return true
}

// Stats summarizes a table at a point in time.
type Stats struct {
	Total   int `json:"total"`
	Active  int `json:"active"`
	Expired int `json:"expired"`
}

// Stats counts active and expired records at now.
func (t *Table) Stats(now time.Time) Stats {
	s := Stats{Total: t.Len()}
	for _, rec := range t.records {
		if rec.IsExpired(now) {
			s.Expired++
		} else {
			s.Active++
		}
	}
	return s
}
