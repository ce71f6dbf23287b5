package domain

import (
	"testing"
	"time"
)

func TestTable_PutKeepsInsertionOrder(t *testing.T) {
	tbl := NewTable()
	tbl.Put("c", &Token{Expire: 3, NameClient: "C"})
	tbl.Put("a", &Token{Expire: 1, NameClient: "A"})
	tbl.Put("b", &Token{Expire: 2, NameClient: "B"})
	tbl.Put("a", &Token{Expire: 4, NameClient: "A2"})

	entries := tbl.Entries()
	want := []string{"c", "a", "b"}
	if len(entries) != len(want) {
		t.Fatalf("len(Entries) = %d, want %d", len(entries), len(want))
	}
	for i, e := range entries {
		if e.Token != want[i] {
			t.Errorf("Entries()[%d] = %q, want %q", i, e.Token, want[i])
		}
	}
	if rec, _ := tbl.Get("a"); rec.NameClient != "A2" {
		t.Errorf("replaced record name = %q, want A2", rec.NameClient)
	}
}

func TestTable_Delete(t *testing.T) {
	tbl := NewTable()
	tbl.Put("a", &Token{NameClient: "A"})
	tbl.Put("b", &Token{NameClient: "B"})

	if tbl.Delete("missing") {
		t.Error("Delete(missing) = true")
	}
	if tbl.Len() != 2 {
		t.Errorf("Len() = %d after deleting a missing token", tbl.Len())
	}
	if !tbl.Delete("a") {
		t.Error("Delete(a) = false")
	}
	if tbl.Has("a") || tbl.Len() != 1 || tbl.Entries()[0].Token != "b" {
		t.Error("Delete(a) left the table inconsistent")
	}
}

func TestTable_ExpiredAndStats(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)
	tbl := NewTable()
	tbl.Put("old", &Token{Expire: now.Unix() - 3600, NameClient: "Old"})
	tbl.Put("new", &Token{Expire: now.Unix() + 3600, NameClient: "New"})
	tbl.Put("legacy", &Token{Expire: (now.Unix() - 60) * 1000, NameClient: "Legacy"})

	expired := tbl.Expired(now)
	if len(expired) != 2 || expired[0].Token != "old" || expired[1].Token != "legacy" {
		t.Errorf("Expired() = %+v", expired)
	}

	stats := tbl.Stats(now)
	if stats != (Stats{Total: 3, Active: 1, Expired: 2}) {
		t.Errorf("Stats() = %+v", stats)
	}
}

func TestTable_CloneAndEqual(t *testing.T) {
	tbl := NewTable()
	tbl.Put("a", &Token{Expire: 1, NameClient: "A"})
	tbl.Put("b", &Token{Expire: 2, NameClient: "B"})

	c := tbl.Clone()
	if !tbl.Equal(c) {
		t.Fatal("clone should equal original")
	}

	rec, _ := c.Get("a")
	rec.NameClient = "changed"
	if tbl.Equal(c) {
		t.Error("mutating the clone should not affect the original")
	}
	if tbl.Equal(nil) {
		t.Error("Equal(nil) = true")
	}
}
