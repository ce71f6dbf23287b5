package output

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/yndnr/tokenadm/internal/core/domain"
)

func TestTokenList_Empty(t *testing.T) {
	var buf bytes.Buffer
	NewConsole(&buf, false).TokenList(nil, time.Now())

	if got := buf.String(); got != "⚠ No tokens registered\n" {
		t.Errorf("TokenList(nil) = %q", got)
	}
}

func TestTokenList_Entries(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)
	table := domain.NewTable()
	table.Put("abcdefghijklmnopqrstuvwxyz012345", &domain.Token{Expire: now.Unix() + 3600, NameClient: "Alice"})
	table.Put("short", &domain.Token{Expire: now.Unix() - 1, NameClient: "Bob"})

	var buf bytes.Buffer
	NewConsole(&buf, false).TokenList(table.Entries(), now)
	out := buf.String()

	for _, want := range []string{
		"Token list:",
		"Token: abcdefghijklmnop...yz012345",
		"  Client: Alice",
		"  Status: ACTIVE",
		"Token: shor...",
		"  Client: Bob",
		"  Status: EXPIRED",
		"  Expires: " + domain.FormatDate(now.Unix()+3600),
	} {
		if !strings.Contains(out, want) {
			t.Errorf("listing missing %q:\n%s", want, out)
		}
	}

	if strings.Contains(out, "abcdefghijklmnopqrstuvwxyz012345") {
		t.Error("listing must not show the full token")
	}
	if strings.Index(out, "Alice") > strings.Index(out, "Bob") {
		t.Error("listing should follow table order")
	}
	if n := strings.Count(out, strings.Repeat("-", SeparatorWidth)); n != 3 {
		t.Errorf("separator count = %d, want 3", n)
	}
}

func TestExpiredList(t *testing.T) {
	entries := []domain.Entry{
		{Token: "t1", Record: &domain.Token{Expire: 100, NameClient: "Old"}},
		{Token: "t2", Record: &domain.Token{Expire: 200, NameClient: "Older"}},
	}

	var buf bytes.Buffer
	NewConsole(&buf, false).ExpiredList(entries)
	out := buf.String()

	if !strings.Contains(out, "Expired tokens found: 2") {
		t.Errorf("missing count:\n%s", out)
	}
	want := "- Old (expired at " + domain.FormatDate(100) + ")\n"
	if !strings.Contains(out, want) {
		t.Errorf("missing %q:\n%s", want, out)
	}
}

func TestStats(t *testing.T) {
	var buf bytes.Buffer
	NewConsole(&buf, false).Stats(domain.Stats{Total: 3, Active: 1, Expired: 2})

	want := "Total tokens: 3\nActive tokens: 1\nExpired tokens: 2\n"
	if got := buf.String(); got != want {
		t.Errorf("Stats() = %q, want %q", got, want)
	}
}
