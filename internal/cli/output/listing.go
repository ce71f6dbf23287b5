package output

import (
	"fmt"
	"time"

	"github.com/yndnr/tokenadm/internal/core/domain"
)

// Status tags shown next to each token.
const (
	StatusActive  = "ACTIVE"
	StatusExpired = "EXPIRED"
)

// TokenList writes every entry with its masked token, client, expiry and
// status. An empty list prints a warning instead.
func (c *Console) TokenList(entries []domain.Entry, now time.Time) {
	if len(entries) == 0 {
		c.Warning("No tokens registered")
		return
	}

	c.Section("Token list:")
	c.Separator()
	for _, e := range entries {
		status := c.Good(StatusActive)
		if e.Record.IsExpired(now) {
			status = c.Bad(StatusExpired)
		}

		c.Printf("%s%s\n", c.Label("Token: "), domain.MaskToken(e.Token))
		c.Printf("  Client: %s\n", c.Highlight(e.Record.NameClient))
		c.Printf("  Expires: %s\n", domain.FormatDate(e.Record.Expire))
		c.Printf("  Status: %s\n", status)
		c.Separator()
	}
}

// ExpiredList writes the summary shown before a bulk cleanup.
func (c *Console) ExpiredList(entries []domain.Entry) {
	c.Printf("\n%s\n\n", c.Label(fmt.Sprintf("Expired tokens found: %d", len(entries))))
	for _, e := range entries {
		c.Printf("- %s (expired at %s)\n", e.Record.NameClient, domain.FormatDate(e.Record.Expire))
	}
}

// Stats writes the total, active and expired counts.
func (c *Console) Stats(s domain.Stats) {
	c.Printf("%s%d\n", c.Highlight("Total tokens: "), s.Total)
	c.Printf("%s%d\n", c.Good("Active tokens: "), s.Active)
	c.Printf("%s%d\n", c.Bad("Expired tokens: "), s.Expired)
}
