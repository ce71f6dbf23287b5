package menu

import (
	"fmt"

	"github.com/yndnr/tokenadm/internal/core/domain"
	"github.com/yndnr/tokenadm/internal/core/service"
)

// fail reports an operation error to the operator. The loop goes on.
func (m *Menu) fail(err error) {
	m.console.Error("%s", describe(err))
	m.logger.Debug("operation failed",
		"code", domain.GetErrorCode(err),
		"error", err,
	)
}

func (m *Menu) list(table *domain.Table) {
	m.console.Header("List Tokens")
	m.console.TokenList(table.Entries(), m.service.Now())
}

func (m *Menu) add(table *domain.Table) error {
	m.console.Header("Add New Token")

	input, err := m.prompt("Enter the token (leave blank to generate one): ")
	if err != nil {
		return err
	}

	tok, generated, err := m.service.ResolveToken(table, input)
	if generated && tok != "" {
		m.console.Info("Generated token: %s", tok)
	}
	if err != nil {
		m.fail(err)
		return nil
	}

	name, err := m.prompt("Client name: ")
	if err != nil {
		return err
	}
	if name == "" {
		m.fail(domain.ErrClientNameRequired)
		return nil
	}

	days, err := m.prompt("Days until expiration (e.g. 365): ")
	if err != nil {
		return err
	}

	resp, err := m.service.Add(table, service.AddRequest{
		Token:      tok,
		NameClient: name,
		Days:       days,
	})
	if err != nil {
		m.fail(err)
		return nil
	}

	m.console.Success("Token added")
	m.console.Info("Token: %s", resp.Token)
	m.console.Info("Expires: %s", domain.FormatDate(resp.Record.Expire))
	return nil
}

func (m *Menu) remove(table *domain.Table) error {
	m.console.Header("Remove Token")

	if table.IsEmpty() {
		m.console.Warning("No tokens to remove")
		return nil
	}
	m.console.TokenList(table.Entries(), m.service.Now())

	tok, err := m.prompt("\nEnter the full token to remove: ")
	if err != nil {
		return err
	}
	rec, err := m.service.Lookup(table, tok)
	if err != nil {
		m.fail(err)
		return nil
	}

	answer, err := m.prompt(fmt.Sprintf("Are you sure you want to remove the token of '%s'? (y/n): ", rec.NameClient))
	if err != nil {
		return err
	}
	if !confirmed(answer) {
		m.console.Info("Operation cancelled")
		return nil
	}

	if err := m.service.Remove(table, tok); err != nil {
		m.fail(err)
		return nil
	}
	m.console.Success("Token removed")
	return nil
}

func (m *Menu) update(table *domain.Table) error {
	m.console.Header("Update Token")

	if table.IsEmpty() {
		m.console.Warning("No tokens to update")
		return nil
	}
	m.console.TokenList(table.Entries(), m.service.Now())

	tok, err := m.prompt("\nEnter the full token to update: ")
	if err != nil {
		return err
	}
	rec, err := m.service.Lookup(table, tok)
	if err != nil {
		m.fail(err)
		return nil
	}

	m.console.Section("Selected token: " + rec.NameClient)
	m.console.Println("1. Update client name")
	m.console.Println("2. Extend expiration")
	m.console.Println("3. Set new expiration date")

	choice, err := m.prompt("\nChoose an option: ")
	if err != nil {
		return err
	}

	switch choice {
	case "1":
		return m.rename(table, tok)
	case "2":
		return m.extend(table, tok)
	case "3":
		return m.setExpiry(table, tok)
	default:
		m.console.Error("Invalid option")
		return nil
	}
}

func (m *Menu) rename(table *domain.Table, tok string) error {
	name, err := m.prompt("New client name: ")
	if err != nil {
		return err
	}
	changed, err := m.service.Rename(table, tok, name)
	if err != nil {
		m.fail(err)
		return nil
	}
	if changed {
		m.console.Success("Client name updated")
	}
	return nil
}

func (m *Menu) extend(table *domain.Table, tok string) error {
	input, err := m.prompt("How many days to add? ")
	if err != nil {
		return err
	}
	rec, err := m.service.Extend(table, tok, input)
	if err != nil {
		m.fail(err)
		return nil
	}
	m.console.Success("Expiration extended by %s days", input)
	m.console.Info("New expiration date: %s", domain.FormatDate(rec.Expire))
	return nil
}

func (m *Menu) setExpiry(table *domain.Table, tok string) error {
	input, err := m.prompt("Days from today: ")
	if err != nil {
		return err
	}
	rec, err := m.service.SetExpiry(table, tok, input)
	if err != nil {
		m.fail(err)
		return nil
	}
	m.console.Success("New expiration date set")
	m.console.Info("Expires: %s", domain.FormatDate(rec.Expire))
	return nil
}

func (m *Menu) cleanExpired(table *domain.Table) error {
	m.console.Header("Clean Expired Tokens")

	expired := m.service.Expired(table)
	if len(expired) == 0 {
		m.console.Info("No expired tokens found")
		return nil
	}
	m.console.ExpiredList(expired)

	answer, err := m.prompt("\nRemove all expired tokens? (y/n): ")
	if err != nil {
		return err
	}
	if !confirmed(answer) {
		m.console.Info("Operation cancelled")
		return nil
	}

	removed := m.service.RemoveAll(table, expired)
	m.console.Success("%d token(s) removed", removed)
	return nil
}

func (m *Menu) stats(table *domain.Table) {
	m.console.Header("Statistics")
	m.console.Stats(m.service.Stats(table))
}
