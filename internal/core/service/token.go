// Package service provides domain services for tokenadm.
package service

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/yndnr/tokenadm/internal/core/domain"
	"github.com/yndnr/tokenadm/internal/telemetry/logger"
	"github.com/yndnr/tokenadm/pkg/token"
)

// Generator produces new token identifiers.
type Generator func() (string, error)

// Clock returns the current time.
type Clock func() time.Time

// TokenService applies token operations to a table.
type TokenService struct {
	generate Generator
	now      Clock
	logger   logger.Logger
}

// TokenServiceConfig holds configuration for TokenService.
type TokenServiceConfig struct {
	// Generator creates identifiers for blank token input (default: token.Generate).
	Generator Generator

	// Clock supplies the current time (default: time.Now).
	Clock Clock

	// Logger receives audit records (default: logger.Default()).
	Logger logger.Logger
}

// NewTokenService creates a new TokenService.
func NewTokenService(cfg *TokenServiceConfig) *TokenService {
	s := &TokenService{
		generate: token.Generate,
		now:      time.Now,
		logger:   logger.Default(),
	}
	if cfg == nil {
		return s
	}
	if cfg.Generator != nil {
		s.generate = cfg.Generator
	}
	if cfg.Clock != nil {
		s.now = cfg.Clock
	}
	if cfg.Logger != nil {
		s.logger = cfg.Logger
	}
	return s
}

// Now returns the service clock's current time.
func (s *TokenService) Now() time.Time {
	return s.now()
}

// ParseDays parses a day count entered by the operator.
// Only non-negative integers are accepted, bounded so that adding them
// to base cannot overflow.
func ParseDays(input string, base int64) (int64, error) {
	input = strings.TrimSpace(input)
	days, err := strconv.ParseInt(input, 10, 64)
	if err != nil || days < 0 {
		return 0, domain.ErrInvalidDays.WithDetails(strconv.Quote(input))
	}
	if limit := domain.MaxDaysAfter(base); days > limit {
		return 0, domain.ErrInvalidDays.WithDetails(fmt.Sprintf("%s exceeds %d", strconv.Quote(input), limit))
	}
	return days, nil
}

// ResolveToken returns the token to register for the operator's input.
// Blank input yields a generated identifier. A token already present in
// the table is rejected; generation is not retried.
func (s *TokenService) ResolveToken(table *domain.Table, input string) (tok string, generated bool, err error) {
	tok = strings.TrimSpace(input)
	if tok == "" {
		tok, err = s.generate()
		if err != nil {
			return "", false, domain.ErrTokenGeneration.WithCause(err)
		}
		generated = true
	}
	if table.Has(tok) {
		return tok, generated, domain.ErrTokenConflict
	}
	return tok, generated, nil
}

// AddRequest contains parameters for Add.
type AddRequest struct {
	Token      string // Empty to generate one
	NameClient string
	Days       string // Raw operator input
}

// AddResponse contains the result of Add.
type AddResponse struct {
	Token     string
	Generated bool
	Record    *domain.Token
}

// Add validates req and inserts a new record.
// The table is left untouched on any error.
func (s *TokenService) Add(table *domain.Table, req AddRequest) (*AddResponse, error) {
	tok, generated, err := s.ResolveToken(table, req.Token)
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(req.NameClient)
	if name == "" {
		return nil, domain.ErrClientNameRequired
	}

	days, err := ParseDays(req.Days, s.now().Unix())
	if err != nil {
		return nil, err
	}

	rec := domain.NewToken(name, days, s.now())
	table.Put(tok, rec)

	s.logger.Info("token added",
		"token", tok,
		"client", name,
		"expire", rec.Expire,
	)

	return &AddResponse{Token: tok, Generated: generated, Record: rec}, nil
}

// Lookup returns the record for tok or ErrTokenNotFound.
func (s *TokenService) Lookup(table *domain.Table, tok string) (*domain.Token, error) {
	rec, ok := table.Get(tok)
	if !ok {
		return nil, domain.ErrTokenNotFound
	}
	return rec, nil
}

// Remove deletes tok from the table.
func (s *TokenService) Remove(table *domain.Table, tok string) error {
	rec, ok := table.Get(tok)
	if !ok {
		return domain.ErrTokenNotFound
	}
	table.Delete(tok)

	s.logger.Info("token removed",
		"token", tok,
		"client", rec.NameClient,
	)
	return nil
}

// Rename sets a new client name. A blank name is ignored and reported
// as unchanged.
func (s *TokenService) Rename(table *domain.Table, tok, name string) (changed bool, err error) {
	rec, err := s.Lookup(table, tok)
	if err != nil {
		return false, err
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return false, nil
	}

	old := rec.NameClient
	rec.NameClient = name

	s.logger.Info("token renamed",
		"token", tok,
		"from", old,
		"to", name,
	)
	return true, nil
}

// Extend moves the expiration of tok by the given number of days.
func (s *TokenService) Extend(table *domain.Table, tok, daysInput string) (*domain.Token, error) {
	rec, err := s.Lookup(table, tok)
	if err != nil {
		return nil, err
	}
	days, err := ParseDays(daysInput, rec.Expire)
	if err != nil {
		return nil, err
	}

	rec.Extend(days)

	s.logger.Info("token extended",
		"token", tok,
		"days", days,
		"expire", rec.Expire,
	)
	return rec, nil
}

// SetExpiry sets the expiration of tok to the given number of days from now.
func (s *TokenService) SetExpiry(table *domain.Table, tok, daysInput string) (*domain.Token, error) {
	rec, err := s.Lookup(table, tok)
	if err != nil {
		return nil, err
	}
	days, err := ParseDays(daysInput, s.now().Unix())
	if err != nil {
		return nil, err
	}

	rec.Expire = domain.ExpireAfter(s.now(), days)

	s.logger.Info("token expiry set",
		"token", tok,
		"days", days,
		"expire", rec.Expire,
	)
	return rec, nil
}

// Expired returns the records that are expired now.
func (s *TokenService) Expired(table *domain.Table) []domain.Entry {
	return table.Expired(s.now())
}

// RemoveAll deletes every listed entry and returns how many were removed.
func (s *TokenService) RemoveAll(table *domain.Table, entries []domain.Entry) int {
	removed := 0
	for _, e := range entries {
		if table.Delete(e.Token) {
			removed++
		}
	}

	s.logger.Info("expired tokens removed",
		"count", removed,
	)
	return removed
}

// Stats counts active and expired records.
func (s *TokenService) Stats(table *domain.Table) domain.Stats {
	return table.Stats(s.now())
}
