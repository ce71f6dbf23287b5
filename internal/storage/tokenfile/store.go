// Package tokenfile persists the token table as a JSON document.
package tokenfile

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/yndnr/tokenadm/internal/core/domain"
	"github.com/yndnr/tokenadm/internal/telemetry/logger"
)

// DefaultPath is the token file location relative to the working directory.
const DefaultPath = "database/tokens.lotus"

const (
	dirPerm  = 0755
	filePerm = 0644
)

// Store loads and saves the token file.
type Store struct {
	path   string
	logger logger.Logger

	// digest of the bytes last read or written by this process
	digest string
	// whether digest holds a prior observation, including an absent file
	seen bool
	// set by Load when the file differs from what this process last saw
	diverged bool
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger for the store.
func WithLogger(l logger.Logger) Option {
	return func(s *Store) {
		s.logger = l
	}
}

// New creates a Store for path. An empty path uses DefaultPath.
func New(path string, opts ...Option) *Store {
	if path == "" {
		path = DefaultPath
	}
	s := &Store{
		path:   path,
		logger: logger.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Path returns the token file path.
func (s *Store) Path() string {
	return s.path
}

// Load reads the token file.
// A missing file yields an empty table and no error. A file that cannot
// be parsed yields a nil table and an error wrapping domain.ErrStorageParse.
func (s *Store) Load() (*domain.Table, []Issue, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		s.track(nil)
		return domain.NewTable(), nil, nil
	}
	// Failures are returned to the caller, which reports them to the operator.
	if err != nil {
		s.logger.Debug("failed to read token file",
			"path", s.path,
			"error", err,
		)
		return nil, nil, domain.ErrStorageRead.WithCause(err)
	}
	s.track(data)

	table, issues, err := Decode(data)
	if err != nil {
		s.logger.Debug("failed to parse token file",
			"path", s.path,
			"error", err,
		)
		return nil, nil, domain.ErrStorageParse.WithCause(err)
	}

	for _, issue := range issues {
		s.logger.Debug("invalid token record",
			"path", s.path,
			"token", issue.Token,
			"problem", issue.Problem,
			"skipped", issue.Skipped,
		)
	}
	s.logger.Debug("token file loaded",
		"path", s.path,
		"records", table.Len(),
	)
	return table, issues, nil
}

// Save writes the table to the token file, creating the parent directory
// if needed. The content is written to a temp file and renamed into place.
func (s *Store) Save(table *domain.Table) error {
	data, err := Encode(table)
	if err != nil {
		return s.writeError(fmt.Errorf("encode: %w", err))
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return s.writeError(fmt.Errorf("create dir: %w", err))
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return s.writeError(fmt.Errorf("create temp file: %w", err))
	}
	tempPath := tmp.Name()
	defer os.Remove(tempPath)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return s.writeError(fmt.Errorf("write: %w", err))
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return s.writeError(fmt.Errorf("sync: %w", err))
	}
	if err := tmp.Close(); err != nil {
		return s.writeError(fmt.Errorf("close: %w", err))
	}
	if err := os.Chmod(tempPath, filePerm); err != nil {
		return s.writeError(fmt.Errorf("chmod: %w", err))
	}
	if err := os.Rename(tempPath, s.path); err != nil {
		return s.writeError(fmt.Errorf("rename: %w", err))
	}

	s.track(data)
	s.diverged = false
	s.logger.Debug("token file saved",
		"path", s.path,
		"records", table.Len(),
	)
	return nil
}

// Diverged reports whether the last Load found content this process did
// not write or read before, i.e. the file was changed by someone else.
func (s *Store) Diverged() bool {
	return s.diverged
}

func (s *Store) track(data []byte) {
	var digest string
	if data != nil {
		sum := sha256.Sum256(data)
		digest = hex.EncodeToString(sum[:])
	}
	s.diverged = s.seen && digest != s.digest
	s.seen = true
	s.digest = digest
}

func (s *Store) writeError(err error) error {
	s.logger.Debug("failed to save token file",
		"path", s.path,
		"error", err,
	)
	return domain.ErrStorageWrite.WithCause(err)
}
