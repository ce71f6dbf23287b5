// Package tokenfile persists the token table as a JSON document.
package tokenfile

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/yndnr/tokenadm/internal/core/domain"
)

const (
	indent = "    "

	// DefaultClientName replaces missing or unusable client names.
	DefaultClientName = "N/A"
)

// Issue describes a problem found in a single record while decoding.
type Issue struct {
	Token   string
	Problem string
	Skipped bool // Record was dropped rather than repaired
}

func (i Issue) String() string {
	if i.Skipped {
		return fmt.Sprintf("%s: %s (record skipped)", domain.MaskToken(i.Token), i.Problem)
	}
	return fmt.Sprintf("%s: %s", domain.MaskToken(i.Token), i.Problem)
}

var errTrailingData = errors.New("unexpected data after top-level value")

// Decode parses a token document.
// Blank input, null and an empty array decode to an empty table.
func Decode(data []byte) (*domain.Table, []Issue, error) {
	table := domain.NewTable()
	if len(bytes.TrimSpace(data)) == 0 {
		return table, nil, nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	start, err := dec.Token()
	if err != nil {
		return nil, nil, err
	}

	switch start {
	case nil:
		// null
	case json.Delim('['):
		// Empty tables used to be written as [].
		if dec.More() {
			return nil, nil, errors.New("top-level array must be empty")
		}
		if _, err := dec.Token(); err != nil {
			return nil, nil, err
		}
	case json.Delim('{'):
		issues, err := decodeObject(dec, table)
		if err != nil {
			return nil, nil, err
		}
		if err := expectEOF(dec); err != nil {
			return nil, nil, err
		}
		return table, issues, nil
	default:
		return nil, nil, fmt.Errorf("top-level value must be an object, got %v", start)
	}

	if err := expectEOF(dec); err != nil {
		return nil, nil, err
	}
	return table, nil, nil
}

func decodeObject(dec *json.Decoder, table *domain.Table) ([]Issue, error) {
	var issues []Issue
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected object key %v", keyTok)
		}

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return nil, fmt.Errorf("record %s: %w", domain.MaskToken(key), err)
		}

		rec, recIssues := decodeRecord(key, raw)
		issues = append(issues, recIssues...)
		if rec != nil {
			table.Put(key, rec)
		}
	}
	// closing brace
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return issues, nil
}

func expectEOF(dec *json.Decoder) error {
	if _, err := dec.Token(); err != io.EOF {
		if err == nil {
			return errTrailingData
		}
		return err
	}
	return nil
}

// decodeRecord validates one record. A nil record means it was skipped.
func decodeRecord(key string, raw json.RawMessage) (*domain.Token, []Issue) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil || fields == nil {
		return nil, []Issue{{Token: key, Problem: "record is not an object", Skipped: true}}
	}

	var issues []Issue
	rec := &domain.Token{}

	expire, problem := decodeExpire(fields["expire"])
	switch {
	case problem == "":
		rec.Expire = expire
	case fields["expire"] == nil || isNull(fields["expire"]):
		issues = append(issues, Issue{Token: key, Problem: problem})
	default:
		return nil, []Issue{{Token: key, Problem: problem, Skipped: true}}
	}

	var name string
	if rawName, ok := fields["nameClient"]; ok && json.Unmarshal(rawName, &name) == nil && strings.TrimSpace(name) != "" {
		rec.NameClient = name
	} else {
		rec.NameClient = DefaultClientName
		issues = append(issues, Issue{Token: key, Problem: "nameClient missing or invalid, using " + DefaultClientName})
	}

	return rec, issues
}

// decodeExpire returns the integer timestamp or a problem description.
func decodeExpire(raw json.RawMessage) (int64, string) {
	if raw == nil || isNull(raw) {
		return 0, "expire missing, using 0"
	}

	var n json.Number
	if bytes.HasPrefix(bytes.TrimSpace(raw), []byte(`"`)) || json.Unmarshal(raw, &n) != nil {
		return 0, "expire is not a number"
	}
	if i, err := n.Int64(); err == nil {
		return i, ""
	}
	f, err := n.Float64()
	if err != nil || f != math.Trunc(f) || f >= math.MaxInt64 || f < math.MinInt64 {
		return 0, "expire is not an integer"
	}
	return int64(f), ""
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

// Encode renders the table as an indented JSON document with a trailing
// newline. Keys keep table order; slashes and HTML characters are not escaped.
func Encode(table *domain.Table) ([]byte, error) {
	var buf bytes.Buffer
	entries := table.Entries()
	if len(entries) == 0 {
		buf.WriteString("{}\n")
		return buf.Bytes(), nil
	}

	buf.WriteString("{\n")
	for i, e := range entries {
		key, err := marshal(e.Token)
		if err != nil {
			return nil, err
		}
		rec, err := marshal(e.Record)
		if err != nil {
			return nil, err
		}

		buf.WriteString(indent)
		buf.Write(key)
		buf.WriteString(": ")
		buf.Write(rec)
		if i < len(entries)-1 {
			buf.WriteByte(',')
		}
		buf.WriteByte('\n')
	}
	buf.WriteString("}\n")
	return buf.Bytes(), nil
}

func marshal(v any) ([]byte, error) {
	var b bytes.Buffer
	enc := json.NewEncoder(&b)
	enc.SetEscapeHTML(false)
	enc.SetIndent(indent, indent)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(b.Bytes(), []byte("\n")), nil
}
