package tokenfile

import (
	"strings"
	"testing"

	"github.com/yndnr/tokenadm/internal/core/domain"
)

func TestDecode_EmptyForms(t *testing.T) {
	for _, input := range []string{"", "  \n", "null", "[]", "{}", " [ ] \n"} {
		t.Run(input, func(t *testing.T) {
			table, issues, err := Decode([]byte(input))
			if err != nil {
				t.Fatalf("Decode(%q) error = %v", input, err)
			}
			if !table.IsEmpty() || len(issues) != 0 {
				t.Errorf("Decode(%q) = %d records, %d issues", input, table.Len(), len(issues))
			}
		})
	}
}

func TestDecode_ParseErrors(t *testing.T) {
	tests := []string{
		"{",
		"not json",
		`{"a": {"expire": 1, "nameClient": "A"}`,
		`[1, 2]`,
		`"string"`,
		`42`,
		`{"a": {"expire": 1, "nameClient": "A"}} {}`,
	}

	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			if _, _, err := Decode([]byte(input)); err == nil {
				t.Errorf("Decode(%q) should fail", input)
			}
		})
	}
}

func TestDecode_KeepsFileOrder(t *testing.T) {
	input := `{
    "zeta": {"expire": 3, "nameClient": "Z"},
    "alpha": {"expire": 1, "nameClient": "A"},
    "mid": {"expire": 2, "nameClient": "M"}
}`
	table, issues, err := Decode([]byte(input))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if len(issues) != 0 {
		t.Errorf("unexpected issues: %v", issues)
	}

	want := []string{"zeta", "alpha", "mid"}
	for i, e := range table.Entries() {
		if e.Token != want[i] {
			t.Errorf("Entries()[%d] = %q, want %q", i, e.Token, want[i])
		}
	}
}

func TestDecode_FieldValidation(t *testing.T) {
	tests := []struct {
		name        string
		record      string
		wantKept    bool
		wantExpire  int64
		wantName    string
		wantIssues  int
		wantSkipped bool
	}{
		{"valid", `{"expire": 1700000000, "nameClient": "Acme"}`, true, 1700000000, "Acme", 0, false},
		{"milliseconds", `{"expire": 1700000000000, "nameClient": "Acme"}`, true, 1700000000000, "Acme", 0, false},
		{"exponent integer", `{"expire": 1.7e9, "nameClient": "Acme"}`, true, 1700000000, "Acme", 0, false},
		{"extra fields ignored", `{"expire": 5, "nameClient": "Acme", "note": "x"}`, true, 5, "Acme", 0, false},
		{"missing expire", `{"nameClient": "Acme"}`, true, 0, "Acme", 1, false},
		{"null expire", `{"expire": null, "nameClient": "Acme"}`, true, 0, "Acme", 1, false},
		{"missing name", `{"expire": 5}`, true, 5, DefaultClientName, 1, false},
		{"blank name", `{"expire": 5, "nameClient": "  "}`, true, 5, DefaultClientName, 1, false},
		{"numeric name", `{"expire": 5, "nameClient": 12}`, true, 5, DefaultClientName, 1, false},
		{"fractional expire", `{"expire": 1.5, "nameClient": "Acme"}`, false, 0, "", 1, true},
		{"string expire", `{"expire": "1700000000", "nameClient": "Acme"}`, false, 0, "", 1, true},
		{"bool expire", `{"expire": true, "nameClient": "Acme"}`, false, 0, "", 1, true},
		{"not an object", `"oops"`, false, 0, "", 1, true},
		{"null record", `null`, false, 0, "", 1, true},
		{"array record", `[1]`, false, 0, "", 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := `{"tok": ` + tt.record + `, "other": {"expire": 9, "nameClient": "O"}}`
			table, issues, err := Decode([]byte(input))
			if err != nil {
				t.Fatalf("Decode() error = %v", err)
			}

			if !table.Has("other") {
				t.Error("valid sibling record was lost")
			}
			rec, ok := table.Get("tok")
			if ok != tt.wantKept {
				t.Fatalf("record kept = %v, want %v", ok, tt.wantKept)
			}
			if ok {
				if rec.Expire != tt.wantExpire {
					t.Errorf("Expire = %d, want %d", rec.Expire, tt.wantExpire)
				}
				if rec.NameClient != tt.wantName {
					t.Errorf("NameClient = %q, want %q", rec.NameClient, tt.wantName)
				}
			}
			if len(issues) != tt.wantIssues {
				t.Fatalf("issues = %v, want %d", issues, tt.wantIssues)
			}
			if tt.wantIssues > 0 && issues[0].Skipped != tt.wantSkipped {
				t.Errorf("Skipped = %v, want %v", issues[0].Skipped, tt.wantSkipped)
			}
		})
	}
}

func TestEncode_Format(t *testing.T) {
	table := domain.NewTable()
	table.Put("b/token", &domain.Token{Expire: 1700000000, NameClient: "Bob & Co <x>"})
	table.Put("a", &domain.Token{Expire: 1, NameClient: "Ann"})

	data, err := Encode(table)
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}

	want := `{
    "b/token": {
        "expire": 1700000000,
        "nameClient": "Bob & Co <x>"
    },
    "a": {
        "expire": 1,
        "nameClient": "Ann"
    }
}
`
	if string(data) != want {
		t.Errorf("Encode() =\n%s\nwant\n%s", data, want)
	}
}

func TestEncode_Empty(t *testing.T) {
	data, err := Encode(domain.NewTable())
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	if string(data) != "{}\n" {
		t.Errorf("Encode(empty) = %q", data)
	}
}

func TestEncodeDecode_RoundTrip(t *testing.T) {
	table := domain.NewTable()
	table.Put("5f4dcc3b5aa765d61d8327deb882cf99", &domain.Token{Expire: 1700000000, NameClient: "Acme"})
	table.Put("legacy", &domain.Token{Expire: 1700000000123, NameClient: "Ünïcode \"quoted\""})
	table.Put("c", &domain.Token{Expire: 0, NameClient: "Zero"})

	first, err := Encode(table)
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	decoded, issues, err := Decode(first)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if len(issues) != 0 {
		t.Errorf("issues = %v", issues)
	}
	if !decoded.Equal(table) {
		t.Error("decoded table differs from original")
	}

	second, err := Encode(decoded)
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	if string(first) != string(second) {
		t.Errorf("re-encoding changed the document:\n%s\nvs\n%s", first, second)
	}
}

func TestIssue_String(t *testing.T) {
	i := Issue{Token: "0123456789abcdef0123456789abcdef", Problem: "expire is not an integer", Skipped: true}
	s := i.String()
	if strings.Contains(s, i.Token) {
		t.Errorf("Issue.String() leaked the token: %q", s)
	}
	if !strings.Contains(s, "record skipped") {
		t.Errorf("Issue.String() = %q, want skip note", s)
	}
}
