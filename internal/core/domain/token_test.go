package domain

import (
	"math"
	"strings"
	"testing"
	"time"
)

func TestIsExpired_ScaleDetection(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)

	tests := []struct {
		name   string
		expire int64
		want   bool
	}{
		{"seconds in the past", now.Unix() - 3600, true},
		{"seconds in the future", now.Unix() + 3600, false},
		{"exactly now is active", now.Unix(), false},
		{"milliseconds in the future", (now.Unix() + 3600) * 1000, false},
		{"milliseconds in the past", (now.Unix() - 3600) * 1000, true},
		{"zero", 0, true},
		// 9999999999 is read as seconds (year 2286), so it is active.
		{"largest seconds value", 9_999_999_999, false},
		// 10000000000 is read as milliseconds (1970-04-26), so it is expired.
		{"smallest milliseconds value", 10_000_000_000, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsExpired(tt.expire, now); got != tt.want {
				t.Errorf("IsExpired(%d) = %v, want %v", tt.expire, got, tt.want)
			}
		})
	}
}

func TestNormalizeSeconds(t *testing.T) {
	if got := NormalizeSeconds(9_999_999_999); got != 9_999_999_999 {
		t.Errorf("NormalizeSeconds(9999999999) = %d", got)
	}
	if got := NormalizeSeconds(10_000_000_000); got != 10_000_000 {
		t.Errorf("NormalizeSeconds(10000000000) = %d", got)
	}
	if got := NormalizeSeconds(1_700_000_000_123); got != 1_700_000_000 {
		t.Errorf("NormalizeSeconds(ms) = %d", got)
	}
}

func TestFormatDate(t *testing.T) {
	sec := int64(1_700_000_000)
	want := time.Unix(sec, 0).Format(DateLayout)

	if got := FormatDate(sec); got != want {
		t.Errorf("FormatDate(%d) = %q, want %q", sec, got, want)
	}

	got := FormatDate(sec * 1000)
	if got != want+MillisecondsNote {
		t.Errorf("FormatDate(ms) = %q, want %q", got, want+MillisecondsNote)
	}
	if strings.Contains(FormatDate(sec), MillisecondsNote) {
		t.Error("FormatDate(seconds) should not carry the millisecond note")
	}
}

func TestNewToken(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)

	for _, days := range []int64{0, 1, 30, 365} {
		tok := NewToken("Alice", days, now)
		if tok.Expire != now.Unix()+days*86400 {
			t.Errorf("NewToken(%d days).Expire = %d, want %d", days, tok.Expire, now.Unix()+days*86400)
		}
		if tok.NameClient != "Alice" {
			t.Errorf("NameClient = %q", tok.NameClient)
		}
	}
}

func TestToken_Extend(t *testing.T) {
	tests := []struct {
		name   string
		expire int64
		days   int64
		want   int64
	}{
		{"seconds", 1_700_000_000, 10, 1_700_000_000 + 864_000},
		{"zero days", 1_700_000_000, 0, 1_700_000_000},
		{"milliseconds get the plain day delta", 1_700_000_000_000, 10, 1_700_000_000_000 + 864_000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tok := &Token{Expire: tt.expire, NameClient: "c"}
			tok.Extend(tt.days)
			if tok.Expire != tt.want {
				t.Errorf("Extend(%d) = %d, want %d", tt.days, tok.Expire, tt.want)
			}
		})
	}
}

func TestMaskToken(t *testing.T) {
	tests := []struct {
		token string
		want  string
	}{
		{"0123456789abcdef0123456789abcdef", "0123456789abcdef...89abcdef"},
		{"short-token", "shor..."},
		{"abc", "***"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := MaskToken(tt.token); got != tt.want {
			t.Errorf("MaskToken(%q) = %q, want %q", tt.token, got, tt.want)
		}
	}
}

func TestMaskToken_NeverShowsFullValue(t *testing.T) {
	token := "5f4dcc3b5aa765d61d8327deb882cf99"
	if MaskToken(token) == token {
		t.Error("MaskToken returned the full token")
	}
}

func TestMaxDaysAfter(t *testing.T) {
	tests := []struct {
		name string
		base int64
	}{
		{"zero", 0},
		{"seconds", 1_700_000_000},
		{"milliseconds", 1_700_000_000_000},
		{"negative clamps to zero", -5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			limit := MaxDaysAfter(tt.base)
			base := tt.base
			if base < 0 {
				base = 0
			}
			if got := base + limit*SecondsPerDay; got < base {
				t.Errorf("base + MaxDaysAfter days overflowed: %d", got)
			}
			if (math.MaxInt64-base)-limit*SecondsPerDay >= SecondsPerDay {
				t.Errorf("MaxDaysAfter(%d) = %d is not the largest safe value", tt.base, limit)
			}
		})
	}
}
