package ui

import (
	"strings"
	"testing"

	"github.com/five82/storedash/internal/stores"
)

func TestFormatWon(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{0, "0원"},
		{999, "999원"},
		{12000, "12,000원"},
		{1234567, "1,234,567원"},
	}
	for _, tt := range tests {
		if got := formatWon(tt.in); got != tt.want {
			t.Fatalf("formatWon(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestPeriodLabel(t *testing.T) {
	if got := periodLabel(2024, 5); got != "2024년 5월" {
		t.Fatalf("periodLabel = %q, want 2024년 5월", got)
	}
}

func TestStatusLine(t *testing.T) {
	st := defaultTheme().Styles()
	if got := statusLine(st, stores.Status{}); got != "" {
		t.Fatalf("statusLine(idle) = %q, want empty", got)
	}
	if got := statusLine(st, stores.Status{Error: "실패"}); !strings.Contains(got, "실패") {
		t.Fatalf("statusLine(error) = %q, want message", got)
	}
	if got := statusLine(st, stores.Status{Busy: true}); !strings.Contains(got, "불러오는 중") {
		t.Fatalf("statusLine(busy) = %q, want busy badge", got)
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in    string
		width int
		want  string
	}{
		{"불고기", 5, "불고기"},
		{"불고기 전골 밀키트", 4, "불고기…"},
		{"abc", 1, "…"},
		{"abc", 0, ""},
	}
	for _, tt := range tests {
		if got := truncate(tt.in, tt.width); got != tt.want {
			t.Fatalf("truncate(%q, %d) = %q, want %q", tt.in, tt.width, got, tt.want)
		}
	}
}
