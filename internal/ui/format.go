package ui

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/five82/storedash/internal/stores"
)

var printer = message.NewPrinter(language.Korean)

// formatWon renders an amount in won with digit grouping, e.g. "12,000원".
func formatWon(v int64) string {
	return printer.Sprintf("%d원", v)
}

// formatCount renders a count with digit grouping.
func formatCount(v int64) string {
	return printer.Sprintf("%d", v)
}

func periodLabel(year, month int) string {
	return fmt.Sprintf("%d년 %d월", year, month)
}

func monthLabel(month int) string {
	return fmt.Sprintf("%d월", month)
}

// statusLine renders a store status for a section footer. It is empty when
// the status has nothing to say.
func statusLine(st Styles, status stores.Status) string {
	switch {
	case status.Busy:
		return st.Badge(badgeBusy).Render("불러오는 중")
	case status.HasError():
		return st.DangerText.Render(status.Error)
	default:
		return ""
	}
}

// truncate shortens s to at most width runes, marking the cut.
func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	runes := []rune(strings.TrimSpace(s))
	if len(runes) <= width {
		return string(runes)
	}
	if width == 1 {
		return "…"
	}
	return string(runes[:width-1]) + "…"
}
