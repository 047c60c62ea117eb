package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/storedash/internal/logtail"
)

const (
	problemsScanLines = 500
	problemsShown     = 20
)

// problemLine renders one warning as "15:04:05 store op error".
func problemLine(st Styles, e logtail.Entry) string {
	when := "--:--:--"
	if !e.Time.IsZero() {
		when = e.Time.Local().Format("15:04:05")
	}
	level := st.WarningText.Render(e.Level)
	if e.Level == "ERROR" {
		level = st.DangerText.Render(e.Level)
	}
	detail := e.Attr("error")
	if detail == "" {
		detail = e.Msg
	}
	return fmt.Sprintf("%s %s %s %s %s",
		st.FaintText.Render(when),
		level,
		st.AccentText.Render(e.Attr("store")),
		st.Text.Render(e.Attr("op")),
		st.MutedText.Render(detail))
}

// renderProblems renders the recent warnings overlay, newest last.
func (m Model) renderProblems() string {
	st := m.theme.Styles()

	var b strings.Builder
	b.WriteString(st.Text.Bold(true).Render("Recent request failures"))
	b.WriteString("\n")
	b.WriteString(st.FaintText.Render(strings.Repeat("─", 30)))
	b.WriteString("\n\n")

	switch {
	case m.problemsErr != nil:
		b.WriteString(st.DangerText.Render(m.problemsErr.Error()))
	case len(m.problems) == 0:
		b.WriteString(st.MutedText.Render("No warnings in " + m.logFile))
	default:
		entries := m.problems
		if len(entries) > problemsShown {
			entries = entries[len(entries)-problemsShown:]
		}
		lines := make([]string, 0, len(entries))
		for _, e := range entries {
			lines = append(lines, problemLine(st, e))
		}
		b.WriteString(strings.Join(lines, "\n"))
	}

	width := m.width - 4
	if width < 40 {
		width = 40
	}
	modal := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.theme.Warning)).
		Padding(1, 2).
		Width(width)

	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		modal.Render(b.String()),
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(lipgloss.Color(m.theme.Background)),
	)
}
