package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/five82/storedash/internal/state"
)

// RenderReport writes the page for d to w in the named theme. Colors are
// dropped automatically when w is not a terminal.
func RenderReport(w io.Writer, snap state.Snapshot, d state.Domain, themeName string) error {
	st := GetTheme(themeName).Styles()

	var b strings.Builder
	b.WriteString(reportHeader(snap, d, st))
	b.WriteString("\n\n")
	b.WriteString(renderSections(st, domainSections(snap, d, st)))
	b.WriteString("\n")

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

func reportHeader(snap state.Snapshot, d state.Domain, st Styles) string {
	return st.Title.Render(domainTitle(d)) + "  " +
		st.MutedText.Render(storeLabel(snap)+" · "+periodLabel(snap.Selection.Year, snap.Selection.Month))
}

func domainTitle(d state.Domain) string {
	switch d {
	case state.DomainStores:
		return "매장"
	case state.DomainMealKits:
		return "밀키트"
	case state.DomainLaundry:
		return "세탁용품"
	case state.DomainAppliances:
		return "가전"
	case state.DomainOrders:
		return "매출"
	case state.DomainUsers:
		return "고객"
	default:
		return d.String()
	}
}

// storeLabel names the selected store, falling back to its id.
func storeLabel(snap state.Snapshot) string {
	if s := snap.StoreList.Selected; s != nil {
		return fmt.Sprintf("%s (#%d)", s.StoreName, s.StoreID)
	}
	if snap.Selection.StoreID == 0 {
		return "전체 매장"
	}
	return fmt.Sprintf("매장 #%d", snap.Selection.StoreID)
}
