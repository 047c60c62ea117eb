package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/storedash/internal/state"
	"github.com/five82/storedash/internal/stores"
)

// inventoryColumns sizes the meal kit table to width; the name column takes
// what is left.
func inventoryColumns(width int) []table.Column {
	nameW := width - 6 - 12 - 6 - 8 // id, price, stock, padding
	if nameW < 12 {
		nameW = 12
	}
	return []table.Column{
		{Title: "ID", Width: 6},
		{Title: "밀키트", Width: nameW},
		{Title: "가격", Width: 12},
		{Title: "재고", Width: 6},
	}
}

func (m *Model) syncInventory() {
	items := m.snapshot.MealKits.Selected
	rows := make([]table.Row, 0, len(items))
	ids := make([]int64, 0, len(items))
	for _, k := range items {
		stock := strconv.Itoa(k.MealKitCount)
		if k.MealKitCount < stores.MealKitLowStockThreshold {
			stock += "!"
		}
		rows = append(rows, table.Row{id(k.MealKitID), k.MealKitName, formatWon(k.MealKitPrice), stock})
		ids = append(ids, k.MealKitID)
	}
	m.inventory.SetRows(rows)
	m.kitIDs = ids
	if m.inventory.Cursor() >= len(rows) {
		m.inventory.SetCursor(max(len(rows)-1, 0))
	}
}

func (m *Model) syncContent() {
	if !m.ready {
		return
	}
	st := m.theme.Styles()
	sections := domainSections(m.snapshot, m.active(), st)
	if m.active() == state.DomainMealKits && len(sections) > 0 {
		// The first section is drawn by the inventory table.
		sections = sections[1:]
	}
	m.content.SetContent(renderSections(st, sections))
}

// renderMain renders the full dashboard.
func (m Model) renderMain() string {
	st := m.theme.Styles()

	var b strings.Builder
	b.WriteString(m.renderTabs(st))
	b.WriteString("\n")
	b.WriteString(m.renderStatusLine(st))
	b.WriteString("\n")

	if m.active() == state.DomainMealKits {
		inv := section{title: "밀키트 재고", status: m.snapshot.MealKits.ItemsStatus}
		if len(m.kitIDs) == 0 {
			inv.body = st.MutedText.Render("데이터가 없습니다.")
		} else {
			inv.body = m.inventory.View()
		}
		b.WriteString(inv.render(st))
		b.WriteString("\n")
	}
	b.WriteString(m.content.View())
	b.WriteString("\n")
	b.WriteString(m.renderFooter(st))
	return b.String()
}

func (m Model) renderTabs(st Styles) string {
	tabs := make([]string, 0, len(state.Domains))
	for i, d := range state.Domains {
		label := fmt.Sprintf("%d %s", i+1, domainTitle(d))
		if d == m.active() {
			tabs = append(tabs, st.TabActive.Render(label))
		} else {
			tabs = append(tabs, st.TabIdle.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) renderStatusLine(st Styles) string {
	snap := m.snapshot
	parts := []string{
		st.Text.Bold(true).Render(storeLabel(snap)),
		st.MutedText.Render(periodLabel(snap.Selection.Year, snap.Selection.Month)),
	}
	if snap.Health.IsOffline() {
		parts = append(parts, st.Badge(badgeOffline).Render("오프라인"))
	} else {
		parts = append(parts, st.Badge(badgeOnline).Render("온라인"))
	}
	if m.refreshing > 0 || domainBusy(snap, m.active()) {
		parts = append(parts, m.spinner.View())
	}
	if !snap.Health.LastUpdated.IsZero() {
		parts = append(parts, st.FaintText.Render(snap.Health.LastUpdated.Format("15:04:05")))
	}
	return st.Header.Render(strings.Join(parts, "  "))
}

func (m Model) renderFooter(st Styles) string {
	if m.notice != "" {
		return st.Footer.Render(st.WarningText.Render(m.notice))
	}
	hint := "tab 전환 · r 새로고침 · s/S 매장 · [ ] 월 · T 테마 · ? 도움말 · q 종료"
	switch m.active() {
	case state.DomainMealKits:
		hint = "enter 담기 · del 빼기 · x 비우기 · v 서버 재고 · " + hint
	case state.DomainLaundry:
		hint = "v 서버 재고 · " + hint
	}
	return st.Footer.Render(hint)
}

// domainBusy reports whether any status slot of d has a request in flight.
func domainBusy(snap state.Snapshot, d state.Domain) bool {
	switch d {
	case state.DomainStores:
		return snap.StoreList.Status.Busy
	case state.DomainMealKits:
		mk := snap.MealKits
		return anyBusy(mk.ItemsStatus, mk.ServerLowStockStatus, mk.SeriesStatus,
			mk.MonthlyRankStatus, mk.MonthlyRevenueStatus, mk.YearlyRankStatus)
	case state.DomainLaundry:
		l := snap.Laundry
		return anyBusy(l.ItemsStatus, l.ServerLowStockStatus, l.MonthlyRankStatus, l.YearlyRankStatus)
	case state.DomainAppliances:
		return anyBusy(snap.Appliances.AppliancesStatus, snap.Appliances.BrokenStatus)
	case state.DomainOrders:
		return anyBusy(snap.Orders.RevenueStatus, snap.Orders.VisitorsStatus)
	case state.DomainUsers:
		return anyBusy(snap.Users.UsersStatus, snap.Users.AgeStatus, snap.Users.GenderStatus)
	default:
		return false
	}
}

func anyBusy(statuses ...stores.Status) bool {
	for _, s := range statuses {
		if s.Busy {
			return true
		}
	}
	return false
}
