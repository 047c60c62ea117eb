package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	ltable "github.com/charmbracelet/lipgloss/table"

	"github.com/five82/storedash/internal/api"
	"github.com/five82/storedash/internal/state"
	"github.com/five82/storedash/internal/stores"
)

const nameWidth = 24

// section is one titled block of a domain page.
type section struct {
	title  string
	body   string
	status stores.Status
}

func (s section) render(st Styles) string {
	var b strings.Builder
	b.WriteString(st.Title.Render(s.title))
	b.WriteString("\n")
	b.WriteString(s.body)
	if line := statusLine(st, s.status); line != "" {
		b.WriteString("\n")
		b.WriteString(line)
	}
	return b.String()
}

func renderSections(st Styles, sections []section) string {
	parts := make([]string, 0, len(sections))
	for _, s := range sections {
		parts = append(parts, s.render(st))
	}
	return strings.Join(parts, "\n\n")
}

// grid renders rows as a bordered table; an empty grid renders a placeholder.
func grid(st Styles, headers []string, rows [][]string) string {
	if len(rows) == 0 {
		return st.MutedText.Render("데이터가 없습니다.")
	}
	return ltable.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(st.FaintText).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == ltable.HeaderRow {
				return st.AccentText.Bold(true).Padding(0, 1)
			}
			return st.Text.Padding(0, 1)
		}).
		Render()
}

func id(v int64) string {
	return strconv.FormatInt(v, 10)
}

// domainSections builds the page for d from snap.
func domainSections(snap state.Snapshot, d state.Domain, st Styles) []section {
	switch d {
	case state.DomainStores:
		return storeSections(snap, st)
	case state.DomainMealKits:
		return mealKitSections(snap, st)
	case state.DomainLaundry:
		return laundrySections(snap, st)
	case state.DomainAppliances:
		return applianceSections(snap, st)
	case state.DomainOrders:
		return orderSections(snap, st)
	case state.DomainUsers:
		return userSections(snap, st)
	default:
		return nil
	}
}

func storeSections(snap state.Snapshot, st Styles) []section {
	rows := make([][]string, 0, len(snap.StoreList.Stores))
	for _, s := range snap.StoreList.Stores {
		marker := ""
		if snap.StoreList.Selected != nil && snap.StoreList.Selected.StoreID == s.StoreID {
			marker = "●"
		}
		rows = append(rows, []string{marker, id(s.StoreID), truncate(s.StoreName, nameWidth)})
	}
	return []section{{
		title:  "매장",
		body:   grid(st, []string{"", "ID", "매장명"}, rows),
		status: snap.StoreList.Status,
	}}
}

func mealKitRows(kits []api.MealKit) [][]string {
	rows := make([][]string, 0, len(kits))
	for _, k := range kits {
		rows = append(rows, []string{
			id(k.MealKitID),
			truncate(k.MealKitName, nameWidth),
			formatWon(k.MealKitPrice),
			strconv.Itoa(k.MealKitCount),
		})
	}
	return rows
}

var mealKitHeaders = []string{"ID", "밀키트", "가격", "재고"}

func salesRankRows(ranks []api.SalesRank, revenue bool) [][]string {
	rows := make([][]string, 0, len(ranks))
	for i, r := range ranks {
		metric := formatCount(r.TotalSales)
		if revenue {
			metric = formatWon(r.MonthlyTotalRevenue)
		}
		rows = append(rows, []string{strconv.Itoa(i + 1), truncate(r.MealKitName, nameWidth), metric})
	}
	return rows
}

func cartSection(snap stores.MealKitSnapshot, st Styles) section {
	rows := make([][]string, 0, len(snap.Cart))
	for _, l := range snap.Cart {
		rows = append(rows, []string{
			truncate(l.Name, nameWidth),
			strconv.Itoa(l.Quantity),
			formatWon(l.Price),
			formatWon(l.Price * int64(l.Quantity)),
		})
	}
	body := grid(st, []string{"밀키트", "수량", "단가", "금액"}, rows)
	if len(rows) > 0 {
		body += "\n" + st.Text.Bold(true).Render("합계 "+formatWon(stores.CartTotal(snap.Cart)))
	}
	return section{title: "장바구니", body: body}
}

func seriesSection(snap stores.MealKitSnapshot, year int, st Styles) section {
	headers := []string{"밀키트"}
	for m := 1; m <= 12; m++ {
		headers = append(headers, strconv.Itoa(m))
	}
	rows := make([][]string, 0, len(snap.SalesSeries))
	for _, s := range snap.SalesSeries {
		row := []string{truncate(s.MealKitName, 12)}
		for _, count := range s.Monthly {
			row = append(row, strconv.Itoa(count))
		}
		rows = append(rows, row)
	}
	return section{title: fmt.Sprintf("%d년 월별 판매량", year), body: grid(st, headers, rows), status: snap.SeriesStatus}
}

// serverLowStockTitle labels the /less10 list, whose cutoff the server owns.
const serverLowStockTitle = "서버 기준 재고 부족 (less10)"

// mealKitSections puts the inventory first; the dashboard replaces its body
// with the selectable table.
func mealKitSections(snap state.Snapshot, st Styles) []section {
	mk := snap.MealKits
	sel := snap.Selection
	period := periodLabel(sel.Year, sel.Month)
	sections := []section{
		{
			title:  "밀키트 재고",
			body:   grid(st, mealKitHeaders, mealKitRows(mk.Selected)),
			status: mk.ItemsStatus,
		},
		{
			title: fmt.Sprintf("재고 부족 (%d개 미만)", stores.MealKitLowStockThreshold),
			body:  grid(st, mealKitHeaders, mealKitRows(mk.LowStock)),
		},
	}
	if mk.ServerLowStockFetched || mk.ServerLowStockStatus.Busy {
		sections = append(sections, section{
			title:  serverLowStockTitle,
			body:   grid(st, mealKitHeaders, mealKitRows(mk.ServerLowStock)),
			status: mk.ServerLowStockStatus,
		})
	}
	return append(sections,
		cartSection(mk, st),
		section{
			title:  period + " 판매량 TOP5",
			body:   grid(st, []string{"#", "밀키트", "판매량"}, salesRankRows(mk.MonthlyRank, false)),
			status: mk.MonthlyRankStatus,
		},
		section{
			title:  period + " 매출 TOP5",
			body:   grid(st, []string{"#", "밀키트", "매출"}, salesRankRows(mk.MonthlyRevenueRank, true)),
			status: mk.MonthlyRevenueStatus,
		},
		section{
			title:  fmt.Sprintf("%d년 판매량 TOP5", sel.Year),
			body:   grid(st, []string{"#", "밀키트", "판매량"}, salesRankRows(mk.YearlyRank, false)),
			status: mk.YearlyRankStatus,
		},
		seriesSection(mk, sel.Year, st),
	)
}

func laundryRows(items []api.LaundrySupply) [][]string {
	rows := make([][]string, 0, len(items))
	for _, s := range items {
		rows = append(rows, []string{id(s.LaundrySuppliesID), truncate(s.LaundrySuppliesName, nameWidth), strconv.Itoa(s.StoreCount)})
	}
	return rows
}

func supplyRankRows(ranks []api.SupplyRank) [][]string {
	rows := make([][]string, 0, len(ranks))
	for i, r := range ranks {
		rows = append(rows, []string{strconv.Itoa(i + 1), truncate(r.LaundrySuppliesName, nameWidth), formatCount(r.TotalSales)})
	}
	return rows
}

func laundrySections(snap state.Snapshot, st Styles) []section {
	l := snap.Laundry
	sel := snap.Selection
	headers := []string{"ID", "세탁용품", "재고"}
	rankHeaders := []string{"#", "세탁용품", "판매량"}
	sections := []section{
		{title: "세탁용품 재고", body: grid(st, headers, laundryRows(snap.StoreSupplies)), status: l.ItemsStatus},
		{
			title: fmt.Sprintf("재고 부족 (%d개 미만)", stores.LaundryLowStockThreshold),
			body:  grid(st, headers, laundryRows(l.LowStock)),
		},
	}
	if l.ServerLowStockFetched || l.ServerLowStockStatus.Busy {
		sections = append(sections, section{
			title:  serverLowStockTitle,
			body:   grid(st, headers, laundryRows(l.ServerLowStock)),
			status: l.ServerLowStockStatus,
		})
	}
	return append(sections,
		section{
			title:  periodLabel(sel.Year, sel.Month) + " 판매량 TOP5",
			body:   grid(st, rankHeaders, supplyRankRows(l.MonthlyRank)),
			status: l.MonthlyRankStatus,
		},
		section{
			title:  fmt.Sprintf("%d년 판매량 TOP5", sel.Year),
			body:   grid(st, rankHeaders, supplyRankRows(l.YearlyRank)),
			status: l.YearlyRankStatus,
		},
	)
}

func applianceRows(st Styles, items []stores.Appliance) [][]string {
	rows := make([][]string, 0, len(items))
	for _, a := range items {
		rows = append(rows, []string{
			id(a.ID),
			truncate(a.Name, nameWidth),
			truncate(a.Model, 16),
			a.Category,
			st.Badge(a.Status).Render(a.Status),
		})
	}
	return rows
}

func applianceSections(snap state.Snapshot, st Styles) []section {
	a := snap.Appliances
	headers := []string{"ID", "가전", "모델", "분류", "상태"}
	return []section{
		{title: "가전 현황", body: grid(st, headers, applianceRows(st, a.Appliances)), status: a.AppliancesStatus},
		{title: "고장 가전", body: grid(st, headers, applianceRows(st, a.Broken)), status: a.BrokenStatus},
	}
}

func orderSections(snap state.Snapshot, st Styles) []section {
	o := snap.Orders
	revenue := make(map[int]int64, len(o.MonthlyRevenue))
	for _, r := range o.MonthlyRevenue {
		revenue[r.Month] = r.TotalRevenue
	}
	visitors := make(map[int]int64, len(o.MonthlyVisitors))
	for _, v := range o.MonthlyVisitors {
		visitors[v.Month] = v.VisitorCount
	}
	var rows [][]string
	var total int64
	if len(revenue) > 0 || len(visitors) > 0 {
		for m := 1; m <= 12; m++ {
			rows = append(rows, []string{monthLabel(m), formatWon(revenue[m]), formatCount(visitors[m])})
			total += revenue[m]
		}
	}
	body := grid(st, []string{"월", "매출", "방문자"}, rows)
	if len(rows) > 0 {
		body += "\n" + st.Text.Bold(true).Render("연 매출 "+formatWon(total))
	}

	years := make([]string, 0, len(o.AvailableYears))
	for _, y := range o.AvailableYears {
		years = append(years, strconv.Itoa(y))
	}
	yearsBody := st.MutedText.Render("데이터가 없습니다.")
	if len(years) > 0 {
		yearsBody = st.Text.Render(strings.Join(years, "  "))
	}

	return []section{
		{title: fmt.Sprintf("%d년 월별 매출", snap.Selection.Year), body: body, status: orderStatus(o)},
		{title: "매출이 있는 연도", body: yearsBody},
	}
}

func userSections(snap state.Snapshot, st Styles) []section {
	u := snap.Users

	var male, female int
	for _, user := range u.Users {
		switch user.UserGender {
		case stores.GenderMale:
			male++
		case stores.GenderFemale:
			female++
		}
	}
	summary := st.Text.Render(fmt.Sprintf("전체 %d명 · 남 %d명 · 여 %d명", len(u.Users), male, female))

	ageRows := make([][]string, 0, len(stores.AgeBrackets))
	for _, age := range stores.AgeBrackets {
		top := u.TopByAge[age]
		if top == nil {
			ageRows = append(ageRows, []string{stores.AgeLabel(age), "-", "-"})
			continue
		}
		ageRows = append(ageRows, []string{stores.AgeLabel(age), truncate(top.MealKitName, nameWidth), formatCount(top.TotalSales)})
	}

	rankHeaders := []string{"#", "밀키트", "판매량"}
	return []section{
		{title: "고객", body: summary, status: u.UsersStatus},
		{title: "연령대별 인기 밀키트", body: grid(st, []string{"연령대", "밀키트", "판매량"}, ageRows), status: u.AgeStatus},
		{title: "남성 선호 TOP5", body: grid(st, rankHeaders, salesRankRows(u.MalePreferences, false)), status: u.GenderStatus},
		{title: "여성 선호 TOP5", body: grid(st, rankHeaders, salesRankRows(u.FemalePreferences, false))},
	}
}

// orderStatus merges the revenue and visitor slots of the shared monthly
// table. Busy if either is; the revenue message wins when both failed.
func orderStatus(o stores.OrderSnapshot) stores.Status {
	status := stores.Status{Busy: o.RevenueStatus.Busy || o.VisitorsStatus.Busy, Error: o.RevenueStatus.Error}
	if status.Error == "" {
		status.Error = o.VisitorsStatus.Error
	}
	return status
}
