package stores

import (
	"context"
	"log/slog"
	"slices"

	"github.com/five82/storedash/internal/api"
)

const (
	msgRevenueFailed  = "월별 매출 데이터를 불러오는 데 실패했습니다."
	msgVisitorsFailed = "월별 방문자 수 데이터를 불러오는 데 실패했습니다."
)

// OrderSnapshot is a copy of the order statistics store state.
// AvailableYears is sorted newest first. Revenue probes during year discovery
// share RevenueStatus with FetchMonthlyRevenue.
type OrderSnapshot struct {
	MonthlyRevenue  []api.MonthlyRevenue
	MonthlyVisitors []api.MonthlyVisitors
	AvailableYears  []int

	RevenueStatus  Status
	VisitorsStatus Status
}

// OrderStats owns monthly revenue, visitor counts and the years that have
// any revenue at all.
type OrderStats struct {
	base

	monthlyRevenue  []api.MonthlyRevenue
	monthlyVisitors []api.MonthlyVisitors
	availableYears  []int

	revenueStatus  Status
	visitorsStatus Status
}

// NewOrderStats builds an empty order statistics store.
func NewOrderStats(client api.Requester, logger *slog.Logger) *OrderStats {
	return &OrderStats{base: newBase(client, logger, "orderStats")}
}

// Snapshot returns a copy of the current state.
func (o *OrderStats) Snapshot() OrderSnapshot {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return OrderSnapshot{
		MonthlyRevenue:  cloneSlice(o.monthlyRevenue),
		MonthlyVisitors: cloneSlice(o.monthlyVisitors),
		AvailableYears:  cloneSlice(o.availableYears),

		RevenueStatus:  o.revenueStatus,
		VisitorsStatus: o.visitorsStatus,
	}
}

// FetchMonthlyRevenue replaces the monthly revenue of year. A year with any
// positive month is recorded as available.
func (o *OrderStats) FetchMonthlyRevenue(ctx context.Context, storeID int64, year int) {
	o.start(&o.revenueStatus)
	var rows []api.MonthlyRevenue
	err := o.get(ctx, "fetchMonthlyRevenue", api.PathOrdersMonthRevenue, api.NewQuery(storeID).Int("year", year), &rows)

	o.mu.Lock()
	defer o.mu.Unlock()
	if err != nil {
		o.monthlyRevenue = []api.MonthlyRevenue{}
		o.revenueStatus.fail(msgRevenueFailed)
		return
	}
	o.monthlyRevenue = cloneSlice(rows)
	hasRevenue := slices.ContainsFunc(rows, func(r api.MonthlyRevenue) bool { return r.TotalRevenue > 0 })
	if hasRevenue {
		o.availableYears = insertYear(o.availableYears, year)
	}
	o.revenueStatus.succeed()
}

// FetchMonthlyVisitors replaces the monthly visitor counts of year.
func (o *OrderStats) FetchMonthlyVisitors(ctx context.Context, storeID int64, year int) {
	o.start(&o.visitorsStatus)
	var rows []api.MonthlyVisitors
	err := o.get(ctx, "fetchMonthlyVisitors", api.PathOrdersMonthVisitors, api.NewQuery(storeID).Int("year", year), &rows)

	o.mu.Lock()
	defer o.mu.Unlock()
	if err != nil {
		o.monthlyVisitors = []api.MonthlyVisitors{}
		o.visitorsStatus.fail(msgVisitorsFailed)
		return
	}
	o.monthlyVisitors = cloneSlice(rows)
	o.visitorsStatus.succeed()
}

// InitializeAvailableYears clears the available years and probes each
// candidate in order. The monthly revenue left behind is that of the last
// year probed.
func (o *OrderStats) InitializeAvailableYears(ctx context.Context, storeID int64, years []int) {
	o.mu.Lock()
	o.availableYears = []int{}
	o.mu.Unlock()
	for _, year := range years {
		o.FetchMonthlyRevenue(ctx, storeID, year)
	}
}

// insertYear adds year once and keeps the list newest first.
func insertYear(years []int, year int) []int {
	if slices.Contains(years, year) {
		return years
	}
	years = append(years, year)
	slices.SortFunc(years, func(a, b int) int { return b - a })
	return years
}
