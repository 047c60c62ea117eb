package stores

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/five82/storedash/internal/api"
)

// LaundryLowStockThreshold is the client-side cutoff for laundry supplies.
// /laundrySupplies/less10 applies a different server-side cutoff.
const LaundryLowStockThreshold = 30

const (
	msgLaundryFailed         = "세탁용품 데이터를 불러오는 데 실패했습니다."
	msgLaundryLowStockFailed = "저재고 세탁용품 데이터를 불러오는 데 실패했습니다."
	msgLaundryMonthlyFailed  = "월별 판매량 랭킹 데이터를 불러오는 데 실패했습니다."
	msgLaundryYearlyFailed   = "연간 판매량 랭킹 데이터를 불러오는 데 실패했습니다."
	fmtLaundryMonthlyEmpty   = "%d년 %d월의 세탁용품 판매량 데이터가 없습니다."
	fmtLaundryYearlyEmpty    = "%d년 세탁용품 판매량 데이터가 없습니다."
)

// LaundrySnapshot is a copy of the laundry supplies store state with one
// status slot per fetch. ServerLowStock is the /less10 payload, kept apart
// from the client-filtered LowStock.
type LaundrySnapshot struct {
	Items          []api.LaundrySupply
	LowStock       []api.LaundrySupply
	ServerLowStock []api.LaundrySupply
	MonthlyRank    []api.SupplyRank
	YearlyRank     []api.SupplyRank

	ItemsStatus          Status
	ServerLowStockStatus Status
	MonthlyRankStatus    Status
	YearlyRankStatus     Status

	// ServerLowStockFetched is false until FetchLowStockFromServer settles once.
	ServerLowStockFetched bool
}

// LaundrySupplies owns laundry supply inventory and rankings.
type LaundrySupplies struct {
	base

	items          []api.LaundrySupply
	lowStock       []api.LaundrySupply
	serverLowStock []api.LaundrySupply
	monthlyRank    []api.SupplyRank
	yearlyRank     []api.SupplyRank

	itemsStatus          Status
	serverLowStockStatus Status
	serverLowStockDone   bool
	monthlyRankStatus    Status
	yearlyRankStatus     Status
}

// NewLaundrySupplies builds an empty laundry supplies store.
func NewLaundrySupplies(client api.Requester, logger *slog.Logger) *LaundrySupplies {
	return &LaundrySupplies{base: newBase(client, logger, "laundrySupplies")}
}

// Snapshot returns a copy of the current state.
func (l *LaundrySupplies) Snapshot() LaundrySnapshot {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return LaundrySnapshot{
		Items:          cloneSlice(l.items),
		LowStock:       cloneSlice(l.lowStock),
		ServerLowStock: cloneSlice(l.serverLowStock),
		MonthlyRank:    cloneSlice(l.monthlyRank),
		YearlyRank:     cloneSlice(l.yearlyRank),

		ItemsStatus:          l.itemsStatus,
		ServerLowStockStatus: l.serverLowStockStatus,
		MonthlyRankStatus:    l.monthlyRankStatus,
		YearlyRankStatus:     l.yearlyRankStatus,

		ServerLowStockFetched: l.serverLowStockDone,
	}
}

// SuppliesByStore returns the fetched supplies belonging to storeID.
func (l *LaundrySupplies) SuppliesByStore(storeID int64) []api.LaundrySupply {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return filter(l.items, func(s api.LaundrySupply) bool { return s.StoreID == storeID })
}

// FetchLaundrySupplies replaces the supply list and recomputes low stock.
func (l *LaundrySupplies) FetchLaundrySupplies(ctx context.Context, storeID int64) {
	l.start(&l.itemsStatus)
	var supplies []api.LaundrySupply
	err := l.get(ctx, "fetchLaundrySupplies", api.PathLaundrySupplies, api.NewQuery(storeID), &supplies)

	l.mu.Lock()
	defer l.mu.Unlock()
	if err != nil {
		l.items = []api.LaundrySupply{}
		l.lowStock = []api.LaundrySupply{}
		l.itemsStatus.fail(msgLaundryFailed)
		return
	}
	l.items = cloneSlice(supplies)
	l.lowStock = filter(l.items, func(s api.LaundrySupply) bool { return s.StoreCount < LaundryLowStockThreshold })
	l.itemsStatus.succeed()
}

// FetchLowStockFromServer assigns the server's pre-filtered list as-is.
func (l *LaundrySupplies) FetchLowStockFromServer(ctx context.Context, storeID int64) {
	l.start(&l.serverLowStockStatus)
	var supplies []api.LaundrySupply
	err := l.get(ctx, "fetchLowStockFromServer", api.PathLaundrySuppliesLowStock, api.NewQuery(storeID), &supplies)

	l.mu.Lock()
	defer l.mu.Unlock()
	l.serverLowStockDone = true
	if err != nil {
		l.serverLowStock = []api.LaundrySupply{}
		l.serverLowStockStatus.fail(msgLaundryLowStockFailed)
		return
	}
	l.serverLowStock = cloneSlice(supplies)
	l.serverLowStockStatus.succeed()
}

// FetchMonthlyRank loads the top five supplies by units sold in year/month.
func (l *LaundrySupplies) FetchMonthlyRank(ctx context.Context, storeID int64, year, month int) {
	l.start(&l.monthlyRankStatus)
	var rows []api.SupplyRank
	query := api.NewQuery(storeID).Int("year", year).Int("month", month)
	err := l.get(ctx, "fetchMonthlyRank", api.PathLaundrySuppliesTop5MonthCount, query, &rows)

	l.mu.Lock()
	defer l.mu.Unlock()
	applyRank(&l.monthlyRankStatus, &l.monthlyRank, rows, err, supplySales,
		msgLaundryMonthlyFailed, fmt.Sprintf(fmtLaundryMonthlyEmpty, year, month))
}

// FetchYearlyRank loads the top five supplies by units sold in year.
func (l *LaundrySupplies) FetchYearlyRank(ctx context.Context, storeID int64, year int) {
	l.start(&l.yearlyRankStatus)
	var rows []api.SupplyRank
	query := api.NewQuery(storeID).Int("year", year)
	err := l.get(ctx, "fetchYearlyRank", api.PathLaundrySuppliesTop5YearCount, query, &rows)

	l.mu.Lock()
	defer l.mu.Unlock()
	applyRank(&l.yearlyRankStatus, &l.yearlyRank, rows, err, supplySales,
		msgLaundryYearlyFailed, fmt.Sprintf(fmtLaundryYearlyEmpty, year))
}

func supplySales(r api.SupplyRank) int64 { return r.TotalSales }
