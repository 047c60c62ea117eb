package stores

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/five82/storedash/internal/api"
)

// MealKitLowStockThreshold is the client-side cutoff: kits with fewer units
// are flagged. The server endpoint /mealKits/less10 applies its own cutoff.
const MealKitLowStockThreshold = 20

const monthsPerYear = 12

const (
	msgMealKitsFailed        = "밀키트 데이터를 불러오는 데 실패했습니다."
	msgMealKitLowStockFailed = "저재고 밀키트 데이터를 불러오는 데 실패했습니다."
	msgMealKitSeriesFailed   = "밀키트 월별 판매량 데이터를 불러오는 데 실패했습니다."
	msgMealKitMonthlyFailed  = "월별 밀키트 판매량 랭킹 데이터를 불러오는 데 실패했습니다."
	msgMealKitRevenueFailed  = "월별 밀키트 매출 랭킹 데이터를 불러오는 데 실패했습니다."
	msgMealKitYearlyFailed   = "연간 밀키트 판매량 랭킹 데이터를 불러오는 데 실패했습니다."
	fmtMealKitMonthlyEmpty   = "%d년 %d월의 밀키트 판매량 데이터가 없습니다."
	fmtMealKitRevenueEmpty   = "%d년 %d월의 매출 데이터가 없습니다."
	fmtMealKitYearlyEmpty    = "%d년 밀키트 판매량 데이터가 없습니다."
)

// CartLine is one meal kit in the cart. Price and Stock are copied when the
// line is created.
type CartLine struct {
	ID       int64
	Name     string
	Price    int64
	Stock    int
	Quantity int
}

// SalesSeries holds twelve monthly sales counts for one kit, January first.
type SalesSeries struct {
	MealKitID   int64
	MealKitName string
	Monthly     [monthsPerYear]int
}

// apply writes each count into its month slot, skipping months outside 1..12.
func (s *SalesSeries) apply(counts []api.MonthlyCount) {
	for _, c := range counts {
		idx := c.Month - 1
		if idx < 0 || idx >= monthsPerYear {
			continue
		}
		s.Monthly[idx] = c.SalesCount
	}
}

// MealKitSnapshot is a copy of the meal kit store state. Every fetch owns its
// own status slot, so a later fetch never clears an earlier one's message.
// Selected is Items narrowed to SelectedStoreID. LowStock is filtered on the
// client; ServerLowStock is the /less10 payload as the server sent it.
type MealKitSnapshot struct {
	Items              []api.MealKit
	Selected           []api.MealKit
	LowStock           []api.MealKit
	ServerLowStock     []api.MealKit
	Cart               []CartLine
	SelectedStoreID    int64
	SalesSeries        []SalesSeries
	MonthlyRank        []api.SalesRank
	MonthlyRevenueRank []api.SalesRank
	YearlyRank         []api.SalesRank

	ItemsStatus          Status
	ServerLowStockStatus Status
	SeriesStatus         Status
	MonthlyRankStatus    Status
	MonthlyRevenueStatus Status
	YearlyRankStatus     Status

	// ServerLowStockFetched is false until FetchLowStockFromServer settles once.
	ServerLowStockFetched bool
}

// MealKits owns meal kit inventory, rankings and the cart.
type MealKits struct {
	base

	items              []api.MealKit
	lowStock           []api.MealKit
	serverLowStock     []api.MealKit
	cart               []CartLine
	selectedStoreID    int64
	salesSeries        []SalesSeries
	monthlyRank        []api.SalesRank
	monthlyRevenueRank []api.SalesRank
	yearlyRank         []api.SalesRank

	itemsStatus          Status
	serverLowStockStatus Status
	serverLowStockDone   bool
	seriesStatus         Status
	monthlyRankStatus    Status
	monthlyRevenueStatus Status
	yearlyRankStatus     Status
}

// NewMealKits builds an empty meal kit store.
func NewMealKits(client api.Requester, logger *slog.Logger) *MealKits {
	return &MealKits{base: newBase(client, logger, "mealKits")}
}

// Snapshot returns a copy of the current state.
func (m *MealKits) Snapshot() MealKitSnapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return MealKitSnapshot{
		Items:              cloneSlice(m.items),
		Selected:           m.selectedLocked(),
		LowStock:           cloneSlice(m.lowStock),
		ServerLowStock:     cloneSlice(m.serverLowStock),
		Cart:               cloneSlice(m.cart),
		SelectedStoreID:    m.selectedStoreID,
		SalesSeries:        cloneSlice(m.salesSeries),
		MonthlyRank:        cloneSlice(m.monthlyRank),
		MonthlyRevenueRank: cloneSlice(m.monthlyRevenueRank),
		YearlyRank:         cloneSlice(m.yearlyRank),

		ItemsStatus:          m.itemsStatus,
		ServerLowStockStatus: m.serverLowStockStatus,
		SeriesStatus:         m.seriesStatus,
		MonthlyRankStatus:    m.monthlyRankStatus,
		MonthlyRevenueStatus: m.monthlyRevenueStatus,
		YearlyRankStatus:     m.yearlyRankStatus,

		ServerLowStockFetched: m.serverLowStockDone,
	}
}

// SelectStore records the store the dashboard is scoped to. Zero clears it.
func (m *MealKits) SelectStore(storeID int64) {
	m.mu.Lock()
	m.selectedStoreID = storeID
	m.mu.Unlock()
}

// SelectedMealKits returns every kit when no store is selected, otherwise the
// kits belonging to the selected store.
func (m *MealKits) SelectedMealKits() []api.MealKit {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.selectedLocked()
}

func (m *MealKits) selectedLocked() []api.MealKit {
	if m.selectedStoreID == 0 {
		return cloneSlice(m.items)
	}
	return filter(m.items, func(k api.MealKit) bool { return k.StoreID == m.selectedStoreID })
}

// Cart returns the current cart lines.
func (m *MealKits) Cart() []CartLine {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return cloneSlice(m.cart)
}

// FetchMealKits replaces the kit list for storeID, selects that store and
// recomputes the client-side low-stock list.
func (m *MealKits) FetchMealKits(ctx context.Context, storeID int64) {
	m.start(&m.itemsStatus)
	var kits []api.MealKit
	err := m.get(ctx, "fetchMealKits", api.PathMealKits, api.NewQuery(storeID), &kits)

	m.mu.Lock()
	defer m.mu.Unlock()
	if err != nil {
		m.items = []api.MealKit{}
		m.lowStock = []api.MealKit{}
		m.itemsStatus.fail(msgMealKitsFailed)
		return
	}
	m.items = cloneSlice(kits)
	m.selectedStoreID = storeID
	m.lowStock = filter(m.items, func(k api.MealKit) bool { return k.MealKitCount < MealKitLowStockThreshold })
	m.itemsStatus.succeed()
}

// FetchLowStockFromServer assigns the server's pre-filtered low-stock list
// as-is. It is kept apart from the client-filtered LowStock.
func (m *MealKits) FetchLowStockFromServer(ctx context.Context, storeID int64) {
	m.start(&m.serverLowStockStatus)
	var kits []api.MealKit
	err := m.get(ctx, "fetchLowStockFromServer", api.PathMealKitsLowStock, api.NewQuery(storeID), &kits)

	m.mu.Lock()
	defer m.mu.Unlock()
	m.serverLowStockDone = true
	if err != nil {
		m.serverLowStock = []api.MealKit{}
		m.serverLowStockStatus.fail(msgMealKitLowStockFailed)
		return
	}
	m.serverLowStock = cloneSlice(kits)
	m.serverLowStockStatus.succeed()
}

// AddToCart adds one unit of the kit with the given id. Ids missing from the
// last fetched list are ignored.
func (m *MealKits) AddToCart(mealKitID int64) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var kit *api.MealKit
	for i := range m.items {
		if m.items[i].MealKitID == mealKitID {
			kit = &m.items[i]
			break
		}
	}
	if kit == nil {
		return
	}
	for i := range m.cart {
		if m.cart[i].ID == mealKitID {
			m.cart[i].Quantity++
			return
		}
	}
	m.cart = append(m.cart, CartLine{
		ID:       kit.MealKitID,
		Name:     kit.MealKitName,
		Price:    kit.MealKitPrice,
		Stock:    kit.MealKitCount,
		Quantity: 1,
	})
}

// RemoveFromCart drops the line with the given id.
func (m *MealKits) RemoveFromCart(id int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cart = filter(m.cart, func(l CartLine) bool { return l.ID != id })
}

// ClearCart empties the cart.
func (m *MealKits) ClearCart() {
	m.mu.Lock()
	m.cart = []CartLine{}
	m.mu.Unlock()
}

// CartTotal sums price times quantity over lines.
func CartTotal(lines []CartLine) int64 {
	var total int64
	for _, l := range lines {
		total += l.Price * int64(l.Quantity)
	}
	return total
}

// FetchSalesSeries builds the per-kit monthly sales chart for year. Kits are
// queried one after another, so latency grows with the number of kits.
func (m *MealKits) FetchSalesSeries(ctx context.Context, storeID int64, year int) {
	m.start(&m.seriesStatus)
	series, err := m.loadSalesSeries(ctx, storeID, year)

	m.mu.Lock()
	defer m.mu.Unlock()
	if err != nil {
		m.salesSeries = []SalesSeries{}
		m.seriesStatus.fail(msgMealKitSeriesFailed)
		return
	}
	m.salesSeries = series
	m.seriesStatus.succeed()
}

func (m *MealKits) loadSalesSeries(ctx context.Context, storeID int64, year int) ([]SalesSeries, error) {
	var kits []api.MealKit
	if err := m.get(ctx, "fetchSalesSeries", api.PathMealKits, api.NewQuery(storeID), &kits); err != nil {
		return nil, err
	}
	series := make([]SalesSeries, 0, len(kits))
	for _, kit := range kits {
		entry := SalesSeries{MealKitID: kit.MealKitID, MealKitName: kit.MealKitName}
		var counts []api.MonthlyCount
		query := api.NewQuery(storeID).ID("mealKitId", kit.MealKitID).Int("year", year)
		if err := m.get(ctx, "fetchSalesSeries", api.PathMealKitsMonthCount, query, &counts); err != nil {
			return nil, err
		}
		entry.apply(counts)
		series = append(series, entry)
	}
	return series, nil
}

// FetchMonthlyRank loads the top five kits by units sold in year/month.
func (m *MealKits) FetchMonthlyRank(ctx context.Context, storeID int64, year, month int) {
	m.fetchRank(ctx, rankRequest{
		op:        "fetchMonthlyRank",
		path:      api.PathMealKitsTop5MonthCount,
		query:     api.NewQuery(storeID).Int("year", year).Int("month", month),
		metric:    salesCount,
		dest:      &m.monthlyRank,
		status:    &m.monthlyRankStatus,
		failed:    msgMealKitMonthlyFailed,
		emptyText: fmt.Sprintf(fmtMealKitMonthlyEmpty, year, month),
	})
}

// FetchMonthlyRevenueRank loads the top five kits by revenue in year/month.
func (m *MealKits) FetchMonthlyRevenueRank(ctx context.Context, storeID int64, year, month int) {
	m.fetchRank(ctx, rankRequest{
		op:        "fetchMonthlyRevenueRank",
		path:      api.PathMealKitsTop5MonthRevenue,
		query:     api.NewQuery(storeID).Int("year", year).Int("month", month),
		metric:    func(r api.SalesRank) int64 { return r.MonthlyTotalRevenue },
		dest:      &m.monthlyRevenueRank,
		status:    &m.monthlyRevenueStatus,
		failed:    msgMealKitRevenueFailed,
		emptyText: fmt.Sprintf(fmtMealKitRevenueEmpty, year, month),
	})
}

// FetchYearlyRank loads the top five kits by units sold in year.
func (m *MealKits) FetchYearlyRank(ctx context.Context, storeID int64, year int) {
	m.fetchRank(ctx, rankRequest{
		op:        "fetchYearlyRank",
		path:      api.PathMealKitsTop5YearCount,
		query:     api.NewQuery(storeID).Int("year", year),
		metric:    salesCount,
		dest:      &m.yearlyRank,
		status:    &m.yearlyRankStatus,
		failed:    msgMealKitYearlyFailed,
		emptyText: fmt.Sprintf(fmtMealKitYearlyEmpty, year),
	})
}

type rankRequest struct {
	op        string
	path      string
	query     *api.Query
	metric    func(api.SalesRank) int64
	dest      *[]api.SalesRank
	status    *Status
	failed    string
	emptyText string
}

func (m *MealKits) fetchRank(ctx context.Context, req rankRequest) {
	m.start(req.status)
	var rows []api.SalesRank
	err := m.get(ctx, req.op, req.path, req.query, &rows)

	m.mu.Lock()
	defer m.mu.Unlock()
	applyRank(req.status, req.dest, rows, err, req.metric, req.failed, req.emptyText)
}

// applyRank stores the top entries of rows into dest. An empty payload is not
// a failure: the list is emptied and emptyText is left as the message.
func applyRank[T any](status *Status, dest *[]T, rows []T, err error, metric func(T) int64, failed, emptyText string) {
	if err != nil {
		*dest = []T{}
		status.fail(failed)
		return
	}
	if len(rows) == 0 {
		*dest = []T{}
		status.fail(emptyText)
		return
	}
	*dest = topBy(rows, TopN, metric)
	status.succeed()
}
