package state

import (
	"context"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/five82/storedash/internal/api"
	"github.com/five82/storedash/internal/stores"
)

// Domain names one dashboard section and the store behind it.
type Domain int

const (
	DomainStores Domain = iota
	DomainMealKits
	DomainLaundry
	DomainAppliances
	DomainOrders
	DomainUsers
)

// Domains lists every domain in display order.
var Domains = []Domain{DomainStores, DomainMealKits, DomainLaundry, DomainAppliances, DomainOrders, DomainUsers}

func (d Domain) String() string {
	switch d {
	case DomainStores:
		return "stores"
	case DomainMealKits:
		return "mealkits"
	case DomainLaundry:
		return "laundry"
	case DomainAppliances:
		return "appliances"
	case DomainOrders:
		return "orders"
	case DomainUsers:
		return "users"
	default:
		return "unknown"
	}
}

// ParseDomain maps a name produced by String back to its Domain.
func ParseDomain(name string) (Domain, bool) {
	for _, d := range Domains {
		if d.String() == name {
			return d, true
		}
	}
	return 0, false
}

// Selection is the store and period every domain query is scoped to.
type Selection struct {
	StoreID int64
	Year    int
	Month   int
}

// Options configure a Session.
type Options struct {
	StoreID int64
	Years   []int     // candidate years for available-year probing
	Now     time.Time // zero uses time.Now; sets the initial period
}

// Snapshot is a consistent-enough copy of every store for one render. Each
// store is copied under its own lock; the set is not atomic. StoreSupplies
// is the laundry list narrowed to the selected store, or all of it when no
// store is selected.
type Snapshot struct {
	Selection     Selection
	Active        Domain
	Health        Health
	StoreList     stores.StoreListSnapshot
	MealKits      stores.MealKitSnapshot
	Laundry       stores.LaundrySnapshot
	StoreSupplies []api.LaundrySupply
	Appliances    stores.ApplianceSnapshot
	Orders        stores.OrderSnapshot
	Users         stores.UserSnapshot
}

// Session owns one instance of every domain store for the lifetime of the
// application and is handed to the presentation layer at startup.
type Session struct {
	StoreList  *stores.StoreList
	MealKits   *stores.MealKits
	Laundry    *stores.LaundrySupplies
	Appliances *stores.Appliances
	Orders     *stores.OrderStats
	Users      *stores.Users

	tracker *Tracker
	years   []int

	mu        sync.RWMutex
	selection Selection
	active    Domain
}

// NewSession builds every store on top of client.
func NewSession(client api.Requester, logger *slog.Logger, opts Options) *Session {
	tracker := NewTracker(client)
	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}
	return &Session{
		StoreList:  stores.NewStoreList(tracker, logger),
		MealKits:   stores.NewMealKits(tracker, logger),
		Laundry:    stores.NewLaundrySupplies(tracker, logger),
		Appliances: stores.NewAppliances(tracker, logger),
		Orders:     stores.NewOrderStats(tracker, logger),
		Users:      stores.NewUsers(tracker, logger),
		tracker:    tracker,
		years:      slices.Clone(opts.Years),
		selection: Selection{
			StoreID: opts.StoreID,
			Year:    now.Year(),
			Month:   int(now.Month()),
		},
		active: DomainMealKits,
	}
}

// Selection returns the current store and period.
func (s *Session) Selection() Selection {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.selection
}

// SelectStore scopes the session to storeID and forwards the choice to the
// stores that keep a selection of their own.
func (s *Session) SelectStore(storeID int64) {
	s.mu.Lock()
	s.selection.StoreID = storeID
	s.mu.Unlock()
	s.MealKits.SelectStore(storeID)
	s.StoreList.SelectStore(storeID)
}

// CycleStore moves the selection to the next (delta > 0) or previous store
// in the fetched list and returns the new id. It is a no-op with no stores.
func (s *Session) CycleStore(delta int) int64 {
	list := s.StoreList.Snapshot().Stores
	current := s.Selection().StoreID
	if len(list) == 0 {
		return current
	}
	idx := slices.IndexFunc(list, func(st api.Store) bool { return st.StoreID == current })
	switch {
	case idx < 0 && delta < 0:
		idx = len(list) - 1
	case idx < 0:
		idx = 0
	default:
		idx = ((idx+delta)%len(list) + len(list)) % len(list)
	}
	next := list[idx].StoreID
	s.SelectStore(next)
	return next
}

// ShiftMonth moves the period by delta months, rolling the year over.
func (s *Session) ShiftMonth(delta int) Selection {
	s.mu.Lock()
	defer s.mu.Unlock()
	months := s.selection.Year*12 + (s.selection.Month - 1) + delta
	s.selection.Year = months / 12
	s.selection.Month = months%12 + 1
	return s.selection
}

// SetPeriod sets the year and month. Zero keeps the current value; a month
// outside 1..12 is ignored.
func (s *Session) SetPeriod(year, month int) Selection {
	s.mu.Lock()
	defer s.mu.Unlock()
	if year > 0 {
		s.selection.Year = year
	}
	if month >= 1 && month <= 12 {
		s.selection.Month = month
	}
	return s.selection
}

// SetActive records which domain the presentation layer is showing.
func (s *Session) SetActive(d Domain) {
	s.mu.Lock()
	s.active = d
	s.mu.Unlock()
}

// Active returns the domain being shown.
func (s *Session) Active() Domain {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.active
}

// Health reports API reachability across every store.
func (s *Session) Health() Health {
	return s.tracker.Health()
}

// Snapshot copies every store.
func (s *Session) Snapshot() Snapshot {
	s.mu.RLock()
	selection, active := s.selection, s.active
	s.mu.RUnlock()
	laundry := s.Laundry.Snapshot()
	supplies := laundry.Items
	if selection.StoreID != 0 {
		supplies = s.Laundry.SuppliesByStore(selection.StoreID)
	}
	return Snapshot{
		Selection:     selection,
		Active:        active,
		Health:        s.tracker.Health(),
		StoreList:     s.StoreList.Snapshot(),
		MealKits:      s.MealKits.Snapshot(),
		Laundry:       laundry,
		StoreSupplies: supplies,
		Appliances:    s.Appliances.Snapshot(),
		Orders:        s.Orders.Snapshot(),
		Users:         s.Users.Snapshot(),
	}
}

// Refresh runs every fetch of domain d for the current selection, one after
// another. Each fetch settles into its own status slot; nothing is returned.
func (s *Session) Refresh(ctx context.Context, d Domain) {
	sel := s.Selection()
	switch d {
	case DomainStores:
		s.StoreList.FetchStoreList(ctx)
		s.StoreList.SelectStore(sel.StoreID)
	case DomainMealKits:
		s.MealKits.FetchMealKits(ctx, sel.StoreID)
		s.MealKits.FetchMonthlyRank(ctx, sel.StoreID, sel.Year, sel.Month)
		s.MealKits.FetchMonthlyRevenueRank(ctx, sel.StoreID, sel.Year, sel.Month)
		s.MealKits.FetchYearlyRank(ctx, sel.StoreID, sel.Year)
		s.MealKits.FetchSalesSeries(ctx, sel.StoreID, sel.Year)
	case DomainLaundry:
		s.Laundry.FetchLaundrySupplies(ctx, sel.StoreID)
		s.Laundry.FetchMonthlyRank(ctx, sel.StoreID, sel.Year, sel.Month)
		s.Laundry.FetchYearlyRank(ctx, sel.StoreID, sel.Year)
	case DomainAppliances:
		s.Appliances.FetchAppliances(ctx, sel.StoreID)
		s.Appliances.FetchBrokenAppliances(ctx, sel.StoreID)
	case DomainOrders:
		s.Orders.InitializeAvailableYears(ctx, sel.StoreID, s.years)
		s.Orders.FetchMonthlyRevenue(ctx, sel.StoreID, sel.Year)
		s.Orders.FetchMonthlyVisitors(ctx, sel.StoreID, sel.Year)
	case DomainUsers:
		s.Users.FetchUsers(ctx, sel.StoreID)
		s.Users.FetchTopMealKitsByAge(ctx, sel.StoreID)
		s.Users.FetchGenderPreferences(ctx, sel.StoreID)
	}
}

// RefreshServerLowStock loads the server-filtered /less10 list of domain d
// for the selected store. Only meal kits and laundry have one; it reports
// whether d was one of them.
func (s *Session) RefreshServerLowStock(ctx context.Context, d Domain) bool {
	storeID := s.Selection().StoreID
	switch d {
	case DomainMealKits:
		s.MealKits.FetchLowStockFromServer(ctx, storeID)
	case DomainLaundry:
		s.Laundry.FetchLowStockFromServer(ctx, storeID)
	default:
		return false
	}
	return true
}

// RefreshAll refreshes every domain in display order.
func (s *Session) RefreshAll(ctx context.Context) {
	for _, d := range Domains {
		s.Refresh(ctx, d)
	}
}
