package stores

import (
	"context"
	"log/slog"

	"github.com/five82/storedash/internal/api"
)

// Appliance states as labelled by the backend.
const (
	ApplianceStateNormal = "정상"
	ApplianceStateBroken = "고장"
)

const (
	msgAppliancesFailed = "가전 리스트를 불러오는 데 실패했습니다."
	msgBrokenFailed     = "고장난 가전 리스트를 불러오는 데 실패했습니다."
)

// Appliance is the view shape of a home appliance.
type Appliance struct {
	ID       int64
	Name     string
	Model    string
	Category string
	Status   string
}

func toAppliance(a api.HomeAppliance, status string) Appliance {
	return Appliance{
		ID:       a.HomeAppliancesID,
		Name:     a.HomeAppliancesName,
		Model:    a.HomeAppliancesModelName,
		Category: a.HomeAppliancesClassification,
		Status:   status,
	}
}

// ApplianceSnapshot is a copy of the appliance store state. The full list and
// the broken list have independent status slots.
type ApplianceSnapshot struct {
	Appliances       []Appliance
	Broken           []Appliance
	AppliancesStatus Status
	BrokenStatus     Status
}

// Appliances owns the appliance inventory of a store.
type Appliances struct {
	base

	appliances       []Appliance
	broken           []Appliance
	appliancesStatus Status
	brokenStatus     Status
}

// NewAppliances builds an empty appliance store.
func NewAppliances(client api.Requester, logger *slog.Logger) *Appliances {
	return &Appliances{base: newBase(client, logger, "homeAppliances")}
}

// Snapshot returns a copy of the current state.
func (a *Appliances) Snapshot() ApplianceSnapshot {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return ApplianceSnapshot{
		Appliances:       cloneSlice(a.appliances),
		Broken:           cloneSlice(a.broken),
		AppliancesStatus: a.appliancesStatus,
		BrokenStatus:     a.brokenStatus,
	}
}

// FetchAppliances replaces the full appliance list of storeID. Records
// without a state are reported as normal.
func (a *Appliances) FetchAppliances(ctx context.Context, storeID int64) {
	a.mu.Lock()
	a.appliancesStatus.begin()
	a.mu.Unlock()

	var rows []api.HomeAppliance
	err := a.get(ctx, "fetchAppliances", api.PathHomeAppliances, api.NewQuery(storeID), &rows)

	a.mu.Lock()
	defer a.mu.Unlock()
	if err != nil {
		a.appliances = []Appliance{}
		a.appliancesStatus.fail(msgAppliancesFailed)
		return
	}
	list := make([]Appliance, 0, len(rows))
	for _, row := range rows {
		status := ApplianceStateNormal
		if row.HomeAppliancesState != nil {
			status = *row.HomeAppliancesState
		}
		list = append(list, toAppliance(row, status))
	}
	a.appliances = list
	a.appliancesStatus.succeed()
}

// FetchBrokenAppliances replaces the list of broken appliances of storeID.
func (a *Appliances) FetchBrokenAppliances(ctx context.Context, storeID int64) {
	a.mu.Lock()
	a.brokenStatus.begin()
	a.mu.Unlock()

	var rows []api.HomeAppliance
	query := api.NewQuery(storeID).String("homeAppliancesState", ApplianceStateBroken)
	err := a.get(ctx, "fetchBrokenAppliances", api.PathHomeAppliancesState, query, &rows)

	a.mu.Lock()
	defer a.mu.Unlock()
	if err != nil {
		a.broken = []Appliance{}
		a.brokenStatus.fail(msgBrokenFailed)
		return
	}
	list := make([]Appliance, 0, len(rows))
	for _, row := range rows {
		list = append(list, toAppliance(row, ApplianceStateBroken))
	}
	a.broken = list
	a.brokenStatus.succeed()
}

// Clear resets both lists and both status slots.
func (a *Appliances) Clear() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.appliances = []Appliance{}
	a.broken = []Appliance{}
	a.appliancesStatus = Status{}
	a.brokenStatus = Status{}
}
