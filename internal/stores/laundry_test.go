package stores

import (
	"context"
	"testing"

	"github.com/five82/storedash/internal/api"
)

func TestLaundrySupplies_LowStockBelowThirty(t *testing.T) {
	fake := newFakeAPI().json(api.PathLaundrySupplies, `[
		{"laundrySuppliesId": 1, "laundrySuppliesName": "Detergent", "storeCount": 29, "storeId": 7},
		{"laundrySuppliesId": 2, "laundrySuppliesName": "Softener", "storeCount": 30, "storeId": 7},
		{"laundrySuppliesId": 3, "laundrySuppliesName": "Dryer sheet", "storeCount": 0, "storeId": 8}
	]`)
	store := NewLaundrySupplies(fake, nil)

	store.FetchLaundrySupplies(context.Background(), 7)

	snap := store.Snapshot()
	if snap.ItemsStatus.HasError() || snap.ItemsStatus.Busy {
		t.Fatalf("ItemsStatus = %+v, want idle", snap.ItemsStatus)
	}
	if len(snap.LowStock) != 2 || snap.LowStock[0].LaundrySuppliesID != 1 || snap.LowStock[1].LaundrySuppliesID != 3 {
		t.Fatalf("LowStock = %+v, want ids 1 and 3", snap.LowStock)
	}
	if got := store.SuppliesByStore(8); len(got) != 1 || got[0].LaundrySuppliesID != 3 {
		t.Fatalf("SuppliesByStore(8) = %+v, want id 3", got)
	}
}

func TestLaundrySupplies_ServerLowStockIsNotRefiltered(t *testing.T) {
	fake := newFakeAPI().json(api.PathLaundrySuppliesLowStock, `[{"laundrySuppliesId": 5, "storeCount": 45}]`)
	store := NewLaundrySupplies(fake, nil)

	store.FetchLowStockFromServer(context.Background(), 7)

	snap := store.Snapshot()
	if got := snap.ServerLowStock; len(got) != 1 || got[0].StoreCount != 45 {
		t.Fatalf("ServerLowStock = %+v, want server payload", got)
	}
	if len(snap.LowStock) != 0 {
		t.Fatalf("LowStock = %+v, want client list untouched", snap.LowStock)
	}
}

func TestLaundrySupplies_Failures(t *testing.T) {
	fake := newFakeAPI().
		fail(api.PathLaundrySupplies).
		fail(api.PathLaundrySuppliesLowStock).
		fail(api.PathLaundrySuppliesTop5MonthCount).
		fail(api.PathLaundrySuppliesTop5YearCount)
	store := NewLaundrySupplies(fake, nil)
	ctx := context.Background()

	tests := []struct {
		name   string
		run    func()
		want   string
		status func(LaundrySnapshot) Status
	}{
		{"list", func() { store.FetchLaundrySupplies(ctx, 7) }, msgLaundryFailed,
			func(s LaundrySnapshot) Status { return s.ItemsStatus }},
		{"low stock", func() { store.FetchLowStockFromServer(ctx, 7) }, msgLaundryLowStockFailed,
			func(s LaundrySnapshot) Status { return s.ServerLowStockStatus }},
		{"monthly", func() { store.FetchMonthlyRank(ctx, 7, 2024, 1) }, msgLaundryMonthlyFailed,
			func(s LaundrySnapshot) Status { return s.MonthlyRankStatus }},
		{"yearly", func() { store.FetchYearlyRank(ctx, 7, 2024) }, msgLaundryYearlyFailed,
			func(s LaundrySnapshot) Status { return s.YearlyRankStatus }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.run()
			snap := store.Snapshot()
			if status := tt.status(snap); status.Error != tt.want || status.Busy {
				t.Fatalf("status = %+v, want error %q", status, tt.want)
			}
			if len(snap.Items)+len(snap.LowStock)+len(snap.ServerLowStock)+len(snap.MonthlyRank)+len(snap.YearlyRank) != 0 {
				t.Fatalf("snapshot = %+v, want empty lists", snap)
			}
		})
	}
}

func TestLaundrySupplies_Rankings(t *testing.T) {
	fake := newFakeAPI().
		json(api.PathLaundrySuppliesTop5MonthCount, `[
			{"laundrySuppliesId": 1, "totalSales": 3},
			{"laundrySuppliesId": 2, "totalSales": 8},
			{"laundrySuppliesId": 3, "totalSales": 1},
			{"laundrySuppliesId": 4, "totalSales": 8},
			{"laundrySuppliesId": 5, "totalSales": 6},
			{"laundrySuppliesId": 6, "totalSales": 7}
		]`).
		json(api.PathLaundrySuppliesTop5YearCount, `[]`)
	store := NewLaundrySupplies(fake, nil)

	store.FetchMonthlyRank(context.Background(), 7, 2024, 6)
	snap := store.Snapshot()
	want := []int64{2, 4, 6, 5, 1}
	if len(snap.MonthlyRank) != len(want) {
		t.Fatalf("MonthlyRank = %+v, want %v", snap.MonthlyRank, want)
	}
	for i, id := range want {
		if snap.MonthlyRank[i].LaundrySuppliesID != id {
			t.Fatalf("MonthlyRank[%d] = %d, want %d", i, snap.MonthlyRank[i].LaundrySuppliesID, id)
		}
	}

	store.FetchYearlyRank(context.Background(), 7, 2021)
	snap = store.Snapshot()
	if snap.YearlyRankStatus.Error != "2021년 세탁용품 판매량 데이터가 없습니다." {
		t.Fatalf("Error = %q, want empty-year message", snap.YearlyRankStatus.Error)
	}
	if snap.MonthlyRankStatus.HasError() {
		t.Fatalf("MonthlyRankStatus = %+v, want untouched by yearly fetch", snap.MonthlyRankStatus)
	}
	if len(snap.YearlyRank) != 0 {
		t.Fatalf("YearlyRank = %+v, want empty", snap.YearlyRank)
	}
	if len(snap.MonthlyRank) != 5 {
		t.Fatalf("MonthlyRank changed by yearly fetch: %+v", snap.MonthlyRank)
	}
}
