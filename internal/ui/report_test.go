package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/five82/storedash/internal/api"
	"github.com/five82/storedash/internal/state"
	"github.com/five82/storedash/internal/stores"
)

func sampleSnapshot() state.Snapshot {
	store := api.Store{StoreID: 3, StoreName: "강남점"}
	top := api.SalesRank{MealKitID: 1, MealKitName: "불고기", TotalSales: 40}
	return state.Snapshot{
		Selection: state.Selection{StoreID: 3, Year: 2024, Month: 5},
		StoreList: stores.StoreListSnapshot{Stores: []api.Store{store}, Selected: &store},
		MealKits: stores.MealKitSnapshot{
			Items: []api.MealKit{
				{MealKitID: 1, MealKitName: "불고기", MealKitPrice: 12000, MealKitCount: 5, StoreID: 3},
				{MealKitID: 2, MealKitName: "잡채", MealKitPrice: 11000, MealKitCount: 7, StoreID: 4},
			},
			Selected: []api.MealKit{
				{MealKitID: 1, MealKitName: "불고기", MealKitPrice: 12000, MealKitCount: 5, StoreID: 3},
			},
			Cart:                 []stores.CartLine{{ID: 1, Name: "불고기", Price: 12000, Quantity: 2}},
			MonthlyRank:          []api.SalesRank{top},
			MonthlyRevenueStatus: stores.Status{Error: "월별 밀키트 매출 랭킹 데이터를 불러오는 데 실패했습니다."},
			YearlyRankStatus:     stores.Status{Error: "2024년 밀키트 판매량 데이터가 없습니다."},
		},
		Appliances: stores.ApplianceSnapshot{
			Broken: []stores.Appliance{{ID: 9, Name: "세탁기", Status: stores.ApplianceStateBroken}},
		},
		Orders: stores.OrderSnapshot{
			MonthlyRevenue: []api.MonthlyRevenue{{Month: 5, TotalRevenue: 1500000}},
			AvailableYears: []int{2024, 2022},
		},
		Users: stores.UserSnapshot{
			Users: []api.User{
				{UserID: 1, UserGender: stores.GenderMale},
				{UserID: 2, UserGender: stores.GenderFemale},
				{UserID: 3, UserGender: stores.GenderFemale},
			},
			TopByAge: map[int]*api.SalesRank{20: &top, 30: nil, 40: nil, 50: nil},
		},
	}
}

func renderReport(t *testing.T, d state.Domain) string {
	t.Helper()
	var buf bytes.Buffer
	if err := RenderReport(&buf, sampleSnapshot(), d, "Slate"); err != nil {
		t.Fatalf("RenderReport returned error: %v", err)
	}
	return buf.String()
}

func TestRenderReport_MealKits(t *testing.T) {
	out := renderReport(t, state.DomainMealKits)
	for _, want := range []string{"강남점 (#3)", "2024년 5월", "12,000원", "합계 24,000원", "판매량 TOP5",
		"월별 밀키트 매출 랭킹 데이터를 불러오는 데 실패했습니다.", "2024년 밀키트 판매량 데이터가 없습니다."} {
		if !strings.Contains(out, want) {
			t.Fatalf("report missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "잡채") {
		t.Fatalf("report lists a kit of another store:\n%s", out)
	}
	if strings.Contains(out, serverLowStockTitle) {
		t.Fatalf("report shows the server low-stock list before it was fetched:\n%s", out)
	}
}

func TestRenderReport_Orders(t *testing.T) {
	out := renderReport(t, state.DomainOrders)
	for _, want := range []string{"1,500,000원", "연 매출 1,500,000원", "2024  2022"} {
		if !strings.Contains(out, want) {
			t.Fatalf("report missing %q:\n%s", want, out)
		}
	}
}

func TestRenderReport_UsersAndAppliances(t *testing.T) {
	users := renderReport(t, state.DomainUsers)
	if !strings.Contains(users, "전체 3명 · 남 1명 · 여 2명") || !strings.Contains(users, "20대") {
		t.Fatalf("users report = %s, want summary and age rows", users)
	}

	appliances := renderReport(t, state.DomainAppliances)
	if !strings.Contains(appliances, "세탁기") || !strings.Contains(appliances, stores.ApplianceStateBroken) {
		t.Fatalf("appliances report = %s, want broken washer", appliances)
	}
	if !strings.Contains(appliances, "데이터가 없습니다.") {
		t.Fatalf("appliances report = %s, want empty placeholder for full list", appliances)
	}
}

func TestStoreLabel(t *testing.T) {
	tests := []struct {
		name string
		snap state.Snapshot
		want string
	}{
		{"selected", sampleSnapshot(), "강남점 (#3)"},
		{"unknown id", state.Snapshot{Selection: state.Selection{StoreID: 8}}, "매장 #8"},
		{"none", state.Snapshot{}, "전체 매장"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := storeLabel(tt.snap); got != tt.want {
				t.Fatalf("storeLabel = %q, want %q", got, tt.want)
			}
		})
	}
}
