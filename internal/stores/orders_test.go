package stores

import (
	"context"
	"net/url"
	"reflect"
	"testing"

	"github.com/five82/storedash/internal/api"
)

func revenueByYear(years map[string]string) responder {
	return func(q url.Values) (string, error) {
		if body, ok := years[q.Get("year")]; ok {
			return body, nil
		}
		return `[]`, nil
	}
}

func TestOrderStats_AvailableYearsAccumulate(t *testing.T) {
	fake := newFakeAPI().route(api.PathOrdersMonthRevenue, revenueByYear(map[string]string{
		"2022": `[{"month": 1, "totalRevenue": 0}, {"month": 2, "totalRevenue": 10}]`,
		"2023": `[{"month": 1, "totalRevenue": 0}, {"month": 2, "totalRevenue": 0}]`,
		"2024": `[{"month": 5, "totalRevenue": 300}]`,
	}))
	store := NewOrderStats(fake, nil)
	ctx := context.Background()

	store.FetchMonthlyRevenue(ctx, 7, 2022)
	store.FetchMonthlyRevenue(ctx, 7, 2023)
	store.FetchMonthlyRevenue(ctx, 7, 2024)
	store.FetchMonthlyRevenue(ctx, 7, 2022)

	snap := store.Snapshot()
	if want := []int{2024, 2022}; !reflect.DeepEqual(snap.AvailableYears, want) {
		t.Fatalf("AvailableYears = %v, want %v", snap.AvailableYears, want)
	}
	if len(snap.MonthlyRevenue) != 2 || snap.MonthlyRevenue[1].TotalRevenue != 10 {
		t.Fatalf("MonthlyRevenue = %+v, want last fetched year 2022", snap.MonthlyRevenue)
	}
}

func TestOrderStats_InitializeAvailableYearsResetsAndProbesInOrder(t *testing.T) {
	fake := newFakeAPI().route(api.PathOrdersMonthRevenue, revenueByYear(map[string]string{
		"2021": `[{"month": 3, "totalRevenue": 1}]`,
		"2023": `[{"month": 3, "totalRevenue": 1}]`,
	}))
	store := NewOrderStats(fake, nil)
	ctx := context.Background()

	store.FetchMonthlyRevenue(ctx, 7, 2023)
	store.InitializeAvailableYears(ctx, 7, []int{2021, 2022, 2023})

	if got, want := store.Snapshot().AvailableYears, []int{2023, 2021}; !reflect.DeepEqual(got, want) {
		t.Fatalf("AvailableYears = %v, want %v", got, want)
	}
	calls := fake.callsTo(api.PathOrdersMonthRevenue)
	if len(calls) != 4 {
		t.Fatalf("revenue calls = %d, want 4", len(calls))
	}
	for i, year := range []string{"2023", "2021", "2022", "2023"} {
		if calls[i].query.Get("year") != year {
			t.Fatalf("call %d year = %q, want %q", i, calls[i].query.Get("year"), year)
		}
	}

	store.InitializeAvailableYears(ctx, 7, nil)
	if got := store.Snapshot().AvailableYears; got == nil || len(got) != 0 {
		t.Fatalf("AvailableYears = %#v, want empty list", got)
	}
}

func TestOrderStats_NullPayloadIsEmptyNotError(t *testing.T) {
	fake := newFakeAPI().
		json(api.PathOrdersMonthRevenue, `null`).
		json(api.PathOrdersMonthVisitors, `null`)
	store := NewOrderStats(fake, nil)

	store.FetchMonthlyRevenue(context.Background(), 7, 2024)
	store.FetchMonthlyVisitors(context.Background(), 7, 2024)

	snap := store.Snapshot()
	if snap.RevenueStatus.HasError() || snap.VisitorsStatus.HasError() {
		t.Fatalf("status = %+v / %+v, want none", snap.RevenueStatus, snap.VisitorsStatus)
	}
	if snap.MonthlyRevenue == nil || snap.MonthlyVisitors == nil {
		t.Fatalf("lists = %#v / %#v, want empty non-nil", snap.MonthlyRevenue, snap.MonthlyVisitors)
	}
	if len(snap.AvailableYears) != 0 {
		t.Fatalf("AvailableYears = %v, want empty", snap.AvailableYears)
	}
}

func TestOrderStats_Failures(t *testing.T) {
	fake := newFakeAPI().
		json(api.PathOrdersMonthVisitors, `[{"month": 1, "visitorCount": 12}]`).
		fail(api.PathOrdersMonthRevenue)
	store := NewOrderStats(fake, nil)
	ctx := context.Background()

	store.FetchMonthlyVisitors(ctx, 7, 2024)
	if got := store.Snapshot().MonthlyVisitors; len(got) != 1 || got[0].VisitorCount != 12 {
		t.Fatalf("MonthlyVisitors = %+v, want one month", got)
	}

	store.FetchMonthlyRevenue(ctx, 7, 2024)
	snap := store.Snapshot()
	if snap.RevenueStatus.Error != msgRevenueFailed || len(snap.MonthlyRevenue) != 0 || len(snap.AvailableYears) != 0 {
		t.Fatalf("snapshot = %+v, want revenue failure", snap)
	}
	if snap.VisitorsStatus.HasError() {
		t.Fatalf("VisitorsStatus = %+v, want untouched by revenue failure", snap.VisitorsStatus)
	}

	fake.fail(api.PathOrdersMonthVisitors)
	store.FetchMonthlyVisitors(ctx, 7, 2024)
	snap = store.Snapshot()
	if snap.VisitorsStatus.Error != msgVisitorsFailed || len(snap.MonthlyVisitors) != 0 {
		t.Fatalf("snapshot = %+v, want visitors failure", snap)
	}
}
