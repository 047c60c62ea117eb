package api

// Endpoint paths served by the backend.
const (
	PathMealKits                 = "/mealKits"
	PathMealKitsLowStock         = "/mealKits/less10"
	PathMealKitsMonthCount       = "/mealKits/month/count"
	PathMealKitsTop5MonthCount   = "/mealKits/top5/month/count"
	PathMealKitsTop5MonthRevenue = "/mealKits/top5/month/revenue"
	PathMealKitsTop5YearCount    = "/mealKits/top5/year/count"

	PathHomeAppliances      = "/homeAppliances"
	PathHomeAppliancesState = "/homeAppliances/state"

	PathLaundrySupplies               = "/laundrySupplies"
	PathLaundrySuppliesLowStock       = "/laundrySupplies/less10"
	PathLaundrySuppliesTop5MonthCount = "/laundrySupplies/top5/month/count"
	PathLaundrySuppliesTop5YearCount  = "/laundrySupplies/top5/year/count"

	PathOrdersMonthRevenue  = "/orders/month/revenue"
	PathOrdersMonthVisitors = "/orders/month/visitorCount"

	PathStores = "/stores"

	PathUsers       = "/users"
	PathUsersAge    = "/users/age"
	PathUsersGender = "/users/gender"
)

// MealKit mirrors an entry of /mealKits and /mealKits/less10.
type MealKit struct {
	MealKitID    int64  `json:"mealKitId"`
	MealKitName  string `json:"mealKitName"`
	MealKitPrice int64  `json:"mealKitPrice"`
	MealKitCount int    `json:"mealKitCount"`
	StoreID      int64  `json:"storeId"`
}

// MonthlyCount is one month of /mealKits/month/count.
type MonthlyCount struct {
	Month      int `json:"month"`
	SalesCount int `json:"salesCount"`
}

// SalesRank is a ranked meal kit returned by the top5 and user preference
// endpoints. Only one of TotalSales or MonthlyTotalRevenue is populated
// depending on the endpoint.
type SalesRank struct {
	MealKitID           int64  `json:"mealKitId"`
	MealKitName         string `json:"mealKitName"`
	TotalSales          int64  `json:"totalSales"`
	MonthlyTotalRevenue int64  `json:"monthlyTotalRevenue"`
}

// HomeAppliance mirrors /homeAppliances and /homeAppliances/state.
type HomeAppliance struct {
	HomeAppliancesID             int64   `json:"homeAppliancesId"`
	HomeAppliancesName           string  `json:"homeAppliancesName"`
	HomeAppliancesModelName      string  `json:"homeAppliancesModelName"`
	HomeAppliancesClassification string  `json:"homeAppliancesClassification"`
	HomeAppliancesState          *string `json:"homeAppliancesState"`
	StoreID                      int64   `json:"storeId"`
}

// LaundrySupply mirrors /laundrySupplies.
type LaundrySupply struct {
	LaundrySuppliesID   int64  `json:"laundrySuppliesId"`
	LaundrySuppliesName string `json:"laundrySuppliesName"`
	StoreCount          int    `json:"storeCount"`
	StoreID             int64  `json:"storeId"`
}

// SupplyRank is a ranked laundry supply from the top5 endpoints.
type SupplyRank struct {
	LaundrySuppliesID   int64  `json:"laundrySuppliesId"`
	LaundrySuppliesName string `json:"laundrySuppliesName"`
	TotalSales          int64  `json:"totalSales"`
}

// MonthlyRevenue is one month of /orders/month/revenue.
type MonthlyRevenue struct {
	Month        int   `json:"month"`
	TotalRevenue int64 `json:"totalRevenue"`
}

// MonthlyVisitors is one month of /orders/month/visitorCount.
type MonthlyVisitors struct {
	Month        int   `json:"month"`
	VisitorCount int64 `json:"visitorCount"`
}

// Store mirrors /stores.
type Store struct {
	StoreID   int64  `json:"storeId"`
	StoreName string `json:"storeName"`
}

// User mirrors /users.
type User struct {
	UserID     int64  `json:"userId"`
	UserName   string `json:"userName"`
	UserAge    int    `json:"userAge"`
	UserGender string `json:"userGender"`
	StoreID    int64  `json:"storeId"`
}
