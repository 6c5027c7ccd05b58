package models

// CashflowSummary aggregates money in and out over a reporting period.
// All computation happens server-side; the client only renders it.
type CashflowSummary struct {
	Income  float64 `json:"income"`
	Expense float64 `json:"expense"`
	Balance float64 `json:"balance"`
}

// ProfitReport is the server-computed profit breakdown for a period.
type ProfitReport struct {
	Revenue     float64 `json:"revenue"`
	CostOfGoods float64 `json:"cost_of_goods"`
	GrossProfit float64 `json:"gross_profit"`
}

// DashboardSummary backs the dashboard metrics screen.
type DashboardSummary struct {
	TodayRevenue      float64 `json:"today_revenue"`
	TodayTransactions int     `json:"today_transactions"`
	ProductCount      int     `json:"product_count"`
	LowStockCount     int     `json:"low_stock_count"`
}
