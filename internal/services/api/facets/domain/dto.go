// Package domain holds DTOs for the facet aggregate contracts
package domain

// RevenueRange is the global revenue and profit span across all businesses
type RevenueRange struct {
	MinRevenue *int64 `json:"min_revenue"`
	MaxRevenue *int64 `json:"max_revenue"`
	MinProfit  *int64 `json:"min_profit"`
	MaxProfit  *int64 `json:"max_profit"`
}

// ProfitRange is the global profit span
type ProfitRange struct {
	MinProfit *int64 `json:"min_profit"`
	MaxProfit *int64 `json:"max_profit"`
}

// Industry is one distinct industry code with its description
type Industry struct {
	Code string `json:"code"`
	Text string `json:"text"`
}

// EventTypes is the distinct event type list
type EventTypes struct {
	Types []string `json:"types"`
}
