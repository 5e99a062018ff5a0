// Package domain holds DTOs for businesses http and service contracts
package domain

import "hugin/internal/core/filter"

// Sort keys the page endpoint supports
const (
	SortRevenue   = "revenue"
	SortEmployees = "employees"
	SortName      = "name"
)

// PageInput is the resolved input for one page request
type PageInput struct {
	Filter  filter.Query
	SortBy  string `validate:"omitempty,oneof=revenue employees name"`
	Order   string `validate:"omitempty,oneof=asc desc"`
	Limit   int
	Cursor  string
	Explain bool
}

// Business is one result row
type Business struct {
	ID            int64  `json:"id"`
	OrgNumber     string `json:"org_number"`
	Name          string `json:"name"`
	IndustryCode  string `json:"industry_code,omitempty"`
	IndustryText  string `json:"industry_text,omitempty"`
	OrgFormCode   string `json:"org_form_code,omitempty"`
	City          string `json:"city,omitempty"`
	Revenue       *int64 `json:"revenue"`
	Employees     *int64 `json:"employees"`
	VatRegistered bool   `json:"vat_registered"`
}

// CursorOut carries the continuation token; Next is null on the last page
// and for name-sorted requests, which do not support keyset continuation
type CursorOut struct {
	Next *string `json:"next"`
}

// PageResult is the page endpoint payload
type PageResult struct {
	Items  []Business `json:"items"`
	Cursor CursorOut  `json:"cursor"`
	TookMs int64      `json:"took_ms"`
}

// CountResult is the count endpoint payload
type CountResult struct {
	Total  int64 `json:"total"`
	TookMs int64 `json:"took_ms"`
}

// ExplainResult carries the query plan diagnostic when explain=true
type ExplainResult struct {
	Plan string `json:"plan"`
}
