package models

import (
	"fmt"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

// FeedFilter is the parsed form of the faceted feed query parameters.
// Every field is an optional conjunctive constraint: zero ID fields and nil
// pointers mean "not supplied", so the matching predicate is omitted entirely
// rather than compared against a default.
type FeedFilter struct {
	SupplyID     int64
	DepartmentID int64
	RegionID     int64
	MinPrice     *decimal.Decimal
	MaxPrice     *decimal.Decimal
	MinDate      *time.Time
	MaxDate      *time.Time
}

const filterDateLayout = "2006-01-02"

// ParseFeedFilter parses the filter query parameters. The literal value "0"
// for supply/department/region is a sentinel meaning "not supplied" and is
// folded into the absent case. Malformed numbers and dates are rejected.
func ParseFeedFilter(params map[string]string) (FeedFilter, error) {
	f := FeedFilter{}

	ids := []struct {
		name string
		dst  *int64
	}{
		{"supply", &f.SupplyID},
		{"department", &f.DepartmentID},
		{"region", &f.RegionID},
	}
	for _, p := range ids {
		raw, ok := params[p.name]
		if !ok || raw == "" {
			continue
		}
		v, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || v < 0 {
			return f, fmt.Errorf("invalid %s parameter", p.name)
		}
		// 0 is the "not supplied" sentinel, leave the field unset
		if v != 0 {
			*p.dst = v
		}
	}

	prices := []struct {
		name string
		dst  **decimal.Decimal
	}{
		{"min_price", &f.MinPrice},
		{"max_price", &f.MaxPrice},
	}
	for _, p := range prices {
		raw, ok := params[p.name]
		if !ok || raw == "" {
			continue
		}
		v, err := decimal.NewFromString(raw)
		if err != nil {
			return f, fmt.Errorf("invalid %s parameter", p.name)
		}
		*p.dst = &v
	}

	dates := []struct {
		name string
		dst  **time.Time
	}{
		{"min_date", &f.MinDate},
		{"max_date", &f.MaxDate},
	}
	for _, p := range dates {
		raw, ok := params[p.name]
		if !ok || raw == "" {
			continue
		}
		v, err := time.Parse(filterDateLayout, raw)
		if err != nil {
			return f, fmt.Errorf("invalid %s parameter", p.name)
		}
		*p.dst = &v
	}

	return f, nil
}
