package models

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFeedFilterEmpty(t *testing.T) {
	f, err := ParseFeedFilter(map[string]string{})
	require.NoError(t, err)

	assert.Zero(t, f.SupplyID)
	assert.Zero(t, f.DepartmentID)
	assert.Zero(t, f.RegionID)
	assert.Nil(t, f.MinPrice)
	assert.Nil(t, f.MaxPrice)
	assert.Nil(t, f.MinDate)
	assert.Nil(t, f.MaxDate)
}

func TestParseFeedFilterZeroSentinel(t *testing.T) {
	// "0" must behave exactly like an omitted parameter
	withSentinels, err := ParseFeedFilter(map[string]string{
		"supply":     "0",
		"department": "0",
		"region":     "0",
	})
	require.NoError(t, err)

	omitted, err := ParseFeedFilter(map[string]string{})
	require.NoError(t, err)

	assert.Equal(t, omitted, withSentinels)
}

func TestParseFeedFilterFull(t *testing.T) {
	f, err := ParseFeedFilter(map[string]string{
		"supply":     "3",
		"department": "7",
		"region":     "12",
		"min_price":  "15.50",
		"max_price":  "25",
		"min_date":   "2021-01-01",
		"max_date":   "2021-12-31",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(3), f.SupplyID)
	assert.Equal(t, int64(7), f.DepartmentID)
	assert.Equal(t, int64(12), f.RegionID)

	require.NotNil(t, f.MinPrice)
	require.NotNil(t, f.MaxPrice)
	assert.True(t, f.MinPrice.Equal(decimal.RequireFromString("15.50")))
	assert.True(t, f.MaxPrice.Equal(decimal.NewFromInt(25)))

	require.NotNil(t, f.MinDate)
	require.NotNil(t, f.MaxDate)
	assert.Equal(t, time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC), *f.MinDate)
	assert.Equal(t, time.Date(2021, 12, 31, 0, 0, 0, 0, time.UTC), *f.MaxDate)
}

func TestParseFeedFilterMalformed(t *testing.T) {
	cases := map[string]map[string]string{
		"supply not a number":  {"supply": "abc"},
		"negative supply":      {"supply": "-1"},
		"department garbage":   {"department": "x"},
		"region float":         {"region": "1.5"},
		"min_price garbage":    {"min_price": "cheap"},
		"max_price garbage":    {"max_price": "10,50"},
		"min_date bad layout":  {"min_date": "01/02/2021"},
		"max_date not a date":  {"max_date": "tomorrow"},
		"max_date wrong month": {"max_date": "2021-13-01"},
	}

	for name, params := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ParseFeedFilter(params)
			assert.Error(t, err)
		})
	}
}

func TestParseFeedFilterIgnoresEmptyValues(t *testing.T) {
	f, err := ParseFeedFilter(map[string]string{
		"supply":    "",
		"min_price": "",
		"min_date":  "",
	})
	require.NoError(t, err)
	assert.Zero(t, f.SupplyID)
	assert.Nil(t, f.MinPrice)
	assert.Nil(t, f.MinDate)
}
