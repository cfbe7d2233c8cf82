package queries

import (
	"testing"
	"time"

	"github.com/agromercado/agromercado-backend/app/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildPublishFilterQueryNoFacets(t *testing.T) {
	query, args := buildPublishFilterQuery(models.FeedFilter{})

	assert.NotContains(t, query, "WHERE")
	assert.Empty(t, args)
}

func TestBuildPublishFilterQueryPriceBounds(t *testing.T) {
	minPrice := decimal.NewFromInt(15)
	maxPrice := decimal.NewFromInt(25)

	query, args := buildPublishFilterQuery(models.FeedFilter{
		MinPrice: &minPrice,
		MaxPrice: &maxPrice,
	})

	assert.Contains(t, query, "p.unit_price >= $1")
	assert.Contains(t, query, "p.unit_price <= $2")
	require.Len(t, args, 2)
	assert.True(t, args[0].(decimal.Decimal).Equal(minPrice))
	assert.True(t, args[1].(decimal.Decimal).Equal(maxPrice))
}

func TestBuildPublishFilterQueryGeography(t *testing.T) {
	query, args := buildPublishFilterQuery(models.FeedFilter{
		DepartmentID: 4,
		RegionID:     9,
	})

	// geography constrains the owner's district through the join
	assert.Contains(t, query, "JOIN users u ON u.uid = p.user_uid")
	assert.Contains(t, query, "LEFT JOIN districts d ON d.id = u.district_id")
	assert.Contains(t, query, "d.department_id = $1")
	assert.Contains(t, query, "d.region_id = $2")
	assert.Equal(t, []interface{}{int64(4), int64(9)}, args)
}

func TestBuildPublishFilterQueryDates(t *testing.T) {
	minDate := time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC)
	maxDate := time.Date(2021, 6, 30, 0, 0, 0, 0, time.UTC)

	query, args := buildPublishFilterQuery(models.FeedFilter{
		MinDate: &minDate,
		MaxDate: &maxDate,
	})

	assert.Contains(t, query, "p.harvest_date >= $1")
	assert.Contains(t, query, "p.harvest_date <= $2")
	assert.Equal(t, []interface{}{minDate, maxDate}, args)
}

func TestBuildPublishFilterQueryAllFacets(t *testing.T) {
	minPrice := decimal.NewFromInt(10)
	maxPrice := decimal.NewFromInt(99)
	minDate := time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC)
	maxDate := time.Date(2021, 12, 31, 0, 0, 0, 0, time.UTC)

	query, args := buildPublishFilterQuery(models.FeedFilter{
		SupplyID:     3,
		DepartmentID: 4,
		RegionID:     9,
		MinPrice:     &minPrice,
		MaxPrice:     &maxPrice,
		MinDate:      &minDate,
		MaxDate:      &maxDate,
	})

	assert.Contains(t, query, "p.supply_id = $1")
	assert.Contains(t, query, "p.unit_price >= $2")
	assert.Contains(t, query, "p.unit_price <= $3")
	assert.Contains(t, query, "p.harvest_date >= $4")
	assert.Contains(t, query, "p.harvest_date <= $5")
	assert.Contains(t, query, "d.department_id = $6")
	assert.Contains(t, query, "d.region_id = $7")
	assert.Len(t, args, 7)

	// all facets are conjunctive
	assert.Equal(t, 6, countOccurrences(query, " AND "))
}

func TestBuildPublishFilterQueryDeterministic(t *testing.T) {
	minPrice := decimal.NewFromInt(10)
	f := models.FeedFilter{SupplyID: 1, MinPrice: &minPrice}

	q1, a1 := buildPublishFilterQuery(f)
	q2, a2 := buildPublishFilterQuery(f)
	assert.Equal(t, q1, q2)
	assert.Equal(t, a1, a2)
}

func TestBuildOrderFilterQueryUsesDesiredHarvestDate(t *testing.T) {
	minDate := time.Date(2021, 3, 1, 0, 0, 0, 0, time.UTC)

	query, args := buildOrderFilterQuery(models.FeedFilter{
		SupplyID: 2,
		MinDate:  &minDate,
	})

	assert.Contains(t, query, "o.supply_id = $1")
	assert.Contains(t, query, "o.desired_harvest_date >= $2")
	assert.NotContains(t, query, "harvest_date <")
	assert.Equal(t, []interface{}{int64(2), minDate}, args)
}

func countOccurrences(s, sub string) int {
	count := 0
	for i := 0; i+len(sub) <= len(s); i++ {
		if s[i:i+len(sub)] == sub {
			count++
		}
	}
	return count
}
