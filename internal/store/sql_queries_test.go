// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/vip-motors/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T {
	return &v
}

func Test_buildListHypercarsQuery(t *testing.T) {
	tests := []struct {
		name       string
		filter     models.HypercarFilter
		checkQuery func(t *testing.T, query string, args []any)
	}{
		{
			name:   "defaults: active only, newest first, no paging",
			filter: models.HypercarFilter{},
			checkQuery: func(t *testing.T, query string, args []any) {
				require.Contains(t, query, "FROM hypercars WHERE (is_active)")
				require.Contains(t, query, "ORDER BY created_at DESC, id")
				require.NotContains(t, query, "LIMIT")
				require.Empty(t, args)
			},
		},
		{
			name:   "page and limit become offset",
			filter: models.HypercarFilter{Page: 3, Limit: 10},
			checkQuery: func(t *testing.T, query string, args []any) {
				require.Contains(t, query, "LIMIT 10 OFFSET 20")
			},
		},
		{
			name:   "dotted sort key is whitelisted",
			filter: models.HypercarFilter{SortBy: "price.amount", SortOrder: "asc"},
			checkQuery: func(t *testing.T, query string, args []any) {
				require.Contains(t, query, "ORDER BY price_amount ASC, id")
			},
		},
		{
			name:   "unknown sort key falls back to created_at",
			filter: models.HypercarFilter{SortBy: "password_hash; DROP TABLE users", SortOrder: "asc"},
			checkQuery: func(t *testing.T, query string, args []any) {
				require.Contains(t, query, "ORDER BY created_at ASC, id")
				require.NotContains(t, query, "DROP")
			},
		},
		{
			name: "ranges are parameterized in column order",
			filter: models.HypercarFilter{
				MinPrice: ptr(1000000.0),
				MaxPrice: ptr(3000000.0),
				MinPower: ptr(1000.0),
				MaxSpeed: ptr(300.0),
			},
			checkQuery: func(t *testing.T, query string, args []any) {
				require.Contains(t, query, "price_amount >= $1")
				require.Contains(t, query, "price_amount <= $2")
				require.Contains(t, query, "power_value >= $3")
				require.Contains(t, query, "top_speed_value <= $4")
				require.Equal(t, []any{1000000.0, 3000000.0, 1000.0, 300.0}, args)
			},
		},
		{
			name:   "search escapes like wildcards",
			filter: models.HypercarFilter{Search: " 100%_fast "},
			checkQuery: func(t *testing.T, query string, args []any) {
				q := strings.ToLower(query)
				require.Contains(t, q, "brand ilike $1")
				require.Contains(t, q, "name ilike $2")
				require.Contains(t, q, "document->'description'->>'short' ilike $3")
				require.Len(t, args, 3)
				for _, arg := range args {
					require.Equal(t, `%100\%\_fast%`, arg)
				}
			},
		},
		{
			name: "brand, status, featured and id sets",
			filter: models.HypercarFilter{
				Brand:      "Bugatti",
				Status:     models.StatusSold,
				Featured:   ptr(true),
				IDs:        []string{"a", "b"},
				ExcludeIDs: []string{"c"},
			},
			checkQuery: func(t *testing.T, query string, args []any) {
				require.Contains(t, query, "LOWER(brand) = LOWER($1)")
				require.Contains(t, query, "status = $2")
				require.Contains(t, query, "is_featured = $3")
				require.Contains(t, query, "id IN ($4,$5)")
				require.Contains(t, query, "id NOT IN ($6)")
				require.Equal(t, []any{"Bugatti", "sold", true, "a", "b", "c"}, args)
			},
		},
		{
			name:   "brand set",
			filter: models.HypercarFilter{Brands: []string{"Bugatti", "Pagani"}},
			checkQuery: func(t *testing.T, query string, args []any) {
				require.Contains(t, query, "brand IN ($1,$2)")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildListHypercarsQuery(tt.filter)
			require.NoError(t, err)
			tt.checkQuery(t, query, args)
		})
	}
}

func Test_buildCountHypercarsQuery_SharesConditions(t *testing.T) {
	filter := models.HypercarFilter{Brand: "Pagani", Page: 2, Limit: 5, SortBy: "views"}

	query, args, err := buildCountHypercarsQuery(filter)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(query, "SELECT COUNT(*) FROM hypercars WHERE"))
	assert.NotContains(t, query, "ORDER BY")
	assert.NotContains(t, query, "LIMIT")
	assert.Equal(t, []any{"Pagani"}, args)
}

func TestHypercarSortColumn(t *testing.T) {
	tests := []struct {
		sortBy string
		column string
		ok     bool
	}{
		{"", "created_at", true},
		{"createdAt", "created_at", true},
		{"price", "price_amount", true},
		{"specs.power.value", "power_value", true},
		{"topSpeed", "top_speed_value", true},
		{"acceleration", "acceleration_value", true},
		{"favorites", "favorites", true},
		{"password_hash", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.sortBy, func(t *testing.T) {
			column, ok := HypercarSortColumn(tt.sortBy)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.column, column)
		})
	}
}

func Test_buildPriceDistributionQuery(t *testing.T) {
	query, args, err := buildPriceDistributionQuery([]models.PriceBucket{
		{Min: 0, Max: 1000000},
		{Min: 4000000},
	})
	require.NoError(t, err)

	assert.Contains(t, query, "COUNT(*) FILTER (WHERE price_amount >= $1 AND price_amount < $2)")
	assert.Contains(t, query, "COUNT(*) FILTER (WHERE price_amount >= $3)")
	assert.Contains(t, query, "FROM hypercars WHERE is_active")
	assert.Equal(t, []any{0.0, 1000000.0, 4000000.0}, args)

	_, _, err = buildPriceDistributionQuery(nil)
	require.ErrorIs(t, err, ErrBuildingSQLQuery)
}

func Test_buildUpdateAccountQuery(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	role := models.RoleModerator

	query, args, err := buildUpdateAccountQuery("id-1", models.AccountUpdate{
		ProfileUpdate: models.ProfileUpdate{Phone: ptr("+15551234567")},
		Role:          &role,
	}, now)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(query, "UPDATE users SET updated_at = $1, phone = $2, role = $3 WHERE id = $4 RETURNING"))
	assert.Equal(t, []any{now, "+15551234567", "moderator", "id-1"}, args)
}

func Test_buildListAccountsQuery(t *testing.T) {
	query, args, err := buildListAccountsQuery(models.AccountFilter{Page: 0, Limit: 20, IsActive: ptr(false)})
	require.NoError(t, err)

	assert.Contains(t, query, "WHERE (is_active = $1)")
	assert.Contains(t, query, "LIMIT 20 OFFSET 0")
	assert.Equal(t, []any{false}, args)
}

func Test_buildFavoriteHypercarsQuery(t *testing.T) {
	query, args, err := buildFavoriteHypercarsQuery("acc-1", 2, 6)
	require.NoError(t, err)

	assert.Contains(t, query, "h.id, h.brand, h.name")
	assert.Contains(t, query, "f.created_at FROM user_favorites f JOIN hypercars h ON h.id = f.hypercar_id")
	assert.Contains(t, query, "WHERE f.user_id = $1 AND h.is_active")
	assert.Contains(t, query, "LIMIT 6 OFFSET 6")
	assert.Equal(t, []any{"acc-1"}, args)
}
