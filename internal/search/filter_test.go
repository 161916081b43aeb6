package search

import (
	"testing"

	"staffdir/internal/core"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestPredicateAlwaysScopedToTenant(t *testing.T) {
	predicate := Filter{}.Predicate(42)
	require.Equal(t, bson.M{"tenantId": int64(42)}, predicate)
}

func TestPredicateOmitsEmptyValues(t *testing.T) {
	filter := Filter{Status: "active", Department: "Eng"}
	predicate := filter.Predicate(7)

	require.Equal(t, bson.M{
		"tenantId":   int64(7),
		"status":     core.Status("active"),
		"department": "Eng",
	}, predicate)
	require.NotContains(t, predicate, "location")
	require.NotContains(t, predicate, "company")
	require.NotContains(t, predicate, "position")
}

func TestPredicateAllFields(t *testing.T) {
	filter := Filter{
		Status:     "active",
		Location:   "Taipei",
		Company:    "Acme",
		Department: "Eng",
		Position:   "Backend",
	}
	predicate := filter.Predicate(1)
	require.Len(t, predicate, 6)
	require.Equal(t, int64(1), predicate["tenantId"])
}

func TestCacheKeyFixedShape(t *testing.T) {
	// The key always has six segments after the prefix, empty when unset.
	require.Equal(t, "employee_count:1:::::", Filter{}.CacheKey(1))
	require.Equal(t,
		"employee_count:7:active::Acme::",
		Filter{Status: "active", Company: "Acme"}.CacheKey(7))
	require.Equal(t,
		"employee_count:7:active:Taipei:Acme:Eng:Backend",
		Filter{Status: "active", Location: "Taipei", Company: "Acme", Department: "Eng", Position: "Backend"}.CacheKey(7))
}

func TestCacheKeyDeterministic(t *testing.T) {
	filter := Filter{Status: "active", Department: "Eng"}
	require.Equal(t, filter.CacheKey(3), filter.CacheKey(3))
}

func TestCacheKeyTenantIsolated(t *testing.T) {
	filter := Filter{Department: "Eng"}
	require.NotEqual(t, filter.CacheKey(1), filter.CacheKey(2))
}

func TestIsZero(t *testing.T) {
	require.True(t, Filter{}.IsZero())
	require.False(t, Filter{Position: "Backend"}.IsZero())
}
