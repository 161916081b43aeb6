package service

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	"staffdir/internal/core"
	"staffdir/internal/database/mongodb/model"
	"staffdir/internal/search"
	"staffdir/internal/telemetry"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// ---- fakes ----

type fakeEmployeeStore struct {
	employees  []*model.Employee
	countCalls int
	findErr    error
	countErr   error
}

func matchesPredicate(predicate bson.M, e *model.Employee) bool {
	for key, value := range predicate {
		switch key {
		case "tenantId":
			if e.TenantID != value.(int64) {
				return false
			}
		case "status":
			if e.Status != value.(core.Status) {
				return false
			}
		case "location":
			if e.Location != value.(string) {
				return false
			}
		case "company":
			if e.Company != value.(string) {
				return false
			}
		case "department":
			if e.Department != value.(string) {
				return false
			}
		case "position":
			if e.Position != value.(string) {
				return false
			}
		}
	}
	return true
}

func (f *fakeEmployeeStore) matching(predicate bson.M) []*model.Employee {
	var matched []*model.Employee
	for _, e := range f.employees {
		if matchesPredicate(predicate, e) {
			matched = append(matched, e)
		}
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].ID < matched[j].ID })
	return matched
}

func (f *fakeEmployeeStore) FindPage(_ context.Context, predicate bson.M, offset, limit int64) ([]*model.Employee, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	matched := f.matching(predicate)
	if offset >= int64(len(matched)) {
		return nil, nil
	}
	matched = matched[offset:]
	if int64(len(matched)) > limit {
		matched = matched[:limit]
	}
	return matched, nil
}

func (f *fakeEmployeeStore) FindAfter(_ context.Context, predicate bson.M, cursor, limit int64) ([]*model.Employee, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	var matched []*model.Employee
	for _, e := range f.matching(predicate) {
		if e.ID > cursor {
			matched = append(matched, e)
		}
	}
	if int64(len(matched)) > limit {
		matched = matched[:limit]
	}
	return matched, nil
}

func (f *fakeEmployeeStore) Count(_ context.Context, predicate bson.M) (int64, error) {
	f.countCalls++
	if f.countErr != nil {
		return 0, f.countErr
	}
	return int64(len(f.matching(predicate))), nil
}

type fakeCountCache struct {
	data     map[string]int64
	getErr   error
	setErr   error
	setCalls int
	lastTTL  time.Duration
}

func (f *fakeCountCache) Get(_ context.Context, key string) (int64, bool, error) {
	if f.getErr != nil {
		return 0, false, f.getErr
	}
	v, ok := f.data[key]
	return v, ok, nil
}

func (f *fakeCountCache) Set(_ context.Context, key string, count int64, ttl time.Duration) error {
	f.setCalls++
	f.lastTTL = ttl
	if f.setErr != nil {
		return f.setErr
	}
	if f.data == nil {
		f.data = map[string]int64{}
	}
	f.data[key] = count
	return nil
}

type fakeFieldsResolver struct {
	fields map[int64][]string
	err    error
}

func (f *fakeFieldsResolver) Resolve(_ context.Context, tenantID int64) ([]string, error) {
	if f.err != nil {
		return nil, f.err
	}
	fields, ok := f.fields[tenantID]
	if !ok {
		return nil, errors.New("organization not found")
	}
	return fields, nil
}

// ---- setup ----

func directoryFixture() *fakeEmployeeStore {
	return &fakeEmployeeStore{employees: []*model.Employee{
		{ID: 1, TenantID: 1, Name: "Lin Wei", Department: "HR", Status: core.StatusActive},
		{ID: 2, TenantID: 1, Name: "Chen Yu", Department: "Eng", Status: core.StatusActive},
		{ID: 3, TenantID: 1, Name: "Wang Min", Department: "Eng", Status: core.StatusActive},
		{ID: 4, TenantID: 2, Name: "Other Tenant", Department: "Eng", Status: core.StatusActive},
	}}
}

func newTestEmployeeService(store *fakeEmployeeStore, counts *fakeCountCache, fields *fakeFieldsResolver) *EmployeeService {
	return &EmployeeService{
		trace:        &telemetry.Trace{},
		logger:       zap.NewNop(),
		store:        store,
		counts:       counts,
		fields:       fields,
		defaultLimit: 20,
		maxLimit:     100,
		countTTL:     60 * time.Second,
	}
}

func tenantOneFields() *fakeFieldsResolver {
	return &fakeFieldsResolver{fields: map[int64][]string{
		1: {"id", "name", "department"},
	}}
}

// ---- tests ----

func TestSearchOffsetFullListing(t *testing.T) {
	// Scenario: no filters, limit 20 over a 3-employee tenant.
	svc := newTestEmployeeService(directoryFixture(), &fakeCountCache{}, tenantOneFields())

	result, err := svc.SearchOffset(context.Background(), 1, search.Filter{}, 20, 0)
	require.NoError(t, err)
	require.Equal(t, int64(3), result.Count)
	require.Len(t, result.Results, 3)
	for _, record := range result.Results {
		require.Len(t, record, 3)
		require.Contains(t, record, "id")
		require.Contains(t, record, "name")
		require.Contains(t, record, "department")
	}
}

func TestSearchCursorFirstPage(t *testing.T) {
	// Scenario: department=Eng, limit 1, no cursor.
	svc := newTestEmployeeService(directoryFixture(), &fakeCountCache{}, tenantOneFields())

	result, err := svc.SearchCursor(context.Background(), 1, search.Filter{Department: "Eng"}, 1, nil)
	require.NoError(t, err)
	require.Equal(t, int64(2), result.Count)
	require.Len(t, result.Results, 1)
	require.Equal(t, int64(2), result.Results[0]["id"])
	require.NotNil(t, result.NextCursor)
	require.Equal(t, int64(2), *result.NextCursor)
}

func TestSearchCursorLastPage(t *testing.T) {
	// Scenario: second page via the cursor from the first; set exhausted.
	svc := newTestEmployeeService(directoryFixture(), &fakeCountCache{}, tenantOneFields())

	cursor := int64(2)
	result, err := svc.SearchCursor(context.Background(), 1, search.Filter{Department: "Eng"}, 1, &cursor)
	require.NoError(t, err)
	require.Equal(t, int64(2), result.Count)
	require.Len(t, result.Results, 1)
	require.Equal(t, int64(3), result.Results[0]["id"])
	require.Nil(t, result.NextCursor)
}

func TestSearchCursorWalkYieldsFullSet(t *testing.T) {
	svc := newTestEmployeeService(directoryFixture(), &fakeCountCache{}, tenantOneFields())

	var seen []int64
	var cursor *int64
	for {
		result, err := svc.SearchCursor(context.Background(), 1, search.Filter{}, 1, cursor)
		require.NoError(t, err)
		for _, record := range result.Results {
			seen = append(seen, record["id"].(int64))
		}
		if result.NextCursor == nil {
			break
		}
		cursor = result.NextCursor
	}
	require.Equal(t, []int64{1, 2, 3}, seen)
}

func TestTenantIsolation(t *testing.T) {
	store := directoryFixture()
	resolver := &fakeFieldsResolver{fields: map[int64][]string{
		1: {"id", "name"},
		2: {"id", "name"},
	}}
	svc := newTestEmployeeService(store, &fakeCountCache{}, resolver)

	result, err := svc.SearchOffset(context.Background(), 2, search.Filter{Department: "Eng"}, 20, 0)
	require.NoError(t, err)
	require.Equal(t, int64(1), result.Count)
	require.Len(t, result.Results, 1)
	require.Equal(t, int64(4), result.Results[0]["id"])
}

func TestOffsetPaginationBounds(t *testing.T) {
	svc := newTestEmployeeService(directoryFixture(), &fakeCountCache{}, tenantOneFields())

	result, err := svc.SearchOffset(context.Background(), 1, search.Filter{}, 2, 2)
	require.NoError(t, err)
	require.Equal(t, int64(3), result.Count)
	require.Len(t, result.Results, 1)

	result, err = svc.SearchOffset(context.Background(), 1, search.Filter{}, 2, 10)
	require.NoError(t, err)
	require.Empty(t, result.Results)
	require.Equal(t, int64(3), result.Count)
}

func TestLimitValidatedBeforeAnyIO(t *testing.T) {
	store := directoryFixture()
	counts := &fakeCountCache{}
	svc := newTestEmployeeService(store, counts, tenantOneFields())

	_, err := svc.SearchOffset(context.Background(), 1, search.Filter{}, 101, 0)
	require.Error(t, err)

	_, err = svc.SearchOffset(context.Background(), 1, search.Filter{}, -1, 0)
	require.Error(t, err)

	_, err = svc.SearchOffset(context.Background(), 1, search.Filter{}, 20, -1)
	require.Error(t, err)

	require.Zero(t, store.countCalls)
	require.Zero(t, counts.setCalls)
}

func TestDefaultLimitApplied(t *testing.T) {
	svc := newTestEmployeeService(directoryFixture(), &fakeCountCache{}, tenantOneFields())

	result, err := svc.SearchOffset(context.Background(), 1, search.Filter{}, 0, 0)
	require.NoError(t, err)
	require.Equal(t, int64(20), result.Limit)
}

func TestCountServedFromCache(t *testing.T) {
	store := directoryFixture()
	key := search.Filter{}.CacheKey(1)
	counts := &fakeCountCache{data: map[string]int64{key: 99}}
	svc := newTestEmployeeService(store, counts, tenantOneFields())

	// Cached value wins even though the store only holds 3 matching rows.
	result, err := svc.SearchOffset(context.Background(), 1, search.Filter{}, 20, 0)
	require.NoError(t, err)
	require.Equal(t, int64(99), result.Count)
	require.Zero(t, store.countCalls)
}

func TestCountCachePopulatedOnMiss(t *testing.T) {
	store := directoryFixture()
	counts := &fakeCountCache{}
	svc := newTestEmployeeService(store, counts, tenantOneFields())

	_, err := svc.SearchOffset(context.Background(), 1, search.Filter{}, 20, 0)
	require.NoError(t, err)
	require.Equal(t, 1, store.countCalls)
	require.Equal(t, 1, counts.setCalls)
	require.Equal(t, 60*time.Second, counts.lastTTL)
	require.Equal(t, int64(3), counts.data[search.Filter{}.CacheKey(1)])
}

func TestCountCacheUnavailableFallsBackToStore(t *testing.T) {
	store := directoryFixture()
	counts := &fakeCountCache{getErr: errors.New("connection refused")}
	svc := newTestEmployeeService(store, counts, tenantOneFields())

	result, err := svc.SearchOffset(context.Background(), 1, search.Filter{}, 20, 0)
	require.NoError(t, err)
	require.Equal(t, int64(3), result.Count)
	require.Equal(t, 1, store.countCalls)
	// No repopulation attempt while the cache is down.
	require.Zero(t, counts.setCalls)
}

func TestStoreCountErrorFailsRequest(t *testing.T) {
	store := directoryFixture()
	store.countErr = errors.New("boom")
	svc := newTestEmployeeService(store, &fakeCountCache{}, tenantOneFields())

	_, err := svc.SearchOffset(context.Background(), 1, search.Filter{}, 20, 0)
	require.Error(t, err)
}

func TestUnknownTenantPropagatesNotFound(t *testing.T) {
	store := directoryFixture()
	counts := &fakeCountCache{}
	svc := newTestEmployeeService(store, counts, tenantOneFields())

	_, err := svc.SearchOffset(context.Background(), 9, search.Filter{}, 20, 0)
	require.Error(t, err)
	// Tenant resolution failed before any employee data access.
	require.Zero(t, store.countCalls)
}
