package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"staffdir/internal/core"
	"staffdir/internal/database/mongodb/model"
	"staffdir/internal/telemetry"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// ---- fakes ----

type fakeOrgStore struct {
	orgs     map[int64]*model.Organization
	getCalls int
	listErr  error
}

func (f *fakeOrgStore) GetByID(_ context.Context, id int64) (*model.Organization, error) {
	f.getCalls++
	org, ok := f.orgs[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return org, nil
}

func (f *fakeOrgStore) ListActive(_ context.Context) ([]*model.Organization, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	var active []*model.Organization
	for _, org := range f.orgs {
		if org.Status == core.StatusActive {
			active = append(active, org)
		}
	}
	return active, nil
}

type fakeOrgFieldsCache struct {
	data     map[int64][]string
	getErr   error
	setErr   error
	setCalls int
	lastTTL  time.Duration
}

func (f *fakeOrgFieldsCache) Get(_ context.Context, tenantID int64) ([]string, bool, error) {
	if f.getErr != nil {
		return nil, false, f.getErr
	}
	fields, ok := f.data[tenantID]
	return fields, ok, nil
}

func (f *fakeOrgFieldsCache) Set(_ context.Context, tenantID int64, fields []string, ttl time.Duration) error {
	f.setCalls++
	f.lastTTL = ttl
	if f.setErr != nil {
		return f.setErr
	}
	if f.data == nil {
		f.data = map[int64][]string{}
	}
	f.data[tenantID] = fields
	return nil
}

func newTestOrgFieldsService(store *fakeOrgStore, cache *fakeOrgFieldsCache) *OrgFieldsService {
	return &OrgFieldsService{
		trace:  &telemetry.Trace{},
		logger: zap.NewNop(),
		store:  store,
		cache:  cache,
		ttl:    time.Hour,
	}
}

func activeOrg(id int64, fields []string) *model.Organization {
	return &model.Organization{ID: id, Name: "Org", VisibleFields: fields, Status: core.StatusActive}
}

// ---- tests ----

func TestResolveCacheHitSkipsStore(t *testing.T) {
	store := &fakeOrgStore{orgs: map[int64]*model.Organization{1: activeOrg(1, []string{"id", "name"})}}
	cache := &fakeOrgFieldsCache{data: map[int64][]string{1: {"id", "name", "department"}}}
	svc := newTestOrgFieldsService(store, cache)

	fields, err := svc.Resolve(context.Background(), 1)
	require.NoError(t, err)
	require.Equal(t, []string{"id", "name", "department"}, fields)
	require.Zero(t, store.getCalls)
}

func TestResolveMissLoadsAndPopulates(t *testing.T) {
	store := &fakeOrgStore{orgs: map[int64]*model.Organization{1: activeOrg(1, []string{"id", "name"})}}
	cache := &fakeOrgFieldsCache{}
	svc := newTestOrgFieldsService(store, cache)

	fields, err := svc.Resolve(context.Background(), 1)
	require.NoError(t, err)
	require.Equal(t, []string{"id", "name"}, fields)
	require.Equal(t, 1, store.getCalls)
	require.Equal(t, 1, cache.setCalls)
	require.Equal(t, time.Hour, cache.lastTTL)
}

func TestResolveUnknownTenantNotFound(t *testing.T) {
	svc := newTestOrgFieldsService(&fakeOrgStore{orgs: map[int64]*model.Organization{}}, &fakeOrgFieldsCache{})

	_, err := svc.Resolve(context.Background(), 42)
	require.Error(t, err)
	require.Contains(t, err.Error(), "not-found")
}

func TestResolveInactiveTenantNotFound(t *testing.T) {
	org := activeOrg(1, []string{"id"})
	org.Status = core.StatusSuspended
	svc := newTestOrgFieldsService(&fakeOrgStore{orgs: map[int64]*model.Organization{1: org}}, &fakeOrgFieldsCache{})

	_, err := svc.Resolve(context.Background(), 1)
	require.Error(t, err)
	require.Contains(t, err.Error(), "not-found")
}

func TestResolveEmptyFieldListNotFound(t *testing.T) {
	// An active tenant without configured fields is treated as not found.
	svc := newTestOrgFieldsService(&fakeOrgStore{orgs: map[int64]*model.Organization{1: activeOrg(1, nil)}}, &fakeOrgFieldsCache{})

	_, err := svc.Resolve(context.Background(), 1)
	require.Error(t, err)
	require.Contains(t, err.Error(), "not-found")
}

func TestResolveUnknownConfiguredFieldRejected(t *testing.T) {
	svc := newTestOrgFieldsService(&fakeOrgStore{orgs: map[int64]*model.Organization{1: activeOrg(1, []string{"id", "salary"})}}, &fakeOrgFieldsCache{})

	_, err := svc.Resolve(context.Background(), 1)
	require.Error(t, err)
	require.Contains(t, err.Error(), "field-config-error")
}

func TestResolveCacheUnavailableFallsBackToStore(t *testing.T) {
	store := &fakeOrgStore{orgs: map[int64]*model.Organization{1: activeOrg(1, []string{"id", "name"})}}
	cache := &fakeOrgFieldsCache{getErr: errors.New("connection refused")}
	svc := newTestOrgFieldsService(store, cache)

	fields, err := svc.Resolve(context.Background(), 1)
	require.NoError(t, err)
	require.Equal(t, []string{"id", "name"}, fields)
	require.Equal(t, 1, store.getCalls)
	// No repopulation attempt while the cache is down.
	require.Zero(t, cache.setCalls)
}

func TestResolvePopulateFailureDoesNotFailRequest(t *testing.T) {
	store := &fakeOrgStore{orgs: map[int64]*model.Organization{1: activeOrg(1, []string{"id", "name"})}}
	cache := &fakeOrgFieldsCache{setErr: errors.New("oom")}
	svc := newTestOrgFieldsService(store, cache)

	fields, err := svc.Resolve(context.Background(), 1)
	require.NoError(t, err)
	require.Equal(t, []string{"id", "name"}, fields)
}

func TestWarmPopulatesActiveOrganizations(t *testing.T) {
	inactive := activeOrg(3, []string{"id"})
	inactive.Status = core.StatusInactive
	store := &fakeOrgStore{orgs: map[int64]*model.Organization{
		1: activeOrg(1, []string{"id", "name"}),
		2: activeOrg(2, []string{"id", "department"}),
		3: inactive,
	}}
	cache := &fakeOrgFieldsCache{}
	svc := newTestOrgFieldsService(store, cache)

	require.NoError(t, svc.Warm(context.Background()))
	require.Equal(t, 2, cache.setCalls)
	require.Equal(t, []string{"id", "name"}, cache.data[1])
	require.Equal(t, []string{"id", "department"}, cache.data[2])
	require.NotContains(t, cache.data, int64(3))
}

func TestWarmSkipsInvalidFieldConfig(t *testing.T) {
	store := &fakeOrgStore{orgs: map[int64]*model.Organization{
		1: activeOrg(1, []string{"id", "salary"}),
	}}
	cache := &fakeOrgFieldsCache{}
	svc := newTestOrgFieldsService(store, cache)

	require.NoError(t, svc.Warm(context.Background()))
	require.Zero(t, cache.setCalls)
}
