package service

import (
	"context"
	"errors"
	"time"

	"staffdir/config"
	"staffdir/internal/core"
	"staffdir/internal/database/mongodb/model"
	mongorepo "staffdir/internal/database/mongodb/repository"
	redisrepo "staffdir/internal/database/redis/repository"
	cErr "staffdir/internal/pkg/error"
	"staffdir/internal/search"
	"staffdir/internal/telemetry"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// organizationStore 供測試替換的組織讀取介面
type organizationStore interface {
	GetByID(ctx context.Context, id int64) (*model.Organization, error)
	ListActive(ctx context.Context) ([]*model.Organization, error)
}

// orgFieldsCache 供測試替換的欄位快取介面
type orgFieldsCache interface {
	Get(ctx context.Context, tenantID int64) ([]string, bool, error)
	Set(ctx context.Context, tenantID int64, fields []string, ttl time.Duration) error
}

// OrgFieldsService 解析各租戶的可見欄位：快取讀穿，未命中回源並回填
type OrgFieldsService struct {
	trace  *telemetry.Trace
	metric *telemetry.Metric
	logger *zap.Logger
	store  organizationStore
	cache  orgFieldsCache
	ttl    time.Duration
}

func NewOrgFieldsService(
	trace *telemetry.Trace,
	metric *telemetry.Metric,
	logger *zap.Logger,
	config *config.Configuration,
	organizationRepo *mongorepo.OrganizationRepository,
	orgFieldsRepo *redisrepo.OrgFieldsRepository,
) *OrgFieldsService {
	searchConfig := config.Search.Normalize()
	return &OrgFieldsService{
		trace:  trace,
		metric: metric,
		logger: logger,
		store:  organizationRepo,
		cache:  orgFieldsRepo,
		ttl:    time.Duration(searchConfig.OrgFieldsTTLSeconds) * time.Second,
	}
}

// Resolve 回傳租戶設定的可見欄位。
// 租戶不存在、非啟用、或欄位清單為空，一律回 organization not found。
// 快取連不上時直接回源查詢，不讓請求失敗。
func (s *OrgFieldsService) Resolve(ctx context.Context, tenantIdentifier int64) (_ []string, returnedError error) {
	ctx, span, end := s.trace.WithSpan(ctx)
	defer func() { end(returnedError) }()

	traceMetadata := core.TraceOrgFieldsMeta{TenantID: tenantIdentifier}

	fields, found, cacheError := s.cache.Get(ctx, tenantIdentifier)
	if cacheError != nil {
		s.logger.Warn("org fields cache unavailable, falling back to store",
			zap.Int64("tenantID", tenantIdentifier), zap.Error(cacheError))
	}
	if found {
		traceMetadata.CacheHit = true
		traceMetadata.Fields = len(fields)
		s.trace.ApplyTraceAttributes(span, traceMetadata)
		s.countCache(true)
		return fields, nil
	}
	s.countCache(false)

	organization, storeError := s.store.GetByID(ctx, tenantIdentifier)
	if storeError != nil {
		if errors.Is(storeError, mongo.ErrNoDocuments) {
			traceMetadata.Status = "not_found"
			s.trace.ApplyTraceAttributes(span, traceMetadata)
			return nil, cErr.OrganizationNotFound()
		}
		returnedError = cErr.DatabaseError("database GetOrganizationByID error")
		return nil, returnedError
	}
	if organization.Status != core.StatusActive || len(organization.VisibleFields) == 0 {
		traceMetadata.Status = string(organization.Status)
		s.trace.ApplyTraceAttributes(span, traceMetadata)
		return nil, cErr.OrganizationNotFound()
	}
	if validateError := search.ValidateFields(organization.VisibleFields); validateError != nil {
		returnedError = cErr.FieldConfigError(validateError.Error())
		return nil, returnedError
	}

	// 快取回填失敗不影響請求
	if cacheError == nil {
		if setError := s.cache.Set(ctx, tenantIdentifier, organization.VisibleFields, s.ttl); setError != nil {
			s.logger.Warn("failed to populate org fields cache",
				zap.Int64("tenantID", tenantIdentifier), zap.Error(setError))
		}
	}

	traceMetadata.Fields = len(organization.VisibleFields)
	traceMetadata.Status = string(organization.Status)
	s.trace.ApplyTraceAttributes(span, traceMetadata)
	return organization.VisibleFields, nil
}

// Warm 預熱所有啟用中租戶的欄位快取（排程任務用）
func (s *OrgFieldsService) Warm(ctx context.Context) (returnedError error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer func() { end(returnedError) }()

	organizations, listError := s.store.ListActive(ctx)
	if listError != nil {
		returnedError = listError
		return returnedError
	}

	warmed := 0
	for _, organization := range organizations {
		if len(organization.VisibleFields) == 0 {
			continue
		}
		if search.ValidateFields(organization.VisibleFields) != nil {
			s.logger.Warn("skipping warm for organization with invalid field config",
				zap.Int64("tenantID", organization.ID))
			continue
		}
		if setError := s.cache.Set(ctx, organization.ID, organization.VisibleFields, s.ttl); setError != nil {
			s.logger.Warn("failed to warm org fields cache",
				zap.Int64("tenantID", organization.ID), zap.Error(setError))
			continue
		}
		warmed++
	}
	s.logger.Info("org fields cache warmed", zap.Int("organizations", warmed))
	return nil
}

func (s *OrgFieldsService) countCache(hit bool) {
	if s.metric == nil {
		return
	}
	if hit {
		if s.metric.CacheHitTotal != nil {
			s.metric.CacheHitTotal.WithLabelValues(string(core.RedisKeyOrgFields)).Inc()
		}
		return
	}
	if s.metric.CacheMissTotal != nil {
		s.metric.CacheMissTotal.WithLabelValues(string(core.RedisKeyOrgFields)).Inc()
	}
}
