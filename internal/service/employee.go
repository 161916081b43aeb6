package service

import (
	"context"
	"time"

	"staffdir/config"
	"staffdir/internal/core"
	fluentdmodel "staffdir/internal/database/fluentd/model"
	fluentdrepo "staffdir/internal/database/fluentd/repository"
	"staffdir/internal/database/mongodb/model"
	mongorepo "staffdir/internal/database/mongodb/repository"
	redisrepo "staffdir/internal/database/redis/repository"
	"staffdir/internal/dto"
	cErr "staffdir/internal/pkg/error"
	"staffdir/internal/search"
	"staffdir/internal/telemetry"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// employeeStore 供測試替換的員工讀取介面
type employeeStore interface {
	FindPage(ctx context.Context, filter bson.M, offset, limit int64) ([]*model.Employee, error)
	FindAfter(ctx context.Context, filter bson.M, cursor, limit int64) ([]*model.Employee, error)
	Count(ctx context.Context, filter bson.M) (int64, error)
}

// countCache 供測試替換的計數快取介面
type countCache interface {
	Get(ctx context.Context, key string) (int64, bool, error)
	Set(ctx context.Context, key string, count int64, ttl time.Duration) error
}

// fieldsResolver 供測試替換的欄位解析介面
type fieldsResolver interface {
	Resolve(ctx context.Context, tenantID int64) ([]string, error)
}

// searchAuditor 查詢審計紀錄（Fluentd）
type searchAuditor interface {
	LogSearch(ctx context.Context, log fluentdmodel.SearchLog) error
}

// EmployeeService 員工查詢引擎：
// 條件 → 謂詞 + 快取 key → 計數（快取讀穿）與取頁併發執行 → 欄位投影 → 回應封裝
type EmployeeService struct {
	trace  *telemetry.Trace
	metric *telemetry.Metric
	logger *zap.Logger
	store  employeeStore
	counts countCache
	fields fieldsResolver
	audit  searchAuditor

	defaultLimit int64
	maxLimit     int64
	countTTL     time.Duration
}

func NewEmployeeService(
	trace *telemetry.Trace,
	metric *telemetry.Metric,
	logger *zap.Logger,
	config *config.Configuration,
	employeeRepo *mongorepo.EmployeeRepository,
	countRepo *redisrepo.CountRepository,
	orgFieldsService *OrgFieldsService,
	logRepo *fluentdrepo.LogRepository,
) *EmployeeService {
	searchConfig := config.Search.Normalize()
	return &EmployeeService{
		trace:        trace,
		metric:       metric,
		logger:       logger,
		store:        employeeRepo,
		counts:       countRepo,
		fields:       orgFieldsService,
		audit:        logRepo,
		defaultLimit: searchConfig.DefaultLimit,
		maxLimit:     searchConfig.MaxLimit,
		countTTL:     time.Duration(searchConfig.CountTTLSeconds) * time.Second,
	}
}

// SearchOffset 偏移分頁查詢
func (s *EmployeeService) SearchOffset(
	ctx context.Context,
	tenantIdentifier int64,
	filter search.Filter,
	limit int64,
	offset int64,
) (_ *dto.OffsetPageDto, returnedError error) {
	ctx, span, end := s.trace.WithSpan(ctx)
	defer func() { end(returnedError) }()

	page := search.PageRequest{Mode: search.ModeOffset, Limit: limit, Offset: offset}.Normalize(s.defaultLimit)
	if validateError := page.Validate(s.maxLimit); validateError != nil {
		returnedError = cErr.BadRequestParams(validateError.Error())
		return nil, returnedError
	}

	visibleFields, count, employees, countCacheHit, searchError := s.execute(ctx, tenantIdentifier, filter, page)
	traceMetadata := core.TraceSearchMeta{
		TenantID:      tenantIdentifier,
		Mode:          string(search.ModeOffset),
		Limit:         page.Limit,
		Offset:        page.Offset,
		Count:         count,
		ResultCount:   len(employees),
		CountCacheHit: countCacheHit,
	}
	if searchError != nil {
		traceMetadata.Error = searchError.Error()
		s.trace.ApplyTraceAttributes(span, traceMetadata)
		s.countSearch(search.ModeOffset, false)
		return nil, searchError
	}
	s.trace.ApplyTraceAttributes(span, traceMetadata)
	s.countSearch(search.ModeOffset, true)
	s.logSearch(ctx, tenantIdentifier, search.ModeOffset, filter, page.Limit, count, len(employees))

	return &dto.OffsetPageDto{
		Limit:   page.Limit,
		Offset:  page.Offset,
		Count:   count,
		Results: search.ProjectAll(employees, visibleFields),
	}, nil
}

// SearchCursor 游標分頁查詢；next_cursor 僅在取滿一頁時回傳
func (s *EmployeeService) SearchCursor(
	ctx context.Context,
	tenantIdentifier int64,
	filter search.Filter,
	limit int64,
	cursor *int64,
) (_ *dto.CursorPageDto, returnedError error) {
	ctx, span, end := s.trace.WithSpan(ctx)
	defer func() { end(returnedError) }()

	page := search.PageRequest{Mode: search.ModeCursor, Limit: limit, Cursor: cursor}.Normalize(s.defaultLimit)
	if validateError := page.Validate(s.maxLimit); validateError != nil {
		returnedError = cErr.BadRequestParams(validateError.Error())
		return nil, returnedError
	}

	visibleFields, count, employees, countCacheHit, searchError := s.execute(ctx, tenantIdentifier, filter, page)

	// 第 limit+1 筆只用來判斷續頁，不進入結果
	hasMore := int64(len(employees)) > page.Limit
	if hasMore {
		employees = employees[:page.Limit]
	}

	traceMetadata := core.TraceSearchMeta{
		TenantID:      tenantIdentifier,
		Mode:          string(search.ModeCursor),
		Limit:         page.Limit,
		Count:         count,
		ResultCount:   len(employees),
		CountCacheHit: countCacheHit,
	}
	if page.Cursor != nil {
		traceMetadata.Cursor = *page.Cursor
	}
	if searchError != nil {
		traceMetadata.Error = searchError.Error()
		s.trace.ApplyTraceAttributes(span, traceMetadata)
		s.countSearch(search.ModeCursor, false)
		return nil, searchError
	}
	s.trace.ApplyTraceAttributes(span, traceMetadata)
	s.countSearch(search.ModeCursor, true)
	s.logSearch(ctx, tenantIdentifier, search.ModeCursor, filter, page.Limit, count, len(employees))

	var nextCursor *int64
	if hasMore {
		last := employees[len(employees)-1].ID
		nextCursor = &last
	}

	return &dto.CursorPageDto{
		Limit:      page.Limit,
		Cursor:     page.Cursor,
		NextCursor: nextCursor,
		Count:      count,
		Results:    search.ProjectAll(employees, visibleFields),
	}, nil
}

// execute 以同一份謂詞快照併發解析計數與取頁
func (s *EmployeeService) execute(
	ctx context.Context,
	tenantIdentifier int64,
	filter search.Filter,
	page search.PageRequest,
) (visibleFields []string, count int64, employees []*model.Employee, countCacheHit bool, returnedError error) {

	// 先解析可見欄位：租戶不存在就不再碰員工資料
	visibleFields, resolveError := s.fields.Resolve(ctx, tenantIdentifier)
	if resolveError != nil {
		return nil, 0, nil, false, resolveError
	}

	predicate := filter.Predicate(tenantIdentifier)
	cacheKey := filter.CacheKey(tenantIdentifier)

	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		resolvedCount, hit, countError := s.resolveCount(groupCtx, cacheKey, predicate)
		if countError != nil {
			return countError
		}
		count, countCacheHit = resolvedCount, hit
		return nil
	})

	group.Go(func() error {
		var fetchError error
		switch page.Mode {
		case search.ModeCursor:
			afterCursor := int64(0)
			if page.Cursor != nil {
				afterCursor = *page.Cursor
			}
			// 多取一筆用來判斷是否還有下一頁
			employees, fetchError = s.store.FindAfter(groupCtx, predicate, afterCursor, page.Limit+1)
		default:
			employees, fetchError = s.store.FindPage(groupCtx, predicate, page.Offset, page.Limit)
		}
		if fetchError != nil {
			return cErr.DatabaseError("database FindEmployees error")
		}
		return nil
	})

	if waitError := group.Wait(); waitError != nil {
		return nil, 0, nil, false, cErr.From(waitError)
	}
	return visibleFields, count, employees, countCacheHit, nil
}

// resolveCount 計數快取讀穿；快取連不上時直接回源計數
func (s *EmployeeService) resolveCount(ctx context.Context, cacheKey string, predicate bson.M) (count int64, hit bool, returnedError error) {
	cachedCount, found, cacheError := s.counts.Get(ctx, cacheKey)
	if cacheError != nil {
		s.logger.Warn("count cache unavailable, falling back to store",
			zap.String("key", cacheKey), zap.Error(cacheError))
	}
	if found {
		s.countCacheMetric(true)
		return cachedCount, true, nil
	}
	s.countCacheMetric(false)

	storeCount, countError := s.store.Count(ctx, predicate)
	if countError != nil {
		return 0, false, cErr.DatabaseError("database CountEmployees error")
	}

	// 快取回填失敗不影響請求
	if cacheError == nil {
		if setError := s.counts.Set(ctx, cacheKey, storeCount, s.countTTL); setError != nil {
			s.logger.Warn("failed to populate count cache", zap.String("key", cacheKey), zap.Error(setError))
		}
	}
	return storeCount, false, nil
}

func (s *EmployeeService) logSearch(ctx context.Context, tenantIdentifier int64, mode search.Mode, filter search.Filter, limit, count int64, resultCount int) {
	if s.audit == nil {
		return
	}
	if logError := s.audit.LogSearch(ctx, fluentdmodel.SearchLog{
		TenantID:    tenantIdentifier,
		Mode:        string(mode),
		Status:      filter.Status,
		Location:    filter.Location,
		Company:     filter.Company,
		Department:  filter.Department,
		Position:    filter.Position,
		Limit:       limit,
		Count:       count,
		ResultCount: resultCount,
	}); logError != nil {
		s.logger.Warn("failed to ship search audit log", zap.Error(logError))
	}
}

func (s *EmployeeService) countSearch(mode search.Mode, ok bool) {
	if s.metric == nil || s.metric.SearchTotal == nil {
		return
	}
	status := "ok"
	if !ok {
		status = "error"
	}
	s.metric.SearchTotal.WithLabelValues(string(mode), status).Inc()
}

func (s *EmployeeService) countCacheMetric(hit bool) {
	if s.metric == nil {
		return
	}
	if hit {
		if s.metric.CacheHitTotal != nil {
			s.metric.CacheHitTotal.WithLabelValues(string(core.RedisKeyEmployeeCount)).Inc()
		}
		return
	}
	if s.metric.CacheMissTotal != nil {
		s.metric.CacheMissTotal.WithLabelValues(string(core.RedisKeyEmployeeCount)).Inc()
	}
}
