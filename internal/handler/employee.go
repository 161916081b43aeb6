package handler

import (
	"context"
	"time"

	"staffdir/config"
	"staffdir/internal/dto"
	cErr "staffdir/internal/pkg/error"
	"staffdir/internal/pkg/response"
	"staffdir/internal/search"
	"staffdir/internal/service"
	"staffdir/internal/telemetry"
	"staffdir/utils/validate"

	"github.com/gin-gonic/gin"
)

type EmployeeHandler struct {
	trace           *telemetry.Trace
	employeeService *service.EmployeeService
	requestTimeout  time.Duration
}

func NewEmployeeHandler(trace *telemetry.Trace, config *config.Configuration, employeeService *service.EmployeeService) *EmployeeHandler {
	searchConfig := config.Search.Normalize()
	return &EmployeeHandler{
		trace:           trace,
		employeeService: employeeService,
		requestTimeout:  time.Duration(searchConfig.RequestTimeoutMillis) * time.Millisecond,
	}
}

// ListOffset 員工列表（偏移分頁）
// @Summary 依條件查詢員工（offset 分頁）
// @Tags Employee
// @Security BearerAuth
// @Produce json
// @Param org_id query int false "組織 ID（需與 token 租戶一致）"
// @Param status query string false "狀態"
// @Param location query string false "地點"
// @Param company query string false "公司"
// @Param department query string false "部門"
// @Param position query string false "職位"
// @Param limit query int false "每頁筆數（1-100，預設 20）"
// @Param offset query int false "偏移量"
// @Success 200 {object} dto.OffsetPageDto
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/v1/employees [get]
func (h *EmployeeHandler) ListOffset(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	tenantIdentifier, filter, err := h.scope(c)
	if err != nil {
		end(err)
		response.AbortWithError(c, err)
		return
	}

	limit, parseError := validate.GetInt64Query(c, "limit", 0)
	if parseError != nil {
		end(parseError)
		response.AbortWithError(c, cErr.BadRequestParams("limit must be an integer"))
		return
	}
	offset, parseError := validate.GetInt64Query(c, "offset", 0)
	if parseError != nil {
		end(parseError)
		response.AbortWithError(c, cErr.BadRequestParams("offset must be an integer"))
		return
	}

	ctx, cancel := context.WithTimeout(ctx, h.requestTimeout)
	defer cancel()

	result, searchError := h.employeeService.SearchOffset(ctx, tenantIdentifier, filter, limit, offset)
	if searchError != nil {
		end(searchError)
		response.AbortWithError(c, searchError)
		return
	}
	response.Success(c, result)
}

// ListCursor 員工列表（游標分頁）
// @Summary 依條件查詢員工（cursor 分頁）
// @Tags Employee
// @Security BearerAuth
// @Produce json
// @Param org_id query int false "組織 ID（需與 token 租戶一致）"
// @Param status query string false "狀態"
// @Param location query string false "地點"
// @Param company query string false "公司"
// @Param department query string false "部門"
// @Param position query string false "職位"
// @Param limit query int false "每頁筆數（1-100，預設 20）"
// @Param cursor query int false "上一頁最後一筆的 ID"
// @Success 200 {object} dto.CursorPageDto
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/v1/employees/cursor [get]
func (h *EmployeeHandler) ListCursor(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	tenantIdentifier, filter, err := h.scope(c)
	if err != nil {
		end(err)
		response.AbortWithError(c, err)
		return
	}

	limit, parseError := validate.GetInt64Query(c, "limit", 0)
	if parseError != nil {
		end(parseError)
		response.AbortWithError(c, cErr.BadRequestParams("limit must be an integer"))
		return
	}
	cursor, parseError := validate.GetOptionalInt64Query(c, "cursor")
	if parseError != nil {
		end(parseError)
		response.AbortWithError(c, cErr.BadRequestParams("cursor must be an integer"))
		return
	}

	ctx, cancel := context.WithTimeout(ctx, h.requestTimeout)
	defer cancel()

	result, searchError := h.employeeService.SearchCursor(ctx, tenantIdentifier, filter, limit, cursor)
	if searchError != nil {
		end(searchError)
		response.AbortWithError(c, searchError)
		return
	}
	response.Success(c, result)
}

// scope 取出呼叫者租戶並組合查詢條件。
// org_id 有帶且與 token 租戶不符時回 not found，不透露該組織是否存在。
func (h *EmployeeHandler) scope(c *gin.Context) (int64, search.Filter, error) {
	rawID, ok := c.Get("tenantID")
	if !ok {
		return 0, search.Filter{}, cErr.Unauthorized("missing tenant identity")
	}
	tenantIdentifier, _ := rawID.(int64)

	var query dto.EmployeeSearchQueryDto
	if cause, responseError := validate.BindQueryAndValidate(c, &query); cause != nil {
		return 0, search.Filter{}, responseError
	}
	if query.OrgID != nil && *query.OrgID != tenantIdentifier {
		return 0, search.Filter{}, cErr.OrganizationNotFound()
	}
	if query.Status != "" && !validate.IsValidStatus(query.Status) {
		return 0, search.Filter{}, cErr.BadRequestParams("unknown status value")
	}

	return tenantIdentifier, search.Filter{
		Status:     query.Status,
		Location:   query.Location,
		Company:    query.Company,
		Department: query.Department,
		Position:   query.Position,
	}, nil
}
