package router

import (
	"staffdir/internal/handler"
	"staffdir/internal/middleware"

	"github.com/gin-gonic/gin"
)

type EmployeeRouter struct {
	employeeHandler *handler.EmployeeHandler
	auth            *middleware.Auth
	rateLimit       *middleware.RateLimit
}

func NewEmployeeRouter(
	employeeHandler *handler.EmployeeHandler,
	auth *middleware.Auth,
	rateLimit *middleware.RateLimit,
) *EmployeeRouter {
	return &EmployeeRouter{
		employeeHandler: employeeHandler,
		auth:            auth,
		rateLimit:       rateLimit,
	}
}

func (er *EmployeeRouter) RegisterRoutes(r *gin.Engine) {
	employees := r.Group("/api/v1/employees", er.auth.Guard(), er.rateLimit.Guard())
	{
		employees.GET("", er.employeeHandler.ListOffset)
		employees.GET("/cursor", er.employeeHandler.ListCursor)
	}
}
