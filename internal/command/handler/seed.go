package command

import (
	"context"
	"time"

	"staffdir/internal/core"
	"staffdir/internal/database/mongodb/model"
	"staffdir/internal/database/mongodb/repository"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type SeedHandler struct {
	logger                 *zap.Logger
	organizationRepository *repository.OrganizationRepository
	employeeRepository     *repository.EmployeeRepository
}

func NewSeedHandler(
	logger *zap.Logger,
	organizationRepository *repository.OrganizationRepository,
	employeeRepository *repository.EmployeeRepository,
) *SeedHandler {
	return &SeedHandler{
		logger:                 logger,
		organizationRepository: organizationRepository,
		employeeRepository:     employeeRepository,
	}
}

// Seed 建立示範租戶與員工，方便本機對 API 做手動測試
func (handler *SeedHandler) Seed(cmd *cobra.Command, args []string) {
	contextValue, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	organizations := []*model.Organization{
		{
			Name:          "Acme Holdings",
			VisibleFields: []string{"id", "name", "department", "location", "position", "company", "status", "contact_info"},
			Status:        core.StatusActive,
		},
		{
			Name:          "Globex Taiwan",
			VisibleFields: []string{"id", "name", "department"},
			Status:        core.StatusActive,
		},
	}

	for _, organization := range organizations {
		created, createError := handler.organizationRepository.Create(contextValue, organization)
		if createError != nil {
			handler.logger.Error("seed organization failed",
				zap.String("name", organization.Name), zap.Error(createError))
			continue
		}
		cmd.Printf("organization created: id=%d name=%s\n", created.ID, created.Name)

		for _, employee := range demoEmployees(created.ID) {
			createdEmployee, employeeError := handler.employeeRepository.Create(contextValue, employee)
			if employeeError != nil {
				handler.logger.Error("seed employee failed",
					zap.Int64("tenantID", created.ID), zap.String("name", employee.Name), zap.Error(employeeError))
				continue
			}
			cmd.Printf("  employee created: id=%d name=%s\n", createdEmployee.ID, createdEmployee.Name)
		}
	}
}

func demoEmployees(tenantIdentifier int64) []*model.Employee {
	return []*model.Employee{
		{
			TenantID:   tenantIdentifier,
			Name:       "林怡君",
			Department: "Engineering",
			Location:   "Taipei",
			Position:   "Backend Engineer",
			Company:    "Acme Holdings",
			Status:     core.StatusActive,
			ContactInfo: model.ContactInfo{
				Email: "yichun.lin@example.com",
				Phone: "+886-2-1234-5678",
			},
		},
		{
			TenantID:   tenantIdentifier,
			Name:       "陳建宏",
			Department: "Engineering",
			Location:   "Kaohsiung",
			Position:   "SRE",
			Company:    "Acme Holdings",
			Status:     core.StatusActive,
			ContactInfo: model.ContactInfo{
				Email: "chienhung.chen@example.com",
				Phone: "+886-7-8765-4321",
			},
		},
		{
			TenantID:   tenantIdentifier,
			Name:       "王淑芬",
			Department: "HR",
			Location:   "Taipei",
			Position:   "HR Specialist",
			Company:    "Acme Holdings",
			Status:     core.StatusInactive,
			ContactInfo: model.ContactInfo{
				Email: "shufen.wang@example.com",
				Phone: "+886-2-2468-1357",
			},
		},
	}
}
