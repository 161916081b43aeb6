package cron

import (
	"context"
	"fmt"

	"staffdir/config"
	"staffdir/internal/service"

	"github.com/google/wire"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

var ProviderSet = wire.NewSet(NewCron)

type Cron struct {
	logger           *zap.Logger
	server           *cron.Cron
	orgFieldsService *service.OrgFieldsService

	// 0 表示停用預熱排程
	warmIntervalMinutes int
}

func NewCron(
	logger *zap.Logger,
	conf *config.Configuration,
	orgFieldsService *service.OrgFieldsService,
) *Cron {
	return &Cron{
		logger:              logger,
		server:              cron.New(cron.WithSeconds()),
		orgFieldsService:    orgFieldsService,
		warmIntervalMinutes: conf.Search.Normalize().WarmIntervalMinutes,
	}
}

func (cronInstance *Cron) Run() error {
	if cronInstance.warmIntervalMinutes > 0 {
		schedule := fmt.Sprintf("0 */%d * * * *", cronInstance.warmIntervalMinutes)
		_, addError := cronInstance.server.AddFunc(schedule, func() {
			if warmError := cronInstance.orgFieldsService.Warm(context.Background()); warmError != nil {
				cronInstance.logger.Error("org fields warm job failed", zap.Error(warmError))
			}
		})
		if addError != nil {
			return addError
		}
		cronInstance.logger.Info("org fields warm job scheduled", zap.String("schedule", schedule))
	}

	cronInstance.server.Start()
	return nil
}

func (cronInstance *Cron) Stop(contextValue context.Context) error {
	stopContext := cronInstance.server.Stop()
	select {
	case <-stopContext.Done():
	case <-contextValue.Done():
		return contextValue.Err()
	}
	return nil
}
