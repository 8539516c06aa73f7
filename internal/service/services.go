package service

import (
	"time"

	"github.com/MKhiriev/dumpman/internal/config"
	"github.com/MKhiriev/dumpman/internal/logger"
	"github.com/MKhiriev/dumpman/internal/store"
)

type Services struct {
	MediaService   MediaService
	PlanService    PlanService
	ExecuteService ExecuteService
}

func NewServices(storages *store.Storages, prompter Prompter, cfg *config.DumpConfig, logger *logger.Logger) *Services {
	return &Services{
		MediaService:   NewMediaService(storages.Media, cfg.Media, logger),
		PlanService:    NewPlanService(prompter, cfg.Grouping.Auto, time.Local, logger),
		ExecuteService: NewExecuteService(storages, cfg.Output, cfg.Workers.Jobs, logger),
	}
}
