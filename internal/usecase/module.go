package usecase

import (
	"go.uber.org/fx"

	"github.com/polkiloo/storerating/internal/config"
	"github.com/polkiloo/storerating/internal/domain/repository"
)

// Module provides core business use cases to the fx container.
var Module = fx.Provide(
	NewAuthUseCase,
	NewUserUseCase,
	NewStoreUseCase,
	NewRatingUseCase,
	newDashboardUseCase,
)

type dashboardParams struct {
	fx.In

	Activity repository.ActivityRepository
	Stores   repository.StoreRepository
	Config   *config.Config
}

func newDashboardUseCase(p dashboardParams) *DashboardUseCase {
	return NewDashboardUseCase(p.Activity, p.Stores, p.Config.Location)
}
