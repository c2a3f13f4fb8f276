package trips_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"yourtour/internal/repositories"
	"yourtour/internal/services"
)

var Module = fx.Provide(
	provideTripService, provideTripRepo, provideHistoryRepo)

func provideTripRepo(db *gorm.DB) repositories.TripRepository {
	return repositories.NewTripRepository(db)
}

func provideHistoryRepo(db *gorm.DB) repositories.HistoryRepository {
	return repositories.NewHistoryRepository(db)
}

func provideTripService(
	tripRepo repositories.TripRepository,
	historyRepo repositories.HistoryRepository,
	navigation services.NavigationServiceInterface,
) services.TripServiceInterface {
	return services.NewTripService(tripRepo, historyRepo, navigation)
}
