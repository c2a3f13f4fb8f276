package navigation_fx

import (
	"go.uber.org/fx"
	"yourtour/internal/services"
)

var Module = fx.Provide(provideNavigationService)

func provideNavigationService() services.NavigationServiceInterface {
	return services.NewNavigationService()
}
