package controllers_fx

import (
	"go.uber.org/fx"
	"yourtour/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewAccountController),
	fx.Provide(controllers.NewNavigationController),
	fx.Provide(controllers.NewVisitController),
	fx.Provide(controllers.NewHistoryController),
	fx.Provide(controllers.NewFactsController),
	fx.Provide(controllers.NewBadgeController))
