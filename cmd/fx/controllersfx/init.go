package controllersfx

import (
	"go.uber.org/fx"

	"barrio/internal/api/controllers"
)

var Module = fx.Provide(
	controllers.NewAccountController,
	controllers.NewEventController,
	controllers.NewBusinessController,
	controllers.NewActivityController,
	controllers.NewTicketController,
	controllers.NewTagController,
	controllers.NewFileController,
)
