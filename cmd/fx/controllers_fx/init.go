package controllers_fx

import (
	"go.uber.org/fx"

	"learnlive/internal/api/controllers"
	"learnlive/internal/config"
	"learnlive/internal/services"
)

var Module = fx.Options(
	fx.Provide(controllers.NewAccountController),
	fx.Provide(controllers.NewCourseController),
	fx.Provide(controllers.NewSessionController),
	fx.Provide(provideMaterialController),
	fx.Provide(controllers.NewPaymentController))

func provideMaterialController(materialService services.MaterialServiceInterface, cfg *config.Config) *controllers.MaterialController {
	return controllers.NewMaterialController(materialService, cfg.MaxUploadBytes)
}
