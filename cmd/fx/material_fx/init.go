package material_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"learnlive/internal/config"
	"learnlive/internal/repositories"
	"learnlive/internal/services"
	"learnlive/pkg/filestore"
)

var Module = fx.Provide(
	provideFileStore, provideMaterialRepo, provideMaterialService)

func provideFileStore(cfg *config.Config) (filestore.Store, error) {
	return filestore.NewLocalStore(cfg.UploadDir, "/static")
}

func provideMaterialRepo(db *gorm.DB) repositories.MaterialRepository {
	return repositories.NewMaterialRepository(db)
}

func provideMaterialService(
	materialRepo repositories.MaterialRepository,
	courseRepo repositories.CourseRepository,
	files filestore.Store,
	logger *zap.Logger,
) services.MaterialServiceInterface {
	return services.NewMaterialService(materialRepo, courseRepo, files, logger)
}
