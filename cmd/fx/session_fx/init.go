package session_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"learnlive/internal/repositories"
	"learnlive/internal/services"
)

var Module = fx.Provide(
	provideSessionRepo, provideSessionService)

func provideSessionRepo(db *gorm.DB) repositories.SessionRepository {
	return repositories.NewSessionRepository(db)
}

func provideSessionService(sessionRepo repositories.SessionRepository, courseRepo repositories.CourseRepository, logger *zap.Logger) services.SessionServiceInterface {
	return services.NewSessionService(sessionRepo, courseRepo, logger)
}
