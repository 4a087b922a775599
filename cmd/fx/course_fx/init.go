package course_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"learnlive/internal/repositories"
	"learnlive/internal/services"
)

var Module = fx.Provide(
	provideCourseRepo, provideCourseService)

func provideCourseRepo(db *gorm.DB) repositories.CourseRepository {
	return repositories.NewCourseRepository(db)
}

func provideCourseService(courseRepo repositories.CourseRepository, logger *zap.Logger) services.CourseServiceInterface {
	return services.NewCourseService(courseRepo, logger)
}
