package services

import (
	"context"
	"fmt"
	"mime/multipart"
	"strings"

	"go.uber.org/zap"

	"learnlive/internal/models/db_models"
	"learnlive/internal/models/request_models"
	"learnlive/internal/repositories"
	"learnlive/pkg/filestore"
	"learnlive/pkg/utils"
)

type MaterialServiceInterface interface {
	ListMaterials(ctx context.Context, principal *utils.Principal, courseID string) ([]db_models.CourseMaterial, error)
	GetMaterial(ctx context.Context, principal *utils.Principal, courseID, materialID string) (*db_models.CourseMaterial, error)
	CreateMaterial(ctx context.Context, principal *utils.Principal, courseID string, request request_models.CreateMaterialRequest, file *multipart.FileHeader) (*db_models.CourseMaterial, error)
	DeleteMaterial(ctx context.Context, principal *utils.Principal, courseID, materialID string) error
}

type MaterialService struct {
	materialRepo repositories.MaterialRepository
	courseRepo   repositories.CourseRepository
	files        filestore.Store
	logger       *zap.Logger
}

func NewMaterialService(materialRepo repositories.MaterialRepository, courseRepo repositories.CourseRepository, files filestore.Store, logger *zap.Logger) MaterialServiceInterface {
	return &MaterialService{
		materialRepo: materialRepo,
		courseRepo:   courseRepo,
		files:        files,
		logger:       logger.Named("material"),
	}
}

func (s *MaterialService) ListMaterials(ctx context.Context, principal *utils.Principal, courseID string) ([]db_models.CourseMaterial, error) {
	course, err := findCourse(ctx, s.courseRepo, courseID)
	if err != nil {
		return nil, err
	}
	if err := CanReadCourseContent(principal, course); err != nil {
		return nil, err
	}

	materials, err := s.materialRepo.ListByCourse(ctx, course.ID)
	if err != nil {
		return nil, storageError("list materials", err)
	}
	return materials, nil
}

func (s *MaterialService) GetMaterial(ctx context.Context, principal *utils.Principal, courseID, materialID string) (*db_models.CourseMaterial, error) {
	course, material, err := s.load(ctx, courseID, materialID)
	if err != nil {
		return nil, err
	}
	if err := CanReadCourseContent(principal, course); err != nil {
		return nil, err
	}
	return material, nil
}

func (s *MaterialService) CreateMaterial(ctx context.Context, principal *utils.Principal, courseID string, request request_models.CreateMaterialRequest, file *multipart.FileHeader) (*db_models.CourseMaterial, error) {
	course, err := findCourse(ctx, s.courseRepo, courseID)
	if err != nil {
		return nil, err
	}
	if err := CanManageMaterials(principal, course); err != nil {
		return nil, err
	}

	material := &db_models.CourseMaterial{
		CourseID:    course.ID,
		Title:       request.Title,
		Description: request.Description,
		Type:        request.Type,
		Content:     optional(request.Content),
		ExternalURL: optional(request.ExternalURL),
		CreatedBy:   principal.AccountID,
	}

	var fileSize int64
	if file != nil {
		if file.Size == 0 {
			return nil, fmt.Errorf("%w: uploaded file is empty", utils.ErrInvalidUpload)
		}
		stored, err := s.files.Save(file)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", utils.ErrUploadFailure, err)
		}
		material.FileName = &stored.Name
		material.FileURL = &stored.URL
		fileSize = stored.Size
	}

	if err := s.materialRepo.Insert(ctx, material); err != nil {
		if material.FileName != nil {
			s.removeFile(*material.FileName)
		}
		return nil, storageError("insert material", err)
	}

	s.logger.Info("material created",
		zap.String("material_id", material.ID.String()),
		zap.String("course_id", course.ID.String()),
		zap.Bool("has_file", material.FileName != nil),
		zap.Int64("file_size", fileSize))
	return material, nil
}

func (s *MaterialService) DeleteMaterial(ctx context.Context, principal *utils.Principal, courseID, materialID string) error {
	course, material, err := s.load(ctx, courseID, materialID)
	if err != nil {
		return err
	}
	if err := CanManageMaterials(principal, course); err != nil {
		return err
	}

	if err := s.materialRepo.Delete(ctx, material.ID); err != nil {
		return storageError("delete material", err)
	}

	if material.FileName != nil {
		s.removeFile(*material.FileName)
	}

	s.logger.Info("material deleted",
		zap.String("material_id", material.ID.String()),
		zap.String("course_id", course.ID.String()))
	return nil
}

// load fetches the course and a material that belongs to it.
func (s *MaterialService) load(ctx context.Context, courseID, materialID string) (*db_models.Course, *db_models.CourseMaterial, error) {
	mid, err := utils.ParseID(materialID)
	if err != nil {
		return nil, nil, err
	}
	course, err := findCourse(ctx, s.courseRepo, courseID)
	if err != nil {
		return nil, nil, err
	}

	material, err := s.materialRepo.FindById(ctx, mid)
	if err != nil {
		return nil, nil, storageError("find material", err)
	}
	if material == nil || material.CourseID != course.ID {
		return nil, nil, utils.ErrMaterialNotFound
	}
	return course, material, nil
}

// removeFile is best effort: a leftover file is logged, never surfaced.
func (s *MaterialService) removeFile(name string) {
	if err := s.files.Remove(name); err != nil {
		s.logger.Warn("failed to remove material file", zap.String("file", name), zap.Error(err))
	}
}

func optional(v string) *string {
	v = strings.TrimSpace(v)
	if v == "" {
		return nil
	}
	return &v
}
