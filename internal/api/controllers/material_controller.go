package controllers

import (
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"

	"learnlive/internal/models/request_models"
	"learnlive/internal/models/response_models"
	"learnlive/internal/services"
	"learnlive/pkg/utils"
)

type MaterialController struct {
	materialService services.MaterialServiceInterface
	maxUploadBytes  int64
}

func NewMaterialController(materialService services.MaterialServiceInterface, maxUploadBytes int64) *MaterialController {
	return &MaterialController{
		materialService: materialService,
		maxUploadBytes:  maxUploadBytes,
	}
}

// ListMaterials godoc
// @Summary List a course's materials
// @Tags Materials
// @Produce json
// @Param id path string true "Course ID"
// @Success 200 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Security BearerAuth
// @Router /courses/{id}/materials [get]
func (m *MaterialController) ListMaterials(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}

	materials, err := m.materialService.ListMaterials(c.Request.Context(), principal, c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.NewMaterialListResponse(materials), "")
}

// GetMaterial godoc
// @Summary Get one material
// @Tags Materials
// @Produce json
// @Param id path string true "Course ID"
// @Param material_id path string true "Material ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /courses/{id}/materials/{material_id} [get]
func (m *MaterialController) GetMaterial(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}

	material, err := m.materialService.GetMaterial(c.Request.Context(), principal, c.Param("id"), c.Param("material_id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.NewMaterialResponse(material), "")
}

// CreateMaterial godoc
// @Summary Add a material to a course
// @Description Only the course's teacher; optional file part "file"
// @Tags Materials
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Course ID"
// @Param title formData string true "Title"
// @Param description formData string false "Description"
// @Param type formData string true "Material type"
// @Param content formData string false "Inline content"
// @Param external_url formData string false "External link"
// @Param file formData file false "Attachment"
// @Success 201 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Failure 413 {object} utils.APIResponse
// @Security BearerAuth
// @Router /courses/{id}/materials [post]
func (m *MaterialController) CreateMaterial(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}

	var req request_models.CreateMaterialRequest
	if err := c.ShouldBind(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			utils.RespondError(c, http.StatusRequestEntityTooLarge, "Request body too large")
			return
		}
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	file, err := m.optionalFile(c)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	material, err := m.materialService.CreateMaterial(c.Request.Context(), principal, c.Param("id"), req, file)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, response_models.NewMaterialResponse(material), "Material created successfully")
}

// DeleteMaterial godoc
// @Summary Delete a material
// @Description Only the course's teacher
// @Tags Materials
// @Produce json
// @Param id path string true "Course ID"
// @Param material_id path string true "Material ID"
// @Success 200 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /courses/{id}/materials/{material_id} [delete]
func (m *MaterialController) DeleteMaterial(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}

	if err := m.materialService.DeleteMaterial(c.Request.Context(), principal, c.Param("id"), c.Param("material_id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Material deleted successfully")
}

func (m *MaterialController) optionalFile(c *gin.Context) (*multipart.FileHeader, error) {
	file, err := c.FormFile("file")
	if errors.Is(err, http.ErrMissingFile) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrInvalidUpload, err)
	}
	if m.maxUploadBytes > 0 && file.Size > m.maxUploadBytes {
		return nil, fmt.Errorf("%w: file exceeds %d bytes", utils.ErrInvalidUpload, m.maxUploadBytes)
	}
	return file, nil
}
