package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"learnlive/internal/models/request_models"
	"learnlive/internal/models/response_models"
	"learnlive/internal/services"
	"learnlive/pkg/utils"
)

type CourseController struct {
	courseService services.CourseServiceInterface
}

func NewCourseController(courseService services.CourseServiceInterface) *CourseController {
	return &CourseController{courseService: courseService}
}

// ListCourses godoc
// @Summary List courses
// @Tags Courses
// @Produce json
// @Param grade query string false "Grade filter"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /courses [get]
func (cc *CourseController) ListCourses(c *gin.Context) {
	courses, err := cc.courseService.ListCourses(c.Request.Context(), c.Query("grade"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.NewCourseListResponse(courses), "")
}

// GetCourse godoc
// @Summary Get a course
// @Tags Courses
// @Produce json
// @Param id path string true "Course ID"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /courses/{id} [get]
func (cc *CourseController) GetCourse(c *gin.Context) {
	course, err := cc.courseService.GetCourse(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.NewCourseResponse(course), "")
}

// ListEnrolled godoc
// @Summary Courses the calling student is enrolled in
// @Tags Courses
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Security BearerAuth
// @Router /courses/enrolled [get]
func (cc *CourseController) ListEnrolled(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}

	courses, err := cc.courseService.ListEnrolledCourses(c.Request.Context(), principal)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.NewCourseListResponse(courses), "")
}

// CreateCourse godoc
// @Summary Create a course
// @Description Teachers only
// @Tags Courses
// @Accept json
// @Produce json
// @Param request body request_models.CreateCourseRequest true "Course payload"
// @Success 201 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Security BearerAuth
// @Router /courses [post]
func (cc *CourseController) CreateCourse(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}

	var req request_models.CreateCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	course, err := cc.courseService.CreateCourse(c.Request.Context(), principal, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, response_models.NewCourseResponse(course), "Course created successfully")
}

// Enroll godoc
// @Summary Enroll the calling student
// @Tags Courses
// @Produce json
// @Param id path string true "Course ID"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /courses/{id}/enroll [post]
func (cc *CourseController) Enroll(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}

	if err := cc.courseService.Enroll(c.Request.Context(), principal, c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Successfully enrolled in course")
}
