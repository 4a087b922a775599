package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"learnlive/internal/models/request_models"
	"learnlive/internal/models/response_models"
	"learnlive/internal/services"
	"learnlive/pkg/utils"
)

type SessionController struct {
	sessionService services.SessionServiceInterface
}

func NewSessionController(sessionService services.SessionServiceInterface) *SessionController {
	return &SessionController{sessionService: sessionService}
}

// Upcoming godoc
// @Summary Upcoming live sessions for the caller
// @Tags Sessions
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /sessions/upcoming [get]
func (s *SessionController) Upcoming(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}

	sessions, err := s.sessionService.ListUpcoming(c.Request.Context(), principal)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.NewSessionListResponse(sessions), "")
}

// CreateSession godoc
// @Summary Schedule a live session
// @Description Only the course's teacher may schedule
// @Tags Sessions
// @Accept json
// @Produce json
// @Param request body request_models.CreateSessionRequest true "Session payload"
// @Success 201 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Security BearerAuth
// @Router /sessions [post]
func (s *SessionController) CreateSession(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}

	var req request_models.CreateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	session, err := s.sessionService.CreateSession(c.Request.Context(), principal, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, response_models.NewSessionResponse(session), "Session created successfully")
}

// GetSession godoc
// @Summary Get a live session
// @Tags Sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /sessions/{id} [get]
func (s *SessionController) GetSession(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}

	session, err := s.sessionService.GetSession(c.Request.Context(), principal, c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.NewSessionResponse(session), "")
}
