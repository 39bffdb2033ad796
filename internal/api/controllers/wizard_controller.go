package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"yatra/internal/models/request_models"
	"yatra/internal/services"
	"yatra/pkg/utils"
)

type WizardController struct {
	wizardService services.WizardServiceInterface
}

func NewWizardController(wizardService services.WizardServiceInterface) *WizardController {
	return &WizardController{
		wizardService: wizardService,
	}
}

// CreateSession godoc
// @Summary Create a planning session
// @Description Start a new trip planning session, optionally seeded with preferences
// @Tags Wizard
// @Accept json
// @Produce json
// @Param request body request_models.CreateSessionRequest false "Initial preferences"
// @Success 200 {object} response_models.SessionView
// @Security BearerAuth
// @Router /sessions [post]
func (w *WizardController) CreateSession(c *gin.Context) {
	var req request_models.CreateSessionRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.RespondError(c, http.StatusBadRequest, "Invalid request body")
			return
		}
	}

	userId := c.GetString("user_id")

	view, err := w.wizardService.CreateSession(c.Request.Context(), userId, req.Preferences)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, view, "Session created successfully")
}

// GetSession godoc
// @Summary Get a planning session
// @Description Fetch the current stage and accumulated state of a session
// @Tags Wizard
// @Accept json
// @Produce json
// @Param sessionId path string true "Session ID"
// @Success 200 {object} response_models.SessionView
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /sessions/{sessionId} [get]
func (w *WizardController) GetSession(c *gin.Context) {
	sessionId := c.Param("sessionId")
	if sessionId == "" {
		utils.RespondError(c, http.StatusBadRequest, "Session ID is required")
		return
	}

	userId := c.GetString("user_id")

	view, err := w.wizardService.GetSession(c.Request.Context(), sessionId, userId)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, view, "Session fetched successfully")
}

// Forward godoc
// @Summary Advance the wizard one stage
// @Description Consume the current stage's input and generate the next artifact
// @Tags Wizard
// @Accept json
// @Produce json
// @Param sessionId path string true "Session ID"
// @Param request body request_models.ForwardRequest false "Stage input"
// @Success 200 {object} response_models.SessionView
// @Failure 400 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Security BearerAuth
// @Router /sessions/{sessionId}/forward [post]
func (w *WizardController) Forward(c *gin.Context) {
	sessionId := c.Param("sessionId")
	if sessionId == "" {
		utils.RespondError(c, http.StatusBadRequest, "Session ID is required")
		return
	}

	var req request_models.ForwardRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.RespondError(c, http.StatusBadRequest, "Invalid request body")
			return
		}
	}

	userId := c.GetString("user_id")

	view, err := w.wizardService.Forward(c.Request.Context(), sessionId, userId, &req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, view, "Stage advanced successfully")
}

// Back godoc
// @Summary Step back one stage
// @Tags Wizard
// @Produce json
// @Param sessionId path string true "Session ID"
// @Success 200 {object} response_models.SessionView
// @Security BearerAuth
// @Router /sessions/{sessionId}/back [post]
func (w *WizardController) Back(c *gin.Context) {
	sessionId := c.Param("sessionId")
	if sessionId == "" {
		utils.RespondError(c, http.StatusBadRequest, "Session ID is required")
		return
	}

	userId := c.GetString("user_id")

	view, err := w.wizardService.Back(c.Request.Context(), sessionId, userId)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, view, "Stage rewound successfully")
}

// Reset godoc
// @Summary Reset a session to the beginning
// @Tags Wizard
// @Produce json
// @Param sessionId path string true "Session ID"
// @Success 200 {object} response_models.SessionView
// @Security BearerAuth
// @Router /sessions/{sessionId}/reset [post]
func (w *WizardController) Reset(c *gin.Context) {
	sessionId := c.Param("sessionId")
	if sessionId == "" {
		utils.RespondError(c, http.StatusBadRequest, "Session ID is required")
		return
	}

	userId := c.GetString("user_id")

	view, err := w.wizardService.Reset(c.Request.Context(), sessionId, userId)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, view, "Session reset successfully")
}

// Export godoc
// @Summary Download the finished trip plan
// @Description Returns the assembled plan as a JSON file attachment; only available at the final stage
// @Tags Wizard
// @Produce json
// @Param sessionId path string true "Session ID"
// @Success 200 {object} response_models.TripPlanExport
// @Failure 409 {object} utils.APIResponse
// @Security BearerAuth
// @Router /sessions/{sessionId}/export [get]
func (w *WizardController) Export(c *gin.Context) {
	sessionId := c.Param("sessionId")
	if sessionId == "" {
		utils.RespondError(c, http.StatusBadRequest, "Session ID is required")
		return
	}

	userId := c.GetString("user_id")

	export, err := w.wizardService.Export(c.Request.Context(), sessionId, userId)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	payload, err := json.MarshalIndent(export, "", "  ")
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, "Failed to serialize trip plan")
		return
	}

	c.Header("Content-Disposition", `attachment; filename="trip_plan.json"`)
	c.Data(http.StatusOK, "application/json", payload)
}
