package handler

import (
	"main/dto"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
)

type PreferencesHandler struct {
	Prefs *usecase.PreferencesService
}

func NewPreferencesHandler(prefs *usecase.PreferencesService) *PreferencesHandler {
	return &PreferencesHandler{Prefs: prefs}
}

// Get returns the user's preferences, creating the default row on first read.
func (h *PreferencesHandler) Get(c *gin.Context) {
	userID := c.GetString("user_id")
	prefs, err := h.Prefs.Get(c.Request.Context(), userID)
	if err != nil {
		respondGatewayError(c, err)
		return
	}

	utils.Success(c, prefs)
}

func (h *PreferencesHandler) Update(c *gin.Context) {
	var req dto.UpdatePreferencesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ValidationFailed(c, utils.FormatValidationErrors(err))
		return
	}

	userID := c.GetString("user_id")
	prefs, err := h.Prefs.Update(c.Request.Context(), userID, req)
	if err != nil {
		respondGatewayError(c, err)
		return
	}

	utils.SuccessWithMessage(c, "preferences updated", prefs)
}
