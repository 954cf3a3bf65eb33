package handler

import (
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
)

type StatsHandler struct {
	Stats *usecase.StatsService
}

func NewStatsHandler(stats *usecase.StatsService) *StatsHandler {
	return &StatsHandler{Stats: stats}
}

func (h *StatsHandler) Get(c *gin.Context) {
	userID := c.GetString("user_id")
	stats, err := h.Stats.Get(c.Request.Context(), userID)
	if err != nil {
		respondGatewayError(c, err)
		return
	}

	utils.Success(c, gin.H{"stats": stats})
}
