package handler

import (
	"main/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
)

// respondGatewayError maps a data-gateway failure to the nearest envelope:
// unreachable backend to 503, anything else to 500.
func respondGatewayError(c *gin.Context, err error) {
	if mongo.IsNetworkError(err) || mongo.IsTimeout(err) {
		utils.TrackError("database", "unreachable")
		utils.ServiceUnavailable(c, "Backend temporarily unavailable")
		return
	}
	utils.TrackError("database", "internal")
	utils.InternalError(c, "Internal server error")
}
