// File: handlers/respond.go
package handlers

import (
	"errors"
	"net/http"

	"boatify/services/svcerr"
	"boatify/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// respondError writes a service error with its mapped status code, or a
// generic 500 for anything unrecognized.
func respondError(c *gin.Context, err error) {
	var svcErr *svcerr.Error
	if errors.As(err, &svcErr) {
		c.JSON(svcErr.Code, gin.H{"error": svcErr.Message})
		return
	}
	utils.GetLogger().Error("request failed",
		zap.String("path", c.FullPath()),
		zap.Error(err),
	)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
}
