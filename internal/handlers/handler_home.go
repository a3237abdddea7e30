package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetHome is a trivial liveness endpoint.
func GetHome(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "khata backend up"})
}
