package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// home godoc
// @Summary Service banner
// @Tags meta
// @Produce plain
// @Success 200 {string} string
// @Router / [get]
func home(c *gin.Context) {
	c.String(http.StatusOK, "SecuryFlex API")
}
