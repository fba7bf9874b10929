package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// getHome godoc
// @Summary Show the status of server.
// @Description get the status of server.
// @Tags root
// @Accept */*
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router / [get]
func getHome(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"message": "Cashier change calculator API v1"})
}

// registerHomeRoutes registers the v1 root route
func registerHomeRoutes(group *gin.RouterGroup) {
	group.GET("/", getHome)
}
