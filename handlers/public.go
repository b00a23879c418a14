package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"grubdash-api/models"
	"grubdash-api/statemachine"
)

// Version is set at build time with -ldflags "-X grubdash-api/handlers.Version=..."
var Version = "dev"

// Health reports that the service is up
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "GrubDash API",
		"version": Version,
	})
}

// GetStateMachineInfo returns the order lifecycle for informational purposes
func GetStateMachineInfo(c *gin.Context) {
	var terminal []models.OrderStatus
	for _, s := range models.OrderStatuses {
		if statemachine.IsTerminal(s) {
			terminal = append(terminal, s)
		}
	}
	c.JSON(http.StatusOK, gin.H{
		"state_machine":   statemachine.GetAllTransitions(),
		"statuses":        models.OrderStatuses,
		"terminal_states": terminal,
		"deletable_from":  []models.OrderStatus{models.StatusPending},
		"description":     "GrubDash order lifecycle",
	})
}

// NoRoute answers paths that match no route
func NoRoute(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{"error": "Path not found: " + c.Request.URL.Path})
}

// NoMethod answers known paths called with an unsupported method
func NoMethod(c *gin.Context) {
	c.JSON(http.StatusMethodNotAllowed, gin.H{
		"error": c.Request.Method + " not allowed for " + c.Request.URL.Path,
	})
}
