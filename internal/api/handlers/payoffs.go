package handlers

import (
	"net/http"

	"option-pricer/internal/api/models"

	"github.com/gin-gonic/gin"
)

// PayoffHandler handles payoff catalogue requests
type PayoffHandler struct{}

// NewPayoffHandler creates a new payoff handler
func NewPayoffHandler() *PayoffHandler {
	return &PayoffHandler{}
}

// ListPayoffs handles GET /api/v1/payoffs
//
// The expressions reference path statistics only: path, spot, terminal,
// mean, highest, lowest, plus arithmetic builtins like max/min/abs.
func (h *PayoffHandler) ListPayoffs(c *gin.Context) {
	payoffs := []models.PayoffInfo{
		{
			Name:        "european_call",
			Description: "Call on the terminal price, strike 100.",
			Expression:  "max(terminal - 100, 0)",
		},
		{
			Name:        "european_put",
			Description: "Put on the terminal price, strike 100.",
			Expression:  "max(100 - terminal, 0)",
		},
		{
			Name:        "asian_call",
			Description: "Call on the arithmetic average price along the path.",
			Expression:  "max(mean - 100, 0)",
		},
		{
			Name:        "lookback_call",
			Description: "Call on the running maximum of the path.",
			Expression:  "max(highest - 100, 0)",
		},
		{
			Name:        "digital_call",
			Description: "Pays 1 if the terminal price finishes above the strike.",
			Expression:  "terminal > 100 ? 1.0 : 0.0",
		},
	}

	c.JSON(http.StatusOK, gin.H{"payoffs": payoffs})
}
