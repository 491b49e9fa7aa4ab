package handlers

import (
	"errors"
	"net/http"

	"option-pricer/internal/api/models"
	"option-pricer/internal/lattice"
	"option-pricer/internal/model"
	"option-pricer/internal/montecarlo"
	"option-pricer/internal/payoff"
	"option-pricer/internal/simulate"

	"github.com/gin-gonic/gin"
)

// PriceHandler serves the two pricing endpoints.
type PriceHandler struct {
	engine    *lattice.Engine
	estimator *montecarlo.Estimator
}

// NewPriceHandler creates a new price handler.
func NewPriceHandler() *PriceHandler {
	return &PriceHandler{
		engine:    lattice.New(),
		estimator: montecarlo.New(simulate.New()),
	}
}

// RunLattice handles POST /api/v1/price/lattice
func (h *PriceHandler) RunLattice(c *gin.Context) {
	var req models.LatticeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: err.Error(),
			},
		})
		return
	}

	params := req.ToModelParams()
	price, err := h.engine.Price(params)
	if err != nil {
		writePricingError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.LatticePriceResponse{
		Price:      price,
		OptionKind: string(params.OptionKind),
		Exercise:   string(params.Exercise),
		Steps:      params.Steps,
	})
}

// RunMonteCarlo handles POST /api/v1/price/montecarlo
func (h *PriceHandler) RunMonteCarlo(c *gin.Context) {
	var req models.MonteCarloRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: err.Error(),
			},
		})
		return
	}

	fn, err := payoff.NewPathExpression(req.PayoffExpr)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_PAYOFF",
				Message: err.Error(),
			},
		})
		return
	}

	params := req.ToModelParams()
	result, err := h.estimator.Price(params, fn)
	if err != nil {
		writePricingError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.MonteCarloPriceResponse{
		Price:         result.Price,
		PayoffExpr:    fn.Source(),
		StandardError: result.StandardError,
		Paths:         result.Paths,
		Steps:         params.Steps,
		Seed:          params.Seed,
	})
}

// writePricingError maps engine error kinds onto HTTP statuses. Validation
// and payoff evaluation problems are the client's to fix; a calibration or
// shape failure signals an inconsistent request rather than a malformed one.
func writePricingError(c *gin.Context, err error) {
	var vErr *model.ValidationError
	var cErr *lattice.CalibrationError
	var sErr *montecarlo.PayoffShapeError

	switch {
	case errors.As(err, &vErr):
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_PARAMETERS",
				Message: vErr.Error(),
				Details: map[string]interface{}{"field": vErr.Field},
			},
		})
	case errors.As(err, &cErr):
		c.JSON(http.StatusUnprocessableEntity, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "CALIBRATION_ERROR",
				Message: cErr.Error(),
				Details: map[string]interface{}{"probability": cErr.Prob},
			},
		})
	case errors.As(err, &sErr):
		c.JSON(http.StatusUnprocessableEntity, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "PAYOFF_SHAPE_ERROR",
				Message: sErr.Error(),
			},
		})
	default:
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "PRICING_ERROR",
				Message: err.Error(),
			},
		})
	}
}
