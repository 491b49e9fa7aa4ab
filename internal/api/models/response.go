package models

// LatticePriceResponse is the result of a binomial tree pricing call.
type LatticePriceResponse struct {
	Price      float64 `json:"price"`
	OptionKind string  `json:"option_kind"`
	Exercise   string  `json:"exercise"`
	Steps      int     `json:"steps"`
}

// MonteCarloPriceResponse is the result of a Monte Carlo pricing call.
type MonteCarloPriceResponse struct {
	Price         float64 `json:"price"`
	PayoffExpr    string  `json:"payoff_expr"`
	StandardError float64 `json:"standard_error"`
	Paths         int     `json:"paths"`
	Steps         int     `json:"steps"`
	Seed          *int64  `json:"seed,omitempty"`
}

// PayoffInfo describes one example payoff expression.
type PayoffInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Expression  string `json:"expression"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information
type ErrorDetail struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}
