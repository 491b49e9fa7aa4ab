package handlers

import (
	"html/template"
	"net/http"
	"strconv"
	"strings"

	"option-pricer/internal/config"
	"option-pricer/internal/montecarlo"
	"option-pricer/internal/payoff"
	"option-pricer/internal/simulate"

	"github.com/gin-gonic/gin"
)

const formTemplate = `<!doctype html>
<html lang="en">
  <head>
    <meta charset="utf-8" />
    <meta name="viewport" content="width=device-width, initial-scale=1" />
    <title>Monte Carlo Option Pricer</title>
    <style>
      body { font-family: Arial, sans-serif; margin: 2rem; max-width: 840px; }
      form { margin-top: 1rem; display: grid; grid-template-columns: repeat(auto-fit, minmax(220px, 1fr)); gap: 0.75rem 1rem; }
      label { display: flex; flex-direction: column; font-weight: bold; }
      input, textarea { padding: 0.5rem; font-size: 1rem; }
      .full-width { grid-column: 1 / -1; }
      .result { margin-top: 1.5rem; padding: 1rem; border-radius: 8px; background: #f1f5f9; }
      .error { background: #ffe6e6; color: #7f1d1d; }
      button { padding: 0.75rem 1.25rem; font-size: 1rem; background: #2563eb; color: white; border: none; border-radius: 6px; cursor: pointer; }
      code { background: #e2e8f0; padding: 0.15rem 0.3rem; border-radius: 4px; }
    </style>
  </head>
  <body>
    <h1>Monte Carlo Option Pricer</h1>
    <p>Simulate geometric Brownian motion paths and evaluate any payoff expression over <code>terminal</code>, <code>mean</code>, <code>highest</code>, <code>lowest</code> and <code>path</code>.</p>
    <form method="post">
      <label>Spot price
        <input type="number" step="any" name="spot" value="{{.Spot}}" required />
      </label>
      <label>Risk-free rate (continuous)
        <input type="number" step="any" name="rate" value="{{.Rate}}" required />
      </label>
      <label>Time to maturity (years)
        <input type="number" step="any" name="time" value="{{.Time}}" required />
      </label>
      <label>Volatility (annualized)
        <input type="number" step="any" name="volatility" value="{{.Volatility}}" required />
      </label>
      <label>Dividend yield
        <input type="number" step="any" name="dividend_yield" value="{{.DividendYield}}" />
      </label>
      <label>Number of paths
        <input type="number" step="1" min="1" name="paths" value="{{.Paths}}" required />
      </label>
      <label>Steps per path
        <input type="number" step="1" min="1" name="steps" value="{{.Steps}}" required />
      </label>
      <label>Random seed (optional)
        <input type="number" step="1" name="seed" value="{{.Seed}}" />
      </label>
      <label class="full-width">Payoff expression
        <textarea name="payoff_expr" rows="3">{{.PayoffExpr}}</textarea>
      </label>
      <div class="full-width"><button type="submit">Estimate price</button></div>
    </form>

    {{if .Price}}
      <div class="result">Estimated option price: <strong>{{.Price}}</strong></div>
    {{end}}

    {{if .Error}}
      <div class="result error">Error: {{.Error}}</div>
    {{end}}

    <div class="result">
      <h2>Example payoffs</h2>
      <ul>
        <li>European call: <code>max(terminal - 100, 0)</code></li>
        <li>European put: <code>max(100 - terminal, 0)</code></li>
        <li>Asian call (average): <code>max(mean - 100, 0)</code></li>
        <li>Lookback call (max): <code>max(highest - 100, 0)</code></li>
      </ul>
    </div>
  </body>
</html>`

// FormHandler serves the interactive HTML form.
type FormHandler struct {
	defaults  config.DefaultsConfig
	estimator *montecarlo.Estimator
	tmpl      *template.Template
}

type formData struct {
	Spot          float64
	Rate          float64
	Time          float64
	Volatility    float64
	DividendYield float64
	Paths         int
	Steps         int
	Seed          string
	PayoffExpr    string
	Price         string
	Error         string
}

// NewFormHandler creates a new form handler seeded with config defaults.
func NewFormHandler(defaults config.DefaultsConfig) *FormHandler {
	return &FormHandler{
		defaults:  defaults,
		estimator: montecarlo.New(simulate.New()),
		tmpl:      template.Must(template.New("form").Parse(formTemplate)),
	}
}

// Show handles GET /
func (h *FormHandler) Show(c *gin.Context) {
	h.render(c, h.defaultForm())
}

// Price handles POST /
func (h *FormHandler) Price(c *gin.Context) {
	data := h.defaultForm()
	data.Spot = floatField(c, "spot", data.Spot)
	data.Rate = floatField(c, "rate", data.Rate)
	data.Time = floatField(c, "time", data.Time)
	data.Volatility = floatField(c, "volatility", data.Volatility)
	data.DividendYield = floatField(c, "dividend_yield", data.DividendYield)
	data.Paths = intField(c, "paths", data.Paths)
	data.Steps = intField(c, "steps", data.Steps)
	data.Seed = strings.TrimSpace(c.PostForm("seed"))
	if expr := strings.TrimSpace(c.PostForm("payoff_expr")); expr != "" {
		data.PayoffExpr = expr
	}

	params := h.defaults.ToSimulationParams()
	params.Spot = data.Spot
	params.Rate = data.Rate
	params.Time = data.Time
	params.Volatility = data.Volatility
	params.DividendYield = data.DividendYield
	params.Paths = data.Paths
	params.Steps = data.Steps
	params.Seed = nil
	if data.Seed != "" {
		seed, err := strconv.ParseInt(data.Seed, 10, 64)
		if err != nil {
			data.Error = "seed must be an integer"
			h.render(c, data)
			return
		}
		params.Seed = &seed
	}

	fn, err := payoff.NewPathExpression(data.PayoffExpr)
	if err != nil {
		data.Error = err.Error()
		h.render(c, data)
		return
	}

	result, err := h.estimator.Price(params, fn)
	if err != nil {
		data.Error = err.Error()
		h.render(c, data)
		return
	}

	data.Price = strconv.FormatFloat(result.Price, 'f', 6, 64)
	h.render(c, data)
}

func (h *FormHandler) defaultForm() formData {
	seed := ""
	if h.defaults.Seed != nil {
		seed = strconv.FormatInt(*h.defaults.Seed, 10)
	}
	return formData{
		Spot:          h.defaults.Spot,
		Rate:          h.defaults.Rate,
		Time:          h.defaults.Time,
		Volatility:    h.defaults.Volatility,
		DividendYield: h.defaults.DividendYield,
		Paths:         h.defaults.Paths,
		Steps:         h.defaults.Steps,
		Seed:          seed,
		PayoffExpr:    h.defaults.PayoffExpr,
	}
}

func (h *FormHandler) render(c *gin.Context, data formData) {
	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(http.StatusOK)
	if err := h.tmpl.Execute(c.Writer, data); err != nil {
		c.Status(http.StatusInternalServerError)
	}
}

func floatField(c *gin.Context, name string, def float64) float64 {
	raw := strings.TrimSpace(c.PostForm(name))
	if raw == "" {
		return def
	}
	if v, err := strconv.ParseFloat(raw, 64); err == nil {
		return v
	}
	return def
}

func intField(c *gin.Context, name string, def int) int {
	raw := strings.TrimSpace(c.PostForm(name))
	if raw == "" {
		return def
	}
	if v, err := strconv.Atoi(raw); err == nil {
		return v
	}
	return def
}
