package main

import (
	"net/http"
	"strconv"

	"weather-now/internal/apperr"
	"weather-now/internal/display"
	"weather-now/internal/search"
	"weather-now/internal/types"

	"github.com/gin-gonic/gin"
)

const sessionCookie = "wn_session"

// SearchInput defines the query parameters for the search endpoint
type SearchInput struct {
	City string `form:"city"` // Free-text city name
}

// WeatherCodeInput defines the path parameters for the weather code endpoint
type WeatherCodeInput struct {
	Code string `uri:"code" binding:"required,numeric"`
}

// SearchResponse is the JSON body for search and session endpoints
type SearchResponse struct {
	Outcome search.Outcome `json:"outcome" swaggertype:"object"`
	Card    *display.Card  `json:"card,omitempty"`
}

// ErrorResponse is the JSON body for malformed requests
type ErrorResponse struct {
	Error string `json:"error"`
}

// session returns the caller's session, refreshing the cookie.
func (app *App) session(c *gin.Context) *search.Session {
	cookie, _ := c.Cookie(sessionCookie)
	id, sess := app.sessions.Get(cookie)

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(sessionCookie, id, int(app.cfg.App.SessionTTL.Seconds()), "/", "", false, true)
	return sess
}

// handleIndex renders the widget for the caller's session
func (app *App) handleIndex(c *gin.Context) {
	view := app.renderer.View(app.session(c).Current())
	c.HTML(http.StatusOK, "index.html", view)
}

// handleSubmitSearch runs a search for the caller's session and redirects to the widget
func (app *App) handleSubmitSearch(c *gin.Context) {
	sess := app.session(c)
	sess.Submit(c.Request.Context(), c.PostForm("city"))
	c.Redirect(http.StatusSeeOther, "/")
}

// handleSearch godoc
// @Summary Search current weather for a city
// @Description Resolves the city with the geocoding service, then fetches its current conditions
// @Tags search
// @Produce json
// @Param city query string true "City name" example(Paris)
// @Success 200 {object} SearchResponse
// @Failure 400 {object} SearchResponse "Empty city"
// @Failure 404 {object} SearchResponse "City not found"
// @Failure 502 {object} SearchResponse "Upstream failure"
// @Router /api/v1/search [get]
func (app *App) handleSearch(c *gin.Context) {
	var input SearchInput
	if err := c.ShouldBindQuery(&input); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	outcome := app.searcher.Search(c.Request.Context(), input.City)
	app.writeOutcome(c, outcome)
}

// handleGetSession godoc
// @Summary Get the session's current search outcome
// @Description Returns idle, loading, success or failure for the caller's session cookie
// @Tags search
// @Produce json
// @Success 200 {object} SearchResponse
// @Router /api/v1/session [get]
func (app *App) handleGetSession(c *gin.Context) {
	outcome := app.session(c).Current()
	c.JSON(http.StatusOK, app.response(outcome))
}

// handleListWeatherCodes godoc
// @Summary List known weather codes
// @Description Returns the description and icon category of every known WMO code
// @Tags weather-codes
// @Produce json
// @Success 200 {array} types.WeatherClassification
// @Router /api/v1/weather-codes [get]
func (app *App) handleListWeatherCodes(c *gin.Context) {
	codes := types.KnownWeatherCodes()
	out := make([]types.WeatherClassification, 0, len(codes))
	for _, code := range codes {
		out = append(out, types.ClassifyWithPolicy(code, app.policy))
	}
	c.JSON(http.StatusOK, out)
}

// handleGetWeatherCode godoc
// @Summary Classify a weather code
// @Description Returns the description and icon category for a WMO weather code; unknown codes yield "Unknown"
// @Tags weather-codes
// @Produce json
// @Param code path int true "WMO weather code" example(2)
// @Success 200 {object} types.WeatherClassification
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/weather-codes/{code} [get]
func (app *App) handleGetWeatherCode(c *gin.Context) {
	var input WeatherCodeInput
	if err := c.ShouldBindUri(&input); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	code, err := strconv.Atoi(input.Code)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "code must be an integer"})
		return
	}

	c.JSON(http.StatusOK, types.ClassifyWithPolicy(code, app.policy))
}

func (app *App) writeOutcome(c *gin.Context, outcome search.Outcome) {
	status := http.StatusOK
	if outcome.State == search.StateFailure {
		status = apperr.HTTPStatus(outcome.Err)
	}
	c.JSON(status, app.response(outcome))
}

func (app *App) response(outcome search.Outcome) SearchResponse {
	return SearchResponse{
		Outcome: outcome,
		Card:    app.renderer.View(outcome).Card,
	}
}
