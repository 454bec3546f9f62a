// Package router defines how HTTP routes are registered for the API and how
// unrouted requests are reported.
package router

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/cs1060f25/perdogarcia-hw4/internal/handler"
	"github.com/cs1060f25/perdogarcia-hw4/internal/model"
)

// RegisterRoutes wires the API's routes onto the provided Echo instance and
// installs the JSON error handler. The API surface is intentionally small:
// one lookup endpoint plus a health check for load balancers.
func RegisterRoutes(e *echo.Echo, h *handler.CountyDataHandler) {
	e.HTTPErrorHandler = errorHandler

	e.GET("/healthz", handler.Health)
	e.POST("/county_data", h.CountyData)
}

// errorHandler replaces Echo's default error responses with the API's
// envelope. Unknown paths and wrong methods are both reported as a 404
// "Endpoint not found"; anything else that escapes a handler (including a
// recovered panic) becomes a 500 "Internal server error" so driver or
// runtime detail never reaches the caller.
func errorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status := http.StatusInternalServerError
	msg := "Internal server error"
	if he, ok := err.(*echo.HTTPError); ok {
		switch he.Code {
		case http.StatusNotFound, http.StatusMethodNotAllowed:
			status = http.StatusNotFound
			msg = "Endpoint not found"
		default:
			c.Logger().Error(err)
		}
	} else {
		c.Logger().Error(err)
	}

	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(status)
		return
	}
	_ = c.JSON(status, model.APIError{Error: msg, Status: status})
}
